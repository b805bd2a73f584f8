// models/user.go
package models

// User is a login credential pair. Not a security boundary: passwords are
// stored as-is, matching the rest of the flat-file documents.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
