// models/category.go
package models

// Category groups items under a name with a fixed list of subcategory
// labels. Names are free text and not enforced unique.
type Category struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}
