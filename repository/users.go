// repository/users.go
package repository

import (
	"inventory-tracker/models"
	"inventory-tracker/store"
)

const usersDocument = "users.json"

// Users owns the users document. The collection is read as a list; there
// are no lifecycle operations on individual users.
type Users struct {
	store *store.Store
}

func NewUsers(s *store.Store) *Users {
	return &Users{store: s}
}

func defaultUsers() []models.User {
	return []models.User{
		{Username: "admin", Password: "admin"},
	}
}

// Get returns the full users collection, seeding the admin account on
// first access.
func (r *Users) Get() []models.User {
	return store.Load(r.store, usersDocument, defaultUsers())
}

// Save overwrites the users document with the given collection.
func (r *Users) Save(users []models.User) error {
	return store.Save(r.store, usersDocument, users)
}
