// repository/categories.go
package repository

import (
	"inventory-tracker/models"
	"inventory-tracker/store"
)

const categoriesDocument = "categories.json"

// Categories owns the categories document.
type Categories struct {
	store *store.Store
}

func NewCategories(s *store.Store) *Categories {
	return &Categories{store: s}
}

func defaultCategories() []models.Category {
	return []models.Category{
		{
			ID:            1,
			Name:          "Electronics",
			Subcategories: []string{"Televisions", "Remote Controls", "Routers", "Iron Boxes", "Light Bulbs", "Aerials", "Smartphones", "Laptops"},
		},
		{
			ID:            2,
			Name:          "Furniture",
			Subcategories: []string{"Sofas", "Chairs", "Tables", "Beds", "Wardrobes", "Desks", "Bookshelves"},
		},
		{
			ID:            3,
			Name:          "Motorcycles",
			Subcategories: []string{"Street Bikes", "Cruisers", "Sport Bikes", "Scooters", "Off-road"},
		},
		{
			ID:            4,
			Name:          "Bicycles",
			Subcategories: []string{"Mountain Bikes", "Road Bikes", "Hybrid Bikes", "Electric Bikes", "BMX"},
		},
	}
}

// Get returns the full categories collection, seeding the four example
// categories on first access.
func (r *Categories) Get() []models.Category {
	return store.Load(r.store, categoriesDocument, defaultCategories())
}

// Save overwrites the categories document with the given collection.
func (r *Categories) Save(categories []models.Category) error {
	return store.Save(r.store, categoriesDocument, categories)
}
