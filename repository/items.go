// repository/items.go
package repository

import (
	"inventory-tracker/models"
	"inventory-tracker/store"
)

const itemsDocument = "items.json"

// Items owns the items document. Callers load the full collection and
// filter in memory; there is no query-by-ID at this layer.
type Items struct {
	store *store.Store
}

func NewItems(s *store.Store) *Items {
	return &Items{store: s}
}

func defaultItems() []models.InventoryItem {
	return []models.InventoryItem{
		{
			ItemID:          1,
			ItemName:        `Samsung 4K Smart TV 55"`,
			ItemCategory:    "Electronics",
			ItemSubcategory: "Televisions",
			ItemCondition:   models.ConditionLikeNew,
			PurchasePrice:   45000,
			SalePrice:       55000,
			QuantityInStock: 5,
			PurchaseDate:    "2024-01-15",
			ProfitMargin:    10000,
			Description:     "55-inch 4K Smart TV with HDR",
		},
		{
			ItemID:          2,
			ItemName:        "Leather Sofa Set",
			ItemCategory:    "Furniture",
			ItemSubcategory: "Sofas",
			ItemCondition:   models.ConditionNew,
			PurchasePrice:   75000,
			SalePrice:       95000,
			QuantityInStock: 3,
			PurchaseDate:    "2024-01-10",
			ProfitMargin:    20000,
			Description:     "3-seater leather sofa with cushions",
		},
	}
}

// Get returns the full items collection, seeding the example rows on
// first access.
func (r *Items) Get() []models.InventoryItem {
	return store.Load(r.store, itemsDocument, defaultItems())
}

// Save overwrites the items document with the given collection.
func (r *Items) Save(items []models.InventoryItem) error {
	return store.Save(r.store, itemsDocument, items)
}
