// models/item.go
package models

// ItemCondition is the condition label attached to an inventory item.
type ItemCondition = string

const (
	ConditionNew         ItemCondition = "new"
	ConditionLikeNew     ItemCondition = "like new"
	ConditionGentlyUsed  ItemCondition = "gently used"
	ConditionRefurbished ItemCondition = "refurbished"
	ConditionUsed        ItemCondition = "used"
)

// InventoryItem is one unit (or stack) of stock. ProfitMargin is computed
// once at creation from sale price minus purchase price and is not
// re-derived on read.
type InventoryItem struct {
	ItemID          int           `json:"item_id"`
	ItemName        string        `json:"item_name"`
	ItemCategory    string        `json:"item_category"`
	ItemSubcategory string        `json:"item_subcategory,omitempty"`
	ItemCondition   ItemCondition `json:"item_condition"`
	PurchasePrice   float64       `json:"purchase_price"`
	SalePrice       float64       `json:"sale_price"`
	QuantityInStock int           `json:"quantity_in_stock"`
	PurchaseDate    string        `json:"purchase_date"`
	SaleDate        string        `json:"sale_date,omitempty"`
	ProfitMargin    float64       `json:"profit_margin"`
	Description     string        `json:"description,omitempty"`
}
