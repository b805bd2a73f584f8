// inventory/filter.go
package inventory

import "inventory-tracker/models"

// Filter returns the items matching both constraints. An empty category or
// condition means no constraint on that field; matching is exact string
// equality and the original collection order is preserved.
func Filter(items []models.InventoryItem, category, condition string) []models.InventoryItem {
	filtered := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if category != "" && item.ItemCategory != category {
			continue
		}
		if condition != "" && item.ItemCondition != condition {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// Facets returns the distinct category names and condition values present
// in the collection, each in first-occurrence order. They populate the
// filter choices on the inventory list page.
func Facets(items []models.InventoryItem) (categories, conditions []string) {
	categories = []string{}
	conditions = []string{}
	seenCat := make(map[string]bool)
	seenCond := make(map[string]bool)
	for _, item := range items {
		if !seenCat[item.ItemCategory] {
			seenCat[item.ItemCategory] = true
			categories = append(categories, item.ItemCategory)
		}
		if !seenCond[item.ItemCondition] {
			seenCond[item.ItemCondition] = true
			conditions = append(conditions, item.ItemCondition)
		}
	}
	return categories, conditions
}
