// inventory/stats.go
package inventory

import (
	"sort"
	"time"

	"inventory-tracker/models"
)

// RecentLimit is how many items the dashboard's recent view shows.
const RecentLimit = 5

// ComputeStats derives the inventory totals and per-category rollups from
// the items collection. Counts are summed quantities, value is
// sale_price * quantity and profit is profit_margin * quantity, with the
// same formulas restricted per category.
func ComputeStats(items []models.InventoryItem) models.InventoryStats {
	stats := models.InventoryStats{
		CategoryStats: make(map[string]models.CategoryStat),
	}

	for _, item := range items {
		qty := item.QuantityInStock
		value := item.SalePrice * float64(qty)
		profit := item.ProfitMargin * float64(qty)

		stats.TotalItems += qty
		stats.TotalValue += value
		stats.TotalProfit += profit

		cat := stats.CategoryStats[item.ItemCategory]
		cat.Count += qty
		cat.Value += value
		cat.Profit += profit
		stats.CategoryStats[item.ItemCategory] = cat
	}

	return stats
}

// RecentItems returns the items sorted by purchase date descending,
// truncated to limit. The sort is stable, so items sharing a purchase date
// keep their collection order. Unparseable dates sort last.
func RecentItems(items []models.InventoryItem, limit int) []models.InventoryItem {
	recent := make([]models.InventoryItem, len(items))
	copy(recent, items)

	sort.SliceStable(recent, func(i, j int) bool {
		return purchaseTime(recent[i]).After(purchaseTime(recent[j]))
	})

	if limit >= 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

func purchaseTime(item models.InventoryItem) time.Time {
	t, err := time.Parse("2006-01-02", item.PurchaseDate)
	if err != nil {
		return time.Time{}
	}
	return t
}
