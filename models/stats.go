// models/stats.go
package models

// CategoryStat is the per-category rollup of item count, sale value and
// profit.
type CategoryStat struct {
	Count  int     `json:"count"`
	Value  float64 `json:"value"`
	Profit float64 `json:"profit"`
}

// InventoryStats is derived fresh from the items collection on every
// request; it is never persisted.
type InventoryStats struct {
	TotalItems    int                     `json:"totalItems"`
	TotalValue    float64                 `json:"totalValue"`
	TotalProfit   float64                 `json:"totalProfit"`
	CategoryStats map[string]CategoryStat `json:"categoryStats"`
}
