// controllers/inventoryController.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-tracker/inventory"
	"inventory-tracker/repository"
)

type InventoryController struct {
	items *repository.Items
}

func NewInventoryController(items *repository.Items) *InventoryController {
	return &InventoryController{items: items}
}

// GetInventoryStats returns the dashboard payload: totals with per-category
// rollups plus the five most recently purchased items. Both are derived
// fresh from the items document on every request.
func (ctl *InventoryController) GetInventoryStats(c *gin.Context) {
	items := ctl.items.Get()

	c.JSON(http.StatusOK, gin.H{
		"stats":       inventory.ComputeStats(items),
		"recentItems": inventory.RecentItems(items, inventory.RecentLimit),
	})
}
