package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"inventory-tracker/models"
	"inventory-tracker/repository"
	"inventory-tracker/store"
)

func setupInventoryRouter(t *testing.T) (*gin.Engine, *repository.Items) {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	itemsRepo := repository.NewItems(store.New(t.TempDir(), logger))
	ctl := NewInventoryController(itemsRepo)

	router := gin.New()
	router.GET("/api/inventory/stats", ctl.GetInventoryStats)
	return router, itemsRepo
}

type statsResponse struct {
	Stats       models.InventoryStats  `json:"stats"`
	RecentItems []models.InventoryItem `json:"recentItems"`
}

func TestGetInventoryStatsOverDefaultSeed(t *testing.T) {
	router, _ := setupInventoryRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp statsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Seed: TV qty 5 at 55000/10000, sofa qty 3 at 95000/20000.
	assert.Equal(t, 8, resp.Stats.TotalItems)
	assert.Equal(t, 55000.0*5+95000.0*3, resp.Stats.TotalValue)
	assert.Equal(t, 10000.0*5+20000.0*3, resp.Stats.TotalProfit)
	assert.Equal(t, 5, resp.Stats.CategoryStats["Electronics"].Count)
	assert.Equal(t, 3, resp.Stats.CategoryStats["Furniture"].Count)

	// TV (2024-01-15) was purchased after the sofa (2024-01-10).
	assert.Len(t, resp.RecentItems, 2)
	assert.Equal(t, 1, resp.RecentItems[0].ItemID)
	assert.Equal(t, 2, resp.RecentItems[1].ItemID)
}

func TestGetInventoryStatsEmptyCollection(t *testing.T) {
	router, repo := setupInventoryRouter(t)
	assert.NoError(t, repo.Save([]models.InventoryItem{}))

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp statsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Stats.TotalItems)
	assert.Equal(t, 0.0, resp.Stats.TotalValue)
	assert.Equal(t, 0.0, resp.Stats.TotalProfit)
	assert.Empty(t, resp.Stats.CategoryStats)
	assert.Empty(t, resp.RecentItems)
}

func TestGetInventoryStatsLimitsRecentToFive(t *testing.T) {
	router, repo := setupInventoryRouter(t)

	var items []models.InventoryItem
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06", "2024-01-07"}
	for i, d := range dates {
		items = append(items, models.InventoryItem{ItemID: i + 1, PurchaseDate: d, QuantityInStock: 1})
	}
	assert.NoError(t, repo.Save(items))

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp statsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.RecentItems, 5)
	assert.Equal(t, 7, resp.RecentItems[0].ItemID)
}
