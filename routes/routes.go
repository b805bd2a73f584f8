package routes

import (
	"inventory-tracker/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	router *gin.Engine,
	items *controllers.ItemController,
	categories *controllers.CategoryController,
	stats *controllers.InventoryController,
	auth *controllers.AuthController,
) {
	api := router.Group("/api")
	{
		// Item routes
		api.GET("/items", items.ListItems)
		api.POST("/items", items.CreateItem)
		api.DELETE("/items/:id", items.DeleteItem)
		api.GET("/items/filters", items.ListItemFilters)

		// Category routes
		api.GET("/categories", categories.ListCategories)
		api.POST("/categories", categories.CreateCategory)
		api.DELETE("/categories/:id", categories.DeleteCategory)

		// Dashboard routes
		api.GET("/inventory/stats", stats.GetInventoryStats)

		// Auth routes
		api.POST("/auth/login", auth.Login)

		api.GET("/health", controllers.HealthCheck)
	}
}
