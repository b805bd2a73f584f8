// main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"inventory-tracker/config"
	"inventory-tracker/controllers"
	"inventory-tracker/middleware"
	"inventory-tracker/repository"
	"inventory-tracker/routes"
	"inventory-tracker/store"
)

func main() {
	// Load environment variables.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	logger := config.NewLogger(cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the flat-file store and repositories.
	dataStore := store.New(cfg.DataDir, logger)
	itemsRepo := repository.NewItems(dataStore)
	categoriesRepo := repository.NewCategories(dataStore)
	usersRepo := repository.NewUsers(dataStore)

	itemController := controllers.NewItemController(itemsRepo)
	categoryController := controllers.NewCategoryController(categoriesRepo)
	inventoryController := controllers.NewInventoryController(itemsRepo)
	authController := controllers.NewAuthController(usersRepo)

	// Create a new Gin router.
	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery())

	// Register the API routes.
	routes.RegisterRoutes(router, itemController, categoryController, inventoryController, authController)

	logger.WithField("port", cfg.Port).Info("starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
