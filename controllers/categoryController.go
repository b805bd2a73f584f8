// controllers/categoryController.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inventory-tracker/models"
	"inventory-tracker/repository"
)

type CreateCategoryRequest struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

type CategoryController struct {
	categories *repository.Categories
}

func NewCategoryController(categories *repository.Categories) *CategoryController {
	return &CategoryController{categories: categories}
}

// ListCategories returns the full categories collection.
func (ctl *CategoryController) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.categories.Get())
}

// CreateCategory appends a category with the next ID. Subcategory order is
// preserved from the request; an absent list becomes an empty one.
func (ctl *CategoryController) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categories := ctl.categories.Get()

	newID := 1
	for _, cat := range categories {
		if cat.ID >= newID {
			newID = cat.ID + 1
		}
	}

	subcategories := req.Subcategories
	if subcategories == nil {
		subcategories = []string{}
	}

	newCategory := models.Category{
		ID:            newID,
		Name:          req.Name,
		Subcategories: subcategories,
	}

	categories = append(categories, newCategory)
	if err := ctl.categories.Save(categories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, newCategory)
}

// DeleteCategory removes the category with the given ID. Items referencing
// the deleted category's name are left untouched.
func (ctl *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	categories := ctl.categories.Get()
	remaining := make([]models.Category, 0, len(categories))
	for _, cat := range categories {
		if cat.ID != id {
			remaining = append(remaining, cat)
		}
	}

	if err := ctl.categories.Save(remaining); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
