// controllers/itemController.go
package controllers

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"inventory-tracker/inventory"
	"inventory-tracker/models"
	"inventory-tracker/repository"
)

// CreateItemRequest carries the item form fields. Values arrive as strings
// from the form-driven client; numeric fields are parsed after the
// required-field check.
type CreateItemRequest struct {
	ItemName        string `json:"item_name" validate:"required"`
	ItemCategory    string `json:"item_category" validate:"required"`
	ItemSubcategory string `json:"item_subcategory"`
	ItemCondition   string `json:"item_condition" validate:"required"`
	PurchasePrice   string `json:"purchase_price" validate:"required"`
	SalePrice       string `json:"sale_price" validate:"required"`
	QuantityInStock string `json:"quantity_in_stock" validate:"required"`
	PurchaseDate    string `json:"purchase_date" validate:"required"`
	SaleDate        string `json:"sale_date"`
	Description     string `json:"description"`
}

var validate = newValidator()

// newValidator reports field names by their json tag so validation errors
// name the request fields the client actually sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type ItemController struct {
	items *repository.Items
}

func NewItemController(items *repository.Items) *ItemController {
	return &ItemController{items: items}
}

// ListItems returns the full items collection, optionally narrowed by the
// category and condition query parameters.
func (ctl *ItemController) ListItems(c *gin.Context) {
	items := ctl.items.Get()
	filtered := inventory.Filter(items, c.Query("category"), c.Query("condition"))
	c.JSON(http.StatusOK, filtered)
}

// ListItemFilters returns the distinct category and condition values
// present in the collection, for populating filter choices.
func (ctl *ItemController) ListItemFilters(c *gin.Context) {
	categories, conditions := inventory.Facets(ctl.items.Get())
	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"conditions": conditions,
	})
}

// CreateItem validates the form fields, assigns the next ID, computes the
// profit margin and appends the item to the collection.
func (ctl *ItemController) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validate.Struct(req); err != nil {
		var missing []string
		for _, fe := range err.(validator.ValidationErrors) {
			missing = append(missing, fe.Field())
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
		})
		return
	}

	purchasePrice, perr := strconv.ParseFloat(req.PurchasePrice, 64)
	salePrice, serr := strconv.ParseFloat(req.SalePrice, 64)
	quantity, qerr := strconv.Atoi(req.QuantityInStock)
	if perr != nil || serr != nil || qerr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Purchase price, sale price, and quantity must be valid numbers",
		})
		return
	}

	items := ctl.items.Get()

	newID := 1
	for _, item := range items {
		if item.ItemID >= newID {
			newID = item.ItemID + 1
		}
	}

	newItem := models.InventoryItem{
		ItemID:          newID,
		ItemName:        req.ItemName,
		ItemCategory:    req.ItemCategory,
		ItemSubcategory: req.ItemSubcategory,
		ItemCondition:   req.ItemCondition,
		PurchasePrice:   purchasePrice,
		SalePrice:       salePrice,
		QuantityInStock: quantity,
		PurchaseDate:    req.PurchaseDate,
		SaleDate:        req.SaleDate,
		ProfitMargin:    salePrice - purchasePrice,
		Description:     req.Description,
	}

	items = append(items, newItem)
	if err := ctl.items.Save(items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	c.JSON(http.StatusCreated, newItem)
}

// DeleteItem removes the item with the given ID. Deleting an absent ID is
// a no-op, not an error.
func (ctl *ItemController) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	items := ctl.items.Get()
	remaining := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.ItemID != id {
			remaining = append(remaining, item)
		}
	}

	if err := ctl.items.Save(remaining); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
