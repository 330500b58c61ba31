package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Verah-Mokaya/foodcourt-sub000/models"
)

// ListOutlets proxies the outlet list. Read failures surface as an
// inline error, never a crash.
func (h *Handler) ListOutlets(c *gin.Context) {
	outlets, err := h.API.Outlets(c.Request.Context())
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": "Failed to load outlets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(outlets), "outlets": outlets})
}

// ListMenuItems proxies the menu, optionally filtered by outlet.
func (h *Handler) ListMenuItems(c *gin.Context) {
	var outletID uint
	if v := c.Query("outlet_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid outlet id"})
			return
		}
		outletID = uint(id)
	}

	items, err := h.API.MenuItems(c.Request.Context(), outletID)
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

type CreateMenuItemRequest struct {
	OutletID    uint    `json:"outlet_id" binding:"required"`
	ItemName    string  `json:"item_name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// CreateMenuItem forwards a new menu item to the backend (owner
// dashboard).
func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.API.CreateMenuItem(c.Request.Context(), models.MenuItem{
		OutletID:    req.OutletID,
		ItemName:    req.ItemName,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	})
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item created", "item": item})
}

type UpdateMenuItemRequest struct {
	ItemName    string  `json:"item_name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	IsAvailable *bool   `json:"is_available"`
}

// UpdateMenuItem forwards a menu item edit to the backend (owner
// dashboard). A missing is_available keeps the item on sale.
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}
	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	item, err := h.API.UpdateMenuItem(c.Request.Context(), uint(id), models.MenuItem{
		ItemName:    req.ItemName,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsAvailable: available,
	})
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a menu item (owner dashboard).
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}
	if err := h.API.DeleteMenuItem(c.Request.Context(), uint(id)); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// ListTables proxies the food-court table list for the booking view.
func (h *Handler) ListTables(c *gin.Context) {
	tables, err := h.API.Tables(c.Request.Context())
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": "Failed to load tables"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(tables), "tables": tables})
}
