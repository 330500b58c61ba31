package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Verah-Mokaya/foodcourt-sub000/models"
)

type AddCartItemRequest struct {
	MenuItemID uint    `json:"menu_item_id" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"gte=0"`
	Quantity   int     `json:"quantity"`
	OutletID   uint    `json:"outlet_id" binding:"required"`
	OutletName string  `json:"outlet_name"`
}

// GetCart returns the current lines and derived totals.
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":      h.Cart.Items(),
		"total":      h.Cart.Total(),
		"item_count": h.Cart.ItemCount(),
	})
}

// AddCartItem adds a line (or bumps quantity of an existing one).
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Cart.Add(models.CartItem{
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Price:      req.Price,
		Quantity:   req.Quantity,
		OutletID:   req.OutletID,
		OutletName: req.OutletName,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":    "Item added to cart",
		"item_count": h.Cart.ItemCount(),
		"total":      h.Cart.Total(),
	})
}

// RemoveCartItem deletes a line entirely.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("menuItemId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}
	h.Cart.Remove(uint(id))
	c.JSON(http.StatusOK, gin.H{
		"message":    "Item removed",
		"item_count": h.Cart.ItemCount(),
		"total":      h.Cart.Total(),
	})
}

// UpdateQuantityRequest carries the quantity delta. Zero is a valid
// (no-op) delta, so the field is not required.
type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}

// UpdateCartQuantity applies a quantity delta, clamped at 1.
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("menuItemId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Cart.UpdateQuantity(uint(id), req.Delta)
	c.JSON(http.StatusOK, gin.H{
		"items":      h.Cart.Items(),
		"item_count": h.Cart.ItemCount(),
		"total":      h.Cart.Total(),
	})
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	h.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// GetCartSummary returns subtotal, reservation discount and payable
// total for the current cart.
func (h *Handler) GetCartSummary(c *gin.Context) {
	summary, err := h.Checkout.Summary(c.Request.Context())
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": "Failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"item_count":      h.Cart.ItemCount(),
		"subtotal":        summary.Subtotal,
		"discount_amount": summary.DiscountAmount,
		"payable_total":   summary.PayableTotal,
	})
}
