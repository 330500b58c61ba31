package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Verah-Mokaya/foodcourt-sub000/checkout"
	"github.com/Verah-Mokaya/foodcourt-sub000/models"
	"github.com/Verah-Mokaya/foodcourt-sub000/payment"
)

type CheckoutRequest struct {
	OrderType   models.OrderType `json:"order_type" binding:"required,oneof=dine-in takeaway"`
	TableNumber string           `json:"table_number"`
	Payment     struct {
		Method      string `json:"method" binding:"required,oneof=mpesa mobile-money card cash"`
		PhoneNumber string `json:"phone_number"`
		CardNumber  string `json:"card_number"`
		CardExpiry  string `json:"card_expiry"`
	} `json:"payment" binding:"required"`
}

// PlaceOrders runs the full checkout: one order per outlet in the
// cart, all of them or none.
func (h *Handler) PlaceOrders(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customerID, err := h.Session.CustomerID()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	result, err := h.Checkout.Checkout(c.Request.Context(), checkout.Request{
		CustomerID:  customerID,
		OrderType:   req.OrderType,
		TableNumber: req.TableNumber,
		Payment: payment.FromRequest(
			req.Payment.Method,
			req.Payment.PhoneNumber,
			req.Payment.CardNumber,
			req.Payment.CardExpiry,
		),
	})
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
	case errors.Is(err, checkout.ErrTableNumberRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a table number"})
	case err != nil:
		// Cart stays intact; the customer may retry.
		c.JSON(apiStatus(err), gin.H{"error": "Failed to place order"})
	default:
		c.JSON(http.StatusCreated, gin.H{
			"message":         "Order placed successfully",
			"orders":          result.Orders,
			"subtotal":        result.Subtotal,
			"discount_amount": result.DiscountAmount,
			"payable_total":   result.PayableTotal,
		})
	}
}
