package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Verah-Mokaya/foodcourt-sub000/models"
	"github.com/Verah-Mokaya/foodcourt-sub000/statemachine"
)

// ListOrders serves the cached order list (kept fresh by the poller)
// with a summary grouped by status.
func (h *Handler) ListOrders(c *gin.Context) {
	entries := h.Tracker.Entries()

	summary := map[string]int{}
	for _, e := range entries {
		summary[string(e.Order.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"count":          len(entries),
		"order_summary":  summary,
		"orders":         entries,
		"last_refreshed": h.Tracker.LastRefreshed(),
	})
}

type AdvanceOrderRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Actor  string             `json:"actor" binding:"required,oneof=owner customer"`
}

// AdvanceOrder drives an order forward (or cancels it from pending).
// The transition table gates the call before anything hits the
// network.
func (h *Handler) AdvanceOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}
	var req AdvanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Tracker.Advance(c.Request.Context(), uint(id), req.Status, req.Actor); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Cannot update order status",
			"reason": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Order status updated",
		"order_id":       id,
		"current_status": req.Status,
	})
}

// GetStateMachineInfo documents the order lifecycle for the UI.
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.AllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []models.OrderStatus{models.StatusCompleted, models.StatusCancelled},
		"description":     "Food Court Order Lifecycle State Machine",
	})
}
