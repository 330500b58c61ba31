package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Verah-Mokaya/foodcourt-sub000/models"
)

type CreateReservationRequest struct {
	OutletID     uint      `json:"outlet_id" binding:"required"`
	TableID      uint      `json:"table_id" binding:"required"`
	Guests       int       `json:"guests" binding:"required,min=1"`
	ReservedTime time.Time `json:"time_reserved_for" binding:"required"`
}

// CreateReservation books a table for the logged-in customer.
func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customerID, err := h.Session.CustomerID()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	reservation, err := h.API.CreateReservation(c.Request.Context(), models.Reservation{
		CustomerID:   customerID,
		OutletID:     req.OutletID,
		TableID:      req.TableID,
		Guests:       req.Guests,
		ReservedTime: req.ReservedTime,
		Status:       models.ReservationPending,
	})
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": "Failed to create reservation"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Reservation created", "reservation": reservation})
}

// ListMyReservations serves the cached reservation list, kept fresh
// by the same poll loop as the order view.
func (h *Handler) ListMyReservations(c *gin.Context) {
	reservations := h.Reservations.List()
	c.JSON(http.StatusOK, gin.H{
		"count":          len(reservations),
		"reservations":   reservations,
		"last_refreshed": h.Reservations.LastRefreshed(),
	})
}

type UpdateReservationStatusRequest struct {
	Status models.ReservationStatus `json:"status" binding:"required,oneof=pending confirmed canceled"`
}

// UpdateReservationStatus sets a reservation's status (owner
// dashboard).
func (h *Handler) UpdateReservationStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}
	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.API.UpdateReservationStatus(c.Request.Context(), uint(id), req.Status); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": "Failed to update reservation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation updated"})
}

// ConfirmReservation confirms a pending reservation.
func (h *Handler) ConfirmReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}
	if err := h.API.ConfirmReservation(c.Request.Context(), uint(id)); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": "Failed to confirm reservation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation confirmed"})
}

type ReassignReservationRequest struct {
	TableID uint `json:"table_id" binding:"required"`
}

// ReassignReservation moves a reservation to another table.
func (h *Handler) ReassignReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}
	var req ReassignReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.API.ReassignReservation(c.Request.Context(), uint(id), req.TableID); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": "Failed to reassign reservation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation reassigned"})
}
