package models

import "time"

// ReservationStatus mirrors the backend's reservation lifecycle.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCanceled  ReservationStatus = "canceled"
)

type Reservation struct {
	ID            uint              `json:"id"`
	CustomerID    uint              `json:"customer_id"`
	OutletID      uint              `json:"outlet_id"`
	TableID       uint              `json:"table_id"`
	Status        ReservationStatus `json:"status"`
	IsFeeDeducted bool              `json:"is_fee_deducted"`
	Guests        int               `json:"guests"`
	ReservedTime  time.Time         `json:"time_reserved_for"`
}
