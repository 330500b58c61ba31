package models

import "time"

// OrderStatus represents all possible states of a food-court order.
// The backend owns the lifecycle; the client only triggers the forward
// transitions it is allowed to.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderType distinguishes eating at the court from taking food away.
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
)

type Order struct {
	ID             uint        `json:"id,omitempty"`
	CustomerID     uint        `json:"customer_id"`
	OutletID       uint        `json:"outlet_id"`
	TotalAmount    float64     `json:"total_amount"`
	Status         OrderStatus `json:"status"`
	OrderType      OrderType   `json:"order_type"`
	TableNumber    string      `json:"table_number"`
	ReservationID  *uint       `json:"reservation_id,omitempty"`
	OrderItems     []OrderItem `json:"order_items"`
	PaymentInfo    PaymentInfo `json:"payment_info"`
	IdempotencyKey string      `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

type OrderItem struct {
	MenuItemID uint    `json:"menu_item_id"`
	ItemName   string  `json:"item_name,omitempty"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"` // snapshot price at time of order
}

// PaymentInfo is the wire shape of a chosen payment method. Only the
// fields relevant to the method are set (see the payment package).
type PaymentInfo struct {
	Method      string    `json:"method"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Card        *CardInfo `json:"card,omitempty"`
}

// CardInfo never carries a full card number; Number holds the masked
// descriptor (e.g. "**** 4242").
type CardInfo struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
}
