package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Verah-Mokaya/foodcourt-sub000/models"
)

// LoginResponse is what the backend answers on valid credentials.
// Token issuance itself is opaque to the client.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login exchanges credentials for a bearer token and profile.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResponse
	if err := c.do(ctx, "POST", "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Outlets lists all food-court outlets.
func (c *Client) Outlets(ctx context.Context) ([]models.Outlet, error) {
	var out []models.Outlet
	if err := c.do(ctx, "GET", "/outlets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MenuItems lists menu items, optionally filtered to one outlet
// (outletID 0 means all).
func (c *Client) MenuItems(ctx context.Context, outletID uint) ([]models.MenuItem, error) {
	path := "/menu_items"
	if outletID != 0 {
		path += "?" + url.Values{"outlet_id": {fmt.Sprint(outletID)}}.Encode()
	}
	var out []models.MenuItem
	if err := c.do(ctx, "GET", path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMenuItem adds an item to the owner's menu.
func (c *Client) CreateMenuItem(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	var out models.MenuItem
	if err := c.do(ctx, "POST", "/menu_items", item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMenuItem replaces an existing item on the owner's menu.
func (c *Client) UpdateMenuItem(ctx context.Context, id uint, item models.MenuItem) (*models.MenuItem, error) {
	var out models.MenuItem
	if err := c.do(ctx, "PUT", fmt.Sprintf("/menu_items/%d", id), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMenuItem removes an item from the owner's menu.
func (c *Client) DeleteMenuItem(ctx context.Context, id uint) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/menu_items/%d", id), nil, nil)
}

// Tables lists the physical food-court tables.
func (c *Client) Tables(ctx context.Context) ([]models.Table, error) {
	var out []models.Table
	if err := c.do(ctx, "GET", "/food_court_tables", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateReservation books a table.
func (c *Client) CreateReservation(ctx context.Context, r models.Reservation) (*models.Reservation, error) {
	var out models.Reservation
	if err := c.do(ctx, "POST", "/reservations/", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyReservations lists the caller's reservations.
func (c *Client) MyReservations(ctx context.Context) ([]models.Reservation, error) {
	var out []models.Reservation
	if err := c.do(ctx, "GET", "/reservations/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateReservationStatus sets a reservation's status (owner side).
func (c *Client) UpdateReservationStatus(ctx context.Context, id uint, status models.ReservationStatus) error {
	body := map[string]string{"status": string(status)}
	return c.do(ctx, "PUT", fmt.Sprintf("/reservations/%d/status", id), body, nil)
}

// ReassignReservation moves a reservation to a different table.
func (c *Client) ReassignReservation(ctx context.Context, id, tableID uint) error {
	body := map[string]uint{"table_id": tableID}
	return c.do(ctx, "PUT", fmt.Sprintf("/reservations/%d/reassign", id), body, nil)
}

// ConfirmReservation confirms a pending reservation.
func (c *Client) ConfirmReservation(ctx context.Context, id uint) error {
	return c.do(ctx, "PUT", fmt.Sprintf("/reservations/%d/confirm", id), nil, nil)
}

// Orders lists orders visible to the caller (customer history or
// owner dashboard, decided by the backend from the token).
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, "GET", "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOrder submits one per-outlet order payload.
func (c *Client) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	var out models.Order
	if err := c.do(ctx, "POST", "/orders", order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderStatus patches an order's status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	return c.do(ctx, "PATCH", fmt.Sprintf("/orders/%d", id), body, nil)
}
