// Package handlers is the thin HTTP surface the UI talks to. All
// business rules live below in cart, discount, checkout and tracking;
// handlers only bind requests and translate errors.
package handlers

import (
	"errors"
	"net/http"

	"github.com/Verah-Mokaya/foodcourt-sub000/api"
	"github.com/Verah-Mokaya/foodcourt-sub000/cart"
	"github.com/Verah-Mokaya/foodcourt-sub000/checkout"
	"github.com/Verah-Mokaya/foodcourt-sub000/session"
	"github.com/Verah-Mokaya/foodcourt-sub000/tracking"
)

// Handler carries the injected application components. No package
// globals: everything is wired in main and handed to the routes.
type Handler struct {
	Cart         *cart.Cart
	Session      *session.Store
	API          *api.Client
	Checkout     *checkout.Orchestrator
	Tracker      *tracking.Tracker
	Reservations *tracking.ReservationCache
}

// apiStatus maps an upstream error to the status we answer with:
// the backend's own status when we have it, 502 otherwise.
func apiStatus(err error) int {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusBadGateway
}
