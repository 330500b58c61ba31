package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Verah-Mokaya/foodcourt-sub000/handlers"
	"github.com/Verah-Mokaya/foodcourt-sub000/middleware"
	"github.com/Verah-Mokaya/foodcourt-sub000/session"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, sess *session.Store) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", h.Login)

		// Browsing needs no session
		public.GET("/outlets", h.ListOutlets)
		public.GET("/menu", h.ListMenuItems)
		public.GET("/tables", h.ListTables)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Cart routes ────────────────────────────────────────────────
	// The cart is local state; no session needed to fill it.
	cart := r.Group("/api/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddCartItem)
		cart.PUT("/items/:menuItemId/quantity", h.UpdateCartQuantity)
		cart.DELETE("/items/:menuItemId", h.RemoveCartItem)
		cart.DELETE("", h.ClearCart)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.SessionRequired(sess))
	{
		auth.GET("/profile", h.GetProfile)
		auth.POST("/auth/logout", h.Logout)

		// Checkout and money view
		auth.GET("/cart/summary", h.GetCartSummary)
		auth.POST("/checkout", h.PlaceOrders)

		// Reservations
		auth.POST("/reservations", h.CreateReservation)
		auth.GET("/reservations", h.ListMyReservations)
		auth.PUT("/reservations/:id/status", h.UpdateReservationStatus)
		auth.PUT("/reservations/:id/confirm", h.ConfirmReservation)
		auth.PUT("/reservations/:id/reassign", h.ReassignReservation)

		// Orders (customer history + owner dashboard share the list;
		// the backend scopes it by token)
		auth.GET("/orders", h.ListOrders)
		auth.PUT("/orders/:id/status", h.AdvanceOrder)

		// Owner menu management
		auth.POST("/menu", h.CreateMenuItem)
		auth.PUT("/menu/:itemId", h.UpdateMenuItem)
		auth.DELETE("/menu/:itemId", h.DeleteMenuItem)
	}
}
