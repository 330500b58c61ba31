package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Verah-Mokaya/foodcourt-sub000/api"
	"github.com/Verah-Mokaya/foodcourt-sub000/cart"
	"github.com/Verah-Mokaya/foodcourt-sub000/checkout"
	"github.com/Verah-Mokaya/foodcourt-sub000/config"
	"github.com/Verah-Mokaya/foodcourt-sub000/handlers"
	"github.com/Verah-Mokaya/foodcourt-sub000/payment"
	"github.com/Verah-Mokaya/foodcourt-sub000/poll"
	"github.com/Verah-Mokaya/foodcourt-sub000/routes"
	"github.com/Verah-Mokaya/foodcourt-sub000/session"
	"github.com/Verah-Mokaya/foodcourt-sub000/storage"
	"github.com/Verah-Mokaya/foodcourt-sub000/tracking"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Durable local storage — plays the role localStorage plays for
	// the web client.
	kv, err := storage.OpenSQLite(cfg.StoragePath)
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}

	sess := session.NewStore(kv)
	client := api.NewClient(cfg.APIBaseURL, sess, logger.With().Str("component", "api").Logger())
	userCart := cart.New(kv, logger.With().Str("component", "cart").Logger())
	gateway := payment.Gateway{Delay: cfg.PaymentDelay}
	orchestrator := checkout.NewOrchestrator(
		userCart, client, client, gateway,
		logger.With().Str("component", "checkout").Logger(),
	)
	tracker := tracking.NewTracker(client, logger.With().Str("component", "tracking").Logger())
	reservationCache := tracking.NewReservationCache(client, logger.With().Str("component", "tracking").Logger())

	// Keep the order and reservation views fresh while the app runs.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poller := poll.New(cfg.PollInterval, logger.With().Str("component", "poll").Logger())
	poller.Run(ctx, "orders", tracker.Refresh)
	poller.Run(ctx, "reservations", reservationCache.Refresh)

	h := &handlers.Handler{
		Cart:         userCart,
		Session:      sess,
		API:          client,
		Checkout:     orchestrator,
		Tracker:      tracker,
		Reservations: reservationCache,
	}

	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Court Ordering",
			"api":     cfg.APIBaseURL,
		})
	})

	routes.SetupRoutes(r, h, sess)

	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
