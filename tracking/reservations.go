package tracking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Verah-Mokaya/foodcourt-sub000/models"
)

// ReservationAPI is the slice of the API client the reservation
// cache needs.
type ReservationAPI interface {
	MyReservations(ctx context.Context) ([]models.Reservation, error)
}

// ReservationCache holds the last reservation list the server
// reported, refreshed by the poller alongside the order tracker.
// Reservations are never edited optimistically — the client only
// reads them.
type ReservationCache struct {
	api ReservationAPI
	log zerolog.Logger

	mu           sync.RWMutex
	reservations []models.Reservation
	refreshed    time.Time
}

func NewReservationCache(api ReservationAPI, log zerolog.Logger) *ReservationCache {
	return &ReservationCache{api: api, log: log}
}

// Refresh pulls the reservation list. On failure the previous list
// is kept so the view degrades to stale rather than empty.
func (r *ReservationCache) Refresh(ctx context.Context) error {
	reservations, err := r.api.MyReservations(ctx)
	if err != nil {
		return fmt.Errorf("refresh reservations: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.reservations = reservations
	r.refreshed = time.Now()
	return nil
}

// List returns a copy of the cached reservations.
func (r *ReservationCache) List() []models.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out
}

// LastRefreshed reports when the cache last agreed with the server.
func (r *ReservationCache) LastRefreshed() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.refreshed
}
