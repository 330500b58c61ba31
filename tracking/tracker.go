// Package tracking keeps a server-authoritative cache of the
// caller's orders, refreshed by the poller. Status changes the client
// triggers are held as optimistic, unconfirmed entries until the next
// poll agrees (or disagrees and rolls them back).
package tracking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Verah-Mokaya/foodcourt-sub000/models"
	"github.com/Verah-Mokaya/foodcourt-sub000/statemachine"
)

// OrderAPI is the slice of the API client the tracker needs.
type OrderAPI interface {
	Orders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) error
}

// Entry is one cached order plus whether its status is confirmed by
// the server or still an optimistic local guess.
type Entry struct {
	Order     models.Order `json:"order"`
	Confirmed bool         `json:"confirmed"`
}

type Tracker struct {
	api OrderAPI
	log zerolog.Logger

	mu         sync.RWMutex
	orders     map[uint]models.Order
	optimistic map[uint]models.OrderStatus
	refreshed  time.Time
}

func NewTracker(api OrderAPI, log zerolog.Logger) *Tracker {
	return &Tracker{
		api:        api,
		log:        log,
		orders:     make(map[uint]models.Order),
		optimistic: make(map[uint]models.OrderStatus),
	}
}

// Refresh pulls the order list and reconciles optimistic entries:
// once the server reports the status we guessed (or any other), the
// guess is dropped and the server wins.
func (t *Tracker) Refresh(ctx context.Context) error {
	orders, err := t.api.Orders(ctx)
	if err != nil {
		return fmt.Errorf("refresh orders: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.orders = make(map[uint]models.Order, len(orders))
	for _, o := range orders {
		t.orders[o.ID] = o
		if guess, ok := t.optimistic[o.ID]; ok {
			if guess != o.Status {
				t.log.Debug().
					Uint("order_id", o.ID).
					Str("guessed", string(guess)).
					Str("actual", string(o.Status)).
					Msg("Optimistic status rolled back by server")
			}
			delete(t.optimistic, o.ID)
		}
	}
	t.refreshed = time.Now()
	return nil
}

// Entries returns the cached orders with optimistic statuses applied
// and flagged unconfirmed.
func (t *Tracker) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Entry, 0, len(t.orders))
	for id, o := range t.orders {
		e := Entry{Order: o, Confirmed: true}
		if guess, ok := t.optimistic[id]; ok {
			e.Order.Status = guess
			e.Confirmed = false
		}
		out = append(out, e)
	}
	return out
}

// LastRefreshed reports when the cache last agreed with the server.
func (t *Tracker) LastRefreshed() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.refreshed
}

// Advance asks the backend to move an order forward and records the
// new status optimistically. The transition is checked against the
// state machine first so impossible PATCHes never leave the client.
func (t *Tracker) Advance(ctx context.Context, id uint, to models.OrderStatus, actor string) error {
	t.mu.RLock()
	current, ok := t.orders[id]
	t.mu.RUnlock()
	if !ok {
		return fmt.Errorf("order %d not in cache", id)
	}

	if err := statemachine.CanTransition(current.Status, to, actor); err != nil {
		return err
	}

	if err := t.api.UpdateOrderStatus(ctx, id, to); err != nil {
		return fmt.Errorf("update order %d: %w", id, err)
	}

	t.mu.Lock()
	t.optimistic[id] = to
	t.mu.Unlock()
	return nil
}
