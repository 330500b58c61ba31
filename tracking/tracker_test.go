package tracking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Verah-Mokaya/foodcourt-sub000/models"
)

type fakeOrderAPI struct {
	mu      sync.Mutex
	orders  []models.Order
	patches []struct {
		id     uint
		status models.OrderStatus
	}
	listErr  error
	patchErr error
}

func (f *fakeOrderAPI) Orders(ctx context.Context) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeOrderAPI) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.patchErr != nil {
		return f.patchErr
	}
	f.patches = append(f.patches, struct {
		id     uint
		status models.OrderStatus
	}{id, status})
	return nil
}

func (f *fakeOrderAPI) setStatus(id uint, status models.OrderStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
		}
	}
}

func entryByID(entries []Entry, id uint) (Entry, bool) {
	for _, e := range entries {
		if e.Order.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

func TestRefreshPopulatesCache(t *testing.T) {
	api := &fakeOrderAPI{orders: []models.Order{
		{ID: 1, Status: models.StatusPending},
		{ID: 2, Status: models.StatusReady},
	}}
	tr := NewTracker(api, zerolog.Nop())

	if err := tr.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	entries := tr.Entries()
	if len(entries) != 2 {
		t.Fatalf("Got %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		if !e.Confirmed {
			t.Errorf("Order %d should be confirmed after a refresh", e.Order.ID)
		}
	}
	if tr.LastRefreshed().IsZero() {
		t.Error("LastRefreshed not set")
	}
}

func TestAdvanceIsOptimisticUntilNextPoll(t *testing.T) {
	api := &fakeOrderAPI{orders: []models.Order{{ID: 1, Status: models.StatusPending}}}
	tr := NewTracker(api, zerolog.Nop())
	if err := tr.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := tr.Advance(context.Background(), 1, models.StatusPreparing, "owner"); err != nil {
		t.Fatal(err)
	}

	e, ok := entryByID(tr.Entries(), 1)
	if !ok {
		t.Fatal("Order 1 missing from cache")
	}
	if e.Order.Status != models.StatusPreparing || e.Confirmed {
		t.Errorf("Expected unconfirmed preparing, got %+v", e)
	}

	// Server catches up; the next poll confirms.
	api.setStatus(1, models.StatusPreparing)
	if err := tr.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	e, _ = entryByID(tr.Entries(), 1)
	if e.Order.Status != models.StatusPreparing || !e.Confirmed {
		t.Errorf("Expected confirmed preparing, got %+v", e)
	}
}

func TestServerTruthRollsBackOptimisticStatus(t *testing.T) {
	api := &fakeOrderAPI{orders: []models.Order{{ID: 1, Status: models.StatusPending}}}
	tr := NewTracker(api, zerolog.Nop())
	if err := tr.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := tr.Advance(context.Background(), 1, models.StatusPreparing, "owner"); err != nil {
		t.Fatal(err)
	}

	// Server says the order got cancelled instead.
	api.setStatus(1, models.StatusCancelled)
	if err := tr.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	e, _ := entryByID(tr.Entries(), 1)
	if e.Order.Status != models.StatusCancelled || !e.Confirmed {
		t.Errorf("Server truth must win, got %+v", e)
	}
}

func TestAdvanceRejectsInvalidTransitionBeforeNetwork(t *testing.T) {
	api := &fakeOrderAPI{orders: []models.Order{{ID: 1, Status: models.StatusCompleted}}}
	tr := NewTracker(api, zerolog.Nop())
	if err := tr.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := tr.Advance(context.Background(), 1, models.StatusPending, "owner"); err == nil {
		t.Fatal("Backward transition must be rejected")
	}
	if len(api.patches) != 0 {
		t.Errorf("No PATCH should leave the client, got %d", len(api.patches))
	}
}

type fakeReservationAPI struct {
	reservations []models.Reservation
	err          error
}

func (f *fakeReservationAPI) MyReservations(ctx context.Context) ([]models.Reservation, error) {
	return f.reservations, f.err
}

func TestReservationCacheRefresh(t *testing.T) {
	api := &fakeReservationAPI{reservations: []models.Reservation{
		{ID: 1, OutletID: 10, Status: models.ReservationConfirmed},
		{ID: 2, OutletID: 20, Status: models.ReservationPending},
	}}
	cache := NewReservationCache(api, zerolog.Nop())

	if len(cache.List()) != 0 || !cache.LastRefreshed().IsZero() {
		t.Error("Fresh cache should be empty")
	}

	if err := cache.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	got := cache.List()
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("List() = %+v", got)
	}
	if cache.LastRefreshed().IsZero() {
		t.Error("LastRefreshed not set")
	}
}

func TestReservationCacheKeepsStaleListOnError(t *testing.T) {
	api := &fakeReservationAPI{reservations: []models.Reservation{
		{ID: 1, OutletID: 10, Status: models.ReservationConfirmed},
	}}
	cache := NewReservationCache(api, zerolog.Nop())
	if err := cache.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	api.err = errors.New("backend down")
	if err := cache.Refresh(context.Background()); err == nil {
		t.Fatal("Expected refresh error")
	}
	if got := cache.List(); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Stale list should survive a failed refresh, got %+v", got)
	}
}

func TestAdvancePatchFailureKeepsServerStatus(t *testing.T) {
	api := &fakeOrderAPI{
		orders:   []models.Order{{ID: 1, Status: models.StatusPending}},
		patchErr: errors.New("backend down"),
	}
	tr := NewTracker(api, zerolog.Nop())
	if err := tr.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := tr.Advance(context.Background(), 1, models.StatusPreparing, "owner"); err == nil {
		t.Fatal("Expected patch failure to surface")
	}
	e, _ := entryByID(tr.Entries(), 1)
	if e.Order.Status != models.StatusPending || !e.Confirmed {
		t.Errorf("Failed advance must not leave an optimistic entry, got %+v", e)
	}
}
