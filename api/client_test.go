package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Verah-Mokaya/foodcourt-sub000/models"
	"github.com/Verah-Mokaya/foodcourt-sub000/session"
	"github.com/Verah-Mokaya/foodcourt-sub000/storage"
)

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess := session.NewStore(storage.NewMemory())
	if token != "" {
		if err := sess.Save(token, models.User{ID: 1, Role: models.RoleCustomer}); err != nil {
			t.Fatal(err)
		}
	}
	return NewClient(server.URL, sess, zerolog.Nop())
}

func TestBearerTokenForwarded(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Outlet{})
	}), "tok-123")

	if _, err := client.Outlets(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
}

func TestNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Outlet{})
	}), "")

	if _, err := client.Outlets(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestErrorCarriesServerMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "table already reserved"})
	}), "tok")

	_, err := client.MyReservations(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *Error, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Message != "table already reserved" {
		t.Errorf("Error = %+v", apiErr)
	}
}

func TestErrorToleratesNonJSONBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}), "tok")

	_, err := client.Orders(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Errorf("Status = %d, want 502", apiErr.Status)
	}
}

func TestCreateOrderPostsPayload(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody models.Order
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		gotBody.ID = 99
		json.NewEncoder(w).Encode(gotBody)
	}), "tok")

	order := models.Order{CustomerID: 7, OutletID: 10, TotalAmount: 1050, Status: models.StatusPending}
	created, err := client.CreateOrder(context.Background(), order)
	if err != nil {
		t.Fatal(err)
	}
	if gotMethod != "POST" || gotPath != "/orders" {
		t.Errorf("Got %s %s, want POST /orders", gotMethod, gotPath)
	}
	if gotBody.OutletID != 10 || gotBody.TotalAmount != 1050 {
		t.Errorf("Payload = %+v", gotBody)
	}
	if created.ID != 99 {
		t.Errorf("Created ID = %d, want 99", created.ID)
	}
}

func TestUpdateOrderStatusPatches(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}), "tok")

	if err := client.UpdateOrderStatus(context.Background(), 42, models.StatusPreparing); err != nil {
		t.Fatal(err)
	}
	if gotMethod != "PATCH" || gotPath != "/orders/42" {
		t.Errorf("Got %s %s, want PATCH /orders/42", gotMethod, gotPath)
	}
}

func TestUpdateMenuItemPuts(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody models.MenuItem
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		gotBody.ID = 5
		json.NewEncoder(w).Encode(gotBody)
	}), "tok")

	updated, err := client.UpdateMenuItem(context.Background(), 5, models.MenuItem{ItemName: "Burger XL", Price: 550, IsAvailable: true})
	if err != nil {
		t.Fatal(err)
	}
	if gotMethod != "PUT" || gotPath != "/menu_items/5" {
		t.Errorf("Got %s %s, want PUT /menu_items/5", gotMethod, gotPath)
	}
	if gotBody.ItemName != "Burger XL" || gotBody.Price != 550 {
		t.Errorf("Payload = %+v", gotBody)
	}
	if updated.ID != 5 {
		t.Errorf("Updated ID = %d, want 5", updated.ID)
	}
}

func TestDeleteMenuItem(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}), "tok")

	if err := client.DeleteMenuItem(context.Background(), 5); err != nil {
		t.Fatal(err)
	}
	if gotMethod != "DELETE" || gotPath != "/menu_items/5" {
		t.Errorf("Got %s %s, want DELETE /menu_items/5", gotMethod, gotPath)
	}
}

func TestMenuItemsOutletFilter(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]models.MenuItem{})
	}), "")

	if _, err := client.MenuItems(context.Background(), 10); err != nil {
		t.Fatal(err)
	}
	if gotQuery != "outlet_id=10" {
		t.Errorf("Query = %q, want outlet_id=10", gotQuery)
	}

	if _, err := client.MenuItems(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if gotQuery != "" {
		t.Errorf("Query = %q, want empty for all outlets", gotQuery)
	}
}
