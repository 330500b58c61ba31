package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Verah-Mokaya/foodcourt-sub000/cart"
	"github.com/Verah-Mokaya/foodcourt-sub000/models"
	"github.com/Verah-Mokaya/foodcourt-sub000/storage"
)

func newCartRouter(t *testing.T) (*gin.Engine, *cart.Cart) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c := cart.New(storage.NewMemory(), zerolog.Nop())
	h := &Handler{Cart: c}

	r := gin.New()
	r.PUT("/api/cart/items/:menuItemId/quantity", h.UpdateCartQuantity)
	return r, c
}

func putQuantity(t *testing.T, r *gin.Engine, menuItemID string, delta int) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]int{"delta": delta})
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("PUT", "/api/cart/items/"+menuItemID+"/quantity", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateCartQuantityAcceptsZeroDelta(t *testing.T) {
	r, c := newCartRouter(t)
	c.Add(models.CartItem{MenuItemID: 1, Name: "Burger", Price: 450, Quantity: 2, OutletID: 10})

	w := putQuantity(t, r, "1", 0)
	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if qty := c.Items()[0].Quantity; qty != 2 {
		t.Errorf("Quantity = %d, want unchanged 2", qty)
	}
}

func TestUpdateCartQuantityClampsThroughHandler(t *testing.T) {
	r, c := newCartRouter(t)
	c.Add(models.CartItem{MenuItemID: 1, Name: "Burger", Price: 450, Quantity: 2, OutletID: 10})

	w := putQuantity(t, r, "1", -10)
	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", w.Code)
	}
	if qty := c.Items()[0].Quantity; qty != 1 {
		t.Errorf("Quantity = %d, want clamped 1", qty)
	}
}

func TestUpdateCartQuantityBadID(t *testing.T) {
	r, _ := newCartRouter(t)
	w := putQuantity(t, r, "abc", 1)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", w.Code)
	}
}
