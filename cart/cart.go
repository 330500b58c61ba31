// Package cart implements the customer's cart: line items keyed by
// menu item, synchronous totals, and a full-snapshot persistence on
// every mutation so the cart survives restarts.
package cart

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Verah-Mokaya/foodcourt-sub000/models"
	"github.com/Verah-Mokaya/foodcourt-sub000/storage"
)

// Fixed storage key shared with the web client.
const storageKey = "fc_cart"

type Cart struct {
	mu    sync.Mutex
	kv    storage.Store
	items []models.CartItem
	log   zerolog.Logger
}

// New builds a cart rehydrated from kv. A missing entry means an
// empty cart; a corrupt entry is dropped with a warning rather than
// failing startup.
func New(kv storage.Store, log zerolog.Logger) *Cart {
	c := &Cart{kv: kv, log: log}
	raw, ok, err := kv.Get(storageKey)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read stored cart, starting empty")
		return c
	}
	if !ok {
		return c
	}
	if err := json.Unmarshal([]byte(raw), &c.items); err != nil {
		log.Warn().Err(err).Msg("Discarding corrupt stored cart")
		c.items = nil
	}
	return c
}

// Add appends a new line or bumps the quantity of an existing one.
// A non-positive quantity on the incoming item counts as 1.
func (c *Cart) Add(item models.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].MenuItemID == item.MenuItemID {
			c.items[i].Quantity += item.Quantity
			c.persist()
			return
		}
	}
	c.items = append(c.items, item)
	c.persist()
}

// Remove deletes the line for menuItemID entirely; no-op if absent.
func (c *Cart) Remove(menuItemID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].MenuItemID == menuItemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}

// UpdateQuantity applies delta to the line's quantity, clamped at 1.
// The line is never removed here, no matter how negative delta is.
func (c *Cart) UpdateQuantity(menuItemID uint, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].MenuItemID == menuItemID {
			q := c.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.items[i].Quantity = q
			c.persist()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persist()
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the subtotal over all lines, recomputed on every call.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, it := range c.items {
		total += it.LineTotal()
	}
	return total
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// OutletIDs lists the distinct outlets represented in the cart, in
// first-appearance order.
func (c *Cart) OutletIDs() []uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	seen := map[uint]bool{}
	var ids []uint
	for _, it := range c.items {
		if !seen[it.OutletID] {
			seen[it.OutletID] = true
			ids = append(ids, it.OutletID)
		}
	}
	return ids
}

// persist writes the full line snapshot. Callers hold c.mu.
func (c *Cart) persist() {
	raw, err := json.Marshal(c.items)
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to encode cart")
		return
	}
	if err := c.kv.Set(storageKey, string(raw)); err != nil {
		c.log.Error().Err(err).Msg("Failed to persist cart")
	}
}
