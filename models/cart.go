package models

// CartItem is one line in the customer's cart. Lines are unique by
// MenuItemID; adding the same item again bumps the quantity instead.
type CartItem struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	OutletID   uint    `json:"outlet_id"`
	OutletName string  `json:"outlet_name"`
}

// LineTotal is the price of this line at its current quantity.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
