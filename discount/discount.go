// Package discount computes the reservation deposit offset applied
// at checkout. It only computes — reservations are consumed (marked
// fee-deducted) by the backend when an order referencing them lands.
package discount

import "github.com/Verah-Mokaya/foodcourt-sub000/models"

// ReservationFee is the flat deposit, in currency units, each
// applicable reservation knocks off the cart total.
const ReservationFee = 500.0

// Applicable filters reservations down to those that can offset the
// current cart: confirmed, deposit not yet deducted, and for an
// outlet that actually has items in the cart.
func Applicable(reservations []models.Reservation, items []models.CartItem) []models.Reservation {
	inCart := map[uint]bool{}
	for _, it := range items {
		inCart[it.OutletID] = true
	}

	var out []models.Reservation
	for _, r := range reservations {
		if r.Status != models.ReservationConfirmed {
			continue
		}
		if r.IsFeeDeducted {
			continue
		}
		if !inCart[r.OutletID] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Amount is the total deduction for a set of applicable reservations.
func Amount(applicable []models.Reservation) float64 {
	return float64(len(applicable)) * ReservationFee
}

// Payable floors the discounted total at zero.
func Payable(subtotal, discount float64) float64 {
	p := subtotal - discount
	if p < 0 {
		return 0
	}
	return p
}

// ForOutlet picks the single reservation an order for outletID may
// consume — the first applicable one. Returns nil if none applies.
func ForOutlet(applicable []models.Reservation, outletID uint) *models.Reservation {
	for i := range applicable {
		if applicable[i].OutletID == outletID {
			return &applicable[i]
		}
	}
	return nil
}
