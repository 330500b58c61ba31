// Package payment models the closed set of payment methods as tagged
// variants and simulates the gateway round trip. Real gateway
// integration is out of scope; the backend records whatever
// PaymentInfo the order carries.
package payment

import (
	"context"
	"strings"
	"time"

	"github.com/Verah-Mokaya/foodcourt-sub000/models"
)

// Method is a chosen payment method. Each variant contributes only
// its own fields to the order's PaymentInfo.
type Method interface {
	Info() models.PaymentInfo
}

// MobileMoney pays via an STK push to the given phone number.
// The wire name stays "mpesa" for backend compatibility.
type MobileMoney struct {
	PhoneNumber string
}

func (m MobileMoney) Info() models.PaymentInfo {
	return models.PaymentInfo{Method: "mpesa", PhoneNumber: m.PhoneNumber}
}

// Card pays by card. Only the last four digits ever leave this
// package.
type Card struct {
	Number string
	Expiry string
}

func (c Card) Info() models.PaymentInfo {
	return models.PaymentInfo{
		Method: "card",
		Card:   &models.CardInfo{Number: MaskCardNumber(c.Number), Expiry: c.Expiry},
	}
}

// Cash is settled at the counter; it attaches no extra fields.
type Cash struct{}

func (Cash) Info() models.PaymentInfo {
	return models.PaymentInfo{Method: "cash"}
}

// MaskCardNumber keeps the last 4 digits and replaces the rest with a
// fixed mask. Short inputs are masked wholesale.
func MaskCardNumber(number string) string {
	digits := strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	if len(digits) <= 4 {
		return "**** " + digits
	}
	return "**** " + digits[len(digits)-4:]
}

// FromRequest builds a Method from the wire fields of a checkout
// request. Unknown methods fall back to cash, mirroring how the
// backend treats unrecognised payment info.
func FromRequest(method, phoneNumber, cardNumber, cardExpiry string) Method {
	switch method {
	case "mpesa", "mobile-money":
		return MobileMoney{PhoneNumber: phoneNumber}
	case "card":
		return Card{Number: cardNumber, Expiry: cardExpiry}
	default:
		return Cash{}
	}
}

// Gateway simulates the payment round trip with a fixed delay before
// handing control to the checkout orchestrator.
type Gateway struct {
	Delay time.Duration
}

// Process waits out the simulated gateway delay and returns the
// method's wire info. It respects context cancellation.
func (g Gateway) Process(ctx context.Context, m Method) (models.PaymentInfo, error) {
	if g.Delay > 0 {
		select {
		case <-time.After(g.Delay):
		case <-ctx.Done():
			return models.PaymentInfo{}, ctx.Err()
		}
	}
	return m.Info(), nil
}
