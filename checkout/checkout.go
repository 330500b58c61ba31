// Package checkout turns the cart into per-outlet orders. A cart may
// span outlets; checkout always fans out into one order-creation call
// per outlet and succeeds only if every one of them lands.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Verah-Mokaya/foodcourt-sub000/cart"
	"github.com/Verah-Mokaya/foodcourt-sub000/discount"
	"github.com/Verah-Mokaya/foodcourt-sub000/models"
	"github.com/Verah-Mokaya/foodcourt-sub000/payment"
)

var (
	ErrEmptyCart           = errors.New("checkout: cart is empty")
	ErrTableNumberRequired = errors.New("checkout: table number is required")
)

// OrderPlacer is the slice of the API client checkout needs.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, order models.Order) (*models.Order, error)
}

// ReservationLister fetches the customer's reservations for the
// discount resolver.
type ReservationLister interface {
	MyReservations(ctx context.Context) ([]models.Reservation, error)
}

// Request is everything the customer supplies at checkout. The table
// number is required for both order types.
type Request struct {
	CustomerID  uint             `validate:"required"`
	OrderType   models.OrderType `validate:"required,oneof=dine-in takeaway"`
	TableNumber string           `validate:"required"`
	Payment     payment.Method   `validate:"required"`
}

// Result summarises a fully successful checkout.
type Result struct {
	Orders         []models.Order `json:"orders"`
	Subtotal       float64        `json:"subtotal"`
	DiscountAmount float64        `json:"discount_amount"`
	PayableTotal   float64        `json:"payable_total"`
}

type Orchestrator struct {
	cart         *cart.Cart
	orders       OrderPlacer
	reservations ReservationLister
	gateway      payment.Gateway
	validate     *validator.Validate
	log          zerolog.Logger
}

func NewOrchestrator(c *cart.Cart, orders OrderPlacer, reservations ReservationLister, gateway payment.Gateway, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		cart:         c,
		orders:       orders,
		reservations: reservations,
		gateway:      gateway,
		validate:     validator.New(),
		log:          log,
	}
}

// Checkout validates the request, processes the (simulated) payment,
// partitions the cart by outlet and submits all per-outlet orders
// concurrently. All submissions must succeed; on any failure the cart
// is left untouched so the customer can retry.
func (o *Orchestrator) Checkout(ctx context.Context, req Request) (*Result, error) {
	req.TableNumber = strings.TrimSpace(req.TableNumber)
	if err := o.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "TableNumber" {
					return nil, ErrTableNumberRequired
				}
			}
		}
		return nil, fmt.Errorf("checkout: invalid request: %w", err)
	}

	items := o.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	subtotal := o.cart.Total()

	// Discount eligibility. A failed fetch means no discount, not a
	// failed checkout: the deposit is settled server-side via the
	// reservation id and can be reconciled later.
	var applicable []models.Reservation
	if reservations, err := o.reservations.MyReservations(ctx); err != nil {
		o.log.Warn().Err(err).Msg("Could not fetch reservations, proceeding without discount")
	} else {
		applicable = discount.Applicable(reservations, items)
	}
	discountAmount := discount.Amount(applicable)

	info, err := o.gateway.Process(ctx, req.Payment)
	if err != nil {
		return nil, fmt.Errorf("checkout: payment: %w", err)
	}

	groups := groupByOutlet(items)
	attemptKey := uuid.NewString()
	createdAt := time.Now().UTC()

	payloads := make([]models.Order, len(groups))
	for i, g := range groups {
		order := models.Order{
			CustomerID:     req.CustomerID,
			OutletID:       g.outletID,
			TotalAmount:    g.subtotal(),
			Status:         models.StatusPending,
			OrderType:      req.OrderType,
			TableNumber:    req.TableNumber,
			OrderItems:     g.orderItems(),
			PaymentInfo:    info,
			IdempotencyKey: attemptKey,
			CreatedAt:      createdAt,
		}
		if r := discount.ForOutlet(applicable, g.outletID); r != nil {
			id := r.ID
			order.ReservationID = &id
		}
		payloads[i] = order
	}

	// All-or-nothing barrier: every outlet's order must land. No
	// compensation of orders already created when a sibling fails.
	var mu sync.Mutex
	created := make([]models.Order, len(payloads))
	eg, gctx := errgroup.WithContext(ctx)
	for i, p := range payloads {
		eg.Go(func() error {
			res, err := o.orders.CreateOrder(gctx, p)
			if err != nil {
				o.log.Error().Err(err).Uint("outlet_id", p.OutletID).Msg("Order submission failed")
				return err
			}
			mu.Lock()
			created[i] = *res
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	o.cart.Clear()
	o.log.Info().
		Int("orders", len(created)).
		Float64("subtotal", subtotal).
		Float64("discount", discountAmount).
		Msg("Checkout complete")

	return &Result{
		Orders:         created,
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		PayableTotal:   discount.Payable(subtotal, discountAmount),
	}, nil
}

// Summary computes the money view of the current cart without
// submitting anything.
func (o *Orchestrator) Summary(ctx context.Context) (*Result, error) {
	items := o.cart.Items()
	subtotal := o.cart.Total()

	var applicable []models.Reservation
	if reservations, err := o.reservations.MyReservations(ctx); err != nil {
		o.log.Warn().Err(err).Msg("Could not fetch reservations for summary")
	} else {
		applicable = discount.Applicable(reservations, items)
	}
	amount := discount.Amount(applicable)

	return &Result{
		Subtotal:       subtotal,
		DiscountAmount: amount,
		PayableTotal:   discount.Payable(subtotal, amount),
	}, nil
}

// outletGroup is one outlet's slice of the cart.
type outletGroup struct {
	outletID uint
	items    []models.CartItem
}

func (g outletGroup) subtotal() float64 {
	var total float64
	for _, it := range g.items {
		total += it.LineTotal()
	}
	return total
}

func (g outletGroup) orderItems() []models.OrderItem {
	out := make([]models.OrderItem, len(g.items))
	for i, it := range g.items {
		out[i] = models.OrderItem{
			MenuItemID: it.MenuItemID,
			ItemName:   it.Name,
			Quantity:   it.Quantity,
			Price:      it.Price,
		}
	}
	return out
}

// groupByOutlet partitions cart lines by outlet, preserving the
// order outlets first appear in the cart.
func groupByOutlet(items []models.CartItem) []outletGroup {
	index := map[uint]int{}
	var groups []outletGroup
	for _, it := range items {
		i, ok := index[it.OutletID]
		if !ok {
			i = len(groups)
			index[it.OutletID] = i
			groups = append(groups, outletGroup{outletID: it.OutletID})
		}
		groups[i].items = append(groups[i].items, it)
	}
	return groups
}
