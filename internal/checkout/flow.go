// Package checkout drives a cart through customer-info collection, summary
// review and submission to the remote order service.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"beverage-storefront/internal/cart"
	"beverage-storefront/internal/common/logger"
	"beverage-storefront/internal/domain"
	"beverage-storefront/internal/storeapi"
	"beverage-storefront/internal/validate"
)

// TaxRate is the single canonical rate applied to every total in the app,
// both on the summary screen and at submission. 13% HST.
const TaxRate = 0.13

type State string

const (
	StateCollectingInfo   State = "collecting_info"
	StateReviewingSummary State = "reviewing_summary"
	StateSubmitting       State = "submitting"
	StateConfirmed        State = "confirmed"
	StateFailed           State = "failed"
)

var ErrEmptyCart = errors.New("cart is empty")

// FieldErrors maps a customer-info field name to its validation message.
type FieldErrors map[string]string

// Notifier is told about confirmed orders. Failures are logged, never
// surfaced: by the time it runs the order is already placed.
type Notifier interface {
	OrderConfirmed(ctx context.Context, order domain.Order) error
}

// Flow is one checkout session over one cart. Submission errors leave the
// cart untouched so the user can retry without re-entering anything.
type Flow struct {
	cart     *cart.Cart
	api      storeapi.Client
	notifier Notifier
	lg       *logger.Logger

	mu       sync.Mutex
	state    State
	customer domain.CustomerInfo
	orderID  string
	lastErr  error
}

func New(c *cart.Cart, api storeapi.Client, notifier Notifier, lg *logger.Logger) *Flow {
	return &Flow{cart: c, api: api, notifier: notifier, lg: lg, state: StateCollectingInfo}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// OrderID is the server-assigned identifier, set once the flow is confirmed.
func (f *Flow) OrderID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orderID
}

// Err is the last submission error, set while the flow is in StateFailed.
func (f *Flow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// SubmitInfo validates the customer fields and, if all pass, advances to
// reviewing. On any failure the flow stays in collecting and the per-field
// messages are returned.
func (f *Flow) SubmitInfo(info domain.CustomerInfo) (FieldErrors, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateCollectingInfo {
		return nil, fmt.Errorf("cannot submit customer info in state %q", f.state)
	}
	errs := FieldErrors{}
	if err := validate.Name(info.Name); err != nil {
		errs["name"] = err.Error()
	}
	if err := validate.Email(info.Email); err != nil {
		errs["email"] = err.Error()
	}
	if err := validate.Phone(info.Phone); err != nil {
		errs["phone"] = err.Error()
	}
	if len(errs) > 0 {
		return errs, nil
	}
	f.customer = info
	f.state = StateReviewingSummary
	return nil, nil
}

// EditInfo returns from reviewing to the customer form.
func (f *Flow) EditInfo() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateReviewingSummary {
		return fmt.Errorf("cannot edit customer info in state %q", f.state)
	}
	f.state = StateCollectingInfo
	return nil
}

// Summary is what the review step displays.
type Summary struct {
	Items    []domain.CartItem   `json:"items"`
	Customer domain.CustomerInfo `json:"customer"`
	Subtotal float64             `json:"subtotal"`
	Tax      float64             `json:"tax"`
	Total    float64             `json:"total"`
}

func (f *Flow) Summary() Summary {
	f.mu.Lock()
	customer := f.customer
	f.mu.Unlock()

	items := f.cart.Items()
	subtotal := 0.0
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	tax := subtotal * TaxRate
	return Summary{
		Items:    items,
		Customer: customer,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// PlaceOrder snapshots the cart, submits it to the order service and, on
// success, clears the cart and confirms with the server-assigned id. On
// failure the flow moves to StateFailed and the cart is left as it was.
func (f *Flow) PlaceOrder(ctx context.Context) (domain.Order, error) {
	f.mu.Lock()
	if f.state != StateReviewingSummary {
		state := f.state
		f.mu.Unlock()
		return domain.Order{}, fmt.Errorf("cannot place order in state %q", state)
	}
	f.state = StateSubmitting
	customer := f.customer
	f.mu.Unlock()

	items := f.cart.Items()
	if len(items) == 0 {
		f.fail(ErrEmptyCart)
		return domain.Order{}, ErrEmptyCart
	}
	subtotal := 0.0
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}

	req := domain.CreateOrderRequest{
		OrderNumber: NewOrderNumber(),
		Customer:    customer,
		Items:       items,
		TotalAmount: subtotal, // pre-tax by order-service convention
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	order, err := f.api.CreateOrder(ctx, req)
	if err != nil {
		f.lg.Error("order_submit_failed", err, map[string]any{"order_number": req.OrderNumber})
		f.fail(err)
		return domain.Order{}, err
	}

	f.cart.Clear()
	f.mu.Lock()
	f.state = StateConfirmed
	f.orderID = order.ID
	f.lastErr = nil
	f.mu.Unlock()
	f.lg.Info("order_confirmed", map[string]any{
		"order_id": order.ID, "order_number": order.OrderNumber, "total_amount": order.TotalAmount,
	})

	if f.notifier != nil {
		if err := f.notifier.OrderConfirmed(ctx, order); err != nil {
			f.lg.Error("order_confirmed_notify_failed", err, map[string]any{"order_id": order.ID})
		}
	}
	return order, nil
}

// Retry returns a failed flow to the review step; the preserved cart and
// customer info make resubmission a single step.
func (f *Flow) Retry() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateFailed {
		return fmt.Errorf("cannot retry in state %q", f.state)
	}
	f.state = StateReviewingSummary
	f.lastErr = nil
	return nil
}

func (f *Flow) fail(err error) {
	f.mu.Lock()
	f.state = StateFailed
	f.lastErr = err
	f.mu.Unlock()
}

// NewOrderNumber builds the cosmetic display code shown on the confirmation
// screen. The order service's id is the real identifier.
func NewOrderNumber() string {
	return fmt.Sprintf("ORD%04d", rand.IntN(10000))
}
