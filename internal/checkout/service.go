package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hemteknik/storefront-backend/internal/cart"
	"github.com/hemteknik/storefront-backend/internal/payment"
	pkgerrors "github.com/hemteknik/storefront-backend/pkg/errors"
	"github.com/hemteknik/storefront-backend/pkg/kv"
	"github.com/hemteknik/storefront-backend/pkg/money"
)

// OrderDetails is the post-checkout snapshot: a single-slot record written
// once on successful payment, read by the confirmation view, then cleared.
type OrderDetails struct {
	Items         []cart.Item `json:"items"`
	Total         float64     `json:"total"`
	TransactionID string      `json:"transactionId"`
	Timestamp     time.Time   `json:"timestamp"`
}

// Result is the outcome of one checkout attempt. A decline leaves the cart
// untouched; the user re-triggers checkout to retry.
type Result struct {
	Approved bool
	Order    *OrderDetails
	Reason   string
}

// Service runs the checkout flow against the cart, the payment gateway and
// the last-order record.
type Service interface {
	Checkout(ctx context.Context) (Result, error)
	LastOrder(ctx context.Context) (*OrderDetails, error)
	ClearLastOrder(ctx context.Context) error
}

type cartStore interface {
	Items() []cart.Item
	Clear(ctx context.Context) error
}

type service struct {
	cart    cartStore
	gateway payment.Gateway
	surface kv.Store
	now     func() time.Time
}

// NewService builds a checkout service backed by the provided collaborators.
func NewService(cartStore cartStore, gateway payment.Gateway, surface kv.Store) (Service, error) {
	if cartStore == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if gateway == nil {
		return nil, fmt.Errorf("payment gateway required")
	}
	if surface == nil {
		return nil, fmt.Errorf("persistence surface required")
	}
	return &service{
		cart:    cartStore,
		gateway: gateway,
		surface: surface,
		now:     time.Now,
	}, nil
}

// Checkout totals the cart, attempts payment, and on success writes the
// order snapshot and clears the cart. Only one checkout is in flight per
// session; the surface triggering it disables itself while processing.
func (s *service) Checkout(ctx context.Context) (Result, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return Result{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	total, err := subtotal(items)
	if err != nil {
		return Result{}, err
	}

	attempt, err := s.gateway.AttemptPayment(ctx)
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "attempt payment")
	}
	if !attempt.Success {
		return Result{Approved: false, Reason: attempt.Reason}, nil
	}

	order := &OrderDetails{
		Items:         items,
		Total:         total,
		TransactionID: attempt.TransactionID,
		Timestamp:     s.now().UTC(),
	}

	data, err := json.Marshal(order)
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serialize order")
	}
	if err := s.surface.Set(ctx, kv.LastOrderKey, string(data)); err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order record")
	}

	if err := s.cart.Clear(ctx); err != nil {
		return Result{}, err
	}

	return Result{Approved: true, Order: order}, nil
}

// LastOrder returns the stored snapshot, or nil when none exists.
func (s *service) LastOrder(ctx context.Context) (*OrderDetails, error) {
	raw, err := s.surface.Get(ctx, kv.LastOrderKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read order record")
	}

	var order OrderDetails
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "malformed order record")
	}
	return &order, nil
}

// ClearLastOrder removes the snapshot; clearing an absent record is fine.
func (s *service) ClearLastOrder(ctx context.Context) error {
	if err := s.surface.Delete(ctx, kv.LastOrderKey); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear order record")
	}
	return nil
}

func subtotal(items []cart.Item) (float64, error) {
	var total float64
	for _, item := range items {
		price, err := money.Parse(item.Price)
		if err != nil {
			return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "invalid line price")
		}
		total += price * float64(item.Quantity)
	}
	return total, nil
}
