package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/hemteknik/storefront-backend/internal/cart"
	"github.com/hemteknik/storefront-backend/internal/payment"
	pkgerrors "github.com/hemteknik/storefront-backend/pkg/errors"
	"github.com/hemteknik/storefront-backend/pkg/kv"
)

type stubGateway struct {
	result payment.Result
	err    error
	calls  int
}

func (s *stubGateway) AttemptPayment(ctx context.Context) (payment.Result, error) {
	s.calls++
	return s.result, s.err
}

type stubCart struct {
	items   []cart.Item
	cleared bool
}

func (s *stubCart) Items() []cart.Item {
	out := make([]cart.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *stubCart) Clear(ctx context.Context) error {
	s.cleared = true
	s.items = nil
	return nil
}

func twoLineCart() *stubCart {
	return &stubCart{items: []cart.Item{
		{ProductID: 1, Price: "100", Quantity: 2, VariantKey: `{"color":"blue"}`},
		{ProductID: 2, Price: "99", Quantity: 2, VariantKey: `{"color":"red"}`},
	}}
}

func newTestService(t *testing.T, cartStore *stubCart, gateway *stubGateway) (Service, kv.Store) {
	t.Helper()

	surface := kv.NewMemory()
	svc, err := NewService(cartStore, gateway, surface)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, surface
}

func TestCheckoutSuccessWritesSnapshotAndClearsCart(t *testing.T) {
	t.Parallel()

	cartStore := twoLineCart()
	gateway := &stubGateway{result: payment.Result{Success: true, TransactionID: "mock_1_abc"}}
	svc, _ := newTestService(t, cartStore, gateway)

	result, err := svc.Checkout(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Approved {
		t.Fatalf("expected approved result, got %+v", result)
	}
	if result.Order.Total != 398 {
		t.Fatalf("expected total 398, got %v", result.Order.Total)
	}
	if result.Order.TransactionID != "mock_1_abc" {
		t.Fatalf("unexpected transaction id %q", result.Order.TransactionID)
	}
	if len(result.Order.Items) != 2 {
		t.Fatalf("order must capture the cart lines, got %d", len(result.Order.Items))
	}
	if !cartStore.cleared {
		t.Fatal("successful checkout must clear the cart")
	}

	stored, err := svc.LastOrder(context.Background())
	if err != nil {
		t.Fatalf("last order: %v", err)
	}
	if stored == nil || stored.Total != 398 {
		t.Fatalf("snapshot not retrievable, got %+v", stored)
	}
}

func TestCheckoutDeclineLeavesCartUntouched(t *testing.T) {
	t.Parallel()

	cartStore := twoLineCart()
	gateway := &stubGateway{result: payment.Result{Success: false, Reason: "declined"}}
	svc, _ := newTestService(t, cartStore, gateway)

	result, err := svc.Checkout(context.Background())
	if err != nil {
		t.Fatalf("a decline must not be an error, got %v", err)
	}
	if result.Approved {
		t.Fatal("expected declined result")
	}
	if result.Reason != "declined" {
		t.Fatalf("expected decline reason, got %q", result.Reason)
	}
	if cartStore.cleared {
		t.Fatal("declined checkout must not clear the cart")
	}

	stored, err := svc.LastOrder(context.Background())
	if err != nil {
		t.Fatalf("last order: %v", err)
	}
	if stored != nil {
		t.Fatal("declined checkout must not write an order snapshot")
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	t.Parallel()

	gateway := &stubGateway{result: payment.Result{Success: true}}
	svc, _ := newTestService(t, &stubCart{}, gateway)

	_, err := svc.Checkout(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for empty cart, got %v", err)
	}
	if gateway.calls != 0 {
		t.Fatal("empty cart must not reach the gateway")
	}
}

func TestCheckoutNoAutomaticRetry(t *testing.T) {
	t.Parallel()

	cartStore := twoLineCart()
	gateway := &stubGateway{result: payment.Result{Success: false, Reason: "declined"}}
	svc, _ := newTestService(t, cartStore, gateway)

	if _, err := svc.Checkout(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gateway.calls != 1 {
		t.Fatalf("expected exactly one gateway attempt, got %d", gateway.calls)
	}
}

func TestLastOrderAbsentIsNotAnError(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, twoLineCart(), &stubGateway{})

	order, err := svc.LastOrder(context.Background())
	if err != nil {
		t.Fatalf("absent record must not be an error, got %v", err)
	}
	if order != nil {
		t.Fatalf("expected nil order, got %+v", order)
	}
}

func TestLastOrderMalformedRecord(t *testing.T) {
	t.Parallel()

	svc, surface := newTestService(t, twoLineCart(), &stubGateway{})
	if err := surface.Set(context.Background(), kv.LastOrderKey, "{broken"); err != nil {
		t.Fatalf("seed surface: %v", err)
	}

	if _, err := svc.LastOrder(context.Background()); err == nil {
		t.Fatal("malformed order record must propagate an error")
	}
}

func TestClearLastOrder(t *testing.T) {
	t.Parallel()

	cartStore := twoLineCart()
	gateway := &stubGateway{result: payment.Result{Success: true, TransactionID: "mock_2_xyz"}}
	svc, _ := newTestService(t, cartStore, gateway)

	if _, err := svc.Checkout(context.Background()); err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if err := svc.ClearLastOrder(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}

	order, err := svc.LastOrder(context.Background())
	if err != nil {
		t.Fatalf("last order: %v", err)
	}
	if order != nil {
		t.Fatal("snapshot must be gone after explicit clear")
	}

	// Clearing again is fine.
	if err := svc.ClearLastOrder(context.Background()); err != nil {
		t.Fatalf("repeat clear: %v", err)
	}
}

func TestCheckoutTimestampIsUTC(t *testing.T) {
	t.Parallel()

	cartStore := twoLineCart()
	gateway := &stubGateway{result: payment.Result{Success: true, TransactionID: "mock_3_t"}}
	surface := kv.NewMemory()
	svc, err := NewService(cartStore, gateway, surface)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	svc.(*service).now = func() time.Time { return fixed }

	result, err := svc.Checkout(context.Background())
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if !result.Order.Timestamp.Equal(fixed) || result.Order.Timestamp.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp, got %v", result.Order.Timestamp)
	}
}
