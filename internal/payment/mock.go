// Package payment simulates the payment collaborator. A declined payment is
// a normal negative result the caller branches on, never a Go error; errors
// are reserved for the gateway itself misbehaving.
package payment

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hemteknik/storefront-backend/pkg/config"
)

// Result is the outcome of one payment attempt.
type Result struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Reason        string `json:"error,omitempty"`
}

// Gateway is the payment collaborator surface.
type Gateway interface {
	AttemptPayment(ctx context.Context) (Result, error)
}

const declinedReason = "Payment declined. Please try again."

// MockGateway simulates latency and a success-rate draw. Once started, an
// attempt runs to completion; there is no cancellation mid-payment.
type MockGateway struct {
	delay       time.Duration
	successRate float64
	draw        func() float64
	now         func() time.Time
}

// NewMockGateway builds a gateway from config; zero values fall back to the
// shipped defaults (1.5s, 95%).
func NewMockGateway(cfg config.PaymentConfig) *MockGateway {
	delay := cfg.Delay
	if delay <= 0 {
		delay = 1500 * time.Millisecond
	}
	rate := cfg.SuccessRate
	if rate <= 0 || rate > 1 {
		rate = 0.95
	}
	return &MockGateway{
		delay:       delay,
		successRate: rate,
		draw:        rand.Float64,
		now:         time.Now,
	}
}

func (g *MockGateway) AttemptPayment(ctx context.Context) (Result, error) {
	time.Sleep(g.delay)

	if g.draw() >= g.successRate {
		return Result{Success: false, Reason: declinedReason}, nil
	}

	return Result{
		Success:       true,
		TransactionID: g.transactionID(),
	}, nil
}

func (g *MockGateway) transactionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("mock_%d_%s", g.now().UnixMilli(), suffix)
}
