package checkout

import (
	"time"

	"github.com/hemteknik/storefront-backend/internal/cart"
	checkoutsvc "github.com/hemteknik/storefront-backend/internal/checkout"
	"github.com/hemteknik/storefront-backend/pkg/money"
)

type checkoutView struct {
	Approved bool       `json:"approved"`
	Order    *orderView `json:"order,omitempty"`
	Error    string     `json:"error,omitempty"`
}

type clearedView struct {
	Cleared bool `json:"cleared"`
}

type orderView struct {
	Items         []cart.Item `json:"items"`
	Total         float64     `json:"total"`
	DisplayTotal  string      `json:"displayTotal"`
	TransactionID string      `json:"transactionId"`
	Timestamp     time.Time   `json:"timestamp"`
}

func newCheckoutView(result checkoutsvc.Result) checkoutView {
	view := checkoutView{Approved: result.Approved, Error: result.Reason}
	if result.Order != nil {
		order := newOrderView(result.Order)
		view.Order = &order
	}
	return view
}

func newOrderView(order *checkoutsvc.OrderDetails) orderView {
	return orderView{
		Items:         order.Items,
		Total:         order.Total,
		DisplayTotal:  money.Format(order.Total),
		TransactionID: order.TransactionID,
		Timestamp:     order.Timestamp,
	}
}
