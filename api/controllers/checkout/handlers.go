package checkout

import (
	"net/http"

	"github.com/hemteknik/storefront-backend/api/responses"
	checkoutsvc "github.com/hemteknik/storefront-backend/internal/checkout"
	pkgerrors "github.com/hemteknik/storefront-backend/pkg/errors"
	"github.com/hemteknik/storefront-backend/pkg/logger"
)

// CheckoutRun drives one payment attempt against the current cart. A
// decline is reported as data with a 402 status; the cart is left intact
// so the caller can retry.
func CheckoutRun(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		result, err := svc.Checkout(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if !result.Approved {
			responses.WriteSuccessStatus(w, http.StatusPaymentRequired, newCheckoutView(result))
			return
		}

		if logg != nil {
			logg.Info(r.Context(), "checkout approved")
		}
		responses.WriteSuccess(w, newCheckoutView(result))
	}
}

// LastOrderFetch reads the single-slot order snapshot left by the most
// recent successful checkout.
func LastOrderFetch(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		order, err := svc.LastOrder(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if order == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "no order record"))
			return
		}

		responses.WriteSuccess(w, newOrderView(order))
	}
}

// LastOrderClear drops the order snapshot. Clearing an absent record is
// not an error.
func LastOrderClear(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		if err := svc.ClearLastOrder(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, clearedView{Cleared: true})
	}
}
