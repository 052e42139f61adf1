package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hemteknik/storefront-backend/api/responses"
	"github.com/hemteknik/storefront-backend/api/validators"
	catalogsvc "github.com/hemteknik/storefront-backend/internal/catalog"
	"github.com/hemteknik/storefront-backend/internal/variant"
	pkgerrors "github.com/hemteknik/storefront-backend/pkg/errors"
	"github.com/hemteknik/storefront-backend/pkg/logger"
)

// ProductList exposes the catalog with purchasability summaries.
func ProductList(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		products := svc.List(r.Context())
		responses.WriteSuccess(w, newProductListView(products))
	}
}

// ProductDetail returns one product together with its derived initial
// selection and the option that selection resolves to.
func ProductDetail(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := productFromPath(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		initial := variant.DeriveInitialSelection(product.Options)
		selected := variant.ResolveOption(product.Options, initial)
		responses.WriteSuccess(w, newProductDetailView(product, initial, selected))
	}
}

// ResolveVariant matches a caller-supplied selection against the product's
// options. No match is a valid outcome, not an error.
func ResolveVariant(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := productFromPath(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload resolveVariantRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sel := variant.Selection(payload.Selection)
		selected := variant.ResolveOption(product.Options, sel)
		responses.WriteSuccess(w, newResolveView(sel, selected))
	}
}

type resolveVariantRequest struct {
	Selection map[string]string `json:"selection" validate:"required"`
}

func productFromPath(r *http.Request, svc catalogsvc.Service) (*catalogsvc.Product, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id")
	}
	return svc.GetByID(r.Context(), id)
}
