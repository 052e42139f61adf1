package cart

import (
	"net/http"

	cartdto "github.com/hemteknik/storefront-backend/api/controllers/cart/dto"
	"github.com/hemteknik/storefront-backend/api/responses"
	"github.com/hemteknik/storefront-backend/api/validators"
	cartsvc "github.com/hemteknik/storefront-backend/internal/cart"
	catalogsvc "github.com/hemteknik/storefront-backend/internal/catalog"
	"github.com/hemteknik/storefront-backend/internal/variant"
	pkgerrors "github.com/hemteknik/storefront-backend/pkg/errors"
	"github.com/hemteknik/storefront-backend/pkg/logger"
)

// CartFetch exposes the current cart collection.
func CartFetch(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartItemAdd resolves the requested variant against the live catalog,
// checks stock, then merges the line into the cart. The cart itself never
// re-validates stock; this handler is the gate.
func CartItemAdd(store *cartsvc.Store, catalog catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil || catalog == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		var payload cartdto.AddItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalog.GetByID(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !product.Available {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "product is not available"))
			return
		}

		sel := variant.Selection(payload.SelectedVariant)
		selected := variant.ResolveOption(product.Options, sel)
		if selected == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "selected variant does not match any option"))
			return
		}
		if selected.Quantity <= 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "selected option is out of stock"))
			return
		}

		input := cartsvc.ItemInput{
			ProductID:       product.ID,
			Name:            product.Name,
			Brand:           product.Brand,
			Price:           product.Price,
			SelectedVariant: sel.Clone(),
			VariantKey:      variant.Key(sel),
		}
		if err := store.AddItem(r.Context(), input, payload.Quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithProductID(r.Context(), product.ID)
			ctx = logg.WithVariantKey(ctx, input.VariantKey)
			logg.Info(ctx, "cart item added")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newCartView(store))
	}
}

// CartItemUpdate sets the quantity of one line; zero or less removes it.
func CartItemUpdate(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		var payload cartdto.UpdateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.UpdateQuantity(r.Context(), payload.ProductID, payload.VariantKey, payload.Quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartItemRemove drops one line from the cart.
func CartItemRemove(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		var payload cartdto.RemoveItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.RemoveItem(r.Context(), payload.ProductID, payload.VariantKey); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartClear empties the cart.
func CartClear(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		if err := store.Clear(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(store))
	}
}
