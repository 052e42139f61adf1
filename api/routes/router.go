package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	cartcontrollers "github.com/hemteknik/storefront-backend/api/controllers/cart"
	catalogcontrollers "github.com/hemteknik/storefront-backend/api/controllers/catalog"
	checkoutcontrollers "github.com/hemteknik/storefront-backend/api/controllers/checkout"
	"github.com/hemteknik/storefront-backend/api/handlers"
	"github.com/hemteknik/storefront-backend/api/middleware"
	"github.com/hemteknik/storefront-backend/internal/cart"
	catalogsvc "github.com/hemteknik/storefront-backend/internal/catalog"
	checkoutsvc "github.com/hemteknik/storefront-backend/internal/checkout"
	"github.com/hemteknik/storefront-backend/pkg/config"
	"github.com/hemteknik/storefront-backend/pkg/logger"
)

// NewRouter wires the storefront surface: catalog browsing, the cart and
// the checkout flow, plus liveness and readiness probes.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	storage handlers.Pinger,
	catalogService catalogsvc.Service,
	cartStore *cart.Store,
	checkoutService checkoutsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", handlers.HealthLive(cfg))
		r.Get("/ready", handlers.HealthReady(cfg, logg, storage))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogcontrollers.ProductList(catalogService, logg))
			r.Get("/{id}", catalogcontrollers.ProductDetail(catalogService, logg))
			r.Post("/{id}/resolve", catalogcontrollers.ResolveVariant(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.CartFetch(cartStore, logg))
			r.Delete("/", cartcontrollers.CartClear(cartStore, logg))
			r.Route("/items", func(r chi.Router) {
				r.Post("/", cartcontrollers.CartItemAdd(cartStore, catalogService, logg))
				r.Patch("/", cartcontrollers.CartItemUpdate(cartStore, logg))
				r.Delete("/", cartcontrollers.CartItemRemove(cartStore, logg))
			})
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", checkoutcontrollers.CheckoutRun(checkoutService, logg))
			r.Route("/last-order", func(r chi.Router) {
				r.Get("/", checkoutcontrollers.LastOrderFetch(checkoutService, logg))
				r.Delete("/", checkoutcontrollers.LastOrderClear(checkoutService, logg))
			})
		})
	})

	return r
}
