package handlers

import (
	"context"
	"net/http"

	"github.com/hemteknik/storefront-backend/api/responses"
	"github.com/hemteknik/storefront-backend/pkg/config"
	pkgerrors "github.com/hemteknik/storefront-backend/pkg/errors"
	"github.com/hemteknik/storefront-backend/pkg/logger"
)

// Pinger is the readiness surface of the persistence backend.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok", "env": cfg.App.Env})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, storage Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if storage != nil {
			if err := storage.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storage not ready"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
