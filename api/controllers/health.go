package controllers

import (
	"net/http"

	"github.com/elegante-shop/storefront-backend/api/responses"
	"github.com/elegante-shop/storefront-backend/pkg/config"
	pkgerrors "github.com/elegante-shop/storefront-backend/pkg/errors"
	"github.com/elegante-shop/storefront-backend/pkg/logger"
	"github.com/elegante-shop/storefront-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elegante-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness. When a snapshot store is configured the
// check includes Redis connectivity; an in-memory deployment is always ready.
func HealthReady(cfg *config.Config, pinger redis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elegante-Env", cfg.App.Env)

		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
