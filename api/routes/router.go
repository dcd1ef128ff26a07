package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tiendahub/storefront-backend/api/controllers"
	"github.com/tiendahub/storefront-backend/api/middleware"
	combosvc "github.com/tiendahub/storefront-backend/internal/combos"
	"github.com/tiendahub/storefront-backend/pkg/config"
	"github.com/tiendahub/storefront-backend/pkg/db"
	"github.com/tiendahub/storefront-backend/pkg/logger"
	"github.com/tiendahub/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	comboService combosvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/combos", func(r chi.Router) {
		r.Post("/quote", controllers.QuoteCombo(comboService, logg))
		r.Post("/", controllers.SaveCombo(comboService, logg))
		r.Get("/{id}/display", controllers.DisplayCombo(comboService, logg))
	})

	return r
}
