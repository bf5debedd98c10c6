package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/bokunoshop5-bot/BOKUNOshop/internal/analytics"
	"github.com/bokunoshop5-bot/BOKUNOshop/internal/catalog"
	"github.com/bokunoshop5-bot/BOKUNOshop/internal/insights"
	"github.com/bokunoshop5-bot/BOKUNOshop/internal/observability"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	CatalogHandler   *catalog.Handler
	AnalyticsHandler *analytics.Handler
	InsightsHandler  *insights.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router serving the shop API.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		params.CatalogHandler.MountRoutes(r)
		params.AnalyticsHandler.MountRoutes(r)
		params.InsightsHandler.MountRoutes(r)
	})

	return r
}
