package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/FairEM360/internal/chart"
	"github.com/MikeSquared-Agency/FairEM360/internal/hermes"
	"github.com/MikeSquared-Agency/FairEM360/internal/store"
)

// NewRouter builds the API. s may be nil, in which case the comparison and
// session routes are not mounted; h may be nil to disable events.
func NewRouter(s store.Store, h hermes.Client, b *chart.Builder, adminToken string, rateLimit int, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(rateLimit))

	render := NewRenderHandler(b, h, logger)
	wiz := NewWizardHandler(s, h, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/colors", render.Colors)
		r.Post("/pareto/classify", render.Classify)
		r.Post("/charts/scatter", render.Scatter)
		r.Post("/charts/bar", render.Bar)
		r.Post("/tables/sort", render.SortTable)
		r.Post("/wizard/actions", wiz.Reduce)

		if s == nil {
			return
		}

		comparisons := NewComparisonsHandler(s, h, render, logger)
		r.Post("/comparisons", comparisons.Create)
		r.Get("/comparisons", comparisons.List)
		r.Get("/comparisons/{id}", comparisons.Get)
		r.Get("/comparisons/{id}/chart", comparisons.Chart)

		r.Post("/wizard/sessions", wiz.CreateSession)
		r.Get("/wizard/sessions/{id}", wiz.GetSession)
		r.Post("/wizard/sessions/{id}/actions", wiz.ApplyToSession)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Delete("/comparisons/{id}", comparisons.Delete)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
