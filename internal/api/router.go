package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/acbryeans/astra-space-assignment/internal/events"
	"github.com/acbryeans/astra-space-assignment/internal/scoring"
	"github.com/acbryeans/astra-space-assignment/internal/store"
)

func NewRouter(s store.Store, engine *scoring.Engine, ev events.Client, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	rankings := NewRankingsHandler(engine, ev)
	admin := NewAdminHandler(s, ev)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/rankings", rankings.Create)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/agents", admin.Agents)
			r.Post("/agents", admin.CreateAgent)
			r.Get("/stats", admin.Stats)
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
