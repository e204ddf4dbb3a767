package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Shortlist/internal/config"
	"github.com/MikeSquared-Agency/Shortlist/internal/events"
	"github.com/MikeSquared-Agency/Shortlist/internal/session"
)

func NewRouter(m *session.Manager, ev events.Client, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	sessions := NewSessionsHandler(m)
	categories := NewCategoriesHandler(m)
	rows := NewRowsHandler(m)
	rankings := NewRankingsHandler(m, cfg)
	transfer := NewTransferHandler(m, ev)
	admin := NewAdminHandler(m)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", sessions.Create)
		r.Get("/sessions/{id}", sessions.Get)
		r.Delete("/sessions/{id}", sessions.Delete)

		r.Get("/sessions/{id}/categories", categories.List)
		r.Post("/sessions/{id}/categories", categories.Add)
		r.Post("/sessions/{id}/categories/remove", categories.Remove)

		r.Get("/sessions/{id}/rows", rows.List)
		r.Post("/sessions/{id}/rows", rows.Append)
		r.Put("/sessions/{id}/rows", rows.Replace)
		r.Put("/sessions/{id}/rows/{index}", rows.Update)
		r.Delete("/sessions/{id}/rows/{index}", rows.Delete)

		r.Post("/sessions/{id}/rankings", rankings.Rank)
		r.Post("/sessions/{id}/comparison", rankings.Compare)

		r.Post("/sessions/{id}/import", transfer.Import)
		r.Get("/sessions/{id}/export", transfer.Export)

		r.Get("/stats", admin.Stats)
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
