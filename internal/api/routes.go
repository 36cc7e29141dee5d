package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ignite/campaign-dashboard/internal/config"
	"github.com/ignite/campaign-dashboard/internal/export"
)

// NewRouter configures all routes for the dashboard server.
func NewRouter(h *Handlers, hc *HealthChecker, cfg config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/health", hc.HandleHealth)

	r.Get("/api/dashboard", h.HandleLoad)
	r.Get("/api/dashboard/current", h.HandleCurrent)
	r.Get("/api/dashboard/export.csv", h.HandleExport(export.FormatCSV))
	r.Get("/api/dashboard/export.xlsx", h.HandleExport(export.FormatXLSX))

	return r
}
