// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/marquee/internal/middleware"
)

// NewRouter builds the chi route tree.
func NewRouter(h *Handler, mw *Middleware) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(mw.CORS())
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound(ErrCodeNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	// Probes are not rate limited.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Route("/api/v1/users/{userID}", func(r chi.Router) {
		r.Use(mw.RateLimit())
		r.Use(chimiddleware.Compress(5, "application/json"))
		r.Use(withUser)

		r.Get("/home", h.Home)
		r.Get("/carousel", h.Carousel)
		r.Get("/rows", h.Rows)
		r.Get("/genres/{genreID}/items", h.GenreItems)
		r.Get("/items/{itemID}/backdrop", h.Backdrop)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
