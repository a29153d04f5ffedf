// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
)

// HealthLive reports that the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]any{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady answers 200 only when Jellyfin answers a ping.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), h.readyTimeout)
	defer cancel()

	data := map[string]any{
		"uptime": time.Since(h.startTime).Seconds(),
	}
	if bs, ok := h.pinger.(BreakerState); ok {
		data["circuit_breaker"] = bs.State()
	}

	err := h.pinger.Ping(ctx)
	data["jellyfin_connected"] = err == nil
	data["ready"] = err == nil

	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		rw.Status(http.StatusServiceUnavailable, data)
		return
	}
	rw.Success(data)
}
