// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package api serves the curated home screen over HTTP.
//
// Routes (all GET):
//
//	/api/v1/health/live
//	/api/v1/health/ready
//	/api/v1/users/{userID}/home
//	/api/v1/users/{userID}/carousel
//	/api/v1/users/{userID}/rows
//	/api/v1/users/{userID}/genres/{genreID}/items
//	/api/v1/users/{userID}/items/{itemID}/backdrop?index=&maxWidth=
//	/metrics
package api

import (
	"context"
	"time"

	"github.com/tomtom215/marquee/internal/home"
)

// Pinger checks that Jellyfin is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerState reports the circuit breaker state, if one is in use.
type BreakerState interface {
	State() string
}

// Handler holds the dependencies of every endpoint.
type Handler struct {
	home             *home.Service
	pinger           Pinger
	backdropMaxWidth int
	readyTimeout     time.Duration
	startTime        time.Time
}

// NewHandler wires handlers to the home service. pinger backs the readiness
// probe and may also implement BreakerState. backdropMaxWidth applies when a
// backdrop request omits maxWidth.
func NewHandler(homeSvc *home.Service, pinger Pinger, backdropMaxWidth int) *Handler {
	return &Handler{
		home:             homeSvc,
		pinger:           pinger,
		backdropMaxWidth: backdropMaxWidth,
		readyTimeout:     5 * time.Second,
		startTime:        time.Now(),
	}
}
