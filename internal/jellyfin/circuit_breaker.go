// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package jellyfin

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// Catalog is a CatalogClient that can also report server liveness.
type Catalog interface {
	models.CatalogClient
	Ping(ctx context.Context) error
}

var _ Catalog = (*CircuitBreakerClient)(nil)

// BreakerConfig tunes the circuit breaker. Zero fields take the defaults
// below.
type BreakerConfig struct {
	Name         string
	MaxRequests  uint32        // half-open probes, default 3
	Interval     time.Duration // closed-state count reset, default 1m
	Timeout      time.Duration // open to half-open, default 2m
	MinRequests  uint32        // before the ratio is considered, default 10
	FailureRatio float64       // trip threshold, default 0.6
}

func (c BreakerConfig) withDefaults() BreakerConfig {
	if c.Name == "" {
		c.Name = "jellyfin-api"
	}
	if c.MaxRequests == 0 {
		c.MaxRequests = 3
	}
	if c.Interval == 0 {
		c.Interval = time.Minute
	}
	if c.Timeout == 0 {
		c.Timeout = 2 * time.Minute
	}
	if c.MinRequests == 0 {
		c.MinRequests = 10
	}
	if c.FailureRatio == 0 {
		c.FailureRatio = 0.6
	}
	return c
}

// CircuitBreakerClient wraps a Catalog with a circuit breaker.
//
// Missing items and caller cancellations do not count as failures; they say
// nothing about the server's health.
type CircuitBreakerClient struct {
	next Catalog
	cb   *gobreaker.CircuitBreaker[any]
	name string
}

// NewCircuitBreakerClient wraps next.
func NewCircuitBreakerClient(next Catalog, cfg BreakerConfig) *CircuitBreakerClient {
	cfg = cfg.withDefaults()

	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cfg.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= cfg.FailureRatio {
				logging.Warn().
					Str("breaker", cfg.Name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("Opening Jellyfin circuit")
				return true
			}
			return false
		},

		IsSuccessful: healthy,

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).
				Msg("Jellyfin circuit state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{next: next, cb: cb, name: cfg.Name}
}

// State returns the current breaker state name.
func (c *CircuitBreakerClient) State() string {
	return stateToString(c.cb.State())
}

// healthy reports whether err leaves the breaker's view of the server
// unchanged. Missing items and caller cancellations are the caller's concern.
func healthy(err error) bool {
	return err == nil ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, context.Canceled)
}

// execute runs fn through the breaker and keeps the breaker metrics current.
func execute[T any](c *CircuitBreakerClient, fn func() (T, error)) (T, error) {
	var zero T

	result, err := c.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "rejected").Inc()
			return zero, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		outcome := "failure"
		if healthy(err) {
			outcome = "ignored"
		}
		metrics.CircuitBreakerRequests.WithLabelValues(c.name, outcome).Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.name).Set(float64(c.cb.Counts().ConsecutiveFailures))
		return zero, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.name).Set(0)

	typed, _ := result.(T)
	return typed, nil
}

// GetItems implements models.ItemFetcher.
func (c *CircuitBreakerClient) GetItems(ctx context.Context, userID string, query models.ItemQuery) (*models.ItemsResult, error) {
	return execute(c, func() (*models.ItemsResult, error) {
		return c.next.GetItems(ctx, userID, query)
	})
}

// GetLatestItems implements models.CatalogClient.
func (c *CircuitBreakerClient) GetLatestItems(ctx context.Context, userID string, query models.ItemQuery) ([]models.MediaItem, error) {
	return execute(c, func() ([]models.MediaItem, error) {
		return c.next.GetLatestItems(ctx, userID, query)
	})
}

// GetGenres implements models.CatalogClient.
func (c *CircuitBreakerClient) GetGenres(ctx context.Context, userID string, query models.ItemQuery) (*models.GenresResult, error) {
	return execute(c, func() (*models.GenresResult, error) {
		return c.next.GetGenres(ctx, userID, query)
	})
}

// GetItem implements models.CatalogClient.
func (c *CircuitBreakerClient) GetItem(ctx context.Context, userID, itemID string) (*models.MediaItem, error) {
	return execute(c, func() (*models.MediaItem, error) {
		return c.next.GetItem(ctx, userID, itemID)
	})
}

// Ping checks connectivity through the breaker.
func (c *CircuitBreakerClient) Ping(ctx context.Context) error {
	_, err := execute(c, func() (struct{}, error) {
		return struct{}{}, c.next.Ping(ctx)
	})
	return err
}

// stateToFloat converts circuit breaker state to a gauge value.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
