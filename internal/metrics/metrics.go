// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Upstream (Jellyfin) Metrics
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jellyfin_request_duration_seconds",
			Help:    "Duration of Jellyfin API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "items", "latest", "genres", "item", "ping"
	)

	UpstreamRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jellyfin_request_errors_total",
			Help: "Total number of failed Jellyfin API requests",
		},
		[]string{"operation", "error_type"},
	)

	// Curation Metrics
	CurationGroupsProduced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curation_groups_produced_total",
			Help: "Total number of display groups produced",
		},
		[]string{"kind"}, // "featured", "genre"
	)

	CurationBranchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curation_branch_failures_total",
			Help: "Total number of curation branches that degraded to empty after a fetch failure",
		},
		[]string{"branch"}, // "featured_pool", "latest_pool", "featured_rows", "genre_rows"
	)

	CarouselSlides = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "curation_carousel_slides",
			Help:    "Number of slides in each produced carousel",
			Buckets: []float64{0, 1, 2, 4, 6, 8, 10},
		},
	)

	BackdropResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curation_backdrop_resolutions_total",
			Help: "Backdrop resolutions by the fallback level that satisfied them",
		},
		[]string{"source"}, // "own", "parent", "primary", "none"
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "ignored", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// errorTyper is implemented by errors that know their metric category.
type errorTyper interface {
	ErrorType() string
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordUpstreamRequest records one Jellyfin API call.
// Errors implementing ErrorType() string are labeled with their category,
// everything else is labeled "other".
func RecordUpstreamRequest(operation string, duration time.Duration, err error) {
	UpstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err == nil {
		return
	}

	errorType := "other"
	var typed errorTyper
	if errors.As(err, &typed) {
		errorType = typed.ErrorType()
	}
	UpstreamRequestErrors.WithLabelValues(operation, errorType).Inc()
}

// RecordGroups records display groups produced for a kind.
func RecordGroups(kind string, count int) {
	if count > 0 {
		CurationGroupsProduced.WithLabelValues(kind).Add(float64(count))
	}
}

// RecordBranchFailure records a curation branch that degraded to empty.
func RecordBranchFailure(branch string) {
	CurationBranchFailures.WithLabelValues(branch).Inc()
}

// RecordCarousel records the size of a produced carousel.
func RecordCarousel(slides int) {
	CarouselSlides.Observe(float64(slides))
}

// RecordBackdrop records which fallback level resolved a backdrop.
func RecordBackdrop(source string) {
	BackdropResolutions.WithLabelValues(source).Inc()
}

// RecordCacheAccess records a hit or miss for a named cache.
func RecordCacheAccess(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// SetAppInfo publishes the build version.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}
