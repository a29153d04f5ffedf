// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8096/metrics

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Jellyfin:
  - jellyfin_request_duration_seconds{operation}
  - jellyfin_request_errors_total{operation, error_type}

Curation:
  - curation_groups_produced_total{kind}
  - curation_branch_failures_total{branch}
  - curation_carousel_slides
  - curation_backdrop_resolutions_total{source}

Cache and circuit breaker:
  - cache_hits_total{cache_type}, cache_misses_total{cache_type}
  - cache_entries{cache_type}, cache_evictions_total{cache_type}
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

# Usage

	start := time.Now()
	items, err := client.GetItems(ctx, userID, query)
	metrics.RecordUpstreamRequest("items", time.Since(start), err)

Useful queries:

	# Share of home requests with a degraded genre branch
	rate(curation_branch_failures_total{branch="genre_rows"}[5m])

	# p95 Jellyfin latency
	histogram_quantile(0.95, rate(jellyfin_request_duration_seconds_bucket[5m]))
*/
package metrics
