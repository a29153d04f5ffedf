// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package config loads Marquee's configuration.

Sources are layered with koanf, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, else the first of DefaultConfigPaths
 3. Environment variables listed in envMappings

Only JELLYFIN_URL and JELLYFIN_API_KEY are required:

	JELLYFIN_URL=http://jellyfin:8096 JELLYFIN_API_KEY=... marquee

The equivalent YAML:

	jellyfin:
	  url: http://jellyfin:8096
	  api_key: ...
	curation:
	  latest_label: New Arrivals
	  genre_cache_ttl: 10m

Config is immutable after Load and safe for concurrent reads.
*/
package config

import "time"

// Config is the root configuration.
type Config struct {
	Jellyfin JellyfinConfig `koanf:"jellyfin"`
	Breaker  BreakerConfig  `koanf:"breaker"`
	Curation CurationConfig `koanf:"curation"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// JellyfinConfig describes the upstream Jellyfin server.
type JellyfinConfig struct {
	URL               string        `koanf:"url" validate:"required"`
	APIKey            string        `koanf:"api_key" validate:"required"`
	Timeout           time.Duration `koanf:"timeout" validate:"gt=0"`
	RequestsPerSecond float64       `koanf:"requests_per_second" validate:"gte=0"`
	Burst             int           `koanf:"burst" validate:"gte=0"`
	ClientName        string        `koanf:"client_name"`
	DeviceID          string        `koanf:"device_id"`
}

// BreakerConfig tunes the circuit breaker around the Jellyfin client.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests" validate:"gte=1"`
	Interval     time.Duration `koanf:"interval" validate:"gt=0"`
	Timeout      time.Duration `koanf:"timeout" validate:"gt=0"`
	MinRequests  uint32        `koanf:"min_requests" validate:"gte=1"`
	FailureRatio float64       `koanf:"failure_ratio" validate:"gt=0,lte=1"`
}

// CurationConfig holds the carousel and row selection knobs.
type CurationConfig struct {
	MaxSlides           int           `koanf:"max_slides" validate:"gte=1,lte=100"`
	LatestLabel         string        `koanf:"latest_label" validate:"required"`
	BackdropMaxWidth    int           `koanf:"backdrop_max_width" validate:"gte=0,lte=7680"`
	AutoplayMS          int           `koanf:"autoplay_ms" validate:"gte=0"`
	FeaturedRows        int           `koanf:"featured_rows" validate:"gte=1,lte=50"`
	FeaturedItemsPerRow int           `koanf:"featured_items_per_row" validate:"gte=1,lte=100"`
	GenreRows           int           `koanf:"genre_rows" validate:"gte=1,lte=50"`
	GenreItemsPerRow    int           `koanf:"genre_items_per_row" validate:"gte=1,lte=100"`
	EnableOverflow      bool          `koanf:"enable_overflow"`
	GenreCacheTTL       time.Duration `koanf:"genre_cache_ttl" validate:"gte=0"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"gte=1,lte=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// SecurityConfig covers CORS and inbound rate limiting.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"required,log_level"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}
