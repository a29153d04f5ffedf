// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package main is the entry point for the Marquee server.

Marquee sits next to a Jellyfin server and curates its home screen: a
backdrop carousel built from the "Featured" tag and the latest additions,
followed by featured and genre rows with a deterministic daily rotation.

# Application Architecture

	RootSupervisor ("marquee")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── Genre cache sweeper
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Jellyfin client: rate limited, wrapped in a gobreaker circuit breaker
 4. Curation: backdrop resolver, carousel builder, row selector, genre cache
 5. Supervisor Tree: Suture v4 process supervision
 6. HTTP Server: Chi router with middleware stack

# Configuration

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	JELLYFIN_URL=http://jellyfin:8096   # required
	JELLYFIN_API_KEY=<key>              # required
	CAROUSEL_MAX_SLIDES=10
	CAROUSEL_DURATION_MS=7000
	ROWS_GENRE_MAX=4
	GENRE_CACHE_TTL=10m
	HTTP_PORT=8097
	LOG_LEVEL=info                      # trace, debug, info, warn, error
	LOG_FORMAT=json                     # json or console

The config file is looked up at $CONFIG_PATH, ./config.yaml and
/etc/marquee/config.yaml.

# Signals

SIGINT and SIGTERM cancel the root context. The supervisor then stops the
HTTP server gracefully within the shutdown timeout.
*/
package main
