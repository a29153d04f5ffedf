// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package logging provides the zerolog-based logger used across Marquee.

The package keeps one global logger configured from main:

	logging.Init(logging.Config{Level: "info", Format: "json"})
	logging.Info().Str("addr", addr).Msg("HTTP server listening")

Request-scoped code logs through Ctx, which adds request_id, correlation_id
and user_id when they are present in the context:

	logging.Ctx(ctx).Warn().Err(err).Msg("featured rows unavailable")

SlogHandler bridges slog-only libraries (the suture supervisor event hook)
onto the same output.

# Configuration

Environment variables:
  - LOG_LEVEL: trace, debug, info, warn, error, disabled (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: true/false (default: false)

Always terminate event chains with Msg or Send; an unterminated chain is
never written.
*/
package logging
