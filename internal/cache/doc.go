// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package cache provides a generic in-memory TTL cache.

Marquee caches the per-user genre list, which changes rarely but is needed on
every home request. Item listings are never cached: rows rotate daily and
lazy genre rows ask Jellyfin for a random sort on every load.

	genres := cache.New[[]models.Genre]("genres", 10*time.Minute)
	genres.Set(userID, list)
	if list, ok := genres.Get(userID); ok {
	    // use list
	}

Run Serve under the supervisor to sweep expired entries periodically. Hits,
misses, evictions and size are exported as cache_* Prometheus series labeled
with the cache name.
*/
package cache
