// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package models defines the catalog and curation types shared across Marquee.

Catalog types (MediaItem, Genre, ItemsResult) mirror the Jellyfin wire format
so they decode directly from API responses. Curation types (DisplayGroup,
ItemQuery, ImageOptions) describe what the home screen shows and how lazy rows
are fetched.

The interfaces ItemFetcher, CatalogClient and ImageURLBuilder are the only
capabilities the curation packages consume; internal/jellyfin implements them.
*/
package models
