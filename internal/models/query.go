// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import "context"

// ItemQuery is a typed item filter. It is the fetch specification carried by
// lazy display groups and is encoded to Jellyfin query parameters only by the
// client.
type ItemQuery struct {
	Tags             []string `json:"tags,omitempty"`
	IncludeItemTypes []string `json:"include_item_types,omitempty"`
	GenreIDs         []string `json:"genre_ids,omitempty"`
	Fields           []string `json:"fields,omitempty"`
	SortBy           []string `json:"sort_by,omitempty"`
	EnableImageTypes []string `json:"enable_image_types,omitempty"`
	Limit            int      `json:"limit,omitempty"`
	ImageTypeLimit   int      `json:"image_type_limit,omitempty"`
	Recursive        bool     `json:"recursive,omitempty"`
}

// ScaleOptions bounds the size and quality of a requested image.
// Zero values are omitted from the generated URL.
type ScaleOptions struct {
	MaxWidth   int `json:"max_width,omitempty"`
	Width      int `json:"width,omitempty"`
	MaxHeight  int `json:"max_height,omitempty"`
	Height     int `json:"height,omitempty"`
	FillWidth  int `json:"fill_width,omitempty"`
	FillHeight int `json:"fill_height,omitempty"`
	Quality    int `json:"quality,omitempty"`
}

// ImageOptions describes a single image request.
type ImageOptions struct {
	ScaleOptions
	Type  ImageType
	Index *int // nil: no index segment in the URL
	Tag   string
}

// ItemFetcher fetches items matching a query on behalf of a user.
type ItemFetcher interface {
	GetItems(ctx context.Context, userID string, query ItemQuery) (*ItemsResult, error)
}

// CatalogClient is the full set of catalog capabilities curation consumes.
type CatalogClient interface {
	ItemFetcher
	GetLatestItems(ctx context.Context, userID string, query ItemQuery) ([]MediaItem, error)
	GetGenres(ctx context.Context, userID string, query ItemQuery) (*GenresResult, error)
	GetItem(ctx context.Context, userID, itemID string) (*MediaItem, error)
}

// ImageURLBuilder builds a scaled image URL. Implementations must be pure.
type ImageURLBuilder interface {
	ImageURL(itemID string, opts ImageOptions) string
}
