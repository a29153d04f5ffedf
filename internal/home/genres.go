// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package home

import (
	"context"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/rows"
)

// CachedGenres memoizes a GenreLister per user. Failures are not cached.
type CachedGenres struct {
	next  rows.GenreLister
	cache *cache.Cache[[]models.Genre]
}

var _ rows.GenreLister = (*CachedGenres)(nil)

// NewCachedGenres wraps next with c.
func NewCachedGenres(next rows.GenreLister, c *cache.Cache[[]models.Genre]) *CachedGenres {
	return &CachedGenres{next: next, cache: c}
}

// ListGenres implements rows.GenreLister.
func (g *CachedGenres) ListGenres(ctx context.Context, userID string) ([]models.Genre, error) {
	if genres, ok := g.cache.Get(userID); ok {
		return genres, nil
	}

	genres, err := g.next.ListGenres(ctx, userID)
	if err != nil {
		return nil, err
	}
	g.cache.Set(userID, genres)
	return genres, nil
}
