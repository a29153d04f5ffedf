// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package rows selects the labeled home rows: editorial featured rows built
// from tagged items, followed by genre rows that are fetched lazily. Both
// branches rotate daily through rotation.PickWindow.
package rows

import (
	"time"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/rotation"
)

const (
	MaxFeaturedRows        = 6
	MaxFeaturedItemsPerRow = 16
	MaxGenreRows           = 4
	GenreItemsPerRow       = 16

	// FeaturedPoolLimit caps the tagged pool fetched for featured rows.
	FeaturedPoolLimit = 80

	DefaultFeaturedRowLabel = "Featured"
)

// Limits bounds row selection.
type Limits struct {
	FeaturedRows        int
	FeaturedItemsPerRow int
	GenreRows           int
	GenreItemsPerRow    int
}

// DefaultLimits returns the stock row caps.
func DefaultLimits() Limits {
	return Limits{
		FeaturedRows:        MaxFeaturedRows,
		FeaturedItemsPerRow: MaxFeaturedItemsPerRow,
		GenreRows:           MaxGenreRows,
		GenreItemsPerRow:    GenreItemsPerRow,
	}
}

// FeaturedRowLabel returns the row an editorially tagged item belongs to.
func FeaturedRowLabel(tags []string) string {
	if label, ok := models.ParseTagLabel(tags, models.TagPrefixRow); ok {
		return label
	}
	return DefaultFeaturedRowLabel
}

// FeaturedRows buckets pool by row label, keeps today's window of labels
// and truncates each row. Labels keep the order in which they first appear.
func FeaturedRows(pool []models.MediaItem, now time.Time, limits Limits, card models.CardOptions) []models.DisplayGroup {
	if len(pool) == 0 {
		return []models.DisplayGroup{}
	}

	var labels []string
	buckets := make(map[string][]models.MediaItem)
	for i := range pool {
		label := FeaturedRowLabel(pool[i].Tags)
		if _, ok := buckets[label]; !ok {
			labels = append(labels, label)
		}
		buckets[label] = append(buckets[label], pool[i])
	}

	selected := rotation.PickWindow(labels, limits.FeaturedRows, now)
	groups := make([]models.DisplayGroup, 0, len(selected))
	for _, label := range selected {
		rowItems := buckets[label]
		if len(rowItems) > limits.FeaturedItemsPerRow {
			rowItems = rowItems[:limits.FeaturedItemsPerRow]
		}
		if len(rowItems) == 0 {
			continue
		}
		groups = append(groups, models.DisplayGroup{
			Label: label,
			Kind:  models.GroupKindFeatured,
			Items: rowItems,
			Card:  card,
		})
	}
	return groups
}

// GenreRowQuery is the lazy fetch specification for one genre row.
func GenreRowQuery(genreID string, limit int) models.ItemQuery {
	return models.ItemQuery{
		GenreIDs:         []string{genreID},
		IncludeItemTypes: []string{"Movie", "Series"},
		Limit:            limit,
		SortBy:           []string{"Random"},
		Fields:           []string{"PrimaryImageAspectRatio", "Path"},
		ImageTypeLimit:   1,
		EnableImageTypes: []string{"Primary", "Backdrop", "Thumb"},
		Recursive:        true,
	}
}

// GenreRows keeps today's window of genres, each as a lazy group.
// The window is taken over the raw list; genres without an id or name hold
// their slot but produce no row.
func GenreRows(genres []models.Genre, userID string, now time.Time, limits Limits, card models.CardOptions) []models.DisplayGroup {
	selected := rotation.PickWindow(genres, limits.GenreRows, now)
	groups := make([]models.DisplayGroup, 0, len(selected))
	for _, g := range selected {
		if !g.Valid() {
			continue
		}
		query := GenreRowQuery(g.ID, limits.GenreItemsPerRow)
		groups = append(groups, models.DisplayGroup{
			Label:  g.Name,
			Kind:   models.GroupKindGenre,
			UserID: userID,
			Query:  &query,
			Card:   card,
		})
	}
	return groups
}
