// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package carousel

import "github.com/tomtom215/marquee/internal/models"

// DefaultMaxSlides bounds the merged carousel.
const DefaultMaxSlides = 10

// FeaturedSet holds the ids that came from the featured source.
type FeaturedSet map[string]struct{}

// Contains reports whether id is featured. Empty ids are never featured.
func (s FeaturedSet) Contains(id string) bool {
	if id == "" {
		return false
	}
	_, ok := s[id]
	return ok
}

// Result is the merged carousel sequence.
type Result struct {
	Items       []models.MediaItem
	FeaturedIDs FeaturedSet
}

// Aggregate merges featured and latest into one deduplicated sequence.
//
// Every featured item with an id is kept in order. Latest items with an
// unseen id are appended until the sequence holds maxTotal items. Items
// without an id are dropped; input order is never changed.
func Aggregate(featured, latest []models.MediaItem, maxTotal int) Result {
	seen := make(map[string]struct{}, len(featured)+len(latest))
	res := Result{
		Items:       make([]models.MediaItem, 0, len(featured)+min(len(latest), max(maxTotal, 0))),
		FeaturedIDs: make(FeaturedSet, len(featured)),
	}

	for i := range featured {
		id := featured[i].ID
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		res.FeaturedIDs[id] = struct{}{}
		res.Items = append(res.Items, featured[i])
	}

	for i := range latest {
		if len(res.Items) >= maxTotal {
			break
		}
		id := latest[i].ID
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		res.Items = append(res.Items, latest[i])
	}

	return res
}
