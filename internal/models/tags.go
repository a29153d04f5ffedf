// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import "strings"

// Editorial tag conventions.
const (
	// TagFeatured marks an item for the hero carousel.
	TagFeatured = "Featured"
	// TagFeaturedRow marks an item for the featured rows.
	TagFeaturedRow = "FeaturedRow"

	TagPrefixRow      = "row:"
	TagPrefixCarousel = "carousel:"
)

// ParseTagLabel returns the label encoded by the first tag carrying prefix.
//
// The first matching tag wins even when later tags carry the same prefix.
// A tag whose label is blank after trimming counts as no label, so callers
// show their default label instead of an empty one.
func ParseTagLabel(tags []string, prefix string) (string, bool) {
	for _, tag := range tags {
		if !strings.HasPrefix(tag, prefix) {
			continue
		}
		label := strings.TrimSpace(tag[len(prefix):])
		if label == "" {
			return "", false
		}
		return label, true
	}
	return "", false
}
