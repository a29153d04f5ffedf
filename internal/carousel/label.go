// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package carousel

import "github.com/tomtom215/marquee/internal/models"

const (
	FeaturedLabel      = "Featured"
	DefaultLatestLabel = "Latest Media"
)

// Label picks the caption shown on a slide: an editorial carousel:<label>
// tag first, then "Featured" for featured items, then latestLabel.
func Label(item *models.MediaItem, featured bool, latestLabel string) string {
	if label, ok := models.ParseTagLabel(item.Tags, models.TagPrefixCarousel); ok {
		return label
	}
	if featured {
		return FeaturedLabel
	}
	return latestLabel
}
