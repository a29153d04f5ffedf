// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

// ImageType identifies a Jellyfin image kind.
type ImageType string

const (
	ImageTypeBackdrop ImageType = "Backdrop"
	ImageTypePrimary  ImageType = "Primary"
	ImageTypeThumb    ImageType = "Thumb"
)

// MediaItem is a catalog entry as returned by the Jellyfin items endpoints.
//
// Only the fields used for curation and backdrop resolution are decoded; the
// display fields (Name, Overview, ProductionYear) are passed through untouched.
// An empty ID marks a transient entry that cannot be deduplicated or referenced.
type MediaItem struct {
	ID             string `json:"Id,omitempty"`
	Name           string `json:"Name,omitempty"`
	Overview       string `json:"Overview,omitempty"`
	Type           string `json:"Type,omitempty"` // "Movie", "Series", ...
	ProductionYear int    `json:"ProductionYear,omitempty"`
	SeriesName     string `json:"SeriesName,omitempty"`

	// Free-form tags; editorial conventions such as "row:<label>" live here
	Tags []string `json:"Tags,omitempty"`

	// Images
	BackdropImageTags       []string          `json:"BackdropImageTags,omitempty"`
	ParentBackdropItemID    string            `json:"ParentBackdropItemId,omitempty"`
	ParentBackdropImageTags []string          `json:"ParentBackdropImageTags,omitempty"`
	ImageTags               map[string]string `json:"ImageTags,omitempty"` // keyed by ImageType
	PrimaryImageAspectRatio float64           `json:"PrimaryImageAspectRatio,omitempty"`
}

// HasID reports whether the item carries a usable identifier.
func (m *MediaItem) HasID() bool {
	return m.ID != ""
}

// PrimaryImageTag returns the cache tag of the primary image, or "" if none.
func (m *MediaItem) PrimaryImageTag() string {
	return m.ImageTags[string(ImageTypePrimary)]
}

// ItemsResult is the paged wrapper Jellyfin uses for item listings.
type ItemsResult struct {
	Items            []MediaItem `json:"Items"`
	TotalRecordCount int         `json:"TotalRecordCount"`
	StartIndex       int         `json:"StartIndex,omitempty"`
}

// Genre is a genre entity from the Jellyfin /Genres endpoint.
type Genre struct {
	ID   string `json:"Id,omitempty"`
	Name string `json:"Name,omitempty"`
}

// Valid reports whether the genre has both an identifier and a name.
func (g *Genre) Valid() bool {
	return g.ID != "" && g.Name != ""
}

// GenresResult is the paged wrapper returned by the /Genres endpoint.
type GenresResult struct {
	Items            []Genre `json:"Items"`
	TotalRecordCount int     `json:"TotalRecordCount"`
}
