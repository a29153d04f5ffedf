// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"context"
	"errors"
	"fmt"
)

// GroupKind distinguishes how a display group was produced.
type GroupKind string

const (
	GroupKindFeatured GroupKind = "featured"
	GroupKindGenre    GroupKind = "genre"
)

// ErrNoFetcher is returned when a lazy group is loaded without a fetcher.
var ErrNoFetcher = errors.New("no item fetcher")

// CardOptions are presentation hints forwarded untouched to the renderer.
type CardOptions struct {
	Shape                   string `json:"shape"`
	PreferThumb             string `json:"prefer_thumb"`
	ShowUnplayedIndicator   bool   `json:"show_unplayed_indicator"`
	ShowChildCountIndicator bool   `json:"show_child_count_indicator"`
	Context                 string `json:"context"`
	OverlayText             bool   `json:"overlay_text"`
	CardLayout              bool   `json:"card_layout"`
	CenterText              bool   `json:"center_text"`
	OverlayPlayButton       bool   `json:"overlay_play_button"`
	AllowBottomPadding      bool   `json:"allow_bottom_padding"`
	ShowTitle               bool   `json:"show_title"`
	ShowYear                bool   `json:"show_year"`
	ShowParentTitle         bool   `json:"show_parent_title"`
	Lines                   int    `json:"lines"`
}

// DefaultRowCard returns the card hints used for every home row.
// Overflowing rows scroll horizontally and get no bottom padding.
func DefaultRowCard(overflow bool) CardOptions {
	return CardOptions{
		Shape:                   "portrait",
		PreferThumb:             "auto",
		ShowChildCountIndicator: true,
		Context:                 "home",
		CenterText:              true,
		OverlayPlayButton:       true,
		AllowBottomPadding:      !overflow,
		ShowTitle:               true,
		ShowYear:                true,
		ShowParentTitle:         true,
		Lines:                   2,
	}
}

// DisplayGroup is a labeled set of items destined for one UI section.
//
// A group either carries preresolved Items or a Query to run later. A lazy
// group is realized with Load and never caches its result, so repeated and
// concurrent loads are independent.
type DisplayGroup struct {
	Label  string      `json:"label"`
	Kind   GroupKind   `json:"kind"`
	Items  []MediaItem `json:"items,omitempty"`
	UserID string      `json:"-"`
	Query  *ItemQuery  `json:"query,omitempty"`
	Card   CardOptions `json:"card"`
}

// Lazy reports whether the group's items must be fetched.
func (g *DisplayGroup) Lazy() bool {
	return g.Query != nil
}

// Load returns the group's items, running its query through fetcher when the
// group is lazy. The result never exceeds the query's limit.
func (g *DisplayGroup) Load(ctx context.Context, fetcher ItemFetcher) ([]MediaItem, error) {
	if g.Query == nil {
		return g.Items, nil
	}
	if fetcher == nil {
		return nil, fmt.Errorf("load %s row %q: %w", g.Kind, g.Label, ErrNoFetcher)
	}

	result, err := fetcher.GetItems(ctx, g.UserID, *g.Query)
	if err != nil {
		return nil, fmt.Errorf("load %s row %q: %w", g.Kind, g.Label, err)
	}
	if result == nil {
		return []MediaItem{}, nil
	}

	items := result.Items
	if g.Query.Limit > 0 && len(items) > g.Query.Limit {
		items = items[:g.Query.Limit]
	}
	return items, nil
}
