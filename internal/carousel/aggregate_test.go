// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package carousel

import (
	"fmt"
	"slices"
	"testing"

	"github.com/tomtom215/marquee/internal/models"
)

func items(ids ...string) []models.MediaItem {
	out := make([]models.MediaItem, len(ids))
	for i, id := range ids {
		out[i] = models.MediaItem{ID: id}
	}
	return out
}

func ids(list []models.MediaItem) []string {
	out := make([]string, len(list))
	for i := range list {
		out[i] = list[i].ID
	}
	return out
}

func TestAggregateScenario(t *testing.T) {
	t.Parallel()

	res := Aggregate(items("1", "2"), items("2", "3", "4"), 3)

	if got := ids(res.Items); !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Errorf("merged = %v, want [1 2 3]", got)
	}
	if len(res.FeaturedIDs) != 2 || !res.FeaturedIDs.Contains("1") || !res.FeaturedIDs.Contains("2") {
		t.Errorf("featured = %v, want {1,2}", res.FeaturedIDs)
	}
	if res.FeaturedIDs.Contains("3") {
		t.Error("latest item must not be marked featured")
	}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		featured     []models.MediaItem
		latest       []models.MediaItem
		max          int
		want         []string
		wantFeatured int
	}{
		{
			name: "empty inputs",
			max:  10,
			want: []string{},
		},
		{
			name:   "latest only",
			latest: items("a", "b"),
			max:    10,
			want:   []string{"a", "b"},
		},
		{
			name:         "featured dedup keeps first occurrence",
			featured:     items("a", "b", "a"),
			max:          10,
			want:         []string{"a", "b"},
			wantFeatured: 2,
		},
		{
			name:         "featured pass is not capped",
			featured:     items("1", "2", "3", "4"),
			latest:       items("5"),
			max:          2,
			want:         []string{"1", "2", "3", "4"},
			wantFeatured: 4,
		},
		{
			name:   "latest stops at cap",
			latest: items("1", "2", "3", "4", "5"),
			max:    3,
			want:   []string{"1", "2", "3"},
		},
		{
			name:         "items without id are skipped",
			featured:     []models.MediaItem{{Name: "no id"}, {ID: "f"}},
			latest:       []models.MediaItem{{Name: "also none"}, {ID: "l"}},
			max:          10,
			want:         []string{"f", "l"},
			wantFeatured: 1,
		},
		{
			name:         "zero cap keeps featured only",
			featured:     items("f"),
			latest:       items("l"),
			max:          0,
			want:         []string{"f"},
			wantFeatured: 1,
		},
		{
			name:   "order preserved",
			latest: items("z", "y", "x"),
			max:    10,
			want:   []string{"z", "y", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Aggregate(tt.featured, tt.latest, tt.max)
			if got := ids(res.Items); !slices.Equal(got, tt.want) {
				t.Errorf("merged = %v, want %v", got, tt.want)
			}
			if len(res.FeaturedIDs) != tt.wantFeatured {
				t.Errorf("featured count = %d, want %d", len(res.FeaturedIDs), tt.wantFeatured)
			}
		})
	}
}

func TestAggregateProperties(t *testing.T) {
	t.Parallel()

	// Overlapping pools of varying size; checks the invariants rather than exact output.
	for f := 0; f <= 6; f++ {
		for l := 0; l <= 12; l += 3 {
			featured := make([]models.MediaItem, f)
			for i := range featured {
				featured[i] = models.MediaItem{ID: fmt.Sprint(i * 2)}
			}
			latest := make([]models.MediaItem, l)
			for i := range latest {
				latest[i] = models.MediaItem{ID: fmt.Sprint(i)}
			}

			res := Aggregate(featured, latest, DefaultMaxSlides)

			seen := map[string]bool{}
			for _, it := range res.Items {
				if seen[it.ID] {
					t.Fatalf("f=%d l=%d: duplicate id %s", f, l, it.ID)
				}
				seen[it.ID] = true
			}
			if len(res.Items) > max(DefaultMaxSlides, f) {
				t.Errorf("f=%d l=%d: len %d exceeds cap", f, l, len(res.Items))
			}
			for i := 0; i < f; i++ {
				if res.Items[i].ID != featured[i].ID {
					t.Errorf("f=%d l=%d: featured prefix broken at %d", f, l, i)
				}
			}
			for id := range res.FeaturedIDs {
				if !seen[id] {
					t.Errorf("featured id %s not in output", id)
				}
			}
		}
	}
}

func TestFeaturedSetContainsEmpty(t *testing.T) {
	t.Parallel()

	s := FeaturedSet{"": {}}
	if s.Contains("") {
		t.Error("empty id must never be featured")
	}
	var nilSet FeaturedSet
	if nilSet.Contains("x") {
		t.Error("nil set contains nothing")
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tags     []string
		featured bool
		want     string
	}{
		{"carousel tag wins", []string{"carousel: Tonight Only "}, true, "Tonight Only"},
		{"first carousel tag", []string{"carousel:A", "carousel:B"}, false, "A"},
		{"featured default", []string{"row:Ignored"}, true, FeaturedLabel},
		{"latest default", nil, false, "Recently Added"},
		{"blank carousel tag falls back", []string{"carousel:  "}, true, FeaturedLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &models.MediaItem{ID: "x", Tags: tt.tags}
			if got := Label(item, tt.featured, "Recently Added"); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
