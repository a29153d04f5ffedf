// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package rows

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

type fakeFetcher struct {
	pool  []models.MediaItem
	err   error
	block chan struct{}
	last  models.ItemQuery
}

func (f *fakeFetcher) GetItems(ctx context.Context, _ string, q models.ItemQuery) (*models.ItemsResult, error) {
	f.last = q
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &models.ItemsResult{Items: f.pool, TotalRecordCount: len(f.pool)}, nil
}

type fakeGenres struct {
	genres []models.Genre
	err    error
}

func (f *fakeGenres) ListGenres(context.Context, string) ([]models.Genre, error) {
	return f.genres, f.err
}

type fakeGenreCatalog struct {
	fakeFetcher
	genres *models.GenresResult
	gq     models.ItemQuery
}

func (f *fakeGenreCatalog) GetLatestItems(context.Context, string, models.ItemQuery) ([]models.MediaItem, error) {
	return nil, nil
}

func (f *fakeGenreCatalog) GetGenres(_ context.Context, _ string, q models.ItemQuery) (*models.GenresResult, error) {
	f.gq = q
	return f.genres, nil
}

func (f *fakeGenreCatalog) GetItem(context.Context, string, string) (*models.MediaItem, error) {
	return nil, nil
}

func fixedClock(d int64) func() time.Time {
	return func() time.Time { return day(d) }
}

func TestSelectOrdersFeaturedThenGenre(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{pool: []models.MediaItem{tagged("1", "row:Picks"), tagged("2")}}
	genres := &fakeGenres{genres: []models.Genre{{ID: "g1", Name: "Drama"}, {ID: "g2", Name: "Horror"}}}

	sel := NewSelector(fetcher, genres, Config{Now: fixedClock(0), EnableOverflow: true}).
		Select(context.Background(), "u1")

	if sel.FeaturedErr != nil || sel.GenreErr != nil {
		t.Fatalf("unexpected errors: %v / %v", sel.FeaturedErr, sel.GenreErr)
	}
	want := []string{"Picks", "Featured", "Drama", "Horror"}
	if got := labelsOf(sel.Groups); !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}

	q := fetcher.last
	if !slices.Equal(q.Tags, []string{"FeaturedRow"}) || q.Limit != FeaturedPoolLimit || !q.Recursive {
		t.Errorf("featured pool query = %+v", q)
	}
	if !slices.Contains(q.Fields, "Tags") {
		t.Errorf("featured pool must request Tags: %v", q.Fields)
	}
	if sel.Groups[0].Card.AllowBottomPadding {
		t.Error("overflow rows should not allow bottom padding")
	}
}

func TestSelectFeaturedFailureKeepsGenres(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{err: errors.New("jellyfin 500")}
	genres := &fakeGenres{genres: []models.Genre{{ID: "g1", Name: "Drama"}}}

	sel := NewSelector(fetcher, genres, Config{Now: fixedClock(0)}).Select(context.Background(), "u1")

	if sel.FeaturedErr == nil {
		t.Error("expected FeaturedErr")
	}
	if sel.GenreErr != nil {
		t.Errorf("GenreErr = %v", sel.GenreErr)
	}
	if got := labelsOf(sel.Groups); !slices.Equal(got, []string{"Drama"}) {
		t.Errorf("labels = %v", got)
	}
}

func TestSelectGenreFailureKeepsFeatured(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{pool: []models.MediaItem{tagged("1")}}
	genres := &fakeGenres{err: errors.New("genres timeout")}

	sel := NewSelector(fetcher, genres, Config{Now: fixedClock(0)}).Select(context.Background(), "u1")

	if sel.GenreErr == nil || sel.FeaturedErr != nil {
		t.Errorf("errors = %v / %v", sel.FeaturedErr, sel.GenreErr)
	}
	if got := labelsOf(sel.Groups); !slices.Equal(got, []string{"Featured"}) {
		t.Errorf("labels = %v", got)
	}
}

func TestSelectBothFail(t *testing.T) {
	t.Parallel()

	sel := NewSelector(&fakeFetcher{err: errors.New("a")}, &fakeGenres{err: errors.New("b")}, Config{}).
		Select(context.Background(), "u1")

	if sel.FeaturedErr == nil || sel.GenreErr == nil {
		t.Error("both branch errors should be reported")
	}
	if sel.Groups == nil || len(sel.Groups) != 0 {
		t.Errorf("expected empty groups, got %#v", sel.Groups)
	}
}

func TestSelectRunsBranchesConcurrently(t *testing.T) {
	t.Parallel()

	// The featured branch blocks until released; the genre branch must finish regardless.
	release := make(chan struct{})
	fetcher := &fakeFetcher{pool: []models.MediaItem{tagged("1")}, block: release}
	genres := &fakeGenres{genres: []models.Genre{{ID: "g", Name: "G"}}}
	s := NewSelector(fetcher, genres, Config{Now: fixedClock(0)})

	done := make(chan *Selection, 1)
	go func() { done <- s.Select(context.Background(), "u1") }()

	select {
	case <-done:
		t.Fatal("Select returned before the featured branch finished")
	case <-time.After(30 * time.Millisecond):
	}
	close(release)

	select {
	case sel := <-done:
		if len(sel.Groups) != 2 {
			t.Errorf("groups = %d, want 2", len(sel.Groups))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Select did not return")
	}
}

func TestSelectCanceledContextDegrades(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := &fakeFetcher{block: make(chan struct{})}
	sel := NewSelector(fetcher, &fakeGenres{}, Config{}).Select(ctx, "u1")
	if !errors.Is(sel.FeaturedErr, context.Canceled) {
		t.Errorf("FeaturedErr = %v, want context.Canceled", sel.FeaturedErr)
	}
}

func TestCatalogGenres(t *testing.T) {
	t.Parallel()

	cat := &fakeGenreCatalog{genres: &models.GenresResult{Items: []models.Genre{{ID: "g", Name: "Drama"}}}}
	genres, err := CatalogGenres{Catalog: cat}.ListGenres(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListGenres: %v", err)
	}
	if len(genres) != 1 || genres[0].Name != "Drama" {
		t.Errorf("genres = %v", genres)
	}
	if !slices.Equal(cat.gq.IncludeItemTypes, []string{"Movie", "Series"}) {
		t.Errorf("genre query types = %v", cat.gq.IncludeItemTypes)
	}
}

func TestNewSelectorDefaults(t *testing.T) {
	t.Parallel()

	s := NewSelector(&fakeFetcher{}, &fakeGenres{}, Config{})
	if s.Limits() != DefaultLimits() {
		t.Errorf("limits = %+v, want %+v", s.Limits(), DefaultLimits())
	}
}
