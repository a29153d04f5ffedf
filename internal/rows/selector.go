// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package rows

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

const (
	BranchFeaturedRows = "featured_rows"
	BranchGenreRows    = "genre_rows"
)

// GenreLister lists the genres visible to a user.
type GenreLister interface {
	ListGenres(ctx context.Context, userID string) ([]models.Genre, error)
}

// CatalogGenres lists movie and series genres straight from the catalog.
type CatalogGenres struct {
	Catalog models.CatalogClient
}

// ListGenres implements GenreLister.
func (c CatalogGenres) ListGenres(ctx context.Context, userID string) ([]models.Genre, error) {
	result, err := c.Catalog.GetGenres(ctx, userID, models.ItemQuery{
		IncludeItemTypes: []string{"Movie", "Series"},
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.Items, nil
}

// Config tunes a Selector.
type Config struct {
	Limits Limits

	// EnableOverflow renders rows as horizontal scrollers.
	EnableOverflow bool

	// Now defaults to time.Now.
	Now func() time.Time
}

// Selection is the ordered row list plus the failure of each branch.
// A failed branch contributes no groups.
type Selection struct {
	Groups      []models.DisplayGroup
	FeaturedErr error
	GenreErr    error
}

// Selector produces the home rows for a user.
type Selector struct {
	catalog models.ItemFetcher
	genres  GenreLister
	limits  Limits
	card    models.CardOptions
	now     func() time.Time
}

// NewSelector creates a Selector.
func NewSelector(catalog models.ItemFetcher, genres GenreLister, cfg Config) *Selector {
	limits := cfg.Limits
	def := DefaultLimits()
	if limits.FeaturedRows <= 0 {
		limits.FeaturedRows = def.FeaturedRows
	}
	if limits.FeaturedItemsPerRow <= 0 {
		limits.FeaturedItemsPerRow = def.FeaturedItemsPerRow
	}
	if limits.GenreRows <= 0 {
		limits.GenreRows = def.GenreRows
	}
	if limits.GenreItemsPerRow <= 0 {
		limits.GenreItemsPerRow = def.GenreItemsPerRow
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Selector{
		catalog: catalog,
		genres:  genres,
		limits:  limits,
		card:    models.DefaultRowCard(cfg.EnableOverflow),
		now:     now,
	}
}

// Limits returns the effective row caps.
func (s *Selector) Limits() Limits {
	return s.limits
}

// Card returns the card hints attached to every row.
func (s *Selector) Card() models.CardOptions {
	return s.card
}

// Select runs the featured and genre branches concurrently and waits for
// both. A failing branch is logged and reported in the Selection; it never
// cancels or empties the other.
func (s *Selector) Select(ctx context.Context, userID string) *Selection {
	now := s.now()

	var (
		wg       sync.WaitGroup
		featured []models.DisplayGroup
		genre    []models.DisplayGroup
		sel      Selection
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		featured, sel.FeaturedErr = s.featuredBranch(ctx, userID, now)
	}()
	go func() {
		defer wg.Done()
		genre, sel.GenreErr = s.genreBranch(ctx, userID, now)
	}()
	wg.Wait()

	if sel.FeaturedErr != nil {
		logging.Ctx(ctx).Warn().Err(sel.FeaturedErr).Str("branch", BranchFeaturedRows).
			Msg("Featured rows unavailable")
		metrics.RecordBranchFailure(BranchFeaturedRows)
	}
	if sel.GenreErr != nil {
		logging.Ctx(ctx).Warn().Err(sel.GenreErr).Str("branch", BranchGenreRows).
			Msg("Genre rows unavailable")
		metrics.RecordBranchFailure(BranchGenreRows)
	}

	metrics.RecordGroups(string(models.GroupKindFeatured), len(featured))
	metrics.RecordGroups(string(models.GroupKindGenre), len(genre))

	sel.Groups = make([]models.DisplayGroup, 0, len(featured)+len(genre))
	sel.Groups = append(sel.Groups, featured...)
	sel.Groups = append(sel.Groups, genre...)
	return &sel
}

func (s *Selector) featuredBranch(ctx context.Context, userID string, now time.Time) ([]models.DisplayGroup, error) {
	result, err := s.catalog.GetItems(ctx, userID, models.ItemQuery{
		Tags:             []string{models.TagFeaturedRow},
		IncludeItemTypes: []string{"Movie", "Series"},
		Limit:            FeaturedPoolLimit,
		Fields:           []string{"PrimaryImageAspectRatio", "Path", "Tags"},
		Recursive:        true,
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return FeaturedRows(result.Items, now, s.limits, s.card), nil
}

func (s *Selector) genreBranch(ctx context.Context, userID string, now time.Time) ([]models.DisplayGroup, error) {
	genres, err := s.genres.ListGenres(ctx, userID)
	if err != nil {
		return nil, err
	}
	return GenreRows(genres, userID, now, s.limits, s.card), nil
}
