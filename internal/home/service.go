// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package home composes the carousel and row selector into the full home
// screen and answers the single-item lookups the API exposes.
package home

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tomtom215/marquee/internal/backdrop"
	"github.com/tomtom215/marquee/internal/carousel"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/rows"
)

// ErrNoBackdrop is returned when an item has no usable image at all.
var ErrNoBackdrop = errors.New("item has no backdrop")

// ErrUnknownGenre is returned when a genre row is requested for an id the
// user cannot see.
var ErrUnknownGenre = errors.New("unknown genre")

// BranchErrors carries the message of every curation branch that failed.
type BranchErrors struct {
	FeaturedPool string `json:"featured_pool,omitempty"`
	LatestPool   string `json:"latest_pool,omitempty"`
	FeaturedRows string `json:"featured_rows,omitempty"`
	GenreRows    string `json:"genre_rows,omitempty"`
}

// Empty reports whether no branch failed.
func (e BranchErrors) Empty() bool {
	return e == BranchErrors{}
}

// Screen is the composed home screen.
type Screen struct {
	Carousel carousel.Carousel    `json:"carousel"`
	Rows     []models.DisplayGroup `json:"rows"`
	Errors   BranchErrors          `json:"errors"`
}

// Service builds home screens.
type Service struct {
	catalog  models.CatalogClient
	carousel *carousel.Service
	rows     *rows.Selector
	genres   rows.GenreLister
	resolver *backdrop.Resolver
}

// NewService wires the curation components together.
func NewService(
	catalog models.CatalogClient,
	carouselSvc *carousel.Service,
	selector *rows.Selector,
	genres rows.GenreLister,
	resolver *backdrop.Resolver,
) *Service {
	return &Service{
		catalog:  catalog,
		carousel: carouselSvc,
		rows:     selector,
		genres:   genres,
		resolver: resolver,
	}
}

// Home builds the carousel and rows concurrently.
func (s *Service) Home(ctx context.Context, userID string) *Screen {
	ctx = logging.ContextWithNewCorrelationID(ctx)

	var (
		wg  sync.WaitGroup
		b   *carousel.Build
		sel *rows.Selection
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		b = s.carousel.Build(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		sel = s.rows.Select(ctx, userID)
	}()
	wg.Wait()

	screen := &Screen{
		Carousel: b.Carousel,
		Rows:     sel.Groups,
	}
	screen.Errors.FeaturedPool = errString(b.FeaturedErr)
	screen.Errors.LatestPool = errString(b.LatestErr)
	screen.Errors.FeaturedRows = errString(sel.FeaturedErr)
	screen.Errors.GenreRows = errString(sel.GenreErr)

	logging.Ctx(ctx).Debug().
		Int("slides", len(screen.Carousel.Slides)).
		Int("rows", len(screen.Rows)).
		Bool("degraded", !screen.Errors.Empty()).
		Msg("Home screen built")

	return screen
}

// Carousel builds only the carousel.
func (s *Service) Carousel(ctx context.Context, userID string) *carousel.Build {
	return s.carousel.Build(logging.ContextWithNewCorrelationID(ctx), userID)
}

// Rows selects only the rows; genre rows stay lazy.
func (s *Service) Rows(ctx context.Context, userID string) *rows.Selection {
	return s.rows.Select(logging.ContextWithNewCorrelationID(ctx), userID)
}

// GenreRow realizes the lazy row for one genre.
func (s *Service) GenreRow(ctx context.Context, userID, genreID string) (*models.DisplayGroup, []models.MediaItem, error) {
	genres, err := s.genres.ListGenres(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list genres: %w", err)
	}

	var genre *models.Genre
	for i := range genres {
		if genres[i].Valid() && genres[i].ID == genreID {
			genre = &genres[i]
			break
		}
	}
	if genre == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownGenre, genreID)
	}

	limits := s.rows.Limits()
	query := rows.GenreRowQuery(genre.ID, limits.GenreItemsPerRow)
	group := &models.DisplayGroup{
		Label:  genre.Name,
		Kind:   models.GroupKindGenre,
		UserID: userID,
		Query:  &query,
		Card:   s.rows.Card(),
	}

	items, err := group.Load(ctx, s.catalog)
	if err != nil {
		return nil, nil, err
	}
	return group, items, nil
}

// BackdropFor resolves the backdrop URL of a single item.
func (s *Service) BackdropFor(ctx context.Context, userID, itemID string, policy backdrop.IndexPolicy, maxWidth int) (string, error) {
	item, err := s.catalog.GetItem(ctx, userID, itemID)
	if err != nil {
		return "", err
	}

	scale := models.ImageOptions{ScaleOptions: models.ScaleOptions{MaxWidth: maxWidth}}
	u, ok := s.resolver.BackdropURL(item, scale, policy)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoBackdrop, itemID)
	}
	return u, nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
