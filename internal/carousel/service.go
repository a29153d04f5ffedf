// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package carousel builds the hero carousel: featured items first, topped up
// with the latest additions, each slide carrying a caption and a backdrop.
package carousel

import (
	"context"
	"sync"

	"github.com/tomtom215/marquee/internal/backdrop"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

const (
	// DefaultAutoplayMS is how long each slide stays on screen.
	DefaultAutoplayMS = 7000

	// DefaultBackdropMaxWidth sizes slide backdrops for a 1080p hero.
	DefaultBackdropMaxWidth = 1920

	BranchFeaturedPool = "featured_pool"
	BranchLatestPool   = "latest_pool"
)

// sourceFields is requested for both carousel sources so slides can resolve
// backdrops without a second lookup.
var sourceFields = []string{
	"PrimaryImageAspectRatio", "Path", "Tags", "Overview",
	"BackdropImageTags", "ParentBackdropItemId", "ParentBackdropImageTags", "ImageTags",
}

// Config tunes the carousel.
type Config struct {
	MaxSlides        int
	LatestLabel      string
	BackdropMaxWidth int
	AutoplayMS       int
}

// DefaultConfig returns the stock carousel settings.
func DefaultConfig() Config {
	return Config{
		MaxSlides:        DefaultMaxSlides,
		LatestLabel:      DefaultLatestLabel,
		BackdropMaxWidth: DefaultBackdropMaxWidth,
		AutoplayMS:       DefaultAutoplayMS,
	}
}

// Slide is one carousel entry.
type Slide struct {
	Item        models.MediaItem `json:"item"`
	Label       string           `json:"label"`
	Featured    bool             `json:"featured"`
	BackdropURL string           `json:"backdrop_url,omitempty"`
}

// Carousel is the rendered-ready carousel.
type Carousel struct {
	Slides     []Slide `json:"slides"`
	AutoplayMS int     `json:"autoplay_ms"`
	Loop       bool    `json:"loop"`
}

// Build is a carousel plus the per-source fetch failures that degraded it.
// A failed source contributes nothing; the other source is used as is.
type Build struct {
	Carousel
	FeaturedErr error
	LatestErr   error
}

// Service assembles carousels from a catalog.
type Service struct {
	catalog  models.CatalogClient
	resolver *backdrop.Resolver
	cfg      Config
}

// NewService creates a carousel service.
func NewService(catalog models.CatalogClient, resolver *backdrop.Resolver, cfg Config) *Service {
	def := DefaultConfig()
	if cfg.MaxSlides <= 0 {
		cfg.MaxSlides = def.MaxSlides
	}
	if cfg.LatestLabel == "" {
		cfg.LatestLabel = def.LatestLabel
	}
	if cfg.BackdropMaxWidth <= 0 {
		cfg.BackdropMaxWidth = def.BackdropMaxWidth
	}
	if cfg.AutoplayMS <= 0 {
		cfg.AutoplayMS = def.AutoplayMS
	}
	return &Service{catalog: catalog, resolver: resolver, cfg: cfg}
}

// Build fetches the featured and latest sources concurrently, merges them and
// resolves a backdrop for every slide.
func (s *Service) Build(ctx context.Context, userID string) *Build {
	var (
		wg       sync.WaitGroup
		featured []models.MediaItem
		latest   []models.MediaItem
		out      Build
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		featured, out.FeaturedErr = s.fetchFeatured(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		latest, out.LatestErr = s.fetchLatest(ctx, userID)
	}()
	wg.Wait()

	if out.FeaturedErr != nil {
		logging.Ctx(ctx).Warn().Err(out.FeaturedErr).Str("branch", BranchFeaturedPool).
			Msg("Featured carousel source unavailable")
		metrics.RecordBranchFailure(BranchFeaturedPool)
	}
	if out.LatestErr != nil {
		logging.Ctx(ctx).Warn().Err(out.LatestErr).Str("branch", BranchLatestPool).
			Msg("Latest carousel source unavailable")
		metrics.RecordBranchFailure(BranchLatestPool)
	}

	merged := Aggregate(featured, latest, s.cfg.MaxSlides)
	out.Carousel = s.slides(merged)
	metrics.RecordCarousel(len(out.Slides))

	return &out
}

func (s *Service) fetchFeatured(ctx context.Context, userID string) ([]models.MediaItem, error) {
	result, err := s.catalog.GetItems(ctx, userID, models.ItemQuery{
		Tags:             []string{models.TagFeatured},
		IncludeItemTypes: []string{"Movie", "Series"},
		Limit:            s.cfg.MaxSlides,
		Fields:           sourceFields,
		Recursive:        true,
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.Items, nil
}

func (s *Service) fetchLatest(ctx context.Context, userID string) ([]models.MediaItem, error) {
	return s.catalog.GetLatestItems(ctx, userID, models.ItemQuery{
		IncludeItemTypes: []string{"Movie", "Series"},
		Limit:            s.cfg.MaxSlides,
		Fields:           sourceFields,
	})
}

func (s *Service) slides(merged Result) Carousel {
	scale := models.ImageOptions{ScaleOptions: models.ScaleOptions{MaxWidth: s.cfg.BackdropMaxWidth}}

	c := Carousel{
		Slides:     make([]Slide, 0, len(merged.Items)),
		AutoplayMS: s.cfg.AutoplayMS,
		Loop:       len(merged.Items) > 1,
	}
	for i := range merged.Items {
		item := &merged.Items[i]
		featured := merged.FeaturedIDs.Contains(item.ID)

		slide := Slide{
			Item:     *item,
			Label:    Label(item, featured, s.cfg.LatestLabel),
			Featured: featured,
		}
		if s.resolver != nil {
			u, src := s.resolver.Resolve(item, scale, backdrop.FirstIndex())
			slide.BackdropURL = u
			metrics.RecordBackdrop(string(src))
		}
		c.Slides = append(c.Slides, slide)
	}
	return c
}
