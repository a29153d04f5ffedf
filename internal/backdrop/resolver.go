// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package backdrop resolves the best background image URL for an item.
//
// The fallback chain is the item's own backdrops, then the parent's backdrops
// (episodes and seasons inherit from their series), then the primary image.
// An item with none of these has no backdrop.
package backdrop

import (
	"math/rand/v2"
	"sync"

	"github.com/tomtom215/marquee/internal/models"
)

// IntSource yields random integers in [0, n).
type IntSource interface {
	Intn(n int) int
}

// lockedRand is a goroutine-safe IntSource over math/rand/v2.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandSource returns a goroutine-safe IntSource seeded with seed.
func NewRandSource(seed uint64) IntSource {
	return &lockedRand{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.IntN(n)
}

// globalRand delegates to the math/rand/v2 top-level generator.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.IntN(n) }

// Resolver builds backdrop URLs through an ImageURLBuilder.
type Resolver struct {
	images models.ImageURLBuilder
	rnd    IntSource
}

// NewResolver creates a Resolver. A nil rnd uses the process-wide generator.
func NewResolver(images models.ImageURLBuilder, rnd IntSource) *Resolver {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Resolver{images: images, rnd: rnd}
}

// Source names the fallback level that produced a backdrop.
type Source string

const (
	SourceOwn     Source = "own"
	SourceParent  Source = "parent"
	SourcePrimary Source = "primary"
	SourceNone    Source = "none"
)

// BackdropURL returns the backdrop URL for item and whether one exists.
// Type, Index and Tag of scale are overwritten; only its sizing is used.
func (r *Resolver) BackdropURL(item *models.MediaItem, scale models.ImageOptions, policy IndexPolicy) (string, bool) {
	u, src := r.Resolve(item, scale, policy)
	return u, src != SourceNone
}

// Resolve is BackdropURL that also reports which fallback level matched.
func (r *Resolver) Resolve(item *models.MediaItem, scale models.ImageOptions, policy IndexPolicy) (string, Source) {
	if item == nil {
		return "", SourceNone
	}

	if item.ID != "" && len(item.BackdropImageTags) > 0 {
		return r.indexed(item.ID, item.BackdropImageTags, scale, policy), SourceOwn
	}

	if item.ParentBackdropItemID != "" && len(item.ParentBackdropImageTags) > 0 {
		return r.indexed(item.ParentBackdropItemID, item.ParentBackdropImageTags, scale, policy), SourceParent
	}

	if tag := item.PrimaryImageTag(); item.ID != "" && tag != "" {
		opts := scale
		opts.Type = models.ImageTypePrimary
		opts.Index = nil
		opts.Tag = tag
		return r.images.ImageURL(item.ID, opts), SourcePrimary
	}

	return "", SourceNone
}

func (r *Resolver) indexed(id string, tags []string, scale models.ImageOptions, policy IndexPolicy) string {
	idx := policy.pick(len(tags), r.rnd)

	opts := scale
	opts.Type = models.ImageTypeBackdrop
	opts.Index = &idx
	opts.Tag = tags[idx]
	return r.images.ImageURL(id, opts)
}
