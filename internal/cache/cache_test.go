// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/marquee/internal/metrics"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func newTestCache[V any](name string, ttl time.Duration) (*Cache[V], *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[V](name, ttl)
	c.now = clock.Now
	return c, clock
}

func TestCacheBasicOperations(t *testing.T) {
	c, _ := newTestCache[string]("test_basic", time.Minute)

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Fatal("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	if _, exists := c.Get("key2"); exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheExpiration(t *testing.T) {
	c, clock := newTestCache[[]string]("test_expiry", 10*time.Minute)

	c.Set("u1", []string{"Drama", "Comedy"})
	clock.Advance(9 * time.Minute)
	if _, ok := c.Get("u1"); !ok {
		t.Fatal("entry should still be valid before its TTL")
	}

	clock.Advance(time.Minute)
	if _, ok := c.Get("u1"); ok {
		t.Error("entry should expire exactly at its TTL")
	}

	stats := c.GetStats()
	if stats.Evictions != 1 || stats.TotalKeys != 0 {
		t.Errorf("stats after expiry = %+v", stats)
	}
}

func TestCacheSetWithTTL(t *testing.T) {
	c, clock := newTestCache[int]("test_custom_ttl", time.Hour)

	c.SetWithTTL("short", 1, time.Second)
	c.Set("long", 2)
	clock.Advance(2 * time.Second)

	if _, ok := c.Get("short"); ok {
		t.Error("short-lived entry should be gone")
	}
	if v, ok := c.Get("long"); !ok || v != 2 {
		t.Errorf("long-lived entry = %v, %v", v, ok)
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c, _ := newTestCache[string]("test_delete", time.Minute)

	c.Set("key1", "v")
	c.Set("key2", "v")
	c.Set("key3", "v")
	c.Delete("key1")
	c.Delete("missing")

	if _, ok := c.Get("key1"); ok {
		t.Error("Expected key1 to be deleted")
	}
	if got := c.GetStats().Evictions; got != 1 {
		t.Errorf("evictions after delete = %d, want 1", got)
	}

	c.Clear()
	for _, key := range []string{"key2", "key3"} {
		if _, ok := c.Get(key); ok {
			t.Errorf("Expected %s to be cleared", key)
		}
	}
	if got := c.GetStats(); got.Evictions != 3 || got.TotalKeys != 0 {
		t.Errorf("stats after clear = %+v", got)
	}
}

func TestCacheHitRateAndMetrics(t *testing.T) {
	c, _ := newTestCache[string]("test_hitrate", time.Minute)

	if c.HitRate() != 0 {
		t.Error("empty cache should report 0% hit rate")
	}

	c.Set("a", "x")
	c.Get("a")
	c.Get("a")
	c.Get("a")
	c.Get("b")

	if got := c.HitRate(); got != 75 {
		t.Errorf("HitRate() = %v, want 75", got)
	}
	if got := testutil.ToFloat64(metrics.CacheHits.WithLabelValues("test_hitrate")); got != 3 {
		t.Errorf("cache_hits_total = %v, want 3", got)
	}
	if got := testutil.ToFloat64(metrics.CacheMisses.WithLabelValues("test_hitrate")); got != 1 {
		t.Errorf("cache_misses_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.CacheSize.WithLabelValues("test_hitrate")); got != 1 {
		t.Errorf("cache_entries = %v, want 1", got)
	}
}

func TestCacheCleanup(t *testing.T) {
	c, clock := newTestCache[int]("test_cleanup", time.Minute)

	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	c.SetWithTTL("keep", 9, time.Hour)
	clock.Advance(2 * time.Minute)

	c.cleanup()

	stats := c.GetStats()
	if stats.TotalKeys != 1 {
		t.Errorf("TotalKeys = %d, want 1", stats.TotalKeys)
	}
	if stats.Evictions != 5 {
		t.Errorf("Evictions = %d, want 5", stats.Evictions)
	}
	if !stats.LastCleanup.Equal(clock.Now()) {
		t.Errorf("LastCleanup = %v, want %v", stats.LastCleanup, clock.Now())
	}
}

func TestCacheServeStopsOnCancel(t *testing.T) {
	c := New[string]("test_serve", time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	if c.String() != "cache-test_serve" {
		t.Errorf("String() = %q", c.String())
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New[int]("test_concurrent", time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", n%5)
			c.Set(key, n)
			c.Get(key)
			if n%7 == 0 {
				c.Delete(key)
			}
		}(i)
	}
	wg.Wait()

	if c.GetStats().TotalKeys > 5 {
		t.Errorf("TotalKeys = %d, want ≤ 5", c.GetStats().TotalKeys)
	}
}
