// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/backdrop"
	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/carousel"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/home"
	"github.com/tomtom215/marquee/internal/jellyfin"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/rows"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logging is not configured yet.
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	metrics.SetAppInfo(version, runtime.Version())

	logging.Info().
		Str("version", version).
		Str("jellyfin_url", cfg.Jellyfin.URL).
		Msg("Starting Marquee")

	app := newApp(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := app.tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
		stop()
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := app.tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// app holds the wired components. Nothing runs until the tree is served.
type app struct {
	tree   *supervisor.Tree
	server *http.Server
}

func newApp(cfg *config.Config) *app {
	client := jellyfin.NewClient(jellyfin.Config{
		BaseURL:           cfg.Jellyfin.URL,
		APIKey:            cfg.Jellyfin.APIKey,
		Timeout:           cfg.Jellyfin.Timeout,
		RequestsPerSecond: cfg.Jellyfin.RequestsPerSecond,
		Burst:             cfg.Jellyfin.Burst,
		ClientName:        cfg.Jellyfin.ClientName,
		DeviceID:          cfg.Jellyfin.DeviceID,
		Version:           version,
	})
	catalog := jellyfin.NewCircuitBreakerClient(client, jellyfin.BreakerConfig{
		MaxRequests:  cfg.Breaker.MaxRequests,
		Interval:     cfg.Breaker.Interval,
		Timeout:      cfg.Breaker.Timeout,
		MinRequests:  cfg.Breaker.MinRequests,
		FailureRatio: cfg.Breaker.FailureRatio,
	})

	// Image URLs are built locally, so the resolver uses the raw client.
	resolver := backdrop.NewResolver(client, nil)

	genreCache := cache.New[[]models.Genre]("genres", cfg.Curation.GenreCacheTTL)
	genres := home.NewCachedGenres(rows.CatalogGenres{Catalog: catalog}, genreCache)

	selector := rows.NewSelector(catalog, genres, rows.Config{
		Limits: rows.Limits{
			FeaturedRows:        cfg.Curation.FeaturedRows,
			FeaturedItemsPerRow: cfg.Curation.FeaturedItemsPerRow,
			GenreRows:           cfg.Curation.GenreRows,
			GenreItemsPerRow:    cfg.Curation.GenreItemsPerRow,
		},
		EnableOverflow: cfg.Curation.EnableOverflow,
	})
	carouselSvc := carousel.NewService(catalog, resolver, carousel.Config{
		MaxSlides:        cfg.Curation.MaxSlides,
		LatestLabel:      cfg.Curation.LatestLabel,
		BackdropMaxWidth: cfg.Curation.BackdropMaxWidth,
		AutoplayMS:       cfg.Curation.AutoplayMS,
	})
	homeSvc := home.NewService(catalog, carouselSvc, selector, genres, resolver)

	handler := api.NewHandler(homeSvc, catalog, cfg.Curation.BackdropMaxWidth)
	mw := api.NewMiddleware(api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSMaxAge:         api.DefaultMiddlewareConfig().CORSMaxAge,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(handler, mw),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})

	tree.AddMaintenanceService(genreCache)
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", addr).Msg("HTTP server service added")

	return &app{tree: tree, server: server}
}
