// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package jellyfin implements the catalog capabilities Marquee consumes on top
of the Jellyfin REST API: item listings, latest media, genres, single item
lookup and image URL construction.

Client talks HTTP and is rate limited with golang.org/x/time/rate.
CircuitBreakerClient wraps any catalog with sony/gobreaker so a failing
server is shed quickly instead of stalling every home request.

API Reference: https://api.jellyfin.org/
*/
package jellyfin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// maxErrorBody bounds how much of an error response is kept.
const maxErrorBody = 512

var (
	_ models.CatalogClient   = (*Client)(nil)
	_ models.ImageURLBuilder = (*Client)(nil)
)

// Config configures a Client.
type Config struct {
	BaseURL string
	APIKey  string

	// Timeout per HTTP request; 0 means 30s.
	Timeout time.Duration

	// RequestsPerSecond caps outbound calls; 0 disables limiting.
	RequestsPerSecond float64
	Burst             int

	// Identification sent with every request
	ClientName string
	DeviceID   string
	Version    string

	// HTTPClient overrides the default client, mostly for tests.
	HTTPClient *http.Client
}

// Client provides access to the Jellyfin REST API.
type Client struct {
	baseURL    string
	apiKey     string
	clientName string
	deviceID   string
	version    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Jellyfin API client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		clientName: valueOr(cfg.ClientName, "Marquee"),
		deviceID:   valueOr(cfg.DeviceID, "marquee"),
		version:    valueOr(cfg.Version, "dev"),
		httpClient: httpClient,
	}

	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return c
}

// BaseURL returns the normalized server URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetItems runs an item query for a user.
//
//	GET /Users/{userId}/Items
func (c *Client) GetItems(ctx context.Context, userID string, query models.ItemQuery) (*models.ItemsResult, error) {
	endpoint := "/Users/" + url.PathEscape(userID) + "/Items"

	var result models.ItemsResult
	if err := c.getJSON(ctx, "items", endpoint, encodeQuery(&query), &result); err != nil {
		return nil, err
	}
	if result.Items == nil {
		result.Items = []models.MediaItem{}
	}
	return &result, nil
}

// GetLatestItems returns recently added media for a user.
// Jellyfin answers this endpoint with a bare array.
//
//	GET /Users/{userId}/Items/Latest
func (c *Client) GetLatestItems(ctx context.Context, userID string, query models.ItemQuery) ([]models.MediaItem, error) {
	endpoint := "/Users/" + url.PathEscape(userID) + "/Items/Latest"

	var items []models.MediaItem
	if err := c.getJSON(ctx, "latest", endpoint, encodeQuery(&query), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.MediaItem{}
	}
	return items, nil
}

// GetGenres lists the genres visible to a user.
//
//	GET /Genres?userId={userId}
func (c *Client) GetGenres(ctx context.Context, userID string, query models.ItemQuery) (*models.GenresResult, error) {
	params := encodeQuery(&query)
	params.Set("userId", userID)

	var result models.GenresResult
	if err := c.getJSON(ctx, "genres", "/Genres", params, &result); err != nil {
		return nil, err
	}
	if result.Items == nil {
		result.Items = []models.Genre{}
	}
	return &result, nil
}

// GetItem fetches a single item as seen by a user.
//
//	GET /Users/{userId}/Items/{itemId}
func (c *Client) GetItem(ctx context.Context, userID, itemID string) (*models.MediaItem, error) {
	endpoint := "/Users/" + url.PathEscape(userID) + "/Items/" + url.PathEscape(itemID)

	var item models.MediaItem
	if err := c.getJSON(ctx, "item", endpoint, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Ping tests connectivity to the Jellyfin server.
//
//	GET /System/Ping
func (c *Client) Ping(ctx context.Context) error {
	start := time.Now()
	resp, err := c.doRequest(ctx, "ping", "/System/Ping", nil)
	if err == nil {
		_ = resp.Body.Close()
	}
	metrics.RecordUpstreamRequest("ping", time.Since(start), err)
	return err
}

// getJSON performs a GET and decodes a 200 response into out.
func (c *Client) getJSON(ctx context.Context, operation, endpoint string, params url.Values, out any) (err error) {
	start := time.Now()
	defer func() { metrics.RecordUpstreamRequest(operation, time.Since(start), err) }()

	resp, err := c.doRequest(ctx, operation, endpoint, params)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &decodeError{operation: operation, err: err}
	}
	return nil
}

// doRequest performs an authenticated GET and returns the response only for
// 2xx statuses; the caller must close the body.
func (c *Client) doRequest(ctx context.Context, operation, endpoint string, params url.Values) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &transportError{operation: operation, err: err}
		}
	}

	fullURL := c.baseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Emby-Token", c.apiKey)
	req.Header.Set("X-Emby-Client", c.clientName)
	req.Header.Set("X-Emby-Device-Name", c.clientName)
	req.Header.Set("X-Emby-Device-Id", c.deviceID)
	req.Header.Set("X-Emby-Client-Version", c.version)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &transportError{operation: operation, err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer func() { _ = resp.Body.Close() }()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return resp, nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
