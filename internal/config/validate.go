// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"net/url"

	"github.com/tomtom215/marquee/internal/validation"
)

// Validate checks struct constraints first, then the cross-field rules the
// tags cannot express.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := validateHTTPURL(c.Jellyfin.URL, "JELLYFIN_URL"); err != nil {
		return fmt.Errorf("JELLYFIN_URL is invalid: %w", err)
	}

	if c.Jellyfin.RequestsPerSecond > 0 && c.Jellyfin.Burst == 0 {
		return fmt.Errorf("JELLYFIN_BURST must be at least 1 when JELLYFIN_REQUESTS_PER_SECOND is set")
	}

	return nil
}

// validateHTTPURL accepts an http(s) base URL with an optional path prefix,
// for Jellyfin instances served under a sub-path.
func validateHTTPURL(rawURL, fieldName string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("%s should not contain query parameters or fragments", fieldName)
	}
	return nil
}
