// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package jellyfin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrFetchFailed wraps every failed upstream request.
	ErrFetchFailed = errors.New("jellyfin fetch failed")

	// ErrItemNotFound is returned when Jellyfin answers 404 for an item.
	ErrItemNotFound = errors.New("jellyfin item not found")

	// ErrCircuitOpen is returned while the circuit breaker rejects calls.
	ErrCircuitOpen = errors.New("jellyfin circuit breaker open")
)

// StatusError is a non-2xx response from Jellyfin.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("jellyfin %s returned status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("jellyfin %s returned status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// Unwrap lets callers match the sentinel that classifies the status.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrItemNotFound
	}
	return ErrFetchFailed
}

// ErrorType is the metric label for this error.
func (e *StatusError) ErrorType() string {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return "not_found"
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return "unauthorized"
	case e.StatusCode >= 500:
		return "status_5xx"
	default:
		return "status_4xx"
	}
}

// transportError covers failures before a status line was read.
type transportError struct {
	operation string
	err       error
}

func (e *transportError) Error() string {
	return fmt.Sprintf("jellyfin %s request failed: %v", e.operation, e.err)
}

func (e *transportError) Unwrap() []error {
	return []error{ErrFetchFailed, e.err}
}

func (e *transportError) ErrorType() string {
	switch {
	case errors.Is(e.err, context.Canceled):
		return "canceled"
	case errors.Is(e.err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "transport"
	}
}

// decodeError is a 2xx response whose body could not be decoded.
type decodeError struct {
	operation string
	err       error
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("failed to decode jellyfin %s: %v", e.operation, e.err)
}

func (e *decodeError) Unwrap() []error {
	return []error{ErrFetchFailed, e.err}
}

func (e *decodeError) ErrorType() string { return "decode" }
