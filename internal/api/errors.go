// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/marquee/internal/home"
	"github.com/tomtom215/marquee/internal/jellyfin"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/validation"
)

// errorMapping maps a sentinel to its HTTP status and code. First match wins.
type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

var errorMappings = []errorMapping{
	{home.ErrNoBackdrop, http.StatusNotFound, ErrCodeNoBackdrop, "Item has no backdrop"},
	{home.ErrUnknownGenre, http.StatusNotFound, ErrCodeUnknownGenre, "Genre not found"},
	{jellyfin.ErrItemNotFound, http.StatusNotFound, ErrCodeNotFound, "Item not found"},
	{jellyfin.ErrCircuitOpen, http.StatusServiceUnavailable, ErrCodeCircuitOpen, "Jellyfin is temporarily unavailable"},
	{context.Canceled, statusClientClosedRequest, ErrCodeRequestCanceled, "Request canceled"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, ErrCodeUpstreamFailed, "Jellyfin did not respond in time"},
	{jellyfin.ErrFetchFailed, http.StatusBadGateway, ErrCodeUpstreamFailed, "Jellyfin request failed"},
}

// respondServiceError writes the envelope matching err. Unclassified errors
// become 500 and are logged; classified ones are logged at warn.
func (rw *ResponseWriter) respondServiceError(err error) {
	log := logging.Ctx(rw.r.Context())

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.status >= 500 {
				log.Warn().Err(err).Str("code", m.code).Msg("Request failed upstream")
			}
			rw.Error(m.status, m.code, m.message)
			return
		}
	}

	log.Error().Err(err).Msg("Unhandled request error")
	rw.Error(http.StatusInternalServerError, ErrCodeInternalError, "Internal server error")
}

// respondValidationError writes 400 with the validator's details.
func (rw *ResponseWriter) respondValidationError(verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
}
