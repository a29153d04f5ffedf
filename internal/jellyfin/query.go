// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package jellyfin

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/marquee/internal/models"
)

// encodeQuery renders an ItemQuery as Jellyfin query parameters.
// Tags and GenreIds are pipe-delimited on the wire; the other list
// parameters are comma-delimited.
func encodeQuery(q *models.ItemQuery) url.Values {
	v := url.Values{}

	setList(v, "Tags", q.Tags, "|")
	setList(v, "GenreIds", q.GenreIDs, "|")
	setList(v, "IncludeItemTypes", q.IncludeItemTypes, ",")
	setList(v, "Fields", q.Fields, ",")
	setList(v, "SortBy", q.SortBy, ",")
	setList(v, "EnableImageTypes", q.EnableImageTypes, ",")

	if q.Limit > 0 {
		v.Set("Limit", strconv.Itoa(q.Limit))
	}
	if q.ImageTypeLimit > 0 {
		v.Set("ImageTypeLimit", strconv.Itoa(q.ImageTypeLimit))
	}
	if q.Recursive {
		v.Set("Recursive", "true")
	}
	return v
}

func setList(v url.Values, key string, values []string, sep string) {
	if len(values) == 0 {
		return
	}
	v.Set(key, strings.Join(values, sep))
}
