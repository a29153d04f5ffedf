// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package jellyfin

import (
	"net/url"
	"strconv"

	"github.com/tomtom215/marquee/internal/models"
)

// ImageURL builds a scaled image URL:
//
//	{base}/Items/{id}/Images/{type}[/{index}]?tag=...&maxWidth=...
//
// The API key is never embedded; Jellyfin serves tagged images without it.
func (c *Client) ImageURL(itemID string, opts models.ImageOptions) string {
	imageType := opts.Type
	if imageType == "" {
		imageType = models.ImageTypePrimary
	}

	path := c.baseURL + "/Items/" + url.PathEscape(itemID) + "/Images/" + url.PathEscape(string(imageType))
	if opts.Index != nil {
		path += "/" + strconv.Itoa(*opts.Index)
	}

	v := url.Values{}
	if opts.Tag != "" {
		v.Set("tag", opts.Tag)
	}
	setPositive(v, "maxWidth", opts.MaxWidth)
	setPositive(v, "width", opts.Width)
	setPositive(v, "maxHeight", opts.MaxHeight)
	setPositive(v, "height", opts.Height)
	setPositive(v, "fillWidth", opts.FillWidth)
	setPositive(v, "fillHeight", opts.FillHeight)
	setPositive(v, "quality", opts.Quality)

	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

func setPositive(v url.Values, key string, n int) {
	if n > 0 {
		v.Set(key, strconv.Itoa(n))
	}
}
