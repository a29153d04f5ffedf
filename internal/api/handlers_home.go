// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/marquee/internal/backdrop"
	"github.com/tomtom215/marquee/internal/carousel"
	"github.com/tomtom215/marquee/internal/home"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

type carouselResponse struct {
	Carousel carousel.Carousel `json:"carousel"`
	Errors   home.BranchErrors `json:"errors"`
}

type rowsResponse struct {
	Rows   []models.DisplayGroup `json:"rows"`
	Errors home.BranchErrors     `json:"errors"`
}

type genreItemsResponse struct {
	Group *models.DisplayGroup `json:"group"`
}

type backdropResponse struct {
	ItemID string `json:"item_id"`
	URL    string `json:"url"`
	Index  string `json:"index"`
}

// backdropParams are the query parameters of the backdrop endpoint.
type backdropParams struct {
	Index    string `validate:"omitempty,index_policy"`
	MaxWidth int    `validate:"gte=0,lte=7680"`
}

// Home returns the full home screen. Failed branches are reported in errors
// and flagged as degraded.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	screen := h.home.Home(r.Context(), chi.URLParam(r, "userID"))
	NewResponseWriter(w, r).Degraded(screen, !screen.Errors.Empty())
}

// Carousel returns only the carousel.
func (h *Handler) Carousel(w http.ResponseWriter, r *http.Request) {
	b := h.home.Carousel(r.Context(), chi.URLParam(r, "userID"))

	resp := carouselResponse{Carousel: b.Carousel}
	resp.Errors.FeaturedPool = errString(b.FeaturedErr)
	resp.Errors.LatestPool = errString(b.LatestErr)

	NewResponseWriter(w, r).Degraded(resp, !resp.Errors.Empty())
}

// Rows returns featured and genre rows. Genre rows are lazy: they carry a
// query and are realized through GenreItems.
func (h *Handler) Rows(w http.ResponseWriter, r *http.Request) {
	sel := h.home.Rows(r.Context(), chi.URLParam(r, "userID"))

	resp := rowsResponse{Rows: sel.Groups}
	resp.Errors.FeaturedRows = errString(sel.FeaturedErr)
	resp.Errors.GenreRows = errString(sel.GenreErr)

	NewResponseWriter(w, r).Degraded(resp, !resp.Errors.Empty())
}

// GenreItems realizes one lazy genre row.
func (h *Handler) GenreItems(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	group, items, err := h.home.GenreRow(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "genreID"))
	if err != nil {
		rw.respondServiceError(err)
		return
	}

	group.Items = items
	rw.Success(genreItemsResponse{Group: group})
}

// Backdrop resolves the backdrop URL of one item.
func (h *Handler) Backdrop(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	q := r.URL.Query()

	params := backdropParams{Index: q.Get("index"), MaxWidth: h.backdropMaxWidth}
	if raw := q.Get("maxWidth"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			rw.BadRequest("maxWidth must be an integer")
			return
		}
		params.MaxWidth = n
	}
	if verr := validation.ValidateStruct(&params); verr != nil {
		rw.respondValidationError(verr)
		return
	}

	policy, err := backdrop.ParseIndexPolicy(params.Index)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	itemID := chi.URLParam(r, "itemID")
	u, err := h.home.BackdropFor(r.Context(), chi.URLParam(r, "userID"), itemID, policy, params.MaxWidth)
	if err != nil {
		rw.respondServiceError(err)
		return
	}

	rw.Success(backdropResponse{ItemID: itemID, URL: u, Index: policy.String()})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
