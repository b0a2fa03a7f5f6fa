// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/francilia/internal/catalog"
	"github.com/tomtom215/francilia/internal/models"
)

// Catalog handles GET /api/v1/catalog.
// The page is cut from the merged remote and local list. metadata.live is
// false when the remote provider was unavailable.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	start := time.Now()
	result := h.source.FetchCatalog(r.Context(), getIntParam(r, "page", 1), getIntParam(r, "page_size", 0))
	respondResult(w, &result, start)
}

// SearchCatalog handles GET /api/v1/catalog/search?q=.
func (h *Handler) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	start := time.Now()
	req := SearchRequest{
		Query:    r.URL.Query().Get("q"),
		Page:     getIntParam(r, "page", 1),
		PageSize: getIntParam(r, "page_size", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	result := h.source.Search(r.Context(), req.Query, req.Page, req.PageSize)
	respondResult(w, &result, start)
}

// CatalogByGenre handles GET /api/v1/catalog/genres/{genre}.
func (h *Handler) CatalogByGenre(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	genre, err := url.PathUnescape(chi.URLParam(r, "genre"))
	if err != nil {
		respondError(w, http.StatusBadRequest, codeBadRequest, "Invalid genre", nil)
		return
	}

	start := time.Now()
	req := GenreRequest{
		Genre:    genre,
		Page:     getIntParam(r, "page", 1),
		PageSize: getIntParam(r, "page_size", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	result := h.source.ByGenre(r.Context(), req.Genre, req.Page, req.PageSize)
	respondResult(w, &result, start)
}

// CatalogItem handles GET /api/v1/catalog/items/{id}.
func (h *Handler) CatalogItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	item, err := h.source.Item(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, item, models.Metadata{})
}

// CatalogStats handles GET /api/v1/catalog/stats.
func (h *Handler) CatalogStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	start := time.Now()
	stats, err := h.library.Stats(r.Context())
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, stats, models.Metadata{QueryTimeMS: time.Since(start).Milliseconds()})
}

func respondResult(w http.ResponseWriter, result *catalog.Result, start time.Time) {
	respondSuccess(w, http.StatusOK, result.Items, models.Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		Live:        models.BoolPtr(result.Live),
		Provider:    result.Provider,
		Pagination: &models.PaginationInfo{
			Page:       result.Page,
			PageSize:   result.PageSize,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}
