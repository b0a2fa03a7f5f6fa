// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/francilia/internal/logging"
	"github.com/tomtom215/francilia/internal/models"
)

// CreateItem handles POST /api/v1/catalog/items.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	var req ItemRequest
	if apiErr := decodeJSON(w, r, &req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	item, err := h.library.Create(r.Context(), req.toInput())
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, item, models.Metadata{})
}

// UpdateItem handles PUT /api/v1/catalog/items/{id}.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	var req ItemRequest
	if apiErr := decodeJSON(w, r, &req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	item, err := h.library.Update(r.Context(), chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, item, models.Metadata{})
}

// DeleteItem handles DELETE /api/v1/catalog/items/{id}.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	if err := h.library.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondCatalogError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, BulkDeleteResponse{Deleted: 1}, models.Metadata{})
}

// BulkDeleteItems handles POST /api/v1/catalog/items/bulk-delete.
func (h *Handler) BulkDeleteItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	var req BulkDeleteRequest
	if apiErr := decodeJSON(w, r, &req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	n, err := h.library.BulkDelete(r.Context(), req.IDs)
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, BulkDeleteResponse{Deleted: n}, models.Metadata{})
}

// ImportCatalog handles POST /api/v1/catalog/import?count=.
// Unlike catalog reads, an import reports remote failures.
func (h *Handler) ImportCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	req := ImportRequest{Count: getIntParam(r, "count", 0)}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	res, err := h.library.Import(r.Context(), req.Count)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Catalog import failed")
		respondCatalogError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, ImportResponse{
		Fetched: len(res.Items),
		Added:   res.Added,
		Items:   res.Items,
	}, models.Metadata{})
}
