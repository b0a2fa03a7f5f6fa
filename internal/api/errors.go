// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/francilia/internal/catalog"
)

// respondCatalogError maps catalog errors to HTTP responses.
func respondCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		respondError(w, http.StatusNotFound, codeNotFound, "Catalog item not found", nil)
	case errors.Is(err, catalog.ErrInvalidItem):
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
	case errors.Is(err, catalog.ErrNoRemote):
		respondError(w, http.StatusServiceUnavailable, codeRemote, "No remote catalog provider configured", nil)
	case errors.Is(err, catalog.ErrRemoteUnavailable):
		respondError(w, http.StatusBadGateway, codeRemote, "Remote catalog provider unavailable", err)
	default:
		respondError(w, http.StatusInternalServerError, codeStore, "Local catalog store unavailable", err)
	}
}
