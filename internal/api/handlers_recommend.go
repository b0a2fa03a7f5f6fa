// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/francilia/internal/models"
)

// Recommendations handles POST /api/v1/recommendations.
// Candidates come from the merged catalog; metadata.live reports whether it
// was served live.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	req, ok := decodeRecommendationRequest(w, r)
	if !ok {
		return
	}

	start := time.Now()
	items, live := h.source.Catalog(r.Context())
	recs := h.engine.Recommend(items, req.history(), req.Preferences)

	respondSuccess(w, http.StatusOK, recs, models.Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		Live:        models.BoolPtr(live),
	})
}

// Behavior handles POST /api/v1/recommendations/behavior.
func (h *Handler) Behavior(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	req, ok := decodeRecommendationRequest(w, r)
	if !ok {
		return
	}

	start := time.Now()
	items, live := h.source.Catalog(r.Context())
	behavior := h.engine.AnalyzeBehavior(items, req.history())

	respondSuccess(w, http.StatusOK, behavior, models.Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		Live:        models.BoolPtr(live),
	})
}

// decodeRecommendationRequest accepts an empty body as an empty history.
func decodeRecommendationRequest(w http.ResponseWriter, r *http.Request) (*RecommendationRequest, bool) {
	var req RecommendationRequest
	if r.ContentLength != 0 {
		if apiErr := decodeJSON(w, r, &req); apiErr != nil {
			respondAPIError(w, http.StatusBadRequest, apiErr, nil)
			return nil, false
		}
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return nil, false
	}
	return &req, true
}
