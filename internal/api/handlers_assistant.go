// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package api

import (
	"net/http"

	"github.com/tomtom215/francilia/internal/models"
)

// AssistantMessage handles POST /api/v1/assistant/messages.
func (h *Handler) AssistantMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}
	if h.assistant == nil {
		respondError(w, http.StatusServiceUnavailable, codeUnavailable, "Assistant is disabled", nil)
		return
	}

	var req AssistantRequest
	if apiErr := decodeJSON(w, r, &req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	respondSuccess(w, http.StatusOK, h.assistant.Reply(r.Context(), req.Message), models.Metadata{})
}
