// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/francilia/internal/models"
)

// readyTimeout bounds the store ping of the readiness probe.
const readyTimeout = 2 * time.Second

// HealthLive handles GET /api/v1/health/live.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}
	respondSuccess(w, http.StatusOK, h.health("alive", nil), models.Metadata{})
}

// HealthReady handles GET /api/v1/health/ready. The service is ready when
// its local store answers; the remote provider is optional.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.source.Ready(ctx); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   models.StatusError,
			Data:     h.health("not_ready", err),
			Metadata: models.Metadata{Timestamp: time.Now().UTC()},
			Error:    &models.APIError{Code: codeUnavailable, Message: "Local catalog store unavailable"},
		})
		return
	}
	respondSuccess(w, http.StatusOK, h.health("ready", nil), models.Metadata{})
}

func (h *Handler) health(status string, err error) HealthResponse {
	resp := HealthResponse{
		Status:        status,
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		RemoteEnabled: h.source.HasRemote(),
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
