// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [{"id": "550", "title": "Fight Club", ...}],
//	  "metadata": {
//	    "timestamp": "2026-10-19T12:00:00Z",
//	    "query_time_ms": 45,
//	    "live": true,
//	    "provider": "tmdb",
//	    "pagination": {"page": 1, "page_size": 20, "total": 57, "total_pages": 3}
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "page_size must be at most 100",
//	    "details": {"field": "page_size"}
//	  },
//	  "metadata": {"timestamp": "2026-10-19T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and catalog provenance.
//
// Live is set on catalog responses only: true when the remote provider answered,
// false when the list was served from the local store or seed list.
type Metadata struct {
	Timestamp   time.Time       `json:"timestamp"`
	QueryTimeMS int64           `json:"query_time_ms,omitempty"`
	Cached      bool            `json:"cached,omitempty"`
	Live        *bool           `json:"live,omitempty"`
	Provider    string          `json:"provider,omitempty"`
	Pagination  *PaginationInfo `json:"pagination,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - NOT_FOUND: Resource doesn't exist
//   - METHOD_NOT_ALLOWED: Wrong HTTP method
//   - STORE_ERROR: Local catalog store failure
//   - REMOTE_ERROR: Remote provider failure on an operation that does not fall back
//   - RATE_LIMIT_EXCEEDED: Too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// PaginationInfo contains page-based pagination metadata.
// Page boundaries are computed over the merged, deduplicated catalog.
type PaginationInfo struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// HasMore reports whether pages exist after the current one.
func (p PaginationInfo) HasMore() bool {
	return p.Page < p.TotalPages
}

// BoolPtr returns a pointer to b, for optional metadata flags.
func BoolPtr(b bool) *bool {
	return &b
}
