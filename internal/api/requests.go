// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package api

import (
	"time"

	"github.com/tomtom215/francilia/internal/catalog"
	"github.com/tomtom215/francilia/internal/recommend"
)

// SearchRequest holds the query parameters of the search endpoint.
type SearchRequest struct {
	Query    string `json:"q" validate:"required,notblank,max=200"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// GenreRequest holds the parameters of the genre listing endpoint.
type GenreRequest struct {
	Genre    string `json:"genre" validate:"genre"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// ItemRequest is the body of the create and update endpoints. On update,
// omitted fields keep their current values.
type ItemRequest struct {
	Title       string   `json:"title" validate:"omitempty,notblank,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	Genres      []string `json:"genres" validate:"max=10,dive,genre"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=10"`
	Year        int      `json:"year" validate:"omitempty,gte=1888,lte=2100"`
	Popularity  float64  `json:"popularity" validate:"gte=0"`
	Duration    string   `json:"duration" validate:"max=32"`
	Thumbnail   string   `json:"thumbnail" validate:"omitempty,url"`
	Backdrop    string   `json:"backdrop" validate:"omitempty,url"`
	Director    string   `json:"director" validate:"max=200"`
	Cast        []string `json:"cast" validate:"max=50,dive,notblank"`
	Language    string   `json:"language" validate:"max=64"`
	Country     string   `json:"country" validate:"max=64"`
}

func (r *ItemRequest) toInput() catalog.ItemInput {
	return catalog.ItemInput{
		Title:       r.Title,
		Description: r.Description,
		Genres:      r.Genres,
		Rating:      r.Rating,
		Year:        r.Year,
		Popularity:  r.Popularity,
		Duration:    r.Duration,
		Thumbnail:   r.Thumbnail,
		Backdrop:    r.Backdrop,
		Director:    r.Director,
		Cast:        r.Cast,
		Language:    r.Language,
		Country:     r.Country,
	}
}

// BulkDeleteRequest is the body of the bulk delete endpoint.
type BulkDeleteRequest struct {
	IDs []string `json:"item_ids" validate:"required,min=1,max=500,dive,notblank"`
}

// ImportRequest holds the query parameters of the import endpoint.
type ImportRequest struct {
	Count int `json:"count" validate:"gte=0,lte=500"`
}

// HistoryEntryRequest is one viewing history entry.
type HistoryEntryRequest struct {
	ItemID    string    `json:"item_id" validate:"required,notblank"`
	Genres    []string  `json:"genres" validate:"max=10,dive,genre"`
	Progress  *float64  `json:"progress" validate:"omitempty,gte=0,lte=1"`
	WatchedAt time.Time `json:"watched_at"`
}

// RecommendationRequest is the body of the recommendation endpoints.
type RecommendationRequest struct {
	History     []HistoryEntryRequest `json:"history" validate:"max=1000,dive"`
	Preferences recommend.Preferences `json:"preferences"`
}

func (r *RecommendationRequest) history() []recommend.HistoryEntry {
	out := make([]recommend.HistoryEntry, len(r.History))
	for i, h := range r.History {
		out[i] = recommend.HistoryEntry{
			ItemID:    h.ItemID,
			Genres:    h.Genres,
			Progress:  h.Progress,
			WatchedAt: h.WatchedAt,
		}
	}
	return out
}

// AssistantRequest is the body of the assistant endpoint.
type AssistantRequest struct {
	Message string `json:"message" validate:"required,notblank,max=2000"`
}

// BulkDeleteResponse reports a bulk delete.
type BulkDeleteResponse struct {
	Deleted int `json:"deleted"`
}

// ImportResponse reports an import.
type ImportResponse struct {
	Fetched int            `json:"fetched"`
	Added   int            `json:"added"`
	Items   []catalog.Item `json:"items"`
}

// HealthResponse is the body of the health endpoints.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	RemoteEnabled bool    `json:"remote_enabled"`
	Error         string  `json:"error,omitempty"`
}
