// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package catalog

import (
	"strings"
	"time"
)

// Item providers.
const (
	ProviderTMDB  = "tmdb"
	ProviderMuvi  = "muvi"
	ProviderLocal = "local"
	ProviderSeed  = "seed"
)

// Item is one catalog entry. Items are treated as immutable once fetched.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genres      []string  `json:"genres"`
	Rating      float64   `json:"rating"`
	Year        int       `json:"year"`
	Popularity  float64   `json:"popularity,omitempty"`
	Duration    string    `json:"duration"`
	Thumbnail   string    `json:"thumbnail"`
	Backdrop    string    `json:"backdrop"`
	Director    string    `json:"director,omitempty"`
	Cast        []string  `json:"cast,omitempty"`
	Language    string    `json:"language,omitempty"`
	Country     string    `json:"country,omitempty"`
	Provider    string    `json:"provider"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasGenre reports whether the item carries genre, ignoring case.
func (i *Item) HasGenre(genre string) bool {
	genre = strings.TrimSpace(genre)
	for _, g := range i.Genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}

// Matches reports whether query occurs in the title, any genre or the
// description, ignoring case. An empty query matches everything.
func (i *Item) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(i.Title), q) ||
		strings.Contains(strings.ToLower(i.Description), q) {
		return true
	}
	for _, g := range i.Genres {
		if strings.Contains(strings.ToLower(g), q) {
			return true
		}
	}
	return false
}

// Result is one page of the catalog.
type Result struct {
	Items      []Item `json:"items"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	// Live is false when the remote provider could not be reached and the
	// page was built from the local store or the seed list.
	Live     bool   `json:"live"`
	Provider string `json:"provider"`
}
