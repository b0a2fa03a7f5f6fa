// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package catalog

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Muvi defaults that differ from the shared ones.
const (
	muviDefaultRating = 7.5
	muviDefaultGenre  = "Drama"
	maxMuviCast       = 5
)

// muviEnvelope lists the keys a Muvi deployment may nest its item list under.
type muviEnvelope struct {
	Data    json.RawMessage `json:"data"`
	Results json.RawMessage `json:"results"`
	Content json.RawMessage `json:"content"`
	Movies  json.RawMessage `json:"movies"`
}

type muviItem struct {
	ID        flexString `json:"id"`
	MongoID   flexString `json:"_id"`
	ContentID flexString `json:"content_id"`

	Title        string `json:"title"`
	Name         string `json:"name"`
	ContentTitle string `json:"content_title"`

	Description        string `json:"description"`
	Synopsis           string `json:"synopsis"`
	Overview           string `json:"overview"`
	ContentDescription string `json:"content_description"`

	Genre      stringList `json:"genre"`
	Genres     stringList `json:"genres"`
	Category   stringList `json:"category"`
	Categories stringList `json:"categories"`

	Year           flexNumber `json:"year"`
	ReleaseYear    flexNumber `json:"release_year"`
	ProductionYear flexNumber `json:"production_year"`
	ReleaseDate    string     `json:"release_date"`
	CreatedAt      string     `json:"created_at"`

	Rating      flexNumber `json:"rating"`
	IMDBRating  flexNumber `json:"imdb_rating"`
	VoteAverage flexNumber `json:"vote_average"`

	Duration        flexString `json:"duration"`
	Runtime         flexNumber `json:"runtime"`
	DurationMinutes flexNumber `json:"duration_minutes"`

	Thumbnail  string `json:"thumbnail"`
	PosterURL  string `json:"poster_url"`
	Image      string `json:"image"`
	PosterPath string `json:"poster_path"`

	Backdrop        string `json:"backdrop"`
	BackdropURL     string `json:"backdrop_url"`
	BackgroundImage string `json:"background_image"`
	BannerImage     string `json:"banner_image"`

	Cast   stringList `json:"cast"`
	Actors stringList `json:"actors"`

	Director  flexString `json:"director"`
	Directors stringList `json:"directors"`
	Language  string     `json:"language"`
	Country   string     `json:"country"`

	Popularity flexNumber `json:"popularity"`
	ViewCount  flexNumber `json:"view_count"`
}

// DecodeMuvi decodes a Muvi content listing. The list may be a bare array or
// nested under data, results, content or movies. A single object is treated
// as a one-item list.
func DecodeMuvi(body []byte, now time.Time) ([]Item, error) {
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		return decodeMuviList(body, now)
	}

	var env muviEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: muvi: %v", ErrDecode, err)
	}
	for _, raw := range []json.RawMessage{env.Data, env.Results, env.Content, env.Movies} {
		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '[' {
			return decodeMuviList(raw, now)
		}
	}

	var single muviItem
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, fmt.Errorf("%w: muvi: %v", ErrDecode, err)
	}
	if single.identity() == "" && single.title() == "" {
		return []Item{}, nil
	}
	return []Item{single.toItem(now)}, nil
}

func decodeMuviList(raw []byte, now time.Time) ([]Item, error) {
	var list []muviItem
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: muvi: %v", ErrDecode, err)
	}
	items := make([]Item, 0, len(list))
	for i := range list {
		items = append(items, list[i].toItem(now))
	}
	return items, nil
}

func (m *muviItem) identity() string {
	return firstNonEmpty(string(m.ID), string(m.MongoID), string(m.ContentID))
}

func (m *muviItem) title() string {
	return firstNonEmpty(m.Title, m.Name, m.ContentTitle)
}

func (m *muviItem) toItem(now time.Time) Item {
	year := now.Year()
	released := ""
	if y, ok := m.Year.firstInt(m.ReleaseYear, m.ProductionYear); ok && y > 0 {
		year = y
		released = strconv.Itoa(y)
	} else if date := firstNonEmpty(m.ReleaseDate, m.CreatedAt); date != "" {
		released = date
		if y, ok := yearFromDate(date); ok {
			year = y
		}
	}

	id := m.identity()
	if id == "" {
		id = derivedID(ProviderMuvi, m.title(), released)
	}

	genres := firstList(m.Genre, m.Genres, m.Category, m.Categories)

	rating := muviDefaultRating
	if r, ok := m.Rating.first(m.IMDBRating, m.VoteAverage); ok {
		rating = clampRating(r)
	}

	duration := string(m.Duration)
	if duration == "" {
		if mins, ok := m.Runtime.firstInt(m.DurationMinutes); ok {
			duration = formatRuntime(mins)
		}
	} else if mins, err := strconv.Atoi(duration); err == nil {
		duration = formatRuntime(mins)
	}
	if duration == "" {
		duration = DefaultDuration
	}

	thumbnail := firstNonEmpty(m.Thumbnail, m.PosterURL, m.Image, m.PosterPath)
	if thumbnail == "" {
		thumbnail = placeholderImage(id, false)
	}
	backdrop := firstNonEmpty(m.Backdrop, m.BackdropURL, m.BackgroundImage, m.BannerImage)
	if backdrop == "" {
		backdrop = placeholderImage(id, true)
	}

	cast := firstList(m.Cast, m.Actors)
	if len(cast) > maxMuviCast {
		cast = cast[:maxMuviCast]
	}

	director := string(m.Director)
	if director == "" && len(m.Directors) > 0 {
		director = strings.Join(m.Directors, ", ")
	}

	var popularity float64
	if p, ok := m.Popularity.first(m.ViewCount); ok && p > 0 {
		popularity = p
	}

	return Item{
		ID:          id,
		Title:       firstNonEmpty(m.title(), DefaultTitle),
		Description: firstNonEmpty(m.Description, m.Synopsis, m.Overview, m.ContentDescription, DefaultDescription),
		Genres:      cleanGenres(genres, muviDefaultGenre),
		Rating:      rating,
		Year:        year,
		Popularity:  popularity,
		Duration:    duration,
		Thumbnail:   thumbnail,
		Backdrop:    backdrop,
		Director:    firstNonEmpty(director, DefaultDirector),
		Cast:        cast,
		Language:    firstNonEmpty(m.Language, DefaultLanguage),
		Country:     firstNonEmpty(m.Country, DefaultCountry),
		Provider:    ProviderMuvi,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func firstList(lists ...stringList) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*f = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
	case b[0] == '[' || b[0] == '{' || bytes.Equal(b, []byte("true")) || bytes.Equal(b, []byte("false")):
		*f = ""
	default:
		*f = flexString(string(b))
	}
	return nil
}

// flexNumber accepts a JSON number or a numeric string. Set is false when the
// field was absent, null or not numeric.
type flexNumber struct {
	Value float64
	Set   bool
}

func (f *flexNumber) UnmarshalJSON(b []byte) error {
	*f = flexNumber{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	*f = flexNumber{Value: v, Set: true}
	return nil
}

// first returns the first set value among f and alts.
func (f flexNumber) first(alts ...flexNumber) (float64, bool) {
	if f.Set {
		return f.Value, true
	}
	for _, a := range alts {
		if a.Set {
			return a.Value, true
		}
	}
	return 0, false
}

func (f flexNumber) firstInt(alts ...flexNumber) (int, bool) {
	v, ok := f.first(alts...)
	return int(v), ok
}

// stringList accepts an array of strings or {name|title} objects, or a
// comma separated string.
type stringList []string

type namedEntry struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	ActorName string `json:"actor_name"`
}

func (l *stringList) UnmarshalJSON(b []byte) error {
	*l = nil
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = splitComma(s)
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		out := make([]string, 0, len(raw))
		for _, r := range raw {
			if v := listEntry(r); v != "" {
				out = append(out, v)
			}
		}
		*l = out
	}
	return nil
}

func listEntry(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	case '{':
		var e namedEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return ""
		}
		return firstNonEmpty(e.Name, e.Title, e.ActorName, UnknownGenre)
	default:
		return ""
	}
}

func splitComma(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
