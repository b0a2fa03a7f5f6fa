// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package catalog

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// TMDBImageBase is the TMDB image CDN root.
const TMDBImageBase = "https://image.tmdb.org/t/p"

// tmdbGenres maps TMDB genre IDs to names.
var tmdbGenres = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// TMDBGenreName returns the name for a TMDB genre ID, or "Unknown".
func TMDBGenreName(id int) string {
	if name, ok := tmdbGenres[id]; ok {
		return name
	}
	return UnknownGenre
}

type tmdbPage struct {
	Page         int         `json:"page"`
	Results      []tmdbMovie `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

type tmdbGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type tmdbCountry struct {
	Name string `json:"name"`
}

type tmdbMovie struct {
	ID                  *int64        `json:"id"`
	Title               string        `json:"title"`
	Name                string        `json:"name"`
	Overview            string        `json:"overview"`
	ReleaseDate         string        `json:"release_date"`
	FirstAirDate        string        `json:"first_air_date"`
	GenreIDs            []int         `json:"genre_ids"`
	Genres              []tmdbGenre   `json:"genres"`
	VoteAverage         float64       `json:"vote_average"`
	Popularity          float64       `json:"popularity"`
	PosterPath          string        `json:"poster_path"`
	BackdropPath        string        `json:"backdrop_path"`
	Runtime             int           `json:"runtime"`
	OriginalLanguage    string        `json:"original_language"`
	ProductionCountries []tmdbCountry `json:"production_countries"`
}

// DecodeTMDB decodes a TMDB list response (movie/popular, discover, search).
func DecodeTMDB(body []byte, now time.Time) ([]Item, error) {
	var page tmdbPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: tmdb: %v", ErrDecode, err)
	}

	items := make([]Item, 0, len(page.Results))
	for i := range page.Results {
		items = append(items, page.Results[i].toItem(now))
	}
	return items, nil
}

func (m *tmdbMovie) toItem(now time.Time) Item {
	var id string
	if m.ID != nil {
		id = strconv.FormatInt(*m.ID, 10)
	} else {
		id = derivedID(ProviderTMDB, firstNonEmpty(m.Title, m.Name), firstNonEmpty(m.ReleaseDate, m.FirstAirDate))
	}

	year := now.Year()
	if y, ok := yearFromDate(firstNonEmpty(m.ReleaseDate, m.FirstAirDate)); ok {
		year = y
	}

	var genres []string
	switch {
	case len(m.GenreIDs) > 0:
		genres = make([]string, 0, len(m.GenreIDs))
		for _, gid := range m.GenreIDs {
			genres = append(genres, TMDBGenreName(gid))
		}
	case len(m.Genres) > 0:
		genres = make([]string, 0, len(m.Genres))
		for _, g := range m.Genres {
			genres = append(genres, g.Name)
		}
	}

	thumbnail := placeholderImage(id, false)
	if m.PosterPath != "" {
		thumbnail = TMDBImageBase + "/w500" + m.PosterPath
	}
	backdrop := placeholderImage(id, true)
	if m.BackdropPath != "" {
		backdrop = TMDBImageBase + "/w1280" + m.BackdropPath
	}

	country := DefaultCountry
	if len(m.ProductionCountries) > 0 && m.ProductionCountries[0].Name != "" {
		country = m.ProductionCountries[0].Name
	}

	popularity := m.Popularity
	if popularity < 0 {
		popularity = 0
	}

	return Item{
		ID:          id,
		Title:       firstNonEmpty(m.Title, m.Name, DefaultTitle),
		Description: firstNonEmpty(m.Overview, DefaultDescription),
		Genres:      cleanGenres(genres, UnknownGenre),
		Rating:      clampRating(m.VoteAverage),
		Year:        year,
		Popularity:  popularity,
		Duration:    formatRuntime(m.Runtime),
		Thumbnail:   thumbnail,
		Backdrop:    backdrop,
		Director:    DefaultDirector,
		Language:    firstNonEmpty(m.OriginalLanguage, "en"),
		Country:     country,
		Provider:    ProviderTMDB,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func clampRating(r float64) float64 {
	switch {
	case r < 0:
		return 0
	case r > 10:
		return 10
	default:
		return r
	}
}
