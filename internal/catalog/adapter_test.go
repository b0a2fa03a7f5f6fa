// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package catalog

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDecodeTMDB(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"page": 1,
		"results": [
			{
				"id": 550,
				"title": "Fight Club",
				"overview": "An insomniac office worker...",
				"release_date": "1999-10-15",
				"genre_ids": [18, 53, 999999],
				"vote_average": 8.4,
				"popularity": 61.4,
				"poster_path": "/poster.jpg",
				"backdrop_path": "/backdrop.jpg",
				"runtime": 139,
				"original_language": "en"
			},
			{
				"id": 1399,
				"name": "Game of Thrones",
				"first_air_date": "2011-04-17"
			},
			{}
		],
		"total_pages": 500
	}`)

	items, err := DecodeTMDB(body, fixedNow)
	if err != nil {
		t.Fatalf("DecodeTMDB() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}

	full := items[0]
	if full.ID != "550" || full.Title != "Fight Club" || full.Year != 1999 {
		t.Errorf("full item = %+v", full)
	}
	if want := []string{"Drama", "Thriller", "Unknown"}; !slices.Equal(full.Genres, want) {
		t.Errorf("Genres = %v, want %v", full.Genres, want)
	}
	if full.Thumbnail != "https://image.tmdb.org/t/p/w500/poster.jpg" {
		t.Errorf("Thumbnail = %q", full.Thumbnail)
	}
	if full.Backdrop != "https://image.tmdb.org/t/p/w1280/backdrop.jpg" {
		t.Errorf("Backdrop = %q", full.Backdrop)
	}
	if full.Duration != "2h 19m" {
		t.Errorf("Duration = %q, want 2h 19m", full.Duration)
	}
	if full.Rating != 8.4 || full.Popularity != 61.4 {
		t.Errorf("Rating/Popularity = %v/%v", full.Rating, full.Popularity)
	}
	if full.Provider != ProviderTMDB || !full.CreatedAt.Equal(fixedNow) {
		t.Errorf("Provider/CreatedAt = %q/%v", full.Provider, full.CreatedAt)
	}

	tv := items[1]
	if tv.Title != "Game of Thrones" || tv.Year != 2011 {
		t.Errorf("tv item title/year = %q/%d", tv.Title, tv.Year)
	}

	empty := items[2]
	if _, err := uuid.Parse(empty.ID); err != nil {
		t.Errorf("missing id should become a UUID, got %q", empty.ID)
	}
	again, _ := DecodeTMDB(body, fixedNow.AddDate(1, 0, 0))
	if again[2].ID != empty.ID {
		t.Errorf("derived id changed between decodes: %q then %q", empty.ID, again[2].ID)
	}
	if empty.Title != DefaultTitle || empty.Description != DefaultDescription {
		t.Errorf("defaults not applied: %+v", empty)
	}
	if empty.Year != fixedNow.Year() {
		t.Errorf("Year = %d, want %d", empty.Year, fixedNow.Year())
	}
	if !slices.Equal(empty.Genres, []string{UnknownGenre}) {
		t.Errorf("Genres = %v, want [Unknown]", empty.Genres)
	}
	if empty.Duration != DefaultDuration {
		t.Errorf("Duration = %q, want %q", empty.Duration, DefaultDuration)
	}
	if !strings.HasPrefix(empty.Thumbnail, "https://images.pexels.com/") {
		t.Errorf("Thumbnail = %q, want placeholder", empty.Thumbnail)
	}
}

func TestDecodeTMDB_GenreObjects(t *testing.T) {
	t.Parallel()

	items, err := DecodeTMDB([]byte(`{"results":[{"id":1,"genres":[{"id":18,"name":"Drama"},{"id":35,"name":"Comedy"}]}]}`), fixedNow)
	if err != nil {
		t.Fatalf("DecodeTMDB() error = %v", err)
	}
	if want := []string{"Drama", "Comedy"}; !slices.Equal(items[0].Genres, want) {
		t.Errorf("Genres = %v, want %v", items[0].Genres, want)
	}
}

func TestDecodeTMDB_Malformed(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"not json", "<html>502</html>", `{"results": "nope"}`} {
		if _, err := DecodeTMDB([]byte(body), fixedNow); !errors.Is(err, ErrDecode) {
			t.Errorf("DecodeTMDB(%q) error = %v, want ErrDecode", body, err)
		}
	}
}

func TestDecodeTMDB_EmptyResults(t *testing.T) {
	t.Parallel()

	items, err := DecodeTMDB([]byte(`{"page":1,"results":[]}`), fixedNow)
	if err != nil || len(items) != 0 {
		t.Fatalf("DecodeTMDB() = %v, %v; want empty list", items, err)
	}
}

func TestDecodeMuvi_Envelopes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want []string
	}{
		{"bare array", `[{"id":"a"},{"id":"b"}]`, []string{"a", "b"}},
		{"data", `{"data":[{"id":"a"}],"total":1}`, []string{"a"}},
		{"results", `{"results":[{"id":"r"}]}`, []string{"r"}},
		{"content", `{"content":[{"id":"c"}]}`, []string{"c"}},
		{"movies", `{"movies":[{"id":"m"}]}`, []string{"m"}},
		{"data object falls through to list key", `{"data":{"x":1},"movies":[{"id":"m"}]}`, []string{"m"}},
		{"single object", `{"id":"solo","title":"Solo"}`, []string{"solo"}},
		{"empty object", `{}`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			items, err := DecodeMuvi([]byte(tt.body), fixedNow)
			if err != nil {
				t.Fatalf("DecodeMuvi() error = %v", err)
			}
			if got := ids(items); !slices.Equal(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeMuvi_FieldAlternatives(t *testing.T) {
	t.Parallel()

	body := []byte(`{"data":[{
		"_id": "64b1",
		"content_title": "Lagos Dreams",
		"synopsis": "A young entrepreneur in Lagos.",
		"genres": "Drama, Nollywood ,",
		"imdb_rating": "8.1",
		"release_date": "2019-05-01",
		"poster_url": "https://cdn.example/p.jpg",
		"view_count": 120,
		"runtime": 95,
		"actors": [{"name":"A"},"B","C","D","E","F"]
	}]}`)

	items, err := DecodeMuvi(body, fixedNow)
	if err != nil {
		t.Fatalf("DecodeMuvi() error = %v", err)
	}
	it := items[0]
	if it.ID != "64b1" || it.Title != "Lagos Dreams" || it.Description != "A young entrepreneur in Lagos." {
		t.Errorf("identity fields = %+v", it)
	}
	if want := []string{"Drama", "Nollywood"}; !slices.Equal(it.Genres, want) {
		t.Errorf("Genres = %v, want %v", it.Genres, want)
	}
	if it.Rating != 8.1 {
		t.Errorf("Rating = %v, want 8.1", it.Rating)
	}
	if it.Year != 2019 {
		t.Errorf("Year = %d, want 2019", it.Year)
	}
	if it.Thumbnail != "https://cdn.example/p.jpg" {
		t.Errorf("Thumbnail = %q", it.Thumbnail)
	}
	if it.Popularity != 120 {
		t.Errorf("Popularity = %v, want 120", it.Popularity)
	}
	if it.Duration != "1h 35m" {
		t.Errorf("Duration = %q, want 1h 35m", it.Duration)
	}
	if len(it.Cast) != 5 || it.Cast[0] != "A" {
		t.Errorf("Cast = %v, want 5 names starting with A", it.Cast)
	}
	if it.Provider != ProviderMuvi {
		t.Errorf("Provider = %q", it.Provider)
	}
}

func TestDecodeMuvi_Defaults(t *testing.T) {
	t.Parallel()

	items, err := DecodeMuvi([]byte(`[{"content_id": 42, "rating": "n/a", "genre": [{"title":"Horror"}, {}]}, {"name": "No ID"}]`), fixedNow)
	if err != nil {
		t.Fatalf("DecodeMuvi() error = %v", err)
	}

	first := items[0]
	if first.ID != "42" {
		t.Errorf("numeric content_id = %q, want 42", first.ID)
	}
	if first.Rating != 7.5 {
		t.Errorf("non-numeric rating = %v, want default 7.5", first.Rating)
	}
	if want := []string{"Horror", "Unknown"}; !slices.Equal(first.Genres, want) {
		t.Errorf("Genres = %v, want %v", first.Genres, want)
	}
	if first.Year != fixedNow.Year() || first.Title != DefaultTitle {
		t.Errorf("Year/Title = %d/%q", first.Year, first.Title)
	}
	if first.Director != DefaultDirector || first.Language != DefaultLanguage || first.Country != DefaultCountry {
		t.Errorf("director/language/country defaults = %q/%q/%q", first.Director, first.Language, first.Country)
	}

	second := items[1]
	if _, err := uuid.Parse(second.ID); err != nil {
		t.Errorf("missing id should become a UUID, got %q", second.ID)
	}
	if !slices.Equal(second.Genres, []string{"Drama"}) {
		t.Errorf("Genres = %v, want [Drama]", second.Genres)
	}
}

func TestDecodeMuvi_DerivedIDs(t *testing.T) {
	t.Parallel()

	body := []byte(`{"data": [
		{"title": "No ID Movie", "genre": ["Drama"]},
		{"title": "No ID Movie", "release_date": "2020-05-01"},
		{"title": "Other Movie"}
	]}`)
	first, err := DecodeMuvi(body, fixedNow)
	if err != nil {
		t.Fatalf("DecodeMuvi() error = %v", err)
	}
	second, err := DecodeMuvi(body, fixedNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("DecodeMuvi() error = %v", err)
	}

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("item %d: id %q then %q, want stable", i, first[i].ID, second[i].ID)
		}
	}
	if got := ids(first); got[0] == got[1] || got[0] == got[2] || got[1] == got[2] {
		t.Errorf("distinct records share an id: %v", got)
	}
}

func TestDecodeMuvi_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := DecodeMuvi([]byte("Service Unavailable"), fixedNow); !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestAdapterFor(t *testing.T) {
	t.Parallel()

	for _, p := range []string{ProviderTMDB, ProviderMuvi} {
		if a, err := AdapterFor(p); err != nil || a == nil {
			t.Errorf("AdapterFor(%q) = %v, %v", p, a, err)
		}
	}
	if _, err := AdapterFor("netflix"); err == nil {
		t.Error("AdapterFor(netflix) should fail")
	}
}

func TestPlaceholderImageIsStable(t *testing.T) {
	t.Parallel()

	if placeholderImage("abc", false) != placeholderImage("abc", false) {
		t.Error("placeholder should be deterministic per id")
	}
	if !strings.HasSuffix(placeholderImage("abc", true), "w=1280") {
		t.Error("backdrop placeholder should request 1280px width")
	}
}
