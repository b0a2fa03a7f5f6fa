// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package catalog

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Adapter decodes one provider response body into catalog items.
// now stamps CreatedAt/UpdatedAt and supplies the default year.
type Adapter func(body []byte, now time.Time) ([]Item, error)

// AdapterFor returns the adapter for a provider name.
func AdapterFor(provider string) (Adapter, error) {
	switch provider {
	case ProviderTMDB:
		return DecodeTMDB, nil
	case ProviderMuvi:
		return DecodeMuvi, nil
	default:
		return nil, fmt.Errorf("no adapter for provider %q", provider)
	}
}

// derivedIDSpace is the UUID namespace for identifiers derived from record content.
var derivedIDSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/tomtom215/francilia/catalog"))

// derivedID names a record the provider sent without an identifier. The same
// provider, title and release date always yield the same ID, so re-decoding a
// response does not mint new items.
func derivedID(provider, title, released string) string {
	return uuid.NewSHA1(derivedIDSpace, []byte(provider+"|"+title+"|"+released)).String()
}

// Defaults applied to records with missing fields.
const (
	DefaultTitle       = "Untitled"
	DefaultDescription = "No description available"
	DefaultDuration    = "2h 0m"
	DefaultDirector    = "Unknown Director"
	DefaultLanguage    = "English"
	DefaultCountry     = "USA"
	UnknownGenre       = "Unknown"
)

var placeholderPhotos = []string{
	"7991579",
	"3844798",
	"1111597",
	"1435752",
	"2156881",
}

// placeholderImage picks a stock image for an item without artwork. The
// choice is a hash of the ID so the same item always gets the same image.
func placeholderImage(id string, backdrop bool) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	photo := placeholderPhotos[h.Sum32()%uint32(len(placeholderPhotos))]
	width := 500
	if backdrop {
		width = 1280
	}
	return fmt.Sprintf("https://images.pexels.com/photos/%s/pexels-photo-%s.jpeg?auto=compress&cs=tinysrgb&w=%d",
		photo, photo, width)
}

// formatRuntime renders minutes as "{h}h {m}m". Non-positive input yields the default.
func formatRuntime(minutes int) string {
	if minutes <= 0 {
		return DefaultDuration
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// yearFromDate extracts the year of a YYYY-MM-DD (or longer ISO) date.
func yearFromDate(date string) (int, bool) {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year <= 0 {
		return 0, false
	}
	return year, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// cleanGenres trims entries, drops blanks and falls back to def when nothing is left.
func cleanGenres(genres []string, def string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	if len(out) == 0 {
		return []string{def}
	}
	return out
}
