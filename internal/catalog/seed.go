// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package catalog

import (
	"fmt"
	"time"
)

const seedImage = "https://images.pexels.com/photos/%s/pexels-photo-%s.jpeg?auto=compress&cs=tinysrgb&w="

type seedEntry struct {
	id, title, description, duration, director, photo string
	year                                              int
	genres, cast                                      []string
	rating, popularity                                float64
}

var seedEntries = []seedEntry{
	{
		id:          "1",
		title:       "The Quantum Paradox",
		description: "A brilliant physicist discovers a way to manipulate time, but the consequences threaten the fabric of reality itself.",
		year:        2024,
		genres:      []string{"Sci-Fi", "Thriller"},
		rating:      8.5,
		duration:    "2h 15m",
		cast:        []string{"Emma Stone", "Ryan Gosling", "John Doe"},
		director:    "Christopher Nolan",
		popularity:  95.5,
		photo:       "7991579",
	},
	{
		id:          "2",
		title:       "Midnight in Paris",
		description: "A romantic comedy about a writer who finds himself mysteriously going back to the 1920s every night at midnight.",
		year:        2023,
		genres:      []string{"Romance", "Comedy", "Drama"},
		rating:      7.8,
		duration:    "1h 54m",
		cast:        []string{"Owen Wilson", "Rachel McAdams", "Marion Cotillard"},
		director:    "Woody Allen",
		popularity:  88.2,
		photo:       "3844798",
	},
	{
		id:          "3",
		title:       "The Digital Frontier",
		description: "In a world where reality and virtual reality merge, a hacker must save both worlds from complete destruction.",
		year:        2024,
		genres:      []string{"Action", "Sci-Fi"},
		rating:      8.2,
		duration:    "2h 8m",
		cast:        []string{"Keanu Reeves", "Scarlett Johansson", "Michael Shannon"},
		director:    "Denis Villeneuve",
		popularity:  92.7,
		photo:       "1111597",
	},
	{
		id:          "4",
		title:       "Ocean's Mystery",
		description: "A marine biologist discovers an ancient secret hidden in the deepest parts of the ocean that could change humanity forever.",
		year:        2023,
		genres:      []string{"Mystery", "Thriller", "Adventure"},
		rating:      7.6,
		duration:    "2h 12m",
		cast:        []string{"Amy Adams", "Oscar Isaac", "Mahershala Ali"},
		director:    "Kathryn Bigelow",
		popularity:  85.4,
		photo:       "1435752",
	},
	{
		id:          "5",
		title:       "The Last Symphony",
		description: "The inspiring true story of a composer who creates his masterpiece while losing his hearing, changing the world of music forever.",
		year:        2024,
		genres:      []string{"Drama", "Music", "Biography"},
		rating:      8.9,
		duration:    "2h 25m",
		cast:        []string{"Benedict Cumberbatch", "Saoirse Ronan", "Ralph Fiennes"},
		director:    "Damien Chazelle",
		popularity:  91.8,
		photo:       "2156881",
	},
}

// SeedItems returns the built-in catalog served when neither the remote
// provider nor the local store has items. Each call returns fresh slices.
func SeedItems(now time.Time) []Item {
	items := make([]Item, 0, len(seedEntries))
	for _, e := range seedEntries {
		image := fmt.Sprintf(seedImage, e.photo, e.photo)
		items = append(items, Item{
			ID:          e.id,
			Title:       e.title,
			Description: e.description,
			Genres:      append([]string(nil), e.genres...),
			Rating:      e.rating,
			Year:        e.year,
			Popularity:  e.popularity,
			Duration:    e.duration,
			Thumbnail:   image + "500",
			Backdrop:    image + "1200",
			Director:    e.director,
			Cast:        append([]string(nil), e.cast...),
			Language:    DefaultLanguage,
			Country:     DefaultCountry,
			Provider:    ProviderSeed,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return items
}
