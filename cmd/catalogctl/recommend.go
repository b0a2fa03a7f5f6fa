// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/tomtom215/francilia/internal/recommend"
)

func (c *cli) newRecommendCmd() *cobra.Command {
	var watched []string
	var behavior bool
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Score the catalog for a viewing history",
		Long: `Recommend up to six catalog items for the given watched item IDs.

Without --watched the configured default genre preferences are used.
With --behavior the viewing behavior summary is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, _ := c.app.Source.Catalog(cmd.Context())

			history := make([]recommend.HistoryEntry, 0, len(watched))
			for _, id := range watched {
				history = append(history, recommend.HistoryEntry{ItemID: id})
			}

			out := cmd.OutOrStdout()
			if behavior {
				b := c.app.Engine.AnalyzeBehavior(items, history)
				if c.jsonOut {
					return writeJSON(out, b)
				}
				fmt.Fprintf(out, "average rating:   %.1f\n", b.AverageRating)
				fmt.Fprintf(out, "preferred decade: %s\n", b.PreferredDecade)
				fmt.Fprintf(out, "completion rate:  %d%%\n", b.WatchingPatterns.CompletionRate)
				tw := newTable(out, "GENRE", "WEIGHT")
				for _, genre := range slices.Sorted(maps.Keys(b.FavoriteGenres)) {
					fmt.Fprintf(tw, "%s\t%.2f\n", genre, b.FavoriteGenres[genre])
				}
				return tw.Flush()
			}

			recs := c.app.Engine.Recommend(items, history, recommend.Preferences{})
			if c.jsonOut {
				return writeJSON(out, recs)
			}
			tw := newTable(out, "ID", "TITLE", "CONFIDENCE", "REASON")
			for i := range recs {
				r := &recs[i]
				fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n", r.Item.ID, r.Item.Title, r.Confidence, r.Reason)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&watched, "watched", nil, "watched item IDs (comma-separated)")
	cmd.Flags().BoolVar(&behavior, "behavior", false, "print the viewing behavior summary")
	return cmd
}
