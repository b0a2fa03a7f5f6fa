// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/francilia/internal/catalog"
)

var errNotConfirmed = errors.New("refusing to clear the local catalog without --yes")

func (c *cli) newImportCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import items from the remote provider into the local store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.app.Library.Import(cmd.Context(), count)
			if err != nil {
				return err
			}
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "fetched %d items, added %d\n", len(res.Items), res.Added)
			return err
		},
	}
	cmd.Flags().IntVar(&count, "count", catalog.DefaultImportCount, "maximum number of items to import")
	return cmd
}

func (c *cli) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show local catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.app.Library.Stats(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if c.jsonOut {
				return writeJSON(out, stats)
			}

			fmt.Fprintf(out, "items:          %d\n", stats.TotalItems)
			fmt.Fprintf(out, "average rating: %.1f\n\n", stats.AverageRating)

			tw := newTable(out, "GENRE", "COUNT")
			for _, g := range stats.TopGenres {
				fmt.Fprintf(tw, "%s\t%d\n", g.Genre, g.Count)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(out)

			tw = newTable(out, "RATING", "COUNT")
			for _, b := range stats.RatingDistribution {
				fmt.Fprintf(tw, "%s\t%d\n", b.Rating, b.Count)
			}
			return tw.Flush()
		},
	}
}

func (c *cli) newClearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the local catalog list",
		Long: `Remove the locally stored catalog list.

With seed fallback enabled, reads and the next mutation start over from the
seed list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errNotConfirmed
			}
			if err := c.app.Library.Clear(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "local catalog cleared")
			return err
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm removal")
	return cmd
}
