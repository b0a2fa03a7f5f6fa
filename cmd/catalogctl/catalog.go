// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/francilia/internal/catalog"
)

func (c *cli) newFetchCmd() *cobra.Command {
	var page, pageSize int
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Show one page of the merged catalog",
		Long: `Fetch the remote catalog, merge it with the local store and print one page.

When the remote provider is unreachable the page is served from the local
store or the seed list and marked degraded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := c.app.Source.FetchCatalog(cmd.Context(), page, pageSize)
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return writeResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "items per page (0 uses the configured default)")
	return cmd
}

func (c *cli) newSearchCmd() *cobra.Command {
	var page, pageSize int
	var genre bool
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the merged catalog",
		Long: `Search titles, genres and descriptions, case-insensitively.

With --genre the query is matched against genres only.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			var res catalog.Result
			if genre {
				res = c.app.Source.ByGenre(cmd.Context(), query, page, pageSize)
			} else {
				res = c.app.Source.Search(cmd.Context(), query, page, pageSize)
			}
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return writeResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "items per page (0 uses the configured default)")
	cmd.Flags().BoolVar(&genre, "genre", false, "match genres only")
	return cmd
}
