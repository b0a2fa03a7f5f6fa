// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/tomtom215/francilia/internal/catalog"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func writeItems(w io.Writer, items []catalog.Item) error {
	tw := newTable(w, "ID", "TITLE", "YEAR", "RATING", "GENRES")
	for i := range items {
		it := &items[i]
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\t%s\n",
			it.ID, it.Title, it.Year, it.Rating, strings.Join(it.Genres, ", "))
	}
	return tw.Flush()
}

func writeResult(w io.Writer, res catalog.Result) error {
	if err := writeItems(w, res.Items); err != nil {
		return err
	}
	source := "live:" + res.Provider
	if !res.Live {
		source = "degraded"
	}
	_, err := fmt.Fprintf(w, "\npage %d/%d, %d items total (%s)\n", res.Page, res.TotalPages, res.Total, source)
	return err
}
