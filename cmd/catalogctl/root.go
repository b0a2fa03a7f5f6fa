// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tomtom215/francilia/internal/app"
	"github.com/tomtom215/francilia/internal/config"
	"github.com/tomtom215/francilia/internal/logging"
)

type configLoader func() (*config.Config, error)

func loadConfig() (*config.Config, error) {
	return config.LoadWithKoanf()
}

// cli carries state shared by every subcommand.
type cli struct {
	load    configLoader
	app     *app.App
	jsonOut bool
	verbose bool
}

// execute runs the CLI with args and always releases the store.
func execute(ctx context.Context, load configLoader, args []string, stdout, stderr io.Writer) error {
	root, c := newRootCmd(load)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if closeErr := c.teardown(); err == nil {
		err = closeErr
	}
	return err
}

func newRootCmd(load configLoader) (*cobra.Command, *cli) {
	c := &cli{load: load}

	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Francilia catalog operator CLI",
		Long: `catalogctl inspects and maintains the Francilia catalog.

It reads the server configuration (config.yaml and environment variables)
and operates on the configured catalog store and remote provider.

Example usage:
  catalogctl fetch                  # First page of the merged catalog
  catalogctl search "space"         # Search titles, genres and descriptions
  catalogctl recommend --watched 3  # Recommendations for a viewing history
  catalogctl import --count 25      # Import items from the remote provider
  catalogctl stats                  # Local catalog statistics
  catalogctl clear --yes            # Remove the local catalog`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "output as JSON")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		c.newFetchCmd(),
		c.newSearchCmd(),
		c.newRecommendCmd(),
		c.newImportCmd(),
		c.newStatsCmd(),
		c.newClearCmd(),
	)
	return root, c
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := c.load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := "warn"
	if c.verbose {
		level = "debug"
	}
	logging.Init(logging.Config{
		Level:  level,
		Format: "console",
		Output: cmd.ErrOrStderr(),
	})

	c.app, err = app.New(cmd.Context(), cfg, logger())
	if err != nil {
		return err
	}
	return nil
}

func (c *cli) teardown() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

func logger() zerolog.Logger {
	return logging.WithComponent("catalogctl")
}
