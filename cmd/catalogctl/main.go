// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

// Package main is catalogctl, the operator CLI for the Francilia catalog.
//
// It reads the same configuration as the server (config.yaml plus
// environment) and works directly against the configured store, so it is
// most useful with the badger or redis backends:
//
//	catalogctl fetch --page 2 --page-size 10
//	catalogctl search "space"
//	catalogctl recommend --watched 3,7
//	catalogctl import --count 25
//	catalogctl stats --json
//	catalogctl clear --yes
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := execute(ctx, loadConfig, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
