// Francilia - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/francilia

// Package config loads Francilia configuration with Koanf v2.
//
// Sources are layered, highest priority last:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file: $CONFIG_PATH, ./config.yaml, /etc/francilia/config.yaml
//  3. Environment variables, mapped through envTransformFunc
//
// Example config.yaml:
//
//	catalog:
//	  provider: tmdb
//	  api_key: "..."
//	store:
//	  backend: badger
//	  path: /data/catalog
//	recommend:
//	  top_n: 6
//
// Equivalent environment: CATALOG_PROVIDER=tmdb CATALOG_API_KEY=... STORE_BACKEND=badger.
//
// The returned Config is validated and immutable; it is safe for concurrent reads.
package config
