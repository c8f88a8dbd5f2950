// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// tastebook client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log level and the
	// application version shown in the TUI.
	App App `envPrefix:"APP_"`

	// Server holds the remote recipe API endpoint settings.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds local persistence settings: the credential state
	// directory and the offline cache database.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the zerolog level name ("debug", "info", "warn", ...).
	// Env: TASTEBOOK_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Normally injected at build time.
	// Env: TASTEBOOK_APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds settings of the remote recipe-sharing API.
type Server struct {
	// BaseURL is the root URL of the recipe API
	// (e.g. "http://127.0.0.1:8000").
	// Env: TASTEBOOK_SERVER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s", "1m").
	// Env: TASTEBOOK_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local persistence settings.
type Storage struct {
	// StateDir is the directory holding the credential entries (token and
	// user files). All client processes sharing one StateDir share one
	// session; external writes are observed via the directory watcher.
	// Env: TASTEBOOK_STORAGE_STATE_DIR
	StateDir string `env:"STATE_DIR"`

	// CacheDSN is the SQLite file path of the offline recipe cache.
	// Env: TASTEBOOK_STORAGE_CACHE_DSN
	CacheDSN string `env:"CACHE_DSN"`
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
