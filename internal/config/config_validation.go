// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Fallback values applied when neither environment, flags, nor the JSON
// file provide a setting.
const (
	defaultBaseURL        = "http://127.0.0.1:8000"
	defaultRequestTimeout = 15 * time.Second
	defaultLogLevel       = "info"
)

// applyDefaults fills the remaining zero-value fields of the merged config.
// The state directory defaults to <user-config-dir>/tastebook and the cache
// database lives inside it, so one directory carries the whole client state.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = defaultBaseURL
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.StateDir == "" {
		if base, err := os.UserConfigDir(); err == nil {
			cfg.Storage.StateDir = filepath.Join(base, "tastebook")
		}
	}
	if cfg.Storage.CacheDSN == "" && cfg.Storage.StateDir != "" {
		cfg.Storage.CacheDSN = filepath.Join(cfg.Storage.StateDir, "cache.db")
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// client invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.BaseURL == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.StateDir == "" || cfg.Storage.CacheDSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
