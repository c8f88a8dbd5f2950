// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

// Package config provides configuration loading, merging, and validation
// facilities for the tastebook client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Optional JSON file (path taken from sources 1 and 2)
//
// The merged result is validated before use; see [GetClientConfig].
package config
