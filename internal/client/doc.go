// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

// Package client implements the interactive client application runtime.
//
// It wires the session store, the local cache, the server adapter and the
// terminal UI into a single process lifecycle.
package client
