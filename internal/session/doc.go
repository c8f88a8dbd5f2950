// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

// Package session owns the client-side authentication state: the persisted
// credential entries (bearer token and serialized user profile), an
// in-process snapshot cache over them, and the change-signal fan-out that
// keeps every consumer current.
//
// The contract is pull+push: consumers read state via [Store.Snapshot] and
// register with [Store.Subscribe] for payload-free change ticks; on a tick
// they re-pull. Snapshots are immutable and identity-stable — as long as the
// raw persisted pair is unchanged, Snapshot returns the exact same pointer,
// so consumers compare pointers instead of deep-comparing values. Nothing in
// this package polls.
//
// Writes from other processes sharing the same state directory are bridged
// into the same subscriber channel by [Watcher]. A writing process never
// relies on that bridge for its own writes: [Store.Commit] and [Store.Clear]
// refresh the cache synchronously before signaling, so the writer observes
// its own change immediately.
package session
