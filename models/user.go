// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package models

// User represents a recipe-sharing account profile as served by the remote
// API. The server owns this record; the client only caches its serialized
// form alongside the bearer token.
type User struct {
	// ID is the server-assigned stable identity of the account.
	ID string `json:"id"`

	// Username is the public display name shown next to recipes.
	Username string `json:"username"`

	// Email is the address the account was registered with.
	// Also the login identifier.
	Email string `json:"email"`

	// Bio is an optional free-form self-description.
	Bio string `json:"bio,omitempty"`

	// ProfileImage is the server-side path of the avatar image,
	// or nil when the user never uploaded one.
	ProfileImage *string `json:"profile_image"`

	// CreatedAt is the registration timestamp as formatted by the server.
	// Kept as an opaque string so the cached record round-trips byte-exact.
	CreatedAt string `json:"created_at,omitempty"`
}
