// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

// Package adapter provides the transport layer for communicating with the
// remote recipe-sharing API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the HTTP protocol. The shipped implementation
// ([NewHTTPServerAdapter]) is built on resty and attaches the bearer token
// of the current session to every request by pulling it from a
// [TokenSource] at send time — the adapter itself never caches credentials.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
// The human-readable part of each error is extracted from the server's
// "detail" or "message" JSON field when present.
package adapter

import (
	"context"

	"github.com/nroshal/tastebook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenSource yields the bearer token of the current session, or nil when
// logged out. The session store satisfies this; the indirection keeps the
// transport layer unaware of session semantics.
type TokenSource interface {
	Token() *string
}

// RegisterRequest carries the fields of a registration form.
type RegisterRequest struct {
	Username string
	Email    string
	Password string
	Bio      string
}

// ProfileUpdate carries the editable profile fields for the update-profile
// endpoint.
type ProfileUpdate struct {
	Username string
	Bio      string
}

// ServerAdapter defines the client's view of the recipe-sharing API.
// Implementations are responsible for serialization, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// Register creates an account. On success the server responds with a
	// fresh bearer token and the created profile; committing them to the
	// session store is the caller's job.
	Register(ctx context.Context, req RegisterRequest) (models.AuthResponse, error)

	// Login authenticates by email and password, returning the bearer
	// token and profile on success.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// Me fetches the profile of the authenticated account.
	Me(ctx context.Context) (models.User, error)

	// UpdateMe updates the editable profile fields and returns the profile
	// as stored by the server.
	UpdateMe(ctx context.Context, update ProfileUpdate) (models.User, error)

	// ListRecipes fetches a page of published recipes narrowed by filter.
	// Returned recipes carry no steps.
	ListRecipes(ctx context.Context, filter models.RecipeFilter) (models.RecipeListResponse, error)

	// MyRecipes fetches all recipes authored by the authenticated account,
	// newest first, without steps.
	MyRecipes(ctx context.Context) ([]models.Recipe, error)

	// GetRecipe fetches one recipe with its full walkthrough.
	// Returns [ErrNotFound] (wrapped) for an unknown id.
	GetRecipe(ctx context.Context, recipeID string) (models.Recipe, error)

	// CreateRecipe publishes a new recipe and returns it as stored.
	CreateRecipe(ctx context.Context, in models.RecipeInput) (models.Recipe, error)

	// UpdateRecipe replaces the editable fields of an owned recipe.
	// Returns [ErrForbidden] (wrapped) when the account is not the author.
	UpdateRecipe(ctx context.Context, recipeID string, in models.RecipeInput) (models.Recipe, error)

	// DeleteRecipe removes an owned recipe.
	DeleteRecipe(ctx context.Context, recipeID string) error

	// StartCooking opens a cooking-history session for the recipe and
	// returns its server-side id.
	StartCooking(ctx context.Context, recipeID string) (string, error)

	// CompleteCooking closes the most recent in-progress session for the
	// recipe. Returns [ErrNotFound] (wrapped) when none is open.
	CompleteCooking(ctx context.Context, recipeID string) error

	// CookingHistory fetches the account's cooking history, newest first.
	CookingHistory(ctx context.Context) ([]models.CookingRecord, error)
}
