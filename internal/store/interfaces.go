// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

// Package store implements the client's local persistence: an offline cache
// of recipes already fetched from the server and a queue of cooking events
// captured while the server was unreachable. Both live in one SQLite
// database file next to the rest of the client state.
package store

import (
	"context"
	"time"

	"github.com/nroshal/tastebook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Cooking event actions queued for later upload.
const (
	PendingStart    = "start"
	PendingComplete = "complete"
)

// PendingCookingEvent is a cooking action recorded locally because the
// server could not be reached at the time. ID is a client-generated UUID.
type PendingCookingEvent struct {
	ID          string
	RecipeID    string
	RecipeTitle string
	Action      string
	CreatedAt   time.Time
}

// RecipeCache is the local mirror of server recipes used for offline
// browsing. It is a cache, not a store of record: entries are overwritten
// freely by fresh server data and evicted by age.
type RecipeCache interface {
	// SaveRecipes upserts fetched recipes. Recipes without steps (list
	// responses) do not overwrite cached steps of the same recipe.
	SaveRecipes(ctx context.Context, recipes ...models.Recipe) error

	// GetRecipe returns one cached recipe with its steps.
	// Returns [ErrRecipeNotCached] when absent.
	GetRecipe(ctx context.Context, recipeID string) (models.Recipe, error)

	// ListRecipes returns cached recipes matching filter, most recently
	// fetched first. Paging fields of the filter are honored.
	ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)

	// DeleteRecipe evicts one recipe (e.g. after the author deleted it on
	// the server).
	DeleteRecipe(ctx context.Context, recipeID string) error

	// Purge evicts recipes fetched before the cutoff.
	Purge(ctx context.Context, olderThan time.Time) error
}

// PendingCookingRepository queues cooking events for upload once the server
// is reachable again.
type PendingCookingRepository interface {
	// Enqueue stores one event.
	Enqueue(ctx context.Context, event PendingCookingEvent) error

	// List returns all queued events, oldest first.
	List(ctx context.Context) ([]PendingCookingEvent, error)

	// Delete removes a flushed event.
	Delete(ctx context.Context, id string) error
}
