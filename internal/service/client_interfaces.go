package service

import (
	"context"

	"github.com/nroshal/tastebook/internal/adapter"
	"github.com/nroshal/tastebook/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService defines the client-side contract for account management.
// Implementations talk to the remote server and keep the local session store
// in sync: a successful login or registration commits the returned token and
// profile, a logout clears them, and profile operations refresh the cached
// user without touching the token.
type ClientAuthService interface {
	// Register creates a new account on the server and opens a session for
	// it by committing the returned token and profile to the session store.
	Register(ctx context.Context, req adapter.RegisterRequest) error

	// Login authenticates against the server by email and password and
	// commits the returned token and profile to the session store.
	Login(ctx context.Context, email, password string) error

	// Logout discards the session. It is purely local; the server keeps no
	// session state beyond the token's own expiry.
	Logout() error

	// RefreshProfile re-fetches the authenticated profile from the server
	// and updates the cached user of the current session.
	RefreshProfile(ctx context.Context) (models.User, error)

	// UpdateProfile pushes edited profile fields to the server and updates
	// the cached user of the current session with the stored result.
	UpdateProfile(ctx context.Context, update adapter.ProfileUpdate) (models.User, error)
}

// ClientRecipeService defines the client-side contract for browsing and
// authoring recipes. Reads go to the server first and fall back to the local
// cache when it is unreachable; successful server reads refresh the cache.
type ClientRecipeService interface {
	// List returns a page of published recipes narrowed by filter. Served
	// from the local cache when the server is unreachable, in which case
	// the returned total equals the number of cached matches.
	List(ctx context.Context, filter models.RecipeFilter) (models.RecipeListResponse, error)

	// MyRecipes returns the recipes authored by the authenticated account.
	MyRecipes(ctx context.Context) ([]models.Recipe, error)

	// Get returns one recipe with its full walkthrough. Falls back to the
	// cache when the server is unreachable; returns [ErrRecipeNotFound]
	// when neither side has it.
	Get(ctx context.Context, recipeID string) (models.Recipe, error)

	// Create publishes a new recipe and returns it as stored by the server.
	Create(ctx context.Context, in models.RecipeInput) (models.Recipe, error)

	// Update replaces the editable fields of an owned recipe. Returns
	// [ErrNotRecipeAuthor] when the account does not own it.
	Update(ctx context.Context, recipeID string, in models.RecipeInput) (models.Recipe, error)

	// Delete removes an owned recipe on the server and evicts it from the
	// local cache.
	Delete(ctx context.Context, recipeID string) error
}

// ClientCookingService defines the client-side contract for cooking-history
// tracking. Start and complete events survive server outages: when the
// server is unreachable they are queued locally and replayed by
// FlushPending.
type ClientCookingService interface {
	// Start records the beginning of a cooking session for the recipe.
	Start(ctx context.Context, recipeID, recipeTitle string) error

	// Complete records the end of the most recent in-progress session for
	// the recipe. Returns [ErrNoActiveCookingSession] when none is open.
	Complete(ctx context.Context, recipeID, recipeTitle string) error

	// History returns the account's cooking history, newest first.
	History(ctx context.Context) ([]models.CookingRecord, error)

	// FlushPending replays queued cooking events to the server in the order
	// they were recorded, removing each one on success. It stops at the
	// first connectivity failure and reports how many events were flushed.
	FlushPending(ctx context.Context) (int, error)
}
