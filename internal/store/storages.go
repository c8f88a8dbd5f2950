package store

import (
	"context"
	"fmt"

	"github.com/nroshal/tastebook/internal/config"
	"github.com/nroshal/tastebook/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// Recipes is the SQLite-backed offline mirror of server recipes.
	Recipes RecipeCache

	// PendingCooking queues cooking events recorded while offline.
	PendingCooking PendingCookingRepository
}

// NewClientStorages initialises the client storage layer: it opens the
// SQLite cache at cfg.CacheDSN (creating the file if needed), runs pending
// schema migrations and wires the repositories.
func NewClientStorages(cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.CacheDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Recipes:        NewRecipeCache(db, logger),
		PendingCooking: NewPendingCookingRepository(db, logger),
	}, nil
}
