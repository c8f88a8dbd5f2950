// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nroshal/tastebook/internal/adapter"
	"github.com/nroshal/tastebook/internal/logger"
	"github.com/nroshal/tastebook/internal/store"
	"github.com/nroshal/tastebook/models"
)

type clientCookingService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

func NewClientCookingService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientCookingService {
	return &clientCookingService{localStore: localStore, adapter: serverAdapter, logger: logger}
}

func (c *clientCookingService) Start(ctx context.Context, recipeID, recipeTitle string) error {
	_, err := c.adapter.StartCooking(ctx, recipeID)
	if err == nil {
		return nil
	}

	if !isServerUnreachable(err) {
		c.logger.Err(err).
			Str("func", "clientCookingService.Start").
			Str("recipe_id", recipeID).
			Msg("failed to start cooking session")
		return fmt.Errorf("failed to start cooking session: %w", mapAdapterError(err))
	}

	return c.enqueue(ctx, recipeID, recipeTitle, store.PendingStart)
}

func (c *clientCookingService) Complete(ctx context.Context, recipeID, recipeTitle string) error {
	err := c.adapter.CompleteCooking(ctx, recipeID)
	if err == nil {
		return nil
	}

	if errors.Is(mapAdapterError(err), ErrRecipeNotFound) {
		return ErrNoActiveCookingSession
	}

	if !isServerUnreachable(err) {
		c.logger.Err(err).
			Str("func", "clientCookingService.Complete").
			Str("recipe_id", recipeID).
			Msg("failed to complete cooking session")
		return fmt.Errorf("failed to complete cooking session: %w", mapAdapterError(err))
	}

	return c.enqueue(ctx, recipeID, recipeTitle, store.PendingComplete)
}

func (c *clientCookingService) History(ctx context.Context) ([]models.CookingRecord, error) {
	records, err := c.adapter.CookingHistory(ctx)
	if err != nil {
		c.logger.Err(err).
			Str("func", "clientCookingService.History").
			Msg("failed to fetch cooking history")
		return nil, fmt.Errorf("failed to fetch cooking history: %w", mapAdapterError(err))
	}

	return records, nil
}

func (c *clientCookingService) FlushPending(ctx context.Context) (int, error) {
	events, err := c.localStore.PendingCooking.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read pending cooking events: %w", err)
	}

	flushed := 0
	for _, event := range events {
		var sendErr error
		switch event.Action {
		case store.PendingStart:
			_, sendErr = c.adapter.StartCooking(ctx, event.RecipeID)
		case store.PendingComplete:
			sendErr = c.adapter.CompleteCooking(ctx, event.RecipeID)
		default:
			c.logger.Warn().
				Str("func", "clientCookingService.FlushPending").
				Str("record_id", event.ID).
				Str("action", event.Action).
				Msg("dropping pending event with unknown action")
		}

		if sendErr != nil {
			if isServerUnreachable(sendErr) {
				// Still offline. Keep the queue intact for the next flush.
				return flushed, nil
			}
			// The server rejected the event (e.g. the recipe is gone).
			// Retrying will never succeed, so drop it.
			c.logger.Warn().
				Str("func", "clientCookingService.FlushPending").
				Str("record_id", event.ID).
				Str("recipe_id", event.RecipeID).
				Msg("server rejected pending cooking event, dropping")
		}

		if deleteErr := c.localStore.PendingCooking.Delete(ctx, event.ID); deleteErr != nil {
			return flushed, fmt.Errorf("failed to remove flushed cooking event: %w", deleteErr)
		}
		if sendErr == nil {
			flushed++
		}
	}

	return flushed, nil
}

func (c *clientCookingService) enqueue(ctx context.Context, recipeID, recipeTitle, action string) error {
	event := store.PendingCookingEvent{
		ID:          uuid.NewString(),
		RecipeID:    recipeID,
		RecipeTitle: recipeTitle,
		Action:      action,
		CreatedAt:   time.Now().UTC(),
	}

	if err := c.localStore.PendingCooking.Enqueue(ctx, event); err != nil {
		c.logger.Err(err).
			Str("func", "clientCookingService.enqueue").
			Str("recipe_id", recipeID).
			Str("action", action).
			Msg("failed to queue cooking event")
		return fmt.Errorf("failed to queue cooking event: %w", err)
	}

	c.logger.Info().
		Str("func", "clientCookingService.enqueue").
		Str("recipe_id", recipeID).
		Str("action", action).
		Msg("server unreachable, cooking event queued")

	return nil
}
