// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nroshal/tastebook/internal/adapter"
	"github.com/nroshal/tastebook/internal/logger"
	"github.com/nroshal/tastebook/internal/store"
	"github.com/nroshal/tastebook/internal/validators"
	"github.com/nroshal/tastebook/models"
)

type clientRecipeService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	validator  validators.Validator
	logger     *logger.Logger
}

func NewClientRecipeService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientRecipeService {
	return &clientRecipeService{
		localStore: localStore,
		adapter:    serverAdapter,
		validator:  validators.NewRecipeInputValidator(),
		logger:     logger,
	}
}

func (r *clientRecipeService) List(ctx context.Context, filter models.RecipeFilter) (models.RecipeListResponse, error) {
	resp, err := r.adapter.ListRecipes(ctx, filter)
	if err == nil {
		if cacheErr := r.localStore.Recipes.SaveRecipes(ctx, resp.Items...); cacheErr != nil {
			r.logger.Err(cacheErr).
				Str("func", "clientRecipeService.List").
				Msg("failed to refresh recipe cache")
		}
		return resp, nil
	}

	if !isServerUnreachable(err) {
		return models.RecipeListResponse{}, fmt.Errorf("failed to list recipes: %w", mapAdapterError(err))
	}

	r.logger.Warn().
		Str("func", "clientRecipeService.List").
		Msg("server unreachable, serving recipes from cache")

	cached, cacheErr := r.localStore.Recipes.ListRecipes(ctx, filter)
	if cacheErr != nil {
		return models.RecipeListResponse{}, fmt.Errorf("failed to list cached recipes: %w", cacheErr)
	}

	return models.RecipeListResponse{
		Items: cached,
		Total: len(cached),
		Skip:  filter.Skip,
		Limit: filter.Limit,
	}, nil
}

func (r *clientRecipeService) MyRecipes(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := r.adapter.MyRecipes(ctx)
	if err != nil {
		r.logger.Err(err).
			Str("func", "clientRecipeService.MyRecipes").
			Msg("failed to fetch own recipes")
		return nil, fmt.Errorf("failed to fetch own recipes: %w", mapAdapterError(err))
	}

	if cacheErr := r.localStore.Recipes.SaveRecipes(ctx, recipes...); cacheErr != nil {
		r.logger.Err(cacheErr).
			Str("func", "clientRecipeService.MyRecipes").
			Msg("failed to refresh recipe cache")
	}

	return recipes, nil
}

func (r *clientRecipeService) Get(ctx context.Context, recipeID string) (models.Recipe, error) {
	recipe, err := r.adapter.GetRecipe(ctx, recipeID)
	if err == nil {
		if cacheErr := r.localStore.Recipes.SaveRecipes(ctx, recipe); cacheErr != nil {
			r.logger.Err(cacheErr).
				Str("func", "clientRecipeService.Get").
				Str("recipe_id", recipeID).
				Msg("failed to refresh recipe cache")
		}
		return recipe, nil
	}

	if !isServerUnreachable(err) {
		return models.Recipe{}, fmt.Errorf("failed to fetch recipe: %w", mapAdapterError(err))
	}

	r.logger.Warn().
		Str("func", "clientRecipeService.Get").
		Str("recipe_id", recipeID).
		Msg("server unreachable, serving recipe from cache")

	cached, cacheErr := r.localStore.Recipes.GetRecipe(ctx, recipeID)
	if errors.Is(cacheErr, store.ErrRecipeNotCached) {
		return models.Recipe{}, ErrRecipeNotFound
	}
	if cacheErr != nil {
		return models.Recipe{}, fmt.Errorf("failed to read cached recipe: %w", cacheErr)
	}

	return cached, nil
}

func (r *clientRecipeService) Create(ctx context.Context, in models.RecipeInput) (models.Recipe, error) {
	if err := r.validator.Validate(ctx, in); err != nil {
		return models.Recipe{}, fmt.Errorf("invalid recipe: %w", err)
	}

	recipe, err := r.adapter.CreateRecipe(ctx, in)
	if err != nil {
		r.logger.Err(err).
			Str("func", "clientRecipeService.Create").
			Msg("failed to publish recipe")
		return models.Recipe{}, fmt.Errorf("failed to publish recipe: %w", mapAdapterError(err))
	}

	if cacheErr := r.localStore.Recipes.SaveRecipes(ctx, recipe); cacheErr != nil {
		r.logger.Err(cacheErr).
			Str("func", "clientRecipeService.Create").
			Str("recipe_id", recipe.ID).
			Msg("failed to cache published recipe")
	}

	return recipe, nil
}

func (r *clientRecipeService) Update(ctx context.Context, recipeID string, in models.RecipeInput) (models.Recipe, error) {
	if err := r.validator.Validate(ctx, in); err != nil {
		return models.Recipe{}, fmt.Errorf("invalid recipe: %w", err)
	}

	recipe, err := r.adapter.UpdateRecipe(ctx, recipeID, in)
	if err != nil {
		r.logger.Err(err).
			Str("func", "clientRecipeService.Update").
			Str("recipe_id", recipeID).
			Msg("failed to update recipe")
		return models.Recipe{}, fmt.Errorf("failed to update recipe: %w", mapAdapterError(err))
	}

	if cacheErr := r.localStore.Recipes.SaveRecipes(ctx, recipe); cacheErr != nil {
		r.logger.Err(cacheErr).
			Str("func", "clientRecipeService.Update").
			Str("recipe_id", recipeID).
			Msg("failed to cache updated recipe")
	}

	return recipe, nil
}

func (r *clientRecipeService) Delete(ctx context.Context, recipeID string) error {
	if err := r.adapter.DeleteRecipe(ctx, recipeID); err != nil {
		r.logger.Err(err).
			Str("func", "clientRecipeService.Delete").
			Str("recipe_id", recipeID).
			Msg("failed to delete recipe")
		return fmt.Errorf("failed to delete recipe: %w", mapAdapterError(err))
	}

	if cacheErr := r.localStore.Recipes.DeleteRecipe(ctx, recipeID); cacheErr != nil {
		r.logger.Err(cacheErr).
			Str("func", "clientRecipeService.Delete").
			Str("recipe_id", recipeID).
			Msg("failed to evict deleted recipe from cache")
	}

	return nil
}
