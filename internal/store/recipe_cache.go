// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/nroshal/tastebook/internal/logger"
	"github.com/nroshal/tastebook/models"
)

type recipeCache struct {
	*DB
	logger *logger.Logger
}

func NewRecipeCache(db *DB, logger *logger.Logger) RecipeCache {
	return &recipeCache{
		DB:     db,
		logger: logger,
	}
}

func (r *recipeCache) SaveRecipes(ctx context.Context, recipes ...models.Recipe) error {
	log := logger.FromContext(ctx)

	fetchedAt := time.Now().UTC()
	for _, recipe := range recipes {
		ingredients, err := json.Marshal(recipe.Ingredients)
		if err != nil {
			log.Err(err).
				Str("func", "recipeCache.SaveRecipes").
				Str("recipe_id", recipe.ID).
				Msg("failed to marshal ingredients")
			return fmt.Errorf("failed to marshal ingredients (recipe_id=%s): %w", recipe.ID, err)
		}
		steps, err := json.Marshal(recipe.Steps)
		if err != nil {
			log.Err(err).
				Str("func", "recipeCache.SaveRecipes").
				Str("recipe_id", recipe.ID).
				Msg("failed to marshal steps")
			return fmt.Errorf("failed to marshal steps (recipe_id=%s): %w", recipe.ID, err)
		}
		// nil slices land as "null"; normalize so the upsert's step
		// preservation check sees '[]'.
		if recipe.Ingredients == nil {
			ingredients = []byte("[]")
		}
		if recipe.Steps == nil {
			steps = []byte("[]")
		}

		_, err = r.DB.ExecContext(ctx, upsertRecipe,
			recipe.ID,
			recipe.UserID,
			recipe.Title,
			recipe.Description,
			recipe.CuisineType,
			recipe.Difficulty,
			recipe.PrepTimeMin,
			recipe.CookTimeMin,
			recipe.Servings,
			string(ingredients),
			string(steps),
			recipe.CreatedAt,
			recipe.UpdatedAt,
			fetchedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "recipeCache.SaveRecipes").
				Str("recipe_id", recipe.ID).
				Msg("failed to execute upsert for recipe")
			return fmt.Errorf("failed to cache recipe (recipe_id=%s): %w", recipe.ID, err)
		}
	}

	return nil
}

func (r *recipeCache) GetRecipe(ctx context.Context, recipeID string) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getRecipeByID, recipeID)

	recipe, err := scanRecipe(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Recipe{}, ErrRecipeNotCached
	}
	if err != nil {
		log.Err(err).
			Str("func", "recipeCache.GetRecipe").
			Str("recipe_id", recipeID).
			Msg("failed to scan cached recipe row")
		return models.Recipe{}, fmt.Errorf("failed to scan cached recipe (recipe_id=%s): %w", recipeID, err)
	}

	return recipe, nil
}

func (r *recipeCache) ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecipesQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "recipeCache.ListRecipes").
			Msg("failed to build cached recipes query")
		return nil, fmt.Errorf("failed to build cached recipes query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recipeCache.ListRecipes").
			Msg("failed to execute query for cached recipes")
		return nil, fmt.Errorf("failed to query cached recipes: %w", err)
	}
	defer rows.Close()

	var recipes []models.Recipe
	for rows.Next() {
		recipe, scanErr := scanRecipe(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recipeCache.ListRecipes").
				Msg("failed to scan cached recipe row")
			return nil, fmt.Errorf("failed to scan cached recipe row: %w", scanErr)
		}
		recipes = append(recipes, recipe)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recipeCache.ListRecipes").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating cached recipe rows: %w", rowsErr)
	}

	return recipes, nil
}

func (r *recipeCache) DeleteRecipe(ctx context.Context, recipeID string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteRecipeByID, recipeID)
	if err != nil {
		log.Err(err).
			Str("func", "recipeCache.DeleteRecipe").
			Str("recipe_id", recipeID).
			Msg("failed to execute delete for cached recipe")
		return fmt.Errorf("failed to evict cached recipe (recipe_id=%s): %w", recipeID, err)
	}

	return nil
}

func (r *recipeCache) Purge(ctx context.Context, olderThan time.Time) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, purgeRecipesBefore, olderThan)
	if err != nil {
		log.Err(err).
			Str("func", "recipeCache.Purge").
			Msg("failed to execute purge for cached recipes")
		return fmt.Errorf("failed to purge cached recipes: %w", err)
	}

	return nil
}

// buildListRecipesQuery assembles the filtered SELECT. Query matches the
// server's search semantics loosely: substring over title and description.
func buildListRecipesQuery(filter models.RecipeFilter) (string, []any, error) {
	builder := sq.Select(
		"recipe_id",
		"author_id",
		"title",
		"description",
		"cuisine_type",
		"difficulty",
		"prep_time_min",
		"cook_time_min",
		"servings",
		"ingredients",
		"steps",
		"created_at",
		"updated_at",
	).
		From("recipes").
		OrderBy("fetched_at DESC, recipe_id ASC")

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		builder = builder.Where(sq.Or{
			sq.Like{"title": pattern},
			sq.Like{"description": pattern},
		})
	}
	if filter.Cuisine != "" {
		builder = builder.Where(sq.Eq{"cuisine_type": filter.Cuisine})
	}
	if filter.Difficulty != "" {
		builder = builder.Where(sq.Eq{"difficulty": filter.Difficulty})
	}
	if filter.MaxTimeMin > 0 {
		builder = builder.Where(sq.LtOrEq{"prep_time_min + cook_time_min": filter.MaxTimeMin})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Skip > 0 {
		builder = builder.Offset(uint64(filter.Skip))
	}

	return builder.ToSql()
}

// scanRecipe reads one cached recipe row and unpacks the JSON columns.
func scanRecipe(scan func(dest ...any) error) (models.Recipe, error) {
	var (
		recipe      models.Recipe
		ingredients string
		steps       string
	)

	err := scan(
		&recipe.ID,
		&recipe.UserID,
		&recipe.Title,
		&recipe.Description,
		&recipe.CuisineType,
		&recipe.Difficulty,
		&recipe.PrepTimeMin,
		&recipe.CookTimeMin,
		&recipe.Servings,
		&ingredients,
		&steps,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)
	if err != nil {
		return models.Recipe{}, err
	}

	if err := json.Unmarshal([]byte(ingredients), &recipe.Ingredients); err != nil {
		return models.Recipe{}, fmt.Errorf("failed to unmarshal cached ingredients: %w", err)
	}
	if err := json.Unmarshal([]byte(steps), &recipe.Steps); err != nil {
		return models.Recipe{}, fmt.Errorf("failed to unmarshal cached steps: %w", err)
	}

	return recipe, nil
}
