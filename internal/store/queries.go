// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package store

const (
	// Upsert keeps previously cached steps when the incoming row carries
	// none (list responses strip steps server-side).
	upsertRecipe = `
		INSERT INTO recipes (
			recipe_id,
			author_id,
			title,
			description,
			cuisine_type,
			difficulty,
			prep_time_min,
			cook_time_min,
			servings,
			ingredients,
			steps,
			created_at,
			updated_at,
			fetched_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (recipe_id) DO UPDATE SET
			author_id     = excluded.author_id,
			title         = excluded.title,
			description   = excluded.description,
			cuisine_type  = excluded.cuisine_type,
			difficulty    = excluded.difficulty,
			prep_time_min = excluded.prep_time_min,
			cook_time_min = excluded.cook_time_min,
			servings      = excluded.servings,
			ingredients   = excluded.ingredients,
			steps         = CASE WHEN excluded.steps = '[]' THEN recipes.steps ELSE excluded.steps END,
			created_at    = excluded.created_at,
			updated_at    = excluded.updated_at,
			fetched_at    = excluded.fetched_at;`

	getRecipeByID = `
		SELECT
			recipe_id,
			author_id,
			title,
			description,
			cuisine_type,
			difficulty,
			prep_time_min,
			cook_time_min,
			servings,
			ingredients,
			steps,
			created_at,
			updated_at
		FROM recipes
		WHERE recipe_id = ?;`

	deleteRecipeByID = `DELETE FROM recipes WHERE recipe_id = ?;`

	purgeRecipesBefore = `DELETE FROM recipes WHERE fetched_at < ?;`

	insertPendingEvent = `
		INSERT INTO pending_cooking (
			record_id,
			recipe_id,
			recipe_title,
			action,
			created_at
		) VALUES (?, ?, ?, ?, ?);`

	listPendingEvents = `
		SELECT
			record_id,
			recipe_id,
			recipe_title,
			action,
			created_at
		FROM pending_cooking
		ORDER BY created_at ASC;`

	deletePendingEvent = `DELETE FROM pending_cooking WHERE record_id = ?;`
)
