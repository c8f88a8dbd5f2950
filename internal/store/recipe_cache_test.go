package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nroshal/tastebook/internal/logger"
	"github.com/nroshal/tastebook/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{DB: conn, logger: logger.Nop()}, mock
}

var recipeColumns = []string{
	"recipe_id", "author_id", "title", "description", "cuisine_type",
	"difficulty", "prep_time_min", "cook_time_min", "servings",
	"ingredients", "steps", "created_at", "updated_at",
}

func TestRecipeCache_SaveRecipes(t *testing.T) {
	db, mock := newMockDB(t)
	cache := NewRecipeCache(db, logger.Nop())

	mock.ExpectExec("INSERT INTO recipes").
		WithArgs(
			"r-1", "u-1", "Carbonara", "Roman classic", "Italian", "Medium",
			15, 20, 4,
			`[{"name":"Eggs","qty":3,"unit":"pcs"}]`,
			`[{"text":"Boil pasta"}]`,
			"2026-01-02T10:00:00", "2026-01-02T10:00:00",
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := cache.SaveRecipes(context.Background(), models.Recipe{
		ID:          "r-1",
		UserID:      "u-1",
		Title:       "Carbonara",
		Description: "Roman classic",
		CuisineType: "Italian",
		Difficulty:  "Medium",
		PrepTimeMin: 15,
		CookTimeMin: 20,
		Servings:    4,
		Ingredients: []models.Ingredient{{Name: "Eggs", Qty: 3, Unit: "pcs"}},
		Steps:       []models.Step{{Text: "Boil pasta"}},
		CreatedAt:   "2026-01-02T10:00:00",
		UpdatedAt:   "2026-01-02T10:00:00",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeCache_SaveRecipes_NilSlicesStoredAsEmptyArrays(t *testing.T) {
	db, mock := newMockDB(t)
	cache := NewRecipeCache(db, logger.Nop())

	mock.ExpectExec("INSERT INTO recipes").
		WithArgs(
			"r-2", "u-1", "Toast", "", "", "Easy",
			2, 3, 1,
			"[]", "[]",
			"", "",
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := cache.SaveRecipes(context.Background(), models.Recipe{
		ID:          "r-2",
		UserID:      "u-1",
		Title:       "Toast",
		Difficulty:  "Easy",
		PrepTimeMin: 2,
		CookTimeMin: 3,
		Servings:    1,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeCache_GetRecipe(t *testing.T) {
	db, mock := newMockDB(t)
	cache := NewRecipeCache(db, logger.Nop())

	rows := sqlmock.NewRows(recipeColumns).AddRow(
		"r-1", "u-1", "Carbonara", "Roman classic", "Italian", "Medium",
		15, 20, 4,
		`[{"name":"Eggs","qty":3,"unit":"pcs"}]`,
		`[{"text":"Boil pasta"},{"text":"Mix eggs and cheese"}]`,
		"2026-01-02T10:00:00", "2026-01-02T10:00:00",
	)
	mock.ExpectQuery("SELECT(.|\n)+FROM recipes").
		WithArgs("r-1").
		WillReturnRows(rows)

	got, err := cache.GetRecipe(context.Background(), "r-1")

	require.NoError(t, err)
	assert.Equal(t, "Carbonara", got.Title)
	assert.Equal(t, []models.Ingredient{{Name: "Eggs", Qty: 3, Unit: "pcs"}}, got.Ingredients)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, "Mix eggs and cheese", got.Steps[1].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeCache_GetRecipe_NotCached(t *testing.T) {
	db, mock := newMockDB(t)
	cache := NewRecipeCache(db, logger.Nop())

	mock.ExpectQuery("SELECT(.|\n)+FROM recipes").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(recipeColumns))

	_, err := cache.GetRecipe(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrRecipeNotCached)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeCache_ListRecipes(t *testing.T) {
	db, mock := newMockDB(t)
	cache := NewRecipeCache(db, logger.Nop())

	rows := sqlmock.NewRows(recipeColumns).
		AddRow("r-2", "u-2", "Ramen", "", "Japanese", "Hard", 30, 60, 2, "[]", "[]", "", "").
		AddRow("r-1", "u-1", "Carbonara", "", "Italian", "Medium", 15, 20, 4, "[]", "[]", "", "")
	mock.ExpectQuery("SELECT(.|\n)+FROM recipes").
		WillReturnRows(rows)

	got, err := cache.ListRecipes(context.Background(), models.RecipeFilter{})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ramen", got[0].Title)
	assert.Equal(t, "Carbonara", got[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeCache_DeleteRecipe(t *testing.T) {
	db, mock := newMockDB(t)
	cache := NewRecipeCache(db, logger.Nop())

	mock.ExpectExec("DELETE FROM recipes WHERE recipe_id").
		WithArgs("r-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, cache.DeleteRecipe(context.Background(), "r-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeCache_Purge(t *testing.T) {
	db, mock := newMockDB(t)
	cache := NewRecipeCache(db, logger.Nop())

	cutoff := time.Now().Add(-24 * time.Hour)
	mock.ExpectExec("DELETE FROM recipes WHERE fetched_at").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, cache.Purge(context.Background(), cutoff))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildListRecipesQuery_AppliesFilters(t *testing.T) {
	query, args, err := buildListRecipesQuery(models.RecipeFilter{
		Query:      "pasta",
		Cuisine:    "Italian",
		Difficulty: "Medium",
		MaxTimeMin: 45,
		Skip:       10,
		Limit:      5,
	})

	require.NoError(t, err)
	assert.Contains(t, query, "title LIKE ?")
	assert.Contains(t, query, "description LIKE ?")
	assert.Contains(t, query, "cuisine_type = ?")
	assert.Contains(t, query, "difficulty = ?")
	assert.Contains(t, query, "prep_time_min + cook_time_min <= ?")
	assert.Contains(t, query, "LIMIT 5")
	assert.Contains(t, query, "OFFSET 10")
	assert.Equal(t, []any{"%pasta%", "%pasta%", "Italian", "Medium", 45}, args)
}

func TestBuildListRecipesQuery_NoFilters(t *testing.T) {
	query, args, err := buildListRecipesQuery(models.RecipeFilter{})

	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY fetched_at DESC")
	assert.Empty(t, args)
}
