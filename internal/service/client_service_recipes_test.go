package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nroshal/tastebook/internal/adapter"
	"github.com/nroshal/tastebook/internal/logger"
	"github.com/nroshal/tastebook/internal/mock"
	"github.com/nroshal/tastebook/internal/store"
	"github.com/nroshal/tastebook/internal/validators"
	"github.com/nroshal/tastebook/models"
)

var errConnRefused = errors.New("dial tcp 127.0.0.1:8000: connect: connection refused")

func validRecipeInput(title string) models.RecipeInput {
	return models.RecipeInput{
		Title:       title,
		Difficulty:  "Medium",
		PrepTimeMin: 10,
		CookTimeMin: 20,
		Servings:    2,
		Ingredients: []models.Ingredient{{Name: "Spaghetti", Qty: 200, Unit: "g"}},
		Steps:       []models.Step{{Text: "Boil the pasta"}},
	}
}

func newRecipeServiceWithMocks(t *testing.T) (ClientRecipeService, *mock.MockServerAdapter, *mock.MockRecipeCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCache := mock.NewMockRecipeCache(ctrl)
	storages := &store.ClientStorages{Recipes: mockCache}

	return NewClientRecipeService(storages, mockAdapter, logger.Nop()), mockAdapter, mockCache
}

func TestClientRecipeService_List_RefreshesCache(t *testing.T) {
	svc, mockAdapter, mockCache := newRecipeServiceWithMocks(t)

	filter := models.RecipeFilter{Cuisine: "Italian", Limit: 20}
	carbonara := models.Recipe{ID: "r-1", Title: "Carbonara", CuisineType: "Italian"}
	mockAdapter.EXPECT().
		ListRecipes(gomock.Any(), filter).
		Return(models.RecipeListResponse{Items: []models.Recipe{carbonara}, Total: 1, Limit: 20}, nil)
	mockCache.EXPECT().
		SaveRecipes(gomock.Any(), carbonara).
		Return(nil)

	resp, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Carbonara", resp.Items[0].Title)
}

func TestClientRecipeService_List_FallsBackToCacheWhenOffline(t *testing.T) {
	svc, mockAdapter, mockCache := newRecipeServiceWithMocks(t)

	filter := models.RecipeFilter{Query: "pasta", Skip: 5, Limit: 10}
	mockAdapter.EXPECT().
		ListRecipes(gomock.Any(), filter).
		Return(models.RecipeListResponse{}, errConnRefused)
	mockCache.EXPECT().
		ListRecipes(gomock.Any(), filter).
		Return([]models.Recipe{{ID: "r-1", Title: "Carbonara"}}, nil)

	resp, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 5, resp.Skip)
	assert.Equal(t, 10, resp.Limit)
}

func TestClientRecipeService_List_CacheWriteFailureIsNotFatal(t *testing.T) {
	svc, mockAdapter, mockCache := newRecipeServiceWithMocks(t)

	mockAdapter.EXPECT().
		ListRecipes(gomock.Any(), gomock.Any()).
		Return(models.RecipeListResponse{Items: []models.Recipe{{ID: "r-1"}}, Total: 1}, nil)
	mockCache.EXPECT().
		SaveRecipes(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	resp, err := svc.List(context.Background(), models.RecipeFilter{})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestClientRecipeService_Get_FallsBackToCacheWhenOffline(t *testing.T) {
	svc, mockAdapter, mockCache := newRecipeServiceWithMocks(t)

	mockAdapter.EXPECT().
		GetRecipe(gomock.Any(), "r-1").
		Return(models.Recipe{}, errConnRefused)
	mockCache.EXPECT().
		GetRecipe(gomock.Any(), "r-1").
		Return(models.Recipe{ID: "r-1", Title: "Carbonara", Steps: []models.Step{{Text: "Boil pasta"}}}, nil)

	recipe, err := svc.Get(context.Background(), "r-1")

	require.NoError(t, err)
	assert.Equal(t, "Carbonara", recipe.Title)
	assert.Len(t, recipe.Steps, 1)
}

func TestClientRecipeService_Get_NotFoundAnywhere(t *testing.T) {
	svc, mockAdapter, mockCache := newRecipeServiceWithMocks(t)

	mockAdapter.EXPECT().
		GetRecipe(gomock.Any(), "ghost").
		Return(models.Recipe{}, errConnRefused)
	mockCache.EXPECT().
		GetRecipe(gomock.Any(), "ghost").
		Return(models.Recipe{}, store.ErrRecipeNotCached)

	_, err := svc.Get(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestClientRecipeService_Get_ServerNotFound(t *testing.T) {
	svc, mockAdapter, _ := newRecipeServiceWithMocks(t)

	mockAdapter.EXPECT().
		GetRecipe(gomock.Any(), "ghost").
		Return(models.Recipe{}, adapter.ErrNotFound)

	_, err := svc.Get(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestClientRecipeService_Update_NotAuthor(t *testing.T) {
	svc, mockAdapter, _ := newRecipeServiceWithMocks(t)

	mockAdapter.EXPECT().
		UpdateRecipe(gomock.Any(), "r-1", gomock.Any()).
		Return(models.Recipe{}, adapter.ErrForbidden)

	_, err := svc.Update(context.Background(), "r-1", validRecipeInput("Hijacked"))

	assert.ErrorIs(t, err, ErrNotRecipeAuthor)
}

func TestClientRecipeService_Update_RejectsInvalidInput(t *testing.T) {
	svc, _, _ := newRecipeServiceWithMocks(t)

	in := validRecipeInput("Carbonara")
	in.Difficulty = "Impossible"

	_, err := svc.Update(context.Background(), "r-1", in)

	assert.ErrorIs(t, err, validators.ErrInvalidDifficulty)
}

func TestClientRecipeService_Create_CachesResult(t *testing.T) {
	svc, mockAdapter, mockCache := newRecipeServiceWithMocks(t)

	in := validRecipeInput("Ramen")
	stored := models.Recipe{ID: "r-9", Title: "Ramen", Difficulty: "Medium"}
	mockAdapter.EXPECT().
		CreateRecipe(gomock.Any(), in).
		Return(stored, nil)
	mockCache.EXPECT().
		SaveRecipes(gomock.Any(), stored).
		Return(nil)

	recipe, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "r-9", recipe.ID)
}

func TestClientRecipeService_Create_RejectsInvalidInput(t *testing.T) {
	svc, _, _ := newRecipeServiceWithMocks(t)

	in := validRecipeInput("Ramen")
	in.Ingredients = nil

	_, err := svc.Create(context.Background(), in)

	assert.ErrorIs(t, err, validators.ErrNoIngredients)
}

func TestClientRecipeService_Delete_EvictsCache(t *testing.T) {
	svc, mockAdapter, mockCache := newRecipeServiceWithMocks(t)

	mockAdapter.EXPECT().DeleteRecipe(gomock.Any(), "r-1").Return(nil)
	mockCache.EXPECT().DeleteRecipe(gomock.Any(), "r-1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "r-1"))
}

func TestClientRecipeService_MyRecipes(t *testing.T) {
	svc, mockAdapter, mockCache := newRecipeServiceWithMocks(t)

	mine := []models.Recipe{{ID: "r-1", Title: "Carbonara"}, {ID: "r-2", Title: "Ramen"}}
	mockAdapter.EXPECT().MyRecipes(gomock.Any()).Return(mine, nil)
	mockCache.EXPECT().SaveRecipes(gomock.Any(), mine[0], mine[1]).Return(nil)

	got, err := svc.MyRecipes(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
