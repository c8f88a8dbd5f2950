package store

import "errors"

// ErrRecipeNotCached is returned by [RecipeCache.GetRecipe] when the recipe
// has never been fetched (or was evicted).
var ErrRecipeNotCached = errors.New("recipe not in local cache")
