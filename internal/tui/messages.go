package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nroshal/tastebook/models"
)

// NavigateTo switches the active page of [RootModel]. An optional Payload is
// delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// sessionChangedMsg is injected into the program whenever the session store
// signals a change. It carries no data; pages re-pull the snapshot.
type sessionChangedMsg struct{}

// RegisterSuccessNotice is passed back to the menu after a successful
// registration.
type RegisterSuccessNotice struct {
	Username string
}

type authResultMsg struct {
	err error
}

type recipesLoadedMsg struct {
	resp models.RecipeListResponse
	err  error
}

type myRecipesLoadedMsg struct {
	recipes []models.Recipe
	err     error
}

type recipeLoadedMsg struct {
	recipe models.Recipe
	err    error
}

// openRecipeMsg tells the detail page which recipe to load. A non-empty
// from names the page esc returns to.
type openRecipeMsg struct {
	recipeID string
	from     string
}

// editRecipeMsg tells the form page to pre-fill from an existing recipe.
type editRecipeMsg struct {
	recipe models.Recipe
}

// cookRecipeMsg tells the cooking page which recipe to walk through.
type cookRecipeMsg struct {
	recipe models.Recipe
}

type recipeSavedMsg struct {
	recipe models.Recipe
	err    error
}

type recipeDeletedMsg struct {
	err error
}

type historyLoadedMsg struct {
	records []models.CookingRecord
	flushed int
	err     error
}

type cookingStartedMsg struct {
	err error
}

type cookingCompletedMsg struct {
	err error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type cookTickMsg time.Time
