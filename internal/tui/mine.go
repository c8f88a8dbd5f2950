package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nroshal/tastebook/internal/service"
	"github.com/nroshal/tastebook/models"
)

// MyRecipesModel lists the recipes authored by the signed-in account and is
// the entry point for creating, editing and deleting them. Deletion asks
// for confirmation first.
type MyRecipesModel struct {
	ctx     context.Context
	recipes service.ClientRecipeService

	items      []models.Recipe
	idx        int
	loading    bool
	spinner    spinner.Model
	confirming bool
	status     string
	errMsg     string
}

func NewMyRecipesModel(ctx context.Context, recipes service.ClientRecipeService) *MyRecipesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &MyRecipesModel{ctx: ctx, recipes: recipes, spinner: s}
}

func (m *MyRecipesModel) Init() tea.Cmd {
	m.loading = true
	m.confirming = false
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *MyRecipesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case myRecipesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.recipes
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case recipeDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Recipe deleted"
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad(), cmdClearStatus())
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		switch keyMsg.String() {
		case "y":
			m.confirming = false
			if m.idx < 0 || m.idx >= len(m.items) {
				return m, nil
			}
			return m, m.cmdDelete(m.items[m.idx].ID)
		case "n", "esc":
			m.confirming = false
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		if m.idx < 0 || m.idx >= len(m.items) {
			return m, nil
		}
		recipeID := m.items[m.idx].ID
		return m, func() tea.Msg {
			return NavigateTo{Page: "detail", Payload: openRecipeMsg{recipeID: recipeID, from: "mine"}}
		}
	case "a":
		return m, func() tea.Msg {
			return NavigateTo{Page: "form"}
		}
	case "e":
		if m.idx < 0 || m.idx >= len(m.items) {
			return m, nil
		}
		recipe := m.items[m.idx]
		return m, func() tea.Msg {
			return NavigateTo{Page: "form", Payload: editRecipeMsg{recipe: recipe}}
		}
	case "d":
		if m.idx >= 0 && m.idx < len(m.items) {
			m.confirming = true
		}
	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	}

	return m, nil
}

func (m *MyRecipesModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case len(m.items) == 0:
		b.WriteString("You have not published any recipes yet\n")
	default:
		for i, recipe := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-40s %-12s %s\n",
				cursor,
				fitText(recipe.Title, 40),
				fitText(recipe.CuisineType, 12),
				recipe.Difficulty,
			))
		}
	}

	if m.confirming && m.idx >= 0 && m.idx < len(m.items) {
		b.WriteString("\nDelete \"")
		b.WriteString(m.items[m.idx].Title)
		b.WriteString("\"? (y/n)")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("MY RECIPES", strings.TrimRight(b.String(), "\n"),
		"enter: open │ a: add │ e: edit │ d: delete │ r: refresh │ esc: menu")
}

func (m *MyRecipesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	recipes := m.recipes

	return func() tea.Msg {
		mine, err := recipes.MyRecipes(ctx)
		return myRecipesLoadedMsg{recipes: mine, err: err}
	}
}

func (m *MyRecipesModel) cmdDelete(recipeID string) tea.Cmd {
	ctx := m.ctx
	recipes := m.recipes

	return func() tea.Msg {
		err := recipes.Delete(ctx, recipeID)
		return recipeDeletedMsg{err: err}
	}
}
