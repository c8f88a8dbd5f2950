// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nroshal/tastebook/internal/service"
	"github.com/nroshal/tastebook/internal/session"
	"github.com/nroshal/tastebook/models"
)

// DetailModel shows one recipe with its ingredients and walkthrough. From
// here the user can start cooking, copy a share link, or (for own recipes)
// jump to the edit form.
type DetailModel struct {
	ctx      context.Context
	recipes  service.ClientRecipeService
	session  *session.Store
	shareURL string

	recipe  models.Recipe
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string
	from    string
}

func NewDetailModel(ctx context.Context, recipes service.ClientRecipeService, sessionStore *session.Store, shareURL string) *DetailModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &DetailModel{
		ctx:      ctx,
		recipes:  recipes,
		session:  sessionStore,
		shareURL: strings.TrimRight(shareURL, "/"),
		from:     "list",
	}
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openRecipeMsg:
		m.loading = true
		m.status = ""
		m.errMsg = ""
		if msg.from != "" {
			m.from = msg.from
		}
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad(msg.recipeID))
	case recipeLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.recipe = msg.recipe
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Share link copied!"
		return m, cmdClearStatus()
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

	switch keyMsg.String() {
	case "esc":
		from := m.from
		return m, func() tea.Msg { return NavigateTo{Page: from} }
	case "s":
		if m.recipe.ID == "" || !m.session.Snapshot().LoggedIn() {
			m.errMsg = "Sign in to start cooking"
			return m, nil
		}
		recipe := m.recipe
		return m, func() tea.Msg {
			return NavigateTo{Page: "cook", Payload: cookRecipeMsg{recipe: recipe}}
		}
	case "y":
		if m.recipe.ID == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(fmt.Sprintf("%s/recipes/%s", m.shareURL, m.recipe.ID))
	case "e":
		if !m.ownRecipe() {
			return m, nil
		}
		recipe := m.recipe
		return m, func() tea.Msg {
			return NavigateTo{Page: "form", Payload: editRecipeMsg{recipe: recipe}}
		}
	}

	return m, nil
}

func (m *DetailModel) View() string {
	if m.loading {
		return renderPage("RECIPE", m.spinner.View()+" Loading...", "esc: back")
	}
	if m.recipe.ID == "" {
		body := "No recipe loaded"
		if m.errMsg != "" {
			body += "\n\nError: " + m.errMsg
		}
		return renderPage("RECIPE", body, "esc: back")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.recipe.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s · %s · prep %s · cook %s · serves %d\n",
		valueOrDash(m.recipe.CuisineType),
		valueOrDash(m.recipe.Difficulty),
		formatMinutes(m.recipe.PrepTimeMin),
		formatMinutes(m.recipe.CookTimeMin),
		m.recipe.Servings,
	))

	if m.recipe.Description != "" {
		b.WriteString("\n")
		b.WriteString(m.recipe.Description)
		b.WriteString("\n")
	}

	b.WriteString("\nIngredients:\n")
	if len(m.recipe.Ingredients) == 0 {
		b.WriteString("  -\n")
	}
	for _, ing := range m.recipe.Ingredients {
		b.WriteString(fmt.Sprintf("  • %s — %g %s\n", ing.Name, ing.Qty, ing.Unit))
	}

	b.WriteString("\nSteps:\n")
	if len(m.recipe.Steps) == 0 {
		b.WriteString("  -\n")
	}
	for i, step := range m.recipe.Steps {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step.Text))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
	}

	hotKeys := "s: start cooking │ y: copy link │ esc: back"
	if m.ownRecipe() {
		hotKeys = "s: start cooking │ e: edit │ y: copy link │ esc: back"
	}

	return renderPage("RECIPE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *DetailModel) ownRecipe() bool {
	snap := m.session.Snapshot()
	return snap.User != nil && m.recipe.UserID == snap.User.ID
}

func (m *DetailModel) cmdLoad(recipeID string) tea.Cmd {
	ctx := m.ctx
	recipes := m.recipes

	return func() tea.Msg {
		recipe, err := recipes.Get(ctx, recipeID)
		return recipeLoadedMsg{recipe: recipe, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
