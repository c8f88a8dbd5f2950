// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nroshal/tastebook/internal/service"
	"github.com/nroshal/tastebook/models"
)

// CookModel is the step-by-step cooking walkthrough. Entering the page
// records a start event, finishing records a complete event; both survive a
// dead server by being queued locally. A ticking clock shows elapsed time.
type CookModel struct {
	ctx     context.Context
	cooking service.ClientCookingService

	recipe    models.Recipe
	step      int
	startedAt time.Time
	elapsed   time.Duration
	active    bool
	done      bool
	errMsg    string
}

func NewCookModel(ctx context.Context, cooking service.ClientCookingService) *CookModel {
	return &CookModel{ctx: ctx, cooking: cooking}
}

func (m *CookModel) Init() tea.Cmd {
	return nil
}

func (m *CookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cookRecipeMsg:
		m.recipe = msg.recipe
		m.step = 0
		m.startedAt = time.Now()
		m.elapsed = 0
		m.active = true
		m.done = false
		m.errMsg = ""
		return m, tea.Batch(m.cmdStart(), m.tick())
	case cookingStartedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		return m, nil
	case cookingCompletedMsg:
		m.active = false
		m.done = true
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		return m, nil
	case cookTickMsg:
		if !m.active {
			return m, nil
		}
		m.elapsed = time.Since(m.startedAt)
		return m, m.tick()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.active = false
		return m, func() tea.Msg { return NavigateTo{Page: "detail", Payload: openRecipeMsg{recipeID: m.recipe.ID}} }
	case "right", "l", "enter":
		if m.step < len(m.recipe.Steps)-1 {
			m.step++
		}
	case "left", "h":
		if m.step > 0 {
			m.step--
		}
	case "c":
		if m.active {
			return m, m.cmdComplete()
		}
	}

	return m, nil
}

func (m *CookModel) View() string {
	if m.recipe.ID == "" {
		return renderPage("COOKING", "Nothing is cooking", "esc: back")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.recipe.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Elapsed: %s\n\n", formatElapsed(m.elapsed)))

	if len(m.recipe.Steps) == 0 {
		b.WriteString("This recipe has no steps\n")
	} else {
		b.WriteString(fmt.Sprintf("Step %d of %d\n\n", m.step+1, len(m.recipe.Steps)))
		b.WriteString(m.recipe.Steps[m.step].Text)
		b.WriteString("\n")
	}

	if m.done {
		b.WriteString("\nDone! Your cooking history has been updated.")
	}
	if m.errMsg != "" {
		b.WriteString("\nWarning: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("COOKING", strings.TrimRight(b.String(), "\n"),
		"←/→: steps │ c: finish │ esc: back to recipe")
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	min := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, min, sec)
	}
	return fmt.Sprintf("%02d:%02d", min, sec)
}

func (m *CookModel) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return cookTickMsg(t)
	})
}

func (m *CookModel) cmdStart() tea.Cmd {
	ctx := m.ctx
	cooking := m.cooking
	recipe := m.recipe

	return func() tea.Msg {
		err := cooking.Start(ctx, recipe.ID, recipe.Title)
		return cookingStartedMsg{err: err}
	}
}

func (m *CookModel) cmdComplete() tea.Cmd {
	ctx := m.ctx
	cooking := m.cooking
	recipe := m.recipe

	return func() tea.Msg {
		err := cooking.Complete(ctx, recipe.ID, recipe.Title)
		return cookingCompletedMsg{err: err}
	}
}
