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

// HistoryModel shows the account's cooking history. Opening the page first
// flushes any cooking events queued while offline, so the listing reflects
// them.
type HistoryModel struct {
	ctx     context.Context
	cooking service.ClientCookingService

	records []models.CookingRecord
	loading bool
	spinner spinner.Model
	flushed int
	errMsg  string
}

func NewHistoryModel(ctx context.Context, cooking service.ClientCookingService) *HistoryModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &HistoryModel{ctx: ctx, cooking: cooking, spinner: s}
}

func (m *HistoryModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.flushed = msg.flushed
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.records = msg.records
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
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	}

	return m, nil
}

func (m *HistoryModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case len(m.records) == 0:
		b.WriteString("No cooking sessions yet\n")
	default:
		for _, record := range m.records {
			status := "in progress"
			if record.Status == models.CookingCompleted {
				status = "completed"
			}
			b.WriteString(fmt.Sprintf("%-40s %-12s %s\n",
				fitText(record.RecipeTitle, 40),
				status,
				record.StartedAt,
			))
		}
	}

	if m.flushed > 0 {
		b.WriteString(fmt.Sprintf("\nSynced %d offline cooking event(s)", m.flushed))
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("COOKING HISTORY", strings.TrimRight(b.String(), "\n"), "r: refresh │ esc: menu")
}

func (m *HistoryModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	cooking := m.cooking

	return func() tea.Msg {
		// Replay queued events first so they appear in the listing.
		flushed, _ := cooking.FlushPending(ctx)

		records, err := cooking.History(ctx)
		return historyLoadedMsg{records: records, flushed: flushed, err: err}
	}
}
