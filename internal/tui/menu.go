package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nroshal/tastebook/internal/service"
	"github.com/nroshal/tastebook/internal/session"
)

type menuItem struct {
	label string
	page  string
}

// MenuModel is the landing page. Its entries depend on whether a session is
// open, so it re-derives them from a fresh snapshot on every change signal.
type MenuModel struct {
	session *session.Store
	auth    service.ClientAuthService

	items  []menuItem
	idx    int
	status string
}

func NewMenuModel(sessionStore *session.Store, auth service.ClientAuthService) *MenuModel {
	m := &MenuModel{session: sessionStore, auth: auth}
	m.rebuildItems()
	return m
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterSuccessNotice:
		if msg.Username != "" {
			m.status = "Welcome to Tastebook, " + msg.Username + "!"
		} else {
			m.status = "Account created"
		}
		m.rebuildItems()
		return m, nil
	case sessionChangedMsg:
		m.rebuildItems()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		item := m.items[m.idx]
		if item.page == "logout" {
			m.status = ""
			return m, m.cmdLogout()
		}
		m.status = ""
		page := item.page
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	case "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	labelColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.label); w > labelColWidth {
			labelColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-4s │ %-*s\n", "ID", labelColWidth, "Action"))
	b.WriteString(strings.Repeat("─", 4))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", labelColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%-4s │ %-*s\n", fmt.Sprintf("%s %d", cursor, i+1), labelColWidth, item.label))
	}

	return renderPage("TASTEBOOK", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version │ q: quit")
}

func (m *MenuModel) rebuildItems() {
	if m.session.Snapshot().LoggedIn() {
		m.items = []menuItem{
			{label: "Browse recipes", page: "list"},
			{label: "My recipes", page: "mine"},
			{label: "Cooking history", page: "history"},
			{label: "Profile", page: "profile"},
			{label: "Sign out", page: "logout"},
		}
	} else {
		m.items = []menuItem{
			{label: "Browse recipes", page: "list"},
			{label: "Sign in", page: "login"},
			{label: "Create account", page: "register"},
		}
	}
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
}

func (m *MenuModel) cmdLogout() tea.Cmd {
	auth := m.auth
	return func() tea.Msg {
		// Clearing the session emits a change signal; the router and this
		// menu both re-pull on it.
		_ = auth.Logout()
		return sessionChangedMsg{}
	}
}
