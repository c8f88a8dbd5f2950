// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nroshal/tastebook/internal/adapter"
	"github.com/nroshal/tastebook/internal/service"
	"github.com/nroshal/tastebook/internal/session"
)

// ProfileModel renders the signed-in profile straight from the session
// snapshot, so edits made by another process of the same account show up
// after the change signal without any page-side refresh. The edit mode
// pushes changes through the service layer, which updates the snapshot.
type ProfileModel struct {
	ctx     context.Context
	auth    service.ClientAuthService
	session *session.Store

	editing    bool
	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string
}

func NewProfileModel(ctx context.Context, auth service.ClientAuthService, sessionStore *session.Store) *ProfileModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 50
	usernameInput.Width = 40

	bioInput := textinput.New()
	bioInput.Placeholder = "bio"
	bioInput.CharLimit = 500
	bioInput.Width = 40

	return &ProfileModel{
		ctx:     ctx,
		auth:    auth,
		session: sessionStore,
		inputs:  []textinput.Model{usernameInput, bioInput},
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.editing = false
	m.status = ""
	m.errMsg = ""
	// Refresh from the server in the background; the session snapshot
	// updates (and signals) if anything changed.
	return m.cmdRefresh()
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.editing = false
		m.errMsg = ""
		m.status = "Profile saved"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case sessionChangedMsg:
		// View pulls a fresh snapshot; nothing to store here.
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		switch keyMsg.String() {
		case "esc":
			m.editing = false
			m.submitting = false
			m.errMsg = ""
			return m, nil
		case "tab", "shift+tab":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			m.inputs[m.focus].Focus()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			username := strings.TrimSpace(m.inputs[0].Value())
			if username == "" {
				m.errMsg = "Username is required"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSave(adapter.ProfileUpdate{
				Username: username,
				Bio:      strings.TrimSpace(m.inputs[1].Value()),
			})
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case "e":
		snap := m.session.Snapshot()
		if snap.User == nil {
			return m, nil
		}
		m.editing = true
		m.inputs[0].SetValue(snap.User.Username)
		m.inputs[1].SetValue(snap.User.Bio)
		m.focus = 0
		m.inputs[0].Focus()
		m.inputs[1].Blur()
		return m, textinput.Blink
	case "r":
		return m, m.cmdRefresh()
	}

	return m, nil
}

func (m *ProfileModel) View() string {
	snap := m.session.Snapshot()
	if !snap.LoggedIn() {
		return renderPage("PROFILE", "Not signed in", "esc: menu")
	}

	var b strings.Builder

	if m.editing {
		b.WriteString("Field     │ Value\n")
		b.WriteString("──────────┼────────────────────────────────────────────\n")
		b.WriteString("Username  │ [")
		b.WriteString(m.inputs[0].View())
		b.WriteString("]\n")
		b.WriteString("Bio       │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\n")
		if m.submitting {
			b.WriteString("\n[Saving...]\n")
		} else {
			b.WriteString("\n[Save]\n")
		}
	} else if snap.User == nil {
		// Token present but the stored profile could not be parsed.
		b.WriteString("Signed in, profile unavailable\n")
	} else {
		b.WriteString("Username:  " + valueOrDash(snap.User.Username) + "\n")
		b.WriteString("Email:     " + valueOrDash(snap.User.Email) + "\n")
		b.WriteString("Bio:       " + valueOrDash(snap.User.Bio) + "\n")
		if expiry, ok := adapter.TokenExpiry(*snap.Token); ok {
			b.WriteString("Session:   valid until " + expiry.Local().Format("2006-01-02 15:04") + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
	}

	hotKeys := "e: edit │ r: refresh │ esc: menu"
	if m.editing {
		hotKeys = "enter: save │ tab: next field │ esc: cancel"
	}
	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *ProfileModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		// Errors here are non-fatal: the snapshot keeps the last known
		// profile, which is what the page renders anyway.
		_, _ = auth.RefreshProfile(ctx)
		return sessionChangedMsg{}
	}
}

func (m *ProfileModel) cmdSave(update adapter.ProfileUpdate) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.UpdateProfile(ctx, update)
		return profileSavedMsg{user: user, err: err}
	}
}
