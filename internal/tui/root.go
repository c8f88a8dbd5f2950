// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nroshal/tastebook/internal/session"
	"github.com/nroshal/tastebook/models"
)

// RootModel is the TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
//
// It also owns the session line shown above every page. The line is
// re-rendered from a fresh store snapshot whenever a sessionChangedMsg
// arrives, so logins in another process show up without any page-side code.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	session   *session.Store
	snap      *session.Snapshot
	buildInfo models.AppBuildInfo

	quitByUser    bool
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, sessionStore *session.Store, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		session:   sessionStore,
		snap:      sessionStore.Snapshot(),
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Pull a fresh snapshot on every change signal. The signal itself
	// carries nothing; a snapshot identical to the last one means the
	// change was our own write echoed back.
	if _, ok := msg.(sessionChangedMsg); ok {
		r.snap = r.session.Snapshot()
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("Tastebook", "", "")
	}
	return r.sessionLine() + "\n" + r.current.View()
}

func (r RootModel) sessionLine() string {
	if !r.snap.LoggedIn() {
		return sessionStyle.Render("not signed in")
	}
	if r.snap.User == nil {
		return sessionStyle.Render("signed in")
	}
	return sessionStyle.Render("signed in as " + r.snap.User.Username)
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
