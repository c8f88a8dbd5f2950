// Package tui implements the terminal user interface of the Tastebook
// client on Bubble Tea. Pages are independent models routed by [RootModel];
// cross-page switches travel as [NavigateTo] messages.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nroshal/tastebook/internal/logger"
	"github.com/nroshal/tastebook/internal/service"
	"github.com/nroshal/tastebook/internal/session"
	"github.com/nroshal/tastebook/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	session   *session.Store
	shareURL  string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, sessionStore *session.Store, shareURL string, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		session:   sessionStore,
		shareURL:  shareURL,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits. Session change signals (including those
// raised by other processes through the state watcher) are forwarded into
// the program as payload-free messages; every interested page re-pulls the
// snapshot on receipt. The forwarding goes through a [session.Binding], so
// signals that did not change the snapshot pointer never wake the program.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(t.session, t.services.AuthService),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
		"list":     NewListModel(ctx, t.services.RecipeService),
		"mine":     NewMyRecipesModel(ctx, t.services.RecipeService),
		"detail":   NewDetailModel(ctx, t.services.RecipeService, t.session, t.shareURL),
		"form":     NewRecipeFormModel(ctx, t.services.RecipeService),
		"cook":     NewCookModel(ctx, t.services.CookingService),
		"history":  NewHistoryModel(ctx, t.services.CookingService),
		"profile":  NewProfileModel(ctx, t.services.AuthService, t.session),
	}

	root := NewRootModel(pages, "menu", t.session, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	binding := session.Bind(t.session, func(*session.Snapshot) {
		program.Send(sessionChangedMsg{})
	})
	defer binding.Close()

	finalModel, err := program.Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui terminated with error")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
