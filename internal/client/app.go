// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/nroshal/tastebook/internal/adapter"
	"github.com/nroshal/tastebook/internal/config"
	"github.com/nroshal/tastebook/internal/logger"
	"github.com/nroshal/tastebook/internal/service"
	"github.com/nroshal/tastebook/internal/session"
	"github.com/nroshal/tastebook/internal/store"
	"github.com/nroshal/tastebook/internal/tui"
	"github.com/nroshal/tastebook/internal/workers"
	"github.com/nroshal/tastebook/models"
)

// App is the assembled client application. It owns the session store, the
// session watcher, the local cache and the terminal UI.
type App struct {
	session *session.Store
	watcher *session.Watcher
	jobs    *workers.Workers
	ui      *tui.TUI
	logger  *logger.Logger
}

// NewApp wires the full client from configuration: credential files under the
// state directory, the session store on top of them, a watcher bridging
// writes made by other processes, the SQLite recipe cache, the HTTP server
// adapter and the TUI.
func NewApp(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	creds := session.NewFileCredentialStore(cfg.Storage.StateDir, log)
	sessionStore := session.NewStore(creds, log)

	// The watcher is optional: without it the client still works, it just
	// stops observing credential writes made by other processes.
	watcher, err := session.NewWatcher(sessionStore, cfg.Storage.StateDir, log)
	if err != nil {
		log.Warn().Err(err).Str("func", "NewApp").Msg("session watcher unavailable")
		watcher = nil
	}

	localStore, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Server.BaseURL,
		Timeout: cfg.Server.RequestTimeout,
	}, sessionStore)

	services := service.NewClientServices(sessionStore, localStore, serverAdapter, log)
	ui := tui.New(services, sessionStore, cfg.Server.BaseURL, buildInfo, log)

	jobs := workers.NewWorkers(
		workers.NewPendingFlushWorker(services.CookingService, 0, log),
	)

	return &App{
		session: sessionStore,
		watcher: watcher,
		jobs:    jobs,
		ui:      ui,
		logger:  log,
	}, nil
}

// Run starts the session watcher and blocks in the terminal UI until the
// user quits or the context is canceled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.watcher != nil {
		go a.watcher.Run(ctx)
	}
	a.jobs.Run(ctx)

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Str("func", "App.Run").Msg("user quit")
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}

	return nil
}
