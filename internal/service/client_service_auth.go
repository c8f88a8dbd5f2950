// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package service

import (
	"context"
	"fmt"

	"github.com/nroshal/tastebook/internal/adapter"
	"github.com/nroshal/tastebook/internal/logger"
	"github.com/nroshal/tastebook/internal/session"
	"github.com/nroshal/tastebook/models"
)

type clientAuthService struct {
	session *session.Store
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(sessionStore *session.Store, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{session: sessionStore, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, req adapter.RegisterRequest) error {
	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		a.logger.Err(err).
			Str("func", "clientAuthService.Register").
			Str("email", req.Email).
			Msg("registration failed")
		return fmt.Errorf("registration failed: %w", mapAdapterError(err))
	}

	a.session.Commit(resp.Token, resp.User)

	return nil
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) error {
	resp, err := a.adapter.Login(ctx, email, password)
	if err != nil {
		a.logger.Err(err).
			Str("func", "clientAuthService.Login").
			Str("email", email).
			Msg("login failed")
		return fmt.Errorf("login failed: %w", mapAdapterError(err))
	}

	a.session.Commit(resp.Token, resp.User)

	return nil
}

func (a *clientAuthService) Logout() error {
	a.session.Clear()
	return nil
}

func (a *clientAuthService) RefreshProfile(ctx context.Context) (models.User, error) {
	if !a.session.Snapshot().LoggedIn() {
		return models.User{}, ErrNotLoggedIn
	}

	user, err := a.adapter.Me(ctx)
	if err != nil {
		a.logger.Err(err).
			Str("func", "clientAuthService.RefreshProfile").
			Msg("profile refresh failed")
		return models.User{}, fmt.Errorf("profile refresh failed: %w", mapAdapterError(err))
	}

	a.session.SetUser(user)

	return user, nil
}

func (a *clientAuthService) UpdateProfile(ctx context.Context, update adapter.ProfileUpdate) (models.User, error) {
	if !a.session.Snapshot().LoggedIn() {
		return models.User{}, ErrNotLoggedIn
	}

	user, err := a.adapter.UpdateMe(ctx, update)
	if err != nil {
		a.logger.Err(err).
			Str("func", "clientAuthService.UpdateProfile").
			Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", mapAdapterError(err))
	}

	a.session.SetUser(user)

	return user, nil
}
