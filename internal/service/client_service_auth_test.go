package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nroshal/tastebook/internal/adapter"
	"github.com/nroshal/tastebook/internal/logger"
	"github.com/nroshal/tastebook/internal/mock"
	"github.com/nroshal/tastebook/internal/session"
	"github.com/nroshal/tastebook/models"
)

func newAuthServiceWithMocks(t *testing.T) (ClientAuthService, *session.Store, *mock.MockServerAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	sessionStore := session.NewStore(session.NewFileCredentialStore(t.TempDir(), logger.Nop()), logger.Nop())

	return NewClientAuthService(sessionStore, mockAdapter, logger.Nop()), sessionStore, mockAdapter
}

func TestClientAuthService_Login(t *testing.T) {
	svc, sessionStore, mockAdapter := newAuthServiceWithMocks(t)

	mockAdapter.EXPECT().
		Login(gomock.Any(), "ada@example.com", "hunter2").
		Return(models.AuthResponse{
			Token: "jwt-token",
			User:  models.User{ID: "u-1", Username: "ada", Email: "ada@example.com"},
		}, nil)

	err := svc.Login(context.Background(), "ada@example.com", "hunter2")

	require.NoError(t, err)
	snap := sessionStore.Snapshot()
	require.True(t, snap.LoggedIn())
	assert.Equal(t, "jwt-token", *snap.Token)
	assert.Equal(t, "ada", snap.User.Username)
}

func TestClientAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, sessionStore, mockAdapter := newAuthServiceWithMocks(t)

	mockAdapter.EXPECT().
		Login(gomock.Any(), "ada@example.com", "wrong").
		Return(models.AuthResponse{}, adapter.ErrUnauthorized)

	err := svc.Login(context.Background(), "ada@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, sessionStore.Snapshot().LoggedIn())
}

func TestClientAuthService_Register(t *testing.T) {
	svc, sessionStore, mockAdapter := newAuthServiceWithMocks(t)

	req := adapter.RegisterRequest{Username: "ada", Email: "ada@example.com", Password: "hunter2"}
	mockAdapter.EXPECT().
		Register(gomock.Any(), req).
		Return(models.AuthResponse{
			Token: "fresh-token",
			User:  models.User{ID: "u-1", Username: "ada"},
		}, nil)

	err := svc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, sessionStore.Snapshot().LoggedIn())
}

func TestClientAuthService_Register_AccountExists(t *testing.T) {
	svc, _, mockAdapter := newAuthServiceWithMocks(t)

	mockAdapter.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, adapter.ErrConflict)

	err := svc.Register(context.Background(), adapter.RegisterRequest{Email: "taken@example.com"})

	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestClientAuthService_Logout(t *testing.T) {
	svc, sessionStore, _ := newAuthServiceWithMocks(t)

	sessionStore.Commit("jwt-token", models.User{ID: "u-1", Username: "ada"})
	require.True(t, sessionStore.Snapshot().LoggedIn())

	require.NoError(t, svc.Logout())
	assert.False(t, sessionStore.Snapshot().LoggedIn())
}

func TestClientAuthService_RefreshProfile(t *testing.T) {
	svc, sessionStore, mockAdapter := newAuthServiceWithMocks(t)

	sessionStore.Commit("jwt-token", models.User{ID: "u-1", Username: "ada"})
	mockAdapter.EXPECT().
		Me(gomock.Any()).
		Return(models.User{ID: "u-1", Username: "ada", Bio: "home cook"}, nil)

	user, err := svc.RefreshProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "home cook", user.Bio)
	assert.Equal(t, "home cook", sessionStore.Snapshot().User.Bio)
	// Token survives a profile refresh.
	assert.Equal(t, "jwt-token", *sessionStore.Snapshot().Token)
}

func TestClientAuthService_RefreshProfile_NotLoggedIn(t *testing.T) {
	svc, _, _ := newAuthServiceWithMocks(t)

	_, err := svc.RefreshProfile(context.Background())

	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientAuthService_UpdateProfile(t *testing.T) {
	svc, sessionStore, mockAdapter := newAuthServiceWithMocks(t)

	sessionStore.Commit("jwt-token", models.User{ID: "u-1", Username: "ada"})
	update := adapter.ProfileUpdate{Username: "ada_l", Bio: "pastry"}
	mockAdapter.EXPECT().
		UpdateMe(gomock.Any(), update).
		Return(models.User{ID: "u-1", Username: "ada_l", Bio: "pastry"}, nil)

	user, err := svc.UpdateProfile(context.Background(), update)

	require.NoError(t, err)
	assert.Equal(t, "ada_l", user.Username)
	assert.Equal(t, "ada_l", sessionStore.Snapshot().User.Username)
}

func TestClientAuthService_UpdateProfile_ServerError(t *testing.T) {
	svc, sessionStore, mockAdapter := newAuthServiceWithMocks(t)

	sessionStore.Commit("jwt-token", models.User{ID: "u-1", Username: "ada"})
	mockAdapter.EXPECT().
		UpdateMe(gomock.Any(), gomock.Any()).
		Return(models.User{}, errors.New("connection refused"))

	_, err := svc.UpdateProfile(context.Background(), adapter.ProfileUpdate{Username: "ada_l"})

	require.Error(t, err)
	// Cached user keeps the pre-update value.
	assert.Equal(t, "ada", sessionStore.Snapshot().User.Username)
}
