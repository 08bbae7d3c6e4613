// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/sec"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/users/auth"
)

// # Test Doubles

// fakeUserStore keeps accounts in memory.
type fakeUserStore struct {
	byID map[string]*auth.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byID: map[string]*auth.User{}}
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (*auth.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFoundMsg("User not found")
	}
	return user, nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	for _, user := range f.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperr.NotFoundMsg("User not found")
}

func (f *fakeUserStore) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	for _, user := range f.byID {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperr.NotFoundMsg("User not found")
}

func (f *fakeUserStore) Create(ctx context.Context, user *auth.User) error {
	f.byID[user.ID] = user
	return nil
}

// fakeSessionStore keeps refresh sessions in memory keyed by token hash.
type fakeSessionStore struct {
	byHash map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{byHash: map[string]string{}}
}

func (f *fakeSessionStore) Set(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	f.byHash[tokenHash] = userID
	return nil
}

func (f *fakeSessionStore) Get(ctx context.Context, tokenHash string) (string, error) {
	userID, ok := f.byHash[tokenHash]
	if !ok {
		return "", apperr.Unauthorized("Invalid or expired refresh token")
	}
	return userID, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, tokenHash string) error {
	delete(f.byHash, tokenHash)
	return nil
}

// fakeTokens signs predictable access tokens.
type fakeTokens struct{}

func (fakeTokens) GenerateAccessToken(userID, username string, timeToLive time.Duration) (string, error) {
	return "access-" + userID, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(users *fakeUserStore, sessions *fakeSessionStore) *auth.Service {
	return auth.NewService(users, sessions, fakeTokens{}, testLogger())
}

// registerUser enrolls a member directly for test setup.
func registerUser(t *testing.T, service *auth.Service) *auth.User {
	t.Helper()

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "vilian",
		Email:    "vilian@heroflicks.app",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return user
}

// # Registration Tests

/*
TestService_Register verifies enrollment and the uniqueness conflicts.
*/
func TestService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		users := newFakeUserStore()
		service := newService(users, newFakeSessionStore())

		user := registerUser(t, service)

		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "correct-horse", user.PasswordHash, "password must never be stored in clear")
		assert.True(t, sec.CheckPasswordHash("correct-horse", user.PasswordHash))
	})

	t.Run("duplicate_email", func(t *testing.T) {
		service := newService(newFakeUserStore(), newFakeSessionStore())
		registerUser(t, service)

		_, err := service.Register(context.Background(), auth.RegisterInput{
			Username: "someone-else",
			Email:    "vilian@heroflicks.app",
			Password: "another-pass",
		})

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "Email is already registered", ae.Message)
	})

	t.Run("duplicate_username", func(t *testing.T) {
		service := newService(newFakeUserStore(), newFakeSessionStore())
		registerUser(t, service)

		_, err := service.Register(context.Background(), auth.RegisterInput{
			Username: "vilian",
			Email:    "other@heroflicks.app",
			Password: "another-pass",
		})

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "Username is already taken", ae.Message)
	})
}

// # Login Tests

/*
TestService_Login covers the flexible lookup and the generic failure message.
*/
func TestService_Login(t *testing.T) {
	setUp := func(t *testing.T) (*auth.Service, *fakeSessionStore) {
		sessions := newFakeSessionStore()
		service := newService(newFakeUserStore(), sessions)
		registerUser(t, service)
		return service, sessions
	}

	t.Run("by_email", func(t *testing.T) {
		service, sessions := setUp(t)

		session, err := service.Login(context.Background(), auth.LoginInput{
			Login:    "vilian@heroflicks.app",
			Password: "correct-horse",
		})

		require.NoError(t, err)
		assert.Equal(t, "access-"+session.User.ID, session.AccessToken)
		assert.NotEmpty(t, session.RefreshToken)
		assert.Len(t, sessions.byHash, 1, "refresh session must be recorded")
	})

	t.Run("by_username", func(t *testing.T) {
		service, _ := setUp(t)

		session, err := service.Login(context.Background(), auth.LoginInput{
			Login:    "vilian",
			Password: "correct-horse",
		})

		require.NoError(t, err)
		assert.Equal(t, "vilian", session.User.Username)
	})

	// The same message regardless of which check failed, to prevent
	// account enumeration.
	for _, tt := range []struct {
		name     string
		login    string
		password string
	}{
		{"wrong_password", "vilian", "wrong"},
		{"unknown_account", "nobody", "correct-horse"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := setUp(t)

			_, err := service.Login(context.Background(), auth.LoginInput{
				Login:    tt.login,
				Password: tt.password,
			})

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "Invalid login credentials", ae.Message)
		})
	}
}

// # Session Tests

/*
TestService_RefreshSession verifies rotation: the presented token dies and a
fresh pair replaces it.
*/
func TestService_RefreshSession(t *testing.T) {
	sessions := newFakeSessionStore()
	service := newService(newFakeUserStore(), sessions)
	registerUser(t, service)

	login, err := service.Login(context.Background(), auth.LoginInput{
		Login:    "vilian",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	refreshed, err := service.RefreshSession(context.Background(), login.RefreshToken)
	require.NoError(t, err)

	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)
	assert.NotContains(t, sessions.byHash, sec.HashToken(login.RefreshToken), "old session must be gone")
	assert.Contains(t, sessions.byHash, sec.HashToken(refreshed.RefreshToken))

	// Replaying the rotated token must fail.
	_, err = service.RefreshSession(context.Background(), login.RefreshToken)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Invalid or expired refresh token", ae.Message)
}

/*
TestService_Logout verifies logout is idempotent.
*/
func TestService_Logout(t *testing.T) {
	sessions := newFakeSessionStore()
	service := newService(newFakeUserStore(), sessions)
	registerUser(t, service)

	login, err := service.Login(context.Background(), auth.LoginInput{
		Login:    "vilian",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), login.RefreshToken))
	assert.Empty(t, sessions.byHash)

	// A second logout with the same token is not an error.
	require.NoError(t, service.Logout(context.Background(), login.RefreshToken))
}

/*
TestService_Me verifies the profile lookup passthrough.
*/
func TestService_Me(t *testing.T) {
	service := newService(newFakeUserStore(), newFakeSessionStore())
	user := registerUser(t, service)

	profile, err := service.Me(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.Username, profile.Username)

	_, err = service.Me(context.Background(), "ghost")
	require.Error(t, err)
}
