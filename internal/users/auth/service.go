// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/constants"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/sec"
	"github.com/viliandp/HeroFlicks-BackEnd/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating signed access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID, username string, timeToLive time.Duration) (string, error)
}

// Service implements the authentication use cases.
type Service struct {
	users    UserStore
	sessions SessionStore
	tokens   TokenProvider
	logger   *slog.Logger
}

// NewService constructs an auth [Service].
func NewService(users UserStore, sessions SessionStore, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

/*
Register hashes the password and persists a brand new user account.

Description: Uniqueness of email and username is checked up front so the
client gets a precise conflict message instead of a bare constraint error.

Parameters:
  - context: context.Context
  - input: RegisterInput (Already shape-validated by the handler)

Returns:
  - *User: Created entity
  - error: Conflict when the identity exists, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	if _, err := service.users.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if _, err := service.users.FindByUsername(context, input.Username); err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to hash password: %w", err)
	}

	// Time-sortable ID to prevent index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}
	if err := service.users.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt. Login can
// be a username or an email.
type LoginInput struct {
	Login    string
	Password string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *User
}

/*
Login validates credentials and issues a token pair.

Description: Lookup is flexible across email and username. Every failure
path returns the same generic message to prevent account enumeration.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Access token, refresh token, and the user profile
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	user, err := service.users.FindByEmail(context, input.Login)
	if err != nil {
		user, err = service.users.FindByUsername(context, input.Login)
	}
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	session, err := service.issueSession(context, user)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_logged_in", slog.String("user_id", user.ID))

	return session, nil
}

/*
RefreshSession rotates a refresh token.

Description: The presented token is resolved through its hash, deleted so
it can never be replayed, and replaced with a fresh pair bound to the same
user.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - *LoginSession: New credentials
  - error: Unauthorized when the token is unknown or expired
*/
func (service *Service) RefreshSession(context context.Context, refreshToken string) (*LoginSession, error) {
	tokenHash := sec.HashToken(refreshToken)

	userID, err := service.sessions.Get(context, tokenHash)
	if err != nil {
		return nil, err
	}

	// Rotation: the old session dies before the new one is born.
	if err := service.sessions.Delete(context, tokenHash); err != nil {
		return nil, err
	}

	user, err := service.users.FindByID(context, userID)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	session, err := service.issueSession(context, user)
	if err != nil {
		return nil, err
	}

	service.logger.Info("session_refreshed", slog.String("user_id", user.ID))

	return session, nil
}

// Logout deletes the presented refresh session. Unknown tokens are treated
// as already logged out.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	return service.sessions.Delete(context, sec.HashToken(refreshToken))
}

// Me returns the caller's account profile.
func (service *Service) Me(context context.Context, userID string) (*User, error) {
	return service.users.FindByID(context, userID)
}

// issueSession generates the access/refresh pair and records the refresh
// session in the volatile store.
func (service *Service) issueSession(context context.Context, user *User) (*LoginSession, error) {
	accessToken, err := service.tokens.GenerateAccessToken(user.ID, user.Username, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to sign access token: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().Add(constants.RefreshTokenTTL)
	if err := service.sessions.Set(context, sec.HashToken(refreshToken), user.ID, constants.RefreshTokenTTL); err != nil {
		return nil, err
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		User:                  user,
	}, nil
}
