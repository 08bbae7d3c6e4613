// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserStore defines the data access contract for user accounts.
type UserStore interface {
	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		FindByUsername returns the account with the given username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr NotFound or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		Create persists a brand-new user account.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Persistence failures, unique violations included
	*/
	Create(context context.Context, user *User) error
}

// # Session Data Access

// SessionStore defines the contract for volatile refresh-token sessions.
// Sessions live exclusively in Redis: the key is the token hash, the value
// the owning user, and expiry is handled by the store's TTL.
type SessionStore interface {
	/*
		Set records a refresh session under the token hash.

		Parameters:
		  - context: context.Context
		  - tokenHash: string (SHA-256 of the refresh token)
		  - userID: string
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Set(context context.Context, tokenHash, userID string, ttl time.Duration) error

	/*
		Get resolves the user owning the session.

		Parameters:
		  - context: context.Context
		  - tokenHash: string

		Returns:
		  - string: Owning user ID
		  - error: apperr Unauthorized when the session is absent or expired
	*/
	Get(context context.Context, tokenHash string) (string, error)

	/*
		Delete removes a session. Deleting an absent session is a no-op.

		Parameters:
		  - context: context.Context
		  - tokenHash: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, tokenHash string) error
}
