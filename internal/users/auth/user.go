// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

/*
Package auth implements user identity and session management.

It covers registration with bcrypt password hashing, login issuing RS256
access tokens, refresh-token rotation backed by Redis, and logout. There is
no role system: every registered user has the same capabilities, and
ownership checks live in the domains that need them.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered HeroFlicks account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// # Field Identifiers

// Field names for validation and response mapping in the auth domain.
const (
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldLogin        = "login"
	FieldRefreshToken = "refreshToken"
)
