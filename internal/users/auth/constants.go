// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package auth

// # Authentication Constraints

const (
	// RefreshTokenLength is the byte length of the random refresh token.
	RefreshTokenLength = 32

	// UsernameMinLength and UsernameMaxLength bound usernames.
	UsernameMinLength = 3
	UsernameMaxLength = 30

	// PasswordMinLength is the minimum accepted password length.
	PasswordMinLength = 8
)
