// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/constants"
)

// # Redis Session Store

// sessionStore implements [SessionStore] on Redis. Sessions are plain
// key-value pairs: auth:session:<token hash> -> user ID, with the refresh
// TTL as key expiry. Expired sessions vanish without any cleanup job.
type sessionStore struct {
	client *redis.Client
}

// NewSessionStore constructs a Redis backed session store.
func NewSessionStore(client *redis.Client) SessionStore {
	return &sessionStore{client: client}
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

func (repository *sessionStore) Set(context context.Context, tokenHash, userID string, ttl time.Duration) error {
	if err := repository.client.Set(context, sessionKey(tokenHash), userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis: failed to store session: %w", err)
	}
	return nil
}

// Get resolves the owning user. An absent key means the token is unknown,
// rotated away, or expired; all three read as an invalid session.
func (repository *sessionStore) Get(context context.Context, tokenHash string) (string, error) {
	userID, err := repository.client.Get(context, sessionKey(tokenHash)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.Unauthorized("Invalid or expired refresh token")
		}
		return "", fmt.Errorf("redis: failed to resolve session: %w", err)
	}
	return userID, nil
}

func (repository *sessionStore) Delete(context context.Context, tokenHash string) error {
	if err := repository.client.Del(context, sessionKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("redis: failed to delete session: %w", err)
	}
	return nil
}
