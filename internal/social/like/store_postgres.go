// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package like

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/database/schema"
)

// # PostgreSQL Repository

type store struct {
	pool *pgxpool.Pool
}

// NewStore constructs a PostgreSQL backed like store.
func NewStore(pool *pgxpool.Pool) Store {
	return &store{pool: pool}
}

// Add records a like; ON CONFLICT DO NOTHING keeps the toggle idempotent.
func (repository *store) Add(context context.Context, userID string, comicID int64) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		schema.ComicLike.Table, schema.ComicLike.UserID, schema.ComicLike.ComicID,
	)

	if _, err := repository.pool.Exec(context, query, userID, comicID); err != nil {
		return fmt.Errorf("postgres: failed to add like: %w", err)
	}

	return nil
}

// Remove deletes a like. A zero row count is not an error.
func (repository *store) Remove(context context.Context, userID string, comicID int64) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1 AND %s = $2",
		schema.ComicLike.Table, schema.ComicLike.UserID, schema.ComicLike.ComicID,
	)

	if _, err := repository.pool.Exec(context, query, userID, comicID); err != nil {
		return fmt.Errorf("postgres: failed to remove like: %w", err)
	}

	return nil
}

// Exists reports whether the user has liked the comic.
func (repository *store) Exists(context context.Context, userID string, comicID int64) (bool, error) {
	query := fmt.Sprintf(
		"SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)",
		schema.ComicLike.Table, schema.ComicLike.UserID, schema.ComicLike.ComicID,
	)

	var exists bool
	if err := repository.pool.QueryRow(context, query, userID, comicID).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres: failed to check like: %w", err)
	}

	return exists, nil
}

// Count returns the total number of likes on one comic.
func (repository *store) Count(context context.Context, comicID int64) (int64, error) {
	query := fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE %s = $1",
		schema.ComicLike.Table, schema.ComicLike.ComicID,
	)

	var count int64
	if err := repository.pool.QueryRow(context, query, comicID).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres: failed to count likes: %w", err)
	}

	return count, nil
}
