// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package pending

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

// NewStore constructs a PostgreSQL backed pending store.
func NewStore(pool *pgxpool.Pool) Store {
	return &store{pool: pool}
}

// Add records a pending marker; ON CONFLICT DO NOTHING keeps the toggle
// idempotent.
func (repository *store) Add(context context.Context, userID string, comicID int64) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		schema.PendingComic.Table, schema.PendingComic.UserID, schema.PendingComic.ComicID,
	)

	if _, err := repository.pool.Exec(context, query, userID, comicID); err != nil {
		return fmt.Errorf("postgres: failed to add pending marker: %w", err)
	}

	return nil
}

// Remove deletes a pending marker. A zero row count is not an error.
func (repository *store) Remove(context context.Context, userID string, comicID int64) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1 AND %s = $2",
		schema.PendingComic.Table, schema.PendingComic.UserID, schema.PendingComic.ComicID,
	)

	if _, err := repository.pool.Exec(context, query, userID, comicID); err != nil {
		return fmt.Errorf("postgres: failed to remove pending marker: %w", err)
	}

	return nil
}

// Exists reports whether the user has marked the comic as pending.
func (repository *store) Exists(context context.Context, userID string, comicID int64) (bool, error) {
	query := fmt.Sprintf(
		"SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)",
		schema.PendingComic.Table, schema.PendingComic.UserID, schema.PendingComic.ComicID,
	)

	var exists bool
	if err := repository.pool.QueryRow(context, query, userID, comicID).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres: failed to check pending marker: %w", err)
	}

	return exists, nil
}

// Count returns how many users have the comic marked as pending.
func (repository *store) Count(context context.Context, comicID int64) (int64, error) {
	query := fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE %s = $1",
		schema.PendingComic.Table, schema.PendingComic.ComicID,
	)

	var count int64
	if err := repository.pool.QueryRow(context, query, comicID).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres: failed to count pending markers: %w", err)
	}

	return count, nil
}
