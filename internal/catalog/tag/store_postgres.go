// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package tag

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

// NewStore constructs a PostgreSQL backed tag store.
func NewStore(pool *pgxpool.Pool) Store {
	return &store{pool: pool}
}

// List returns the full taxonomy ordered by name ASC.
func (repository *store) List(context context.Context) ([]Tag, error) {
	query := fmt.Sprintf("SELECT %s, %s FROM %s ORDER BY %s ASC",
		schema.Tag.ID, schema.Tag.Name, schema.Tag.Table, schema.Tag.Name)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := make([]Tag, 0)
	for rows.Next() {
		var tag Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

/*
Create inserts a new tag into the taxonomy.

Description: The case-insensitive unique index on the name column makes a
duplicate surface as a unique violation; the service layer translates that
into a conflict message.

Parameters:
  - context: context.Context
  - tag: *Tag (ID written back on success)

Returns:
  - error: Storage or constraint failures
*/
func (repository *store) Create(context context.Context, tag *Tag) error {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES ($1) RETURNING %s",
		schema.Tag.Table, schema.Tag.Name, schema.Tag.ID)

	if err := repository.pool.QueryRow(context, query, tag.Name).Scan(&tag.ID); err != nil {
		return fmt.Errorf("postgres: failed to create tag: %w", err)
	}

	return nil
}

// ListLikedByUser returns the distinct tags attached to the comics one user
// has liked, name ASC. A user with no likes, or whose liked comics carry no
// tags, yields an empty slice.
func (repository *store) ListLikedByUser(context context.Context, userID string) ([]Tag, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT t.%s, t.%s
		FROM %s t
		JOIN %s ct ON ct.%s = t.%s
		JOIN %s l ON l.%s = ct.%s
		WHERE l.%s = $1
		ORDER BY t.%s ASC`,
		schema.Tag.ID, schema.Tag.Name,
		schema.Tag.Table,
		schema.ComicTag.Table, schema.ComicTag.TagID, schema.Tag.ID,
		schema.ComicLike.Table, schema.ComicLike.ComicID, schema.ComicTag.ComicID,
		schema.ComicLike.UserID,
		schema.Tag.Name,
	)

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list liked tags: %w", err)
	}
	defer rows.Close()

	tags := make([]Tag, 0)
	for rows.Next() {
		var tag Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan liked tag: %w", err)
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}
