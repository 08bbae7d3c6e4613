// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/database/schema"
	"github.com/viliandp/HeroFlicks-BackEnd/pkg/pagination"
)

// # PostgreSQL Repository

type store struct {
	pool *pgxpool.Pool
}

// NewStore constructs a PostgreSQL backed comment store.
func NewStore(pool *pgxpool.Pool) Store {
	return &store{pool: pool}
}

func (repository *store) Create(context context.Context, comment *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s`,
		schema.Comment.Table,
		schema.Comment.ComicID, schema.Comment.UserID, schema.Comment.Text, schema.Comment.Rating,
		schema.Comment.ID, schema.Comment.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		comment.ComicID,
		comment.UserID,
		comment.Text,
		comment.Rating,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres: failed to create comment: %w", err)
	}

	return nil
}

/*
ListForComic returns one page of a comic's comments, newest first.

Description: The author username is joined in the same round-trip. The total
count runs as a second query so the handler can build pagination metadata.

Parameters:
  - context: context.Context
  - comicID: int64
  - params: pagination.Params

Returns:
  - []Comment: The requested page
  - int: Total comment count for the comic
  - error: Database retrieval failures
*/
func (repository *store) ListForComic(context context.Context, comicID int64, params pagination.Params) ([]Comment, int, error) {
	query := fmt.Sprintf(`
		SELECT cm.%s, cm.%s, cm.%s, a.%s, cm.%s, cm.%s, cm.%s, cm.%s
		FROM %s cm
		JOIN %s a ON a.%s = cm.%s
		WHERE cm.%s = $1
		ORDER BY cm.%s DESC
		LIMIT $2 OFFSET $3`,
		schema.Comment.ID, schema.Comment.ComicID, schema.Comment.UserID, schema.Account.Username,
		schema.Comment.Text, schema.Comment.Rating, schema.Comment.CreatedAt, schema.Comment.UpdatedAt,
		schema.Comment.Table,
		schema.Account.Table, schema.Account.ID, schema.Comment.UserID,
		schema.Comment.ComicID,
		schema.Comment.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, comicID, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]Comment, 0)
	for rows.Next() {
		var comment Comment
		err := rows.Scan(
			&comment.ID,
			&comment.ComicID,
			&comment.UserID,
			&comment.Username,
			&comment.Text,
			&comment.Rating,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres: comment row iteration failed: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1",
		schema.Comment.Table, schema.Comment.ComicID)

	var total int
	if err := repository.pool.QueryRow(context, countQuery, comicID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to count comments: %w", err)
	}

	return comments, total, nil
}

func (repository *store) FindByID(context context.Context, id int64) (*Comment, error) {
	query := fmt.Sprintf(`
		SELECT cm.%s, cm.%s, cm.%s, a.%s, cm.%s, cm.%s, cm.%s, cm.%s
		FROM %s cm
		JOIN %s a ON a.%s = cm.%s
		WHERE cm.%s = $1`,
		schema.Comment.ID, schema.Comment.ComicID, schema.Comment.UserID, schema.Account.Username,
		schema.Comment.Text, schema.Comment.Rating, schema.Comment.CreatedAt, schema.Comment.UpdatedAt,
		schema.Comment.Table,
		schema.Account.Table, schema.Account.ID, schema.Comment.UserID,
		schema.Comment.ID,
	)

	comment := &Comment{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&comment.ID,
		&comment.ComicID,
		&comment.UserID,
		&comment.Username,
		&comment.Text,
		&comment.Rating,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Comment")
		}
		return nil, fmt.Errorf("postgres: failed to find comment: %w", err)
	}

	return comment, nil
}

func (repository *store) Update(context context.Context, comment *Comment) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = NOW()
		WHERE %s = $3
		RETURNING %s`,
		schema.Comment.Table,
		schema.Comment.Text, schema.Comment.Rating, schema.Comment.UpdatedAt,
		schema.Comment.ID,
		schema.Comment.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, comment.Text, comment.Rating, comment.ID).
		Scan(&comment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Comment")
		}
		return fmt.Errorf("postgres: failed to update comment: %w", err)
	}

	return nil
}

func (repository *store) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.Comment.Table, schema.Comment.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete comment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Comment")
	}

	return nil
}

// RatingForComic averages the rated comments of one comic. Text-only
// comments are excluded from both the average and the count.
func (repository *store) RatingForComic(context context.Context, comicID int64) (Rating, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(AVG(%s), 0), COUNT(%s)
		FROM %s
		WHERE %s = $1 AND %s IS NOT NULL`,
		schema.Comment.Rating, schema.Comment.Rating,
		schema.Comment.Table,
		schema.Comment.ComicID, schema.Comment.Rating,
	)

	var rating Rating
	if err := repository.pool.QueryRow(context, query, comicID).Scan(&rating.Average, &rating.Count); err != nil {
		return Rating{}, fmt.Errorf("postgres: failed to aggregate rating: %w", err)
	}

	return rating, nil
}
