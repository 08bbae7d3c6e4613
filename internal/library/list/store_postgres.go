// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package list

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/database/schema"
)

// # PostgreSQL Repository

type store struct {
	pool *pgxpool.Pool
}

// NewStore constructs a PostgreSQL backed list store.
func NewStore(pool *pgxpool.Pool) Store {
	return &store{pool: pool}
}

// memberCount is the correlated sub-select hydrating ComicCount.
func memberCount() string {
	return fmt.Sprintf("(SELECT COUNT(*) FROM %s lc WHERE lc.%s = ul.%s)",
		schema.UserListComic.Table, schema.UserListComic.ListID, schema.UserList.ID)
}

func (repository *store) Create(context context.Context, list *List) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s`,
		schema.UserList.Table,
		schema.UserList.UserID, schema.UserList.Name, schema.UserList.Type,
		schema.UserList.ID, schema.UserList.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query, list.UserID, list.Name, list.Type).
		Scan(&list.ID, &list.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres: failed to create list: %w", err)
	}

	return nil
}

func (repository *store) ListByUser(context context.Context, userID string, listType Type) ([]List, error) {
	query := fmt.Sprintf(`
		SELECT ul.%s, ul.%s, ul.%s, ul.%s, ul.%s, %s AS comiccount
		FROM %s ul
		WHERE ul.%s = $1`,
		schema.UserList.ID, schema.UserList.UserID, schema.UserList.Name,
		schema.UserList.Type, schema.UserList.CreatedAt, memberCount(),
		schema.UserList.Table,
		schema.UserList.UserID,
	)

	args := []any{userID}
	if listType != "" {
		query += fmt.Sprintf(" AND ul.%s = $2", schema.UserList.Type)
		args = append(args, listType)
	}
	query += fmt.Sprintf(" ORDER BY ul.%s ASC", schema.UserList.Name)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list user lists: %w", err)
	}
	defer rows.Close()

	lists := make([]List, 0)
	for rows.Next() {
		var list List
		err := rows.Scan(&list.ID, &list.UserID, &list.Name, &list.Type, &list.CreatedAt, &list.ComicCount)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan list: %w", err)
		}
		lists = append(lists, list)
	}

	return lists, rows.Err()
}

func (repository *store) FindByID(context context.Context, id int64) (*List, error) {
	query := fmt.Sprintf(`
		SELECT ul.%s, ul.%s, ul.%s, ul.%s, ul.%s, %s AS comiccount
		FROM %s ul
		WHERE ul.%s = $1`,
		schema.UserList.ID, schema.UserList.UserID, schema.UserList.Name,
		schema.UserList.Type, schema.UserList.CreatedAt, memberCount(),
		schema.UserList.Table,
		schema.UserList.ID,
	)

	list := &List{}
	err := repository.pool.QueryRow(context, query, id).
		Scan(&list.ID, &list.UserID, &list.Name, &list.Type, &list.CreatedAt, &list.ComicCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("List")
		}
		return nil, fmt.Errorf("postgres: failed to find list: %w", err)
	}

	return list, nil
}

func (repository *store) Rename(context context.Context, id int64, name string) error {
	query := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s = $2",
		schema.UserList.Table, schema.UserList.Name, schema.UserList.ID)

	result, err := repository.pool.Exec(context, query, name, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to rename list: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("List")
	}

	return nil
}

func (repository *store) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.UserList.Table, schema.UserList.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete list: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("List")
	}

	return nil
}

// AddComic records a membership; ON CONFLICT DO NOTHING keeps re-adds
// harmless.
func (repository *store) AddComic(context context.Context, listID, comicID int64) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		schema.UserListComic.Table, schema.UserListComic.ListID, schema.UserListComic.ComicID,
	)

	if _, err := repository.pool.Exec(context, query, listID, comicID); err != nil {
		return fmt.Errorf("postgres: failed to add list member: %w", err)
	}

	return nil
}

// RemoveComic deletes a membership. The boolean reports whether a row was
// actually removed so the service can distinguish a missing member.
func (repository *store) RemoveComic(context context.Context, listID, comicID int64) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = $2",
		schema.UserListComic.Table, schema.UserListComic.ListID, schema.UserListComic.ComicID)

	result, err := repository.pool.Exec(context, query, listID, comicID)
	if err != nil {
		return false, fmt.Errorf("postgres: failed to remove list member: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
