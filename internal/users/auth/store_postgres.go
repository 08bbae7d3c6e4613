// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/database/schema"
)

// # PostgreSQL User Store

type userStore struct {
	pool *pgxpool.Pool
}

// NewUserStore constructs a PostgreSQL backed user store.
func NewUserStore(pool *pgxpool.Pool) UserStore {
	return &userStore{pool: pool}
}

// accountColumns is the SELECT column list shared by the lookup queries.
func accountColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		schema.Account.ID, schema.Account.Username, schema.Account.Email,
		schema.Account.PasswordHash, schema.Account.CreatedAt, schema.Account.UpdatedAt)
}

func (repository *userStore) scanUser(row pgx.Row, missing string) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundMsg(missing)
		}
		return nil, fmt.Errorf("postgres: failed to find user: %w", err)
	}
	return user, nil
}

func (repository *userStore) FindByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		accountColumns(), schema.Account.Table, schema.Account.ID)
	return repository.scanUser(repository.pool.QueryRow(context, query, id), "User not found")
}

func (repository *userStore) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1)",
		accountColumns(), schema.Account.Table, schema.Account.Email)
	return repository.scanUser(repository.pool.QueryRow(context, query, email), "User not found with this email")
}

func (repository *userStore) FindByUsername(context context.Context, username string) (*User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		accountColumns(), schema.Account.Table, schema.Account.Username)
	return repository.scanUser(repository.pool.QueryRow(context, query, username), "User not found with this username")
}

/*
Create persists a new user account.

Description: Timestamps are assigned by the database; the entity's
CreatedAt and UpdatedAt are written back from RETURNING.

Parameters:
  - context: context.Context
  - user: *User (ID pre-assigned by the service)

Returns:
  - error: Unique violations or connectivity errors
*/
func (repository *userStore) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s`,
		schema.Account.Table,
		schema.Account.ID, schema.Account.Username, schema.Account.Email, schema.Account.PasswordHash,
		schema.Account.CreatedAt, schema.Account.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("postgres: failed to create user: %w", err)
	}

	return nil
}
