// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package list

import (
	"context"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
)

// Store defines the persistence operations for user lists and their
// memberships.
type Store interface {
	// Create inserts a list and writes the generated ID and creation
	// timestamp back. A duplicate (owner, name, type) surfaces as a unique
	// violation.
	Create(context context.Context, list *List) error

	// ListByUser returns one user's lists with member counts, name ASC,
	// optionally filtered by type ("" = all).
	ListByUser(context context.Context, userID string, listType Type) ([]List, error)

	// FindByID returns one list with its member count, or apperr NotFound.
	FindByID(context context.Context, id int64) (*List, error)

	// Rename updates a list's name.
	Rename(context context.Context, id int64, name string) error

	// Delete removes a list; memberships cascade.
	Delete(context context.Context, id int64) error

	// AddComic records a membership. Re-adding is a no-op.
	AddComic(context context.Context, listID, comicID int64) error

	// RemoveComic deletes a membership and reports whether a row existed.
	RemoveComic(context context.Context, listID, comicID int64) (bool, error)
}

// Comics is the slice of the catalogue store the list service needs.
type Comics interface {
	Exists(context context.Context, id int64) (bool, error)
	ListInUserList(context context.Context, listID int64) ([]*comic.Comic, error)
}
