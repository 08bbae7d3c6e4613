// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package pending

import (
	"context"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
)

// Store defines the persistence operations for pending markers. A pending
// marker is a bare (user, comic) pair; both directions of the toggle are
// idempotent.
type Store interface {
	// Add records a pending marker. Re-marking is a no-op.
	Add(context context.Context, userID string, comicID int64) error

	// Remove deletes a pending marker. Unmarking an unmarked comic is a no-op.
	Remove(context context.Context, userID string, comicID int64) error

	// Exists reports whether the user has marked the comic as pending.
	Exists(context context.Context, userID string, comicID int64) (bool, error)

	// Count returns how many users have the comic marked as pending.
	Count(context context.Context, comicID int64) (int64, error)
}

// Comics is the slice of the catalogue store the pending service needs.
type Comics interface {
	Exists(context context.Context, id int64) (bool, error)
	ListPendingByUser(context context.Context, userID string) ([]*comic.Comic, error)
}
