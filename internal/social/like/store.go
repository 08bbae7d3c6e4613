// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package like

import (
	"context"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
)

// Store defines the persistence operations for like markers. A like is a
// bare (user, comic) pair; both directions of the toggle are idempotent.
type Store interface {
	// Add records a like. Re-liking an already liked comic is a no-op.
	Add(context context.Context, userID string, comicID int64) error

	// Remove deletes a like. Unliking a comic that was never liked is a no-op.
	Remove(context context.Context, userID string, comicID int64) error

	// Exists reports whether the user has liked the comic.
	Exists(context context.Context, userID string, comicID int64) (bool, error)

	// Count returns the total number of likes on one comic.
	Count(context context.Context, comicID int64) (int64, error)
}

// Comics is the slice of the catalogue store the like service needs:
// existence checks before marking and the hydrated "my likes" listing.
type Comics interface {
	Exists(context context.Context, id int64) (bool, error)
	ListLikedByUser(context context.Context, userID string) ([]*comic.Comic, error)
}
