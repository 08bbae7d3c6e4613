// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package tag

import "context"

// Store defines the persistence operations for the tag taxonomy.
type Store interface {
	// List returns every tag ordered by name ASC.
	List(context context.Context) ([]Tag, error)

	// Create inserts a new tag and writes the generated ID back.
	Create(context context.Context, tag *Tag) error

	// ListLikedByUser returns the distinct tags across the comics one user
	// has liked, ordered by name ASC.
	ListLikedByUser(context context.Context, userID string) ([]Tag, error)
}
