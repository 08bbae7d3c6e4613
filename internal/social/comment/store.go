// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comment

import (
	"context"

	"github.com/viliandp/HeroFlicks-BackEnd/pkg/pagination"
)

// Store defines the persistence operations for comments.
type Store interface {
	// Create inserts a comment and writes the generated ID and creation
	// timestamp back.
	Create(context context.Context, comment *Comment) error

	// ListForComic returns one page of a comic's comments, newest first,
	// with the author username joined, plus the total comment count.
	ListForComic(context context.Context, comicID int64, params pagination.Params) ([]Comment, int, error)

	// FindByID returns one comment, or apperr NotFound.
	FindByID(context context.Context, id int64) (*Comment, error)

	// Update rewrites the text and rating of a comment and bumps the
	// update timestamp.
	Update(context context.Context, comment *Comment) error

	// Delete removes a comment, or apperr NotFound.
	Delete(context context.Context, id int64) error

	// RatingForComic aggregates the rated comments of one comic.
	RatingForComic(context context.Context, comicID int64) (Rating, error)
}

// Comics is the slice of the catalogue store the comment service needs.
type Comics interface {
	Exists(context context.Context, id int64) (bool, error)
}
