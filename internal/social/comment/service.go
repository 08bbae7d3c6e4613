// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comment

import (
	"context"
	"log/slog"
	"strings"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/validate"
	"github.com/viliandp/HeroFlicks-BackEnd/pkg/pagination"
)

// errForeignComment guards comment mutation against non-authors.
var errForeignComment = apperr.Forbidden("You can only modify your own comments")

// Service implements the review business logic.
type Service struct {
	store  Store
	comics Comics
	logger *slog.Logger
}

// NewService constructs a comment [Service].
func NewService(store Store, comics Comics, logger *slog.Logger) *Service {
	return &Service{store: store, comics: comics, logger: logger}
}

// Input carries the writable fields of a comment.
type Input struct {
	Text   string
	Rating *int
}

// validateInput trims the text and checks the shared write constraints.
func validateInput(input *Input) error {
	input.Text = strings.TrimSpace(input.Text)

	validator := &validate.Validator{}
	validator.Required(FieldText, input.Text).MaxLen(FieldText, input.Text, maxTextLength)
	if input.Rating != nil {
		validator.Range(FieldRating, *input.Rating, 1, 5)
	}

	return validator.Err()
}

/*
AddComment records a review on a comic.

Description: The text is required and capped; the rating is optional but
must be 1..5 when present. The comic must exist.

Parameters:
  - context: context.Context
  - userID: string (Authenticated author)
  - comicID: int64
  - input: Input

Returns:
  - *Comment: The persisted comment with ID and timestamp
  - error: Validation or not-found errors
*/
func (service *Service) AddComment(context context.Context, userID string, comicID int64, input Input) (*Comment, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	exists, err := service.comics.Exists(context, comicID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Comic")
	}

	comment := &Comment{
		ComicID: comicID,
		UserID:  userID,
		Text:    input.Text,
		Rating:  input.Rating,
	}
	if err := service.store.Create(context, comment); err != nil {
		return nil, err
	}

	service.logger.Info("comment_created",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("comic_id", comicID),
		slog.String("user_id", userID),
		slog.Bool("rated", input.Rating != nil),
	)

	return comment, nil
}

// ListForComic returns one page of a comic's comments plus pagination
// metadata, newest first. The comic must exist.
func (service *Service) ListForComic(context context.Context, comicID int64, params pagination.Params) ([]Comment, pagination.Meta, error) {
	exists, err := service.comics.Exists(context, comicID)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if !exists {
		return nil, pagination.Meta{}, apperr.NotFound("Comic")
	}

	comments, total, err := service.store.ListForComic(context, comicID, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return comments, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// RatingForComic aggregates the rated comments of one comic. The comic
// must exist; a comic without ratings yields a zero average and count.
func (service *Service) RatingForComic(context context.Context, comicID int64) (Rating, error) {
	exists, err := service.comics.Exists(context, comicID)
	if err != nil {
		return Rating{}, err
	}
	if !exists {
		return Rating{}, apperr.NotFound("Comic")
	}

	return service.store.RatingForComic(context, comicID)
}

/*
UpdateComment rewrites a comment's text and rating.

Description: Restricted to the author. The rating may be cleared by
omitting it; the update timestamp is bumped by the store.

Parameters:
  - context: context.Context
  - id: int64 (Comment to update)
  - userID: string (Caller; must be the author)
  - input: Input

Returns:
  - *Comment: The updated comment
  - error: Validation, not-found, or ownership errors
*/
func (service *Service) UpdateComment(context context.Context, id int64, userID string, input Input) (*Comment, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	comment, err := service.store.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, errForeignComment
	}

	comment.Text = input.Text
	comment.Rating = input.Rating
	if err := service.store.Update(context, comment); err != nil {
		return nil, err
	}

	service.logger.Info("comment_updated",
		slog.Int64("comment_id", id),
		slog.String("user_id", userID),
	)

	return comment, nil
}

// DeleteComment removes a comment. Restricted to the author.
func (service *Service) DeleteComment(context context.Context, id int64, userID string) error {
	comment, err := service.store.FindByID(context, id)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return errForeignComment
	}

	if err := service.store.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("comment_deleted",
		slog.Int64("comment_id", id),
		slog.String("user_id", userID),
	)

	return nil
}
