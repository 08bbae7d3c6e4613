// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package like

import (
	"context"
	"log/slog"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
)

// Service implements the like toggle and the per-user liked listing.
type Service struct {
	store  Store
	comics Comics
	logger *slog.Logger
}

// NewService constructs a like [Service].
func NewService(store Store, comics Comics, logger *slog.Logger) *Service {
	return &Service{store: store, comics: comics, logger: logger}
}

// requireComic fails with a not-found error when the comic does not exist.
// Marking an unknown comic must be a 404, not a silent foreign-key failure.
func (service *Service) requireComic(context context.Context, comicID int64) error {
	exists, err := service.comics.Exists(context, comicID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Comic")
	}
	return nil
}

/*
LikeComic records a like for the caller.

Description: Idempotent; liking an already liked comic succeeds without
effect. The comic must exist.

Parameters:
  - context: context.Context
  - userID: string (Authenticated user)
  - comicID: int64

Returns:
  - error: apperr.NotFound when the comic is unknown
*/
func (service *Service) LikeComic(context context.Context, userID string, comicID int64) error {
	if err := service.requireComic(context, comicID); err != nil {
		return err
	}

	if err := service.store.Add(context, userID, comicID); err != nil {
		return err
	}

	service.logger.Info("comic_liked",
		slog.String("user_id", userID),
		slog.Int64("comic_id", comicID),
	)

	return nil
}

/*
UnlikeComic removes the caller's like.

Description: Idempotent; unliking a comic that was never liked succeeds
without effect. The comic must exist.
*/
func (service *Service) UnlikeComic(context context.Context, userID string, comicID int64) error {
	if err := service.requireComic(context, comicID); err != nil {
		return err
	}

	if err := service.store.Remove(context, userID, comicID); err != nil {
		return err
	}

	service.logger.Info("comic_unliked",
		slog.String("user_id", userID),
		slog.Int64("comic_id", comicID),
	)

	return nil
}

// Status reports whether the caller has liked the comic.
func (service *Service) Status(context context.Context, userID string, comicID int64) (bool, error) {
	if err := service.requireComic(context, comicID); err != nil {
		return false, err
	}
	return service.store.Exists(context, userID, comicID)
}

// CountForComic returns the total number of likes on one comic.
func (service *Service) CountForComic(context context.Context, comicID int64) (int64, error) {
	if err := service.requireComic(context, comicID); err != nil {
		return 0, err
	}
	return service.store.Count(context, comicID)
}

// ListMine returns the caller's liked comics, fully hydrated.
func (service *Service) ListMine(context context.Context, userID string) ([]*comic.Comic, error) {
	return service.comics.ListLikedByUser(context, userID)
}
