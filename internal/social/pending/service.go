// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package pending

import (
	"context"
	"log/slog"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
)

// Service implements the pending toggle and the per-user pending listing.
type Service struct {
	store  Store
	comics Comics
	logger *slog.Logger
}

// NewService constructs a pending [Service].
func NewService(store Store, comics Comics, logger *slog.Logger) *Service {
	return &Service{store: store, comics: comics, logger: logger}
}

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
MarkPending records the comic on the caller's pending list.

Description: Idempotent; marking an already pending comic succeeds without
effect. The comic must exist.

Parameters:
  - context: context.Context
  - userID: string (Authenticated user)
  - comicID: int64

Returns:
  - error: apperr.NotFound when the comic is unknown
*/
func (service *Service) MarkPending(context context.Context, userID string, comicID int64) error {
	if err := service.requireComic(context, comicID); err != nil {
		return err
	}

	if err := service.store.Add(context, userID, comicID); err != nil {
		return err
	}

	service.logger.Info("comic_marked_pending",
		slog.String("user_id", userID),
		slog.Int64("comic_id", comicID),
	)

	return nil
}

// UnmarkPending removes the comic from the caller's pending list.
// Idempotent; unmarking twice succeeds without effect.
func (service *Service) UnmarkPending(context context.Context, userID string, comicID int64) error {
	if err := service.requireComic(context, comicID); err != nil {
		return err
	}

	if err := service.store.Remove(context, userID, comicID); err != nil {
		return err
	}

	service.logger.Info("comic_unmarked_pending",
		slog.String("user_id", userID),
		slog.Int64("comic_id", comicID),
	)

	return nil
}

// Status reports whether the caller has the comic marked as pending.
func (service *Service) Status(context context.Context, userID string, comicID int64) (bool, error) {
	if err := service.requireComic(context, comicID); err != nil {
		return false, err
	}
	return service.store.Exists(context, userID, comicID)
}

// CountForComic returns how many users have the comic marked as pending.
func (service *Service) CountForComic(context context.Context, comicID int64) (int64, error) {
	if err := service.requireComic(context, comicID); err != nil {
		return 0, err
	}
	return service.store.Count(context, comicID)
}

// ListMine returns the caller's pending comics, fully hydrated.
func (service *Service) ListMine(context context.Context, userID string) ([]*comic.Comic, error) {
	return service.comics.ListPendingByUser(context, userID)
}
