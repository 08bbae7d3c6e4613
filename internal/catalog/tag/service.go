// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package tag

import (
	"context"
	"log/slog"
	"strings"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/dberr"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/validate"
)

// maxTagNameLength caps tag names at a sane label size.
const maxTagNameLength = 100

// Service implements the taxonomy business logic.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a tag [Service].
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ListTags returns the full taxonomy, name ASC.
func (service *Service) ListTags(context context.Context) ([]Tag, error) {
	return service.store.List(context)
}

/*
CreateTag adds a new tag to the taxonomy.

Description: The name is trimmed before validation so whitespace-only input
fails the required check. A case-insensitive duplicate is reported as a
conflict rather than a server error.

Parameters:
  - context: context.Context
  - name: string (Raw request value)

Returns:
  - *Tag: The persisted tag with its generated ID
  - error: Validation or conflict errors
*/
func (service *Service) CreateTag(context context.Context, name string) (*Tag, error) {
	name = strings.TrimSpace(name)

	validator := &validate.Validator{}
	validator.Custom(FieldName, name == "", "Tag name is required and cannot be empty")
	validator.MaxLen(FieldName, name, maxTagNameLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	tag := &Tag{Name: name}
	if err := service.store.Create(context, tag); err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Tag name already exists")
		}
		return nil, err
	}

	service.logger.Info("tag_created",
		slog.Int64("tag_id", tag.ID),
		slog.String("name", tag.Name),
	)

	return tag, nil
}

// LikedTags returns the distinct tags across one user's liked comics.
func (service *Service) LikedTags(context context.Context, userID string) ([]Tag, error) {
	return service.store.ListLikedByUser(context, userID)
}
