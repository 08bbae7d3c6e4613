// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package list

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/dberr"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/validate"
)

// Client-facing list messages, part of the mobile API contract.
const (
	msgDuplicateList = "Ya tienes una lista de este tipo con el mismo nombre."
	msgForeignList   = "Lista no encontrada o no tienes permiso."
	msgComicUnknown  = "Cómic no encontrado."
	msgNotInList     = "El cómic no se encontró en esta lista."
)

// Service implements the user-list business logic.
type Service struct {
	store  Store
	comics Comics
	logger *slog.Logger
}

// NewService constructs a list [Service].
func NewService(store Store, comics Comics, logger *slog.Logger) *Service {
	return &Service{store: store, comics: comics, logger: logger}
}

// requireOwned resolves a list the caller owns. Missing and foreign lists
// are indistinguishable to the client.
func (service *Service) requireOwned(context context.Context, id int64, userID string) (*List, error) {
	list, err := service.store.FindByID(context, id)
	if err != nil {
		if appErr := apperr.As(err); appErr != nil && appErr.HTTPStatus == http.StatusNotFound {
			return nil, apperr.NotFoundMsg(msgForeignList)
		}
		return nil, err
	}
	if list.UserID != userID {
		return nil, apperr.NotFoundMsg(msgForeignList)
	}
	return list, nil
}

/*
CreateList adds a new list for the caller.

Description: The name is trimmed; the type must be one of the two client
kinds. A duplicate (name, type) pair for the same owner is reported as a
conflict with the contract message.

Parameters:
  - context: context.Context
  - userID: string (Authenticated owner)
  - name: string
  - listType: string (Raw request value)

Returns:
  - *List: The persisted list with its generated ID
  - error: Validation or conflict errors
*/
func (service *Service) CreateList(context context.Context, userID, name, listType string) (*List, error) {
	name = strings.TrimSpace(name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, maxListNameLength)
	validator.Required(FieldType, listType).OneOf(FieldType, listType,
		string(TypePending),
		string(TypeLiked),
	)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	list := &List{UserID: userID, Name: name, Type: Type(listType)}
	if err := service.store.Create(context, list); err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, apperr.Conflict(msgDuplicateList)
		}
		return nil, err
	}

	service.logger.Info("list_created",
		slog.Int64("list_id", list.ID),
		slog.String("user_id", userID),
		slog.String("type", string(list.Type)),
	)

	return list, nil
}

// ListLists returns the caller's lists with member counts, name ASC. An
// unknown type filter is rejected; "" lists everything.
func (service *Service) ListLists(context context.Context, userID, typeFilter string) ([]List, error) {
	if typeFilter != "" && !Type(typeFilter).IsValid() {
		validator := &validate.Validator{}
		validator.OneOf(FieldType, typeFilter, string(TypePending), string(TypeLiked))
		return nil, validator.Err()
	}

	return service.store.ListByUser(context, userID, Type(typeFilter))
}

// GetListComics returns one owned list and its hydrated member comics.
func (service *Service) GetListComics(context context.Context, id int64, userID string) (*List, []*comic.Comic, error) {
	list, err := service.requireOwned(context, id, userID)
	if err != nil {
		return nil, nil, err
	}

	comics, err := service.comics.ListInUserList(context, id)
	if err != nil {
		return nil, nil, err
	}

	return list, comics, nil
}

/*
AddComic puts a comic on an owned list.

Description: Idempotent; re-adding a member succeeds without effect. The
comic must exist and the list must belong to the caller.

Returns:
  - error: Foreign-list or unknown-comic errors with contract messages
*/
func (service *Service) AddComic(context context.Context, listID int64, userID string, comicID int64) error {
	if _, err := service.requireOwned(context, listID, userID); err != nil {
		return err
	}

	exists, err := service.comics.Exists(context, comicID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFoundMsg(msgComicUnknown)
	}

	if err := service.store.AddComic(context, listID, comicID); err != nil {
		return err
	}

	service.logger.Info("list_member_added",
		slog.Int64("list_id", listID),
		slog.Int64("comic_id", comicID),
		slog.String("user_id", userID),
	)

	return nil
}

// RemoveComic takes a comic off an owned list. Removing a comic that is
// not on the list is reported with the contract message.
func (service *Service) RemoveComic(context context.Context, listID int64, userID string, comicID int64) error {
	if _, err := service.requireOwned(context, listID, userID); err != nil {
		return err
	}

	removed, err := service.store.RemoveComic(context, listID, comicID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFoundMsg(msgNotInList)
	}

	service.logger.Info("list_member_removed",
		slog.Int64("list_id", listID),
		slog.Int64("comic_id", comicID),
		slog.String("user_id", userID),
	)

	return nil
}

// RenameList changes an owned list's name. The uniqueness constraint
// applies to the new name as well.
func (service *Service) RenameList(context context.Context, id int64, userID, name string) (*List, error) {
	name = strings.TrimSpace(name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, maxListNameLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	list, err := service.requireOwned(context, id, userID)
	if err != nil {
		return nil, err
	}

	if err := service.store.Rename(context, id, name); err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, apperr.Conflict(msgDuplicateList)
		}
		return nil, err
	}

	list.Name = name
	return list, nil
}

// DeleteList removes an owned list; memberships cascade at the database
// level.
func (service *Service) DeleteList(context context.Context, id int64, userID string) error {
	if _, err := service.requireOwned(context, id, userID); err != nil {
		return err
	}

	if err := service.store.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("list_deleted",
		slog.Int64("list_id", id),
		slog.String("user_id", userID),
	)

	return nil
}
