// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic

import (
	"context"
	"log/slog"
	"mime/multipart"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/validate"
)

// errForeignComic guards uploader-only operations. An anonymous comic has no
// uploader, so nobody passes the check.
var errForeignComic = apperr.Forbidden("Only the uploader can modify this comic")

// Tag-association contract messages.
const (
	msgPairNotFound        = "Comic or Tag not found"
	msgAssociationNotFound = "Tag association not found for this comic"
)

// # Service Layer

// FileStore is the file placement collaborator used by upload and delete.
//
// # Why an interface?
//
// The concrete implementation writes to the local disk; tests substitute an
// in-memory fake so the workflow logic can be exercised without touching
// the filesystem.
type FileStore interface {
	SavePDF(header *multipart.FileHeader) (string, error)
	SaveImage(header *multipart.FileHeader) (string, error)
	Remove(relativePath string) error
	Resolve(relativePath string) string
}

// Service orchestrates the business logic for the comic catalogue.
// It acts as the primary entry point for discovery, ingestion, and removal.
type Service struct {
	store  Store
	files  FileStore
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required collaborators.
func NewService(store Store, files FileStore, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		files:  files,
		logger: logger,
	}
}

// # Catalogue Lookups

/*
ListComics retrieves the catalogue, optionally scoped to one tag.

Description: When a tag scope is given it is applied directly at the query
level. An unknown tag is not an error: the client receives an empty list,
matching the behavior of every other tag-scoped read.

Parameters:
  - context: context.Context
  - tagName: string ("" lists everything)

Returns:
  - []*Comic: Hydrated comics ordered by title
  - error: Repository level errors
*/
func (service *Service) ListComics(context context.Context, tagName string) ([]*Comic, error) {
	return service.store.List(context, tagName)
}

/*
GetComic fetches a single publication record by ID.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Comic: The hydrated domain entity
  - error: NotFound if no match exists
*/
func (service *Service) GetComic(context context.Context, id int64) (*Comic, error) {
	return service.store.FindByID(context, id)
}

/*
ListComicTags returns the tags attached to one comic.

Description: The comic's existence is checked first so a request against a
missing comic yields 404 rather than a silent empty list.

Parameters:
  - context: context.Context
  - comicID: int64

Returns:
  - []Tag: Attached tags, name ASC
  - error: NotFound if the comic is missing
*/
func (service *Service) ListComicTags(context context.Context, comicID int64) ([]Tag, error) {
	if _, err := service.store.FindByID(context, comicID); err != nil {
		return nil, err
	}
	return service.store.ListTagsForComic(context, comicID)
}

// # Tag Association

/*
AddTagToComic attaches an existing tag to an existing comic.

Description: Idempotent; attaching a tag that is already attached succeeds
without effect. Both sides of the pair must exist, reported together so the
client cannot probe which one is missing.

Parameters:
  - context: context.Context
  - comicID: int64
  - tagID: int64

Returns:
  - error: NotFound when either side of the pair is missing
*/
func (service *Service) AddTagToComic(context context.Context, comicID, tagID int64) error {
	comicExists, err := service.store.Exists(context, comicID)
	if err != nil {
		return err
	}
	tagExists, err := service.store.TagExistsByID(context, tagID)
	if err != nil {
		return err
	}
	if !comicExists || !tagExists {
		return apperr.NotFoundMsg(msgPairNotFound)
	}

	if err := service.store.AddTag(context, comicID, tagID); err != nil {
		return err
	}

	service.logger.Info("comic_tag_added",
		slog.Int64("comic_id", comicID),
		slog.Int64("tag_id", tagID),
	)

	return nil
}

// RemoveTagFromComic detaches a tag from a comic. Detaching a pair that was
// never associated is reported as not found.
func (service *Service) RemoveTagFromComic(context context.Context, comicID, tagID int64) error {
	removed, err := service.store.RemoveTag(context, comicID, tagID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFoundMsg(msgAssociationNotFound)
	}

	service.logger.Info("comic_tag_removed",
		slog.Int64("comic_id", comicID),
		slog.Int64("tag_id", tagID),
	)

	return nil
}

// # Catalogue Updates

// UpdateInput carries the mutable metadata of a comic. The stored files are
// immutable; replacing the document means delete and re-upload.
type UpdateInput struct {
	Title        string
	Editorial    string
	Family       string
	IsCollection bool
}

/*
UpdateComic rewrites a comic's metadata.

Description: Restricted to the original uploader; anonymous comics have no
uploader and cannot be updated. Tag associations are managed separately
through [Service.AddTagToComic] and [Service.RemoveTagFromComic].

Parameters:
  - context: context.Context
  - id: int64
  - requesterID: string (Authenticated user performing the update)
  - input: UpdateInput

Returns:
  - *Comic: The updated, fully hydrated entity
  - error: Validation, NotFound, Forbidden, or persistence errors
*/
func (service *Service) UpdateComic(context context.Context, id int64, requesterID string, input UpdateInput) (*Comic, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 255)
	validator.Required(FieldEditorial, input.Editorial).OneOf(FieldEditorial, input.Editorial,
		string(EditorialMarvel),
		string(EditorialDC),
		string(EditorialOther),
	)
	validator.MaxLen(FieldFamily, input.Family, 255)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	comic, err := service.store.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if comic.UploaderID == nil || *comic.UploaderID != requesterID {
		return nil, errForeignComic
	}

	comic.Title = input.Title
	comic.Editorial = Editorial(input.Editorial)
	comic.Family = input.Family
	comic.IsCollection = input.IsCollection

	if err := service.store.Update(context, comic); err != nil {
		return nil, err
	}

	service.logger.Info("comic_updated",
		slog.Int64("comic_id", id),
		slog.String("uploader_id", requesterID),
	)

	return comic, nil
}

// # Catalogue Removal

/*
DeleteComic removes a comic and its stored files.

Description: Only the original uploader may remove a comic. The database row
is deleted first (dependent rows cascade); the PDF and cover files are then
removed best-effort, since a leftover file is recoverable by an operator
while a dangling row pointing at a deleted file is not.

Parameters:
  - context: context.Context
  - id: int64
  - requesterID: string (Authenticated user performing the delete)

Returns:
  - error: NotFound, Forbidden, or persistence errors
*/
func (service *Service) DeleteComic(context context.Context, id int64, requesterID string) error {
	comic, err := service.store.FindByID(context, id)
	if err != nil {
		return err
	}

	if comic.UploaderID == nil || *comic.UploaderID != requesterID {
		return errForeignComic
	}

	if err := service.store.Delete(context, id); err != nil {
		return err
	}

	for _, path := range []string{comic.PDFPath, comic.CoverURL} {
		if path == "" {
			continue
		}
		if err := service.files.Remove(path); err != nil {
			service.logger.WarnContext(context, "comic_file_cleanup_failed",
				slog.Int64("comic_id", id),
				slog.String("path", path),
				slog.Any("error", err),
			)
		}
	}

	service.logger.Info("comic_deleted",
		slog.Int64("comic_id", id),
		slog.String("uploader_id", requesterID),
	)

	return nil
}

/*
ResolvePDFPath returns the absolute filesystem path of a comic's document.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - string: Absolute path suitable for http.ServeFile
  - string: The comic title, used for the download filename
  - error: NotFound if the comic is missing
*/
func (service *Service) ResolvePDFPath(context context.Context, id int64) (string, string, error) {
	comic, err := service.store.FindByID(context, id)
	if err != nil {
		return "", "", err
	}
	return service.files.Resolve(comic.PDFPath), comic.Title, nil
}
