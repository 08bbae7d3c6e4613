// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic

import (
	"context"
	"log/slog"
	"mime/multipart"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/validate"
)

// # Ingestion

// UploadInput carries the parsed multipart fields of a comic upload.
type UploadInput struct {
	Title        string
	Editorial    string
	Family       string
	IsCollection bool
	TagIDs       []int64
	PDF          *multipart.FileHeader
	Cover        *multipart.FileHeader // Optional
	UploaderID   *string               // Nil for anonymous uploads
}

/*
UploadComic runs the transactional ingestion workflow.

Description: The workflow is ordered so the database transaction is the last
thing that can fail:

 1. Validate the metadata (title, editorial enum, document presence).
 2. Place the PDF and optional cover on disk. File placement happens
    BEFORE the transaction; a failed transaction leaves at worst orphaned
    files, which are removed best-effort.
 3. Insert the comic row and all tag junction rows in one transaction.
 4. Hydrate the tag set for the response. A hydration failure after commit
    is logged and swallowed: the upload has already succeeded.

Parameters:
  - context: context.Context
  - input: UploadInput (Parsed multipart payload)

Returns:
  - *Comic: The persisted entity with ID, timestamps, and tags
  - error: Validation, placement, or persistence errors
*/
func (service *Service) UploadComic(context context.Context, input UploadInput) (*Comic, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 255)
	validator.Required(FieldEditorial, input.Editorial).OneOf(FieldEditorial, input.Editorial,
		string(EditorialMarvel),
		string(EditorialDC),
		string(EditorialOther),
	)
	validator.MaxLen(FieldFamily, input.Family, 255)
	validator.Custom(FieldPDF, input.PDF == nil, "A PDF document is required")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// File placement precedes the transaction.
	pdfPath, err := service.files.SavePDF(input.PDF)
	if err != nil {
		return nil, err
	}

	var coverPath string
	if input.Cover != nil {
		coverPath, err = service.files.SaveImage(input.Cover)
		if err != nil {
			service.cleanupFiles(context, pdfPath)
			return nil, err
		}
	}

	comic := &Comic{
		Title:        input.Title,
		Editorial:    Editorial(input.Editorial),
		PDFPath:      pdfPath,
		IsCollection: input.IsCollection,
		Family:       input.Family,
		CoverURL:     coverPath,
		UploaderID:   input.UploaderID,
	}

	if err := service.store.Create(context, comic, input.TagIDs); err != nil {
		service.cleanupFiles(context, pdfPath, coverPath)
		return nil, err
	}

	// Post-commit hydration: failure must not undo a committed upload.
	tags, err := service.store.ListTagsForComic(context, comic.ID)
	if err != nil {
		service.logger.WarnContext(context, "upload_tag_hydration_failed",
			slog.Int64("comic_id", comic.ID),
			slog.Any("error", err),
		)
	} else {
		comic.Tags = tags
	}

	uploaderID := ""
	if comic.UploaderID != nil {
		uploaderID = *comic.UploaderID
	}
	service.logger.Info("comic_uploaded",
		slog.Int64("comic_id", comic.ID),
		slog.String("title", comic.Title),
		slog.String("uploader_id", uploaderID),
		slog.Int("tag_count", len(input.TagIDs)),
	)

	return comic, nil
}

// cleanupFiles removes placed files after a failed upload, best-effort.
func (service *Service) cleanupFiles(context context.Context, paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := service.files.Remove(path); err != nil {
			service.logger.WarnContext(context, "upload_file_cleanup_failed",
				slog.String("path", path),
				slog.Any("error", err),
			)
		}
	}
}
