// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
)

func validUpload() comic.UploadInput {
	return comic.UploadInput{
		Title:      "Kingdom Come",
		Editorial:  "DC",
		Family:     "Justice League",
		TagIDs:     []int64{1, 2},
		PDF:        &multipart.FileHeader{Filename: "kingdom-come.pdf"},
		Cover:      &multipart.FileHeader{Filename: "kingdom-come.jpg"},
		UploaderID: strPtr("user-1"),
	}
}

/*
TestService_UploadComic_Validation verifies metadata is rejected before any
file touches the disk.
*/
func TestService_UploadComic_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(input *comic.UploadInput)
	}{
		{"missing_title", func(input *comic.UploadInput) { input.Title = "" }},
		{"unknown_editorial", func(input *comic.UploadInput) { input.Editorial = "Dark Horse" }},
		{"missing_pdf", func(input *comic.UploadInput) { input.PDF = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validUpload()
			tt.mutate(&input)

			files := &fakeFiles{}
			service := comic.NewService(&fakeStore{}, files, testLogger())

			_, err := service.UploadComic(context.Background(), input)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Empty(t, files.removed)
		})
	}
}

/*
TestService_UploadComic_CoverFailureCleansPDF verifies a failed cover
placement removes the already-placed document.
*/
func TestService_UploadComic_CoverFailureCleansPDF(t *testing.T) {
	files := &fakeFiles{
		savePDFPath:  "pdfs/kingdom-come.pdf",
		saveImageErr: errors.New("unsupported media"),
	}
	service := comic.NewService(&fakeStore{}, files, testLogger())

	_, err := service.UploadComic(context.Background(), validUpload())

	require.Error(t, err)
	assert.Equal(t, []string{"pdfs/kingdom-come.pdf"}, files.removed)
}

/*
TestService_UploadComic_CreateFailureCleansBoth verifies a failed transaction
removes both placed files.
*/
func TestService_UploadComic_CreateFailureCleansBoth(t *testing.T) {
	files := &fakeFiles{
		savePDFPath:   "pdfs/kingdom-come.pdf",
		saveImagePath: "covers/kingdom-come.jpg",
	}
	store := &fakeStore{
		create: func(ctx context.Context, entity *comic.Comic, tagIDs []int64) error {
			return errors.New("constraint violation")
		},
	}
	service := comic.NewService(store, files, testLogger())

	_, err := service.UploadComic(context.Background(), validUpload())

	require.Error(t, err)
	assert.Equal(t, []string{"pdfs/kingdom-come.pdf", "covers/kingdom-come.jpg"}, files.removed)
}

/*
TestService_UploadComic_Success verifies the happy path: file paths flow onto
the entity, tag IDs reach the transaction, and tags are hydrated back.
*/
func TestService_UploadComic_Success(t *testing.T) {
	var gotTagIDs []int64
	files := &fakeFiles{
		savePDFPath:   "pdfs/kingdom-come.pdf",
		saveImagePath: "covers/kingdom-come.jpg",
	}
	store := &fakeStore{
		create: func(ctx context.Context, entity *comic.Comic, tagIDs []int64) error {
			gotTagIDs = tagIDs
			entity.ID = 77
			return nil
		},
		listTagsForComic: func(ctx context.Context, comicID int64) ([]comic.Tag, error) {
			return []comic.Tag{{ID: 1, Name: "Elseworlds"}}, nil
		},
	}
	service := comic.NewService(store, files, testLogger())

	created, err := service.UploadComic(context.Background(), validUpload())

	require.NoError(t, err)
	assert.Equal(t, int64(77), created.ID)
	assert.Equal(t, "pdfs/kingdom-come.pdf", created.PDFPath)
	assert.Equal(t, "covers/kingdom-come.jpg", created.CoverURL)
	assert.Equal(t, []int64{1, 2}, gotTagIDs)
	require.Len(t, created.Tags, 1)
	assert.Equal(t, "Elseworlds", created.Tags[0].Name)
	assert.Empty(t, files.removed)
}

/*
TestService_UploadComic_Anonymous verifies an upload without credentials is
accepted and persisted without an uploader reference.
*/
func TestService_UploadComic_Anonymous(t *testing.T) {
	var gotUploader *string
	files := &fakeFiles{savePDFPath: "pdfs/kingdom-come.pdf"}
	store := &fakeStore{
		create: func(ctx context.Context, entity *comic.Comic, tagIDs []int64) error {
			gotUploader = entity.UploaderID
			entity.ID = 78
			return nil
		},
		listTagsForComic: func(ctx context.Context, comicID int64) ([]comic.Tag, error) {
			return nil, nil
		},
	}
	service := comic.NewService(store, files, testLogger())

	input := validUpload()
	input.Cover = nil
	input.UploaderID = nil

	created, err := service.UploadComic(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(78), created.ID)
	assert.Nil(t, gotUploader)
}

/*
TestService_UploadComic_HydrationFailureTolerated verifies a failed post-commit
tag fetch does not undo a committed upload.
*/
func TestService_UploadComic_HydrationFailureTolerated(t *testing.T) {
	files := &fakeFiles{savePDFPath: "pdfs/kingdom-come.pdf"}
	store := &fakeStore{
		create: func(ctx context.Context, entity *comic.Comic, tagIDs []int64) error {
			entity.ID = 77
			return nil
		},
		listTagsForComic: func(ctx context.Context, comicID int64) ([]comic.Tag, error) {
			return nil, errors.New("replica lag")
		},
	}
	service := comic.NewService(store, files, testLogger())

	input := validUpload()
	input.Cover = nil

	created, err := service.UploadComic(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(77), created.ID)
	assert.Empty(t, created.Tags)
	assert.Empty(t, created.CoverURL)
}
