// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
)

func validUpdate() comic.UpdateInput {
	return comic.UpdateInput{
		Title:        "Kingdom Come: Absolute Edition",
		Editorial:    "DC",
		Family:       "Justice League",
		IsCollection: true,
	}
}

/*
TestService_UpdateComic_Validation verifies metadata is rejected before the
comic is even looked up.
*/
func TestService_UpdateComic_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(input *comic.UpdateInput)
	}{
		{"missing_title", func(input *comic.UpdateInput) { input.Title = "" }},
		{"unknown_editorial", func(input *comic.UpdateInput) { input.Editorial = "Dark Horse" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validUpdate()
			tt.mutate(&input)

			service := comic.NewService(&fakeStore{}, &fakeFiles{}, testLogger())

			_, err := service.UpdateComic(context.Background(), 7, "owner-1", input)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

/*
TestService_UpdateComic_ForeignUploader verifies only the uploader may update.
*/
func TestService_UpdateComic_ForeignUploader(t *testing.T) {
	updated := false
	store := &fakeStore{
		findByID: func(ctx context.Context, id int64) (*comic.Comic, error) {
			return &comic.Comic{ID: id, UploaderID: strPtr("owner-1")}, nil
		},
		update: func(ctx context.Context, entity *comic.Comic) error {
			updated = true
			return nil
		},
	}
	service := comic.NewService(store, &fakeFiles{}, testLogger())

	_, err := service.UpdateComic(context.Background(), 7, "intruder-2", validUpdate())

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusForbidden, ae.HTTPStatus)
	assert.False(t, updated, "row must not be touched for a foreign caller")
}

/*
TestService_UpdateComic_AnonymousComic verifies a comic without an uploader
cannot be updated by anyone.
*/
func TestService_UpdateComic_AnonymousComic(t *testing.T) {
	store := &fakeStore{
		findByID: func(ctx context.Context, id int64) (*comic.Comic, error) {
			return &comic.Comic{ID: id, UploaderID: nil}, nil
		},
	}
	service := comic.NewService(store, &fakeFiles{}, testLogger())

	_, err := service.UpdateComic(context.Background(), 7, "anyone", validUpdate())

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusForbidden, ae.HTTPStatus)
}

/*
TestService_UpdateComic_Success verifies the new values reach the store and the
returned entity carries them. The stored file paths must not change.
*/
func TestService_UpdateComic_Success(t *testing.T) {
	var persisted *comic.Comic
	store := &fakeStore{
		findByID: func(ctx context.Context, id int64) (*comic.Comic, error) {
			return &comic.Comic{
				ID:         id,
				Title:      "Kingdom Come",
				Editorial:  comic.EditorialDC,
				UploaderID: strPtr("owner-1"),
				PDFPath:    "pdfs/kingdom-come.pdf",
			}, nil
		},
		update: func(ctx context.Context, entity *comic.Comic) error {
			persisted = entity
			return nil
		},
	}
	service := comic.NewService(store, &fakeFiles{}, testLogger())

	updated, err := service.UpdateComic(context.Background(), 7, "owner-1", validUpdate())

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "Kingdom Come: Absolute Edition", updated.Title)
	assert.Equal(t, "Justice League", updated.Family)
	assert.True(t, updated.IsCollection)
	assert.Equal(t, "pdfs/kingdom-come.pdf", updated.PDFPath)
	assert.Same(t, persisted, updated)
}
