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

// # Tag Association Tests

/*
TestService_AddTagToComic_MissingPair verifies a missing comic or tag yields
the shared not-found message, without revealing which side is absent.
*/
func TestService_AddTagToComic_MissingPair(t *testing.T) {
	tests := []struct {
		name        string
		comicExists bool
		tagExists   bool
	}{
		{"missing_comic", false, true},
		{"missing_tag", true, false},
		{"missing_both", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{
				exists: func(ctx context.Context, id int64) (bool, error) {
					return tt.comicExists, nil
				},
				tagExistsByID: func(ctx context.Context, id int64) (bool, error) {
					return tt.tagExists, nil
				},
			}
			service := comic.NewService(store, &fakeFiles{}, testLogger())

			err := service.AddTagToComic(context.Background(), 7, 3)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
			assert.Equal(t, "Comic or Tag not found", ae.Message)
		})
	}
}

/*
TestService_AddTagToComic_Idempotent verifies attaching the same pair twice
succeeds both times: the junction insert swallows the duplicate.
*/
func TestService_AddTagToComic_Idempotent(t *testing.T) {
	type pair struct{ comicID, tagID int64 }
	attached := map[pair]bool{}
	store := &fakeStore{
		exists: func(ctx context.Context, id int64) (bool, error) {
			return true, nil
		},
		tagExistsByID: func(ctx context.Context, id int64) (bool, error) {
			return true, nil
		},
		addTag: func(ctx context.Context, comicID, tagID int64) error {
			attached[pair{comicID, tagID}] = true
			return nil
		},
	}
	service := comic.NewService(store, &fakeFiles{}, testLogger())

	require.NoError(t, service.AddTagToComic(context.Background(), 7, 3))
	require.NoError(t, service.AddTagToComic(context.Background(), 7, 3))

	assert.Len(t, attached, 1)
	assert.True(t, attached[pair{7, 3}])
}

/*
TestService_RemoveTagFromComic_AbsentAssociation verifies detaching a pair
that was never associated reports not found.
*/
func TestService_RemoveTagFromComic_AbsentAssociation(t *testing.T) {
	store := &fakeStore{
		removeTag: func(ctx context.Context, comicID, tagID int64) (bool, error) {
			return false, nil
		},
	}
	service := comic.NewService(store, &fakeFiles{}, testLogger())

	err := service.RemoveTagFromComic(context.Background(), 7, 3)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Equal(t, "Tag association not found for this comic", ae.Message)
}

/*
TestService_RemoveTagFromComic_Success verifies a removed association passes
through without error.
*/
func TestService_RemoveTagFromComic_Success(t *testing.T) {
	var gotComicID, gotTagID int64
	store := &fakeStore{
		removeTag: func(ctx context.Context, comicID, tagID int64) (bool, error) {
			gotComicID, gotTagID = comicID, tagID
			return true, nil
		},
	}
	service := comic.NewService(store, &fakeFiles{}, testLogger())

	err := service.RemoveTagFromComic(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(7), gotComicID)
	assert.Equal(t, int64(3), gotTagID)
}
