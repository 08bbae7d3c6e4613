// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/ctxutil"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/sec"
)

// forYouRequest performs an authenticated GET /for-you against a router built
// from the given store and decodes the JSON body into a generic map.
func forYouRequest(t *testing.T, store *fakeStore) map[string]interface{} {
	t.Helper()

	service := comic.NewService(store, &fakeFiles{}, testLogger())
	router := chi.NewRouter()
	comic.NewHandler(service).RegisterRoutes(router)

	request := httptest.NewRequest(http.MethodGet, "/for-you", nil)
	claims := &sec.AuthClaims{UserID: "user-1", Username: "reader"}
	request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

/*
TestHandler_ForYou_EmptyStatesOmitTags verifies the empty states carry only
the message and comics fields: no tags drove the result, so the tag key is
absent entirely rather than an empty array.
*/
func TestHandler_ForYou_EmptyStatesOmitTags(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeStore
	}{
		{
			name: "no_likes",
			store: &fakeStore{
				likedComicIDs: func(ctx context.Context, userID string) ([]int64, error) {
					return nil, nil
				},
			},
		},
		{
			name: "untagged_likes",
			store: &fakeStore{
				likedComicIDs: func(ctx context.Context, userID string) ([]int64, error) {
					return []int64{4}, nil
				},
				topTagsForComics: func(ctx context.Context, comicIDs []int64, limit int) ([]comic.Tag, error) {
					return nil, nil
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := forYouRequest(t, tt.store)

			assert.NotContains(t, body, "recommended_based_on_tags")
			assert.Contains(t, body, "message")
			assert.Contains(t, body, "comics")
		})
	}
}

/*
TestHandler_ForYou_SuccessCarriesTags verifies the driving tags are present
when the feed was actually tag-driven.
*/
func TestHandler_ForYou_SuccessCarriesTags(t *testing.T) {
	store := &fakeStore{
		likedComicIDs: func(ctx context.Context, userID string) ([]int64, error) {
			return []int64{4}, nil
		},
		topTagsForComics: func(ctx context.Context, comicIDs []int64, limit int) ([]comic.Tag, error) {
			return []comic.Tag{{ID: 11, Name: "Cosmic"}}, nil
		},
		listByAnyTag: func(ctx context.Context, tagIDs []int64) ([]*comic.Comic, error) {
			return []*comic.Comic{{ID: 4, Title: "Annihilation"}}, nil
		},
	}

	body := forYouRequest(t, store)

	require.Contains(t, body, "recommended_based_on_tags")
	tags, ok := body["recommended_based_on_tags"].([]interface{})
	require.True(t, ok)
	require.Len(t, tags, 1)
}
