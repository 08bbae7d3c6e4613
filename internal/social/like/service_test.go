// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package like_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/social/like"
)

// fakeStore records like-marker mutations.
type fakeStore struct {
	added   bool
	removed bool
	exists  bool
	count   int64
}

func (f *fakeStore) Add(ctx context.Context, userID string, comicID int64) error {
	f.added = true
	return nil
}

func (f *fakeStore) Remove(ctx context.Context, userID string, comicID int64) error {
	f.removed = true
	return nil
}

func (f *fakeStore) Exists(ctx context.Context, userID string, comicID int64) (bool, error) {
	return f.exists, nil
}

func (f *fakeStore) Count(ctx context.Context, comicID int64) (int64, error) {
	return f.count, nil
}

// fakeComics stubs the catalogue lookups the service depends on.
type fakeComics struct {
	known bool
	liked []*comic.Comic
}

func (f *fakeComics) Exists(ctx context.Context, id int64) (bool, error) {
	return f.known, nil
}

func (f *fakeComics) ListLikedByUser(ctx context.Context, userID string) ([]*comic.Comic, error) {
	return f.liked, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestService_LikeComic_UnknownComic verifies marking an unknown comic is a 404.
*/
func TestService_LikeComic_UnknownComic(t *testing.T) {
	store := &fakeStore{}
	service := like.NewService(store, &fakeComics{known: false}, testLogger())

	err := service.LikeComic(context.Background(), "user-1", 99)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.False(t, store.added, "marker must not be written for unknown comics")
}

/*
TestService_LikeComic verifies the happy path reaches the store.
*/
func TestService_LikeComic(t *testing.T) {
	store := &fakeStore{}
	service := like.NewService(store, &fakeComics{known: true}, testLogger())

	require.NoError(t, service.LikeComic(context.Background(), "user-1", 7))
	assert.True(t, store.added)
}

/*
TestService_UnlikeComic verifies removal, including the never-liked case.
*/
func TestService_UnlikeComic(t *testing.T) {
	store := &fakeStore{}
	service := like.NewService(store, &fakeComics{known: true}, testLogger())

	// Removing a marker that was never set still succeeds.
	require.NoError(t, service.UnlikeComic(context.Background(), "user-1", 7))
	assert.True(t, store.removed)
}

/*
TestService_Status verifies the per-caller like flag.
*/
func TestService_Status(t *testing.T) {
	service := like.NewService(&fakeStore{exists: true}, &fakeComics{known: true}, testLogger())

	liked, err := service.Status(context.Background(), "user-1", 7)

	require.NoError(t, err)
	assert.True(t, liked)
}

/*
TestService_CountForComic verifies the public like counter.
*/
func TestService_CountForComic(t *testing.T) {
	service := like.NewService(&fakeStore{count: 12}, &fakeComics{known: true}, testLogger())

	count, err := service.CountForComic(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(12), count)

	_, err = service.CountForComic(context.Background(), 8)
	require.NoError(t, err)
}

/*
TestService_ListMine verifies the hydrated liked listing passes through.
*/
func TestService_ListMine(t *testing.T) {
	liked := []*comic.Comic{{ID: 7, Title: "Daredevil: Born Again"}}
	service := like.NewService(&fakeStore{}, &fakeComics{known: true, liked: liked}, testLogger())

	comics, err := service.ListMine(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, liked, comics)
}
