// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package pending_test

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
	"github.com/viliandp/HeroFlicks-BackEnd/internal/social/pending"
)

// fakeStore records pending-marker mutations.
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
	known   bool
	pending []*comic.Comic
}

func (f *fakeComics) Exists(ctx context.Context, id int64) (bool, error) {
	return f.known, nil
}

func (f *fakeComics) ListPendingByUser(ctx context.Context, userID string) ([]*comic.Comic, error) {
	return f.pending, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestService_MarkPending_UnknownComic verifies marking an unknown comic is a 404.
*/
func TestService_MarkPending_UnknownComic(t *testing.T) {
	store := &fakeStore{}
	service := pending.NewService(store, &fakeComics{known: false}, testLogger())

	err := service.MarkPending(context.Background(), "user-1", 99)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.False(t, store.added)
}

/*
TestService_MarkAndUnmark verifies the toggle reaches the store and that
unmarking an unmarked comic still succeeds.
*/
func TestService_MarkAndUnmark(t *testing.T) {
	store := &fakeStore{}
	service := pending.NewService(store, &fakeComics{known: true}, testLogger())

	require.NoError(t, service.MarkPending(context.Background(), "user-1", 7))
	assert.True(t, store.added)

	require.NoError(t, service.UnmarkPending(context.Background(), "user-1", 7))
	assert.True(t, store.removed)
}

/*
TestService_Status verifies the per-caller pending flag.
*/
func TestService_Status(t *testing.T) {
	service := pending.NewService(&fakeStore{exists: true}, &fakeComics{known: true}, testLogger())

	marked, err := service.Status(context.Background(), "user-1", 7)

	require.NoError(t, err)
	assert.True(t, marked)
}

/*
TestService_CountForComic verifies the public pending counter.
*/
func TestService_CountForComic(t *testing.T) {
	service := pending.NewService(&fakeStore{count: 4}, &fakeComics{known: true}, testLogger())

	count, err := service.CountForComic(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

/*
TestService_ListMine verifies the hydrated pending listing passes through.
*/
func TestService_ListMine(t *testing.T) {
	marked := []*comic.Comic{{ID: 7, Title: "Saga of the Swamp Thing"}}
	service := pending.NewService(&fakeStore{}, &fakeComics{known: true, pending: marked}, testLogger())

	comics, err := service.ListMine(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, marked, comics)
}
