// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package tag_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/tag"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
)

// fakeStore stubs the taxonomy repository.
type fakeStore struct {
	tags      []tag.Tag
	createErr error
	created   *tag.Tag
}

func (f *fakeStore) List(ctx context.Context) ([]tag.Tag, error) {
	return f.tags, nil
}

func (f *fakeStore) Create(ctx context.Context, entity *tag.Tag) error {
	if f.createErr != nil {
		return f.createErr
	}
	entity.ID = 1
	f.created = entity
	return nil
}

func (f *fakeStore) ListLikedByUser(ctx context.Context, userID string) ([]tag.Tag, error) {
	return f.tags, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestService_CreateTag covers validation, trimming, and duplicate handling.
*/
func TestService_CreateTag(t *testing.T) {
	t.Run("trims_and_persists", func(t *testing.T) {
		store := &fakeStore{}
		service := tag.NewService(store, testLogger())

		created, err := service.CreateTag(context.Background(), "  Cosmic  ")

		require.NoError(t, err)
		assert.Equal(t, "Cosmic", created.Name)
		assert.Equal(t, int64(1), created.ID)
		require.NotNil(t, store.created)
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		service := tag.NewService(&fakeStore{}, testLogger())

		_, err := service.CreateTag(context.Background(), "   ")

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})

	t.Run("oversized_name_rejected", func(t *testing.T) {
		service := tag.NewService(&fakeStore{}, testLogger())

		_, err := service.CreateTag(context.Background(), strings.Repeat("x", 101))

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})

	t.Run("duplicate_reported_as_conflict", func(t *testing.T) {
		store := &fakeStore{createErr: &pgconn.PgError{Code: "23505"}}
		service := tag.NewService(store, testLogger())

		_, err := service.CreateTag(context.Background(), "Cosmic")

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "CONFLICT", ae.Code)
		assert.Equal(t, "Tag name already exists", ae.Message)
	})
}
