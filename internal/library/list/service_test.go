// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package list_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/library/list"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
)

// fakeStore keeps lists in memory keyed by ID.
type fakeStore struct {
	byID      map[int64]*list.List
	nextID    int64
	createErr error
	renameErr error
	members   map[int64]map[int64]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		byID:    map[int64]*list.List{},
		nextID:  1,
		members: map[int64]map[int64]bool{},
	}
}

func (f *fakeStore) Create(ctx context.Context, entity *list.List) error {
	if f.createErr != nil {
		return f.createErr
	}
	entity.ID = f.nextID
	f.nextID++
	f.byID[entity.ID] = entity
	return nil
}

func (f *fakeStore) ListByUser(ctx context.Context, userID string, listType list.Type) ([]list.List, error) {
	var lists []list.List
	for _, entity := range f.byID {
		if entity.UserID != userID {
			continue
		}
		if listType != "" && entity.Type != listType {
			continue
		}
		lists = append(lists, *entity)
	}
	return lists, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id int64) (*list.List, error) {
	entity, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFound("List")
	}
	clone := *entity
	return &clone, nil
}

func (f *fakeStore) Rename(ctx context.Context, id int64, name string) error {
	if f.renameErr != nil {
		return f.renameErr
	}
	entity, ok := f.byID[id]
	if !ok {
		return apperr.NotFound("List")
	}
	entity.Name = name
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return apperr.NotFound("List")
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeStore) AddComic(ctx context.Context, listID, comicID int64) error {
	if f.members[listID] == nil {
		f.members[listID] = map[int64]bool{}
	}
	f.members[listID][comicID] = true
	return nil
}

func (f *fakeStore) RemoveComic(ctx context.Context, listID, comicID int64) (bool, error) {
	if !f.members[listID][comicID] {
		return false, nil
	}
	delete(f.members[listID], comicID)
	return true, nil
}

// fakeComics stubs the catalogue lookups.
type fakeComics struct {
	known  bool
	inList []*comic.Comic
}

func (f *fakeComics) Exists(ctx context.Context, id int64) (bool, error) {
	return f.known, nil
}

func (f *fakeComics) ListInUserList(ctx context.Context, listID int64) ([]*comic.Comic, error) {
	return f.inList, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedList(store *fakeStore, owner string) *list.List {
	entity := &list.List{UserID: owner, Name: "Favoritos", Type: list.TypeLiked}
	_ = store.Create(context.Background(), entity)
	return entity
}

/*
TestService_CreateList covers validation and the duplicate conflict.
*/
func TestService_CreateList(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := list.NewService(newFakeStore(), &fakeComics{}, testLogger())

		created, err := service.CreateList(context.Background(), "user-1", "  Favoritos  ", "liked")

		require.NoError(t, err)
		assert.Equal(t, "Favoritos", created.Name)
		assert.Equal(t, list.TypeLiked, created.Type)
	})

	t.Run("unknown_type_rejected", func(t *testing.T) {
		service := list.NewService(newFakeStore(), &fakeComics{}, testLogger())

		_, err := service.CreateList(context.Background(), "user-1", "Favoritos", "wishlist")

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})

	t.Run("duplicate_conflict", func(t *testing.T) {
		store := newFakeStore()
		store.createErr = &pgconn.PgError{Code: "23505"}
		service := list.NewService(store, &fakeComics{}, testLogger())

		_, err := service.CreateList(context.Background(), "user-1", "Favoritos", "liked")

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "CONFLICT", ae.Code)
		assert.Equal(t, "Ya tienes una lista de este tipo con el mismo nombre.", ae.Message)
	})
}

/*
TestService_ListLists verifies the type filter validation.
*/
func TestService_ListLists(t *testing.T) {
	store := newFakeStore()
	seedList(store, "user-1")
	service := list.NewService(store, &fakeComics{}, testLogger())

	lists, err := service.ListLists(context.Background(), "user-1", "liked")
	require.NoError(t, err)
	assert.Len(t, lists, 1)

	_, err = service.ListLists(context.Background(), "user-1", "wishlist")
	require.Error(t, err)
}

/*
TestService_GetListComics verifies owner scoping: missing and foreign lists
are indistinguishable to the caller.
*/
func TestService_GetListComics(t *testing.T) {
	store := newFakeStore()
	owned := seedList(store, "user-1")
	inList := []*comic.Comic{{ID: 3, Title: "Hellboy: Seed of Destruction"}}
	service := list.NewService(store, &fakeComics{known: true, inList: inList}, testLogger())

	t.Run("owner_reads", func(t *testing.T) {
		entity, comics, err := service.GetListComics(context.Background(), owned.ID, "user-1")

		require.NoError(t, err)
		assert.Equal(t, owned.ID, entity.ID)
		assert.Equal(t, inList, comics)
	})

	for _, tt := range []struct {
		name   string
		listID int64
		caller string
	}{
		{"foreign_caller", owned.ID, "intruder-2"},
		{"missing_list", 99, "user-1"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.GetListComics(context.Background(), tt.listID, tt.caller)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
			assert.Equal(t, "Lista no encontrada o no tienes permiso.", ae.Message)
		})
	}
}

/*
TestService_AddComic covers membership writes and their contract errors.
*/
func TestService_AddComic(t *testing.T) {
	t.Run("success_idempotent", func(t *testing.T) {
		store := newFakeStore()
		owned := seedList(store, "user-1")
		service := list.NewService(store, &fakeComics{known: true}, testLogger())

		require.NoError(t, service.AddComic(context.Background(), owned.ID, "user-1", 3))
		require.NoError(t, service.AddComic(context.Background(), owned.ID, "user-1", 3))
		assert.True(t, store.members[owned.ID][3])
	})

	t.Run("unknown_comic", func(t *testing.T) {
		store := newFakeStore()
		owned := seedList(store, "user-1")
		service := list.NewService(store, &fakeComics{known: false}, testLogger())

		err := service.AddComic(context.Background(), owned.ID, "user-1", 99)

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "Cómic no encontrado.", ae.Message)
	})
}

/*
TestService_RemoveComic verifies the not-in-list contract message.
*/
func TestService_RemoveComic(t *testing.T) {
	store := newFakeStore()
	owned := seedList(store, "user-1")
	service := list.NewService(store, &fakeComics{known: true}, testLogger())

	err := service.RemoveComic(context.Background(), owned.ID, "user-1", 3)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "El cómic no se encontró en esta lista.", ae.Message)

	require.NoError(t, service.AddComic(context.Background(), owned.ID, "user-1", 3))
	require.NoError(t, service.RemoveComic(context.Background(), owned.ID, "user-1", 3))
}

/*
TestService_RenameList verifies validation, scoping, and the rename conflict.
*/
func TestService_RenameList(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store := newFakeStore()
		owned := seedList(store, "user-1")
		service := list.NewService(store, &fakeComics{}, testLogger())

		renamed, err := service.RenameList(context.Background(), owned.ID, "user-1", "  Imprescindibles  ")

		require.NoError(t, err)
		assert.Equal(t, "Imprescindibles", renamed.Name)
		assert.Equal(t, "Imprescindibles", store.byID[owned.ID].Name)
	})

	t.Run("duplicate_conflict", func(t *testing.T) {
		store := newFakeStore()
		owned := seedList(store, "user-1")
		store.renameErr = &pgconn.PgError{Code: "23505"}
		service := list.NewService(store, &fakeComics{}, testLogger())

		_, err := service.RenameList(context.Background(), owned.ID, "user-1", "Favoritos")

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "CONFLICT", ae.Code)
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		store := newFakeStore()
		owned := seedList(store, "user-1")
		service := list.NewService(store, &fakeComics{}, testLogger())

		_, err := service.RenameList(context.Background(), owned.ID, "user-1", "   ")

		require.Error(t, err)
	})
}

/*
TestService_DeleteList verifies owner-scoped removal.
*/
func TestService_DeleteList(t *testing.T) {
	store := newFakeStore()
	owned := seedList(store, "user-1")
	service := list.NewService(store, &fakeComics{}, testLogger())

	require.Error(t, service.DeleteList(context.Background(), owned.ID, "intruder-2"))
	require.NoError(t, service.DeleteList(context.Background(), owned.ID, "user-1"))
	assert.Empty(t, store.byID)
}
