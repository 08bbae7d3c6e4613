// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
)

// # Test Doubles

// fakeStore stubs the catalogue repository. Only the methods a test assigns
// are callable; anything else panics via the embedded nil interface, which
// doubles as a guard against unexpected store access.
type fakeStore struct {
	comic.Store

	findByID         func(ctx context.Context, id int64) (*comic.Comic, error)
	create           func(ctx context.Context, entity *comic.Comic, tagIDs []int64) error
	update           func(ctx context.Context, entity *comic.Comic) error
	delete           func(ctx context.Context, id int64) error
	exists           func(ctx context.Context, id int64) (bool, error)
	tagExists        func(ctx context.Context, name string) (bool, error)
	tagExistsByID    func(ctx context.Context, id int64) (bool, error)
	addTag           func(ctx context.Context, comicID, tagID int64) error
	removeTag        func(ctx context.Context, comicID, tagID int64) (bool, error)
	listTagsForComic func(ctx context.Context, comicID int64) ([]comic.Tag, error)
	mostLiked        func(ctx context.Context, limit int) ([]*comic.Comic, error)
	popularByTag     func(ctx context.Context, tagName string, limit int) ([]*comic.Comic, error)
	search           func(ctx context.Context, term string) ([]*comic.Comic, error)
	likedComicIDs    func(ctx context.Context, userID string) ([]int64, error)
	topTagsForComics func(ctx context.Context, comicIDs []int64, limit int) ([]comic.Tag, error)
	listByAnyTag     func(ctx context.Context, tagIDs []int64) ([]*comic.Comic, error)
}

func (f *fakeStore) FindByID(ctx context.Context, id int64) (*comic.Comic, error) {
	return f.findByID(ctx, id)
}

func (f *fakeStore) Create(ctx context.Context, entity *comic.Comic, tagIDs []int64) error {
	return f.create(ctx, entity, tagIDs)
}

func (f *fakeStore) Update(ctx context.Context, entity *comic.Comic) error {
	return f.update(ctx, entity)
}

func (f *fakeStore) Delete(ctx context.Context, id int64) error {
	return f.delete(ctx, id)
}

func (f *fakeStore) Exists(ctx context.Context, id int64) (bool, error) {
	return f.exists(ctx, id)
}

func (f *fakeStore) TagExists(ctx context.Context, name string) (bool, error) {
	return f.tagExists(ctx, name)
}

func (f *fakeStore) TagExistsByID(ctx context.Context, id int64) (bool, error) {
	return f.tagExistsByID(ctx, id)
}

func (f *fakeStore) AddTag(ctx context.Context, comicID, tagID int64) error {
	return f.addTag(ctx, comicID, tagID)
}

func (f *fakeStore) RemoveTag(ctx context.Context, comicID, tagID int64) (bool, error) {
	return f.removeTag(ctx, comicID, tagID)
}

func (f *fakeStore) ListTagsForComic(ctx context.Context, comicID int64) ([]comic.Tag, error) {
	return f.listTagsForComic(ctx, comicID)
}

func (f *fakeStore) MostLiked(ctx context.Context, limit int) ([]*comic.Comic, error) {
	return f.mostLiked(ctx, limit)
}

func (f *fakeStore) PopularByTag(ctx context.Context, tagName string, limit int) ([]*comic.Comic, error) {
	return f.popularByTag(ctx, tagName, limit)
}

func (f *fakeStore) Search(ctx context.Context, term string) ([]*comic.Comic, error) {
	return f.search(ctx, term)
}

func (f *fakeStore) LikedComicIDs(ctx context.Context, userID string) ([]int64, error) {
	return f.likedComicIDs(ctx, userID)
}

func (f *fakeStore) TopTagsForComics(ctx context.Context, comicIDs []int64, limit int) ([]comic.Tag, error) {
	return f.topTagsForComics(ctx, comicIDs, limit)
}

func (f *fakeStore) ListByAnyTag(ctx context.Context, tagIDs []int64) ([]*comic.Comic, error) {
	return f.listByAnyTag(ctx, tagIDs)
}

// fakeFiles stubs file placement and records removals.
type fakeFiles struct {
	savePDFPath   string
	savePDFErr    error
	saveImagePath string
	saveImageErr  error
	removeErr     error

	removed []string
}

func (f *fakeFiles) SavePDF(*multipart.FileHeader) (string, error) {
	return f.savePDFPath, f.savePDFErr
}

func (f *fakeFiles) SaveImage(*multipart.FileHeader) (string, error) {
	return f.saveImagePath, f.saveImageErr
}

func (f *fakeFiles) Remove(relativePath string) error {
	f.removed = append(f.removed, relativePath)
	return f.removeErr
}

func (f *fakeFiles) Resolve(relativePath string) string {
	return "/srv/uploads/" + relativePath
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(value string) *string {
	return &value
}

// # Lookup Tests

/*
TestService_ListComicTags_MissingComic verifies a missing comic yields 404
rather than an empty tag list.
*/
func TestService_ListComicTags_MissingComic(t *testing.T) {
	store := &fakeStore{
		findByID: func(ctx context.Context, id int64) (*comic.Comic, error) {
			return nil, apperr.NotFound("Comic")
		},
	}
	service := comic.NewService(store, &fakeFiles{}, testLogger())

	_, err := service.ListComicTags(context.Background(), 99)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
}

// # Removal Tests

/*
TestService_DeleteComic_ForeignUploader verifies only the uploader may delete.
*/
func TestService_DeleteComic_ForeignUploader(t *testing.T) {
	deleted := false
	store := &fakeStore{
		findByID: func(ctx context.Context, id int64) (*comic.Comic, error) {
			return &comic.Comic{ID: id, UploaderID: strPtr("owner-1")}, nil
		},
		delete: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	service := comic.NewService(store, &fakeFiles{}, testLogger())

	err := service.DeleteComic(context.Background(), 7, "intruder-2")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusForbidden, ae.HTTPStatus)
	assert.False(t, deleted, "row must not be touched for a foreign caller")
}

/*
TestService_DeleteComic_AnonymousComic verifies a comic without an uploader
cannot be deleted by anyone.
*/
func TestService_DeleteComic_AnonymousComic(t *testing.T) {
	store := &fakeStore{
		findByID: func(ctx context.Context, id int64) (*comic.Comic, error) {
			return &comic.Comic{ID: id, UploaderID: nil}, nil
		},
	}
	service := comic.NewService(store, &fakeFiles{}, testLogger())

	err := service.DeleteComic(context.Background(), 7, "anyone")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusForbidden, ae.HTTPStatus)
}

/*
TestService_DeleteComic_RemovesFiles verifies the row goes first and both
stored files are removed afterwards.
*/
func TestService_DeleteComic_RemovesFiles(t *testing.T) {
	store := &fakeStore{
		findByID: func(ctx context.Context, id int64) (*comic.Comic, error) {
			return &comic.Comic{
				ID:         id,
				UploaderID: strPtr("owner-1"),
				PDFPath:    "pdfs/doc.pdf",
				CoverURL:   "covers/doc.jpg",
			}, nil
		},
		delete: func(ctx context.Context, id int64) error { return nil },
	}
	files := &fakeFiles{}
	service := comic.NewService(store, files, testLogger())

	err := service.DeleteComic(context.Background(), 7, "owner-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"pdfs/doc.pdf", "covers/doc.jpg"}, files.removed)
}

/*
TestService_DeleteComic_FileCleanupBestEffort verifies a failed file removal
does not fail the delete, and that an absent cover is skipped.
*/
func TestService_DeleteComic_FileCleanupBestEffort(t *testing.T) {
	store := &fakeStore{
		findByID: func(ctx context.Context, id int64) (*comic.Comic, error) {
			return &comic.Comic{ID: id, UploaderID: strPtr("owner-1"), PDFPath: "pdfs/doc.pdf"}, nil
		},
		delete: func(ctx context.Context, id int64) error { return nil },
	}
	files := &fakeFiles{removeErr: errors.New("disk detached")}
	service := comic.NewService(store, files, testLogger())

	err := service.DeleteComic(context.Background(), 7, "owner-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"pdfs/doc.pdf"}, files.removed, "empty cover path must be skipped")
}

/*
TestService_ResolvePDFPath verifies the absolute path and title resolution.
*/
func TestService_ResolvePDFPath(t *testing.T) {
	store := &fakeStore{
		findByID: func(ctx context.Context, id int64) (*comic.Comic, error) {
			return &comic.Comic{ID: id, Title: "Watchmen", PDFPath: "pdfs/watchmen.pdf"}, nil
		},
	}
	service := comic.NewService(store, &fakeFiles{}, testLogger())

	path, title, err := service.ResolvePDFPath(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "/srv/uploads/pdfs/watchmen.pdf", path)
	assert.Equal(t, "Watchmen", title)
}
