// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

/*
Package comic provides the PostgreSQL implementation for the catalogue's data access.

It keeps queries explicit and index-friendly:
  - Engagement Counts: Correlated sub-selects hydrate like/comment counts in
    the same round-trip as the comic rows.
  - Batched Tag Hydration: Tags for a whole result page are fetched with one
    ANY($1) query and grouped in memory, never per-row.
  - ACID Transactions: Comic row and tag junction rows are written atomically.
*/
package comic

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/database/schema"
)

// # PostgreSQL Repository

// store implements the [Store] interface using pgx.
type store struct {
	pool *pgxpool.Pool
}

// NewStore constructs a PostgreSQL backed comic store.
func NewStore(pool *pgxpool.Pool) Store {
	return &store{pool: pool}
}

// # Shared Query Fragments

// baseSelect returns the SELECT head shared by every comic query: the core
// columns plus correlated engagement counts, aliased as "c".
func baseSelect() string {
	return fmt.Sprintf(`
		SELECT
			c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s,
			(SELECT COUNT(*) FROM %s l WHERE l.%s = c.%s) AS likescount,
			(SELECT COUNT(*) FROM %s m WHERE m.%s = c.%s) AS commentscount
		FROM %s c`,
		schema.Comic.ID,
		schema.Comic.Title,
		schema.Comic.Editorial,
		schema.Comic.PDFPath,
		schema.Comic.IsCollection,
		schema.Comic.Family,
		schema.Comic.CoverURL,
		schema.Comic.UploaderID,
		schema.Comic.CreatedAt,
		schema.ComicLike.Table, schema.ComicLike.ComicID, schema.Comic.ID,
		schema.Comment.Table, schema.Comment.ComicID, schema.Comic.ID,
		schema.Comic.Table,
	)
}

// scanComics drains a row set produced by [baseSelect]-shaped queries.
func scanComics(rows pgx.Rows) ([]*Comic, error) {
	defer rows.Close()

	var comics []*Comic
	for rows.Next() {
		comic := &Comic{}
		err := rows.Scan(
			&comic.ID,
			&comic.Title,
			&comic.Editorial,
			&comic.PDFPath,
			&comic.IsCollection,
			&comic.Family,
			&comic.CoverURL,
			&comic.UploaderID,
			&comic.CreatedAt,
			&comic.LikesCount,
			&comic.CommentsCount,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan comic: %w", err)
		}
		comics = append(comics, comic)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: comic row iteration failed: %w", err)
	}

	return comics, nil
}

/*
hydrateTags attaches tags to a page of comics with a single batched query.

Description: Collects every comic ID in the result set, fetches all junction
rows with one `comicid = ANY($1)` query, and groups the tags in memory. This
replaces the per-comic lookup loop with exactly one extra round-trip
regardless of page size.

Parameters:
  - context: context.Context
  - comics: []*Comic (Entities to hydrate in place)

Returns:
  - error: Database retrieval failures
*/
func (repository *store) hydrateTags(context context.Context, comics []*Comic) error {
	if len(comics) == 0 {
		return nil
	}

	ids := make([]int64, len(comics))
	byID := make(map[int64]*Comic, len(comics))
	for i, comic := range comics {
		ids[i] = comic.ID
		byID[comic.ID] = comic
		comic.Tags = []Tag{}
	}

	query := fmt.Sprintf(`
		SELECT ct.%s, t.%s, t.%s
		FROM %s ct
		JOIN %s t ON t.%s = ct.%s
		WHERE ct.%s = ANY($1)
		ORDER BY t.%s ASC`,
		schema.ComicTag.ComicID, schema.Tag.ID, schema.Tag.Name,
		schema.ComicTag.Table,
		schema.Tag.Table, schema.Tag.ID, schema.ComicTag.TagID,
		schema.ComicTag.ComicID,
		schema.Tag.Name,
	)

	rows, err := repository.pool.Query(context, query, ids)
	if err != nil {
		return fmt.Errorf("postgres: failed to hydrate tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var comicID int64
		var tag Tag
		if err := rows.Scan(&comicID, &tag.ID, &tag.Name); err != nil {
			return fmt.Errorf("postgres: failed to scan tag row: %w", err)
		}
		if comic, ok := byID[comicID]; ok {
			comic.Tags = append(comic.Tags, tag)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("postgres: tag row iteration failed: %w", err)
	}

	return nil
}

// listHydrated runs a baseSelect-shaped query and hydrates the tag sets.
func (repository *store) listHydrated(context context.Context, query string, args ...any) ([]*Comic, error) {
	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: comic query failed: %w", err)
	}

	comics, err := scanComics(rows)
	if err != nil {
		return nil, err
	}

	if err := repository.hydrateTags(context, comics); err != nil {
		return nil, err
	}

	return comics, nil
}

// # Catalogue Queries

/*
List returns the catalogue ordered by title, optionally scoped to one tag.

Description: The optional tag scope joins through the junction table on the
exact tag name. An unknown tag simply produces zero rows; the service layer
decides how to phrase that for the client.

Parameters:
  - context: context.Context
  - tagName: string ("" lists everything)

Returns:
  - []*Comic: Hydrated comic entities
  - error: Database retrieval failures
*/
func (repository *store) List(context context.Context, tagName string) ([]*Comic, error) {
	if tagName == "" {
		query := baseSelect() + fmt.Sprintf(" ORDER BY c.%s ASC", schema.Comic.Title)
		return repository.listHydrated(context, query)
	}

	query := baseSelect() + fmt.Sprintf(`
		JOIN %s ct ON ct.%s = c.%s
		JOIN %s t ON t.%s = ct.%s
		WHERE t.%s = $1
		ORDER BY c.%s ASC`,
		schema.ComicTag.Table, schema.ComicTag.ComicID, schema.Comic.ID,
		schema.Tag.Table, schema.Tag.ID, schema.ComicTag.TagID,
		schema.Tag.Name,
		schema.Comic.Title,
	)
	return repository.listHydrated(context, query, tagName)
}

/*
FindByID retrieves a single comic with tags and engagement counts.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Comic: The hydrated domain entity
  - error: apperr.NotFound if the comic does not exist
*/
func (repository *store) FindByID(context context.Context, id int64) (*Comic, error) {
	query := baseSelect() + fmt.Sprintf(" WHERE c.%s = $1", schema.Comic.ID)

	comic := &Comic{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&comic.ID,
		&comic.Title,
		&comic.Editorial,
		&comic.PDFPath,
		&comic.IsCollection,
		&comic.Family,
		&comic.CoverURL,
		&comic.UploaderID,
		&comic.CreatedAt,
		&comic.LikesCount,
		&comic.CommentsCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Comic")
		}
		return nil, fmt.Errorf("postgres: failed to find comic by id: %w", err)
	}

	if err := repository.hydrateTags(context, []*Comic{comic}); err != nil {
		return nil, err
	}

	return comic, nil
}

/*
Create persists a comic and its tag associations in one transaction.

Description: The comic row is inserted first with RETURNING to obtain the
generated ID and creation timestamp. Junction rows are then queued through a
single pgx.Batch using ON CONFLICT DO NOTHING so repeated tag IDs cannot
fail the upload. Any failure rolls the whole sequence back: no comic row
ever exists without its tag set.

Parameters:
  - context: context.Context
  - comic: *Comic (ID and CreatedAt written back on success)
  - tagIDs: []int64

Returns:
  - error: Storage or constraint failures
*/
func (repository *store) Create(context context.Context, comic *Comic, tagIDs []int64) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s`,
		schema.Comic.Table,
		schema.Comic.Title, schema.Comic.Editorial, schema.Comic.PDFPath,
		schema.Comic.IsCollection, schema.Comic.Family, schema.Comic.CoverURL,
		schema.Comic.UploaderID,
		schema.Comic.ID, schema.Comic.CreatedAt,
	)

	err = transaction.QueryRow(context, query,
		comic.Title,
		comic.Editorial,
		comic.PDFPath,
		comic.IsCollection,
		comic.Family,
		comic.CoverURL,
		comic.UploaderID,
	).Scan(&comic.ID, &comic.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres: failed to create comic: %w", err)
	}

	if len(tagIDs) > 0 {
		insertQuery := fmt.Sprintf(
			"INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			schema.ComicTag.Table, schema.ComicTag.ComicID, schema.ComicTag.TagID,
		)

		batch := &pgx.Batch{}
		for _, tagID := range tagIDs {
			batch.Queue(insertQuery, comic.ID, tagID)
		}

		response := transaction.SendBatch(context, batch)
		if err := response.Close(); err != nil {
			return fmt.Errorf("postgres: failed to associate tags: %w", err)
		}
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: failed to commit create transaction: %w", err)
	}

	return nil
}

// Update rewrites the mutable metadata columns of one comic row.
func (repository *store) Update(context context.Context, comic *Comic) error {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4 WHERE %s = $5",
		schema.Comic.Table,
		schema.Comic.Title, schema.Comic.Editorial, schema.Comic.Family,
		schema.Comic.IsCollection,
		schema.Comic.ID,
	)

	result, err := repository.pool.Exec(context, query,
		comic.Title,
		comic.Editorial,
		comic.Family,
		comic.IsCollection,
		comic.ID,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to update comic: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Comic")
	}

	return nil
}

/*
Delete removes a comic row permanently.

Description: Dependent rows (tag junctions, likes, pendings, comments, list
memberships) are removed by ON DELETE CASCADE constraints, so a single
statement suffices.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - error: apperr.NotFound if no row was removed
*/
func (repository *store) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.Comic.Table, schema.Comic.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete comic: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Comic")
	}

	return nil
}

// Exists reports whether a comic row exists.
func (repository *store) Exists(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", schema.Comic.Table, schema.Comic.ID)

	var exists bool
	if err := repository.pool.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres: failed to check comic existence: %w", err)
	}

	return exists, nil
}

// ListLikedByUser returns one user's liked comics, most recent like first.
func (repository *store) ListLikedByUser(context context.Context, userID string) ([]*Comic, error) {
	query := baseSelect() + fmt.Sprintf(`
		JOIN %s ul ON ul.%s = c.%s
		WHERE ul.%s = $1
		ORDER BY ul.%s DESC, c.%s ASC`,
		schema.ComicLike.Table, schema.ComicLike.ComicID, schema.Comic.ID,
		schema.ComicLike.UserID,
		schema.ComicLike.CreatedAt, schema.Comic.Title,
	)
	return repository.listHydrated(context, query, userID)
}

// ListPendingByUser returns one user's pending comics, most recently marked first.
func (repository *store) ListPendingByUser(context context.Context, userID string) ([]*Comic, error) {
	query := baseSelect() + fmt.Sprintf(`
		JOIN %s up ON up.%s = c.%s
		WHERE up.%s = $1
		ORDER BY up.%s DESC, c.%s ASC`,
		schema.PendingComic.Table, schema.PendingComic.ComicID, schema.Comic.ID,
		schema.PendingComic.UserID,
		schema.PendingComic.CreatedAt, schema.Comic.Title,
	)
	return repository.listHydrated(context, query, userID)
}

// ListInUserList returns the comics on one user list, most recently added
// first.
func (repository *store) ListInUserList(context context.Context, listID int64) ([]*Comic, error) {
	query := baseSelect() + fmt.Sprintf(`
		JOIN %s lc ON lc.%s = c.%s
		WHERE lc.%s = $1
		ORDER BY lc.%s DESC, c.%s ASC`,
		schema.UserListComic.Table, schema.UserListComic.ComicID, schema.Comic.ID,
		schema.UserListComic.ListID,
		schema.UserListComic.AddedAt, schema.Comic.Title,
	)
	return repository.listHydrated(context, query, listID)
}

// TagExists reports whether a tag with the exact name exists.
func (repository *store) TagExists(context context.Context, name string) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", schema.Tag.Table, schema.Tag.Name)

	var exists bool
	if err := repository.pool.QueryRow(context, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres: failed to check tag existence: %w", err)
	}

	return exists, nil
}

// TagExistsByID reports whether a tag row exists.
func (repository *store) TagExistsByID(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", schema.Tag.Table, schema.Tag.ID)

	var exists bool
	if err := repository.pool.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres: failed to check tag existence: %w", err)
	}

	return exists, nil
}

// AddTag attaches a tag to a comic, ignoring an already-present pair.
func (repository *store) AddTag(context context.Context, comicID, tagID int64) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		schema.ComicTag.Table, schema.ComicTag.ComicID, schema.ComicTag.TagID,
	)

	if _, err := repository.pool.Exec(context, query, comicID, tagID); err != nil {
		return fmt.Errorf("postgres: failed to add tag to comic: %w", err)
	}

	return nil
}

// RemoveTag detaches a tag from a comic, reporting whether a row existed.
func (repository *store) RemoveTag(context context.Context, comicID, tagID int64) (bool, error) {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1 AND %s = $2",
		schema.ComicTag.Table, schema.ComicTag.ComicID, schema.ComicTag.TagID,
	)

	result, err := repository.pool.Exec(context, query, comicID, tagID)
	if err != nil {
		return false, fmt.Errorf("postgres: failed to remove tag from comic: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ListTagsForComic returns the tags attached to one comic, name ASC.
func (repository *store) ListTagsForComic(context context.Context, comicID int64) ([]Tag, error) {
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s
		FROM %s t
		JOIN %s ct ON ct.%s = t.%s
		WHERE ct.%s = $1
		ORDER BY t.%s ASC`,
		schema.Tag.ID, schema.Tag.Name,
		schema.Tag.Table,
		schema.ComicTag.Table, schema.ComicTag.TagID, schema.Tag.ID,
		schema.ComicTag.ComicID,
		schema.Tag.Name,
	)

	rows, err := repository.pool.Query(context, query, comicID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list comic tags: %w", err)
	}
	defer rows.Close()

	var tags []Tag
	for rows.Next() {
		var tag Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}
