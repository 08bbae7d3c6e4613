// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic

import (
	"context"
	"fmt"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/database/schema"
)

// # Discovery Queries

/*
MostLiked returns the top comics by like count.

Description: Orders on the correlated like-count column from the shared
SELECT head. Ties are broken alphabetically by title so the ranking is
stable across requests.

Parameters:
  - context: context.Context
  - limit: int

Returns:
  - []*Comic: Hydrated ranking page
  - error: Database retrieval failures
*/
func (repository *store) MostLiked(context context.Context, limit int) ([]*Comic, error) {
	query := baseSelect() + fmt.Sprintf(
		" ORDER BY likescount DESC, c.%s ASC LIMIT $1",
		schema.Comic.Title,
	)
	return repository.listHydrated(context, query, limit)
}

/*
MostCommented returns the top comics by comment count, ties broken by title.
*/
func (repository *store) MostCommented(context context.Context, limit int) ([]*Comic, error) {
	query := baseSelect() + fmt.Sprintf(
		" ORDER BY commentscount DESC, c.%s ASC LIMIT $1",
		schema.Comic.Title,
	)
	return repository.listHydrated(context, query, limit)
}

/*
RecentlyAdded returns the newest uploads, ties broken by title.
*/
func (repository *store) RecentlyAdded(context context.Context, limit int) ([]*Comic, error) {
	query := baseSelect() + fmt.Sprintf(
		" ORDER BY c.%s DESC, c.%s ASC LIMIT $1",
		schema.Comic.CreatedAt, schema.Comic.Title,
	)
	return repository.listHydrated(context, query, limit)
}

/*
PopularByTag returns comics carrying the named tag, ranked by like count.

Description: Membership is "carries the tag"; the likes table is left-joined
so a tagged comic with zero likes still appears, ranked last with a zero
count. The ranking counts distinct likers and breaks ties by title.

Parameters:
  - context: context.Context
  - tagName: string (Exact tag name; existence is checked by the service)
  - limit: int

Returns:
  - []*Comic: Hydrated ranking page, possibly empty
  - error: Database retrieval failures
*/
func (repository *store) PopularByTag(context context.Context, tagName string, limit int) ([]*Comic, error) {
	return repository.listHydrated(context, popularByTagQuery(), tagName, limit)
}

// popularByTagQuery builds the tag-popularity ranking statement.
func popularByTagQuery() string {
	return baseSelect() + fmt.Sprintf(`
		JOIN %s ct ON ct.%s = c.%s
		JOIN %s t ON t.%s = ct.%s
		LEFT JOIN %s l ON l.%s = c.%s
		WHERE t.%s = $1
		GROUP BY c.%s
		ORDER BY COUNT(DISTINCT l.%s) DESC, c.%s ASC
		LIMIT $2`,
		schema.ComicTag.Table, schema.ComicTag.ComicID, schema.Comic.ID,
		schema.Tag.Table, schema.Tag.ID, schema.ComicTag.TagID,
		schema.ComicLike.Table, schema.ComicLike.ComicID, schema.Comic.ID,
		schema.Tag.Name,
		schema.Comic.ID,
		schema.ComicLike.UserID, schema.Comic.Title,
	)
}

/*
Search returns comics matching a case-insensitive substring.

Description: A single left-joined pass matches the term against title,
editorial, family, and tag names; DISTINCT collapses comics matched through
several of their tags.

Parameters:
  - context: context.Context
  - term: string (Raw search term; wildcards are added here)

Returns:
  - []*Comic: Hydrated result set ordered by title ASC
  - error: Database retrieval failures
*/
func (repository *store) Search(context context.Context, term string) ([]*Comic, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT
			c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s,
			(SELECT COUNT(*) FROM %s l WHERE l.%s = c.%s) AS likescount,
			(SELECT COUNT(*) FROM %s m WHERE m.%s = c.%s) AS commentscount
		FROM %s c
		LEFT JOIN %s ct ON ct.%s = c.%s
		LEFT JOIN %s t ON t.%s = ct.%s
		WHERE c.%s ILIKE $1 OR c.%s ILIKE $1 OR c.%s ILIKE $1 OR t.%s ILIKE $1
		ORDER BY c.%s ASC`,
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
		schema.ComicTag.Table, schema.ComicTag.ComicID, schema.Comic.ID,
		schema.Tag.Table, schema.Tag.ID, schema.ComicTag.TagID,
		schema.Comic.Title, schema.Comic.Editorial, schema.Comic.Family, schema.Tag.Name,
		schema.Comic.Title,
	)
	return repository.listHydrated(context, query, "%"+term+"%")
}

// # Recommendation Queries

// LikedComicIDs returns the IDs of every comic the user has liked.
func (repository *store) LikedComicIDs(context context.Context, userID string) ([]int64, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		schema.ComicLike.ComicID, schema.ComicLike.Table, schema.ComicLike.UserID,
	)

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list liked comic ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan liked comic id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

/*
TopTagsForComics returns the dominant tags across a set of comics.

Description: Counts junction rows per tag over the given comic IDs. The
frequency ordering drives the "for you" feed; the secondary name ordering
makes equal-frequency results deterministic.

Parameters:
  - context: context.Context
  - comicIDs: []int64
  - limit: int

Returns:
  - []Tag: Tags by frequency DESC, name ASC
  - error: Database retrieval failures
*/
func (repository *store) TopTagsForComics(context context.Context, comicIDs []int64, limit int) ([]Tag, error) {
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s
		FROM %s ct
		JOIN %s t ON t.%s = ct.%s
		WHERE ct.%s = ANY($1)
		GROUP BY t.%s, t.%s
		ORDER BY COUNT(*) DESC, t.%s ASC
		LIMIT $2`,
		schema.Tag.ID, schema.Tag.Name,
		schema.ComicTag.Table,
		schema.Tag.Table, schema.Tag.ID, schema.ComicTag.TagID,
		schema.ComicTag.ComicID,
		schema.Tag.ID, schema.Tag.Name,
		schema.Tag.Name,
	)

	rows, err := repository.pool.Query(context, query, comicIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to rank tags: %w", err)
	}
	defer rows.Close()

	var tags []Tag
	for rows.Next() {
		var tag Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan ranked tag: %w", err)
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

// ListByAnyTag returns distinct comics carrying any of the tags, title ASC.
func (repository *store) ListByAnyTag(context context.Context, tagIDs []int64) ([]*Comic, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT
			c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s,
			(SELECT COUNT(*) FROM %s l WHERE l.%s = c.%s) AS likescount,
			(SELECT COUNT(*) FROM %s m WHERE m.%s = c.%s) AS commentscount
		FROM %s c
		JOIN %s ct ON ct.%s = c.%s
		WHERE ct.%s = ANY($1)
		ORDER BY c.%s ASC`,
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
		schema.ComicTag.Table, schema.ComicTag.ComicID, schema.Comic.ID,
		schema.ComicTag.TagID,
		schema.Comic.Title,
	)
	return repository.listHydrated(context, query, tagIDs)
}
