// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic

import "context"

// # Comic Data Access

// Store defines the data access contract for the comic catalogue.
type Store interface {
	ExploreStore
	RecommendStore

	/*
		List returns the catalogue ordered by title.

		Parameters:
		  - context: context.Context
		  - tagName: string (Optional: restrict to comics carrying this tag; "" = all)

		Returns:
		  - []*Comic: Hydrated comic entities (tags + engagement counts)
		  - error: Database retrieval failures
	*/
	List(context context.Context, tagName string) ([]*Comic, error)

	/*
		FindByID returns the comic with the given ID.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Comic: The hydrated domain entity
		  - error: apperr NotFound if missing
	*/
	FindByID(context context.Context, id int64) (*Comic, error)

	/*
		Create persists a new comic and its tag associations atomically.

		The comic row and every junction row are written in a single
		transaction; the generated ID and creation timestamp are written
		back onto the entity.

		Parameters:
		  - context: context.Context
		  - comic: *Comic (Metadata; ID assigned on return)
		  - tagIDs: []int64 (Tags to associate; unknown IDs fail the transaction)

		Returns:
		  - error: Storage or constraint failures
	*/
	Create(context context.Context, comic *Comic, tagIDs []int64) error

	/*
		Update rewrites a comic's mutable metadata (title, editorial,
		family, collection flag).

		Parameters:
		  - context: context.Context
		  - comic: *Comic (Entity carrying the new values; matched by ID)

		Returns:
		  - error: apperr NotFound if missing
	*/
	Update(context context.Context, comic *Comic) error

	/*
		Delete removes a comic row. Junction, like, pending, comment, and
		list-membership rows cascade at the database level.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - error: apperr NotFound if missing
	*/
	Delete(context context.Context, id int64) error

	/*
		Exists reports whether a comic row exists, without hydrating it.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - bool: Existence flag
		  - error: Database retrieval failures
	*/
	Exists(context context.Context, id int64) (bool, error)

	/*
		ListLikedByUser returns the comics one user has liked, most recent
		like first.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []*Comic: Hydrated comic entities
		  - error: Database retrieval failures
	*/
	ListLikedByUser(context context.Context, userID string) ([]*Comic, error)

	/*
		ListPendingByUser returns the comics one user has marked as pending,
		most recently marked first.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []*Comic: Hydrated comic entities
		  - error: Database retrieval failures
	*/
	ListPendingByUser(context context.Context, userID string) ([]*Comic, error)

	/*
		ListInUserList returns the comics on one user list, most recently
		added first.

		Parameters:
		  - context: context.Context
		  - listID: int64

		Returns:
		  - []*Comic: Hydrated comic entities
		  - error: Database retrieval failures
	*/
	ListInUserList(context context.Context, listID int64) ([]*Comic, error)

	/*
		TagExists reports whether a tag with the given name exists.

		Parameters:
		  - context: context.Context
		  - name: string (Exact tag name)

		Returns:
		  - bool: Existence flag
		  - error: Database retrieval failures
	*/
	TagExists(context context.Context, name string) (bool, error)

	/*
		TagExistsByID reports whether a tag row exists.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - bool: Existence flag
		  - error: Database retrieval failures
	*/
	TagExistsByID(context context.Context, id int64) (bool, error)

	/*
		AddTag attaches a tag to a comic. Idempotent at the database level
		via ON CONFLICT DO NOTHING; re-attaching an existing pair is a
		no-op, not an error.

		Parameters:
		  - context: context.Context
		  - comicID: int64
		  - tagID: int64

		Returns:
		  - error: Constraint or storage failures
	*/
	AddTag(context context.Context, comicID, tagID int64) error

	/*
		RemoveTag detaches a tag from a comic.

		Parameters:
		  - context: context.Context
		  - comicID: int64
		  - tagID: int64

		Returns:
		  - bool: True when an association row was removed
		  - error: Storage failures
	*/
	RemoveTag(context context.Context, comicID, tagID int64) (bool, error)

	/*
		ListTagsForComic returns the tags attached to one comic, name ASC.

		Parameters:
		  - context: context.Context
		  - comicID: int64

		Returns:
		  - []Tag: Attached tags
		  - error: Database retrieval failures
	*/
	ListTagsForComic(context context.Context, comicID int64) ([]Tag, error)
}

// ExploreStore defines the discovery queries behind the ranking,
// popularity, and search endpoints.
type ExploreStore interface {
	/*
		MostLiked returns comics ordered by like count DESC, title ASC.
	*/
	MostLiked(context context.Context, limit int) ([]*Comic, error)

	/*
		MostCommented returns comics ordered by comment count DESC, title ASC.
	*/
	MostCommented(context context.Context, limit int) ([]*Comic, error)

	/*
		RecentlyAdded returns comics ordered by creation time DESC, title ASC.
	*/
	RecentlyAdded(context context.Context, limit int) ([]*Comic, error)

	/*
		PopularByTag returns comics carrying the named tag, ordered by
		distinct like count DESC, title ASC. A tagged comic with zero likes
		is included and ranks last.
	*/
	PopularByTag(context context.Context, tagName string, limit int) ([]*Comic, error)

	/*
		Search returns comics whose title, editorial, family, or tag name
		contains the term (case-insensitive substring), ordered by title ASC.
	*/
	Search(context context.Context, term string) ([]*Comic, error)
}

// RecommendStore defines the queries behind the per-user "for you" feed.
type RecommendStore interface {
	/*
		LikedComicIDs returns the IDs of every comic the user has liked.
	*/
	LikedComicIDs(context context.Context, userID string) ([]int64, error)

	/*
		TopTagsForComics returns the most frequent tags across the given
		comics, ordered by frequency DESC then name ASC.
	*/
	TopTagsForComics(context context.Context, comicIDs []int64, limit int) ([]Tag, error)

	/*
		ListByAnyTag returns distinct comics carrying any of the given tags,
		ordered by title ASC.
	*/
	ListByAnyTag(context context.Context, tagIDs []int64) ([]*Comic, error)
}
