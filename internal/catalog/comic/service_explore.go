// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic

import (
	"context"
	"fmt"
)

// # Discovery

// Client-facing discovery messages. These are part of the API contract with
// the Spanish-language mobile client and must not be reworded.
const (
	msgTagNotFound    = "La etiqueta '%s' no fue encontrada."
	msgTagNoComics    = "No hay cómics (o no hay cómics con likes) para la etiqueta '%s'."
	msgSearchNoTerm   = "Por favor, introduce un término de búsqueda."
	msgSearchNoResult = "No se encontraron cómics para \"%s\"."
)

/*
MostLikedComics returns the like-count ranking.

Parameters:
  - context: context.Context
  - limit: int (Clamped to the default when not positive)

Returns:
  - []*Comic: Ranked comics, like count DESC then title ASC
  - error: Repository level errors
*/
func (service *Service) MostLikedComics(context context.Context, limit int) ([]*Comic, error) {
	return service.store.MostLiked(context, normalizeLimit(limit))
}

// MostCommentedComics returns the comment-count ranking.
func (service *Service) MostCommentedComics(context context.Context, limit int) ([]*Comic, error) {
	return service.store.MostCommented(context, normalizeLimit(limit))
}

// RecentlyAddedComics returns the newest uploads.
func (service *Service) RecentlyAddedComics(context context.Context, limit int) ([]*Comic, error) {
	return service.store.RecentlyAdded(context, normalizeLimit(limit))
}

/*
PopularComicsByTag returns the most-liked comics carrying one tag.

Description: The tag is resolved before the ranking query so an unknown tag
produces a successful-but-empty response with an explanatory message, never
an error. A known tag attached to no comics gets its own message. The page
size is fixed; clients cannot widen it.

Parameters:
  - context: context.Context
  - tagName: string (Exact tag name; presence validated by the handler)

Returns:
  - []*Comic: Ranked comics, possibly empty
  - string: Client message explaining an empty result, "" otherwise
  - error: Repository level errors
*/
func (service *Service) PopularComicsByTag(context context.Context, tagName string) ([]*Comic, string, error) {
	exists, err := service.store.TagExists(context, tagName)
	if err != nil {
		return nil, "", err
	}
	if !exists {
		return []*Comic{}, fmt.Sprintf(msgTagNotFound, tagName), nil
	}

	comics, err := service.store.PopularByTag(context, tagName, popularByTagLimit)
	if err != nil {
		return nil, "", err
	}
	if len(comics) == 0 {
		return []*Comic{}, fmt.Sprintf(msgTagNoComics, tagName), nil
	}

	return comics, "", nil
}

/*
SearchComics finds comics by title, editorial, family, or tag name.

Description: A blank term never reaches the database; the client gets an
empty result with a prompt instead. A term with no matches gets a message
quoting the term back.

Parameters:
  - context: context.Context
  - term: string (Raw search term, already trimmed by the handler)

Returns:
  - []*Comic: Matches ordered by title ASC
  - string: Client message for empty results, "" otherwise
  - error: Repository level errors
*/
func (service *Service) SearchComics(context context.Context, term string) ([]*Comic, string, error) {
	if term == "" {
		return []*Comic{}, msgSearchNoTerm, nil
	}

	comics, err := service.store.Search(context, term)
	if err != nil {
		return nil, "", err
	}
	if len(comics) == 0 {
		return []*Comic{}, fmt.Sprintf(msgSearchNoResult, term), nil
	}

	return comics, "", nil
}

// popularByTagLimit is fixed: the tag popularity widget always shows 5.
const popularByTagLimit = 5

// defaultRankingLimit applies when clients omit or mangle the limit param.
const defaultRankingLimit = 5

// normalizeLimit clamps non-positive limits to the default page size.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultRankingLimit
	}
	return limit
}
