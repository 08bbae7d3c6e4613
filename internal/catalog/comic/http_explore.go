// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic

import (
	"net/http"
	"strings"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/apperr"
	requestutil "github.com/viliandp/HeroFlicks-BackEnd/internal/platform/request"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/respond"
	"github.com/viliandp/HeroFlicks-BackEnd/pkg/convert"
)

// # Discovery Endpoints

/*
GET /api/comics/most-liked.

Description: Ranking by like count DESC, ties broken by title ASC.

Request:
  - limit: int (Optional, defaults to 5)

Response:
  - 200: {success, comics}
*/
func (handler *Handler) mostLiked(writer http.ResponseWriter, request *http.Request) {
	limit := convert.ToIntD(request.URL.Query().Get("limit"), defaultRankingLimit)

	comics, err := handler.service.MostLikedComics(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"comics": ToViews(comics)})
}

/*
GET /api/comics/most-commented.

Description: Ranking by comment count DESC, ties broken by title ASC.
*/
func (handler *Handler) mostCommented(writer http.ResponseWriter, request *http.Request) {
	limit := convert.ToIntD(request.URL.Query().Get("limit"), defaultRankingLimit)

	comics, err := handler.service.MostCommentedComics(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"comics": ToViews(comics)})
}

/*
GET /api/comics/recently-added.

Description: Newest uploads first, ties broken by title ASC.
*/
func (handler *Handler) recentlyAdded(writer http.ResponseWriter, request *http.Request) {
	limit := convert.ToIntD(request.URL.Query().Get("limit"), defaultRankingLimit)

	comics, err := handler.service.RecentlyAddedComics(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"comics": ToViews(comics)})
}

/*
GET /api/comics/popular-by-tag.

Description: The five most-liked comics carrying one tag. An unknown tag or
a tag without liked comics yields a successful empty response carrying an
explanatory message.

Request:
  - tagName: string (Required)

Response:
  - 200: {success, comics, message?}
  - 400: Missing tagName parameter
*/
func (handler *Handler) popularByTag(writer http.ResponseWriter, request *http.Request) {
	tagName := strings.TrimSpace(request.URL.Query().Get("tagName"))
	if tagName == "" {
		respond.Error(writer, request, apperr.BadRequest("El parámetro 'tagName' es requerido."))
		return
	}

	comics, message, err := handler.service.PopularComicsByTag(request.Context(), tagName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	fields := respond.E{"comics": ToViews(comics)}
	if message != "" {
		fields["message"] = message
	}
	respond.OK(writer, fields)
}

/*
GET /api/comics/search.

Description: Case-insensitive substring search across title, editorial,
family, and tag names. A blank term short-circuits with a prompt message
without touching the store.

Request:
  - q: string (Search term)

Response:
  - 200: {success, comics, message?}
*/
func (handler *Handler) searchComics(writer http.ResponseWriter, request *http.Request) {
	term := strings.TrimSpace(request.URL.Query().Get("q"))

	comics, message, err := handler.service.SearchComics(request.Context(), term)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	fields := respond.E{"comics": ToViews(comics)}
	if message != "" {
		fields["message"] = message
	}
	respond.OK(writer, fields)
}

/*
GET /api/comics/for-you.

Description: Personalised feed driven by the two most frequent tags across
the caller's liked comics. The driving tags are included only when tags
actually shaped the result; the empty states (no likes, untagged likes)
carry just the message.

Response:
  - 200: {success, comics, message, recommended_based_on_tags?}
  - 401: Authentication required
*/
func (handler *Handler) forYou(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	recommendation, err := handler.service.RecommendForUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	fields := respond.E{
		"comics":  ToViews(recommendation.Comics),
		"message": recommendation.Message,
	}
	if len(recommendation.Tags) > 0 {
		fields["recommended_based_on_tags"] = ToTagViews(recommendation.Tags)
	}
	respond.OK(writer, fields)
}
