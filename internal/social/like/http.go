// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

/*
Package like implements the like marker on comics.

A like is an idempotent (user, comic) pair. The endpoints live on the
/comics subtree next to the catalogue routes; the per-user listing is
mounted under /users/me.
*/
package like

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/middleware"
	requestutil "github.com/viliandp/HeroFlicks-BackEnd/internal/platform/request"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/respond"
)

// Handler implements the HTTP layer for like markers.
type Handler struct {
	service *Service
}

// NewHandler constructs a new like [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterComicRoutes attaches the like endpoints to the shared /comics
// subtree.
func (handler *Handler) RegisterComicRoutes(router chi.Router) {
	router.Get("/{id}/likes", handler.countLikes)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Post("/{id}/like", handler.likeComic)
		protected.Delete("/{id}/like", handler.unlikeComic)
		protected.Get("/{id}/like", handler.likeStatus)
	})
}

/*
POST /api/comics/{id}/like.

Description: Records a like for the caller. Liking twice is harmless.

Response:
  - 200: {success, message}
  - 401: Authentication required
  - 404: Comic not found
*/
func (handler *Handler) likeComic(writer http.ResponseWriter, request *http.Request) {
	userID, comicID, err := callerAndComic(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.LikeComic(request.Context(), userID, comicID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"message": "Comic liked successfully"})
}

/*
DELETE /api/comics/{id}/like.

Description: Removes the caller's like. Unliking twice is harmless.

Response:
  - 200: {success, message}
  - 401: Authentication required
  - 404: Comic not found
*/
func (handler *Handler) unlikeComic(writer http.ResponseWriter, request *http.Request) {
	userID, comicID, err := callerAndComic(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UnlikeComic(request.Context(), userID, comicID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"message": "Comic unliked successfully"})
}

/*
GET /api/comics/{id}/like.

Description: Reports whether the caller has liked the comic.

Response:
  - 200: {success, liked}
  - 401: Authentication required
  - 404: Comic not found
*/
func (handler *Handler) likeStatus(writer http.ResponseWriter, request *http.Request) {
	userID, comicID, err := callerAndComic(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	liked, err := handler.service.Status(request.Context(), userID, comicID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"liked": liked})
}

/*
GET /api/comics/{id}/likes.

Description: Public like counter for one comic.

Response:
  - 200: {success, likeCount}
  - 404: Comic not found
*/
func (handler *Handler) countLikes(writer http.ResponseWriter, request *http.Request) {
	comicID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	count, err := handler.service.CountForComic(request.Context(), comicID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"likeCount": count})
}

/*
GET /api/users/me/likes.

Description: Lists the caller's liked comics, fully hydrated, most recent
like first. Mounted inside the authenticated /users/me subtree.

Response:
  - 200: {success, comics}
  - 401: Authentication required
*/
func (handler *Handler) ListMine(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comics, err := handler.service.ListMine(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"comics": comic.ToViews(comics)})
}

// callerAndComic extracts the authenticated user and the {id} route param.
func callerAndComic(request *http.Request) (string, int64, error) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		return "", 0, err
	}
	comicID, err := requestutil.IntParam(request, "id")
	if err != nil {
		return "", 0, err
	}
	return userID, comicID, nil
}
