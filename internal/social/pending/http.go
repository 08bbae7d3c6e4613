// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

/*
Package pending implements the read-later marker on comics.

A pending marker is an idempotent (user, comic) pair, structurally a twin
of the like marker. The endpoints live on the /comics subtree; the per-user
listing is mounted under /users/me.
*/
package pending

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/middleware"
	requestutil "github.com/viliandp/HeroFlicks-BackEnd/internal/platform/request"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/respond"
)

// Handler implements the HTTP layer for pending markers.
type Handler struct {
	service *Service
}

// NewHandler constructs a new pending [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterComicRoutes attaches the pending endpoints to the shared /comics
// subtree.
func (handler *Handler) RegisterComicRoutes(router chi.Router) {
	router.Get("/{id}/pendings", handler.countPendings)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Post("/{id}/pending", handler.markPending)
		protected.Delete("/{id}/pending", handler.unmarkPending)
		protected.Get("/{id}/pending", handler.pendingStatus)
	})
}

/*
POST /api/comics/{id}/pending.

Description: Puts the comic on the caller's pending list. Marking twice is
harmless.

Response:
  - 200: {success, message}
  - 401: Authentication required
  - 404: Comic not found
*/
func (handler *Handler) markPending(writer http.ResponseWriter, request *http.Request) {
	userID, comicID, err := callerAndComic(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.MarkPending(request.Context(), userID, comicID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"message": "Comic marked as pending"})
}

/*
DELETE /api/comics/{id}/pending.

Description: Removes the comic from the caller's pending list. Unmarking
twice is harmless.

Response:
  - 200: {success, message}
  - 401: Authentication required
  - 404: Comic not found
*/
func (handler *Handler) unmarkPending(writer http.ResponseWriter, request *http.Request) {
	userID, comicID, err := callerAndComic(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UnmarkPending(request.Context(), userID, comicID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"message": "Comic unmarked as pending"})
}

/*
GET /api/comics/{id}/pending.

Description: Reports whether the caller has the comic marked as pending.

Response:
  - 200: {success, pending}
  - 401: Authentication required
  - 404: Comic not found
*/
func (handler *Handler) pendingStatus(writer http.ResponseWriter, request *http.Request) {
	userID, comicID, err := callerAndComic(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pending, err := handler.service.Status(request.Context(), userID, comicID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"pending": pending})
}

/*
GET /api/comics/{id}/pendings.

Description: Public counter of users who marked the comic as pending.

Response:
  - 200: {success, pendingCount}
  - 404: Comic not found
*/
func (handler *Handler) countPendings(writer http.ResponseWriter, request *http.Request) {
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

	respond.OK(writer, respond.E{"pendingCount": count})
}

/*
GET /api/users/me/pendings.

Description: Lists the caller's pending comics, fully hydrated, most
recently marked first. Mounted inside the authenticated /users/me subtree.

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
