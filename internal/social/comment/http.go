// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

/*
Package comment implements reviews on comics: free text plus an optional
1..5 rating.

Listing and the rating aggregate are public and live on the /comics
subtree; writing requires authentication, and editing is restricted to the
author through the standalone /comments subtree.
*/
package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/middleware"
	requestutil "github.com/viliandp/HeroFlicks-BackEnd/internal/platform/request"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/respond"
	"github.com/viliandp/HeroFlicks-BackEnd/pkg/pagination"
)

// Handler implements the HTTP layer for reviews.
type Handler struct {
	service *Service
}

// NewHandler constructs a new comment [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterComicRoutes attaches the per-comic review endpoints to the shared
// /comics subtree.
func (handler *Handler) RegisterComicRoutes(router chi.Router) {
	router.Get("/{id}/comments", handler.listComments)
	router.Get("/{id}/rating", handler.getRating)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/{id}/comments", handler.addComment)
	})
}

// Routes returns the standalone /comments subtree for author-only edits.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Put("/{id}", handler.updateComment)
		protected.Delete("/{id}", handler.deleteComment)
	})

	return router
}

// commentPayload is the JSON body of comment writes.
type commentPayload struct {
	Text   string `json:"text"`
	Rating *int   `json:"rating"`
}

/*
POST /api/comics/{id}/comments.

Description: Adds a review to a comic. The rating is optional.

Request:
  - text: string (Required, at most 2000 characters)
  - rating: int (Optional, 1..5)

Response:
  - 201: {success, comment}
  - 400: Validation failure
  - 401: Authentication required
  - 404: Comic not found
*/
func (handler *Handler) addComment(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comicID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload commentPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.AddComment(request.Context(), userID, comicID, Input{
		Text:   payload.Text,
		Rating: payload.Rating,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, respond.E{"comment": comment})
}

/*
GET /api/comics/{id}/comments.

Description: Lists a comic's reviews newest first, author usernames joined.

Request:
  - page: int (Optional, defaults to 1)
  - limit: int (Optional, defaults to 20, capped at 100)

Response:
  - 200: {success, comments, pagination}
  - 404: Comic not found
*/
func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	comicID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	comments, meta, err := handler.service.ListForComic(request.Context(), comicID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"comments": comments, "pagination": meta})
}

/*
GET /api/comics/{id}/rating.

Description: Returns the average rating over the comic's rated comments and
how many ratings contributed. Text-only comments do not count.

Response:
  - 200: {success, average, count}
  - 404: Comic not found
*/
func (handler *Handler) getRating(writer http.ResponseWriter, request *http.Request) {
	comicID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	rating, err := handler.service.RatingForComic(request.Context(), comicID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"average": rating.Average, "count": rating.Count})
}

/*
PUT /api/comments/{id}.

Description: Rewrites a comment. Author only; omitting the rating clears it.

Response:
  - 200: {success, comment}
  - 400: Validation failure
  - 403: Foreign comment
  - 404: Comment not found
*/
func (handler *Handler) updateComment(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload commentPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.UpdateComment(request.Context(), id, userID, Input{
		Text:   payload.Text,
		Rating: payload.Rating,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"comment": comment})
}

/*
DELETE /api/comments/{id}.

Description: Removes a comment. Author only.

Response:
  - 200: {success, message}
  - 403: Foreign comment
  - 404: Comment not found
*/
func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteComment(request.Context(), id, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"message": "Comment deleted successfully"})
}
