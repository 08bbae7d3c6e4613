// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

/*
Package tag provides the HTTP interface for the flat tag taxonomy.

Listing is public; creating tags requires authentication. The handler also
serves the per-user liked-tags view mounted under the /users/me subtree.
*/
package tag

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/middleware"
	requestutil "github.com/viliandp/HeroFlicks-BackEnd/internal/platform/request"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/respond"
)

// Handler implements the HTTP layer for taxonomy management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new tag [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the taxonomy endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listTags)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/", handler.createTag)
	})

	return router
}

/*
GET /api/tags.

Description: Lists the full taxonomy ordered by name.

Response:
  - 200: {success, tags}
*/
func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.ListTags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"tags": tags})
}

/*
POST /api/tags.

Description: Creates a new tag. Names are trimmed and unique regardless of
casing.

Request:
  - name: string (Required)

Response:
  - 201: {success, tag}
  - 400: Empty name
  - 409: Duplicate name
*/
func (handler *Handler) createTag(writer http.ResponseWriter, request *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag, err := handler.service.CreateTag(request.Context(), payload.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, respond.E{"tag": tag})
}

/*
GET /api/users/me/tags.

Description: Lists the distinct tags across the caller's liked comics,
name ASC. Mounted inside the authenticated /users/me subtree.

Response:
  - 200: {success, tags}
  - 401: Authentication required
*/
func (handler *Handler) ListUserTags(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tags, err := handler.service.LikedTags(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"tags": tags})
}
