// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

/*
Package list implements named, typed comic collections owned by one user.

Every endpoint is owner-scoped: a list that exists but belongs to someone
else is reported exactly like a missing one.
*/
package list

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/middleware"
	requestutil "github.com/viliandp/HeroFlicks-BackEnd/internal/platform/request"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/respond"
)

// Handler implements the HTTP layer for user lists.
type Handler struct {
	service *Service
}

// NewHandler constructs a new list [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /lists subtree. Everything requires authentication.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/", handler.createList)
	router.Get("/", handler.listLists)
	router.Put("/{id}", handler.renameList)
	router.Delete("/{id}", handler.deleteList)
	router.Get("/{id}/comics", handler.listComics)
	router.Post("/{id}/comics", handler.addComic)
	router.Delete("/{id}/comics/{comicId}", handler.removeComic)

	return router
}

/*
POST /api/lists.

Description: Creates a list. The (name, type) pair is unique per owner.

Request:
  - name: string (Required)
  - type: string (pending | liked)

Response:
  - 201: {success, list}
  - 400: Validation failure
  - 409: Duplicate name and type
*/
func (handler *Handler) createList(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.CreateList(request.Context(), userID, payload.Name, payload.Type)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, respond.E{"list": list})
}

/*
GET /api/lists.

Description: Lists the caller's lists with member counts, name ASC.

Request:
  - type: string (Optional filter, pending | liked)

Response:
  - 200: {success, lists}
*/
func (handler *Handler) listLists(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	lists, err := handler.service.ListLists(request.Context(), userID, request.URL.Query().Get("type"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"lists": lists})
}

/*
GET /api/lists/{id}/comics.

Description: Returns the list itself plus its member comics, fully
hydrated, most recently added first.

Response:
  - 200: {success, list, comics}
  - 404: Missing or foreign list
*/
func (handler *Handler) listComics(writer http.ResponseWriter, request *http.Request) {
	userID, id, err := callerAndList(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, comics, err := handler.service.GetListComics(request.Context(), id, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"list": list, "comics": comic.ToViews(comics)})
}

/*
POST /api/lists/{id}/comics.

Description: Adds a comic to the list. Re-adding a member is harmless.

Request:
  - comicId: int64 (Required)

Response:
  - 200: {success, message}
  - 404: Missing or foreign list, or unknown comic
*/
func (handler *Handler) addComic(writer http.ResponseWriter, request *http.Request) {
	userID, id, err := callerAndList(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload struct {
		ComicID int64 `json:"comicId"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddComic(request.Context(), id, userID, payload.ComicID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"message": "Comic added to list"})
}

/*
DELETE /api/lists/{id}/comics/{comicId}.

Description: Removes a comic from the list.

Response:
  - 200: {success, message}
  - 404: Missing or foreign list, or comic not on the list
*/
func (handler *Handler) removeComic(writer http.ResponseWriter, request *http.Request) {
	userID, id, err := callerAndList(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comicID, err := requestutil.IntParam(request, "comicId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveComic(request.Context(), id, userID, comicID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"message": "Comic removed from list"})
}

/*
PUT /api/lists/{id}.

Description: Renames the list. The owner's (name, type) uniqueness still
applies.

Request:
  - name: string (Required)

Response:
  - 200: {success, list}
  - 404: Missing or foreign list
  - 409: Duplicate name and type
*/
func (handler *Handler) renameList(writer http.ResponseWriter, request *http.Request) {
	userID, id, err := callerAndList(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload struct {
		Name string `json:"name"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.RenameList(request.Context(), id, userID, payload.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"list": list})
}

/*
DELETE /api/lists/{id}.

Description: Deletes the list and its memberships.

Response:
  - 200: {success, message}
  - 404: Missing or foreign list
*/
func (handler *Handler) deleteList(writer http.ResponseWriter, request *http.Request) {
	userID, id, err := callerAndList(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteList(request.Context(), id, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"message": "List deleted successfully"})
}

// callerAndList extracts the authenticated user and the {id} route param.
func callerAndList(request *http.Request) (string, int64, error) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		return "", 0, err
	}
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		return "", 0, err
	}
	return userID, id, nil
}
