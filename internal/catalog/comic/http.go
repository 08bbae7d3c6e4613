// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

/*
Package comic provides the HTTP interface for discovery and management of the catalogue.

It exposes endpoints for browsing comics, ranked discovery feeds, personalised
recommendations, and the multipart upload workflow.

# Routing Strategy

  - Public: Discovery endpoints accessible to all visitors (GET /comics, rankings,
    search) plus upload, which accepts anonymous submissions.
  - Protected: Update, delete, tag association, and the personalised feed require
    authentication.

The handler translates between the web/JSON layer and the internal domain [Service].
*/
package comic

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/middleware"
	requestutil "github.com/viliandp/HeroFlicks-BackEnd/internal/platform/request"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for comic management and discovery.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new comic [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the comic endpoints to the shared /comics subtree.
// Like, pending, and comment handlers register their own routes on the same
// subtree from the composition root.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// ## Public Endpoints
	router.Get("/", handler.listComics)
	router.Get("/most-liked", handler.mostLiked)
	router.Get("/most-commented", handler.mostCommented)
	router.Get("/recently-added", handler.recentlyAdded)
	router.Get("/popular-by-tag", handler.popularByTag)
	router.Get("/search", handler.searchComics)
	router.Get("/{id}", handler.getComic)
	router.Get("/{id}/tags", handler.listComicTags)
	router.Get("/{id}/pdf", handler.streamPDF)

	// Upload accepts anonymous submissions; identity is attached when the
	// request carries credentials.
	router.Post("/", handler.uploadComic)

	// ## Protected Endpoints
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Get("/for-you", handler.forYou)
		protected.Put("/{id}", handler.updateComic)
		protected.Delete("/{id}", handler.deleteComic)
		protected.Post("/{id}/tags/{tagId}", handler.addTag)
		protected.Delete("/{id}/tags/{tagId}", handler.removeTag)
	})
}

// # Catalogue Endpoints

/*
GET /api/comics.

Description: Retrieves the full catalogue ordered by title. An optional
?tag= filter restricts the result to comics carrying that exact tag; an
unknown tag yields an empty list, not an error.

Request:
  - tag: string (Optional exact tag name)

Response:
  - 200: {success, comics}
*/
func (handler *Handler) listComics(writer http.ResponseWriter, request *http.Request) {
	tagName := strings.TrimSpace(request.URL.Query().Get("tag"))

	comics, err := handler.service.ListComics(request.Context(), tagName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"comics": ToViews(comics)})
}

/*
GET /api/comics/{id}.

Description: Retrieves a single comic with tags and engagement counts.

Request:
  - id: int64

Response:
  - 200: {success, comic}
  - 404: Comic not found
*/
func (handler *Handler) getComic(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comic, err := handler.service.GetComic(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"comic": ToView(comic)})
}

/*
GET /api/comics/{id}/tags.

Description: Lists the tags attached to one comic, name ASC.

Response:
  - 200: {success, tags}
  - 404: Comic not found
*/
func (handler *Handler) listComicTags(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tags, err := handler.service.ListComicTags(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"tags": ToTagViews(tags)})
}

/*
GET /api/comics/{id}/pdf.

Description: Streams the stored PDF document with an inline disposition so
browsers render it instead of downloading.

Response:
  - 200: application/pdf stream
  - 404: Comic not found
*/
func (handler *Handler) streamPDF(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	fullPath, title, err := handler.service.ResolvePDFPath(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set("Content-Type", "application/pdf")
	writer.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", title+".pdf"))
	http.ServeFile(writer, request, fullPath)
}

/*
PUT /api/comics/{id}.

Description: Rewrites a comic's metadata. Restricted to the original
uploader; anonymous comics have no uploader and cannot be updated. The
stored PDF and cover are immutable; replacing them means deleting the
comic and uploading again.

Request (JSON):
  - title: string (Required)
  - editorial: string (Marvel | DC | Other)
  - family: string (Optional franchise name)
  - isCollection: bool

Response:
  - 200: {success, comic, message}
  - 400: Validation failure
  - 403: Foreign comic
  - 404: Comic not found
*/
func (handler *Handler) updateComic(writer http.ResponseWriter, request *http.Request) {
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

	var payload struct {
		Title        string `json:"title"`
		Editorial    string `json:"editorial"`
		Family       string `json:"family"`
		IsCollection bool   `json:"isCollection"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comic, err := handler.service.UpdateComic(request.Context(), id, userID, UpdateInput{
		Title:        strings.TrimSpace(payload.Title),
		Editorial:    strings.TrimSpace(payload.Editorial),
		Family:       strings.TrimSpace(payload.Family),
		IsCollection: payload.IsCollection,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{
		"message": "Comic updated successfully",
		"comic":   ToView(comic),
	})
}

/*
POST /api/comics/{id}/tags/{tagId}.

Description: Attaches a tag to a comic. Re-attaching an existing pair
succeeds without effect.

Response:
  - 200: {success, message}
  - 404: Comic or tag not found
*/
func (handler *Handler) addTag(writer http.ResponseWriter, request *http.Request) {
	comicID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tagID, err := requestutil.IntParam(request, "tagId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddTagToComic(request.Context(), comicID, tagID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"message": "Tag added to comic successfully"})
}

/*
DELETE /api/comics/{id}/tags/{tagId}.

Description: Detaches a tag from a comic.

Response:
  - 200: {success, message}
  - 404: Association not found
*/
func (handler *Handler) removeTag(writer http.ResponseWriter, request *http.Request) {
	comicID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tagID, err := requestutil.IntParam(request, "tagId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveTagFromComic(request.Context(), comicID, tagID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"message": "Tag removed from comic successfully"})
}

/*
DELETE /api/comics/{id}.

Description: Removes a comic and its stored files. Restricted to the
original uploader.

Response:
  - 200: {success, message}
  - 403: Foreign comic
  - 404: Comic not found
*/
func (handler *Handler) deleteComic(writer http.ResponseWriter, request *http.Request) {
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

	if err := handler.service.DeleteComic(request.Context(), id, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.E{"message": "Comic deleted successfully"})
}
