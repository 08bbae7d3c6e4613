// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic

import (
	"net/http"
	"strings"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/constants"
	requestutil "github.com/viliandp/HeroFlicks-BackEnd/internal/platform/request"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/respond"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/validate"
	"github.com/viliandp/HeroFlicks-BackEnd/pkg/convert"
)

// # Upload Endpoint

/*
POST /api/comics.

Description: Ingests a new comic via multipart form data. The PDF document
is required, the cover image optional. Tag associations accept either a
JSON array ("[1,2,3]") or a delimited string ("1,2,3"); non-numeric entries
are dropped silently. Anonymous uploads are permitted: when the request
carries no credentials the comic is recorded without an uploader reference.

Request (multipart/form-data):
  - title: string (Required)
  - editorial: string (Marvel | DC | Other)
  - family: string (Optional franchise name)
  - isCollection: bool ("true"/"1")
  - tagIds: string (JSON array or delimited list)
  - pdfFile: file (Required, application/pdf)
  - coverFile: file (Optional, image/*)

Response:
  - 201: {success, comic}
  - 400: Validation failure
  - 415: Rejected media type
*/
func (handler *Handler) uploadComic(writer http.ResponseWriter, request *http.Request) {
	var uploaderID *string
	if claims := requestutil.Claims(request); claims != nil {
		uploaderID = &claims.UserID
	}

	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxUploadBytes)
	if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		respond.Error(writer, request, validate.RequiredError(FieldPDF, "Invalid or oversized multipart payload"))
		return
	}

	input := UploadInput{
		Title:        strings.TrimSpace(request.FormValue(FieldTitle)),
		Editorial:    strings.TrimSpace(request.FormValue(FieldEditorial)),
		Family:       strings.TrimSpace(request.FormValue(FieldFamily)),
		IsCollection: convert.ToBool(request.FormValue(FieldIsCollection)),
		TagIDs:       ParseTagIDs(request.FormValue(FieldTagIDs)),
		UploaderID:   uploaderID,
	}

	if _, header, err := request.FormFile(FieldPDF); err == nil {
		input.PDF = header
	}
	if _, header, err := request.FormFile(FieldCover); err == nil {
		input.Cover = header
	}

	comic, err := handler.service.UploadComic(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, respond.E{"comic": ToView(comic)})
}
