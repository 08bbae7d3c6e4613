// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

/*
Package comic defines the core domain entities for the HeroFlicks catalogue.

It manages the lifecycle of uploaded comic publications (single issues and
collections) including metadata, tag associations, and engagement metrics.

Core Responsibility:

  - Catalogue: Defines editorials (Marvel, DC, Other) and comic families.
  - Discovery: Rankings, tag-scoped popularity, title search, and per-user
    recommendations driven by liked tags.
  - Ingestion: Transactional multi-file upload (PDF document + cover image).

This package acts as the source of truth for all content-related data models.
*/
package comic

import "time"

// # Domain Enums

// Editorial identifies the publishing house of a comic.
type Editorial string

const (
	// EditorialMarvel is Marvel Comics.
	EditorialMarvel Editorial = "Marvel"

	// EditorialDC is DC Comics.
	EditorialDC Editorial = "DC"

	// EditorialOther covers independent and unlisted publishers.
	EditorialOther Editorial = "Other"
)

// IsValid reports whether e is a recognised [Editorial] value.
func (e Editorial) IsValid() bool {
	switch e {
	case EditorialMarvel, EditorialDC, EditorialOther:
		return true
	}
	return false
}

// # Core Entities

// Comic is the central aggregate of the HeroFlicks domain.
// It represents a single uploaded publication in the catalogue.
type Comic struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Editorial    Editorial  `json:"editorial"`
	PDFPath      string     `json:"pdf_path"`
	IsCollection bool       `json:"is_collection"` // True for multi-issue collected editions
	Family       string     `json:"family"`        // Character family or franchise (e.g. "Spider-Man")
	CoverURL     string     `json:"cover_url"`
	UploaderID   *string    `json:"uploader_id"` // Nil for anonymous uploads and orphaned comics
	CreatedAt    *time.Time `json:"created_at"`
	Tags         []Tag      `json:"tags,omitempty"`

	// # Computed Metrics
	// Hydrated by the store from the social tables; never written directly.
	LikesCount    int `json:"likes_count"`
	CommentsCount int `json:"comments_count"`
}

// Tag represents a genre or theme classifier attached to a [Comic].
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// # Field Identifiers

// Global field names for validation and identity mapping.
const (
	FieldID           = "id"
	FieldTitle        = "title"
	FieldEditorial    = "editorial"
	FieldFamily       = "family"
	FieldIsCollection = "isCollection"
	FieldTagIDs       = "tagIds"
	FieldPDF          = "pdfFile"
	FieldCover        = "coverFile"
)
