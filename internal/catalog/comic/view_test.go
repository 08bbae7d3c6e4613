// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
)

/*
TestToView verifies the domain-to-client mapping of a single comic.
*/
func TestToView(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.FixedZone("CET", 3600))

	entity := &comic.Comic{
		ID:            42,
		Title:         "Infinity Gauntlet",
		Editorial:     comic.EditorialMarvel,
		PDFPath:       "pdfs/infinity-gauntlet.pdf",
		IsCollection:  true,
		Family:        "Avengers",
		CoverURL:      "covers/infinity-gauntlet.jpg",
		CreatedAt:     &createdAt,
		LikesCount:    12,
		CommentsCount: 3,
		Tags:          []comic.Tag{{ID: 1, Name: "Cosmic"}},
	}

	view := comic.ToView(entity)

	// 1. Numeric ID is rendered as a string
	assert.Equal(t, "42", view.ID)

	// 2. Timestamps are normalised to UTC RFC 3339
	require.NotNil(t, view.CreatedAt)
	assert.Equal(t, "2026-03-14T08:26:53Z", *view.CreatedAt)

	// 3. Remaining fields map one-to-one
	assert.Equal(t, "Infinity Gauntlet", view.Title)
	assert.Equal(t, "Marvel", view.Editorial)
	assert.Equal(t, "covers/infinity-gauntlet.jpg", view.ImageURL)
	assert.True(t, view.IsCollection)
	assert.Equal(t, 12, view.LikesCount)
	assert.Equal(t, 3, view.CommentsCount)
	require.Len(t, view.Tags, 1)
	assert.Equal(t, comic.TagView{ID: 1, Name: "Cosmic"}, view.Tags[0])
}

/*
TestToView_NilCreatedAt verifies that an absent timestamp maps to null.
*/
func TestToView_NilCreatedAt(t *testing.T) {
	view := comic.ToView(&comic.Comic{ID: 1, Title: "Untitled"})

	assert.Nil(t, view.CreatedAt)
	assert.NotNil(t, view.Tags, "tags must serialise as [] rather than null")
	assert.Empty(t, view.Tags)
}

/*
TestToViews_Empty verifies empty inputs yield [] rather than null.
*/
func TestToViews_Empty(t *testing.T) {
	assert.NotNil(t, comic.ToViews(nil))
	assert.Empty(t, comic.ToViews(nil))

	assert.NotNil(t, comic.ToTagViews(nil))
	assert.Empty(t, comic.ToTagViews(nil))
}
