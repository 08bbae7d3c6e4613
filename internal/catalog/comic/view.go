// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic

import (
	"strconv"
	"time"

	"github.com/viliandp/HeroFlicks-BackEnd/pkg/slice"
)

// # Response Mapping

// View is the client-facing shape of a [Comic].
//
// # Contract
//
// The mobile client consumes exactly these keys. The numeric database ID is
// rendered as a string, timestamps as RFC 3339 strings or null, and tags as
// bare {id, name} pairs. Absent optional columns collapse to "".
type View struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Editorial     string    `json:"editorial"`
	PDFPath       string    `json:"pdfPath"`
	IsCollection  bool      `json:"isCollection"`
	Family        string    `json:"family"`
	ImageURL      string    `json:"imageUrl"`
	CreatedAt     *string   `json:"createdAt"`
	LikesCount    int       `json:"likesCount"`
	CommentsCount int       `json:"commentsCount"`
	Tags          []TagView `json:"tags"`
}

// TagView is the client-facing shape of a [Tag].
type TagView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToView maps a domain [Comic] to its client [View].
func ToView(comic *Comic) View {
	return View{
		ID:            strconv.FormatInt(comic.ID, 10),
		Title:         comic.Title,
		Editorial:     string(comic.Editorial),
		PDFPath:       comic.PDFPath,
		IsCollection:  comic.IsCollection,
		Family:        comic.Family,
		ImageURL:      comic.CoverURL,
		CreatedAt:     formatTimestamp(comic.CreatedAt),
		LikesCount:    comic.LikesCount,
		CommentsCount: comic.CommentsCount,
		Tags:          ToTagViews(comic.Tags),
	}
}

// ToViews maps a slice of comics, never returning nil so the JSON encoder
// emits [] instead of null for empty results.
func ToViews(comics []*Comic) []View {
	views := slice.Map(comics, ToView)
	if views == nil {
		return []View{}
	}
	return views
}

// ToTagViews maps domain tags to their client shape, [] for empty.
func ToTagViews(tags []Tag) []TagView {
	views := slice.Map(tags, func(tag Tag) TagView {
		return TagView{ID: tag.ID, Name: tag.Name}
	})
	if views == nil {
		return []TagView{}
	}
	return views
}

// formatTimestamp renders a nullable creation time as RFC 3339 or nil.
func formatTimestamp(timestamp *time.Time) *string {
	if timestamp == nil {
		return nil
	}
	formatted := timestamp.UTC().Format(time.RFC3339)
	return &formatted
}
