// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comment

import "time"

// Comment is a user review on a comic. The rating is optional: a comment
// can be text-only, and only rated comments feed the comic's average.
type Comment struct {
	ID      int64  `json:"id"`
	ComicID int64  `json:"comicId"`
	UserID  string `json:"userId"`

	// Username is joined from the account table for display; it is never
	// written through this package.
	Username string `json:"username"`

	Text      string     `json:"text"`
	Rating    *int       `json:"rating"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Rating is the aggregate review score of one comic.
type Rating struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// Request field names.
const (
	FieldText   = "text"
	FieldRating = "rating"
)

// maxTextLength caps comment bodies.
const maxTextLength = 2000
