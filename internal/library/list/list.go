// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package list

import "time"

// Type partitions user lists into the two kinds the mobile client renders.
type Type string

const (
	TypePending Type = "pending"
	TypeLiked   Type = "liked"
)

// IsValid reports whether the value is a known list type.
func (listType Type) IsValid() bool {
	return listType == TypePending || listType == TypeLiked
}

// List is a named, typed collection of comics owned by one user. The
// (owner, lowercased name, type) triple is unique.
type List struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Type      Type      `json:"type"`
	CreatedAt time.Time `json:"createdAt"`

	// ComicCount is the number of member comics, populated on listings.
	ComicCount int64 `json:"comicCount"`
}

// Request field names.
const (
	FieldName = "name"
	FieldType = "type"
)

// maxListNameLength caps list names.
const maxListNameLength = 100
