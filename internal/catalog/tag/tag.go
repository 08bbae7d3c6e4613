// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package tag

// Tag is a flat categorization label applied to comics. The taxonomy is a
// single flat namespace; uniqueness is enforced case-insensitively.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FieldName is the request field carrying the tag name.
const FieldName = "name"
