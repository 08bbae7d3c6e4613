// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/database/schema"
)

/*
TestPopularByTagQuery_KeepsZeroLikeComics pins the tag-popularity membership
rule: a comic carrying the tag must appear even when nobody has liked it, so
the likes table may only ever be outer-joined.
*/
func TestPopularByTagQuery_KeepsZeroLikeComics(t *testing.T) {
	query := popularByTagQuery()

	assert.Contains(t, query, "LEFT JOIN "+schema.ComicLike.Table)
	assert.NotContains(t, query, "\n\t\tJOIN "+schema.ComicLike.Table)

	// Zero-like rows rank by a zero count, so the ordering must count
	// distinct likers rather than joined rows.
	assert.Contains(t, query, "COUNT(DISTINCT l."+schema.ComicLike.UserID+")")
}
