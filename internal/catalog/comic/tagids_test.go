// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
)

/*
TestParseTagIDs covers the accepted input shapes for tag associations.
*/
func TestParseTagIDs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int64
	}{
		{"json_numbers", "[1, 2, 3]", []int64{1, 2, 3}},
		{"json_numeric_strings", `["4", "7"]`, []int64{4, 7}},
		{"json_mixed", `[1, "2", 3]`, []int64{1, 2, 3}},
		{"comma_delimited", "5,6,7", []int64{5, 6, 7}},
		{"semicolon_delimited", "8; 9; 10", []int64{8, 9, 10}},
		{"spaced_tokens", " 1 , 2 ", []int64{1, 2}},
		{"empty", "", nil},
		{"whitespace_only", "   ", nil},
		{"junk_tokens_dropped", "1,abc,2", []int64{1, 2}},
		{"non_positive_dropped", "[0, -3, 4]", []int64{4}},
		{"fractional_dropped", "[1.5, 2]", []int64{2}},
		{"duplicates_first_seen", "[3, 1, 3, 2, 1]", []int64{3, 1, 2}},
		{"only_junk", "a;b;c", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, comic.ParseTagIDs(tt.raw))
		})
	}
}
