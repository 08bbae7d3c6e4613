// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

package comic

import (
	"encoding/json"
	"strconv"
	"strings"
)

// # Tag ID Parsing

// ParseTagIDs normalises the tag-association input of an upload.
//
// Clients send tag IDs either as a JSON array of integers ("[1,2,3]"), a JSON
// array of numeric strings, or a plain delimited string ("1,2,3"). Entries
// that are not positive integers are silently dropped; the result is
// de-duplicated preserving first-seen order.
func ParseTagIDs(raw string) []int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	// JSON array form is tried first, falling back to delimited parsing.
	if strings.HasPrefix(raw, "[") {
		if ids := parseJSONArray(raw); ids != nil {
			return dedupe(ids)
		}
	}

	return dedupe(parseDelimited(raw))
}

// parseJSONArray decodes a JSON array of numbers or numeric strings.
// Returns nil if the payload is not a valid JSON array.
func parseJSONArray(raw string) []int64 {
	var entries []any
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil
	}

	ids := make([]int64, 0, len(entries))
	for _, entry := range entries {
		switch value := entry.(type) {
		case float64:
			// JSON numbers arrive as float64; reject non-integral values.
			if value == float64(int64(value)) && int64(value) > 0 {
				ids = append(ids, int64(value))
			}
		case string:
			if id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil && id > 0 {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// parseDelimited splits a comma or semicolon separated list of numeric tokens.
func parseDelimited(raw string) []int64 {
	separator := ","
	if strings.Contains(raw, ";") && !strings.Contains(raw, ",") {
		separator = ";"
	}

	var ids []int64
	for _, token := range strings.Split(raw, separator) {
		if id, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64); err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// dedupe removes repeated IDs preserving first-seen order.
func dedupe(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[int64]bool, len(ids))
	result := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
