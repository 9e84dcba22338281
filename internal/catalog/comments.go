package catalog

import (
	"encoding/json"
	"strings"
)

// ParseCommentField normalizes the loosely-typed user_comments field into a
// flat sequence of strings. The dataset stores it as either a missing value,
// a scalar string, or a bracketed list (JSON or Python literal style).
//
// Normalization rule: missing/blank → empty; parseable list → its string
// elements; anything else → a single-element sequence wrapping the scalar.
func ParseCommentField(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{}
	}

	if strings.HasPrefix(trimmed, "[") {
		if items, ok := parseListLiteral(trimmed); ok {
			return items
		}
	}
	return []string{trimmed}
}

// parseListLiteral attempts to decode a bracketed list. JSON is tried first;
// Python-style single-quoted lists are retried after quote substitution.
func parseListLiteral(s string) ([]string, bool) {
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err == nil {
		return items, true
	}

	// Python literal lists use single quotes. The substitution is naive and
	// fails on embedded quotes, in which case the scalar fallback applies.
	converted := strings.ReplaceAll(s, `'`, `"`)
	if err := json.Unmarshal([]byte(converted), &items); err == nil {
		return items, true
	}
	return nil, false
}
