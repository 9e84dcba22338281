// Package ingestion turns uploaded resume documents into the cleaned plain
// text the scoring pipeline consumes.
package ingestion

import (
	"regexp"
	"strings"
)

// specialChars matches everything outside word characters, whitespace and the
// punctuation that matters for skill matching (periods, commas, hyphens,
// plus, hash, parentheses — "c++" and "c#" must survive cleaning).
var specialChars = regexp.MustCompile(`[^\w\s.,\-+#()]`)

// CleanText normalizes extracted resume text: whitespace runs collapse to
// single spaces and stray special characters become spaces. The result feeds
// both lexicon matching and vectorization.
func CleanText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	text = specialChars.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
