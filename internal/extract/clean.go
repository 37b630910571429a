package extract

import (
	"regexp"
	"strings"
)

// citationPattern matches bracketed citation markers such as [1], [a] or [citation needed]
var citationPattern = regexp.MustCompile(`\[.*?\]`)

// CleanText removes citation markers and surrounding whitespace from cell text
func CleanText(text string) string {
	cleaned := citationPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(cleaned)
}
