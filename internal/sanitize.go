package internal

import (
	"regexp"
	"strings"
)

var (
	unsafeChars    = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// SanitizeFilename turns arbitrary text into a token safe to use as a file
// name. Reserved path characters and control characters become underscores,
// whitespace runs collapse to a single underscore, and leading/trailing
// underscores and dots are trimmed. If nothing survives, fallback is
// returned. Never fails.
func SanitizeFilename(name, fallback string) string {
	cleaned := unsafeChars.ReplaceAllString(name, "_")
	cleaned = whitespaceRuns.ReplaceAllString(cleaned, "_")
	cleaned = strings.Trim(cleaned, "._")
	if cleaned == "" {
		return fallback
	}
	return cleaned
}
