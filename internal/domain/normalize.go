package domain

import (
	"strings"
)

// NormalizeText prepares free text for keyword matching:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses runs of whitespace into a single space
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// TrimOrNil trims whitespace. Returns nil if the result is empty.
func TrimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
