// Package validation rejects bad writes at the boundary, before they
// reach the store.
package validation

import (
	"fmt"
	"strings"
)

// MaxTitleLen keeps titles renderable on one commitment row.
const MaxTitleLen = 120

// Title trims and validates a commitment title. The trimmed value is
// returned so every caller stores the same normalization.
func Title(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", fmt.Errorf("commitment title must not be empty")
	}
	if len(title) > MaxTitleLen {
		return "", fmt.Errorf("commitment title must be at most %d characters", MaxTitleLen)
	}
	return title, nil
}

// OptionalText normalizes a free-text motivation field: whitespace-only
// input becomes absent rather than an empty string in the store.
func OptionalText(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}
