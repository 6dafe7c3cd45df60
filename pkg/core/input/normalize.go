// Package input cleans free-text form input before it reaches a generator.
package input

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize trims surrounding whitespace and converts to NFC, so that Arabic
// text pasted from different editors reaches the model in one form.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Empty reports whether s has no content after trimming.
func Empty(s string) bool {
	return strings.TrimSpace(s) == ""
}
