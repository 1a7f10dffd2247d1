package util

import "strings"

// Normalize collapses every whitespace run into a single space and trims
// the ends. Safe to call twice; the second pass is a no-op.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
