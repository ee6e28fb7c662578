package reminders

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold normalizes s for case-insensitive comparison. It uses Unicode case
// folding rather than a locale-specific lower-casing.
func Fold(s string) string {
	return cases.Fold().String(s)
}

func containsFolded(haystack, foldedNeedle string) bool {
	return strings.Contains(Fold(haystack), foldedNeedle)
}
