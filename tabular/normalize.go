package tabular

import (
	"strings"
	"unicode"
)

// NormalizeColumn strips leading/trailing whitespace and removes every rune
// that is not a letter or digit, so header variants like "IRCTC ORDER NO."
// and "IRCTCORDERNO" collapse to the same token. Idempotent.
func NormalizeColumn(name string) string {
	name = strings.TrimSpace(name)
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeColumns returns a new slice; the input is never mutated.
func NormalizeColumns(names []string) []string {
	normalized := make([]string, len(names))
	for i, name := range names {
		normalized[i] = NormalizeColumn(name)
	}
	return normalized
}
