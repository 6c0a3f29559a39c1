package reconcile

import (
	"strings"
	"unicode"
)

// NormalizeName canonicalizes an album name before similarity scoring: it
// lowercases the name and collapses every run of whitespace and punctuation
// into a single space, trimming the ends. Letters, digits and symbols
// survive, so year and date suffixes stay significant ("Trip (2023)" and
// "Trip (2024)" remain distinct). An empty result means the name can never
// be matched.
//
// Normalizing an already normalized name is a no-op.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingSpace := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsSpace(r) || unicode.IsPunct(r) {
			// Runs of separators only produce a space between kept runes,
			// which also trims the ends.
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteRune(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
