// Package normalize canonicalizes free-text answers so they can be compared
// regardless of accents, letter case or spacing.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// String returns the canonical form of text:
//   - compatibility-decomposed, with combining marks dropped ("São" -> "Sao")
//   - lower-cased
//   - whitespace runs collapsed to a single space, ends trimmed
//
// It never fails and String(String(x)) == String(x).
func String(text string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	// NFKD and mark removal pass invalid UTF-8 through and never fail.
	s, _, _ := transform.String(t, strings.ToLower(text))
	// Decomposition can surface upper-case letters (e.g. "㎁" -> "nA").
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Tokens splits a list answer on commas and semicolons, normalizes every
// entry and drops the blank ones.
func Tokens(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := String(p); n != "" {
			out = append(out, n)
		}
	}
	return out
}
