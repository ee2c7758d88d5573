package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText lowercases s and strips diacritical marks, so that
// "João" and "joao" compare equal. Used by the free-text search and the
// country lookup. A fresh transformer chain is built per call because the
// chain carries state and is not safe for concurrent reuse.
func NormalizeText(s string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(chain, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// DigitsOnly returns only the decimal digits of s. Phone numbers are
// compared through this projection so formatting never affects matching.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
