package quiz

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Policy controls how answers are compared against translations.
type Policy struct {
	CaseSensitive   bool
	AccentSensitive bool
}

// DefaultPolicy compares case-insensitively but keeps accents significant,
// so "Maison" matches "maison" while "etoile" does not match "étoile".
func DefaultPolicy() Policy {
	return Policy{CaseSensitive: false, AccentSensitive: true}
}

// Normalize prepares a string for comparison under the policy: surrounding
// whitespace is always trimmed, then case and accents are folded as the
// policy requires. The same normalization is applied to the user's input
// and to the expected translation.
func Normalize(s string, policy Policy) string {
	s = strings.TrimSpace(s)
	if !policy.CaseSensitive {
		s = strings.ToLower(s)
	}
	if !policy.AccentSensitive {
		s = stripAccents(s)
	}
	return s
}

// stripAccents removes combining marks: decompose, drop the marks,
// recompose. "français" becomes "francais".
func stripAccents(s string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(chain, s)
	if err != nil {
		return s
	}
	return stripped
}
