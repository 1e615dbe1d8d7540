// Package lexer_util provides the identifier-validity primitives
// NameReserver's syntactic normalization step (spec.md §4.3 step 1) is built
// on: rune classification per UAX-31 and whole-string Unicode (NFC)
// normalization, so that a name surviving reflection in a different
// encoding form still reserves consistently. Adapted from the teacher's
// stream-oriented lexer scanner of the same name; only the rune
// classification and whole-string normalization are kept here since the
// reserver validates already-extracted names, not source text.
package lexer_util

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// IsIdentStart reports whether r may begin a target-language identifier.
// Based on https://www.unicode.org/reports/tr31/#D1
func IsIdentStart(r rune) bool {
	if r < 128 {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
	}
	return (r == '_' || r == '$' ||
		unicode.IsLetter(r) ||
		unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Other_ID_Start, r)) &&
		!unicode.Is(unicode.Pattern_Syntax, r) &&
		!unicode.Is(unicode.Pattern_White_Space, r)
}

// IsIdentContinue reports whether r may continue a target-language
// identifier after the first character.
// Based on https://www.unicode.org/reports/tr31/#D1
func IsIdentContinue(r rune) bool {
	if r < 128 {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '_' || r == '$'
	}
	return (r == '_' || r == '$' ||
		unicode.IsLetter(r) ||
		unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Other_ID_Start, r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Pc, r) ||
		unicode.Is(unicode.Other_ID_Continue, r)) &&
		!unicode.Is(unicode.Pattern_Syntax, r) &&
		!unicode.Is(unicode.Pattern_White_Space, r)
}

// IsValidIdentifier reports whether s, taken as a whole, is a syntactically
// valid target-language identifier (every rune after the first satisfies
// IsIdentContinue, and the first satisfies IsIdentStart). An empty string is
// never valid.
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !IsIdentStart(r) {
				return false
			}
			continue
		}
		if !IsIdentContinue(r) {
			return false
		}
	}
	return true
}

// NormalizeNFC canonically normalizes a name to Unicode NFC form, so that
// two source-system names that differ only in combining-character
// composition reserve as the same identifier.
func NormalizeNFC(s string) string {
	return string(norm.NFC.Bytes([]byte(s)))
}
