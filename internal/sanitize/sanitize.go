// Package sanitize turns raw model output into strings that are safe to use
// as file names inside a note vault.
package sanitize

import (
	"strings"
	"unicode"
)

// Fallback is substituted when a title sanitizes down to nothing.
const Fallback = "untitled"

// forbidden holds the characters the vault's file system rejects in names.
const forbidden = `\/:*?"<>|`

// Title returns a string safe for use as a file name segment. It strips one
// pair of surrounding quotes (a common model artifact), replaces each
// forbidden character with an underscore, removes leading/trailing dots and
// whitespace, and falls back to "untitled" when nothing is left.
//
// The function is pure and idempotent: Title(Title(s)) == Title(s) for any
// input, including empty strings and arbitrary Unicode.
func Title(raw string) string {
	// Run the whole pipeline to a fixed point. A single pass is not enough:
	// nested quotes ("''a''") need repeated stripping, and trimming boundary
	// dots can uncover a quote pair that was interior before (".'a'.").
	s := raw
	for {
		t := TrimQuotes(s)

		t = strings.Map(func(r rune) rune {
			if strings.ContainsRune(forbidden, r) {
				return '_'
			}
			return r
		}, t)

		// Dots and whitespace can be interleaved at either end
		// ("' .draft. '"), so trim them together rather than in
		// separate passes.
		t = strings.TrimFunc(t, func(r rune) bool {
			return r == '.' || unicode.IsSpace(r)
		})

		if t == s {
			break
		}
		s = t
	}

	if s == "" {
		return Fallback
	}
	return s
}

// TrimQuotes removes a single pair of matching surrounding quote characters
// (' or ") from s. Surrounding whitespace is trimmed first so that a quoted
// title with stray padding is still recognized. Unmatched or interior quotes
// are left alone.
func TrimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	first := s[0]
	last := s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
