package cert

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxFilenameLen caps sanitized fragments so three of them joined with
// separators stay well under common filesystem limits.
const maxFilenameLen = 200

// Sanitize turns an arbitrary string into a safe filename fragment.
// The input is NFKD-normalized, characters outside word characters,
// whitespace, hyphen, underscore and period are dropped, and runs of
// whitespace collapse to a single underscore. The result is truncated
// to 200 characters; an empty result becomes "unknown".
func Sanitize(s string) string {
	s = norm.NFKD.String(s)

	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	s = strings.Join(strings.Fields(b.String()), "_")
	if runes := []rune(s); len(runes) > maxFilenameLen {
		s = string(runes[:maxFilenameLen])
	}
	if s == "" {
		return "unknown"
	}
	return s
}
