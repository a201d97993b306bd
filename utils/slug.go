package utils

import (
	"strings"
	"unicode"
)

// Slugify lowercases, keeps ascii letters/digits, and collapses
// everything else into single hyphens: "ABC Condo" -> "abc-condo".
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // leading separators dropped
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
