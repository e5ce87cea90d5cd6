package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var reSpaces = regexp.MustCompile(` +`)

// NFC composes s so that a letter and its combining marks form one rune.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// RemoveDiacritics decomposes and strips combining marks.
func RemoveDiacritics(s string) string {
	t := norm.NFD.String(s)
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, t)
}

// CollapseSpaces trims s and squeezes runs of spaces into one.
func CollapseSpaces(s string) string {
	return reSpaces.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Text prepares a raw document for keyword extraction.
func Text(s string, foldDiacritics bool) string {
	if foldDiacritics {
		return norm.NFC.String(RemoveDiacritics(s))
	}
	return NFC(s)
}
