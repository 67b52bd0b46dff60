package format

import (
	"strings"
	"unicode"
)

// TitleCase converts a camelCase identifier such as "cssSelector" into
// "Css Selector". Input that is already fully title-cased is returned
// unchanged. Word splits happen before an uppercase rune that follows a
// non-uppercase rune, and before the last rune of an uppercase run when
// a lowercase rune follows it, so embedded acronyms survive:
// "URLPath" becomes "URL Path" and "htmlID" becomes "Html ID", while
// "HTML" stays intact. Only the first rune of each word is upper-cased,
// the rest of the word keeps its original casing.
func TitleCase(s string) string {
	if isTitleCased(s) {
		return s
	}

	runes := []rune(s)
	out := make([]rune, 0, len(runes)+4)
	for i, r := range runes {
		if i > 0 && splitBefore(runes, i) {
			out = append(out, ' ')
		}
		out = append(out, r)
	}

	for i, r := range out {
		if i == 0 || out[i-1] == ' ' {
			out[i] = unicode.ToUpper(r)
		}
	}
	return string(out)
}

// splitBefore reports whether a word boundary belongs directly before
// runes[i].
func splitBefore(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || unicode.IsSpace(prev) {
		return false
	}
	if !unicode.IsUpper(prev) {
		// Keep a trailing single capital attached to its word.
		return i < len(runes)-1
	}
	// prev is uppercase: split only where an acronym run ends and a new
	// lowercase-led word begins.
	return i < len(runes)-1 && unicode.IsLower(runes[i+1])
}

// isTitleCased reports whether every space-delimited word already starts
// with an uppercase rune and contains no internal word boundary.
func isTitleCased(s string) bool {
	for _, word := range strings.Fields(s) {
		runes := []rune(word)
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for i := 1; i < len(runes); i++ {
			if splitBefore(runes, i) {
				return false
			}
		}
	}
	return true
}
