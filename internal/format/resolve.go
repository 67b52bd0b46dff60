package format

import "regexp"

// referencePattern matches a value that is, in its entirety, a wrapped
// variable reference like "{{ Page URL }}". Surrounding whitespace inside
// the braces is not part of the referenced name.
var referencePattern = regexp.MustCompile(`^\{\{\s*(.*?)\s*\}\}$`)

// ResolveReference detects whether value is a variable reference and, if
// so, returns the referenced display name together with its anchor. Any
// other string, including partially or unbalanced wrapped ones, is
// returned verbatim with an empty anchor.
func ResolveReference(value string) (text, anchor string) {
	m := referencePattern.FindStringSubmatch(value)
	if m == nil {
		return value, ""
	}
	return m[1], Anchorize(m[1])
}
