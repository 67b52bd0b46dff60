package format

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Anchorize converts a display name like "Element Name" into the
// "element-name" slug used both as a heading id and as a link target.
// Pre-existing hyphens are removed before whitespace runs collapse into
// single hyphens. Link targets and heading anchors must both go through
// this function so the two always agree.
func Anchorize(name string) string {
	s := strings.ReplaceAll(strings.ToLower(name), "-", "")
	return whitespaceRun.ReplaceAllString(s, "-")
}
