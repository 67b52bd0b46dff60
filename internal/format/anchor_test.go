package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnchorize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple name", "Element Name", "element-name"},
		{"embedded hyphen removed", "Page View - GA4", "page-view-ga4"},
		{"collapses whitespace runs", "All   Pages", "all-pages"},
		{"tabs count as whitespace", "Click\tTrigger", "click-trigger"},
		{"already a slug", "page-view-ga4", "pageviewga4"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Anchorize(tc.in))
		})
	}
}

func TestAnchorizeIdempotentOnHyphenFreeSlugs(t *testing.T) {
	t.Parallel()

	// Hyphens introduced for whitespace are stripped on a second pass, so
	// idempotence only holds for slugs without them.
	for _, slug := range []string{"pageviewga4", "allpages", "x", ""} {
		assert.Equal(t, slug, Anchorize(slug))
	}
}
