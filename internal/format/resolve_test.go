package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveReference(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		in         string
		wantText   string
		wantAnchor string
	}{
		{"wrapped reference", "{{ Page URL }}", "Page URL", "page-url"},
		{"wrapped without padding", "{{Event}}", "Event", "event"},
		{"plain literal", "some literal", "some literal", ""},
		{"unbalanced open", "{{ Page URL", "{{ Page URL", ""},
		{"unbalanced close", "Page URL }}", "Page URL }}", ""},
		{"text outside braces", "x {{ Page URL }}", "x {{ Page URL }}", ""},
		{"empty string", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, anchor := ResolveReference(tc.in)
			assert.Equal(t, tc.wantText, text)
			assert.Equal(t, tc.wantAnchor, anchor)
		})
	}
}
