package htmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	doc := "## Tags\n\n" +
		`###<a name="pixel"/>Pixel` + "\n\n" +
		"- [All Pages](#all-pages)"

	html, err := Render(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "<h2>Tags</h2>")
	assert.Contains(t, html, `<a name="pixel"/>`, "raw heading anchors must survive conversion")
	assert.Contains(t, html, `<a href="#all-pages">All Pages</a>`)
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	html, err := Render("")
	require.NoError(t, err)
	assert.Empty(t, html)
}
