// Package htmldoc converts an assembled markdown document into HTML. It
// delegates entirely to goldmark; the output is semantically equivalent
// to the markdown but not byte-stable across goldmark versions.
package htmldoc

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// md is the configured converter. Raw HTML must pass through so the
// `<a name="..."/>` heading anchors keep resolving after conversion.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Render converts a markdown document to HTML.
func Render(doc string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(doc), &buf); err != nil {
		return "", fmt.Errorf("converting markdown to html: %w", err)
	}
	return buf.String(), nil
}
