package format

import (
	"fmt"
	"strings"
)

// RenderEntry is one resolved line of a rendered list. An empty string
// means the field is absent. Children, when non-empty, produce a nested
// sub-list one indentation level deeper.
type RenderEntry struct {
	Key         string
	KeyAnchor   string
	Relation    string
	Value       string
	ValueAnchor string
	Children    []RenderEntry
}

// renderList renders entries as a markdown bullet list indented by four
// spaces per depth level. A non-empty title is emitted bold on its own
// line followed by a blank line; an empty entries collection renders the
// "{title}: *None*" placeholder instead (or a single blank line when
// untitled).
func renderList(entries []RenderEntry, title string, depth int) string {
	if len(entries) == 0 {
		if title != "" {
			return title + ": *None*"
		}
		return ""
	}

	var lines []string
	if title != "" {
		lines = append(lines, "**"+title+"**", "")
	}

	indent := strings.Repeat("    ", depth)
	for _, entry := range entries {
		lines = append(lines, renderEntry(entry, indent, depth))
	}
	return strings.Join(lines, "\n")
}

func renderEntry(entry RenderEntry, indent string, depth int) string {
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString("- ")

	keyEmitted := false
	switch {
	case entry.Key != "" && entry.KeyAnchor != "":
		fmt.Fprintf(&b, "[%s](#%s)", entry.Key, entry.KeyAnchor)
		keyEmitted = true
	case entry.Key != "":
		b.WriteString(entry.Key)
		keyEmitted = true
	}

	if keyEmitted {
		if entry.Relation != "" {
			b.WriteString(" *" + entry.Relation + "* ")
		} else {
			b.WriteString(": ")
		}
	}

	switch {
	case entry.Value != "" && entry.ValueAnchor != "":
		fmt.Fprintf(&b, "[%s](#%s)", entry.Value, entry.ValueAnchor)
	case entry.Value != "":
		b.WriteString(`"` + entry.Value + `"`)
	}

	if len(entry.Children) > 0 {
		b.WriteString("\n")
		b.WriteString(renderList(entry.Children, "", depth+1))
	}
	return b.String()
}
