package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/somiandras/gtm-docs/internal/model"
)

// section assembles the full markdown block for one element: the heading
// with its anchor, the notes line, the type line, and whichever of the
// Parameters, Triggers and Filters lists the element carries. A nil list
// is omitted entirely; a present-but-empty list renders its placeholder.
func section(el model.Element) string {
	blocks := []string{
		fmt.Sprintf("###<a name=%q/>%s", Anchorize(el.Name), el.Name),
		notesBlock(el.Notes, el.SourceURL),
		"**Type:** " + TitleCase(el.Type),
	}

	if el.Parameters != nil {
		blocks = append(blocks, renderList(parameterEntries(el.Parameters), "Parameters", 0))
	}
	if el.Category == model.CategoryTag && el.Triggers != nil {
		blocks = append(blocks, renderList(triggerEntries(el.Triggers), "Triggers", 0))
	}
	if el.Category == model.CategoryTrigger && el.Filters != nil {
		blocks = append(blocks, renderList(filterEntries(el.Filters), "Filters", 0))
	}
	return strings.Join(blocks, "\n\n")
}

func notesBlock(notes, url string) string {
	if notes == "" {
		return fmt.Sprintf("*No description* <small>[view on source](%s)</small>", url)
	}
	return fmt.Sprintf("%s <small>[view on source](%s)</small>", notes, url)
}

// parameterEntries resolves a parameter list into render entries sorted
// by key. Keys are title-cased at the top level only; nested children
// keep the casing of their already-resolved source parameters.
func parameterEntries(params []model.Parameter) []RenderEntry {
	entries := make([]RenderEntry, 0, len(params))
	for _, p := range params {
		entries = append(entries, parameterEntry(p, true))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

func parameterEntry(p model.Parameter, top bool) RenderEntry {
	var entry RenderEntry
	entry.Key, entry.KeyAnchor = ResolveReference(p.Key)
	if top {
		entry.Key = TitleCase(entry.Key)
	}
	if p.Children != nil {
		for _, child := range p.Children {
			entry.Children = append(entry.Children, parameterEntry(child, false))
		}
		return entry
	}
	entry.Value, entry.ValueAnchor = ResolveReference(p.Value)
	return entry
}

// triggerEntries links each firing-trigger name to its section heading.
// Trigger names are plain display names, never wrapped references, so
// they are anchorized directly instead of going through the resolver.
func triggerEntries(refs []model.TriggerRef) []RenderEntry {
	entries := make([]RenderEntry, 0, len(refs))
	for _, ref := range refs {
		entries = append(entries, RenderEntry{
			Value:       ref.Name,
			ValueAnchor: Anchorize(ref.Name),
		})
	}
	return entries
}

func filterEntries(filters []model.Filter) []RenderEntry {
	entries := make([]RenderEntry, 0, len(filters))
	for _, f := range filters {
		var entry RenderEntry
		entry.Key, entry.KeyAnchor = ResolveReference(f.Key)
		entry.Value, entry.ValueAnchor = ResolveReference(f.Value)
		entry.Relation = f.Relation
		if f.Negated {
			entry.Relation = "not " + f.Relation
		}
		entries = append(entries, entry)
	}
	return entries
}
