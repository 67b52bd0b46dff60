package format

import (
	"sort"
	"strings"
	"sync"

	"github.com/somiandras/gtm-docs/internal/model"
)

// Document renders the complete markdown document for elements: a
// `## Tags`, `## Triggers` and `## Variables` group in that fixed order,
// each containing the sections of its elements sorted by name. Empty
// groups keep their heading. Elements failing validation abort the build
// with the first error in input order.
func Document(elements []model.Element) (string, error) {
	return DocumentWorkers(elements, 1)
}

// DocumentWorkers renders like Document, building element sections with
// up to workers goroutines. Sections have no cross-element dependency, so
// the results are re-joined in the same sorted order regardless of the
// worker count.
func DocumentWorkers(elements []model.Element, workers int) (string, error) {
	for _, el := range elements {
		if err := el.Validate(); err != nil {
			return "", err
		}
	}

	buckets := map[model.Category][]model.Element{}
	for _, el := range elements {
		buckets[el.Category] = append(buckets[el.Category], el)
	}

	groups := []struct {
		heading  string
		category model.Category
	}{
		{"## Tags", model.CategoryTag},
		{"## Triggers", model.CategoryTrigger},
		{"## Variables", model.CategoryVariable},
	}

	// Sorting and grouping happen only here; every other stage of the
	// engine is order-agnostic.
	var ordered []model.Element
	starts := make([]int, len(groups))
	for i, g := range groups {
		starts[i] = len(ordered)
		bucket := append([]model.Element(nil), buckets[g.category]...)
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].Name < bucket[j].Name })
		ordered = append(ordered, bucket...)
	}

	sections := renderSections(ordered, workers)

	var blocks []string
	for i, g := range groups {
		end := len(ordered)
		if i+1 < len(groups) {
			end = starts[i+1]
		}
		blocks = append(blocks, g.heading)
		blocks = append(blocks, sections[starts[i]:end]...)
	}
	return strings.Join(blocks, "\n\n"), nil
}

// renderSections builds one section per element, index-aligned with its
// input.
func renderSections(elements []model.Element, workers int) []string {
	out := make([]string, len(elements))
	if workers <= 1 || len(elements) < 2 {
		for i, el := range elements {
			out[i] = section(el)
		}
		return out
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range elements {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			out[i] = section(elements[i])
			<-sem
		}()
	}
	wg.Wait()
	return out
}
