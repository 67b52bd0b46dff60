package gtm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somiandras/gtm-docs/internal/model"
)

func testContainer() container {
	return container{
		Tags: []rawElement{{
			TagID:         "10",
			Name:          "Page View - GA4",
			Type:          "gaawe",
			TagManagerURL: "https://example.com/tags/10",
			Parameter: []rawParameter{
				{Type: "boolean", Key: "sendPageView", Value: "false"},
				{Type: "template", Key: "measurementId", Value: "{{ GA4 ID }}"},
			},
			FiringTriggerID: []string{"20", "404"},
		}},
		Triggers: []rawElement{{
			TriggerID:     "20",
			Name:          "All Pages",
			Type:          "pageview",
			TagManagerURL: "https://example.com/triggers/20",
			Filter: []rawCondition{{
				Type: "equals",
				Parameter: []rawParameter{
					{Key: "arg0", Value: "{{Page Hostname}}"},
					{Key: "arg1", Value: "shop.example.com"},
					{Key: "negate", Value: "true"},
				},
			}},
			CustomEventFilter: []rawCondition{{
				// arg1 missing: skipped during normalization.
				Type:      "contains",
				Parameter: []rawParameter{{Key: "arg0", Value: "{{Event}}"}},
			}},
		}},
		Variables: []rawElement{{
			VariableID:    "30",
			Name:          "GA4 ID",
			Type:          "c",
			Notes:         "Measurement id constant.",
			TagManagerURL: "https://example.com/variables/30",
			Parameter: []rawParameter{
				{Type: "template", Key: "html", Value: "<script>evil()</script>"},
				{Type: "map", Key: "settings", Map: []rawParameter{
					{Key: "cookieDomain", Value: "auto"},
				}},
			},
		}},
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	elements := normalize(context.Background(), testContainer())
	require.Len(t, elements, 3)

	tag, trigger, variable := elements[0], elements[1], elements[2]

	t.Run("tag", func(t *testing.T) {
		assert.Equal(t, model.CategoryTag, tag.Category)
		assert.Equal(t, "Page View - GA4", tag.Name)
		assert.Equal(t, "https://example.com/tags/10", tag.SourceURL)

		// Firing trigger ids resolve to names; unknown ids are dropped.
		assert.Equal(t, []model.TriggerRef{{Name: "All Pages"}}, tag.Triggers)

		// The "false"-valued parameter is filtered out.
		require.Len(t, tag.Parameters, 1)
		assert.Equal(t, "measurementId", tag.Parameters[0].Key)
		assert.Equal(t, "{{ GA4 ID }}", tag.Parameters[0].Value)
	})

	t.Run("trigger", func(t *testing.T) {
		assert.Equal(t, model.CategoryTrigger, trigger.Category)

		// The complete condition converts; the one without arg1 is skipped.
		require.Len(t, trigger.Filters, 1)
		assert.Equal(t, model.Filter{
			Relation: "equals",
			Key:      "{{Page Hostname}}",
			Value:    "shop.example.com",
			Negated:  true,
		}, trigger.Filters[0])
	})

	t.Run("variable", func(t *testing.T) {
		assert.Equal(t, model.CategoryVariable, variable.Category)
		assert.Equal(t, "Measurement id constant.", variable.Notes)
		require.Len(t, variable.Parameters, 2)

		assert.Equal(t, "[custom code]", variable.Parameters[0].Value, "html parameter should be masked")

		nested := variable.Parameters[1]
		assert.Equal(t, "settings", nested.Key)
		assert.Empty(t, nested.Value)
		require.Len(t, nested.Children, 1)
		assert.Equal(t, model.Parameter{Key: "cookieDomain", Value: "auto"}, nested.Children[0])
	})
}

func TestNormalizeEmptyListsStayPresent(t *testing.T) {
	t.Parallel()

	c := container{
		Tags:     []rawElement{{TagID: "1", Name: "T", Type: "x", TagManagerURL: "u"}},
		Triggers: []rawElement{{TriggerID: "2", Name: "Tr", Type: "y", TagManagerURL: "u"}},
	}
	elements := normalize(context.Background(), c)
	require.Len(t, elements, 2)

	// Present-but-empty lists render the *None* placeholder downstream, so
	// normalization must emit non-nil slices.
	assert.NotNil(t, elements[0].Parameters)
	assert.NotNil(t, elements[0].Triggers)
	assert.NotNil(t, elements[1].Filters)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	c := testContainer()
	_ = normalize(context.Background(), c)

	assert.Equal(t, "<script>evil()</script>", c.Variables[0].Parameter[0].Value,
		"raw payload must stay untouched")
	assert.Equal(t, "false", c.Tags[0].Parameter[0].Value)
}
