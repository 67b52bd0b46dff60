package gtm

import (
	"context"

	"github.com/somiandras/gtm-docs/internal/ctxlog"
	"github.com/somiandras/gtm-docs/internal/model"
)

// maskedValue replaces the body of custom HTML parameters so generated
// documentation never embeds third-party code verbatim.
const maskedValue = "[custom code]"

// normalize converts the raw workspace payloads into formatting-engine
// elements. It builds entirely new records and leaves the decoded
// payload untouched, so a re-entered build cannot observe half-processed
// input.
func normalize(ctx context.Context, c container) []model.Element {
	triggerNames := make(map[string]string, len(c.Triggers))
	for _, t := range c.Triggers {
		triggerNames[t.TriggerID] = t.Name
	}

	elements := make([]model.Element, 0, len(c.Tags)+len(c.Triggers)+len(c.Variables))
	for _, raw := range c.Tags {
		el := baseElement(raw, model.CategoryTag)
		el.Triggers = make([]model.TriggerRef, 0, len(raw.FiringTriggerID))
		for _, id := range raw.FiringTriggerID {
			if name, ok := triggerNames[id]; ok {
				el.Triggers = append(el.Triggers, model.TriggerRef{Name: name})
			}
		}
		elements = append(elements, el)
	}
	for _, raw := range c.Triggers {
		el := baseElement(raw, model.CategoryTrigger)
		el.Filters = make([]model.Filter, 0, len(raw.Filter)+len(raw.CustomEventFilter))
		for _, cond := range raw.Filter {
			appendFilter(ctx, &el, cond)
		}
		for _, cond := range raw.CustomEventFilter {
			appendFilter(ctx, &el, cond)
		}
		elements = append(elements, el)
	}
	for _, raw := range c.Variables {
		elements = append(elements, baseElement(raw, model.CategoryVariable))
	}
	return elements
}

func baseElement(raw rawElement, category model.Category) model.Element {
	return model.Element{
		Name:       raw.Name,
		Type:       raw.Type,
		Category:   category,
		Notes:      raw.Notes,
		SourceURL:  raw.TagManagerURL,
		Parameters: normalizeParameters(raw.Parameter),
	}
}

// normalizeParameters filters and converts a raw parameter list.
// Parameters whose value is the literal "false" document nothing useful
// and are dropped; custom html bodies are masked. Both rules apply to
// the top level only, matching the upstream data where nested map and
// list parameters hold plain values.
func normalizeParameters(raw []rawParameter) []model.Parameter {
	params := make([]model.Parameter, 0, len(raw))
	for _, p := range raw {
		if p.Value == "false" && p.List == nil && p.Map == nil {
			continue
		}
		param := convertParameter(p)
		if param.Key == "html" {
			param.Value = maskedValue
		}
		params = append(params, param)
	}
	return params
}

func convertParameter(p rawParameter) model.Parameter {
	param := model.Parameter{Key: p.Key}
	if p.List == nil && p.Map == nil {
		param.Value = p.Value
		return param
	}
	children := make([]model.Parameter, 0, len(p.List)+len(p.Map))
	for _, c := range p.List {
		children = append(children, convertParameter(c))
	}
	for _, c := range p.Map {
		children = append(children, convertParameter(c))
	}
	param.Children = children
	return param
}

// appendFilter converts one trigger condition. The API hides the
// operands in the condition's parameter list under arg0, arg1 and
// negate; a condition missing either operand is skipped with a warning
// rather than failing the whole build.
func appendFilter(ctx context.Context, el *model.Element, cond rawCondition) {
	args := make(map[string]string, len(cond.Parameter))
	for _, p := range cond.Parameter {
		args[p.Key] = p.Value
	}

	key, okKey := args["arg0"]
	value, okValue := args["arg1"]
	if !okKey || !okValue {
		ctxlog.FromContext(ctx).Warn("skipping condition with missing operand",
			"trigger", el.Name, "relation", cond.Type)
		return
	}

	el.Filters = append(el.Filters, model.Filter{
		Relation: cond.Type,
		Key:      key,
		Value:    value,
		Negated:  args["negate"] == "true",
	})
}
