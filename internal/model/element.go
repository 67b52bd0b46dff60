// Package model provides the normalized, strongly-typed representation of
// the container elements (tags, triggers and variables) consumed by the
// formatting engine.
//
// Elements are built once by the upstream normalization stage and are
// treated as immutable from then on: every later stage produces new
// structures instead of mutating its input.
package model

// Category identifies which of the three element groups an element
// belongs to. It is assigned once during normalization and determines
// which optional sections the formatter may render.
type Category string

const (
	CategoryTag      Category = "tag"
	CategoryTrigger  Category = "trigger"
	CategoryVariable Category = "variable"
)

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTag, CategoryTrigger, CategoryVariable:
		return true
	}
	return false
}

// Element is a single documented unit of the container.
//
// Parameters, Triggers and Filters distinguish "absent" (nil) from
// "present but empty" (non-nil, zero length); the formatter omits absent
// lists entirely and renders an explicit placeholder for empty ones.
type Element struct {
	Name      string
	Type      string
	Category  Category
	Notes     string
	SourceURL string

	// Parameters carries the element's configuration values.
	Parameters []Parameter

	// Triggers lists the resolved firing-trigger names. Tags only.
	Triggers []TriggerRef

	// Filters lists the firing conditions. Triggers only.
	Filters []Filter
}

// Parameter is one configuration entry of an element. Value and Children
// are mutually exclusive: a non-nil Children marks a nested map- or
// list-typed parameter.
type Parameter struct {
	Key      string
	Value    string
	Children []Parameter
}

// Filter is one firing condition of a trigger.
type Filter struct {
	Relation string
	Key      string
	Value    string
	Negated  bool
}

// TriggerRef names a firing trigger of a tag, already resolved from its
// numeric id to the trigger's display name.
type TriggerRef struct {
	Name string
}

// Validate checks the structural invariants an element must satisfy
// before it can be documented. Notes is allowed to be empty (the
// formatter substitutes a placeholder), every other scalar field is
// required.
func (e Element) Validate() error {
	switch {
	case e.Name == "":
		return &MissingFieldError{Element: e.Name, Field: "name"}
	case e.Type == "":
		return &MissingFieldError{Element: e.Name, Field: "type"}
	case e.SourceURL == "":
		return &MissingFieldError{Element: e.Name, Field: "sourceUrl"}
	case e.Category == "":
		return &MissingFieldError{Element: e.Name, Field: "category"}
	case !e.Category.Valid():
		return &UnknownCategoryError{Element: e.Name, Category: e.Category}
	}
	return nil
}
