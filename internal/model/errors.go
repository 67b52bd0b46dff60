package model

import "fmt"

// MissingFieldError reports an element record that lacks one of its
// structurally required fields. It is returned by Element.Validate and
// surfaced unwrapped to the caller of the document build.
type MissingFieldError struct {
	Element string
	Field   string
}

func (e *MissingFieldError) Error() string {
	if e.Element == "" {
		return fmt.Sprintf("element is missing required field %q", e.Field)
	}
	return fmt.Sprintf("element %q is missing required field %q", e.Element, e.Field)
}

// UnknownCategoryError reports a category value outside the known set of
// tag, trigger and variable.
type UnknownCategoryError struct {
	Element  string
	Category Category
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("element %q has unknown category %q", e.Element, e.Category)
}
