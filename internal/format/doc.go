// Package format is the document formatting engine. It turns a list of
// normalized model.Element records into a single cross-linked markdown
// document: one heading-with-anchor section per element, grouped into
// Tags, Triggers and Variables.
//
// The package is purely functional: it never mutates its input, performs
// no I/O, and the sorting of elements happens in exactly one place, the
// document assembler. Anchors are a pure function of display names, so a
// link target and its heading always agree; two elements sharing a
// display name collide, which is an accepted platform constraint.
package format
