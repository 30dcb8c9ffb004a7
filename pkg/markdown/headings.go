// File: headings.go
// Title: Heading Lists
// Description: Implements Headings, the immutable result of
//              Markdown.Headings with level filters and an export form for
//              JSON and YAML output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package markdown

import (
	"iter"
	"slices"
)

// Headings is an ordered list of headings.
type Headings struct {
	items []Heading
}

// HeadingRecord is the export form of a heading.
type HeadingRecord struct {
	Title string `json:"title" yaml:"title"`
	Level int    `json:"level" yaml:"level"`
}

// All returns a copy of the headings.
func (h *Headings) All() []Heading {
	return slices.Clone(h.items)
}

// Values iterates the headings in document order.
func (h *Headings) Values() iter.Seq[Heading] {
	return slices.Values(h.items)
}

// FilterByLevel keeps the headings of one level.
func (h *Headings) FilterByLevel(level int) *Headings {
	return h.Filter(func(heading Heading) bool { return heading.Level == level })
}

// Filter keeps the headings fn accepts.
func (h *Headings) Filter(fn func(Heading) bool) *Headings {
	var kept []Heading
	for _, heading := range h.items {
		if fn(heading) {
			kept = append(kept, heading)
		}
	}
	return &Headings{items: kept}
}

func (h *Headings) Count() int {
	return len(h.items)
}

func (h *Headings) IsEmpty() bool {
	return h.Count() == 0
}

func (h *Headings) IsNotEmpty() bool {
	return !h.IsEmpty()
}

// ToArray returns the headings under the "headings" key, ready to be
// encoded.
func (h *Headings) ToArray() map[string][]HeadingRecord {
	records := make([]HeadingRecord, len(h.items))
	for i, heading := range h.items {
		records[i] = HeadingRecord{Title: heading.Title.String(), Level: heading.Level}
	}
	return map[string][]HeadingRecord{"headings": records}
}
