// File: elements.go
// Title: Markdown Element Extraction
// Description: Classifies the lines of a document into headings, bullet
//              lists, plain text and whitespace lines. Consecutive bullet
//              lines form one list; any other line closes it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package markdown

import (
	"github.com/msto63/strkit/foundation/core/errors"
	"github.com/msto63/strkit/pkg/str"
)

// ElementKind names the class of an Element.
type ElementKind string

const (
	KindHeading    ElementKind = "heading"
	KindList       ElementKind = "list"
	KindText       ElementKind = "text"
	KindWhitespace ElementKind = "whitespace"
)

var bulletMarkers = []string{"* ", "- ", "+ "}

// Element is one block of a document.
type Element interface {
	Kind() ElementKind
	Content() *str.Str
}

// Heading is a "#" heading with its level.
type Heading struct {
	Title *str.Str
	Level int
}

// NewHeading creates a heading. Levels outside 1-6 fail with ARGUMENT_RANGE.
func NewHeading(title *str.Str, level int) (Heading, error) {
	if err := checkLevel("new_heading", level); err != nil {
		return Heading{}, err
	}
	if title == nil {
		title = str.Empty()
	}
	return Heading{Title: title, Level: level}, nil
}

func (h Heading) Kind() ElementKind { return KindHeading }

// Content returns the title.
func (h Heading) Content() *str.Str { return h.Title }

// List is a run of bullet items.
type List struct {
	Items []Element
}

func (l List) Kind() ElementKind { return KindList }

// Content returns the item contents, one per line.
func (l List) Content() *str.Str {
	contents := make([]*str.Str, len(l.Items))
	for i, item := range l.Items {
		contents[i] = item.Content()
	}
	return str.NewCollection(contents...).ImplodeAsLines()
}

// Text is a plain line, or a single bullet item inside a List.
type Text struct {
	Value *str.Str
}

func (t Text) Kind() ElementKind { return KindText }

func (t Text) Content() *str.Str { return t.Value }

// WhitespaceLine is an empty or blank line.
type WhitespaceLine struct{}

func (WhitespaceLine) Kind() ElementKind { return KindWhitespace }

func (WhitespaceLine) Content() *str.Str { return str.Empty() }

// Elements classifies every line of the document, in order. Lines are
// trimmed before classification. A bullet line ("* ", "- " or "+ ") joins
// the list that is open; every other line closes it, so lists never merge
// across a whitespace line.
func (m *Markdown) Elements() []Element {
	var (
		elements []Element
		items    []Element
	)

	flush := func() {
		if len(items) > 0 {
			elements = append(elements, List{Items: items})
			items = nil
		}
	}

	for line := range m.text.Lines().Values() {
		line = line.Trim()

		switch {
		case line.IsEmpty():
			flush()
			elements = append(elements, WhitespaceLine{})
		case line.StartsWithAnyOf(bulletMarkers...):
			items = append(items, Text{Value: line.Cut(str.ToEnd, 2).Trim()})
		default:
			flush()
			if level, title, ok := splitHeading(line); ok {
				elements = append(elements, Heading{Title: title.Trim(), Level: level})
			} else {
				elements = append(elements, Text{Value: line})
			}
		}
	}
	flush()

	return elements
}

// Lists returns only the lists of the document.
func (m *Markdown) Lists() []List {
	var lists []List
	for _, element := range m.Elements() {
		if list, ok := element.(List); ok {
			lists = append(lists, list)
		}
	}
	return lists
}

// SectionItems returns the bullet items of the first list that follows a
// heading titled title, or NOT_FOUND when there is no such heading. A
// heading without a list yields no items.
func (m *Markdown) SectionItems(title string) ([]*str.Str, error) {
	elements := m.Elements()
	for i, element := range elements {
		heading, ok := element.(Heading)
		if !ok || !heading.Title.Equals(title) {
			continue
		}

		for _, next := range elements[i+1:] {
			switch next := next.(type) {
			case List:
				items := make([]*str.Str, len(next.Items))
				for j, item := range next.Items {
					items[j] = item.Content()
				}
				return items, nil
			case Heading:
				return nil, nil
			}
		}
		return nil, nil
	}
	return nil, errors.NotFound(errors.ModuleMarkdown, "section_items", title)
}
