// File: markdown.go
// Title: Markdown Document Probes
// Description: Wraps a Str holding Markdown text and answers structural
//              questions about it: whether a heading exists, which headings
//              the document has, and how it renders to HTML.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package markdown

import (
	"bytes"
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/msto63/strkit/foundation/core/errors"
	"github.com/msto63/strkit/pkg/str"
)

const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

var renderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Markdown is a read-only view of a Markdown document.
type Markdown struct {
	text *str.Str
}

// New wraps text. A nil text is treated as the empty document.
func New(text *str.Str) *Markdown {
	if text == nil {
		text = str.Empty()
	}
	return &Markdown{text: text}
}

// Parse wraps a plain string.
func Parse(text string) *Markdown {
	return New(str.Of(text))
}

// Str returns the underlying text.
func (m *Markdown) Str() *str.Str {
	return m.text
}

// ContainsHeadingWithLevel reports whether a line starts with exactly level
// "#" characters, whitespace and title. Levels outside 1-6 fail with
// ARGUMENT_RANGE.
func (m *Markdown) ContainsHeadingWithLevel(title string, level int) (bool, error) {
	if err := checkLevel("contains_heading_with_level", level); err != nil {
		return false, err
	}

	pattern := fmt.Sprintf(`/^#{%d}\s+%s/m`, level, regexp2.Escape(title))
	found, err := m.text.Match(pattern)
	if err != nil {
		return false, err
	}
	return found.IsNotEmpty(), nil
}

// ContainsHeadingWithAnyLevel reports whether a line starts with one or
// more "#" characters, whitespace and title.
func (m *Markdown) ContainsHeadingWithAnyLevel(title string) (bool, error) {
	pattern := fmt.Sprintf(`/^(#*)\s+%s/m`, regexp2.Escape(title))
	marks, err := m.text.Match(pattern)
	if err != nil {
		return false, err
	}
	return marks.IsNotEmpty(), nil
}

// Headings collects every line that starts with "#". The level is the
// number of leading "#" characters; lines with more than six are skipped.
// With trim each title is trimmed.
func (m *Markdown) Headings(trim bool) *Headings {
	var headings []Heading
	for line := range m.text.Lines().Values() {
		level, title, ok := splitHeading(line)
		if !ok {
			continue
		}
		if trim {
			title = title.Trim()
		}
		headings = append(headings, Heading{Title: title, Level: level})
	}
	return &Headings{items: headings}
}

// HTML renders the document with GitHub flavoured Markdown.
func (m *Markdown) HTML() (*str.Str, error) {
	var buf bytes.Buffer
	if err := renderer.Convert(m.text.Bytes(), &buf); err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleMarkdown).
			Operation("html").
			Message("rendering failed").
			Cause(err).
			Build()
	}
	return str.Of(buf.String()), nil
}

// splitHeading reads the level and raw title of a heading line.
func splitHeading(line *str.Str) (int, *str.Str, bool) {
	if !line.StartsWith("#") {
		return 0, nil, false
	}
	level := line.CountOfSymbolRepeatsInStart("#", 0, str.ToEnd)
	if level > MaxHeadingLevel {
		return 0, nil, false
	}
	return level, line.Cut(str.ToEnd, level), true
}

func checkLevel(operation string, level int) error {
	if level < MinHeadingLevel || level > MaxHeadingLevel {
		return errors.ArgumentRange(errors.ModuleMarkdown, operation, "level", level, MinHeadingLevel, MaxHeadingLevel)
	}
	return nil
}
