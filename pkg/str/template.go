// File: template.go
// Title: Template Matching
// Description: Matches a Str against a literal template with named
//              placeholders such as "{word}" or "{number}". The template is
//              quoted, the placeholders are replaced by their patterns and
//              the result goes through Match.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package str

import (
	"maps"
	"slices"

	"github.com/dlclark/regexp2"
)

// TemplatePlaceholders maps placeholder names to patterns. It is immutable;
// Add returns a new set.
type TemplatePlaceholders struct {
	patterns map[string]string
}

// DefaultTemplatePlaceholders returns word, text_line, text_multiline and
// number.
func DefaultTemplatePlaceholders() *TemplatePlaceholders {
	return &TemplatePlaceholders{patterns: map[string]string{
		"word":           `(\w+)`,
		"text_line":      `(.*)`,
		"text_multiline": `((.|\n)*)`,
		"number":         `(\d+\.\d+)|(\d+)`,
	}}
}

// Add returns a copy of the set with name bound to pattern.
func (p *TemplatePlaceholders) Add(name, pattern string) *TemplatePlaceholders {
	patterns := maps.Clone(p.patterns)
	if patterns == nil {
		patterns = make(map[string]string, 1)
	}
	patterns[name] = pattern
	return &TemplatePlaceholders{patterns: patterns}
}

// Names returns the placeholder names, sorted.
func (p *TemplatePlaceholders) Names() []string {
	return slices.Sorted(maps.Keys(p.patterns))
}

// Pattern returns the pattern bound to name.
func (p *TemplatePlaceholders) Pattern(name string) (string, bool) {
	pattern, ok := p.patterns[name]
	return pattern, ok
}

// replacements maps the quoted form of every placeholder to its pattern.
func (p *TemplatePlaceholders) replacements() map[string]string {
	replaces := make(map[string]string, len(p.patterns))
	for name, pattern := range p.patterns {
		replaces[regexp2.Escape("{"+name+"}")] = pattern
	}
	return replaces
}

// MatchTemplate reports whether the value contains a non-empty match of
// template. A nil placeholders uses the default set.
func (s *Str) MatchTemplate(template string, placeholders *TemplatePlaceholders) (bool, error) {
	if placeholders == nil {
		placeholders = DefaultTemplatePlaceholders()
	}

	expr := Of(regexp2.Escape(template)).Replace(placeholders.replacements()).String()
	re, err := compile(template, expr, regexp2.None)
	if err != nil {
		return false, err
	}

	matched, err := s.matchCompiled(re, template, MatchOptions{First: true})
	if err != nil {
		return false, err
	}
	return matched.IsNotEmpty(), nil
}
