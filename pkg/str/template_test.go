// File: template_test.go
// Title: Unit Tests for Template Matching
// Description: Tests for the default placeholders, custom placeholder sets
//              and literal quoting of template text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package str

import (
	"reflect"
	"testing"

	"github.com/msto63/strkit/foundation/core/errors"
)

func TestMatchTemplateDefaults(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		template string
		expected bool
	}{
		{"word", "Hello, Artem!", "Hello, {word}!", true},
		{"word rejects spaces", "Hello, big dev!", "Hello, {word}!", false},
		{"text line", "Status: all good (mostly)", "Status: {text_line}", true},
		{"multiline", "Body:\nline one\nline two", "Body:{text_multiline}", true},
		{"number float", "Price 12.5", "Price {number}", true},
		{"number missing", "Price abc", "Price {number}", false},
		{"literal metacharacters", "a+b=(c)", "a+b=({word})", true},
		{"literal metacharacters differ", "aab=(c)", "a+b=({word})", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Of(tt.input).MatchTemplate(tt.template, nil)
			if err != nil {
				t.Fatalf("MatchTemplate(%q) error = %v", tt.template, err)
			}
			if got != tt.expected {
				t.Errorf("MatchTemplate(%q, %q) = %v; want %v", tt.input, tt.template, got, tt.expected)
			}
		})
	}
}

func TestTemplatePlaceholdersAdd(t *testing.T) {
	defaults := DefaultTemplatePlaceholders()
	custom := defaults.Add("version", `v\d+\.\d+\.\d+`)

	if _, ok := defaults.Pattern("version"); ok {
		t.Error("Add() modified the receiver")
	}
	if pattern, ok := custom.Pattern("version"); !ok || pattern != `v\d+\.\d+\.\d+` {
		t.Errorf("Pattern(version) = %q, %v", pattern, ok)
	}

	want := []string{"number", "text_line", "text_multiline", "version", "word"}
	if got := custom.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %q; want %q", got, want)
	}

	matched, err := Of("release v1.2.3 shipped").MatchTemplate("release {version} shipped", custom)
	if err != nil || !matched {
		t.Errorf("MatchTemplate(custom) = %v, %v; want true, nil", matched, err)
	}

	empty := (&TemplatePlaceholders{}).Add("id", `\d+`)
	if got := empty.Names(); !reflect.DeepEqual(got, []string{"id"}) {
		t.Errorf("Add() on empty set Names() = %q; want [id]", got)
	}
}

func TestMatchTemplateInvalidPlaceholder(t *testing.T) {
	broken := DefaultTemplatePlaceholders().Add("bad", `(`)
	if _, err := Of("x").MatchTemplate("{bad}", broken); !errors.IsInvalidPattern(err) {
		t.Errorf("MatchTemplate({bad}) error = %v; want INVALID_PATTERN", err)
	}
}
