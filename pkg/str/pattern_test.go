// File: pattern_test.go
// Title: Unit Tests for Pattern Matching
// Description: Tests for delimited pattern parsing, Match with group and
//              offset selection, GlobalMatch and INVALID_PATTERN reporting.
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

func TestCompilePattern(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		match   bool
	}{
		{`/^\d+$/`, "123", true},
		{`/^abc$/i`, "ABC", true},
		{`#^abc$#`, "ABC", false},
		{`{a+}`, "caab", true},
		{`(^x)`, "yx", false},
		{`/^b$/m`, "a\nb\nc", true},
		{`/a.b/s`, "a\nb", true},
		{`/a b c/x`, "abc", true},
		{`/path/to/`, "the path/to file", true},
		{`/ё+/u`, "ёёё", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := CompilePattern(tt.pattern)
			if err != nil {
				t.Fatalf("CompilePattern(%q) error = %v", tt.pattern, err)
			}
			got, err := re.MatchString(tt.input)
			if err != nil {
				t.Fatalf("MatchString(%q) error = %v", tt.input, err)
			}
			if got != tt.match {
				t.Errorf("CompilePattern(%q) matches %q = %v; want %v", tt.pattern, tt.input, got, tt.match)
			}
		})
	}
}

func TestCompilePatternRejects(t *testing.T) {
	tests := []string{
		"",
		"abc",
		`\abc\`,
		"/unterminated",
		"/abc/q",
		"/(abc/",
	}

	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			if _, err := CompilePattern(pattern); !errors.IsInvalidPattern(err) {
				t.Errorf("CompilePattern(%q) error = %v; want INVALID_PATTERN", pattern, err)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	s := Of("version: 12.4, build 77")

	tests := []struct {
		name     string
		pattern  string
		opts     MatchOptions
		expected string
	}{
		{"last group", `/(\d+)\.(\d+)/`, MatchOptions{}, "4"},
		{"whole match", `/(\d+)\.(\d+)/`, MatchOptions{First: true}, "12.4"},
		{"no groups", `/\d+/`, MatchOptions{}, "12"},
		{"offset", `/\d+/`, MatchOptions{Offset: 15}, "77"},
		{"negative offset", `/\d+/`, MatchOptions{Offset: -2}, "77"},
		{"offset past end", `/\d+/`, MatchOptions{Offset: 100}, ""},
		{"no match", `/xyz/`, MatchOptions{}, ""},
		{"optional group skipped", `/(build) (x)?/`, MatchOptions{}, "build"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.MatchWith(tt.pattern, tt.opts)
			if err != nil {
				t.Fatalf("MatchWith(%q) error = %v", tt.pattern, err)
			}
			if got.String() != tt.expected {
				t.Errorf("MatchWith(%q, %+v) = %q; want %q", tt.pattern, tt.opts, got, tt.expected)
			}
		})
	}

	if _, err := s.Match("/[/"); !errors.IsInvalidPattern(err) {
		t.Errorf("Match(/[/) error = %v; want INVALID_PATTERN", err)
	}
}

func TestMatchCountsOffsetInCodepoints(t *testing.T) {
	s := Of("ёж 1 ёж 2")
	got, err := s.MatchWith(`/\d/`, MatchOptions{Offset: 4})
	if err != nil {
		t.Fatalf("MatchWith() error = %v", err)
	}
	if got.String() != "2" {
		t.Errorf("MatchWith(offset 4) = %q; want %q", got, "2")
	}
}

func TestGlobalMatch(t *testing.T) {
	s := Of("a=1, b=2, c=3")

	matches, err := s.GlobalMatch(`/(\w)=(\d)/`)
	if err != nil {
		t.Fatalf("GlobalMatch() error = %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("GlobalMatch() returned %d matches; want 3", len(matches))
	}
	if got := matches[1].ToStrings(); !reflect.DeepEqual(got, []string{"b=2", "b", "2"}) {
		t.Errorf("GlobalMatch()[1] = %q; want [b=2 b 2]", got)
	}

	firsts, err := s.GlobalMatchWith(`/(\w)=(\d)/`, MatchOptions{First: true, Offset: 5})
	if err != nil {
		t.Fatalf("GlobalMatchWith() error = %v", err)
	}
	var whole []string
	for _, m := range firsts {
		whole = append(whole, m.ToStrings()...)
	}
	if !reflect.DeepEqual(whole, []string{"b=2", "c=3"}) {
		t.Errorf("GlobalMatchWith(First, Offset 5) = %q; want [b=2 c=3]", whole)
	}

	none, err := s.GlobalMatch(`/z/`)
	if err != nil || len(none) != 0 {
		t.Errorf("GlobalMatch(/z/) = %v, %v; want none", none, err)
	}
	if _, err := s.GlobalMatch(`/a/k`); !errors.IsInvalidPattern(err) {
		t.Errorf("GlobalMatch(/a/k) error = %v; want INVALID_PATTERN", err)
	}
}

func TestCompilePatternReusesProgram(t *testing.T) {
	first, err := CompilePattern(`/^[a-z]+\d$/i`)
	if err != nil {
		t.Fatalf("CompilePattern() error = %v", err)
	}
	second, err := CompilePattern(`/^[a-z]+\d$/i`)
	if err != nil {
		t.Fatalf("CompilePattern() error = %v", err)
	}
	if first != second {
		t.Error("CompilePattern() compiled the same pattern twice")
	}

	other, err := CompilePattern(`/^[a-z]+\d$/`)
	if err != nil {
		t.Fatalf("CompilePattern() error = %v", err)
	}
	if other == first {
		t.Error("patterns with different flags share a program")
	}
}
