// File: case_test.go
// Title: Unit Tests for Case Operations
// Description: Tests for case mapping, naming conventions, their predicates
//              and sentence formatting on Str.
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
)

func TestCaseMapping(t *testing.T) {
	tests := []struct {
		input string
		upper string
		lower string
	}{
		{"", "", ""},
		{"Hello Dev", "HELLO DEV", "hello dev"},
		{"Ёжик", "ЁЖИК", "ёжик"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := Of(tt.input)
			if got := s.ToUpper().String(); got != tt.upper {
				t.Errorf("ToUpper(%q) = %q; want %q", tt.input, got, tt.upper)
			}
			if got := s.ToLower().String(); got != tt.lower {
				t.Errorf("ToLower(%q) = %q; want %q", tt.input, got, tt.lower)
			}
			if !s.ToUpper().IsUpper() || !s.ToLower().IsLower() {
				t.Errorf("case predicates disagree with transforms for %q", tt.input)
			}
		})
	}
}

func TestHasCaseSymbols(t *testing.T) {
	tests := []struct {
		input    string
		hasUpper bool
		hasLower bool
	}{
		{"abc", false, true},
		{"ABC", true, false},
		{"aBc", true, true},
		{"123", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := Of(tt.input)
			if got := s.HasUppercaseSymbols(); got != tt.hasUpper {
				t.Errorf("HasUppercaseSymbols(%q) = %v; want %v", tt.input, got, tt.hasUpper)
			}
			if got := s.HasLowercaseSymbols(); got != tt.hasLower {
				t.Errorf("HasLowercaseSymbols(%q) = %v; want %v", tt.input, got, tt.hasLower)
			}
		})
	}
}

func TestStudlyAndCamel(t *testing.T) {
	tests := []struct {
		input    string
		studly   string
		camel    string
		isStudly bool
		isCamel  bool
	}{
		{"hello_dev-team", "HelloDevTeam", "helloDevTeam", false, false},
		{"HelloDev", "HelloDev", "helloDev", true, false},
		{"helloDev", "HelloDev", "helloDev", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := Of(tt.input)
			if got := s.ToStudlyCaps().String(); got != tt.studly {
				t.Errorf("ToStudlyCaps(%q) = %q; want %q", tt.input, got, tt.studly)
			}
			if got := s.ToCamelCase().String(); got != tt.camel {
				t.Errorf("ToCamelCase(%q) = %q; want %q", tt.input, got, tt.camel)
			}
			if got := s.IsStudlyCaps(); got != tt.isStudly {
				t.Errorf("IsStudlyCaps(%q) = %v; want %v", tt.input, got, tt.isStudly)
			}
			if got := s.IsCamelCase(); got != tt.isCamel {
				t.Errorf("IsCamelCase(%q) = %v; want %v", tt.input, got, tt.isCamel)
			}
			if !s.ToStudlyCaps().IsStudlyCaps() || !s.ToCamelCase().IsCamelCase() {
				t.Errorf("transforms of %q are not fixed points of their predicates", tt.input)
			}
		})
	}
}

func TestSnakeAndKebab(t *testing.T) {
	tests := []struct {
		input string
		snake string
		kebab string
	}{
		{"Artem-Ukrainsky", "artem_ukrainsky", "artem-ukrainsky"},
		{"Artem", "artem", "artem"},
		{"XMLHttpRequest", "xml_http_request", "xml-http-request"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := Of(tt.input)
			if got := s.ToSnakeCase().String(); got != tt.snake {
				t.Errorf("ToSnakeCase(%q) = %q; want %q", tt.input, got, tt.snake)
			}
			if got := s.ToKebabCase().String(); got != tt.kebab {
				t.Errorf("ToKebabCase(%q) = %q; want %q", tt.input, got, tt.kebab)
			}
			if !s.ToSnakeCase().IsSnakeCase() {
				t.Errorf("IsSnakeCase(ToSnakeCase(%q)) = false", tt.input)
			}
			if !s.ToKebabCase().IsKebabCase() {
				t.Errorf("IsKebabCase(ToKebabCase(%q)) = false", tt.input)
			}
		})
	}

	if got := Of("HelloDev").ToSnakeCaseWith("::").String(); got != "hello::dev" {
		t.Errorf("ToSnakeCaseWith(::) = %q; want %q", got, "hello::dev")
	}
}

func TestSplitByDifferentCasesCollection(t *testing.T) {
	got := Of("HTTPServerError").SplitByDifferentCases().ToStrings()
	want := []string{"HTTP", "Server", "Error"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitByDifferentCases() = %q; want %q", got, want)
	}
}

func TestUpFirstSymbolUpWordsSwapCase(t *testing.T) {
	if got := Of("  hello dev ").UpFirstSymbol().String(); got != "Hello dev" {
		t.Errorf("UpFirstSymbol() = %q; want %q", got, "Hello dev")
	}
	if got := Of("hello big dev").UpWords().String(); got != "Hello Big Dev" {
		t.Errorf("UpWords() = %q; want %q", got, "Hello Big Dev")
	}
	if got := Of("Привет, Dev").SwapCase().String(); got != "пРИВЕТ, dEV" {
		t.Errorf("SwapCase() = %q; want %q", got, "пРИВЕТ, dEV")
	}
}

func TestToSentence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello dev", "Hello dev."},
		{"hello dev.", "Hello dev."},
		{"hello dev...", "Hello dev."},
		{"ёжик", "Ёжик."},
		{"", "."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Of(tt.input).ToSentence().String(); got != tt.expected {
				t.Errorf("ToSentence(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}
