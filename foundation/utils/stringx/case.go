// File: case.go
// Title: Case Conversion Functions
// Description: Implements Unicode case mapping (independent of the host
//              locale) and the conversions between naming conventions:
//              snake_case, kebab-case, StudlyCaps and camelCase. Word
//              boundaries for snake_case come from a case-boundary tokenizer
//              that needs look-ahead, so it runs on regexp2.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with naming convention conversions
// - 2026-10-19 v0.2.0: x/text case mapping, regexp2 case-boundary tokenizer,
//                      StudlyCaps, SwapCase and IsSnakeCase

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caseBoundaryPattern matches all-caps runs that end before a capitalized
// word (or the end of input), and ordinary words.
const caseBoundaryPattern = `([A-Z][A-Z0-9]*(?=$|[A-Z][a-z0-9])|[A-Za-z][a-z0-9]+)`

var caseBoundary = regexp2.MustCompile(caseBoundaryPattern, regexp2.None)

// ToUpper maps s to upper case using the root locale.
func ToUpper(s string) string {
	if s == "" {
		return s
	}
	// A Caser keeps state, so each call gets its own.
	return cases.Upper(language.Und).String(s)
}

// ToLower maps s to lower case using the root locale.
func ToLower(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(s)
}

// IsUpper reports whether upper-casing s leaves it unchanged.
func IsUpper(s string) bool {
	return ToUpper(s) == s
}

// IsLower reports whether lower-casing s leaves it unchanged.
func IsLower(s string) bool {
	return ToLower(s) == s
}

// UpFirst upper-cases the first codepoint of s.
func UpFirst(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return ToUpper(s[:size]) + s[size:]
}

// lowFirst lower-cases the first codepoint of s.
func lowFirst(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return ToLower(s[:size]) + s[size:]
}

// UpWords upper-cases the first codepoint of every whitespace-separated word.
// The remaining codepoints keep their case.
func UpWords(s string) string {
	if s == "" {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))

	atWordStart := true
	for i, r := range s {
		switch {
		case unicode.IsSpace(r):
			atWordStart = true
			result.WriteRune(r)
		case atWordStart:
			atWordStart = false
			result.WriteString(ToUpper(s[i : i+utf8.RuneLen(r)]))
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// SwapCase inverts the case of every codepoint that has one.
func SwapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}

// SplitByDifferentCases tokenizes s at case boundaries without changing the
// case of the tokens. "HTTPServerError" yields HTTP, Server, Error.
// Only ASCII letters and digits take part in tokens.
func SplitByDifferentCases(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string
	m, err := caseBoundary.FindStringMatch(s)
	for m != nil && err == nil {
		tokens = append(tokens, m.String())
		m, err = caseBoundary.FindNextMatch(m)
	}
	return tokens
}

// ToSnakeCase joins the case-boundary tokens of s with separator. All-caps
// tokens are lower-cased as a whole, other tokens only at their first
// codepoint.
// Example: "HTTPServer" -> "http_server", "Artem-Ukrainsky" -> "artem_ukrainsky"
func ToSnakeCase(s, separator string) string {
	tokens := SplitByDifferentCases(s)
	for i, token := range tokens {
		if IsUpper(token) {
			tokens[i] = ToLower(token)
		} else {
			tokens[i] = lowFirst(token)
		}
	}
	return strings.Join(tokens, separator)
}

// ToKebabCase is ToSnakeCase with "-" as separator.
func ToKebabCase(s string) string {
	return ToSnakeCase(s, "-")
}

// ToStudlyCaps treats "_", "-" and spaces as word separators, upper-cases
// the first codepoint of every word and removes the separators.
// Example: "my_variable-name x" -> "MyVariableNameX"
func ToStudlyCaps(s string) string {
	if s == "" {
		return s
	}
	words := strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.ReplaceAll(UpWords(words), " ", "")
}

// ToCamelCase is ToStudlyCaps with a lower-case first codepoint.
// Example: "my_variable_name" -> "myVariableName"
func ToCamelCase(s string) string {
	return lowFirst(ToStudlyCaps(s))
}

// IsSnakeCase reports whether s consists of lower-case codepoints joined by
// separator. Spaces and the other common separators ("-", "_", ",") are
// rejected.
func IsSnakeCase(s, separator string) bool {
	for _, r := range s {
		c := string(r)
		if c == separator {
			continue
		}
		if r == ' ' || r == '-' || r == '_' || r == ',' || !IsLower(c) {
			return false
		}
	}
	return true
}
