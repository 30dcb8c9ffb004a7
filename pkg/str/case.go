// File: case.go
// Title: Case Operations on Str
// Description: Case mapping, naming conventions and case predicates. Every
//              predicate is defined as "the matching transform is a no-op".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package str

import (
	"github.com/msto63/strkit/foundation/utils/stringx"
)

// ToUpper maps the value to upper case.
func (s *Str) ToUpper() *Str {
	return Of(stringx.ToUpper(s.value))
}

// ToLower maps the value to lower case.
func (s *Str) ToLower() *Str {
	return Of(stringx.ToLower(s.value))
}

// IsUpper reports whether ToUpper leaves the value unchanged.
func (s *Str) IsUpper() bool {
	return stringx.IsUpper(s.value)
}

// IsLower reports whether ToLower leaves the value unchanged.
func (s *Str) IsLower() bool {
	return stringx.IsLower(s.value)
}

// HasUppercaseSymbols reports whether lower-casing changes the value.
func (s *Str) HasUppercaseSymbols() bool {
	return !s.IsLower()
}

// HasLowercaseSymbols reports whether upper-casing changes the value.
func (s *Str) HasLowercaseSymbols() bool {
	return !s.IsUpper()
}

// ToStudlyCaps converts "_", "-" and space separated words to StudlyCaps.
func (s *Str) ToStudlyCaps() *Str {
	return Of(stringx.ToStudlyCaps(s.value))
}

// IsStudlyCaps reports whether ToStudlyCaps leaves the value unchanged.
func (s *Str) IsStudlyCaps() bool {
	return stringx.ToStudlyCaps(s.value) == s.value
}

// ToCamelCase converts "_", "-" and space separated words to camelCase.
func (s *Str) ToCamelCase() *Str {
	return Of(stringx.ToCamelCase(s.value))
}

// IsCamelCase reports whether ToCamelCase leaves the value unchanged.
func (s *Str) IsCamelCase() bool {
	return stringx.ToCamelCase(s.value) == s.value
}

// ToSnakeCase converts the value to snake_case.
func (s *Str) ToSnakeCase() *Str {
	return s.ToSnakeCaseWith("_")
}

// ToSnakeCaseWith converts the value to snake case with a custom separator.
func (s *Str) ToSnakeCaseWith(separator string) *Str {
	return Of(stringx.ToSnakeCase(s.value, separator))
}

// ToKebabCase converts the value to kebab-case.
func (s *Str) ToKebabCase() *Str {
	return s.ToSnakeCaseWith("-")
}

// IsSnakeCase reports whether the value is lower-case words joined by "_".
func (s *Str) IsSnakeCase() bool {
	return stringx.IsSnakeCase(s.value, "_")
}

// IsKebabCase reports whether the value is lower-case words joined by "-".
func (s *Str) IsKebabCase() bool {
	return stringx.IsSnakeCase(s.value, "-")
}

// SplitByDifferentCases splits at case boundaries, keeping each token's case.
func (s *Str) SplitByDifferentCases() *Collection {
	return CollectionOf(stringx.SplitByDifferentCases(s.value)...)
}

// UpFirstSymbol trims the value and upper-cases its first codepoint.
func (s *Str) UpFirstSymbol() *Str {
	return Of(stringx.UpFirst(stringx.Trim(s.value)))
}

// UpWords upper-cases the first codepoint of every whitespace separated word.
func (s *Str) UpWords() *Str {
	return Of(stringx.UpWords(s.value))
}

// SwapCase inverts the case of every codepoint.
func (s *Str) SwapCase() *Str {
	return Of(stringx.SwapCase(s.value))
}

// ToSentence strips trailing dots, capitalizes the first codepoint and ends
// the value with exactly one dot.
func (s *Str) ToSentence() *Str {
	return Of(stringx.UpFirst(stringx.RightTrim(s.value, ".")) + ".")
}
