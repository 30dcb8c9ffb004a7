// File: str.go
// Title: Immutable String Value
// Description: Implements Str, the immutable UTF-8 string value at the center
//              of strkit. Every transform returns a new *Str; the only internal
//              mutation is a memoized codepoint list that may be computed
//              concurrently without a lock.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package str

import (
	"iter"
	"math"
	"slices"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/msto63/strkit/foundation/core/errors"
	"github.com/msto63/strkit/foundation/utils/stringx"
)

// ToEnd as a length argument means "up to the end of the value".
const ToEnd = math.MaxInt

// Str is an immutable UTF-8 string value. Use it through *Str only.
type Str struct {
	value string
	chars atomic.Pointer[[]string]
}

// Make creates a Str from a string, *Str, []byte, any integer or float kind,
// or a fmt.Stringer. Any other input is a TYPE_ERROR.
func Make(input any) (*Str, error) {
	text, ok := toText(input)
	if !ok {
		return nil, errors.TypeError(errors.ModuleStr, "make", input)
	}
	return Of(text), nil
}

// MustMake is like Make but panics on unsupported input.
func MustMake(input any) *Str {
	s, err := Make(input)
	if err != nil {
		panic(err)
	}
	return s
}

// Of wraps s. Invalid UTF-8 sequences are replaced by U+FFFD.
func Of(s string) *Str {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	return &Str{value: s}
}

// Empty returns the empty value.
func Empty() *Str {
	return &Str{}
}

// FromEmpty is an alias of Empty.
func FromEmpty() *Str {
	return Empty()
}

// FromArray joins parts with separator. parts may be a slice of anything
// Make accepts.
func FromArray(parts any, separator string) (*Str, error) {
	texts, ok := toTexts(parts)
	if !ok {
		return nil, errors.TypeError(errors.ModuleStr, "from_array", parts)
	}
	return Of(strings.Join(texts, separator)), nil
}

// Random returns a value of length random alphanumeric codepoints.
func Random(length int) (*Str, error) {
	s, err := stringx.RandomAlphanumeric(length)
	if err != nil {
		return nil, err
	}
	return Of(s), nil
}

// RandomFix returns a value of length random printable ASCII codepoints.
func RandomFix(length int) (*Str, error) {
	s, err := stringx.RandomString(length, stringx.Printable)
	if err != nil {
		return nil, err
	}
	return Of(s), nil
}

// String implements fmt.Stringer.
func (s *Str) String() string {
	return s.value
}

// codepoints returns the memoized codepoint list. Two goroutines may both
// compute it; both results are equal and either one wins.
func (s *Str) codepoints() []string {
	if cached := s.chars.Load(); cached != nil {
		return *cached
	}
	chars := stringx.Chars(s.value)
	s.chars.CompareAndSwap(nil, &chars)
	return chars
}

// Chars returns the codepoints as single-codepoint strings.
func (s *Str) Chars() []string {
	return slices.Clone(s.codepoints())
}

// Symbols iterates the codepoints left to right. The sequence can be ranged
// over more than once.
func (s *Str) Symbols() iter.Seq[string] {
	return slices.Values(s.codepoints())
}

// Length returns the number of codepoints.
func (s *Str) Length() int {
	return len(s.codepoints())
}

// Count is an alias of Length.
func (s *Str) Count() int {
	return s.Length()
}

// IsEmpty reports whether the value has no codepoints. Whitespace counts.
func (s *Str) IsEmpty() bool {
	return s.value == ""
}

// IsNotEmpty is the inverse of IsEmpty.
func (s *Str) IsNotEmpty() bool {
	return !s.IsEmpty()
}

// FirstSymbol returns the first codepoint, or an EMPTY_OPERATION error.
func (s *Str) FirstSymbol() (*Str, error) {
	if s.IsEmpty() {
		return nil, errors.EmptyOperation(errors.ModuleStr, "first_symbol")
	}
	return Of(s.codepoints()[0]), nil
}

// LastSymbol returns the last codepoint, or an EMPTY_OPERATION error.
func (s *Str) LastSymbol() (*Str, error) {
	if s.IsEmpty() {
		return nil, errors.EmptyOperation(errors.ModuleStr, "last_symbol")
	}
	chars := s.codepoints()
	return Of(chars[len(chars)-1]), nil
}

// SymbolAt returns the codepoint at index, or the empty value when index is
// out of range. Negative indices count from the end.
func (s *Str) SymbolAt(index int) *Str {
	return s.Substring(index, 1)
}

// Bytes returns a copy of the UTF-8 encoding.
func (s *Str) Bytes() []uint8 {
	return []uint8(s.value)
}

// HashCode returns the 32-bit rolling hash h = 31*h + codepoint.
func (s *Str) HashCode() int32 {
	return stringx.HashCode(s.value)
}

// Equals reports byte equality with other.
func (s *Str) Equals(other any) bool {
	text, ok := toText(other)
	return ok && text == s.value
}

// EqualsIgnoreCase reports equality after lower-casing both sides.
func (s *Str) EqualsIgnoreCase(other any) bool {
	text, ok := toText(other)
	return ok && stringx.ToLower(text) == stringx.ToLower(s.value)
}

// Graphemes splits the value into user-perceived characters.
func (s *Str) Graphemes() *Collection {
	var items []*Str
	g := uniseg.NewGraphemes(s.value)
	for g.Next() {
		items = append(items, Of(g.Str()))
	}
	return NewCollection(items...)
}

// GraphemeCount returns the number of grapheme clusters.
func (s *Str) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(s.value)
}

// Width returns the monospace display width.
func (s *Str) Width() int {
	return uniseg.StringWidth(s.value)
}
