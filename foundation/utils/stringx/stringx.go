// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the codepoint-level primitives every strkit
//              operation shares: length, splitting, substring, trimming,
//              searching, padding and hashing. All indices and lengths are
//              counted in Unicode codepoints, never in bytes.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.2.0: Codepoint substring/search primitives, cycled padding,
//                      HashCode, removed interning and validation helpers

package stringx

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0).
// Whitespace-only strings are not empty.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Length returns the number of codepoints in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Chars splits s into single-codepoint strings, left to right.
func Chars(s string) []string {
	if s == "" {
		return nil
	}
	chars := make([]string, 0, utf8.RuneCountInString(s))
	for i, r := range s {
		chars = append(chars, s[i:i+utf8.RuneLen(r)])
	}
	return chars
}

// Symbols returns a restartable sequence over the codepoints of s.
func Symbols(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, r := range s {
			if !yield(s[i : i+utf8.RuneLen(r)]) {
				return
			}
		}
	}
}

// Substring extracts length codepoints starting at start.
//
// A negative start counts from the end of s. A negative length stops that
// many codepoints before the end. Indices outside of s are clamped, so the
// result is never an error, only possibly empty.
func Substring(s string, start, length int) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	n := len(runes)

	if start < 0 {
		start = max(n+start, 0)
	}
	if start >= n {
		return ""
	}

	var end int
	switch {
	case length < 0:
		end = n + length
	case length > n-start:
		end = n
	default:
		end = start + length
	}
	if end <= start {
		return ""
	}

	return string(runes[start:end])
}

// Truncate truncates a string to maxLen codepoints, adding an ellipsis if truncated.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}

	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// Reverse reverses a string codepoint by codepoint.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Trim strips leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// LeftTrim strips leading codepoints contained in chars.
// An empty chars strips whitespace.
func LeftTrim(s, chars string) string {
	if chars == "" {
		return strings.TrimLeftFunc(s, unicode.IsSpace)
	}
	return strings.TrimLeft(s, chars)
}

// RightTrim strips trailing codepoints contained in chars.
// An empty chars strips whitespace.
func RightTrim(s, chars string) string {
	if chars == "" {
		return strings.TrimRightFunc(s, unicode.IsSpace)
	}
	return strings.TrimRight(s, chars)
}

// IndexOf returns the codepoint index of the first occurrence of needle
// at or after the codepoint offset from, or -1.
func IndexOf(s, needle string, from int) int {
	if from < 0 {
		from = 0
	}

	offset := 0
	for i := range s {
		if offset == from {
			idx := strings.Index(s[i:], needle)
			if idx < 0 {
				return -1
			}
			return from + utf8.RuneCountInString(s[i:i+idx])
		}
		offset++
	}

	if offset == from && needle == "" {
		return from
	}
	return -1
}

// Positions returns the codepoint offsets of all non-overlapping
// occurrences of needle, scanning left to right. The scan resumes at the
// end of each match. With ignoreCase both sides are lower-cased codepoint
// by codepoint and the offsets still refer to s, even where lower-casing
// changes the codepoint count ("İ" becomes two codepoints).
func Positions(s, needle string, ignoreCase bool) []int {
	if needle == "" {
		return nil
	}

	var origin []int
	if ignoreCase {
		s, origin = foldWithOrigin(s)
		needle, _ = foldWithOrigin(needle)
	}

	var positions []int
	needleLen := utf8.RuneCountInString(needle)
	for from := 0; ; from += needleLen {
		at := IndexOf(s, needle, from)
		if at < 0 {
			return positions
		}
		from = at
		if origin != nil {
			at = origin[at]
		}
		positions = append(positions, at)
	}
}

// foldWithOrigin lower-cases s one codepoint at a time. origin maps every
// codepoint of the result to the index of the codepoint of s it came from.
func foldWithOrigin(s string) (string, []int) {
	var builder strings.Builder
	origin := make([]int, 0, len(s))
	index := 0
	for char := range Symbols(s) {
		lower := ToLower(char)
		builder.WriteString(lower)
		for range utf8.RuneCountInString(lower) {
			origin = append(origin, index)
		}
		index++
	}
	return builder.String(), origin
}

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// HashCode computes h = 31*h + codepoint over s with 32-bit two's-complement
// wraparound after every step.
func HashCode(s string) int32 {
	var h int32
	for _, r := range s {
		h = 31*h + int32(r)
	}
	return h
}

// PadLeft pads s on the left to width codepoints, cycling through pad.
// If s is already as wide as width, or pad is empty, s is returned as is.
func PadLeft(s string, width int, pad string) string {
	fill := padding(s, width, pad)
	if fill == "" {
		return s
	}
	return fill + s
}

// PadRight pads s on the right to width codepoints, cycling through pad.
func PadRight(s string, width int, pad string) string {
	fill := padding(s, width, pad)
	if fill == "" {
		return s
	}
	return s + fill
}

func padding(s string, width int, pad string) string {
	if pad == "" {
		return ""
	}

	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return ""
	}

	// Fast path for single-byte pads
	if len(pad) == 1 {
		return strings.Repeat(pad, missing)
	}

	padRunes := []rune(pad)
	var builder strings.Builder
	builder.Grow(missing * utf8.UTFMax)
	for i := 0; i < missing; i++ {
		builder.WriteRune(padRunes[i%len(padRunes)])
	}
	return builder.String()
}

// MaxLength returns the codepoint length of the longest string, or 0.
func MaxLength(ss []string) int {
	longest := 0
	for _, s := range ss {
		if l := utf8.RuneCountInString(s); l > longest {
			longest = l
		}
	}
	return longest
}

// AddSpaces right-pads every string with symbol so that all of them are one
// codepoint longer than the longest input. Useful for aligning columns.
func AddSpaces(ss []string, symbol string) []string {
	if symbol == "" {
		symbol = " "
	}

	width := MaxLength(ss) + 1
	fixed := make([]string, 0, len(ss))
	for _, s := range ss {
		fixed = append(fixed, s+strings.Repeat(symbol, width-utf8.RuneCountInString(s)))
	}
	return fixed
}
