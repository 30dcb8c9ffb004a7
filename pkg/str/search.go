// File: search.go
// Title: Searching and Comparison
// Description: Substring, prefix and regex containment tests, match
//              positions and structural comparisons (anagram, palindrome,
//              symbol runs at the start).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package str

import (
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"

	"github.com/msto63/strkit/foundation/utils/stringx"
)

var digitPattern = regexp2.MustCompile(`([0-9]+.[0-9]|[0-9])`, regexp2.None)

// Contains reports whether needle occurs literally in the value.
func (s *Str) Contains(needle string) bool {
	return strings.Contains(s.value, needle)
}

// ContainsRegex reports whether the undelimited pattern needle matches,
// ignoring case. A "/" in needle needs no escaping.
func (s *Str) ContainsRegex(needle string) (bool, error) {
	re, err := compile(needle, needle, regexp2.IgnoreCase)
	if err != nil {
		return false, err
	}
	found, err := re.MatchString(s.value)
	if err != nil {
		return false, err
	}
	return found, nil
}

// ContainsAny reports whether at least one needle occurs literally.
func (s *Str) ContainsAny(needles ...string) bool {
	for _, needle := range needles {
		if s.Contains(needle) {
			return true
		}
	}
	return false
}

// ContainsAnyRegex reports whether at least one needle matches as a
// case-insensitive pattern. The first invalid pattern stops the search.
func (s *Str) ContainsAnyRegex(needles ...string) (bool, error) {
	for _, needle := range needles {
		found, err := s.ContainsRegex(needle)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}
	return false, nil
}

// ContainsAll reports whether every needle occurs literally. Called without
// needles it returns false.
func (s *Str) ContainsAll(needles ...string) bool {
	if len(needles) == 0 {
		return false
	}
	for _, needle := range needles {
		if !s.Contains(needle) {
			return false
		}
	}
	return true
}

// ContainsDot reports whether the value contains ".".
func (s *Str) ContainsDot() bool {
	return s.Contains(".")
}

// ContainsDigit reports whether the value contains an ASCII digit.
func (s *Str) ContainsDigit() bool {
	found, err := digitPattern.MatchString(s.value)
	return err == nil && found
}

// StartsWith reports whether the value begins with needle.
func (s *Str) StartsWith(needle string) bool {
	return stringx.StartsWith(s.value, needle)
}

// EndsWith reports whether the value ends with needle.
func (s *Str) EndsWith(needle string) bool {
	return stringx.EndsWith(s.value, needle)
}

// StartsWithAnyOf reports whether the value begins with any of needles.
func (s *Str) StartsWithAnyOf(needles ...string) bool {
	for _, needle := range needles {
		if s.StartsWith(needle) {
			return true
		}
	}
	return false
}

// EndsWithAnyOf reports whether the value ends with any of needles.
func (s *Str) EndsWithAnyOf(needles ...string) bool {
	for _, needle := range needles {
		if s.EndsWith(needle) {
			return true
		}
	}
	return false
}

// HasPrefixAndSuffix reports whether the value starts with prefix and ends
// with suffix.
func (s *Str) HasPrefixAndSuffix(prefix, suffix string) bool {
	return s.StartsWith(prefix) && s.EndsWith(suffix)
}

// Positions returns the codepoint offsets of all non-overlapping occurrences
// of needle.
func (s *Str) Positions(needle string) []int {
	return stringx.Positions(s.value, needle, false)
}

// PositionsIgnoreCase is Positions with case-insensitive comparison. Offsets
// refer to the value itself, not to its lower-cased form.
func (s *Str) PositionsIgnoreCase(needle string) []int {
	return stringx.Positions(s.value, needle, true)
}

// HasLine reports whether a line equals needle. With trim each line is
// trimmed before the comparison.
func (s *Str) HasLine(needle string, trim bool) bool {
	for _, line := range strings.Split(s.value, "\n") {
		if trim {
			line = stringx.Trim(line)
		}
		if line == needle {
			return true
		}
	}
	return false
}

// IsAnagram reports whether other is a permutation of the value's
// codepoints. Two empty values are not anagrams.
func (s *Str) IsAnagram(other string) bool {
	mine := s.codepoints()
	theirs := stringx.Chars(other)
	if len(mine) == 0 || len(mine) != len(theirs) {
		return false
	}

	counts := make(map[string]int, len(mine))
	for i := range mine {
		counts[mine[i]]++
		counts[theirs[i]]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

// IsPalindrome reports whether the codepoints read the same in both
// directions.
func (s *Str) IsPalindrome() bool {
	chars := s.codepoints()
	for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
		if chars[i] != chars[j] {
			return false
		}
	}
	return true
}

// CountOfSymbolRepeatsInStart counts how many consecutive codepoints equal
// to symbol follow index start, stopping at end (exclusive, clamped to the
// length; pass ToEnd for the whole value).
func (s *Str) CountOfSymbolRepeatsInStart(symbol string, start, end int) int {
	chars := s.codepoints()
	end = min(end, len(chars))

	repeats := 0
	for i := max(start, 0); i < end; i++ {
		if chars[i] != symbol {
			break
		}
		repeats++
	}
	return repeats
}

// NumbersCountInEnding counts the trailing decimal digits.
func (s *Str) NumbersCountInEnding() int {
	chars := s.codepoints()
	count := 0
	for i := len(chars) - 1; i >= 0; i-- {
		r := []rune(chars[i])[0]
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			break
		}
		count++
	}
	return count
}
