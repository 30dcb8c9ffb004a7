// File: transform.go
// Title: Transforms
// Description: Operations that derive a new Str from the receiver:
//              extraction, padding, trimming, concatenation, deletion,
//              replacement and sorting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package str

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/msto63/strkit/foundation/core/errors"
	"github.com/msto63/strkit/foundation/utils/stringx"
)

var (
	repeatedSpaces = regexp2.MustCompile(`\s{2,}`, regexp2.None)
	nonDigits      = regexp2.MustCompile(`[^0-9]+`, regexp2.None)
)

// SortDirection selects ascending or descending order.
type SortDirection int

const (
	Asc SortDirection = iota
	Desc
)

// Substring extracts length codepoints from start. A negative start counts
// from the end, a negative length stops that many codepoints before the
// end, and out-of-range values are clamped.
func (s *Str) Substring(start, length int) *Str {
	return Of(stringx.Substring(s.value, start, length))
}

// Cut is Substring with the arguments swapped. Pass ToEnd as length to cut
// to the end.
func (s *Str) Cut(length, start int) *Str {
	return s.Substring(start, length)
}

// Between strips len(prefix) codepoints from the front and len(suffix)
// codepoints from the back. The affixes themselves are not compared.
func (s *Str) Between(prefix, suffix string) *Str {
	suffixLen := stringx.Length(suffix)
	if suffixLen == 0 {
		return s.Substring(stringx.Length(prefix), ToEnd)
	}
	return s.Substring(stringx.Length(prefix), -suffixLen)
}

// DeleteFirstSymbol removes the first codepoint.
func (s *Str) DeleteFirstSymbol() *Str {
	return s.Substring(1, ToEnd)
}

// DeleteLastSymbol removes the last codepoint.
func (s *Str) DeleteLastSymbol() *Str {
	return s.Substring(0, -1)
}

// Resize pads the value with lack cycled codepoint by codepoint (at the
// start when lackInStart is set, else at the end) until it is exactly length
// codepoints long, or truncates it to its first length codepoints. An empty
// lack leaves a short value unchanged.
func (s *Str) Resize(length int, lack string, lackInStart bool) *Str {
	current := s.Length()
	switch {
	case current == length:
		return s
	case current > length:
		return s.Substring(0, max(length, 0))
	}

	if lackInStart {
		return Of(stringx.PadLeft(s.value, length, lack))
	}
	return Of(stringx.PadRight(s.value, length, lack))
}

// Reverse reverses the codepoint order.
func (s *Str) Reverse() *Str {
	return Of(stringx.Reverse(s.value))
}

// Shuffle returns a uniform random permutation of the codepoints.
func (s *Str) Shuffle() (*Str, error) {
	shuffled, err := stringx.Shuffle(s.value)
	if err != nil {
		return nil, err
	}
	return Of(shuffled), nil
}

// Trim strips surrounding whitespace.
func (s *Str) Trim() *Str {
	return Of(stringx.Trim(s.value))
}

// LeftTrim strips leading codepoints found in chars, or whitespace when
// chars is empty.
func (s *Str) LeftTrim(chars string) *Str {
	return Of(stringx.LeftTrim(s.value, chars))
}

// RightTrim strips trailing codepoints found in chars, or whitespace when
// chars is empty.
func (s *Str) RightTrim(chars string) *Str {
	return Of(stringx.RightTrim(s.value, chars))
}

// Append returns value + delimiter + x. x is anything Make accepts, or a
// slice of such, which is joined with delimiter first.
func (s *Str) Append(x any, delimiter string) (*Str, error) {
	text, ok := toTextOrJoined(x, delimiter)
	if !ok {
		return nil, errors.TypeError(errors.ModuleStr, "append", x)
	}
	return Of(s.value + delimiter + text), nil
}

// Prepend returns x + delimiter + value, with x resolved like in Append.
func (s *Str) Prepend(x any, delimiter string) (*Str, error) {
	text, ok := toTextOrJoined(x, delimiter)
	if !ok {
		return nil, errors.TypeError(errors.ModuleStr, "prepend", x)
	}
	return Of(text + delimiter + s.value), nil
}

// AppendLine appends line after a newline.
func (s *Str) AppendLine(line string) *Str {
	return Of(s.value + "\n" + line)
}

// AppendEmptyLine appends a newline.
func (s *Str) AppendEmptyLine() *Str {
	return Of(s.value + "\n")
}

// Delete removes every literal occurrence of every sub, optionally trimming
// the result.
func (s *Str) Delete(subs []string, trim bool) *Str {
	value := s.value
	for _, sub := range subs {
		if sub != "" {
			value = strings.ReplaceAll(value, sub, "")
		}
	}
	if trim {
		value = stringx.Trim(value)
	}
	return Of(value)
}

// DeleteWhenEnds removes needle from the end if the value ends with it.
func (s *Str) DeleteWhenEnds(needle string) *Str {
	if needle == "" || !s.EndsWith(needle) {
		return s
	}
	return Of(strings.TrimSuffix(s.value, needle))
}

// DeleteWhenStarts removes needle from the start if the value starts with it.
func (s *Str) DeleteWhenStarts(needle string) *Str {
	if needle == "" || !s.StartsWith(needle) {
		return s
	}
	return Of(strings.TrimPrefix(s.value, needle))
}

// Replace substitutes all keys of replaces in one pass. Replacement output
// is never matched again, and at any position the longest key wins.
func (s *Str) Replace(replaces map[string]string) *Str {
	if len(replaces) == 0 {
		return s
	}

	keys := make([]string, 0, len(replaces))
	for k := range replaces {
		if k != "" {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, replaces[k])
	}
	return Of(strings.NewReplacer(pairs...).Replace(s.value))
}

// Multiply repeats the value count times, joined by delimiter. A count of
// zero or less yields the empty value.
func (s *Str) Multiply(count int, delimiter string) *Str {
	if count <= 0 {
		return Empty()
	}
	var builder strings.Builder
	builder.Grow(count*len(s.value) + (count-1)*len(delimiter))
	for i := 1; i <= count; i++ {
		builder.WriteString(s.value)
		if i != count {
			builder.WriteString(delimiter)
		}
	}
	return Of(builder.String())
}

// DeleteRepeatSymbolInEnding drops the whole trailing run of symbol if the
// value ends with it. "Hello//Dev////" with "/" becomes "Hello//Dev".
func (s *Str) DeleteRepeatSymbolInEnding(symbol string) *Str {
	if symbol == "" || !s.EndsWith(symbol) {
		return s
	}

	runs := s.runs()
	var builder strings.Builder
	for _, run := range runs[:len(runs)-1] {
		builder.WriteString(run)
	}
	return Of(builder.String())
}

// DeleteUnnecessarySpaces collapses whitespace runs into a single space.
func (s *Str) DeleteUnnecessarySpaces() *Str {
	replaced, err := repeatedSpaces.Replace(s.value, " ", -1, -1)
	if err != nil {
		return s
	}
	return Of(replaced)
}

// DeleteAllLetters keeps only the ASCII digits.
func (s *Str) DeleteAllLetters() *Str {
	replaced, err := nonDigits.Replace(s.value, "", -1, -1)
	if err != nil {
		return s
	}
	return Of(replaced)
}

// DeleteLastLine trims the value and drops its last line.
func (s *Str) DeleteLastLine() *Str {
	lines := strings.Split(stringx.Trim(s.value), "\n")
	return Of(strings.Join(lines[:len(lines)-1], "\n"))
}

// SortByChars sorts the codepoints by value.
func (s *Str) SortByChars(direction SortDirection) *Str {
	runes := []rune(s.value)
	slices.Sort(runes)
	if direction == Desc {
		slices.Reverse(runes)
	}
	return Of(string(runes))
}

// SortByWordsLengths sorts the space separated words. The words are compared
// as strings, not by length. With excludeDots every "." is removed first.
func (s *Str) SortByWordsLengths(direction SortDirection, excludeDots bool) *Str {
	value := s.value
	if excludeDots {
		value = strings.ReplaceAll(value, ".", "")
	}

	words := strings.Split(value, " ")
	slices.Sort(words)
	if direction == Desc {
		slices.Reverse(words)
	}
	return Of(strings.Join(words, " "))
}
