// File: structure.go
// Title: Structural Splitting
// Description: Splits a Str into lines, words, sentences, delimiter parts
//              and runs of repeated codepoints, and extracts URIs.
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

	"github.com/dlclark/regexp2"
)

var (
	sentencePattern  = regexp2.MustCompile(`[^.]*`, regexp2.None)
	uriPattern       = regexp2.MustCompile(`(http|ftp|https)://([\w_-]+(?:(?:\.[\w_-]+)+))([\w.,@?^=%&:/~+#-]*[\w@?^=%&/~+#-])`, regexp2.IgnoreCase)
	firstWordPattern = regexp2.MustCompile(`^([\w\-]+)`, regexp2.IgnoreCase)
)

// sliceBounds resolves an offset/length pair the way array slicing in the
// str API works: negative offsets count from the end, negative lengths stop
// before the end, everything is clamped to [0, n].
func sliceBounds(n, offset, length int) (int, int) {
	start := offset
	if start < 0 {
		start = max(n+start, 0)
	}
	if start > n {
		return n, n
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
	if end < start {
		end = start
	}
	return start, end
}

// Lines splits on "\n". "\r\n" is not normalized.
func (s *Str) Lines() *Collection {
	return s.Explode("\n")
}

// LinesCount returns the number of lines; the empty value has one.
func (s *Str) LinesCount() int {
	return strings.Count(s.value, "\n") + 1
}

// LastLine returns the text after the last "\n".
func (s *Str) LastLine() *Str {
	idx := strings.LastIndex(s.value, "\n")
	return Of(s.value[idx+1:])
}

// Words splits on single ASCII spaces.
func (s *Str) Words() *Collection {
	return s.Explode(" ")
}

// Sentences returns the non-empty dot separated parts.
func (s *Str) Sentences() *Collection {
	return NewCollection(allMatches(sentencePattern, s.value)...).OnlyNotEmpty()
}

// Explode splits on separator. An empty separator splits into codepoints.
func (s *Str) Explode(separator string) *Collection {
	if separator == "" {
		return CollectionOf(s.codepoints()...)
	}
	return CollectionOf(strings.Split(s.value, separator)...)
}

// Slice splits on separator, keeps length parts from offset and joins them
// again. Negative values count from the end: Slice(".", -1, 0) drops the
// last part.
func (s *Str) Slice(separator string, length, offset int) *Str {
	parts := strings.Split(s.value, separator)
	start, end := sliceBounds(len(parts), offset, length)
	return Of(strings.Join(parts[start:end], separator))
}

// runs partitions the value into maximal runs of equal codepoints.
func (s *Str) runs() []string {
	var runs []string
	var current strings.Builder
	prev := ""
	for _, char := range s.codepoints() {
		if char != prev && current.Len() > 0 {
			runs = append(runs, current.String())
			current.Reset()
		}
		current.WriteString(char)
		prev = char
	}
	if current.Len() > 0 {
		runs = append(runs, current.String())
	}
	return runs
}

// SequencesByRepeatSymbols partitions the value into maximal runs of equal
// adjacent codepoints. Joining the runs gives the value back.
func (s *Str) SequencesByRepeatSymbols() *Collection {
	return CollectionOf(s.runs()...)
}

// UsingLetters returns the distinct codepoints in first-occurrence order.
func (s *Str) UsingLetters() []string {
	seen := make(map[string]bool)
	var letters []string
	for _, char := range s.codepoints() {
		if !seen[char] {
			seen[char] = true
			letters = append(letters, char)
		}
	}
	return letters
}

// LettersStat counts each codepoint.
func (s *Str) LettersStat() *LettersStat {
	return newLettersStat(s.codepoints())
}

// FindUris extracts http, https and ftp URIs.
func (s *Str) FindUris() *Collection {
	return NewCollection(allMatches(uriPattern, s.value)...)
}

// FirstWord returns the leading run of word characters and hyphens.
func (s *Str) FirstWord() *Str {
	m, err := firstWordPattern.FindStringMatch(s.value)
	if err != nil || m == nil {
		return Empty()
	}
	return Of(m.String())
}
