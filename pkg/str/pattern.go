// File: pattern.go
// Title: Pattern Matching
// Description: Delimited patterns ("/expr/flags") compiled with regexp2, and
//              the Match/GlobalMatch family built on them. A pattern the
//              engine rejects is reported as INVALID_PATTERN, never as
//              "no match".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package str

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/msto63/strkit/foundation/core/errors"
	"github.com/msto63/strkit/pkg/core/cache"
)

// MatchOptions adjust Match and GlobalMatch.
type MatchOptions struct {
	// Offset is the codepoint index the search starts at. A negative offset
	// counts from the end.
	Offset int

	// First selects the whole match instead of the last participating
	// capture group.
	First bool
}

type patternKey struct {
	expr    string
	options regexp2.RegexOptions
}

var patterns = cache.New[patternKey, *regexp2.Regexp](cache.Config{MaxItems: 512})

var closingDelimiters = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// CompilePattern compiles a delimited pattern such as "/^\d+$/m" or
// "#[a-z]+#i". Supported flags are i, m, s, x and u (u is implied).
func CompilePattern(pattern string) (*regexp2.Regexp, error) {
	expr, options, err := parseDelimited(pattern)
	if err != nil {
		return nil, errors.InvalidPattern(errors.ModuleStr, pattern, err)
	}
	return compile(pattern, expr, options)
}

// compile returns the cached program for expr, compiling it on first use.
// Rejected patterns are not cached.
func compile(pattern, expr string, options regexp2.RegexOptions) (*regexp2.Regexp, error) {
	key := patternKey{expr: expr, options: options}
	return patterns.GetOrSet(key, func() (*regexp2.Regexp, error) {
		re, err := regexp2.Compile(expr, options)
		if err != nil {
			return nil, errors.InvalidPattern(errors.ModuleStr, pattern, err)
		}
		return re, nil
	})
}

func parseDelimited(pattern string) (string, regexp2.RegexOptions, error) {
	pattern = strings.TrimLeftFunc(pattern, unicode.IsSpace)
	if pattern == "" {
		return "", 0, fmt.Errorf("empty pattern")
	}

	open, size := utf8.DecodeRuneInString(pattern)
	if open == '\\' || unicode.IsLetter(open) || unicode.IsDigit(open) {
		return "", 0, fmt.Errorf("delimiter must not be alphanumeric or backslash")
	}

	closing, ok := closingDelimiters[open]
	if !ok {
		closing = open
	}

	body := pattern[size:]
	end := strings.LastIndex(body, string(closing))
	if end < 0 {
		return "", 0, fmt.Errorf("no ending delimiter %q found", closing)
	}

	options := regexp2.None
	for _, flag := range body[end+utf8.RuneLen(closing):] {
		switch flag {
		case 'i':
			options |= regexp2.IgnoreCase
		case 'm':
			options |= regexp2.Multiline
		case 's':
			options |= regexp2.Singleline
		case 'x':
			options |= regexp2.IgnorePatternWhitespace
		case 'u':
		case '\n', '\r', ' ':
		default:
			return "", 0, fmt.Errorf("unknown modifier %q", flag)
		}
	}

	return body[:end], options, nil
}

// startIndex turns a codepoint offset into the byte index regexp2 expects,
// or -1 when the offset lies beyond the value.
func (s *Str) startIndex(offset int) int {
	chars := s.codepoints()
	n := len(chars)
	if offset < 0 {
		offset = max(n+offset, 0)
	}
	if offset > n {
		return -1
	}

	start := 0
	for _, char := range chars[:offset] {
		start += len(char)
	}
	return start
}

func (s *Str) findMatch(re *regexp2.Regexp, pattern string, offset int) (*regexp2.Match, error) {
	start := s.startIndex(offset)
	if start < 0 {
		return nil, nil
	}
	m, err := re.FindStringMatchStartingAt(s.value, start)
	if err != nil {
		return nil, errors.InvalidPattern(errors.ModuleStr, pattern, err)
	}
	return m, nil
}

// lastGroup returns the highest-numbered group that took part in the match.
func lastGroup(m *regexp2.Match) string {
	groups := m.Groups()
	for i := len(groups) - 1; i > 0; i-- {
		if len(groups[i].Captures) > 0 {
			return groups[i].String()
		}
	}
	return m.String()
}

// Match returns the last participating capture group of the first match of
// a delimited pattern, or the whole match when the pattern has no groups.
// No match yields the empty value.
func (s *Str) Match(pattern string) (*Str, error) {
	return s.MatchWith(pattern, MatchOptions{})
}

// MatchWith is Match with an offset and group selection.
func (s *Str) MatchWith(pattern string, opts MatchOptions) (*Str, error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return s.matchCompiled(re, pattern, opts)
}

func (s *Str) matchCompiled(re *regexp2.Regexp, pattern string, opts MatchOptions) (*Str, error) {
	m, err := s.findMatch(re, pattern, opts.Offset)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return Empty(), nil
	}
	if opts.First {
		return Of(m.String()), nil
	}
	return Of(lastGroup(m)), nil
}

// GlobalMatch returns every match of a delimited pattern. Each collection
// holds the whole match followed by its capture groups; groups that did not
// take part are empty.
func (s *Str) GlobalMatch(pattern string) ([]*Collection, error) {
	return s.GlobalMatchWith(pattern, MatchOptions{})
}

// GlobalMatchWith is GlobalMatch with an offset. With First set each
// collection holds only the whole match.
func (s *Str) GlobalMatchWith(pattern string, opts MatchOptions) ([]*Collection, error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}

	var matches []*Collection
	m, err := s.findMatch(re, pattern, opts.Offset)
	for m != nil && err == nil {
		if opts.First {
			matches = append(matches, CollectionOf(m.String()))
		} else {
			groups := m.Groups()
			items := make([]*Str, 0, len(groups))
			for _, g := range groups {
				items = append(items, Of(g.String()))
			}
			matches = append(matches, NewCollection(items...))
		}
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, errors.InvalidPattern(errors.ModuleStr, pattern, err)
	}
	return matches, nil
}

// allMatches returns the whole text of every match of a pre-compiled pattern.
func allMatches(re *regexp2.Regexp, text string) []*Str {
	var items []*Str
	m, err := re.FindStringMatch(text)
	for m != nil && err == nil {
		items = append(items, Of(m.String()))
		m, err = re.FindNextMatch(m)
	}
	return items
}
