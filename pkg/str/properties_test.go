// File: properties_test.go
// Title: Property and Scenario Tests for Str
// Description: Checks algebraic properties that must hold for any input
//              (idempotence, round trips, length and frequency invariants)
//              and the end-to-end chains the library is used for.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package str

import "testing"

var propertyInputs = []string{
	"",
	"a",
	"Hello Dev",
	"  padded  ",
	"HTTPServerError",
	"Artem-Ukrainsky",
	"snake_case_value",
	"Привет, мир!",
	"é combining",
	"日本語テキスト",
	"emoji \U0001F600 inside",
	"line1\nline2\n",
}

func TestIdempotentTransforms(t *testing.T) {
	transforms := map[string]func(*Str) *Str{
		"ToUpper":       (*Str).ToUpper,
		"ToLower":       (*Str).ToLower,
		"Trim":          (*Str).Trim,
		"ToSnakeCase":   (*Str).ToSnakeCase,
		"ToKebabCase":   (*Str).ToKebabCase,
		"ToStudlyCaps":  (*Str).ToStudlyCaps,
		"ToCamelCase":   (*Str).ToCamelCase,
		"UpWords":       (*Str).UpWords,
		"DeleteSpaces":  (*Str).DeleteUnnecessarySpaces,
		"DeleteLetters": (*Str).DeleteAllLetters,
	}

	for name, fn := range transforms {
		t.Run(name, func(t *testing.T) {
			for _, input := range propertyInputs {
				once := fn(Of(input))
				twice := fn(once)
				if !once.Equals(twice) {
					t.Errorf("%s(%s(%q)) = %q; want %q", name, name, input, twice, once)
				}
			}
		})
	}
}

func TestReverseRoundTrip(t *testing.T) {
	for _, input := range propertyInputs {
		s := Of(input)
		if got := s.Reverse().Reverse(); !got.Equals(s) {
			t.Errorf("Reverse(Reverse(%q)) = %q", input, got)
		}
		if s.Reverse().Length() != s.Length() {
			t.Errorf("Reverse(%q) changed the length", input)
		}
	}
}

func TestAppendLengthInvariant(t *testing.T) {
	delimiters := []string{"", " ", "ж", "::"}

	for _, input := range propertyInputs {
		for _, other := range propertyInputs[:5] {
			for _, delimiter := range delimiters {
				s := Of(input)
				got, err := s.Append(other, delimiter)
				if err != nil {
					t.Fatalf("Append(%q) error = %v", other, err)
				}
				want := s.Length() + Of(delimiter).Length() + Of(other).Length()
				if got.Length() != want {
					t.Errorf("Length(Append(%q, %q, %q)) = %d; want %d", input, other, delimiter, got.Length(), want)
				}
			}
		}
	}
}

func TestFrequencySumInvariant(t *testing.T) {
	for _, input := range propertyInputs {
		s := Of(input)
		stat := s.LettersStat()

		sum := 0
		for _, count := range stat.Dict() {
			sum += count
		}
		if sum != s.Length() || stat.Total() != s.Length() {
			t.Errorf("frequencies of %q sum to %d (Total %d); want %d", input, sum, stat.Total(), s.Length())
		}
		if stat.Count() != len(s.UsingLetters()) {
			t.Errorf("LettersStat(%q).Count() = %d; want %d distinct", input, stat.Count(), len(s.UsingLetters()))
		}
	}
}

func TestRunsRejoinInvariant(t *testing.T) {
	for _, input := range propertyInputs {
		s := Of(input)
		if got := s.SequencesByRepeatSymbols().Implode(""); !got.Equals(s) {
			t.Errorf("joined runs of %q = %q", input, got)
		}
	}
}

func TestSortedCharsArePermutation(t *testing.T) {
	for _, input := range propertyInputs[1:] {
		s := Of(input)
		if !s.IsAnagram(s.SortByChars(Asc).String()) {
			t.Errorf("SortByChars(%q) is not a permutation", input)
		}
		if got := s.SortByChars(Asc).Reverse(); !got.Equals(s.SortByChars(Desc)) {
			t.Errorf("Reverse(SortByChars(Asc)) of %q = %q; want Desc order", input, got)
		}
	}
}

// Scenario chains exercised end to end.

func TestScenarioTrailingSeparators(t *testing.T) {
	if got := Of("Hello//Dev////").DeleteRepeatSymbolInEnding("/").String(); got != "Hello//Dev" {
		t.Errorf("DeleteRepeatSymbolInEnding(/) = %q; want %q", got, "Hello//Dev")
	}
}

func TestScenarioConfigKeyParent(t *testing.T) {
	if got := Of("master.branch.remote.url.one").Slice(".", -1, 0).String(); got != "master.branch.remote.url" {
		t.Errorf("Slice(., -1, 0) = %q; want %q", got, "master.branch.remote.url")
	}
}

func TestScenarioSentenceFromWords(t *testing.T) {
	words := CollectionOf("hello", "dev", "Artem")
	if got := words.ToSentence().String(); got != "Hello dev Artem." {
		t.Errorf("ToSentence() = %q; want %q", got, "Hello dev Artem.")
	}
}
