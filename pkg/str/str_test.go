// File: str_test.go
// Title: Unit Tests for Str Construction and Basics
// Description: Tests for input resolution, UTF-8 normalization, codepoint
//              access, equality, hashing and the memoized codepoint cache.
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
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/msto63/strkit/foundation/core/errors"
)

type stringerValue struct{ text string }

func (s stringerValue) String() string { return s.text }

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", "hello", "hello"},
		{"str", Of("dev"), "dev"},
		{"bytes", []byte("ёж"), "ёж"},
		{"int", 42, "42"},
		{"negative int64", int64(-7), "-7"},
		{"uint8", uint8(200), "200"},
		{"rune renders as number", 'A', "65"},
		{"float", 1.5, "1.5"},
		{"float32", float32(0.25), "0.25"},
		{"stringer", stringerValue{"custom"}, "custom"},
		{"duration stringer", 2 * time.Second, "2s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Make(tt.input)
			if err != nil {
				t.Fatalf("Make(%v) error = %v", tt.input, err)
			}
			if s.String() != tt.expected {
				t.Errorf("Make(%v) = %q; want %q", tt.input, s.String(), tt.expected)
			}
		})
	}
}

func TestMakeRejectsUnsupportedInput(t *testing.T) {
	var nilStr *Str
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"nil str", nilStr},
		{"bool", true},
		{"struct", struct{}{}},
		{"map", map[string]int{}},
		{"slice", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Make(tt.input)
			if err == nil {
				t.Fatalf("Make(%v) = %q; want TYPE_ERROR", tt.input, s)
			}
			if !errors.IsTypeError(err) {
				t.Errorf("Make(%v) error = %v; want TYPE_ERROR", tt.input, err)
			}
		})
	}
}

func TestMustMakePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustMake(struct{}{}) did not panic")
		}
	}()
	MustMake(struct{}{})
}

func TestOfNormalizesInvalidUTF8(t *testing.T) {
	s := Of("a\xffb")
	if s.String() != "a�b" {
		t.Errorf("Of(%q) = %q; want %q", "a\xffb", s.String(), "a�b")
	}
	if s.Length() != 3 {
		t.Errorf("Of(%q).Length() = %d; want 3", "a\xffb", s.Length())
	}
}

func TestFromArray(t *testing.T) {
	tests := []struct {
		name     string
		parts    any
		expected string
	}{
		{"strings", []string{"a", "b"}, "a-b"},
		{"strs", []*Str{Of("x"), Of("y")}, "x-y"},
		{"mixed", []any{"a", 1, Of("c")}, "a-1-c"},
		{"ints", []int{1, 2, 3}, "1-2-3"},
		{"collection", CollectionOf("p", "q"), "p-q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromArray(tt.parts, "-")
			if err != nil {
				t.Fatalf("FromArray(%v) error = %v", tt.parts, err)
			}
			if s.String() != tt.expected {
				t.Errorf("FromArray(%v) = %q; want %q", tt.parts, s, tt.expected)
			}
		})
	}

	if _, err := FromArray("not a slice", "-"); !errors.IsTypeError(err) {
		t.Errorf("FromArray(string) error = %v; want TYPE_ERROR", err)
	}
	if _, err := FromArray([]any{"a", true}, "-"); !errors.IsTypeError(err) {
		t.Errorf("FromArray([a true]) error = %v; want TYPE_ERROR", err)
	}
}

func TestRandom(t *testing.T) {
	s, err := Random(12)
	if err != nil {
		t.Fatalf("Random(12) error = %v", err)
	}
	if s.Length() != 12 {
		t.Errorf("Random(12).Length() = %d; want 12", s.Length())
	}

	fixed, err := RandomFix(8)
	if err != nil {
		t.Fatalf("RandomFix(8) error = %v", err)
	}
	if fixed.Length() != 8 {
		t.Errorf("RandomFix(8).Length() = %d; want 8", fixed.Length())
	}
}

func TestLengthAndEmptiness(t *testing.T) {
	tests := []struct {
		input   string
		length  int
		isEmpty bool
	}{
		{"", 0, true},
		{" ", 1, false},
		{"\n\t", 2, false},
		{"Привет", 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := Of(tt.input)
			if s.Length() != tt.length || s.Count() != tt.length {
				t.Errorf("Of(%q).Length() = %d; want %d", tt.input, s.Length(), tt.length)
			}
			if s.IsEmpty() != tt.isEmpty {
				t.Errorf("Of(%q).IsEmpty() = %v; want %v", tt.input, s.IsEmpty(), tt.isEmpty)
			}
			if s.IsNotEmpty() == tt.isEmpty {
				t.Errorf("Of(%q).IsNotEmpty() = %v; want %v", tt.input, s.IsNotEmpty(), !tt.isEmpty)
			}
		})
	}
}

func TestFirstAndLastSymbol(t *testing.T) {
	s := Of("ёжик")

	first, err := s.FirstSymbol()
	if err != nil || first.String() != "ё" {
		t.Errorf("FirstSymbol() = %v, %v; want ё, nil", first, err)
	}
	last, err := s.LastSymbol()
	if err != nil || last.String() != "к" {
		t.Errorf("LastSymbol() = %v, %v; want к, nil", last, err)
	}

	if _, err := Empty().FirstSymbol(); !errors.IsEmptyOperation(err) {
		t.Errorf("Empty().FirstSymbol() error = %v; want EMPTY_OPERATION", err)
	}
	if _, err := Empty().LastSymbol(); !errors.IsEmptyOperation(err) {
		t.Errorf("Empty().LastSymbol() error = %v; want EMPTY_OPERATION", err)
	}
}

func TestSymbolAt(t *testing.T) {
	s := Of("абв")
	tests := []struct {
		index    int
		expected string
	}{
		{0, "а"},
		{2, "в"},
		{-1, "в"},
		{3, ""},
	}

	for _, tt := range tests {
		if result := s.SymbolAt(tt.index).String(); result != tt.expected {
			t.Errorf("SymbolAt(%d) = %q; want %q", tt.index, result, tt.expected)
		}
	}
}

func TestCharsReturnsCopy(t *testing.T) {
	s := Of("abc")
	chars := s.Chars()
	chars[0] = "z"

	if again := s.Chars(); !reflect.DeepEqual(again, []string{"a", "b", "c"}) {
		t.Errorf("Chars() after caller mutation = %v; want [a b c]", again)
	}
	if got := slices.Collect(s.Symbols()); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Symbols() = %v; want [a b c]", got)
	}
}

func TestCodepointCacheConcurrentAccess(t *testing.T) {
	s := Of("конкурентный доступ")
	want := 19

	var wg sync.WaitGroup
	results := make([]int, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Length()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Errorf("goroutine %d: Length() = %d; want %d", i, got, want)
		}
	}
}

func TestBytes(t *testing.T) {
	got := Of("ё").Bytes()
	if !reflect.DeepEqual(got, []uint8{0xd1, 0x91}) {
		t.Errorf("Of(ё).Bytes() = %v; want [209 145]", got)
	}
}

func TestHashCode(t *testing.T) {
	s := Of("Hello")
	if got := s.HashCode(); got != 69609650 {
		t.Errorf("HashCode(Hello) = %d; want 69609650", got)
	}
	if s.HashCode() != s.HashCode() {
		t.Error("HashCode is not stable across calls")
	}
}

func TestEquals(t *testing.T) {
	s := Of("Привет")
	if !s.Equals("Привет") || !s.Equals(Of("Привет")) {
		t.Error("Equals with same text = false; want true")
	}
	if s.Equals("привет") {
		t.Error("Equals with different case = true; want false")
	}
	if !s.EqualsIgnoreCase("пРИВЕТ") {
		t.Error("EqualsIgnoreCase(пРИВЕТ) = false; want true")
	}
	if s.Equals(struct{}{}) {
		t.Error("Equals(struct{}{}) = true; want false")
	}
}

func TestGraphemesAndWidth(t *testing.T) {
	s := Of("e\u0301\U0001F1E9\U0001F1EA世")

	if got := s.Length(); got != 5 {
		t.Errorf("Length() = %d; want 5", got)
	}
	if got := s.GraphemeCount(); got != 3 {
		t.Errorf("GraphemeCount() = %d; want 3", got)
	}
	if got := s.Graphemes().ToStrings(); !reflect.DeepEqual(got, []string{"e\u0301", "\U0001F1E9\U0001F1EA", "世"}) {
		t.Errorf("Graphemes() = %q", got)
	}
	if got := Of("世界ab").Width(); got != 6 {
		t.Errorf("Width(世界ab) = %d; want 6", got)
	}
}
