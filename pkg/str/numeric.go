// File: numeric.go
// Title: Numeric Coercion
// Description: Tolerant conversions from text to numbers. Leading and
//              trailing noise is skipped; absence of any number is reported
//              through the boolean result rather than an error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package str

import (
	"math"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	integerToken  = regexp2.MustCompile(`([+-]?[0-9]+)([eE][+-]?[0-9]+)?`, regexp2.None)
	numericString = regexp2.MustCompile(`^[ \t\n\r\v\f]*[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?[ \t\n\r\v\f]*\z`, regexp2.None)
)

// Number is the result of ToNumber: an integer or a float.
type Number struct {
	Int     int
	Float   float64
	IsFloat bool
}

// Float64 returns the number as a float64 regardless of its kind.
func (n Number) Float64() float64 {
	if n.IsFloat {
		return n.Float
	}
	return float64(n.Int)
}

// String formats the number without trailing zeros.
func (n Number) String() string {
	if n.IsFloat {
		return strconv.FormatFloat(n.Float, 'f', -1, 64)
	}
	return strconv.Itoa(n.Int)
}

// ToInteger extracts the first signed integer token, applying an exponent
// suffix when one follows. "dd123.1dd" gives 123, "2e3" gives 2000.
func (s *Str) ToInteger() (int, bool) {
	m, err := integerToken.FindStringMatch(s.value)
	if err != nil || m == nil {
		return 0, false
	}

	groups := m.Groups()
	mantissa, err := strconv.Atoi(groups[1].String())
	if err != nil {
		return 0, false
	}
	if len(groups[2].Captures) == 0 {
		return mantissa, true
	}

	exponent, err := strconv.Atoi(groups[2].String()[1:])
	if err != nil {
		return 0, false
	}
	scaled := float64(mantissa) * math.Pow10(exponent)
	if scaled >= math.MaxInt || scaled < math.MinInt {
		return 0, false
	}
	return int(scaled), true
}

// IsDigit reports whether the whole value is a numeric string: optional
// surrounding whitespace, an optional sign, digits with an optional
// fraction (or a bare fraction) and an optional exponent.
func (s *Str) IsDigit() bool {
	found, err := numericString.MatchString(s.value)
	return err == nil && found
}

// IsInt reports whether the value is numeric and has no dot.
func (s *Str) IsInt() bool {
	return s.IsDigit() && !s.ContainsDot()
}

// IsFloat reports whether the value is numeric and has a dot.
func (s *Str) IsFloat() bool {
	return s.IsDigit() && s.ContainsDot()
}

// ToFloat parses a numeric value directly. Otherwise it collects digits and
// dots from the first digit on, up to the first other codepoint.
// "A56.7E" gives 56.7.
func (s *Str) ToFloat() (float64, bool) {
	if s.IsDigit() {
		f, err := strconv.ParseFloat(strings.TrimSpace(s.value), 64)
		return f, err == nil
	}

	var number strings.Builder
	started, dotted := false, false
	for _, r := range s.value {
		switch {
		case r >= '0' && r <= '9':
			number.WriteRune(r)
			started = true
		case started && r == '.' && !dotted:
			number.WriteRune(r)
			dotted = true
		case started:
			return parseCollected(number.String())
		}
	}

	if !started {
		return 0, false
	}
	return parseCollected(number.String())
}

func parseCollected(number string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSuffix(number, "."), 64)
	return f, err == nil
}

// ToNumber converts a numeric value to a float when it contains a dot and
// to an integer otherwise. Non-numeric values give false.
func (s *Str) ToNumber() (Number, bool) {
	if !s.IsDigit() {
		return Number{}, false
	}

	if s.ContainsDot() {
		f, ok := s.ToFloat()
		return Number{Float: f, IsFloat: true}, ok
	}

	if i, ok := s.ToInteger(); ok {
		return Number{Int: i}, true
	}
	f, ok := s.ToFloat()
	return Number{Float: f, IsFloat: true}, ok
}
