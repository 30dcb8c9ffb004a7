// File: doc.go
// Title: Package Documentation for str
// Description: Package str provides the immutable Str value, its
//              Collection, LettersStat and template matching.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package str provides an immutable, Unicode-aware string value.
//
// Overview
//
// A *Str wraps valid UTF-8 text and never changes after construction. Every
// transform returns a new *Str, so calls chain naturally:
//
//	s := str.Of("  hello dev  ").Trim().UpWords()     // "Hello Dev"
//	snake := str.Of("HTTPServerError").ToSnakeCase()  // "http_server_error"
//
// Lengths, indices and offsets are codepoints. Graphemes and Width give the
// user-perceived view when that is what a caller needs.
//
// Construction
//
// Make accepts text, numbers, []byte, *Str and fmt.Stringer values. Anything
// else fails with a TYPE_ERROR:
//
//	s, err := str.Make(42)        // "42"
//	_, err = str.Make(struct{}{}) // errors.IsTypeError(err) == true
//
// Of wraps a string and never fails.
//
// Collections
//
// Lines, Words, Explode and friends return a *Collection, an ordered
// immutable sequence of *Str with joins, filters and CommonPrefix:
//
//	str.CollectionOf("hello", "dev", "Artem").ToSentence() // "Hello dev Artem."
//
// Errors
//
// Four error kinds reach callers, all as *error.Error with a code:
// TYPE_ERROR (unsupported input), EMPTY_OPERATION (FirstSymbol/LastSymbol on
// the empty value), INVALID_PATTERN (the pattern engine rejected a pattern)
// and ARGUMENT_RANGE (used by the markdown package). Out-of-range indices
// clamp instead of failing.
//
// Patterns
//
// Match and GlobalMatch take delimited patterns ("/^\d+$/m") and run them on
// regexp2, which supports look-around. Untrusted patterns can backtrack
// for a long time; the engine does not bound that.
//
// Thread Safety
//
// A *Str may be shared between goroutines. The codepoint list is memoized
// through an atomic pointer; two goroutines may both compute it, and either
// result is kept.
package str
