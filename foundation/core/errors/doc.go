// Package errors provides the standard way for strkit packages to create and
// inspect errors.
//
// Package: errors
// Title: Standard Error Handling API for strkit
// Description: This package builds module-tagged errors on top of the core
//              error package. The string library reports exactly four
//              recoverable error kinds, each with a constructor and a
//              predicate that unwraps through fmt.Errorf("%w") chains.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-19 v0.2.0: String library error kinds and predicates
//
// # Error kinds
//
//   - TypeError: an argument is neither text, a number nor a fmt.Stringer
//   - EmptyOperation: FirstSymbol/LastSymbol on an empty value
//   - InvalidPattern: the pattern engine rejected a pattern
//   - ArgumentRange: e.g. a Markdown heading level outside 1-6
//
// # Usage
//
//	s, err := str.Make(someValue)
//	if errors.IsTypeError(err) {
//		// the caller passed an unsupported type
//	}
//
//	err := errors.NewErrorBuilder(errors.ModuleConfig).
//		Operation("load").
//		Message("cannot read configuration").
//		Cause(ioErr).
//		Build()
package errors
