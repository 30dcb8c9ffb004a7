// Package error provides the structured error type shared by all strkit packages.
//
// Package: error
// Title: strkit Error Handling
// Description: This package implements a structured error with a code, a severity,
//              the failing operation and free-form details. The string library
//              reports its four recoverable failure kinds through it: type errors,
//              empty operations, invalid patterns and out-of-range arguments.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced to the codes used by the string library and CLI
//
// Usage:
//   import "github.com/msto63/strkit/foundation/core/error"
//
//   err := error.New("argument has unsupported type").
//     WithCode(error.CodeTypeError).
//     WithOperation("str.Make").
//     WithDetail("type", "chan int")
//
//   if error.HasCode(err, error.CodeTypeError) {
//     // handle type errors specifically
//   }
package error
