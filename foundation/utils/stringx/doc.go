// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the stateless codepoint-level string
//              primitives strkit is built on.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with core string utilities
// - 2026-10-19 v0.2.0: Rewritten around codepoint indexing for strkit

// Package stringx provides stateless string primitives on plain Go strings.
//
// Overview
//
// Every length, index and offset in this package is counted in Unicode
// codepoints. Go strings index bytes, so code that mixes the two silently
// breaks multi-byte text; stringx is the single place where that conversion
// happens. The str package builds its immutable value type on top of it.
//
// Architecture
//
//   - Core Operations: length, splitting, substring, trimming, searching,
//     padding and hashing (stringx.go)
//   - Case Conversion: locale-independent case mapping and naming
//     conventions (case.go)
//   - Random Generation: crypto/rand strings and shuffling (random.go)
//
// Usage Examples
//
// Codepoint indexing:
//
//	stringx.Length("Привет")             // 6
//	stringx.Substring("Привет", 1, 3)    // "рив"
//	stringx.Substring("Привет", -2, 10)  // "ет"
//	stringx.Substring("master.one", 0, -4) // "master"
//
// Case conversions:
//
//	stringx.ToSnakeCase("HTTPServerError", "_") // "http_server_error"
//	stringx.ToStudlyCaps("my_variable-name")    // "MyVariableName"
//	stringx.ToCamelCase("my_variable-name")     // "myVariableName"
//	stringx.SwapCase("Hello Wörld")             // "hELLO wÖRLD"
//
// Searching:
//
//	stringx.Positions("abcabc", "bc", false) // [1 4]
//	stringx.IndexOf("ёжик ёж", "ёж", 1)      // 5
//
// Error Handling
//
// Nothing in this package fails on its input. Empty strings give empty
// results and out-of-range indices are clamped. Only the random functions
// return an error, when the system entropy source does.
//
// Thread Safety
//
// All exported functions are safe for concurrent use. The compiled
// case-boundary pattern is shared read-only.
package stringx
