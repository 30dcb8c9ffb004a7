// File: benchmark_test.go
// Title: Performance Benchmarks for StringX Functions
// Description: Benchmarks for the codepoint primitives and case conversion,
//              comparing ASCII and multi-byte input where the paths differ.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial benchmark implementation
// - 2026-10-19 v0.2.0: Benchmarks for substring, positions, hashing and tokenizer

package stringx

import (
	"strings"
	"testing"
)

var (
	benchASCII    = strings.Repeat("hello world ", 20)
	benchCyrillic = strings.Repeat("привет мир ", 20)
)

func BenchmarkLength(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Length(benchCyrillic)
	}
}

func BenchmarkSubstring(b *testing.B) {
	b.Run("ascii", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Substring(benchASCII, 10, 50)
		}
	})
	b.Run("cyrillic", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Substring(benchCyrillic, -60, 50)
		}
	})
}

func BenchmarkPositions(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Positions(benchCyrillic, "мир", false)
	}
}

func BenchmarkHashCode(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = HashCode(benchASCII)
	}
}

func BenchmarkReverse(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Reverse(benchCyrillic)
	}
}

func BenchmarkPadLeft(b *testing.B) {
	b.Run("single byte pad", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = PadLeft("42", 32, "0")
		}
	})
	b.Run("cycled pad", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = PadLeft("42", 32, "-=")
		}
	})
}

func BenchmarkToSnakeCase(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToSnakeCase("HTTPServerErrorHandlerFactory", "_")
	}
}

func BenchmarkToStudlyCaps(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToStudlyCaps("http_server-error handler")
	}
}

func BenchmarkToUpper(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToUpper(benchCyrillic)
	}
}

func BenchmarkRandomString(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = RandomString(16, Alphanumeric)
	}
}
