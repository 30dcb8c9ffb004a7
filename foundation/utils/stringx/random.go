// File: random.go
// Title: Secure String Generation Utilities
// Description: Implements random string generation and codepoint shuffling.
//              Uses crypto/rand for all randomness.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with secure random generation
// - 2026-10-19 v0.2.0: Unicode charsets, exported Shuffle, removed password helpers

package stringx

import (
	"crypto/rand"
	"math/big"
)

const (
	// Character sets for random string generation
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LettersLowercase + LettersUppercase
	Digits           = "0123456789"
	Alphanumeric     = Letters + Digits

	// Human-readable characters (excluding visually similar characters like 0, O, l, 1)
	HumanReadable = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// Printable ASCII without space
	Printable = "!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"
)

// RandomString generates a cryptographically secure random string of length
// codepoints drawn from charset. If charset is empty, it defaults to Alphanumeric.
func RandomString(length int, charset string) (string, error) {
	if length <= 0 {
		return "", nil
	}

	if charset == "" {
		charset = Alphanumeric
	}

	symbols := []rune(charset)
	result := make([]rune, length)
	charsetLen := big.NewInt(int64(len(symbols)))

	for i := 0; i < length; i++ {
		randomIndex, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", err
		}
		result[i] = symbols[randomIndex.Int64()]
	}

	return string(result), nil
}

// RandomAlphanumeric generates a random alphanumeric string of the specified length.
func RandomAlphanumeric(length int) (string, error) {
	return RandomString(length, Alphanumeric)
}

// Shuffle returns a uniform random permutation of the codepoints of s
// (Fisher-Yates).
func Shuffle(s string) (string, error) {
	runes := []rune(s)

	for i := len(runes) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		runes[i], runes[j.Int64()] = runes[j.Int64()], runes[i]
	}

	return string(runes), nil
}
