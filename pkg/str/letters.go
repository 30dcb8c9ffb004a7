// File: letters.go
// Title: Letter Frequency Snapshot
// Description: Implements LettersStat, an immutable letter to count map that
//              remembers first-occurrence order. Extremal queries keep ties.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package str

import (
	"maps"
	"slices"
)

// LetterCount is one letter with its number of occurrences.
type LetterCount struct {
	Letter string
	Count  int
}

// LettersStat maps letters to their counts in first-occurrence order.
type LettersStat struct {
	letters []string
	counts  map[string]int
}

func newLettersStat(chars []string) *LettersStat {
	stat := &LettersStat{counts: make(map[string]int)}
	for _, char := range chars {
		if _, ok := stat.counts[char]; !ok {
			stat.letters = append(stat.letters, char)
		}
		stat.counts[char]++
	}
	return stat
}

// NewLettersStat builds a snapshot from explicit counts. Letters keep the
// order of entries.
func NewLettersStat(entries ...LetterCount) *LettersStat {
	stat := &LettersStat{counts: make(map[string]int, len(entries))}
	for _, e := range entries {
		if _, ok := stat.counts[e.Letter]; !ok {
			stat.letters = append(stat.letters, e.Letter)
		}
		stat.counts[e.Letter] = e.Count
	}
	return stat
}

// Inputs returns the count of letter, 0 if absent.
func (l *LettersStat) Inputs(letter string) int {
	return l.counts[letter]
}

// MaxInputs returns the highest count, 0 when there are no letters.
func (l *LettersStat) MaxInputs() int {
	if len(l.letters) == 0 {
		return 0
	}
	return slices.Max(slices.Collect(maps.Values(l.counts)))
}

// MinInputs returns the lowest count, 0 when there are no letters.
func (l *LettersStat) MinInputs() int {
	if len(l.letters) == 0 {
		return 0
	}
	return slices.Min(slices.Collect(maps.Values(l.counts)))
}

// ByMaxInputs returns every letter with the highest count.
func (l *LettersStat) ByMaxInputs() []LetterCount {
	return l.byInputs(l.MaxInputs())
}

// ByMinInputs returns every letter with the lowest count.
func (l *LettersStat) ByMinInputs() []LetterCount {
	return l.byInputs(l.MinInputs())
}

func (l *LettersStat) byInputs(count int) []LetterCount {
	return l.FindBy(func(_ string, c int) bool { return c == count })
}

// FindBy returns the letters fn accepts, in first-occurrence order.
func (l *LettersStat) FindBy(fn func(letter string, count int) bool) []LetterCount {
	var found []LetterCount
	for _, letter := range l.letters {
		if fn(letter, l.counts[letter]) {
			found = append(found, LetterCount{Letter: letter, Count: l.counts[letter]})
		}
	}
	return found
}

// Count returns the number of distinct letters.
func (l *LettersStat) Count() int {
	return len(l.letters)
}

// Total returns the sum of all counts.
func (l *LettersStat) Total() int {
	total := 0
	for _, c := range l.counts {
		total += c
	}
	return total
}

// Dict returns a copy of the letter to count map.
func (l *LettersStat) Dict() map[string]int {
	return maps.Clone(l.counts)
}

// Letters returns the letters in first-occurrence order.
func (l *LettersStat) Letters() []string {
	return slices.Clone(l.letters)
}

// Entries returns every letter with its count in first-occurrence order.
func (l *LettersStat) Entries() []LetterCount {
	return l.FindBy(func(string, int) bool { return true })
}
