// File: collection.go
// Title: Str Collection
// Description: Implements Collection, an ordered immutable sequence of *Str.
//              There is no index write; every transform returns a new
//              Collection over a fresh backing slice.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package str

import (
	"iter"
	"slices"
	"strings"
)

// Collection is an ordered, 0-based, immutable sequence of *Str.
type Collection struct {
	items []*Str
}

// NewCollection creates a collection over a copy of items. Nil entries are
// replaced by the empty value.
func NewCollection(items ...*Str) *Collection {
	copied := make([]*Str, len(items))
	for i, item := range items {
		if item == nil {
			item = Empty()
		}
		copied[i] = item
	}
	return &Collection{items: copied}
}

// CollectionOf creates a collection from plain strings.
func CollectionOf(values ...string) *Collection {
	items := make([]*Str, len(values))
	for i, v := range values {
		items[i] = Of(v)
	}
	return &Collection{items: items}
}

// Count returns the number of entries.
func (c *Collection) Count() int {
	return len(c.items)
}

// IsEmpty reports whether the collection has no entries.
func (c *Collection) IsEmpty() bool {
	return len(c.items) == 0
}

// IsNotEmpty is the inverse of IsEmpty.
func (c *Collection) IsNotEmpty() bool {
	return !c.IsEmpty()
}

// At returns the entry at index and whether it exists. Negative indices
// count from the end.
func (c *Collection) At(index int) (*Str, bool) {
	if index < 0 {
		index += len(c.items)
	}
	if index < 0 || index >= len(c.items) {
		return nil, false
	}
	return c.items[index], true
}

// First returns the first entry, or false when empty.
func (c *Collection) First() (*Str, bool) {
	return c.At(0)
}

// Last returns the last entry, or false when empty.
func (c *Collection) Last() (*Str, bool) {
	return c.At(-1)
}

// All iterates index and entry pairs.
func (c *Collection) All() iter.Seq2[int, *Str] {
	return slices.All(c.items)
}

// Values iterates the entries.
func (c *Collection) Values() iter.Seq[*Str] {
	return slices.Values(c.items)
}

// Implode joins the entries with separator.
func (c *Collection) Implode(separator string) *Str {
	return Of(strings.Join(c.ToStrings(), separator))
}

// ImplodeAsLines joins the entries with "\n".
func (c *Collection) ImplodeAsLines() *Str {
	return c.Implode("\n")
}

// Map applies fn to every entry.
func (c *Collection) Map(fn func(*Str) *Str) *Collection {
	mapped := make([]*Str, len(c.items))
	for i, item := range c.items {
		mapped[i] = fn(item)
	}
	return NewCollection(mapped...)
}

// Filter keeps the entries pred accepts. A nil pred drops empty entries.
func (c *Collection) Filter(pred func(*Str) bool) *Collection {
	if pred == nil {
		pred = (*Str).IsNotEmpty
	}
	var kept []*Str
	for _, item := range c.items {
		if pred(item) {
			kept = append(kept, item)
		}
	}
	return &Collection{items: kept}
}

// OnlyNotEmpty drops empty entries.
func (c *Collection) OnlyNotEmpty() *Collection {
	return c.Filter(nil)
}

// Trim trims every entry.
func (c *Collection) Trim() *Collection {
	return c.Map((*Str).Trim)
}

// Slice keeps length entries from offset. Negative values count from the
// end; pass ToEnd to keep everything after offset.
func (c *Collection) Slice(offset, length int) *Collection {
	start, end := sliceBounds(len(c.items), offset, length)
	return &Collection{items: slices.Clone(c.items[start:end])}
}

// ExceptKeys drops the entries at the given positions. The remaining
// entries are renumbered from 0.
func (c *Collection) ExceptKeys(keys ...int) *Collection {
	excluded := make(map[int]bool, len(keys))
	for _, k := range keys {
		excluded[k] = true
	}
	var kept []*Str
	for i, item := range c.items {
		if !excluded[i] {
			kept = append(kept, item)
		}
	}
	return &Collection{items: kept}
}

// ToIntegers converts every entry with ToInteger; entries without a number
// become 0.
func (c *Collection) ToIntegers() []int {
	ints := make([]int, len(c.items))
	for i, item := range c.items {
		ints[i], _ = item.ToInteger()
	}
	return ints
}

// ToStrings returns the entries as plain strings.
func (c *Collection) ToStrings() []string {
	values := make([]string, len(c.items))
	for i, item := range c.items {
		values[i] = item.value
	}
	return values
}

// ToArray returns a copy of the entries.
func (c *Collection) ToArray() []*Str {
	return slices.Clone(c.items)
}

// MaxLength returns the codepoint length of the longest entry, or 0 for an
// empty collection.
func (c *Collection) MaxLength() int {
	longest := 0
	for _, item := range c.items {
		longest = max(longest, item.Length())
	}
	return longest
}

// Length returns the sum of the entries' codepoint lengths.
func (c *Collection) Length() int {
	total := 0
	for _, item := range c.items {
		total += item.Length()
	}
	return total
}

// CommonPrefix returns the longest codepoint prefix shared by all entries.
func (c *Collection) CommonPrefix() *Str {
	switch len(c.items) {
	case 0:
		return Empty()
	case 1:
		return c.items[0]
	}

	prefix := c.items[0].codepoints()
	for _, item := range c.items[1:] {
		chars := item.codepoints()
		n := min(len(prefix), len(chars))
		i := 0
		for i < n && prefix[i] == chars[i] {
			i++
		}
		prefix = prefix[:i]
		if len(prefix) == 0 {
			break
		}
	}
	return Of(strings.Join(prefix, ""))
}

// ToSentence joins the entries with spaces and formats the result as a
// sentence.
func (c *Collection) ToSentence() *Str {
	return c.Implode(" ").ToSentence()
}

// String joins the entries with ", " inside brackets, for debugging.
func (c *Collection) String() string {
	return "[" + strings.Join(c.ToStrings(), ", ") + "]"
}
