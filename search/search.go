/*
Package search implements trimming and substring search on sequences of
code-points.

Functions in this package work on rune slices and report positions in
code-point units. They never modify their arguments. Results which are
sub-sequences of an argument share its backing array.

Trimming takes a character-set argument. A Set is a plain bag of
code-points: "[^a-b]" denotes the six characters '[', '^', 'a', '-', 'b'
and ']', never a range or a pattern.

*/
package search

import (
	"github.com/npillmayer/pystr/internal/runebuf"
	"github.com/npillmayer/pystr/ucd"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pystr.search'.
func tracer() tracing.Trace {
	return tracing.Select("pystr.search")
}

// Set is a set of code-points to trim. The nil Set stands for whitespace.
type Set map[rune]struct{}

// NewSet creates a set from the individual characters of chars.
func NewSet(chars []rune) Set {
	set := make(Set, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}

// Contains is true if r is a member of the set. For a nil set, every
// whitespace character is a member.
func (set Set) Contains(r rune) bool {
	if set == nil {
		return ucd.IsSpace(r)
	}
	_, ok := set[r]
	return ok
}

// --- Trimming --------------------------------------------------------------

// Strip returns the bounds [i, j) of text with leading and trailing members
// of set removed.
func Strip(text []rune, set Set) (int, int) {
	i := LStrip(text, set)
	j := RStrip(text[i:], set)
	return i, i + j
}

// LStrip returns the position of the first code-point of text which is not
// a member of set.
func LStrip(text []rune, set Set) int {
	i := 0
	for i < len(text) && set.Contains(text[i]) {
		i++
	}
	return i
}

// RStrip returns the position after the last code-point of text which is not
// a member of set.
func RStrip(text []rune, set Set) int {
	j := len(text)
	for j > 0 && set.Contains(text[j-1]) {
		j--
	}
	return j
}

// --- Searching -------------------------------------------------------------

// Find returns the position of the first occurrence of needle in text, or -1.
// The empty needle is found at position 0.
func Find(text, needle []rune) int {
	n := len(needle)
	if n == 0 {
		return 0
	}
	for i := 0; i+n <= len(text); i++ {
		if text[i] == needle[0] && Equal(text[i:i+n], needle) {
			return i
		}
	}
	return -1
}

// RFind returns the position of the last occurrence of needle in text, or -1.
// The empty needle is found at position len(text).
func RFind(text, needle []rune) int {
	n := len(needle)
	if n == 0 {
		return len(text)
	}
	for i := len(text) - n; i >= 0; i-- {
		if text[i] == needle[0] && Equal(text[i:i+n], needle) {
			return i
		}
	}
	return -1
}

// Count returns the number of non-overlapping occurrences of needle in text.
// Scanning proceeds from left to right. An empty needle matches between
// every code-point and at both ends, resulting in len(text)+1.
func Count(text, needle []rune) int {
	if len(needle) == 0 {
		return len(text) + 1
	}
	cnt := 0
	for i := 0; i+len(needle) <= len(text); {
		k := Find(text[i:], needle)
		if k < 0 {
			break
		}
		cnt++
		i += k + len(needle)
	}
	return cnt
}

// HasPrefix tests whether text begins with prefix.
func HasPrefix(text, prefix []rune) bool {
	return len(text) >= len(prefix) && Equal(text[:len(prefix)], prefix)
}

// HasSuffix tests whether text ends with suffix.
func HasSuffix(text, suffix []rune) bool {
	return len(text) >= len(suffix) && Equal(text[len(text)-len(suffix):], suffix)
}

// Equal compares two sequences of code-points.
func Equal(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Compare compares two sequences of code-points lexicographically and
// returns -1, 0 or +1.
func Compare(a, b []rune) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// --- Derived operations ----------------------------------------------------

// Replace substitutes occurrences of old in text by new, at most count
// times, or all of them if count < 0. An empty old matches between every
// code-point and at both ends. If nothing is replaced, Replace returns
// text itself and false.
func Replace(text, old, new []rune, count int) ([]rune, bool) {
	if count == 0 || (len(old) > 0 && Find(text, old) < 0) {
		return text, false
	}
	if len(old) > 0 && Equal(old, new) {
		return text, false
	}
	buf := runebuf.Borrow()
	defer buf.Release()
	buf.Grow(len(text))
	n := 0
	if len(old) == 0 {
		if len(new) == 0 {
			return text, false
		}
		for i := 0; i <= len(text); i++ {
			if count < 0 || n < count {
				buf.WriteRunes(new)
				n++
			}
			if i < len(text) {
				buf.WriteRune(text[i])
			}
		}
		return buf.Runes(), true
	}
	i := 0
	for count < 0 || n < count {
		k := Find(text[i:], old)
		if k < 0 {
			break
		}
		buf.WriteRunes(text[i : i+k])
		buf.WriteRunes(new)
		i += k + len(old)
		n++
	}
	buf.WriteRunes(text[i:])
	tracer().Debugf("replaced %d occurrences", n)
	return buf.Runes(), true
}

// Partition splits text at the first occurrence of sep. If sep is not
// found, the result is text and two empty sequences. found reports which
// case applies.
func Partition(text, sep []rune) (head, mid, tail []rune, found bool) {
	i := Find(text, sep)
	if i < 0 {
		return text, nil, nil, false
	}
	return text[:i], text[i : i+len(sep)], text[i+len(sep):], true
}

// RPartition splits text at the last occurrence of sep. If sep is not
// found, the result is two empty sequences and text.
func RPartition(text, sep []rune) (head, mid, tail []rune, found bool) {
	i := RFind(text, sep)
	if i < 0 {
		return nil, nil, text, false
	}
	return text[:i], text[i : i+len(sep)], text[i+len(sep):], true
}
