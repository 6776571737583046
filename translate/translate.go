/*
Package translate builds and applies per-code-point translation tables.

A Table maps a source code-point to either a replacement code-point, a
replacement text of arbitrary length, or to deletion. Code-points without an
entry are copied through unchanged. Tables are ordered by source code-point
and print the way a dictionary literal would:

	{97: None, 98: None, 99: 102, 100: None}

Tables are immutable after construction and may be shared between
goroutines.

*/
package translate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/pystr/escape"
	"github.com/npillmayer/pystr/internal/runebuf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pystr.translate'.
func tracer() tracing.Trace {
	return tracing.Select("pystr.translate")
}

// ErrMakeTrans is returned for invalid arguments to table construction.
var ErrMakeTrans = errors.New("invalid translation table arguments")

type targetKind int8

const (
	deletion targetKind = iota
	codepoint
	text
)

// Target is the right-hand side of a table entry.
type Target struct {
	kind targetKind
	cp   rune
	text []rune
}

// Delete is the target for code-points to drop.
func Delete() Target {
	return Target{kind: deletion}
}

// Codepoint is a target replacing the source by a single code-point.
func Codepoint(r rune) Target {
	return Target{kind: codepoint, cp: r}
}

// Text is a target replacing the source by a sequence of code-points.
func Text(r []rune) Target {
	t := make([]rune, len(r))
	copy(t, r)
	return Target{kind: text, text: t}
}

// IsDelete is true for deletion targets.
func (t Target) IsDelete() bool {
	return t.kind == deletion
}

// Runes returns the replacement for a source code-point.
func (t Target) Runes() []rune {
	switch t.kind {
	case codepoint:
		return []rune{t.cp}
	case text:
		return t.text
	}
	return nil
}

func (t Target) String() string {
	switch t.kind {
	case codepoint:
		return fmt.Sprintf("%d", t.cp)
	case text:
		return escape.Repr(t.text)
	}
	return "None"
}

// Table is a translation table. The zero value is not usable; create
// tables with MakeTrans or FromMap.
type Table struct {
	entries *treemap.Map // int -> Target
}

func newTable() *Table {
	return &Table{entries: treemap.NewWith(utils.IntComparator)}
}

// MakeTrans creates a table mapping every code-point of from to the
// code-point at the same position in to. from and to must have equal length.
// Every code-point of del maps to deletion, even if it occurs in from.
func MakeTrans(from, to, del []rune) (*Table, error) {
	if len(from) != len(to) {
		return nil, fmt.Errorf("%w: the first two arguments must have equal length (%d != %d)",
			ErrMakeTrans, len(from), len(to))
	}
	t := newTable()
	for i, r := range from {
		t.entries.Put(int(r), Codepoint(to[i]))
	}
	for _, r := range del {
		t.entries.Put(int(r), Delete())
	}
	tracer().Debugf("created translation table with %d entries", t.entries.Size())
	return t, nil
}

// Runer is implemented by text values usable as keys or targets in FromMap.
type Runer interface {
	Runes() []rune
}

// FromMap creates a table from a mapping. Keys must be code-points (any Go
// integer type) or text of length 1 (string or Runer). Values may be
// code-points, text (string or Runer) or nil for deletion.
func FromMap(m map[interface{}]interface{}) (*Table, error) {
	t := newTable()
	for k, v := range m {
		key, err := keyOf(k)
		if err != nil {
			return nil, err
		}
		target, err := targetOf(v)
		if err != nil {
			return nil, err
		}
		t.entries.Put(int(key), target)
	}
	tracer().Debugf("created translation table with %d entries", t.entries.Size())
	return t, nil
}

func keyOf(k interface{}) (rune, error) {
	switch key := k.(type) {
	case int:
		return codepointOf(int64(key))
	case int32:
		return codepointOf(int64(key))
	case int64:
		return codepointOf(key)
	case string:
		if utf8.RuneCountInString(key) != 1 {
			return 0, fmt.Errorf("%w: string keys must be of length 1, have %q", ErrMakeTrans, key)
		}
		r, _ := utf8.DecodeRuneInString(key)
		return r, nil
	case Runer:
		r := key.Runes()
		if len(r) != 1 {
			return 0, fmt.Errorf("%w: string keys must be of length 1, have %q", ErrMakeTrans, string(r))
		}
		return r[0], nil
	}
	return 0, fmt.Errorf("%w: keys must be code-points or strings of length 1, have %T", ErrMakeTrans, k)
}

// codepointOf checks that n is a Unicode scalar value.
func codepointOf(n int64) (rune, error) {
	if n < 0 || n > utf8.MaxRune || (n >= 0xd800 && n <= 0xdfff) {
		return 0, fmt.Errorf("%w: %d is not a valid code-point", ErrMakeTrans, n)
	}
	return rune(n), nil
}

func codepointTarget(n int64) (Target, error) {
	r, err := codepointOf(n)
	if err != nil {
		return Target{}, err
	}
	return Codepoint(r), nil
}

func targetOf(v interface{}) (Target, error) {
	switch val := v.(type) {
	case nil:
		return Delete(), nil
	case int:
		return codepointTarget(int64(val))
	case int32:
		return codepointTarget(int64(val))
	case int64:
		return codepointTarget(val)
	case string:
		return Text([]rune(val)), nil
	case Runer:
		return Text(val.Runes()), nil
	}
	return Target{}, fmt.Errorf("%w: values must be code-points, strings or nil, have %T", ErrMakeTrans, v)
}

// Lookup returns the target for code-point r, if any.
func (t *Table) Lookup(r rune) (Target, bool) {
	v, found := t.entries.Get(int(r))
	if !found {
		return Target{}, false
	}
	return v.(Target), true
}

// Len is the number of entries.
func (t *Table) Len() int {
	return t.entries.Size()
}

// Each calls f for every entry, in ascending order of code-points.
func (t *Table) Each(f func(rune, Target)) {
	it := t.entries.Iterator()
	for it.Next() {
		f(rune(it.Key().(int)), it.Value().(Target))
	}
}

// Apply translates text. If no code-point of text has an entry, Apply
// returns text itself and false.
func (t *Table) Apply(input []rune) ([]rune, bool) {
	first := -1
	for i, r := range input {
		if _, found := t.entries.Get(int(r)); found {
			first = i
			break
		}
	}
	if first < 0 {
		return input, false
	}
	buf := runebuf.Borrow()
	defer buf.Release()
	buf.Grow(len(input))
	buf.WriteRunes(input[:first])
	for _, r := range input[first:] {
		if target, found := t.Lookup(r); found {
			buf.WriteRunes(target.Runes())
		} else {
			buf.WriteRune(r)
		}
	}
	return buf.Runes(), true
}

// String renders the table as a dictionary literal, ordered by code-point.
func (t *Table) String() string {
	var b strings.Builder
	b.WriteByte('{')
	n := 0
	t.Each(func(r rune, target Target) {
		if n > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %s", r, target)
		n++
	})
	b.WriteByte('}')
	return b.String()
}
