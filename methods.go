package pystr

import (
	"errors"
	"fmt"

	"github.com/npillmayer/pystr/search"
	"github.com/npillmayer/pystr/split"
	"github.com/npillmayer/pystr/translate"
)

// --- Trimming --------------------------------------------------------------

func charSet(chars Text) search.Set {
	if chars == nil || chars.Base() == nil {
		return nil
	}
	return search.NewSet(chars.Base().runes)
}

// Strip removes leading and trailing characters of s which are members of
// chars. chars is a set of characters, not a pattern. If chars is nil,
// whitespace is removed. If there is nothing to remove, s is returned.
func (s *Str) Strip(chars Text) *Str {
	i, j := search.Strip(s.runesOrNil(), charSet(chars))
	return s.sub(i, j)
}

// LStrip removes leading characters of s which are members of chars.
func (s *Str) LStrip(chars Text) *Str {
	i := search.LStrip(s.runesOrNil(), charSet(chars))
	return s.sub(i, s.Len())
}

// RStrip removes trailing characters of s which are members of chars.
func (s *Str) RStrip(chars Text) *Str {
	j := search.RStrip(s.runesOrNil(), charSet(chars))
	return s.sub(0, j)
}

// sub returns s[i:j], or s itself if the bounds cover all of s.
func (s *Str) sub(i, j int) *Str {
	if i == 0 && j == s.Len() {
		return s
	}
	if i >= j {
		return empty
	}
	return wrap(s.runes[i:j])
}

// RemovePrefix returns s without prefix, if s starts with it. Otherwise s
// itself is returned.
func (s *Str) RemovePrefix(prefix Text) *Str {
	p := runesOf(prefix)
	if len(p) == 0 || !search.HasPrefix(s.runesOrNil(), p) {
		return s
	}
	return s.sub(len(p), s.Len())
}

// RemoveSuffix returns s without suffix, if s ends with it. Otherwise s
// itself is returned.
func (s *Str) RemoveSuffix(suffix Text) *Str {
	x := runesOf(suffix)
	if len(x) == 0 || !search.HasSuffix(s.runesOrNil(), x) {
		return s
	}
	return s.sub(0, s.Len()-len(x))
}

// --- Searching -------------------------------------------------------------

// Contains reports whether sub occurs in s. The empty string is contained in
// every string.
func (s *Str) Contains(sub Text) bool {
	return search.Find(s.runesOrNil(), runesOf(sub)) >= 0
}

// Find returns the position of the first occurrence of sub, or -1.
func (s *Str) Find(sub Text) int {
	return search.Find(s.runesOrNil(), runesOf(sub))
}

// RFind returns the position of the last occurrence of sub, or -1.
func (s *Str) RFind(sub Text) int {
	return search.RFind(s.runesOrNil(), runesOf(sub))
}

// Index is like Find, but returns ErrNotFound if sub does not occur in s.
func (s *Str) Index(sub Text) (int, error) {
	if i := s.Find(sub); i >= 0 {
		return i, nil
	}
	return -1, ErrNotFound
}

// RIndex is like RFind, but returns ErrNotFound if sub does not occur in s.
func (s *Str) RIndex(sub Text) (int, error) {
	if i := s.RFind(sub); i >= 0 {
		return i, nil
	}
	return -1, ErrNotFound
}

// Count returns the number of non-overlapping occurrences of sub.
func (s *Str) Count(sub Text) int {
	return search.Count(s.runesOrNil(), runesOf(sub))
}

// StartsWith tests whether s begins with prefix.
func (s *Str) StartsWith(prefix Text) bool {
	return search.HasPrefix(s.runesOrNil(), runesOf(prefix))
}

// EndsWith tests whether s ends with suffix.
func (s *Str) EndsWith(suffix Text) bool {
	return search.HasSuffix(s.runesOrNil(), runesOf(suffix))
}

// Replace returns a copy of s with the first count occurrences of old
// replaced by new, or all of them for count < 0. If there is nothing to
// replace, s is returned.
func (s *Str) Replace(old, new Text, count int) *Str {
	r, changed := search.Replace(s.runesOrNil(), runesOf(old), runesOf(new), count)
	if !changed {
		return s
	}
	return wrap(r)
}

// Partition splits s at the first occurrence of sep. If sep does not occur
// in s, the result is s and two empty strings. An empty sep results in
// ErrValue.
func (s *Str) Partition(sep Text) ([3]*Str, error) {
	if len(runesOf(sep)) == 0 {
		return [3]*Str{}, fmt.Errorf("%w: empty separator", ErrValue)
	}
	h, m, t, found := search.Partition(s.runesOrNil(), runesOf(sep))
	if !found {
		return [3]*Str{s, empty, empty}, nil
	}
	return [3]*Str{wrap(h), wrap(m), wrap(t)}, nil
}

// RPartition splits s at the last occurrence of sep. If sep does not occur
// in s, the result is two empty strings and s.
func (s *Str) RPartition(sep Text) ([3]*Str, error) {
	if len(runesOf(sep)) == 0 {
		return [3]*Str{}, fmt.Errorf("%w: empty separator", ErrValue)
	}
	h, m, t, found := search.RPartition(s.runesOrNil(), runesOf(sep))
	if !found {
		return [3]*Str{empty, empty, s}, nil
	}
	return [3]*Str{wrap(h), wrap(m), wrap(t)}, nil
}

// --- Splitting -------------------------------------------------------------

func wrapAll(fields [][]rune) []*Str {
	r := make([]*Str, len(fields))
	for i, f := range fields {
		r[i] = wrap(f)
	}
	return r
}

// Split splits s at sep, at most maxsplit times (all for maxsplit < 0). If
// sep is nil, runs of whitespace separate fields and empty fields are
// dropped. An empty sep results in ErrValue.
func (s *Str) Split(sep Text, maxsplit int) ([]*Str, error) {
	if sep == nil || sep.Base() == nil {
		return wrapAll(split.Fields(s.runesOrNil(), maxsplit)), nil
	}
	fields, err := split.Split(s.runesOrNil(), runesOf(sep), maxsplit)
	if err != nil {
		return nil, splitError(err)
	}
	return wrapAll(fields), nil
}

// RSplit is like Split, but counts splits from the right.
func (s *Str) RSplit(sep Text, maxsplit int) ([]*Str, error) {
	if sep == nil || sep.Base() == nil {
		return wrapAll(split.RFields(s.runesOrNil(), maxsplit)), nil
	}
	fields, err := split.RSplit(s.runesOrNil(), runesOf(sep), maxsplit)
	if err != nil {
		return nil, splitError(err)
	}
	return wrapAll(fields), nil
}

func splitError(err error) error {
	if errors.Is(err, split.ErrEmptySeparator) {
		return fmt.Errorf("%w: %v", ErrValue, err)
	}
	return err
}

// SplitLines splits s at line boundaries. With keepends set, every line
// retains its line boundary.
func (s *Str) SplitLines(keepends bool) []*Str {
	return wrapAll(split.Lines(s.runesOrNil(), keepends))
}

// --- Translation -----------------------------------------------------------

// MakeTrans creates a translation table mapping the characters of from to
// the characters at the same position in to, and the characters of del to
// deletion. del may be nil.
func MakeTrans(from, to, del Text) (*translate.Table, error) {
	return translate.MakeTrans(runesOf(from), runesOf(to), runesOf(del))
}

// MakeTransMap creates a translation table from a mapping of code-points or
// single characters to code-points, text or nil.
func MakeTransMap(m map[interface{}]interface{}) (*translate.Table, error) {
	return translate.FromMap(m)
}

// Translate maps every character of s through table. Characters without an
// entry are copied unchanged.
func (s *Str) Translate(table *translate.Table) *Str {
	if table == nil {
		return s
	}
	r, changed := table.Apply(s.runesOrNil())
	if !changed {
		return s
	}
	return wrap(r)
}
