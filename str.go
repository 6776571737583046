package pystr

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/npillmayer/pystr/escape"
	"github.com/npillmayer/pystr/internal/runebuf"
	"github.com/npillmayer/pystr/search"
)

// Str is an immutable sequence of Unicode code-points.
//
// The zero value and the nil *Str are valid empty strings.
type Str struct {
	runes []rune
}

// Text is implemented by *Str and *Derived.
type Text interface {
	Base() *Str
	Len() int
	String() string
	TypeName() string
}

// None marks an omitted bound for slicing.
const None = math.MinInt

var empty = &Str{}

// New creates a text value from a Go string. Invalid UTF-8 bytes become
// U+FFFD.
func New(s string) *Str {
	return &Str{runes: []rune(s)}
}

// FromRunes creates a text value from a copy of r.
func FromRunes(r []rune) *Str {
	c := make([]rune, len(r))
	copy(c, r)
	return &Str{runes: c}
}

// FromCodepoints creates a text value from integer code-points. Surrogates
// and values outside [0, 0x10FFFF] are rejected with ErrValue.
func FromCodepoints(cps ...int) (*Str, error) {
	r := make([]rune, len(cps))
	for i, cp := range cps {
		if cp < 0 || cp > utf8.MaxRune || (cp >= 0xd800 && cp <= 0xdfff) {
			return nil, fmt.Errorf("%w: code-point %#x not in range(0x110000) or surrogate", ErrValue, cp)
		}
		r[i] = rune(cp)
	}
	return &Str{runes: r}, nil
}

// Chr returns the text of length 1 consisting of code-point cp.
func Chr(cp int) (*Str, error) {
	return FromCodepoints(cp)
}

// wrap creates a text value sharing r. r must not be modified afterwards.
func wrap(r []rune) *Str {
	return &Str{runes: r}
}

// runesOf returns the code-points of t, or nil for a nil Text.
func runesOf(t Text) []rune {
	if t == nil {
		return nil
	}
	if b := t.Base(); b != nil {
		return b.runes
	}
	return nil
}

// Base returns s itself.
func (s *Str) Base() *Str {
	return s
}

// TypeName is "str".
func (s *Str) TypeName() string {
	return "str"
}

// Len returns the number of code-points.
func (s *Str) Len() int {
	if s == nil {
		return 0
	}
	return len(s.runes)
}

func (s *Str) String() string {
	if s == nil {
		return ""
	}
	return string(s.runes)
}

// Runes returns a copy of the code-points of s.
func (s *Str) Runes() []rune {
	r := make([]rune, s.Len())
	if s != nil {
		copy(r, s.runes)
	}
	return r
}

// Repr returns s as a quoted literal with non-printable code-points escaped.
func (s *Str) Repr() string {
	if s == nil {
		return "''"
	}
	return escape.Repr(s.runes)
}

// Equal compares code-points of s and other.
func (s *Str) Equal(other Text) bool {
	return search.Equal(s.runesOrNil(), runesOf(other))
}

// Compare compares s and other lexicographically by code-point and returns
// -1, 0 or +1.
func (s *Str) Compare(other Text) int {
	return search.Compare(s.runesOrNil(), runesOf(other))
}

func (s *Str) runesOrNil() []rune {
	if s == nil {
		return nil
	}
	return s.runes
}

// --- Indexing and slicing --------------------------------------------------

// At returns the code-point at position i. Negative positions count from the
// end. Positions out of range result in ErrIndex.
func (s *Str) At(i int) (rune, error) {
	n := s.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %d", ErrIndex, i)
	}
	return s.runes[i], nil
}

// Slice returns s[start:stop]. Negative bounds count from the end, bounds
// out of range are clamped. None denotes an omitted bound.
func (s *Str) Slice(start, stop int) *Str {
	r, _ := s.SliceStep(start, stop, 1)
	return r
}

// SliceStep returns s[start:stop:step]. A negative step traverses s
// backwards. step may be None, meaning 1; a step of 0 results in ErrValue.
func (s *Str) SliceStep(start, stop, step int) (*Str, error) {
	if step == None {
		step = 1
	}
	if step == 0 {
		return nil, fmt.Errorf("%w: slice step cannot be zero", ErrValue)
	}
	n := s.Len()
	start, stop, length := adjustIndices(n, start, stop, step)
	if length == 0 {
		return empty, nil
	}
	if step == 1 {
		if start == 0 && stop == n {
			return s, nil
		}
		return wrap(s.runes[start:stop]), nil
	}
	r := make([]rune, length)
	for i, k := 0, start; i < length; i, k = i+1, k+step {
		r[i] = s.runes[k]
	}
	return wrap(r), nil
}

// adjustIndices clamps slice bounds for a sequence of length n and returns
// the effective bounds and the number of elements selected.
func adjustIndices(n, start, stop, step int) (int, int, int) {
	if start == None {
		if step < 0 {
			start = n - 1
		} else {
			start = 0
		}
	} else {
		start = clampIndex(start, n, step)
	}
	if stop == None {
		if step < 0 {
			stop = -1
		} else {
			stop = n
		}
	} else {
		stop = clampIndex(stop, n, step)
	}
	length := 0
	if step < 0 {
		if stop < start {
			length = (start-stop-1)/(-step) + 1
		}
	} else if start < stop {
		length = (stop-start-1)/step + 1
	}
	return start, stop, length
}

func clampIndex(i, n, step int) int {
	if i < 0 {
		i += n
		if i < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
	} else if i >= n {
		if step < 0 {
			return n - 1
		}
		return n
	}
	return i
}

// --- Concatenation ---------------------------------------------------------

// Add returns the concatenation of s and other.
func (s *Str) Add(other Text) *Str {
	o := runesOf(other)
	if len(o) == 0 {
		return wrap(s.runesOrNil())
	}
	r := make([]rune, s.Len()+len(o))
	copy(r, s.runesOrNil())
	copy(r[s.Len():], o)
	return wrap(r)
}

// Mul returns s repeated n times. For n <= 0 the result is empty. If the
// result would exceed the addressable length, ErrValue is returned.
func (s *Str) Mul(n int) (*Str, error) {
	if n <= 0 || s.Len() == 0 {
		return empty, nil
	}
	if n > math.MaxInt/s.Len() {
		return nil, fmt.Errorf("%w: cannot repeat text of length %d %d times", ErrValue, s.Len(), n)
	}
	r := make([]rune, 0, n*s.Len())
	for i := 0; i < n; i++ {
		r = append(r, s.runes...)
	}
	return wrap(r), nil
}

// Join concatenates items, with s between each of them.
func (s *Str) Join(items ...Text) *Str {
	buf := runebuf.Borrow()
	defer buf.Release()
	for i, item := range items {
		if i > 0 {
			buf.WriteRunes(s.runesOrNil())
		}
		buf.WriteRunes(runesOf(item))
	}
	return wrap(buf.Runes())
}

// Sum concatenates text values, starting with seed. All arguments must be
// text (Text or Go string); anything else results in ErrType.
func Sum(seed interface{}, items ...interface{}) (*Str, error) {
	buf := runebuf.Borrow()
	defer buf.Release()
	for i, x := range append([]interface{}{seed}, items...) {
		switch v := x.(type) {
		case Text:
			buf.WriteRunes(runesOf(v))
		case string:
			buf.WriteString(v)
		default:
			if i == 0 {
				return nil, fmt.Errorf("%w: cannot sum text with a start value of type %T", ErrType, x)
			}
			return nil, fmt.Errorf("%w: unsupported operand types for +: 'str' and '%T'", ErrType, x)
		}
	}
	tracer().Debugf("summed %d text values", len(items)+1)
	return wrap(buf.Runes()), nil
}
