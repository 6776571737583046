/*
Package codec converts between text and bytes under named encodings.

Supported encodings are

	utf-8            (aliases utf8, u8)
	ascii            (alias us-ascii)
	latin-1          (aliases latin1, l1, iso-8859-1)
	unicode-escape
	any single-byte charset registered with IANA, e.g. cp1252, iso-8859-15, koi8-r

Names are compared case-insensitively, with '_' and ' ' equivalent to '-'.

Every conversion takes the name of an error policy: "strict" (the default
for an empty name), "ignore", "replace" or "backslashreplace". An unknown
policy name is reported only if a conversion error actually occurs.

Units are converted one at a time, which lets a policy act on exactly the
offending code-point or byte.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/pystr/escape"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// tracer traces with key 'pystr.codec'.
func tracer() tracing.Trace {
	return tracing.Select("pystr.codec")
}

// Codec encodes and decodes text under a single encoding.
type Codec interface {
	Name() string
	Encode(text []rune, errors string) ([]byte, error)
	Decode(b []byte, errors string) ([]rune, error)
}

var aliases = map[string]string{
	"utf8":           "utf-8",
	"u8":             "utf-8",
	"utf":            "utf-8",
	"us-ascii":       "ascii",
	"646":            "ascii",
	"latin1":         "latin-1",
	"l1":             "latin-1",
	"iso-8859-1":     "latin-1",
	"iso8859-1":      "latin-1",
	"8859":           "latin-1",
	"cp1252":         "windows-1252",
	"unicodeescape":  "unicode-escape",
	"unicode-escape": "unicode-escape",
}

// NormalizeName returns the canonical name for an encoding name.
func NormalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", "-", " ", "-").Replace(n)
	if a, ok := aliases[n]; ok {
		return a
	}
	return n
}

// Lookup finds the codec for an encoding name.
func Lookup(name string) (Codec, error) {
	n := NormalizeName(name)
	switch n {
	case "utf-8":
		return utf8Codec{}, nil
	case "ascii":
		return asciiCodec{}, nil
	case "latin-1":
		return charmapCodec{name: "latin-1", cmap: charmap.ISO8859_1, limit: "ordinal not in range(256)"}, nil
	case "unicode-escape":
		return unicodeEscapeCodec{}, nil
	}
	enc, err := ianaindex.IANA.Encoding(n)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	cmap, ok := enc.(*charmap.Charmap)
	if !ok {
		tracer().Infof("encoding %s is registered, but not a single-byte charset", n)
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	return charmapCodec{name: n, cmap: cmap, limit: "character maps to <undefined>"}, nil
}

// Encode converts text to bytes.
func Encode(text []rune, encoding, errors string) ([]byte, error) {
	c, err := Lookup(encoding)
	if err != nil {
		return nil, err
	}
	return c.Encode(text, errors)
}

// Decode converts bytes to text.
func Decode(b []byte, encoding, errors string) ([]rune, error) {
	c, err := Lookup(encoding)
	if err != nil {
		return nil, err
	}
	return c.Decode(b, errors)
}

// --- utf-8 -----------------------------------------------------------------

type utf8Codec struct{}

func (utf8Codec) Name() string { return "utf-8" }

func (c utf8Codec) Encode(text []rune, errors string) ([]byte, error) {
	out := make([]byte, 0, len(text))
	for i, r := range text {
		if !utf8.ValidRune(r) {
			repl, err := encodeFailure(errors, c.Name(), text, i, "surrogates not allowed")
			if err != nil {
				return nil, err
			}
			out = append(out, repl...)
			continue
		}
		out = utf8.AppendRune(out, r)
	}
	return out, nil
}

func (c utf8Codec) Decode(b []byte, errors string) ([]rune, error) {
	out := make([]rune, 0, len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r != utf8.RuneError || size > 1 {
			out = append(out, r)
			i += size
			continue
		}
		n, reason := utf8Invalid(b[i:])
		repl, err := decodeFailure(errors, c.Name(), b, i, i+n, reason)
		if err != nil {
			return nil, err
		}
		out = append(out, repl...)
		i += n
	}
	return out, nil
}

// utf8Invalid explains why b does not start with a valid UTF-8 sequence. It
// returns the length of the maximal subpart of an ill-formed sequence, which
// is replaced as a single unit.
func utf8Invalid(b []byte) (int, string) {
	c := b[0]
	n, lo, hi := 0, byte(0x80), byte(0xbf)
	switch {
	case c >= 0xc2 && c <= 0xdf:
		n = 2
	case c == 0xe0:
		n, lo = 3, 0xa0
	case c == 0xed:
		n, hi = 3, 0x9f
	case c >= 0xe1 && c <= 0xef:
		n = 3
	case c == 0xf0:
		n, lo = 4, 0x90
	case c == 0xf4:
		n, hi = 4, 0x8f
	case c >= 0xf1 && c <= 0xf3:
		n = 4
	default:
		return 1, "invalid start byte"
	}
	for k := 1; k < n; k++ {
		if k >= len(b) {
			return k, "unexpected end of data"
		}
		if b[k] < lo || b[k] > hi {
			return k, "invalid continuation byte"
		}
		lo, hi = 0x80, 0xbf
	}
	return n, "invalid continuation byte"
}

// --- ascii -----------------------------------------------------------------

type asciiCodec struct{}

func (asciiCodec) Name() string { return "ascii" }

func (c asciiCodec) Encode(text []rune, errors string) ([]byte, error) {
	out := make([]byte, 0, len(text))
	for i, r := range text {
		if r < 0 || r >= 0x80 {
			repl, err := encodeFailure(errors, c.Name(), text, i, "ordinal not in range(128)")
			if err != nil {
				return nil, err
			}
			out = append(out, repl...)
			continue
		}
		out = append(out, byte(r))
	}
	return out, nil
}

func (c asciiCodec) Decode(b []byte, errors string) ([]rune, error) {
	out := make([]rune, 0, len(b))
	for i, x := range b {
		if x >= 0x80 {
			repl, err := decodeFailure(errors, c.Name(), b, i, i+1, "ordinal not in range(128)")
			if err != nil {
				return nil, err
			}
			out = append(out, repl...)
			continue
		}
		out = append(out, rune(x))
	}
	return out, nil
}

// --- single-byte charsets --------------------------------------------------

type charmapCodec struct {
	name  string
	cmap  *charmap.Charmap
	limit string // reason for unencodable code-points
}

func (c charmapCodec) Name() string { return c.name }

func (c charmapCodec) Encode(text []rune, errors string) ([]byte, error) {
	out := make([]byte, 0, len(text))
	for i, r := range text {
		x, ok := c.cmap.EncodeRune(r)
		if !ok {
			repl, err := encodeFailure(errors, c.name, text, i, c.limit)
			if err != nil {
				return nil, err
			}
			out = append(out, repl...)
			continue
		}
		out = append(out, x)
	}
	return out, nil
}

func (c charmapCodec) Decode(b []byte, errors string) ([]rune, error) {
	out := make([]rune, 0, len(b))
	for i, x := range b {
		r := c.cmap.DecodeByte(x)
		if r == utf8.RuneError {
			repl, err := decodeFailure(errors, c.name, b, i, i+1, "character maps to <undefined>")
			if err != nil {
				return nil, err
			}
			out = append(out, repl...)
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// --- unicode-escape --------------------------------------------------------

type unicodeEscapeCodec struct{}

func (unicodeEscapeCodec) Name() string { return "unicode-escape" }

func (unicodeEscapeCodec) Encode(text []rune, errors string) ([]byte, error) {
	return escape.Encode(text), nil
}

func (c unicodeEscapeCodec) Decode(b []byte, errors string) ([]rune, error) {
	return escape.Decode(b, func(start, end int, reason string) ([]rune, error) {
		return decodeFailure(errors, c.Name(), b, start, end, reason)
	})
}
