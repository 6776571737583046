/*
Package escape converts between text and its escaped, printable spelling.

Repr renders a sequence of code-points as a quoted literal, the way an
interactive interpreter would print a string value. Encode and Decode
implement the "unicode-escape" codec: text is represented by 7-bit bytes,
with every other code-point spelled as a backslash sequence.

Decoding is restricted to the escape grammar

	\\  \'  \"  \a  \b  \f  \n  \r  \t  \v  \ooo  \xhh  \uXXXX  \UXXXXXXXX

A backslash followed by any other character is kept literally. Malformed
escapes, including escapes of surrogate code-points, are reported to an
ErrorHandler, which decides whether decoding continues.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package escape

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pystr/ucd"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pystr.escape'.
func tracer() tracing.Trace {
	return tracing.Select("pystr.escape")
}

// Code-points with a short, named escape sequence.
var escapeMap = map[rune]string{
	'\\': `\\`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
}

// Repr returns a quoted literal for text. Single quotes are used unless
// text contains a single quote but no double quote.
func Repr(text []rune) string {
	quote := '\''
	if containsRune(text, '\'') && !containsRune(text, '"') {
		quote = '"'
	}
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteRune(quote)
	for _, r := range text {
		if r == quote {
			b.WriteByte('\\')
			b.WriteRune(r)
		} else if esc, ok := escapeMap[r]; ok {
			b.WriteString(esc)
		} else if r < 0x80 && (r < 0x20 || r == 0x7f) {
			fmt.Fprintf(&b, `\x%02x`, r)
		} else if r < 0x80 || ucd.IsPrintable(r) {
			b.WriteRune(r)
		} else {
			writeHex(&b, r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}

// writeHex writes the shortest of \xhh, \uXXXX and \UXXXXXXXX for r.
func writeHex(b *strings.Builder, r rune) {
	switch {
	case r < 0x100:
		fmt.Fprintf(b, `\x%02x`, r)
	case r < 0x10000:
		fmt.Fprintf(b, `\u%04x`, r)
	default:
		fmt.Fprintf(b, `\U%08x`, r)
	}
}

func containsRune(text []rune, r rune) bool {
	for _, c := range text {
		if c == r {
			return true
		}
	}
	return false
}

// --- unicode-escape --------------------------------------------------------

// Encode spells text in the unicode-escape encoding. Printable ASCII is
// copied, every other code-point is escaped. Encoding never fails.
func Encode(text []rune) []byte {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if esc, ok := escapeMap[r]; ok {
			b.WriteString(esc)
		} else if r >= 0x20 && r < 0x7f {
			b.WriteByte(byte(r))
		} else {
			writeHex(&b, r)
		}
	}
	return []byte(b.String())
}

// ErrorHandler is called by Decode for a malformed escape covering input
// bytes [start, end). It returns code-points to substitute, possibly none,
// or an error to abort decoding.
type ErrorHandler func(start, end int, reason string) ([]rune, error)

var simpleEscapes = map[byte]rune{
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
}

// Number of hex digits following \x, \u and \U.
var hexLen = map[byte]int{'x': 2, 'u': 4, 'U': 8}

// Decode interprets the backslash escapes in b. Bytes outside of escapes
// are decoded as Latin-1. If onError is nil, the first malformed escape
// aborts decoding with an error.
func Decode(b []byte, onError ErrorHandler) ([]rune, error) {
	out := make([]rune, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		if c != '\\' {
			out = append(out, rune(c))
			i++
			continue
		}
		if i+1 >= len(b) {
			repl, err := handle(onError, i, len(b), `\ at end of string`)
			if err != nil {
				return nil, err
			}
			out = append(out, repl...)
			break
		}
		e := b[i+1]
		if r, ok := simpleEscapes[e]; ok {
			out = append(out, r)
			i += 2
			continue
		}
		switch e {
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j, v := i+1, rune(0)
			for ; j < len(b) && j < i+4 && b[j] >= '0' && b[j] <= '7'; j++ {
				v = v<<3 | rune(b[j]-'0')
			}
			out = append(out, v)
			i = j
		case 'x', 'u', 'U':
			n := hexLen[e]
			v, j, ok := hexDigits(b, i+2, n)
			reason := ""
			if !ok {
				reason = fmt.Sprintf(`truncated \%c%s escape`, e, strings.Repeat("X", n))
			} else if v > 0x10ffff {
				reason = `illegal Unicode character`
			} else if v >= 0xd800 && v <= 0xdfff {
				reason = `surrogates not allowed`
			}
			if reason != "" {
				repl, err := handle(onError, i, j, reason)
				if err != nil {
					return nil, err
				}
				out = append(out, repl...)
			} else {
				out = append(out, v)
			}
			i = j
		default: // unknown escape stays literal
			out = append(out, '\\')
			i++
		}
	}
	return out, nil
}

// hexDigits reads up to n hex digits starting at b[i]. It returns the value,
// the position after the last digit consumed and whether n digits were found.
func hexDigits(b []byte, i, n int) (rune, int, bool) {
	v := rune(0)
	j := i
	for ; j < len(b) && j < i+n; j++ {
		d := hexValue(b[j])
		if d < 0 {
			return v, j, false
		}
		v = v<<4 | rune(d)
	}
	return v, j, j == i+n
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// MalformedError is returned by Decode for a malformed escape when no error
// handler is set.
type MalformedError struct {
	Start, End int
	Reason     string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("can't decode bytes in position %d-%d: %s", e.Start, e.End-1, e.Reason)
}

func handle(onError ErrorHandler, start, end int, reason string) ([]rune, error) {
	tracer().Debugf("malformed escape at %d..%d: %s", start, end, reason)
	if onError == nil {
		return nil, &MalformedError{Start: start, End: end, Reason: reason}
	}
	return onError(start, end, reason)
}
