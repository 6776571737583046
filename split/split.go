/*
Package split breaks sequences of code-points into fields or lines.

Three kinds of splitting are supported:

	Fields  – runs of whitespace separate fields; no empty fields result
	Split   – every literal occurrence of a separator separates fields
	Lines   – line boundaries separate lines

Lines recognizes every line boundary of package ucd, i.e. "\n", "\r", "\v",
"\f", the ASCII file/group/record separators, U+0085, U+2028 and U+2029.
A "\r\n" pair counts as a single boundary.

All fields returned share the backing array of the input text.

*/
package split

import (
	"errors"

	"github.com/npillmayer/pystr/search"
	"github.com/npillmayer/pystr/ucd"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pystr.split'.
func tracer() tracing.Trace {
	return tracing.Select("pystr.split")
}

// ErrEmptySeparator is returned when splitting at an empty separator.
var ErrEmptySeparator = errors.New("empty separator")

// Fields splits text at runs of whitespace. Leading and trailing whitespace
// does not produce empty fields. If maxsplit >= 0, at most maxsplit splits
// are performed and the remainder, starting at its first non-whitespace
// character, is returned as the last field.
func Fields(text []rune, maxsplit int) [][]rune {
	var fields [][]rune
	i, n := 0, len(text)
	for remaining := maxsplit; remaining != 0; remaining-- {
		for i < n && ucd.IsSpace(text[i]) {
			i++
		}
		if i == n {
			break
		}
		j := i
		for i < n && !ucd.IsSpace(text[i]) {
			i++
		}
		fields = append(fields, text[j:i])
	}
	if i < n { // maxsplit reached
		for i < n && ucd.IsSpace(text[i]) {
			i++
		}
		if i < n {
			fields = append(fields, text[i:])
		}
	}
	return fields
}

// RFields is like Fields, but splits are counted from the right. The
// remainder keeps its leading whitespace.
func RFields(text []rune, maxsplit int) [][]rune {
	var fields [][]rune
	i := len(text) - 1
	for remaining := maxsplit; remaining != 0; remaining-- {
		for i >= 0 && ucd.IsSpace(text[i]) {
			i--
		}
		if i < 0 {
			break
		}
		j := i
		for i >= 0 && !ucd.IsSpace(text[i]) {
			i--
		}
		fields = append(fields, text[i+1:j+1])
	}
	if i >= 0 {
		for i >= 0 && ucd.IsSpace(text[i]) {
			i--
		}
		if i >= 0 {
			fields = append(fields, text[:i+1])
		}
	}
	reverse(fields)
	return fields
}

// Split splits text at every occurrence of sep. Adjacent separators result
// in empty fields. If maxsplit >= 0, at most maxsplit splits are performed.
func Split(text, sep []rune, maxsplit int) ([][]rune, error) {
	if len(sep) == 0 {
		return nil, ErrEmptySeparator
	}
	var fields [][]rune
	i := 0
	for remaining := maxsplit; remaining != 0; remaining-- {
		k := search.Find(text[i:], sep)
		if k < 0 {
			break
		}
		fields = append(fields, text[i:i+k])
		i += k + len(sep)
	}
	return append(fields, text[i:]), nil
}

// RSplit is like Split, but splits are counted from the right.
func RSplit(text, sep []rune, maxsplit int) ([][]rune, error) {
	if len(sep) == 0 {
		return nil, ErrEmptySeparator
	}
	var fields [][]rune
	j := len(text)
	for remaining := maxsplit; remaining != 0; remaining-- {
		k := search.RFind(text[:j], sep)
		if k < 0 {
			break
		}
		fields = append(fields, text[k+len(sep):j])
		j = k
	}
	fields = append(fields, text[:j])
	reverse(fields)
	return fields, nil
}

// Lines splits text at line boundaries. If keepends is set, every line
// retains its terminating boundary. A boundary at the very end of text does
// not start another, empty, line.
func Lines(text []rune, keepends bool) [][]rune {
	var lines [][]rune
	i, j, n := 0, 0, len(text)
	for i < n {
		for i < n && !ucd.IsLineBoundary(text[i]) {
			i++
		}
		eol := i
		if i < n {
			if text[i] == '\r' && i+1 < n && text[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
			if keepends {
				eol = i
			}
		}
		lines = append(lines, text[j:eol])
		j = i
	}
	tracer().Debugf("split text of length %d into %d lines", n, len(lines))
	return lines
}

func reverse(fields [][]rune) {
	for i, j := 0, len(fields)-1; i < j; i, j = i+1, j-1 {
		fields[i], fields[j] = fields[j], fields[i]
	}
}
