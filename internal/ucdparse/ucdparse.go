/*
Package ucdparse provides a parser for Unicode Character Database files.

The format of UCD property files is defined in http://www.unicode.org/reports/tr44/.
Every data line holds a code-point or a range of code-points, followed by
semicolon-separated fields and an optional comment:

	2000..200A    ; White_Space # Zs  [11] EN QUAD..HAIR SPACE

See http://www.unicode.org/Public/UCD/latest/ucd/ for example files.
*/
package ucdparse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pystr.ucdparse'.
func tracer() tracing.Trace {
	return tracing.Select("pystr.ucdparse")
}

// Token holds the content of a single data line.
type Token struct {
	LineNo   int
	runeFrom rune     // first/single rune
	runeTo   rune     // final rune of range (may be identical to runeFrom)
	Fields   []string // fields following the code-point column, trimmed
	Comment  string   // rest-of-line comment
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d %#U..%#U %#v]", token.LineNo, token.runeFrom,
		token.runeTo, token.Fields)
}

// Field gets field #i (1…n) from the data item.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}

// Parse iterates over each data line of r and calls f for it. Empty lines and
// comment lines are skipped.
func Parse(r io.Reader, f func(token *Token)) error {
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		token, err := parseLine(line, lineno)
		if err != nil {
			return err
		}
		f(token)
	}
	return sc.Err()
}

func parseLine(line string, lineno int) (*Token, error) {
	token := &Token{LineNo: lineno}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		token.Comment = strings.TrimSpace(line[i+1:])
		line = line[:i]
	}
	fields := strings.Split(line, ";")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	from, to := fields[0], fields[0]
	if i := strings.Index(fields[0], ".."); i >= 0 {
		from, to = fields[0][:i], fields[0][i+2:]
	}
	var err error
	if token.runeFrom, err = parseRune(from); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineno, err)
	}
	if token.runeTo, err = parseRune(to); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineno, err)
	}
	if token.runeTo < token.runeFrom {
		return nil, fmt.Errorf("line %d: invalid range %s", lineno, fields[0])
	}
	token.Fields = fields[1:]
	return token, nil
}

func parseRune(hex string) (rune, error) {
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	return rune(n), nil
}
