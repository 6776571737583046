package codec

import (
	"fmt"
	"strings"
)

// Policy is a named strategy for handling units which cannot be encoded or
// decoded.
type Policy string

// Supported error policies.
const (
	Strict           Policy = "strict"           // fail with an *Error
	Ignore           Policy = "ignore"           // drop the unit
	Replace          Policy = "replace"          // substitute '?' or U+FFFD
	BackslashReplace Policy = "backslashreplace" // substitute a backslash escape
)

// policyFor resolves a policy name. The empty name selects Strict.
func policyFor(name string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return Strict, nil
	case Strict, Ignore, Replace, BackslashReplace:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// encodeFailure handles an unencodable code-point at position pos. It
// returns the bytes to substitute.
func encodeFailure(policy string, encoding string, text []rune, pos int, reason string) ([]byte, error) {
	p, err := policyFor(policy)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("%s: cannot encode %U at %d, policy=%s", encoding, text[pos], pos, p)
	switch p {
	case Ignore:
		return nil, nil
	case Replace:
		return []byte{'?'}, nil
	case BackslashReplace:
		return []byte(hexEscape(text[pos])), nil
	}
	return nil, &Error{
		Encoding: encoding,
		Start:    pos,
		End:      pos + 1,
		Reason:   reason,
		Object:   "'" + hexEscape(text[pos]) + "'",
	}
}

// decodeFailure handles undecodable bytes b[start:end]. It returns the
// code-points to substitute.
func decodeFailure(policy string, encoding string, b []byte, start, end int, reason string) ([]rune, error) {
	p, err := policyFor(policy)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("%s: cannot decode bytes %d..%d, policy=%s", encoding, start, end, p)
	switch p {
	case Ignore:
		return nil, nil
	case Replace:
		return []rune{0xfffd}, nil
	case BackslashReplace:
		var sb strings.Builder
		for _, c := range b[start:end] {
			fmt.Fprintf(&sb, `\x%02x`, c)
		}
		return []rune(sb.String()), nil
	}
	return nil, &Error{
		Encoding: encoding,
		Start:    start,
		End:      end,
		Reason:   reason,
		Object:   fmt.Sprintf("0x%02x", b[start]),
		decoding: true,
	}
}

func hexEscape(r rune) string {
	switch {
	case r < 0x100:
		return fmt.Sprintf(`\x%02x`, r)
	case r < 0x10000:
		return fmt.Sprintf(`\u%04x`, r)
	}
	return fmt.Sprintf(`\U%08x`, r)
}
