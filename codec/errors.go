package codec

import (
	"errors"
	"fmt"
)

// Sentinel errors of package codec. Errors returned by Encode and Decode wrap
// one of these; clients should check with errors.Is.
var (
	ErrEncode          = errors.New("unicode encode error")
	ErrDecode          = errors.New("unicode decode error")
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrUnknownPolicy   = errors.New("unknown error handler name")
)

// Error describes a unit which could not be encoded or decoded under a
// strict error policy. Start and End are positions of the offending unit,
// in code-points for encoding and in bytes for decoding.
type Error struct {
	Encoding   string
	Start, End int
	Reason     string
	Object     string // the offending code-point or byte, escaped
	decoding   bool
}

func (e *Error) Error() string {
	verb, what := "encode", "character"
	if e.decoding {
		verb, what = "decode", "byte"
	}
	if e.End-e.Start > 1 {
		return fmt.Sprintf("'%s' codec can't %s %ss in position %d-%d: %s",
			e.Encoding, verb, what, e.Start, e.End-1, e.Reason)
	}
	return fmt.Sprintf("'%s' codec can't %s %s %s in position %d: %s",
		e.Encoding, verb, what, e.Object, e.Start, e.Reason)
}

// Unwrap returns ErrEncode or ErrDecode.
func (e *Error) Unwrap() error {
	if e.decoding {
		return ErrDecode
	}
	return ErrEncode
}
