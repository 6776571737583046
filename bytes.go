package pystr

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/npillmayer/pystr/codec"
)

// Bytes is an immutable sequence of bytes, the result of encoding text.
type Bytes struct {
	b []byte
}

// BytesOf creates a byte value from a copy of b.
func BytesOf(b []byte) Bytes {
	c := make([]byte, len(b))
	copy(c, b)
	return Bytes{b: c}
}

// NewBytes encodes text under encoding. An encoding has to be given,
// otherwise ErrType is returned. errors names the error policy, with ""
// meaning "strict".
func NewBytes(text Text, encoding, errors string) (Bytes, error) {
	if encoding == "" {
		return Bytes{}, fmt.Errorf("%w: string argument without an encoding", ErrType)
	}
	b, err := codec.Encode(runesOf(text), encoding, errors)
	if err != nil {
		return Bytes{}, err
	}
	return Bytes{b: b}, nil
}

// FromBytes decodes b under encoding. An encoding has to be given,
// otherwise ErrType is returned.
func FromBytes(b Bytes, encoding, errors string) (*Str, error) {
	if encoding == "" {
		return nil, fmt.Errorf("%w: decoding bytes requires an encoding", ErrType)
	}
	return b.Decode(encoding, errors)
}

// DecodeText decodes a text argument: text is encoded as UTF-8 first, then
// decoded under encoding. This is mostly useful with "unicode-escape".
func DecodeText(text Text, encoding, errors string) (*Str, error) {
	b, err := codec.Encode(runesOf(text), "utf-8", "strict")
	if err != nil {
		return nil, err
	}
	return Bytes{b: b}.Decode(encoding, errors)
}

// Encode encodes s under encoding, with "utf-8" as default for an empty name.
func (s *Str) Encode(encoding, errors string) (Bytes, error) {
	if encoding == "" {
		encoding = "utf-8"
	}
	return NewBytes(s, encoding, errors)
}

// Decode decodes b under encoding, with "utf-8" as default for an empty
// name.
func (b Bytes) Decode(encoding, errors string) (*Str, error) {
	if encoding == "" {
		encoding = "utf-8"
	}
	r, err := codec.Decode(b.b, encoding, errors)
	if err != nil {
		tracer().Debugf("decoding failed: %v", err)
		return nil, err
	}
	return wrap(r), nil
}

// Len returns the number of bytes.
func (b Bytes) Len() int {
	return len(b.b)
}

// Bytes returns a copy of the bytes of b.
func (b Bytes) Bytes() []byte {
	c := make([]byte, len(b.b))
	copy(c, b.b)
	return c
}

// Equal compares b and other byte-wise.
func (b Bytes) Equal(other Bytes) bool {
	return string(b.b) == string(other.b)
}

// Hex returns the bytes of b as hexadecimal digits.
func (b Bytes) Hex() string {
	return hex.EncodeToString(b.b)
}

// Repr returns b as a bytes literal, e.g. b'caf\xc3\xa9'.
func (b Bytes) Repr() string {
	quote := byte('\'')
	if strings.IndexByte(string(b.b), '\'') >= 0 && strings.IndexByte(string(b.b), '"') < 0 {
		quote = '"'
	}
	var sb strings.Builder
	sb.WriteByte('b')
	sb.WriteByte(quote)
	for _, c := range b.b {
		switch {
		case c == quote || c == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c < 0x20 || c >= 0x7f:
			fmt.Fprintf(&sb, `\x%02x`, c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}

func (b Bytes) String() string {
	return b.Repr()
}
