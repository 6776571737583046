package pystr

import (
	"errors"
	"testing"

	"github.com/npillmayer/pystr/codec"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEncodeDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pystr")
	defer teardown()
	//
	b, err := New("ß").Encode("ascii", "ignore")
	if err != nil || b.Len() != 0 || b.Repr() != "b''" {
		t.Errorf("expected b'', have %s (%v)", b, err)
	}
	b, err = NewBytes(New("pythôn"), "utf-8", "")
	if err != nil {
		t.Fatal(err)
	}
	if b.Repr() != `b'pyth\xc3\xb4n'` {
		t.Errorf("unexpected bytes %s", b)
	}
	s, err := FromBytes(b, "ascii", "ignore")
	if err != nil || s.String() != "pythn" {
		t.Errorf(`expected "pythn", have %q (%v)`, s, err)
	}
	s, _ = b.Decode("", "")
	if s.String() != "pythôn" {
		t.Errorf(`expected "pythôn", have %q`, s)
	}
	if _, err = New("ß").Encode("ascii", "strict"); !errors.Is(err, codec.ErrEncode) {
		t.Errorf("expected encode error, have %v", err)
	}
	if _, err = FromBytes(b, "ascii", "strict"); !errors.Is(err, codec.ErrDecode) {
		t.Errorf("expected decode error, have %v", err)
	}
}

func TestEncodingRequired(t *testing.T) {
	if _, err := NewBytes(New("abc"), "", ""); !errors.Is(err, ErrType) {
		t.Errorf("expected missing encoding to be rejected, have %v", err)
	}
	if _, err := FromBytes(BytesOf([]byte("abc")), "", ""); !errors.Is(err, ErrType) {
		t.Errorf("expected missing encoding to be rejected, have %v", err)
	}
	if _, err := NewBytes(New("abc"), "klingon", ""); !errors.Is(err, codec.ErrUnknownEncoding) {
		t.Errorf("expected unknown encoding, have %v", err)
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	for _, in := range []string{"", "abc", "Hello, World!\n", "\x00\x7f~"} {
		b, err := New(in).Encode("ascii", "strict")
		if err != nil {
			t.Errorf("cannot encode %q: %v", in, err)
			continue
		}
		s, err := b.Decode("ascii", "strict")
		if err != nil || s.String() != in {
			t.Errorf("round trip of %q failed: %q (%v)", in, s, err)
		}
	}
}

func TestDecodeUnicodeEscape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pystr")
	defer teardown()
	//
	s, err := DecodeText(New(`a\nb\tc\'d\"e\bf`), "unicode-escape", "")
	if err != nil || s.String() != "a\nb\tc'd\"e\bf" {
		t.Errorf("unexpected decoding %q (%v)", s, err)
	}
	if _, err = DecodeText(New(`\ud800`), "unicode-escape", ""); !errors.Is(err, codec.ErrDecode) {
		t.Errorf("expected surrogate escape to be rejected, have %v", err)
	}
	b, _ := New("tab\t€").Encode("unicode_escape", "")
	if string(b.Bytes()) != `tab\t\u20ac` {
		t.Errorf(`expected 'tab\t\u20ac', have %s`, b)
	}
}

func TestBytesRepr(t *testing.T) {
	tests := []struct {
		in   []byte
		repr string
	}{
		{[]byte("abc"), `b'abc'`},
		{[]byte("it's"), `b"it's"`},
		{[]byte{0, '\n', 0xff, '\\'}, `b'\x00\n\xff\\'`},
	}
	for _, tt := range tests {
		if r := BytesOf(tt.in).Repr(); r != tt.repr {
			t.Errorf("expected %s, have %s", tt.repr, r)
		}
	}
	if BytesOf([]byte{0xca, 0xfe}).Hex() != "cafe" {
		t.Errorf("hex conversion failed")
	}
}
