package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNormalizeName(t *testing.T) {
	names := map[string]string{
		"UTF8":           "utf-8",
		"utf_8":          "utf-8",
		"U8":             "utf-8",
		"Latin_1":        "latin-1",
		"l1":             "latin-1",
		"US-ASCII":       "ascii",
		"unicode_escape": "unicode-escape",
		"CP1252":         "windows-1252",
		" ISO 8859 15 ":  "iso-8859-15",
		"koi8_r":         "koi8-r",
	}
	for in, out := range names {
		if n := NormalizeName(in); n != out {
			t.Errorf("expected %q to normalize to %q, have %q", in, out, n)
		}
	}
}

func TestLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pystr.codec")
	defer teardown()
	//
	for _, name := range []string{"utf-8", "ascii", "latin1", "unicode_escape", "cp1252", "ISO-8859-15", "koi8-r"} {
		if _, err := Lookup(name); err != nil {
			t.Errorf("expected encoding %q to be found, have %v", name, err)
		}
	}
	for _, name := range []string{"no-such-codec", "", "utf-16"} {
		if _, err := Lookup(name); !errors.Is(err, ErrUnknownEncoding) {
			t.Errorf("expected encoding %q to be unknown, have %v", name, err)
		}
	}
}

func TestEncodeASCII(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pystr.codec")
	defer teardown()
	//
	b, err := Encode([]rune("ß"), "ascii", "ignore")
	if err != nil || len(b) != 0 {
		t.Errorf("expected empty result, have %q (%v)", b, err)
	}
	b, _ = Encode([]rune("aßb"), "ascii", "replace")
	if string(b) != "a?b" {
		t.Errorf("expected 'a?b', have %q", b)
	}
	b, _ = Encode([]rune("aß€"), "ascii", "backslashreplace")
	if string(b) != `a\xdf\u20ac` {
		t.Errorf(`expected 'a\xdf\u20ac', have %q`, b)
	}
	_, err = Encode([]rune("xß"), "ascii", "")
	var cerr *Error
	if !errors.As(err, &cerr) || !errors.Is(err, ErrEncode) {
		t.Fatalf("expected encode error, have %v", err)
	}
	if cerr.Start != 1 || cerr.Encoding != "ascii" {
		t.Errorf("unexpected error details: %+v", cerr)
	}
	t.Logf("error message: %v", err)
}

func TestUnknownPolicyOnlyOnError(t *testing.T) {
	if _, err := Encode([]rune("abc"), "ascii", "bogus"); err != nil {
		t.Errorf("expected unknown policy to be ignored without errors, have %v", err)
	}
	if _, err := Encode([]rune("äbc"), "ascii", "bogus"); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("expected unknown policy error, have %v", err)
	}
}

func TestDecodeUTF8(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pystr.codec")
	defer teardown()
	//
	r, err := Decode([]byte("pythôn"), "utf-8", "")
	if err != nil || string(r) != "pythôn" {
		t.Errorf("expected 'pythôn', have %q (%v)", string(r), err)
	}
	r, err = Decode([]byte("pythôn"), "ascii", "ignore")
	if err != nil || string(r) != "pythn" {
		t.Errorf("expected 'pythn', have %q (%v)", string(r), err)
	}
	bad := []byte{'a', 0xff, 'b', 0xe2, 0x82}
	r, _ = Decode(bad, "utf-8", "replace")
	if string(r) != "a�b�" {
		t.Errorf("expected replacement characters, have %q", string(r))
	}
	r, _ = Decode(bad, "utf8", "backslashreplace")
	if string(r) != `a\xffb\xe2\x82` {
		t.Errorf("expected backslash escapes, have %q", string(r))
	}
	_, err = Decode(bad, "utf-8", "strict")
	var cerr *Error
	if !errors.As(err, &cerr) || !errors.Is(err, ErrDecode) || cerr.Start != 1 {
		t.Errorf("expected decode error at position 1, have %v", err)
	}
	if cerr != nil && cerr.Reason != "invalid start byte" {
		t.Errorf("expected 'invalid start byte', have %q", cerr.Reason)
	}
}

func TestDecodeUTF8MaximalSubpart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pystr.codec")
	defer teardown()
	//
	tests := []struct {
		in         []byte
		replaced   string
		start, end int
		reason     string
	}{
		{[]byte{0xe2, 0x82, 'A'}, "\ufffdA", 0, 2, "invalid continuation byte"},
		{[]byte{0xe0, 0x80, 0x80}, "\ufffd\ufffd\ufffd", 0, 1, "invalid continuation byte"},
		{[]byte{0xed, 0xa0, 0x80}, "\ufffd\ufffd\ufffd", 0, 1, "invalid continuation byte"},
		{[]byte{0xf0, 0x9f, 0x98}, "\ufffd", 0, 3, "unexpected end of data"},
		{[]byte{0xf4, 0x90, 0x80, 0x80}, "\ufffd\ufffd\ufffd\ufffd", 0, 1, "invalid continuation byte"},
		{[]byte{0xc0, 0xaf}, "\ufffd\ufffd", 0, 1, "invalid start byte"},
		{[]byte{'x', 0xf0, 0x9f, 0x98, 0x80, 0xf0, 0x9f}, "x\U0001f600\ufffd", 5, 7, "unexpected end of data"},
	}
	for _, tt := range tests {
		r, err := Decode(tt.in, "utf-8", "replace")
		if err != nil || string(r) != tt.replaced {
			t.Errorf("% x: expected %q, have %q (%v)", tt.in, tt.replaced, string(r), err)
		}
		_, err = Decode(tt.in, "utf-8", "strict")
		var cerr *Error
		if !errors.As(err, &cerr) {
			t.Errorf("% x: expected decode error, have %v", tt.in, err)
			continue
		}
		if cerr.Start != tt.start || cerr.End != tt.end || cerr.Reason != tt.reason {
			t.Errorf("% x: expected %d..%d %q, have %d..%d %q", tt.in, tt.start, tt.end, tt.reason,
				cerr.Start, cerr.End, cerr.Reason)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		text, encoding string
	}{
		{"Hello, World!", "ascii"},
		{"Größe € 😀", "utf-8"},
		{"Größe", "latin-1"},
		{"Größe €", "cp1252"},
		{"Größe €", "iso-8859-15"},
		{"Привет", "koi8-r"},
		{"tab\there \\ é\x00 😀", "unicode-escape"},
	}
	for _, tt := range tests {
		b, err := Encode([]rune(tt.text), tt.encoding, "strict")
		if err != nil {
			t.Errorf("%s: cannot encode %q: %v", tt.encoding, tt.text, err)
			continue
		}
		r, err := Decode(b, tt.encoding, "strict")
		if err != nil || string(r) != tt.text {
			t.Errorf("%s: round trip of %q failed: %q (%v)", tt.encoding, tt.text, string(r), err)
		}
	}
}

func TestCharmapLimits(t *testing.T) {
	b, err := Encode([]rune("a€"), "latin-1", "replace")
	if err != nil || !bytes.Equal(b, []byte("a?")) {
		t.Errorf("expected 'a?', have %q (%v)", b, err)
	}
	b, _ = Encode([]rune("€"), "cp1252", "")
	if !bytes.Equal(b, []byte{0x80}) {
		t.Errorf("expected euro sign at 0x80 in cp1252, have %v", b)
	}
}

func TestUnicodeEscape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pystr.codec")
	defer teardown()
	//
	r, err := Decode([]byte(`a\nb\tc\'\"\b`), "unicode-escape", "")
	if err != nil || string(r) != "a\nb\tc'\"\b" {
		t.Errorf("unexpected decoding %q (%v)", string(r), err)
	}
	_, err = Decode([]byte(`\x4`), "unicode-escape", "strict")
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected decode error for truncated escape, have %v", err)
	}
	r, err = Decode([]byte(`a\x4`), "unicode-escape", "ignore")
	if err != nil || string(r) != "a" {
		t.Errorf("expected 'a', have %q (%v)", string(r), err)
	}
}
