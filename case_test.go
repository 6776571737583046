package pystr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCaseMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pystr")
	defer teardown()
	//
	tests := []struct {
		in                                    string
		lower, upper, fold, capital, title, swap string
	}{
		{"hello World", "hello world", "HELLO WORLD", "hello world", "Hello world", "Hello World", "hELLO wORLD"},
		{"straße", "straße", "STRASSE", "strasse", "Straße", "Straße", "STRASSE"},
		{"ǆemal", "ǆemal", "ǄEMAL", "ǆemal", "ǅemal", "ǅemal", "ǄEMAL"},
		{"they're bill's", "they're bill's", "THEY'RE BILL'S", "they're bill's", "They're bill's", "They'Re Bill'S", "THEY'RE BILL'S"},
		{"", "", "", "", "", "", ""},
	}
	for i, tt := range tests {
		s := New(tt.in)
		if r := s.Lower().String(); r != tt.lower {
			t.Errorf("test #%d: expected lower %q, have %q", i, tt.lower, r)
		}
		if r := s.Upper().String(); r != tt.upper {
			t.Errorf("test #%d: expected upper %q, have %q", i, tt.upper, r)
		}
		if r := s.CaseFold().String(); r != tt.fold {
			t.Errorf("test #%d: expected casefold %q, have %q", i, tt.fold, r)
		}
		if r := s.Capitalize().String(); r != tt.capital {
			t.Errorf("test #%d: expected capitalize %q, have %q", i, tt.capital, r)
		}
		if r := s.Title().String(); r != tt.title {
			t.Errorf("test #%d: expected title %q, have %q", i, tt.title, r)
		}
		if r := s.SwapCase().String(); r != tt.swap {
			t.Errorf("test #%d: expected swapcase %q, have %q", i, tt.swap, r)
		}
	}
}

func TestCasePredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pystr")
	defer teardown()
	//
	tests := []struct {
		in           string
		upper, lower bool
		title        bool
	}{
		{"ABC", true, false, false},
		{"abc", false, true, false},
		{"Abc", false, false, true},
		{"ABC1 !", true, false, false},
		{"123", false, false, false},
		{"", false, false, false},
		{"ⰀⰁ", true, false, false}, // Glagolitic capitals
		{"ⰰ", false, true, false},
		{"Hello World", false, false, true},
		{"Hello world", false, false, false},
		{"ǅemal", false, false, true},
	}
	for _, tt := range tests {
		s := New(tt.in)
		if s.IsUpper() != tt.upper {
			t.Errorf("%q: expected isupper=%v", tt.in, tt.upper)
		}
		if s.IsLower() != tt.lower {
			t.Errorf("%q: expected islower=%v", tt.in, tt.lower)
		}
		if s.IsTitle() != tt.title {
			t.Errorf("%q: expected istitle=%v", tt.in, tt.title)
		}
	}
}

func TestIdentifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pystr")
	defer teardown()
	//
	valid := []string{"a", "Z", "_", "b0", "bc", "b_", "µ", "𝔘𝔫𝔦𝔠𝔬𝔡𝔢", "André", "안녕하세요", "_private"}
	for _, id := range valid {
		if !New(id).IsIdentifier() {
			t.Errorf("expected %q to be an identifier", id)
		}
	}
	invalid := []string{"", " ", "[", "©", "0", "1abc", "a b", "a-b", "a.b", "a "}
	for _, id := range invalid {
		if New(id).IsIdentifier() {
			t.Errorf("expected %q not to be an identifier", id)
		}
	}
}

func TestClassPredicates(t *testing.T) {
	tests := []struct {
		in                                                   string
		ascii, space, alpha, alnum, decimal, digit, numeric bool
		printable                                            bool
	}{
		{"", true, false, false, false, false, false, false, true},
		{"abc", true, false, true, true, false, false, false, true},
		{"é", false, false, true, true, false, false, false, true},
		{" \t\n", true, true, false, false, false, false, false, false},
		{"123", true, false, false, true, true, true, true, true},
		{"²", false, false, false, true, false, true, true, true},
		{"½", false, false, false, true, false, false, true, true},
		{"a1", true, false, false, true, false, false, false, true},
		{"⑴❶፩🄀", false, false, false, true, false, true, true, true},
		{"一万", false, false, true, true, false, false, true, true},
		{"\x7f", true, false, false, false, false, false, false, false},
	}
	for _, tt := range tests {
		s := New(tt.in)
		have := []bool{s.IsASCII(), s.IsSpace(), s.IsAlpha(), s.IsAlnum(), s.IsDecimal(),
			s.IsDigit(), s.IsNumeric(), s.IsPrintable()}
		want := []bool{tt.ascii, tt.space, tt.alpha, tt.alnum, tt.decimal, tt.digit, tt.numeric,
			tt.printable}
		names := []string{"ascii", "space", "alpha", "alnum", "decimal", "digit", "numeric", "printable"}
		for k := range have {
			if have[k] != want[k] {
				t.Errorf("%q: expected is%s=%v", tt.in, names[k], want[k])
			}
		}
	}
}
