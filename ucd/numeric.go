package ucd

import (
	"bytes"
	_ "embed"
	"unicode"

	"github.com/npillmayer/pystr/internal/ucdparse"
	"golang.org/x/text/unicode/rangetable"
)

// Numeric_Type property values, extracted from the UCD.
//
//go:embed data/DerivedNumericType.txt
var derivedNumericType []byte

// numericClasses creates the tables for Numeric_Type=Decimal, for
// Numeric_Type in {Decimal, Digit}, and for any Numeric_Type.
func numericClasses() (decimal, digit, numeric *unicode.RangeTable) {
	collect := func(value string, fallback *unicode.RangeTable) *unicode.RangeTable {
		t, err := ucdparse.Collect(bytes.NewReader(derivedNumericType), value)
		if err != nil {
			tracer().Errorf("cannot read Numeric_Type=%s: %v", value, err)
			return fallback
		}
		return t
	}
	decimal = collect("Decimal", unicode.Nd)
	digit = rangetable.Merge(decimal, collect("Digit", unicode.No))
	numeric = rangetable.Merge(digit, collect("Numeric", unicode.N))
	return
}
