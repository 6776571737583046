package ucd

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Range tables for code-point properties.
// Will be initialized with SetupClasses().
// Clients can check with unicode.Is(..., rune).
var (
	Uppercase    *unicode.RangeTable // Lu + Other_Uppercase
	Lowercase    *unicode.RangeTable // Ll + Other_Lowercase
	Titlecase    *unicode.RangeTable // Lt
	Cased        *unicode.RangeTable // Uppercase + Lowercase + Titlecase
	Space        *unicode.RangeTable // White_Space + information separators
	LineBoundary *unicode.RangeTable // code-points terminating a line
	Printable    *unicode.RangeTable // L, M, N, P, S and ASCII space
	Alpha        *unicode.RangeTable // Lu, Ll, Lt, Lm, Lo
	Decimal      *unicode.RangeTable // Numeric_Type=Decimal
	Digit        *unicode.RangeTable // Numeric_Type=Decimal or Digit
	Numeric      *unicode.RangeTable // any Numeric_Type
	IDStart      *unicode.RangeTable // ID_Start, without exclusions
	IDContinue   *unicode.RangeTable // ID_Continue, without exclusions
)

// XID_Start and XID_Continue differ from ID_Start and ID_Continue for a handful
// of code-points which are not closed under NFKC normalization.
var xidStartExclusions = rangetable.New(
	0x037a, 0x0e33, 0x0eb3, 0x309b, 0x309c,
	0xfc5e, 0xfc5f, 0xfc60, 0xfc61, 0xfc62, 0xfc63,
	0xfdfa, 0xfdfb,
	0xfe70, 0xfe72, 0xfe74, 0xfe76, 0xfe78, 0xfe7a, 0xfe7c, 0xfe7e,
	0xff9e, 0xff9f,
)

var xidContinueExclusions = rangetable.New(
	0x037a, 0x309b, 0x309c,
	0xfc5e, 0xfc5f, 0xfc60, 0xfc61, 0xfc62, 0xfc63,
	0xfdfa, 0xfdfb,
)

// patternChars are never part of an identifier.
var patternChars = []*unicode.RangeTable{unicode.Pattern_Syntax, unicode.Pattern_White_Space}

var setupOnce sync.Once

// SetupClasses is the top-level preparation function:
// Create code-point classes for property lookup.
// (Concurrency-safe).
func SetupClasses() {
	setupOnce.Do(setupClasses)
}

func setupClasses() {
	Uppercase = rangetable.Merge(unicode.Lu, unicode.Other_Uppercase)
	Lowercase = rangetable.Merge(unicode.Ll, unicode.Other_Lowercase)
	Titlecase = unicode.Lt
	Cased = rangetable.Merge(Uppercase, Lowercase, Titlecase)
	Space = rangetable.Merge(unicode.White_Space, rangetable.New(0x1c, 0x1d, 0x1e, 0x1f))
	LineBoundary = rangetable.New('\n', '\v', '\f', '\r', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029)
	Printable = rangetable.Merge(unicode.L, unicode.M, unicode.N, unicode.P, unicode.S,
		rangetable.New(' '))
	Alpha = unicode.L
	Decimal, Digit, Numeric = numericClasses()
	IDStart = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start)
	IDContinue = rangetable.Merge(IDStart, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
		unicode.Other_ID_Continue)
	tracer().Debugf("code-point property tables initialized")
}

// --- Predicates ------------------------------------------------------------

// IsUpper is true for code-points with property Uppercase.
func IsUpper(r rune) bool {
	SetupClasses()
	return unicode.Is(Uppercase, r)
}

// IsLower is true for code-points with property Lowercase.
func IsLower(r rune) bool {
	SetupClasses()
	return unicode.Is(Lowercase, r)
}

// IsTitle is true for titlecase letters (category Lt).
func IsTitle(r rune) bool {
	SetupClasses()
	return unicode.Is(Titlecase, r)
}

// IsCased is true for code-points which are upper-, lower- or titlecase.
func IsCased(r rune) bool {
	SetupClasses()
	return unicode.Is(Cased, r)
}

// IsSpace reports whether r is whitespace in the sense of str.isspace(). This
// includes the ASCII information separators U+001C…U+001F.
func IsSpace(r rune) bool {
	if r < 0x80 {
		return r == ' ' || (r >= '\t' && r <= '\r') || (r >= 0x1c && r <= 0x1f)
	}
	SetupClasses()
	return unicode.Is(Space, r)
}

// IsLineBoundary reports whether r terminates a line. CR+LF sequences have to
// be handled by the caller.
func IsLineBoundary(r rune) bool {
	SetupClasses()
	return unicode.Is(LineBoundary, r)
}

// IsPrintable reports whether r will be output literally by repr().
func IsPrintable(r rune) bool {
	SetupClasses()
	return unicode.Is(Printable, r)
}

// IsAlpha is true for letters of any category L*.
func IsAlpha(r rune) bool {
	SetupClasses()
	return unicode.Is(Alpha, r)
}

// IsDecimal is true for code-points with Numeric_Type=Decimal.
func IsDecimal(r rune) bool {
	SetupClasses()
	return unicode.Is(Decimal, r)
}

// IsDigit is true for decimal digits and for digits needing special handling,
// like superscripts or circled digits (Numeric_Type=Digit).
func IsDigit(r rune) bool {
	SetupClasses()
	return unicode.Is(Digit, r)
}

// IsNumeric is true for code-points with a numeric value, including CJK
// ideographs used as numbers.
func IsNumeric(r rune) bool {
	SetupClasses()
	return unicode.Is(Numeric, r)
}

// IsASCII is true for code-points below 0x80.
func IsASCII(r rune) bool {
	return r >= 0 && r < 0x80
}

// IsXIDStart reports whether r may start an identifier.
// The underscore is not XID_Start, but clients usually will allow it as well.
func IsXIDStart(r rune) bool {
	SetupClasses()
	if !unicode.Is(IDStart, r) || unicode.Is(xidStartExclusions, r) {
		return false
	}
	return !unicode.IsOneOf(patternChars, r)
}

// IsXIDContinue reports whether r may continue an identifier.
func IsXIDContinue(r rune) bool {
	SetupClasses()
	if !unicode.Is(IDContinue, r) || unicode.Is(xidContinueExclusions, r) {
		return false
	}
	return !unicode.IsOneOf(patternChars, r)
}
