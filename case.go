package pystr

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/npillmayer/pystr/internal/runebuf"
	"github.com/npillmayer/pystr/ucd"
)

// Case mappings use full Unicode case mapping, so the result may differ in
// length from s ("ß" upper-cases to "SS"). Casers carry state and therefore
// are created for every call.

// Lower returns s with all cased characters converted to lowercase.
func (s *Str) Lower() *Str {
	return New(cases.Lower(language.Und).String(s.String()))
}

// Upper returns s with all cased characters converted to uppercase.
func (s *Str) Upper() *Str {
	return New(cases.Upper(language.Und).String(s.String()))
}

// CaseFold returns s folded for caseless comparison.
func (s *Str) CaseFold() *Str {
	return New(cases.Fold().String(s.String()))
}

// Capitalize returns s with its first character in titlecase and the rest
// in lowercase.
func (s *Str) Capitalize() *Str {
	if s.Len() == 0 {
		return empty
	}
	title := cases.Title(language.Und, cases.NoLower)
	head := title.String(string(s.runes[:1]))
	tail := cases.Lower(language.Und).String(string(s.runes[1:]))
	return New(head + tail)
}

// Title returns s with every word starting with a titlecase character and
// continuing in lowercase. Words are runs of cased characters.
func (s *Str) Title() *Str {
	title := cases.Title(language.Und, cases.NoLower)
	lower := cases.Lower(language.Und)
	buf := runebuf.Borrow()
	defer buf.Release()
	prevCased := false
	for _, r := range s.runesOrNil() {
		if prevCased {
			buf.WriteString(lower.String(string(r)))
		} else {
			buf.WriteString(title.String(string(r)))
		}
		prevCased = ucd.IsCased(r)
	}
	return wrap(buf.Runes())
}

// SwapCase converts uppercase characters to lowercase and vice versa.
func (s *Str) SwapCase() *Str {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	buf := runebuf.Borrow()
	defer buf.Release()
	for _, r := range s.runesOrNil() {
		switch {
		case ucd.IsUpper(r):
			buf.WriteString(lower.String(string(r)))
		case ucd.IsLower(r):
			buf.WriteString(upper.String(string(r)))
		default:
			buf.WriteRune(r)
		}
	}
	return wrap(buf.Runes())
}

// --- Predicates ------------------------------------------------------------

// IsUpper is true if s contains at least one cased character and no
// lowercase or titlecase characters.
func (s *Str) IsUpper() bool {
	cased := false
	for _, r := range s.runesOrNil() {
		if ucd.IsLower(r) || ucd.IsTitle(r) {
			return false
		}
		cased = cased || ucd.IsUpper(r)
	}
	return cased
}

// IsLower is true if s contains at least one cased character and no
// uppercase or titlecase characters.
func (s *Str) IsLower() bool {
	cased := false
	for _, r := range s.runesOrNil() {
		if ucd.IsUpper(r) || ucd.IsTitle(r) {
			return false
		}
		cased = cased || ucd.IsLower(r)
	}
	return cased
}

// IsTitle is true if s is non-empty and uppercase characters only follow
// uncased characters and lowercase characters only follow cased ones.
func (s *Str) IsTitle() bool {
	cased, prevCased := false, false
	for _, r := range s.runesOrNil() {
		switch {
		case ucd.IsUpper(r) || ucd.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased, cased = true, true
		case ucd.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased, cased = true, true
		default:
			prevCased = false
		}
	}
	return cased
}

// IsASCII is true if all characters of s are ASCII. The empty string is
// ASCII.
func (s *Str) IsASCII() bool {
	return s.all(ucd.IsASCII, true)
}

// IsIdentifier is true if s is a valid identifier: it starts with an
// XID_Start character or '_', followed by XID_Continue characters.
func (s *Str) IsIdentifier() bool {
	if s.Len() == 0 {
		return false
	}
	if r := s.runes[0]; r != '_' && !ucd.IsXIDStart(r) {
		return false
	}
	for _, r := range s.runes[1:] {
		if !ucd.IsXIDContinue(r) {
			return false
		}
	}
	return true
}

// IsSpace is true if s is non-empty and consists of whitespace only.
func (s *Str) IsSpace() bool {
	return s.all(ucd.IsSpace, false)
}

// IsAlpha is true if s is non-empty and consists of letters only.
func (s *Str) IsAlpha() bool {
	return s.all(ucd.IsAlpha, false)
}

// IsAlnum is true if s is non-empty and consists of letters and numeric
// characters only.
func (s *Str) IsAlnum() bool {
	return s.all(func(r rune) bool {
		return ucd.IsAlpha(r) || ucd.IsNumeric(r)
	}, false)
}

// IsDecimal is true if s is non-empty and consists of decimal digits only.
func (s *Str) IsDecimal() bool {
	return s.all(ucd.IsDecimal, false)
}

// IsDigit is true if s is non-empty and consists of digits only.
func (s *Str) IsDigit() bool {
	return s.all(ucd.IsDigit, false)
}

// IsNumeric is true if s is non-empty and consists of numeric characters
// only.
func (s *Str) IsNumeric() bool {
	return s.all(ucd.IsNumeric, false)
}

// IsPrintable is true if all characters of s are printable. The empty string
// is printable.
func (s *Str) IsPrintable() bool {
	return s.all(ucd.IsPrintable, true)
}

func (s *Str) all(pred func(rune) bool, ifEmpty bool) bool {
	if s.Len() == 0 {
		return ifEmpty
	}
	for _, r := range s.runes {
		if !pred(r) {
			return false
		}
	}
	return true
}
