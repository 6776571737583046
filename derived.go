package pystr

// Derived is a text value of a type derived from str. It embeds its base
// value, so all methods of Str are available and return values of the base
// type *Str.
//
// Methods which may have nothing to do (RemovePrefix, RemoveSuffix, Strip,
// LStrip, RStrip and Replace) are overridden: if the text remains unchanged,
// they return the receiver itself, otherwise a new *Str.
type Derived struct {
	*Str
	kind string
}

// Derive creates a derived text value with type name kind. base must not be
// nil.
func Derive(kind string, base *Str) *Derived {
	if base == nil {
		panic("pystr: cannot derive from nil text")
	}
	return &Derived{Str: base, kind: kind}
}

// TypeName returns the type name of d.
func (d *Derived) TypeName() string {
	return d.kind
}

// keep returns d if the base operation returned d's value unchanged.
func (d *Derived) keep(r *Str) Text {
	if r == d.Str {
		return d
	}
	return r
}

// RemovePrefix returns d itself if d does not start with prefix.
func (d *Derived) RemovePrefix(prefix Text) Text {
	return d.keep(d.Str.RemovePrefix(prefix))
}

// RemoveSuffix returns d itself if d does not end with suffix.
func (d *Derived) RemoveSuffix(suffix Text) Text {
	return d.keep(d.Str.RemoveSuffix(suffix))
}

// Strip returns d itself if there is nothing to strip.
func (d *Derived) Strip(chars Text) Text {
	return d.keep(d.Str.Strip(chars))
}

// LStrip returns d itself if there is nothing to strip.
func (d *Derived) LStrip(chars Text) Text {
	return d.keep(d.Str.LStrip(chars))
}

// RStrip returns d itself if there is nothing to strip.
func (d *Derived) RStrip(chars Text) Text {
	return d.keep(d.Str.RStrip(chars))
}

// Replace returns d itself if there is nothing to replace.
func (d *Derived) Replace(old, new Text, count int) Text {
	return d.keep(d.Str.Replace(old, new, count))
}
