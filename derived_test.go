package pystr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDerivedRemovePrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pystr")
	defer teardown()
	//
	d := Derive("MyStr", New("hello world"))
	r := d.RemovePrefix(New("xyz"))
	if r != Text(d) {
		t.Errorf("expected absent prefix to return the receiver itself")
	}
	if _, ok := r.(*Derived); !ok || r.TypeName() != "MyStr" {
		t.Errorf("expected result of type MyStr, have %s", r.TypeName())
	}
	r = d.RemovePrefix(New("hello "))
	if _, ok := r.(*Str); !ok || r.TypeName() != "str" || r.String() != "world" {
		t.Errorf("expected new base value 'world', have %s %q", r.TypeName(), r)
	}
	r = d.RemoveSuffix(New(" world"))
	if _, ok := r.(*Str); !ok || r.String() != "hello" {
		t.Errorf("expected new base value 'hello', have %s %q", r.TypeName(), r)
	}
	if d.RemoveSuffix(New("hello")) != Text(d) {
		t.Errorf("expected absent suffix to return the receiver itself")
	}
}

func TestDerivedIdentityPreservingMethods(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pystr")
	defer teardown()
	//
	d := Derive("MyStr", New("abc"))
	unchanged := []Text{
		d.Strip(nil), d.LStrip(nil), d.RStrip(nil),
		d.Strip(New("xyz")),
		d.Replace(New("x"), New("y"), -1),
	}
	for i, r := range unchanged {
		if r != Text(d) {
			t.Errorf("#%d: expected the receiver itself, have %s %q", i, r.TypeName(), r)
		}
	}
	changed := []Text{
		d.Strip(New("a")), d.LStrip(New("a")), d.RStrip(New("c")),
		d.Replace(New("b"), New("B"), -1),
	}
	for i, r := range changed {
		if _, ok := r.(*Str); !ok {
			t.Errorf("#%d: expected base type, have %s", i, r.TypeName())
		}
	}
}

func TestDerivedTransformsToBase(t *testing.T) {
	d := Derive("MyStr", New("Hello World"))
	twice, err := d.Mul(2)
	if err != nil {
		t.Fatal(err)
	}
	results := []Text{
		d.Upper(), d.Lower(), d.SwapCase(), d.Title(), d.Capitalize(), d.CaseFold(),
		d.Slice(0, 5), d.Add(New("!")), twice,
	}
	for i, r := range results {
		if _, ok := r.(*Str); !ok || r.TypeName() != "str" {
			t.Errorf("#%d: expected base type str, have %s", i, r.TypeName())
		}
	}
	if d.Len() != 11 || !d.Equal(New("Hello World")) || d.Find(New("World")) != 6 {
		t.Errorf("expected derived value to behave like its base")
	}
	if d.TypeName() != "MyStr" || d.Base().TypeName() != "str" {
		t.Errorf("unexpected type names %s / %s", d.TypeName(), d.Base().TypeName())
	}
}
