package runebuf

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBorrowAndRelease(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pystr.runebuf")
	defer teardown()
	//
	buf := Borrow()
	buf.WriteString("Hä")
	buf.WriteRune('!')
	buf.WriteRunes([]rune{'x', 'y'})
	if buf.Len() != 5 {
		t.Errorf("expected buffer length 5, is %d", buf.Len())
	}
	r := buf.Runes()
	buf.Release()
	if string(r) != "Hä!xy" {
		t.Errorf("expected copied runes to survive release, have %q", string(r))
	}
	buf = Borrow()
	defer buf.Release()
	if buf.Len() != 0 {
		t.Errorf("borrowed buffer is not empty: %#v", buf)
	}
}

func TestOversizedBufferIsDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pystr.runebuf")
	defer teardown()
	//
	buf := Borrow()
	buf.Grow(2 * maxPooledCap)
	for i := 0; i < maxPooledCap+1; i++ {
		buf.WriteRune('a')
	}
	buf.Release()
	if buf.runes != nil {
		t.Errorf("expected oversized buffer to be cleared")
	}
}

func TestConcurrentBorrow(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			buf := Borrow()
			defer buf.Release()
			for j := 0; j < n; j++ {
				buf.WriteRune('z')
			}
			if buf.Len() != n {
				t.Errorf("expected %d runes, have %d", n, buf.Len())
			}
		}(i)
	}
	wg.Wait()
}
