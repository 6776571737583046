/*
Package testdata gives tests access to excerpts of Unicode Character Database
files. Fixtures live in sub-directory ucd/ of this package and are shared by
the tests of packages ucd and ucdparse.

Full UCD files are too large to check in; an excerpt lists just the
properties a test compares against.
*/
package testdata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Open opens the UCD fixture with the given file name. Clients have to close
// it after use.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(Path(name))
	if err != nil {
		return nil, fmt.Errorf("UCD fixture %s: %w", name, err)
	}
	return f, nil
}

// Path returns the location of a UCD fixture, independent of the working
// directory of the test binary.
func Path(name string) string {
	_, here, _, ok := runtime.Caller(0)
	if !ok {
		panic("testdata: no caller information")
	}
	return filepath.Join(filepath.Dir(here), "ucd", name)
}
