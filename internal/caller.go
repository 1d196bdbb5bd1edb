// Package internal holds helpers shared by the module's tests and test
// runners.
package internal

import (
	"path/filepath"
	"runtime"
)

// CallerDir returns the directory of the file in which this function is called.
//
// skip is the number of callers to skip, like in [runtime.Caller]. A value of
// zero represents the caller of CallerDir.
//
// Test runners use it to find test data next to the test that invoked them.
// Panics if called within a stripped binary.
func CallerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		panic("eckfront/internal: could not determine the caller's directory; the binary may have been stripped")
	}
	return filepath.Dir(file)
}
