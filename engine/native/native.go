// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package native implements the "native" engine driver.  It binds the C API
// of the system libleveldb at run time through purego, so no C toolchain is
// needed to build it.  The library is located through the LDB_LEVELDB_LIB
// environment variable or, when unset, the platform's usual library names.
package native

import (
	"os"
	"runtime"

	"github.com/btcsuite/ldb/engine"
)

const (
	// DriverName is the name the driver registers under.
	DriverName = "native"

	// LibraryEnv names the environment variable that overrides the path of
	// the shared library.
	LibraryEnv = "LDB_LEVELDB_LIB"
)

func init() {
	engine.Register(Driver{})
}

// Driver opens databases through the C API of libleveldb.  The library is
// loaded by the first Open or Load call.
type Driver struct{}

// Name returns DriverName.
func (Driver) Name() string {
	return DriverName
}

// libraryCandidates returns the names tried, in order, when loading the
// shared library.
func libraryCandidates() []string {
	if path := os.Getenv(LibraryEnv); path != "" {
		return []string{path}
	}
	switch runtime.GOOS {
	case "darwin":
		return []string{"libleveldb.dylib", "libleveldb.1.dylib",
			"/opt/homebrew/lib/libleveldb.dylib", "/usr/local/lib/libleveldb.dylib"}
	default:
		return []string{"libleveldb.so", "libleveldb.so.1"}
	}
}
