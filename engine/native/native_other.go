// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !((darwin || freebsd || linux) && !android)

package native

import (
	"errors"
	"runtime"

	"github.com/btcsuite/ldb/engine"
)

var errUnsupported = errors.New("native: dynamic loading is not supported on " + runtime.GOOS)

// Load always fails on this platform.
func Load() error {
	return errUnsupported
}

// Version always fails on this platform.
func Version() (int, int, error) {
	return 0, 0, errUnsupported
}

// Open always fails on this platform.
func (Driver) Open(string, *engine.OpenConfig) (engine.DB, error) {
	return nil, errUnsupported
}
