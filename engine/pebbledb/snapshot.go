// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pebbledb

import (
	"errors"

	"github.com/cockroachdb/pebble"
)

var errSnapshotReleased = errors.New("pebbledb: snapshot released")

func newSnapshot(snap *pebble.Snapshot) *Snapshot {
	return &Snapshot{snap: snap}
}

// Snapshot wraps a pebble snapshot.
type Snapshot struct {
	snap     *pebble.Snapshot
	released bool
}

// Release closes the snapshot.  Pebble rejects a second Close, so only the
// first call reaches it.
func (s *Snapshot) Release() {
	if !s.released {
		s.released = true
		s.snap.Close()
	}
}
