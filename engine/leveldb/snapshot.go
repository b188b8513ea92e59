// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldb

import (
	"github.com/syndtr/goleveldb/leveldb"
)

func newSnapshot(snap *leveldb.Snapshot) *Snapshot {
	return &Snapshot{snap: snap}
}

// Snapshot wraps a goleveldb snapshot.  goleveldb already tolerates repeated
// Release calls; the flag keeps the contract explicit.
type Snapshot struct {
	snap     *leveldb.Snapshot
	released bool
}

// Release releases the snapshot.
func (s *Snapshot) Release() {
	if !s.released {
		s.released = true
		s.snap.Release()
	}
}
