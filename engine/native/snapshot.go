// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build (darwin || freebsd || linux) && !android

package native

import "errors"

var errSnapshotReleased = errors.New("native: snapshot released")

func newSnapshot(db, snap uintptr) *Snapshot {
	return &Snapshot{db: db, snap: snap}
}

// Snapshot is a const leveldb_snapshot_t* together with the database it
// must be released against.
type Snapshot struct {
	db       uintptr
	snap     uintptr
	released bool
}

// Release returns the snapshot to the database once.
func (s *Snapshot) Release() {
	if !s.released {
		s.released = true
		leveldbReleaseSnapshot(s.db, s.snap)
	}
}
