// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ldb

import (
	"sync"

	"github.com/btcsuite/ldb/engine"
)

// Snapshotter is anything a ReadOptions can be pinned to: a *DB, which
// yields a fresh snapshot, or a *Snapshot, which yields itself.
type Snapshotter interface {
	acquireSnapshot() (*Snapshot, error)
}

// Snapshot is a point-in-time view of a database.
//
// The engine snapshot is reference counted.  The handle returned by
// DB.NewSnapshot holds one reference, and every ReadOptions or Iterator
// pinned to the snapshot holds another, so the caller may release its handle
// while readers are still using the view.  The engine snapshot is released
// exactly once, when the last reference goes or when the database closes.
type Snapshot struct {
	db   *DB
	snap engine.Snapshot

	mtx           sync.Mutex
	refs          int
	handleDropped bool
	released      bool
	dbClosed      bool
}

// newSnapshot wraps snap with a single reference.  A snapshot without a
// caller handle starts with handleDropped set.
func newSnapshot(db *DB, snap engine.Snapshot, handle bool) *Snapshot {
	return &Snapshot{db: db, snap: snap, refs: 1, handleDropped: !handle}
}

// acquireSnapshot takes a new reference.  A snapshot whose handle was
// released can not be pinned again.
func (s *Snapshot) acquireSnapshot() (*Snapshot, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.liveErr(); err != nil {
		return nil, err
	}
	if s.handleDropped {
		return nil, errReleased
	}
	s.refs++
	return s, nil
}

// ref takes a reference for an iterator.
func (s *Snapshot) ref() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.liveErr(); err != nil {
		return err
	}
	s.refs++
	return nil
}

// liveErr returns the error for using a released snapshot.  It must be
// called with the mutex held.
func (s *Snapshot) liveErr() error {
	switch {
	case s.dbClosed:
		return errDBClosed
	case s.released:
		return errReleased
	}
	return nil
}

// engineSnapshot returns the engine snapshot for a read.
func (s *Snapshot) engineSnapshot() (engine.Snapshot, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.liveErr(); err != nil {
		return nil, err
	}
	return s.snap, nil
}

// unref drops a reference and releases the engine snapshot with the last
// one.
func (s *Snapshot) unref() {
	s.mtx.Lock()
	if s.refs > 0 {
		s.refs--
	}
	last := s.refs == 0 && !s.released
	if last {
		s.released = true
		s.snap.Release()
	}
	s.mtx.Unlock()

	if last {
		s.db.untrackSnapshot(s)
		log.Tracef("Released snapshot of %s", s.db.path)
	}
}

// invalidate releases the engine snapshot because the database is closing.
func (s *Snapshot) invalidate() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.dbClosed = true
	if !s.released {
		s.released = true
		s.snap.Release()
	}
}

// Release drops the caller's reference.  The view stays usable by readers
// still pinned to it.  It is safe to call more than once.
func (s *Snapshot) Release() {
	s.mtx.Lock()
	if s.handleDropped {
		s.mtx.Unlock()
		return
	}
	s.handleDropped = true
	s.mtx.Unlock()

	s.unref()
}
