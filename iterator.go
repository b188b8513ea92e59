// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ldb

import (
	"sync"

	"github.com/btcsuite/ldb/engine"
)

// Iterator is a cursor over the key space of a database as of its creation,
// or as of the snapshot it is pinned to.  A new iterator is not positioned
// and not valid.
//
// Key and Value return copies, so the results stay usable after the cursor
// moves.  Once released, or once its database is closed, the iterator is
// never valid and every positioning call is a no-op.
//
// An Iterator is safe for concurrent use, but concurrent callers race for
// its position.
type Iterator struct {
	db   *DB
	snap *Snapshot

	mtx      sync.Mutex
	iter     engine.Iterator
	released bool
	err      error
}

func newIterator(db *DB, iter engine.Iterator, snap *Snapshot) *Iterator {
	return &Iterator{db: db, iter: iter, snap: snap}
}

// newDeadIterator returns an iterator that never touched the engine and
// reports err.
func newDeadIterator(err error) *Iterator {
	return &Iterator{released: true, err: err}
}

// SeekToFirst moves to the first entry.
func (it *Iterator) SeekToFirst() {
	it.mtx.Lock()
	defer it.mtx.Unlock()

	if !it.released {
		it.iter.SeekToFirst()
	}
}

// SeekToLast moves to the last entry.
func (it *Iterator) SeekToLast() {
	it.mtx.Lock()
	defer it.mtx.Unlock()

	if !it.released {
		it.iter.SeekToLast()
	}
}

// Seek moves to the first entry whose key is greater than or equal to
// target.  The iterator is invalid when there is no such entry.
func (it *Iterator) Seek(target []byte) {
	it.mtx.Lock()
	defer it.mtx.Unlock()

	if !it.released {
		it.iter.Seek(target)
	}
}

// Next moves to the following entry.  It is a no-op on an invalid iterator.
func (it *Iterator) Next() {
	it.mtx.Lock()
	defer it.mtx.Unlock()

	if it.valid() {
		it.iter.Next()
	}
}

// Prev moves to the preceding entry.  It is a no-op on an invalid iterator.
func (it *Iterator) Prev() {
	it.mtx.Lock()
	defer it.mtx.Unlock()

	if it.valid() {
		it.iter.Prev()
	}
}

// valid must be called with the mutex held.
func (it *Iterator) valid() bool {
	return !it.released && it.iter.Valid()
}

// Valid reports whether the iterator is positioned at an entry.
func (it *Iterator) Valid() bool {
	it.mtx.Lock()
	defer it.mtx.Unlock()

	return it.valid()
}

func copyBytes(b []byte) []byte {
	return append([]byte{}, b...)
}

// Key returns a copy of the current key, or nil when the iterator is not
// valid.
func (it *Iterator) Key() []byte {
	it.mtx.Lock()
	defer it.mtx.Unlock()

	if !it.valid() {
		return nil
	}
	return copyBytes(it.iter.Key())
}

// Value returns a copy of the current value, or nil when the iterator is
// not valid.
func (it *Iterator) Value() []byte {
	it.mtx.Lock()
	defer it.mtx.Unlock()

	if !it.valid() {
		return nil
	}
	return copyBytes(it.iter.Value())
}

// NextEntry returns copies of the current entry and then moves forward.  The
// last result is false, and nothing moves, when the iterator was not valid.
func (it *Iterator) NextEntry() (key, value []byte, ok bool) {
	it.mtx.Lock()
	defer it.mtx.Unlock()

	if !it.valid() {
		return nil, nil, false
	}
	key, value = copyBytes(it.iter.Key()), copyBytes(it.iter.Value())
	it.iter.Next()
	return key, value, true
}

// PrevEntry returns copies of the current entry and then moves backward.
// The last result is false, and nothing moves, when the iterator was not
// valid.
func (it *Iterator) PrevEntry() (key, value []byte, ok bool) {
	it.mtx.Lock()
	defer it.mtx.Unlock()

	if !it.valid() {
		return nil, nil, false
	}
	key, value = copyBytes(it.iter.Key()), copyBytes(it.iter.Value())
	it.iter.Prev()
	return key, value, true
}

// Err returns the error that stopped the iterator.  Reaching either end of
// the key space is not an error.  A released iterator reports ErrReleased
// and one invalidated by closing its database reports ErrDBClosed.
func (it *Iterator) Err() error {
	it.mtx.Lock()
	defer it.mtx.Unlock()

	if it.err != nil {
		return it.err
	}
	if err := it.iter.Error(); err != nil {
		return engineError(ErrIterator, "iterator failed", err)
	}
	return nil
}

// release drops the engine iterator and its snapshot reference with err as
// the sticky error.  It must be called with the mutex held and reports
// whether anything was released.
func (it *Iterator) release(err error) bool {
	if it.released {
		return false
	}
	it.released = true
	it.err = err
	it.iter.Release()
	it.iter = nil
	if it.snap != nil {
		it.snap.unref()
		it.snap = nil
	}
	return true
}

// Release releases the iterator.  It is safe to call more than once.
func (it *Iterator) Release() {
	it.mtx.Lock()
	released := it.release(errReleased)
	it.mtx.Unlock()

	if released {
		it.db.untrackIterator(it)
	}
}

// invalidate releases the iterator because its database is closing.
func (it *Iterator) invalidate() {
	it.mtx.Lock()
	it.release(errDBClosed)
	it.mtx.Unlock()
}
