// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ldb provides safe access to an embedded LevelDB-family key/value store.

The storage itself is done by an engine driver registered with the engine
package.  Three drivers ship with this module: "leveldb" (goleveldb, the
default), "pebble" (cockroachdb/pebble), and "native" (the C API of a system
libleveldb, loaded at run time).  This package layers the lifetime rules that
make the engine handles safe to use from Go on top of whichever driver is
selected:

  - Every handle is released exactly once.  Release and Close are idempotent.
  - Nothing returned to the caller points into engine memory.  Values, keys,
    and error messages are copied out.
  - No handle outlives its database.  Closing a DB releases the iterators and
    snapshots still open on it, and later use of them fails cleanly with
    ErrDBClosed instead of reaching the engine.

# Usage

	opts := ldb.NewOptions()
	opts.SetCreateIfMissing(true)
	db, err := ldb.Open("path/to/database", opts)
	if err != nil {
		// Handle error
	}
	defer db.Close()

	err = db.Put([]byte("key"), []byte("value"), nil)
	value, err := db.Get([]byte("key"), nil)

Absent keys are not errors: Get returns a nil value and a nil error.

# Batches and Iteration

A WriteBatch buffers puts and deletes in memory and applies them atomically
with Write.  An Iterator walks keys in byte-wise order in either direction.
Pinning ReadOptions to a Snapshot gives reads and iterators a fixed view of
the database:

	snap, err := db.NewSnapshot()
	if err != nil {
		// Handle error
	}
	defer snap.Release()

	ro := ldb.NewReadOptions()
	defer ro.Close()
	if err := ro.SetSnapshot(snap); err != nil {
		// Handle error
	}

	it := db.NewIterator(ro)
	defer it.Release()
	for it.SeekToFirst(); it.Valid(); it.Next() {
		fmt.Printf("%s = %s\n", it.Key(), it.Value())
	}
	if err := it.Err(); err != nil {
		// Handle error
	}

# Errors

Errors returned by this package are of type Error and carry an ErrorCode,
which can be tested with errors.Is:

	if errors.Is(err, ldb.ErrDBClosed) {
		// The database was closed underneath the caller.
	}
*/
package ldb
