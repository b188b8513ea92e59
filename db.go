// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ldb

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/btcsuite/ldb/engine"
)

// DB is an open database.  It is safe for concurrent use; reads run in
// parallel and writes are passed to the engine without additional
// serialization.
//
// Close invalidates every iterator and snapshot still open on the database,
// so no handle can reach the engine once it is closed.
type DB struct {
	edb    engine.DB
	path   string
	driver string

	// mtx is held for reading by every operation for the duration of its
	// engine call and for writing by Close.
	mtx    sync.RWMutex
	closed bool

	trackMtx  sync.Mutex
	iterators map[*Iterator]struct{}
	snapshots map[*Snapshot]struct{}
}

// validatePath rejects paths the engine can not receive with ErrInvalidPath
// and the empty path, which no engine can open, with ErrOpen.
func validatePath(path string) error {
	if path == "" {
		return makeError(ErrOpen, "failed to open database: path is empty", nil)
	}
	if strings.IndexByte(path, 0) >= 0 {
		str := fmt.Sprintf("database path %q contains a NUL byte", path)
		return makeError(ErrInvalidPath, str, nil)
	}
	return nil
}

// Open opens the database at path with the given options.  A nil opts uses
// the defaults of NewOptions, which do not create a missing database.
func Open(path string, opts *Options) (*DB, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = NewOptions()
	}
	if opts.closed {
		return nil, errReleased
	}

	driver, ok := engine.Lookup(opts.driver)
	if !ok {
		str := fmt.Sprintf("driver %q is not registered -- supported "+
			"drivers %v", opts.driver, engine.Drivers())
		return nil, makeError(ErrInvalidArgument, str, nil)
	}

	cfg := opts.cfg
	edb, err := driver.Open(path, &cfg)
	if err != nil {
		return nil, engineError(ErrOpen, "failed to open database", err)
	}
	if edb == nil {
		return nil, makeError(ErrOpen, "failed to open database", nil)
	}

	log.Debugf("Opened %s database at %s", driver.Name(), path)
	return &DB{
		edb:       edb,
		path:      path,
		driver:    driver.Name(),
		iterators: make(map[*Iterator]struct{}),
		snapshots: make(map[*Snapshot]struct{}),
	}, nil
}

// Path returns the path the database was opened at.
func (db *DB) Path() string {
	return db.path
}

// Driver returns the name of the engine driver serving the database.
func (db *DB) Driver() string {
	return db.driver
}

// readConfig returns the engine form of ro along with the snapshot it is
// pinned to.  It must be called with the read lock held.
func (db *DB) readConfig(ro *ReadOptions) (*engine.ReadConfig, *Snapshot, error) {
	if ro == nil {
		return nil, nil, nil
	}
	if ro.closed {
		return nil, nil, errReleased
	}
	cfg := ro.cfg
	if ro.snap == nil {
		return &cfg, nil, nil
	}
	if ro.snap.db != db {
		str := fmt.Sprintf("snapshot belongs to database %s", ro.snap.db.path)
		return nil, nil, makeError(ErrInvalidArgument, str, nil)
	}
	esnap, err := ro.snap.engineSnapshot()
	if err != nil {
		return nil, nil, err
	}
	cfg.Snapshot = esnap
	return &cfg, ro.snap, nil
}

// Get returns a copy of the value stored under key.  An absent key yields a
// nil value and a nil error; a present key always yields a non-nil value,
// even when it is empty.
func (db *DB) Get(key []byte, ro *ReadOptions) ([]byte, error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()

	if db.closed {
		return nil, errDBClosed
	}
	cfg, _, err := db.readConfig(ro)
	if err != nil {
		return nil, err
	}

	value, err := db.edb.Get(key, cfg)
	if errors.Is(err, engine.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, engineError(ErrRead, "failed to read key", err)
	}
	return value, nil
}

// Has reports whether key is present.
func (db *DB) Has(key []byte, ro *ReadOptions) (bool, error) {
	value, err := db.Get(key, ro)
	if err != nil {
		return false, err
	}
	return value != nil, nil
}

// Put stores value under key, replacing any previous value.
func (db *DB) Put(key, value []byte, wo *WriteOptions) error {
	db.mtx.RLock()
	defer db.mtx.RUnlock()

	if db.closed {
		return errDBClosed
	}
	cfg, err := wo.writeConfig()
	if err != nil {
		return err
	}
	if err := db.edb.Put(key, value, cfg); err != nil {
		return engineError(ErrWrite, "failed to put key", err)
	}
	return nil
}

// Delete removes key.  Deleting an absent key succeeds.
func (db *DB) Delete(key []byte, wo *WriteOptions) error {
	db.mtx.RLock()
	defer db.mtx.RUnlock()

	if db.closed {
		return errDBClosed
	}
	cfg, err := wo.writeConfig()
	if err != nil {
		return err
	}
	if err := db.edb.Delete(key, cfg); err != nil {
		return engineError(ErrWrite, "failed to delete key", err)
	}
	return nil
}

// Write applies every operation buffered in batch atomically.  It is the
// same as batch.Write(db, wo).
func (db *DB) Write(batch *WriteBatch, wo *WriteOptions) error {
	return batch.Write(db, wo)
}

// CompactRange compacts the key range [start, limit).  A nil bound is
// unbounded in that direction.  Compaction has no failure mode at this
// layer; errors the engine reports are logged.
func (db *DB) CompactRange(start, limit []byte) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()

	if db.closed {
		log.Warnf("Ignoring compaction of closed database %s", db.path)
		return
	}
	if err := db.edb.CompactRange(start, limit); err != nil {
		log.Warnf("Compaction of %s failed: %v", db.path, err)
	}
}

// Flush compacts the whole key space.  The engine has no separate flush
// primitive, so this is the only way to push buffered data into tables.  It
// is not a durability barrier; use WriteOptions.SetSync for that.
func (db *DB) Flush() {
	db.CompactRange(nil, nil)
}

// NewIterator returns an unpositioned iterator over the database, or over
// the snapshot ro is pinned to.  The iterator must be released; Close
// releases any that are left.
//
// On a closed database the returned iterator is never valid and its Err
// method reports ErrDBClosed.
func (db *DB) NewIterator(ro *ReadOptions) *Iterator {
	db.mtx.RLock()
	defer db.mtx.RUnlock()

	if db.closed {
		return newDeadIterator(errDBClosed)
	}
	cfg, snap, err := db.readConfig(ro)
	if err != nil {
		return newDeadIterator(err)
	}
	if snap != nil {
		if err := snap.ref(); err != nil {
			return newDeadIterator(err)
		}
	}

	it := newIterator(db, db.edb.NewIterator(cfg), snap)
	db.trackMtx.Lock()
	db.iterators[it] = struct{}{}
	db.trackMtx.Unlock()
	log.Tracef("Created iterator on %s", db.path)
	return it
}

// NewSnapshot pins the current state of the database.  The snapshot must be
// released; Close releases any that are left.
func (db *DB) NewSnapshot() (*Snapshot, error) {
	return db.newSnapshot(true)
}

// acquireSnapshot takes a snapshot owned by a ReadOptions.
func (db *DB) acquireSnapshot() (*Snapshot, error) {
	return db.newSnapshot(false)
}

func (db *DB) newSnapshot(handle bool) (*Snapshot, error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()

	if db.closed {
		return nil, errDBClosed
	}
	esnap, err := db.edb.NewSnapshot()
	if err != nil {
		return nil, engineError(ErrRead, "failed to take snapshot", err)
	}

	snap := newSnapshot(db, esnap, handle)
	db.trackMtx.Lock()
	db.snapshots[snap] = struct{}{}
	db.trackMtx.Unlock()
	log.Tracef("Took snapshot of %s", db.path)
	return snap, nil
}

func (db *DB) untrackIterator(it *Iterator) {
	db.trackMtx.Lock()
	delete(db.iterators, it)
	db.trackMtx.Unlock()
}

func (db *DB) untrackSnapshot(s *Snapshot) {
	db.trackMtx.Lock()
	delete(db.snapshots, s)
	db.trackMtx.Unlock()
}

// Property returns an engine statistic such as "leveldb.stats".  The
// second result is false when the engine does not know the property or the
// database is closed.
func (db *DB) Property(name string) (string, bool) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()

	if db.closed {
		return "", false
	}
	return db.edb.Property(name)
}

// Close releases every iterator and snapshot still open on the database and
// then closes it.  Closing a closed database returns ErrDBClosed.
func (db *DB) Close() error {
	db.mtx.Lock()
	defer db.mtx.Unlock()

	if db.closed {
		return errDBClosed
	}
	db.closed = true

	db.trackMtx.Lock()
	iterators, snapshots := db.iterators, db.snapshots
	db.iterators, db.snapshots = nil, nil
	db.trackMtx.Unlock()

	if len(iterators) > 0 || len(snapshots) > 0 {
		log.Warnf("Closing %s with %d iterators and %d snapshots still "+
			"open -- releasing them", db.path, len(iterators),
			len(snapshots))
	}
	for it := range iterators {
		it.invalidate()
	}
	for snap := range snapshots {
		snap.invalidate()
	}

	if err := db.edb.Close(); err != nil {
		return engineError(ErrUnknown, "failed to close database", err)
	}
	log.Debugf("Closed database %s", db.path)
	return nil
}
