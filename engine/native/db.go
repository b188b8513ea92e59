// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build (darwin || freebsd || linux) && !android

package native

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/btcsuite/ldb/engine"
)

var errForeignBatch = errors.New("native: batch was not created by this database")

// Compression values of leveldb/c.h in Mojang's Bedrock fork.  Upstream
// LevelDB only shares the first two, so the others need a library built
// from the fork.
const (
	cNoCompression      = 0
	cSnappyCompression  = 1
	cZlibCompression    = 2
	cZstdCompression    = 3
	cZlibRawCompression = 4
)

// blockCompression maps c onto the C enum.
func blockCompression(c engine.Compression) (int32, error) {
	switch c {
	case engine.NoCompression:
		return cNoCompression, nil
	case engine.SnappyCompression:
		return cSnappyCompression, nil
	case engine.ZlibCompression:
		return cZlibCompression, nil
	case engine.ZstdCompression:
		return cZstdCompression, nil
	case engine.ZlibRawCompression:
		return cZlibRawCompression, nil
	default:
		return 0, fmt.Errorf("%w: %v", engine.ErrUnsupportedCompression, c)
	}
}

// Open loads the library if needed and opens the database at dbPath.  The
// C options handle only lives for the duration of the call.
func (Driver) Open(dbPath string, cfg *engine.OpenConfig) (engine.DB, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &engine.OpenConfig{}
	}
	compression, err := blockCompression(cfg.Compression)
	if err != nil {
		return nil, err
	}

	opts := leveldbOptionsCreate()
	defer leveldbOptionsDestroy(opts)
	leveldbOptionsSetCreateIfMissing(opts, cbool(cfg.CreateIfMissing))
	leveldbOptionsSetErrorIfExists(opts, cbool(cfg.ErrorIfExists))
	leveldbOptionsSetParanoidChecks(opts, cbool(cfg.ParanoidChecks))
	leveldbOptionsSetCompression(opts, compression)

	var errptr unsafe.Pointer
	db := leveldbOpen(opts, dbPath, &errptr)
	if err := takeError(errptr); err != nil {
		if db != 0 {
			leveldbClose(db)
		}
		return nil, err
	}
	if db == 0 {
		return nil, nil
	}
	return &DB{db: db}, nil
}

// DB is an open libleveldb handle.
type DB struct {
	db uintptr
}

// readOptions builds a C read options handle for cfg.  The caller destroys
// it with leveldbReadOptionsDestroy.
func (d *DB) readOptions(cfg *engine.ReadConfig) (uintptr, error) {
	var snap uintptr
	if cfg != nil && cfg.Snapshot != nil {
		s, ok := cfg.Snapshot.(*Snapshot)
		if !ok || s.db != d.db {
			return 0, engine.ErrForeignSnapshot
		}
		if s.released {
			return 0, errSnapshotReleased
		}
		snap = s.snap
	}

	ro := leveldbReadOptionsCreate()
	if cfg != nil {
		leveldbReadOptionsSetVerifyChecksums(ro, cbool(cfg.VerifyChecksums))
		leveldbReadOptionsSetFillCache(ro, cbool(!cfg.DontFillCache))
	}
	if snap != 0 {
		leveldbReadOptionsSetSnapshot(ro, snap)
	}
	return ro, nil
}

func writeOptions(cfg *engine.WriteConfig) uintptr {
	wo := leveldbWriteOptionsCreate()
	if cfg != nil {
		leveldbWriteOptionsSetSync(wo, cbool(cfg.Sync))
	}
	return wo
}

// Get returns a Go copy of the value stored under key.  The C buffer is
// freed before returning.
func (d *DB) Get(key []byte, cfg *engine.ReadConfig) ([]byte, error) {
	ro, err := d.readOptions(cfg)
	if err != nil {
		return nil, err
	}
	defer leveldbReadOptionsDestroy(ro)

	var (
		vallen uintptr
		errptr unsafe.Pointer
	)
	val := leveldbGet(d.db, ro, bufPtr(key), uintptr(len(key)), &vallen, &errptr)
	runtime.KeepAlive(key)
	if err := takeError(errptr); err != nil {
		return nil, err
	}
	if val == nil {
		return nil, engine.ErrNotFound
	}
	defer leveldbFree(val)

	return append([]byte{}, cView(val, vallen)...), nil
}

// Put stores value under key.
func (d *DB) Put(key, value []byte, cfg *engine.WriteConfig) error {
	wo := writeOptions(cfg)
	defer leveldbWriteOptionsDestroy(wo)

	var errptr unsafe.Pointer
	leveldbPut(d.db, wo, bufPtr(key), uintptr(len(key)),
		bufPtr(value), uintptr(len(value)), &errptr)
	runtime.KeepAlive(key)
	runtime.KeepAlive(value)
	return takeError(errptr)
}

// Delete removes key.
func (d *DB) Delete(key []byte, cfg *engine.WriteConfig) error {
	wo := writeOptions(cfg)
	defer leveldbWriteOptionsDestroy(wo)

	var errptr unsafe.Pointer
	leveldbDelete(d.db, wo, bufPtr(key), uintptr(len(key)), &errptr)
	runtime.KeepAlive(key)
	return takeError(errptr)
}

// Write applies batch atomically.
func (d *DB) Write(batch engine.Batch, cfg *engine.WriteConfig) error {
	b, ok := batch.(*Batch)
	if !ok || b.db != d.db {
		return errForeignBatch
	}
	if b.released {
		return errBatchReleased
	}

	wo := writeOptions(cfg)
	defer leveldbWriteOptionsDestroy(wo)

	var errptr unsafe.Pointer
	leveldbWrite(d.db, wo, b.batch, &errptr)
	return takeError(errptr)
}

// CompactRange compacts [start, limit).  libleveldb reads a NULL bound as
// unbounded and reports no errors from compaction.
func (d *DB) CompactRange(start, limit []byte) error {
	leveldbCompactRange(d.db, boundPtr(start), uintptr(len(start)),
		boundPtr(limit), uintptr(len(limit)))
	runtime.KeepAlive(start)
	runtime.KeepAlive(limit)
	return nil
}

// NewIterator returns an unpositioned iterator.  libleveldb copies the read
// options into the iterator, so the C handle is destroyed right away.
func (d *DB) NewIterator(cfg *engine.ReadConfig) engine.Iterator {
	ro, err := d.readOptions(cfg)
	if err != nil {
		return engine.NewEmptyIterator(err)
	}
	defer leveldbReadOptionsDestroy(ro)

	return newIterator(leveldbCreateIterator(d.db, ro))
}

// NewSnapshot pins the current state of the database.
func (d *DB) NewSnapshot() (engine.Snapshot, error) {
	return newSnapshot(d.db, leveldbCreateSnapshot(d.db)), nil
}

// NewBatch returns an empty batch bound to this database.
func (d *DB) NewBatch() engine.Batch {
	return newBatch(d.db)
}

// Property returns a libleveldb property such as "leveldb.stats".
func (d *DB) Property(name string) (string, bool) {
	val := leveldbPropertyValue(d.db, name)
	if val == nil {
		return "", false
	}
	defer leveldbFree(val)
	return cString(val), true
}

// Close closes the database.  libleveldb reports no close errors.
func (d *DB) Close() error {
	leveldbClose(d.db)
	d.db = 0
	return nil
}
