// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pebbledb implements the "pebble" engine driver on top of
// github.com/cockroachdb/pebble.
package pebbledb

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/btcsuite/ldb/engine"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/bloom"
)

// DriverName is the name the driver registers under.
const DriverName = "pebble"

const (
	// DefaultCache is the block cache size in MiB.
	DefaultCache = 64

	// DefaultHandles is the number of open files pebble may keep.
	DefaultHandles = 16

	// MetricsProperty is the property name that returns pebble's metrics.
	MetricsProperty = "pebble.metrics"
)

var (
	errBatchReleased = errors.New("pebbledb: batch released")
	errBatchApplied  = errors.New("pebbledb: batch already written; clear it before reuse")
	errForeignBatch  = errors.New("pebbledb: batch was not created by this driver")
)

func init() {
	engine.Register(Driver{})
}

// Driver opens pebble databases.  The zero value uses DefaultCache and
// DefaultHandles.
type Driver struct {
	Cache   int
	Handles int
}

// Name returns DriverName.
func (Driver) Name() string {
	return DriverName
}

// Open opens or creates a pebble database at dbPath.  Pebble has no
// equivalent of paranoid checks, so that flag is accepted and ignored.
func (drv Driver) Open(dbPath string, cfg *engine.OpenConfig) (engine.DB, error) {
	if cfg == nil {
		cfg = &engine.OpenConfig{}
	}
	cache, handles := drv.Cache, drv.Handles
	if cache <= 0 {
		cache = DefaultCache
	}
	if handles <= 0 {
		handles = DefaultHandles
	}

	compression, err := blockCompression(cfg.Compression)
	if err != nil {
		return nil, err
	}

	blockCache := pebble.NewCache(int64(cache * 1024 * 1024)) // cache MB
	defer blockCache.Unref()

	opts := &pebble.Options{
		Cache:                    blockCache,
		ErrorIfExists:            cfg.ErrorIfExists,
		ErrorIfNotExists:         !cfg.CreateIfMissing,
		MaxOpenFiles:             handles,
		MaxConcurrentCompactions: runtime.NumCPU,
	}
	targetFileSize := int64(2 * 1024 * 1024)
	for i := 0; i < 7; i++ {
		opts.Levels = append(opts.Levels, pebble.LevelOptions{
			TargetFileSize: targetFileSize,
			FilterPolicy:   bloom.FilterPolicy(10),
			Compression:    compression,
		})
		targetFileSize *= 2
	}
	opts.Experimental.ReadSamplingMultiplier = -1

	pdb, err := pebble.Open(dbPath, opts)
	if err != nil {
		return nil, err
	}
	return &DB{pdb: pdb}, nil
}

// blockCompression maps c onto pebble's table compression.  Pebble has no
// zlib codec.
func blockCompression(c engine.Compression) (pebble.Compression, error) {
	switch c {
	case engine.NoCompression:
		return pebble.NoCompression, nil
	case engine.SnappyCompression:
		return pebble.SnappyCompression, nil
	case engine.ZstdCompression:
		return pebble.ZstdCompression, nil
	default:
		return 0, fmt.Errorf("%w: pebble cannot write %v blocks",
			engine.ErrUnsupportedCompression, c)
	}
}

// DB is an open pebble handle.
type DB struct {
	pdb *pebble.DB
}

// reader returns the snapshot named by cfg, if any.
func reader(cfg *engine.ReadConfig) (*pebble.Snapshot, error) {
	if cfg == nil || cfg.Snapshot == nil {
		return nil, nil
	}
	snap, ok := cfg.Snapshot.(*Snapshot)
	if !ok {
		return nil, engine.ErrForeignSnapshot
	}
	if snap.released {
		return nil, errSnapshotReleased
	}
	return snap.snap, nil
}

// Get returns a copy of the value stored under key.  The buffer pebble
// returns is only valid until its closer is closed.
func (d *DB) Get(key []byte, cfg *engine.ReadConfig) ([]byte, error) {
	snap, err := reader(cfg)
	if err != nil {
		return nil, err
	}

	var (
		ori    []byte
		closer io.Closer
	)
	if snap != nil {
		ori, closer, err = snap.Get(key)
	} else {
		ori, closer, err = d.pdb.Get(key)
	}
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, engine.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	val := make([]byte, len(ori))
	copy(val, ori)
	return val, nil
}

func writeOptions(cfg *engine.WriteConfig) *pebble.WriteOptions {
	if cfg != nil && cfg.Sync {
		return pebble.Sync
	}
	return pebble.NoSync
}

// Put stores value under key.
func (d *DB) Put(key, value []byte, cfg *engine.WriteConfig) error {
	return d.pdb.Set(key, value, writeOptions(cfg))
}

// Delete removes key.
func (d *DB) Delete(key []byte, cfg *engine.WriteConfig) error {
	return d.pdb.Delete(key, writeOptions(cfg))
}

// Write applies batch atomically.  Pebble refuses to apply a batch twice, so
// a written batch must be cleared before it is written again.
func (d *DB) Write(batch engine.Batch, cfg *engine.WriteConfig) error {
	b, ok := batch.(*Batch)
	if !ok {
		return errForeignBatch
	}
	if b.released {
		return errBatchReleased
	}
	if b.applied {
		return errBatchApplied
	}
	if err := d.pdb.Apply(b.batch, writeOptions(cfg)); err != nil {
		return err
	}
	b.applied = true
	return nil
}

// CompactRange compacts [start, limit).  Pebble needs both bounds, so nil
// bounds are resolved against the current first and last keys.
func (d *DB) CompactRange(start, limit []byte) error {
	if start == nil || limit == nil {
		iter, err := d.pdb.NewIter(nil)
		if err != nil {
			return err
		}
		if start == nil {
			if !iter.First() {
				return iter.Close()
			}
			start = append([]byte(nil), iter.Key()...)
		}
		if limit == nil {
			if !iter.Last() {
				return iter.Close()
			}
			// The limit is exclusive; the smallest key after the last one
			// is the last key with a zero byte appended.
			limit = append(append([]byte(nil), iter.Key()...), 0)
		}
		if err := iter.Close(); err != nil {
			return err
		}
	}
	if bytes.Compare(start, limit) >= 0 {
		return nil
	}
	return d.pdb.Compact(start, limit, true)
}

// NewIterator returns an unpositioned iterator.
func (d *DB) NewIterator(cfg *engine.ReadConfig) engine.Iterator {
	snap, err := reader(cfg)
	if err != nil {
		return engine.NewEmptyIterator(err)
	}

	var iter *pebble.Iterator
	if snap != nil {
		iter, err = snap.NewIter(nil)
	} else {
		iter, err = d.pdb.NewIter(nil)
	}
	if err != nil {
		return engine.NewEmptyIterator(err)
	}
	return newIterator(iter)
}

// NewSnapshot pins the current state of the database.
func (d *DB) NewSnapshot() (engine.Snapshot, error) {
	return newSnapshot(d.pdb.NewSnapshot()), nil
}

// NewBatch returns an empty batch bound to this DB.
func (d *DB) NewBatch() engine.Batch {
	return newBatch(d.pdb.NewBatch())
}

// Property returns pebble's metrics under MetricsProperty.  LevelDB style
// property names have no pebble equivalent.
func (d *DB) Property(name string) (string, bool) {
	if name != MetricsProperty {
		return "", false
	}
	return d.pdb.Metrics().String(), true
}

// Close closes the database.
func (d *DB) Close() error {
	return d.pdb.Close()
}
