// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package leveldb implements the "leveldb" engine driver on top of
// github.com/syndtr/goleveldb.  It is the default driver of the ldb package.
package leveldb

import (
	"errors"
	"fmt"

	"github.com/btcsuite/ldb/engine"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// DriverName is the name the driver registers under.
const DriverName = "leveldb"

func init() {
	engine.Register(Driver{})
}

// Driver opens goleveldb databases.
type Driver struct{}

// Name returns DriverName.
func (Driver) Name() string {
	return DriverName
}

// Open opens or creates a goleveldb database at dbPath.
func (Driver) Open(dbPath string, cfg *engine.OpenConfig) (engine.DB, error) {
	if cfg == nil {
		cfg = &engine.OpenConfig{}
	}
	compression, err := blockCompression(cfg.Compression)
	if err != nil {
		return nil, err
	}
	opts := opt.Options{
		ErrorIfMissing: !cfg.CreateIfMissing,
		ErrorIfExist:   cfg.ErrorIfExists,
		Strict:         opt.DefaultStrict,
		Compression:    compression,
	}
	if cfg.ParanoidChecks {
		opts.Strict = opt.StrictAll
	}
	ldb, err := leveldb.OpenFile(dbPath, &opts)
	if err != nil {
		return nil, err
	}
	return &DB{ldb: ldb}, nil
}

// blockCompression maps c onto goleveldb's compression.  goleveldb only
// knows snappy.
func blockCompression(c engine.Compression) (opt.Compression, error) {
	switch c {
	case engine.NoCompression:
		return opt.NoCompression, nil
	case engine.SnappyCompression:
		return opt.SnappyCompression, nil
	default:
		return 0, fmt.Errorf("%w: goleveldb cannot write %v blocks",
			engine.ErrUnsupportedCompression, c)
	}
}

// DB is an open goleveldb handle.
type DB struct {
	ldb *leveldb.DB
}

// readOptions converts cfg and picks the reader the read must go through.
func (d *DB) readOptions(cfg *engine.ReadConfig) (*opt.ReadOptions, *leveldb.Snapshot, error) {
	if cfg == nil {
		return nil, nil, nil
	}
	ro := &opt.ReadOptions{DontFillCache: cfg.DontFillCache}
	if cfg.VerifyChecksums {
		ro.Strict = opt.StrictReader | opt.StrictBlockChecksum
	}
	if cfg.Snapshot == nil {
		return ro, nil, nil
	}
	snap, ok := cfg.Snapshot.(*Snapshot)
	if !ok {
		return nil, nil, engine.ErrForeignSnapshot
	}
	return ro, snap.snap, nil
}

// Get returns a copy of the value stored under key.
func (d *DB) Get(key []byte, cfg *engine.ReadConfig) ([]byte, error) {
	ro, snap, err := d.readOptions(cfg)
	if err != nil {
		return nil, err
	}

	var value []byte
	if snap != nil {
		value, err = snap.Get(key, ro)
	} else {
		value, err = d.ldb.Get(key, ro)
	}
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, engine.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	// goleveldb already hands out its own copy.
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

func writeOptions(cfg *engine.WriteConfig) *opt.WriteOptions {
	if cfg == nil {
		return nil
	}
	return &opt.WriteOptions{Sync: cfg.Sync}
}

// Put stores value under key.
func (d *DB) Put(key, value []byte, cfg *engine.WriteConfig) error {
	return d.ldb.Put(key, value, writeOptions(cfg))
}

// Delete removes key.
func (d *DB) Delete(key []byte, cfg *engine.WriteConfig) error {
	return d.ldb.Delete(key, writeOptions(cfg))
}

// Write applies batch atomically.
func (d *DB) Write(batch engine.Batch, cfg *engine.WriteConfig) error {
	b, ok := batch.(*Batch)
	if !ok {
		return errors.New("leveldb: batch was not created by this driver")
	}
	if b.released {
		return errBatchReleased
	}
	return d.ldb.Write(b.batch, writeOptions(cfg))
}

// CompactRange compacts [start, limit).  goleveldb already treats nil
// bounds as unbounded.
func (d *DB) CompactRange(start, limit []byte) error {
	return d.ldb.CompactRange(util.Range{Start: start, Limit: limit})
}

// NewIterator returns an unpositioned iterator.
func (d *DB) NewIterator(cfg *engine.ReadConfig) engine.Iterator {
	ro, snap, err := d.readOptions(cfg)
	if err != nil {
		return engine.NewEmptyIterator(err)
	}
	if snap != nil {
		return newIterator(snap.NewIterator(nil, ro))
	}
	return newIterator(d.ldb.NewIterator(nil, ro))
}

// NewSnapshot pins the current state of the database.
func (d *DB) NewSnapshot() (engine.Snapshot, error) {
	snap, err := d.ldb.GetSnapshot()
	if err != nil {
		return nil, err
	}
	return newSnapshot(snap), nil
}

// NewBatch returns an empty batch.
func (d *DB) NewBatch() engine.Batch {
	return newBatch()
}

// Property returns a goleveldb property such as "leveldb.stats".
func (d *DB) Property(name string) (string, bool) {
	value, err := d.ldb.GetProperty(name)
	if err != nil {
		return "", false
	}
	return value, true
}

// Close closes the database.
func (d *DB) Close() error {
	return d.ldb.Close()
}
