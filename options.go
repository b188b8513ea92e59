// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ldb

import (
	"github.com/btcsuite/ldb/engine"
	_ "github.com/btcsuite/ldb/engine/leveldb" // default driver
)

// DefaultDriver is the engine driver used when Options do not name one.
const DefaultDriver = "leveldb"

// Compression selects the block compression of newly written tables.
type Compression = engine.Compression

// Compression types.  Every driver supports NoCompression and
// SnappyCompression; the others depend on the engine, and opening with a
// compression the engine cannot write fails with ErrOpen.
const (
	NoCompression      = engine.NoCompression
	SnappyCompression  = engine.SnappyCompression
	ZlibCompression    = engine.ZlibCompression
	ZstdCompression    = engine.ZstdCompression
	ZlibRawCompression = engine.ZlibRawCompression
)

// Options configure how a database is opened.  A nil *Options is the same
// as the value returned by NewOptions.
//
// Setters on closed Options are ignored, and passing closed Options to Open
// fails with ErrReleased.
type Options struct {
	cfg    engine.OpenConfig
	driver string
	closed bool
}

// NewOptions returns Options holding the engine defaults: the database is
// not created when missing, an existing database is not an error, paranoid
// checks are off, and blocks are not compressed.
func NewOptions() *Options {
	return &Options{driver: DefaultDriver}
}

// SetCreateIfMissing sets whether Open creates a missing database.
func (o *Options) SetCreateIfMissing(v bool) {
	if !o.closed {
		o.cfg.CreateIfMissing = v
	}
}

// SetErrorIfExists sets whether Open fails on an existing database.
func (o *Options) SetErrorIfExists(v bool) {
	if !o.closed {
		o.cfg.ErrorIfExists = v
	}
}

// SetParanoidChecks sets whether the engine verifies data aggressively.
func (o *Options) SetParanoidChecks(v bool) {
	if !o.closed {
		o.cfg.ParanoidChecks = v
	}
}

// SetCompression sets the block compression.
func (o *Options) SetCompression(c Compression) {
	if !o.closed {
		o.cfg.Compression = c
	}
}

// SetDriver selects the engine driver by its registered name.  An unknown
// name is reported by Open.
func (o *Options) SetDriver(name string) {
	if !o.closed {
		o.driver = name
	}
}

// Close releases the options.  It is safe to call more than once.
func (o *Options) Close() {
	o.closed = true
}

// ReadOptions configure a single read or iterator creation.  A nil
// *ReadOptions is the same as the value returned by NewReadOptions.
//
// ReadOptions pinned to a snapshot hold a reference to it until Close, so
// they must be closed to let the snapshot go.
type ReadOptions struct {
	cfg    engine.ReadConfig
	snap   *Snapshot
	closed bool
}

// NewReadOptions returns ReadOptions holding the engine defaults: checksums
// are not verified, the block cache is filled, and reads see the latest
// state.
func NewReadOptions() *ReadOptions {
	return &ReadOptions{}
}

// SetVerifyChecksums sets whether reads verify block checksums.
func (o *ReadOptions) SetVerifyChecksums(v bool) {
	if !o.closed {
		o.cfg.VerifyChecksums = v
	}
}

// SetFillCache sets whether blocks read are added to the block cache.
func (o *ReadOptions) SetFillCache(v bool) {
	if !o.closed {
		o.cfg.DontFillCache = !v
	}
}

// SetSnapshot pins reads made with these options to a point-in-time view.
// When src is a *DB a new snapshot is taken now and owned by the options;
// when src is a *Snapshot the options take a reference to it.  A nil src
// unpins the options.  Any previously pinned snapshot is dropped.
func (o *ReadOptions) SetSnapshot(src Snapshotter) error {
	if o.closed {
		return errReleased
	}

	var snap *Snapshot
	if src != nil {
		var err error
		snap, err = src.acquireSnapshot()
		if err != nil {
			return err
		}
	}
	if o.snap != nil {
		o.snap.unref()
	}
	o.snap = snap
	return nil
}

// Snapshot returns the snapshot the options are pinned to, or nil.
func (o *ReadOptions) Snapshot() *Snapshot {
	return o.snap
}

// Close releases the options and their snapshot reference.  It is safe to
// call more than once.
func (o *ReadOptions) Close() {
	if o.closed {
		return
	}
	o.closed = true
	if o.snap != nil {
		o.snap.unref()
		o.snap = nil
	}
}

// WriteOptions configure a single write.  A nil *WriteOptions is the same as
// the value returned by NewWriteOptions.
type WriteOptions struct {
	cfg    engine.WriteConfig
	closed bool
}

// NewWriteOptions returns WriteOptions holding the engine defaults: writes
// are not synced to stable storage before returning.
func NewWriteOptions() *WriteOptions {
	return &WriteOptions{}
}

// SetSync sets whether writes are synced before they return.
func (o *WriteOptions) SetSync(v bool) {
	if !o.closed {
		o.cfg.Sync = v
	}
}

// Close releases the options.  It is safe to call more than once.
func (o *WriteOptions) Close() {
	o.closed = true
}

// writeConfig returns the engine form of o.
func (o *WriteOptions) writeConfig() (*engine.WriteConfig, error) {
	if o == nil {
		return nil, nil
	}
	if o.closed {
		return nil, errReleased
	}
	cfg := o.cfg
	return &cfg, nil
}
