// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import "errors"

var (
	// ErrNotFound is returned by DB.Get when the key is absent.  It is the
	// only way a driver may report absence; it is never surfaced to callers
	// of the ldb package as an error.
	ErrNotFound = errors.New("engine: not found")

	// ErrForeignSnapshot is returned when a ReadConfig carries a snapshot
	// that was not created by the driver servicing the call.
	ErrForeignSnapshot = errors.New("engine: snapshot belongs to another driver")
)

// Compression selects the block compression of a newly written table.
type Compression int

const (
	// NoCompression stores blocks uncompressed.  It is the engine default.
	NoCompression Compression = iota

	// SnappyCompression compresses blocks with snappy.
	SnappyCompression

	// ZlibCompression compresses blocks with zlib, framed with the zlib
	// header.
	ZlibCompression

	// ZstdCompression compresses blocks with zstd.
	ZstdCompression

	// ZlibRawCompression compresses blocks with raw deflate.  It is the
	// format of the Minecraft Bedrock worlds written by Mojang's LevelDB
	// fork.
	ZlibRawCompression
)

// ErrUnsupportedCompression is returned by Driver.Open when the engine
// cannot write blocks with the requested compression.  Drivers never fall
// back to another compression.
var ErrUnsupportedCompression = errors.New("engine: unsupported compression")

// String returns the name of the compression type.
func (c Compression) String() string {
	switch c {
	case NoCompression:
		return "none"
	case SnappyCompression:
		return "snappy"
	case ZlibCompression:
		return "zlib"
	case ZstdCompression:
		return "zstd"
	case ZlibRawCompression:
		return "zlib-raw"
	default:
		return "unknown"
	}
}

// OpenConfig is the engine-neutral form of the options used to open a
// database.  The zero value matches the engine defaults.
type OpenConfig struct {
	CreateIfMissing bool
	ErrorIfExists   bool
	ParanoidChecks  bool
	Compression     Compression
}

// ReadConfig is the engine-neutral form of the options of a single read or
// iterator creation.
type ReadConfig struct {
	VerifyChecksums bool

	// DontFillCache is the inverse of the engine's fill_cache flag so that
	// the zero value keeps the engine default of filling the cache.
	DontFillCache bool

	// Snapshot pins the read to a point-in-time view.  Nil reads the latest
	// state.
	Snapshot Snapshot
}

// WriteConfig is the engine-neutral form of the options of a single write.
type WriteConfig struct {
	Sync bool
}

// Driver opens databases of one storage engine.
type Driver interface {
	// Name is the identifier used to register and look up the driver.
	Name() string

	// Open opens or creates the database at path.  A driver whose engine
	// produced neither a handle nor an error message returns a nil DB and
	// a nil error; the caller is expected to report that as a failed open.
	Open(path string, cfg *OpenConfig) (DB, error)
}

// DB is an open engine handle.  The handle is exclusively owned by its
// caller, which must call Close exactly once and must not call any other
// method afterwards.  Concurrent reads are safe; concurrent writes are
// serialized by the engine itself or not at all, depending on the driver.
type DB interface {
	// Get returns a copy of the value stored under key, or ErrNotFound.
	// A present key with an empty value yields a non-nil empty slice.
	Get(key []byte, cfg *ReadConfig) ([]byte, error)

	Put(key, value []byte, cfg *WriteConfig) error

	// Delete removes key.  Deleting an absent key succeeds.
	Delete(key []byte, cfg *WriteConfig) error

	// Write applies every operation in batch atomically.  The batch must
	// have been created by NewBatch on the same DB, and a written batch must
	// be cleared before it is written again.
	Write(batch Batch, cfg *WriteConfig) error

	// CompactRange compacts [start, limit).  A nil bound is unbounded in
	// that direction.
	CompactRange(start, limit []byte) error

	// NewIterator returns an unpositioned iterator.  It must be released
	// before the DB is closed.
	NewIterator(cfg *ReadConfig) Iterator

	// NewSnapshot pins the current state of the database.  The snapshot
	// must be released before the DB is closed.
	NewSnapshot() (Snapshot, error)

	// NewBatch returns an empty batch bound to this DB.
	NewBatch() Batch

	// Property returns an engine statistic by name.
	Property(name string) (string, bool)

	Close() error
}

// Snapshot is an engine-held marker of the database state at a point in
// time.
type Snapshot interface {
	Releaser
}

// Batch buffers writes until they are applied with DB.Write.
type Batch interface {
	Put(key, value []byte)
	Delete(key []byte)
	Clear()
	Len() int
	Releaser
}

// Releaser is implemented by every handle that owns engine resources.
// Release must be called exactly once; drivers make further calls no-ops.
type Releaser interface {
	Release()
}
