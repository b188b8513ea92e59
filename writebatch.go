// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ldb

import "github.com/btcsuite/ldb/engine"

// recordKind identifies a buffered batch operation.
type recordKind uint8

const (
	recordPut recordKind = iota
	recordDelete
)

// batchRecord locates one operation inside the batch data buffer.
type batchRecord struct {
	kind             recordKind
	keyPos, keyLen   int
	valuePos, valLen int
}

// BatchReplay receives the operations of a WriteBatch in order.
type BatchReplay interface {
	Put(key, value []byte)
	Delete(key []byte)
}

// WriteBatch buffers an ordered list of puts and deletes that Write applies
// atomically.  Buffering never touches a database and never fails.  Keys and
// values are copied into the batch, so callers may reuse their buffers.
//
// A batch is not tied to a database until it is written, is not consumed by
// Write, and may be written again or cleared for reuse.  The engine batch
// built for the last database written to is kept and cleared on the next
// write to that database.  A WriteBatch is not safe for concurrent use.
type WriteBatch struct {
	data     []byte
	records  []batchRecord
	released bool

	// ebatch is the engine batch of owner.
	ebatch engine.Batch
	owner  *DB
}

// NewWriteBatch returns an empty batch.
func NewWriteBatch() *WriteBatch {
	return &WriteBatch{}
}

func (b *WriteBatch) appendRecord(kind recordKind, key, value []byte) {
	if b.released {
		return
	}
	rec := batchRecord{kind: kind, keyPos: len(b.data), keyLen: len(key)}
	b.data = append(b.data, key...)
	if kind == recordPut {
		rec.valuePos, rec.valLen = len(b.data), len(value)
		b.data = append(b.data, value...)
	}
	b.records = append(b.records, rec)
}

// Put buffers storing value under key.
func (b *WriteBatch) Put(key, value []byte) {
	b.appendRecord(recordPut, key, value)
}

// Delete buffers removing key.
func (b *WriteBatch) Delete(key []byte) {
	b.appendRecord(recordDelete, key, nil)
}

// Len returns the number of buffered operations.
func (b *WriteBatch) Len() int {
	return len(b.records)
}

// Clear drops every buffered operation.  The buffers are kept for reuse.
func (b *WriteBatch) Clear() {
	b.data = b.data[:0]
	b.records = b.records[:0]
}

// Replay passes every buffered operation to r in order.
func (b *WriteBatch) Replay(r BatchReplay) error {
	if b.released {
		return errReleased
	}
	for _, rec := range b.records {
		key := b.data[rec.keyPos : rec.keyPos+rec.keyLen]
		switch rec.kind {
		case recordPut:
			r.Put(key, b.data[rec.valuePos:rec.valuePos+rec.valLen])
		case recordDelete:
			r.Delete(key)
		}
	}
	return nil
}

// Write applies every buffered operation to db as one atomic unit.  Either
// all of them become visible or, on error, none do.  The batch keeps its
// contents either way, so a failed write can be retried.
func (b *WriteBatch) Write(db *DB, wo *WriteOptions) error {
	if b == nil {
		return makeError(ErrInvalidArgument, "write batch is nil", nil)
	}
	if db == nil {
		return makeError(ErrInvalidArgument, "database is nil", nil)
	}
	if b.released {
		return errReleased
	}

	db.mtx.RLock()
	defer db.mtx.RUnlock()

	if db.closed {
		return errDBClosed
	}
	cfg, err := wo.writeConfig()
	if err != nil {
		return err
	}

	ebatch := b.engineBatch(db)
	if err := b.Replay(ebatch); err != nil {
		return err
	}
	if err := db.edb.Write(ebatch, cfg); err != nil {
		return engineError(ErrWrite, "failed to write batch", err)
	}
	log.Tracef("Wrote batch of %d operations to %s", len(b.records), db.path)
	return nil
}

// engineBatch returns an empty engine batch of db, reusing the one built by
// the previous write when it went to the same database.  It must be called
// with the read lock of db held.
func (b *WriteBatch) engineBatch(db *DB) engine.Batch {
	if b.ebatch != nil && b.owner == db {
		b.ebatch.Clear()
		return b.ebatch
	}
	b.releaseEngineBatch()
	b.ebatch, b.owner = db.edb.NewBatch(), db
	return b.ebatch
}

func (b *WriteBatch) releaseEngineBatch() {
	if b.ebatch != nil {
		b.ebatch.Release()
		b.ebatch, b.owner = nil, nil
	}
}

// Release drops the buffered operations and their buffers.  A released
// batch ignores further operations and can not be written.
func (b *WriteBatch) Release() {
	b.released = true
	b.data = nil
	b.records = nil
	b.releaseEngineBatch()
}
