// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldb

import (
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
)

var errBatchReleased = errors.New("leveldb: batch released")

func newBatch() *Batch {
	return &Batch{batch: new(leveldb.Batch)}
}

// Batch wraps a goleveldb batch.  goleveldb copies keys and values into
// the batch, so callers may reuse their buffers.
type Batch struct {
	batch    *leveldb.Batch
	released bool
}

// Put appends a put record.
func (b *Batch) Put(key, value []byte) {
	if b.released {
		return
	}
	b.batch.Put(key, value)
}

// Delete appends a delete record.
func (b *Batch) Delete(key []byte) {
	if b.released {
		return
	}
	b.batch.Delete(key)
}

// Clear drops every record, keeping the allocated buffer.
func (b *Batch) Clear() {
	if b.released {
		return
	}
	b.batch.Reset()
}

// Len returns the number of records.
func (b *Batch) Len() int {
	if b.released {
		return 0
	}
	return b.batch.Len()
}

// Release drops the batch.
func (b *Batch) Release() {
	if !b.released {
		b.released = true
		b.batch = nil
	}
}
