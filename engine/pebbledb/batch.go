// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pebbledb

import (
	"github.com/cockroachdb/pebble"
)

func newBatch(batch *pebble.Batch) *Batch {
	return &Batch{batch: batch}
}

// Batch wraps a pebble batch.  Pebble copies keys and values into the batch
// representation, so callers may reuse their buffers.
type Batch struct {
	batch    *pebble.Batch
	applied  bool
	released bool
}

// Put appends a set record.  Records added to a written batch are dropped
// until the batch is cleared.
func (b *Batch) Put(key, value []byte) {
	if b.released || b.applied {
		return
	}
	_ = b.batch.Set(key, value, nil)
}

// Delete appends a delete record.
func (b *Batch) Delete(key []byte) {
	if b.released || b.applied {
		return
	}
	_ = b.batch.Delete(key, nil)
}

// Clear drops every record and makes a written batch writable again.
func (b *Batch) Clear() {
	if b.released {
		return
	}
	b.batch.Reset()
	b.applied = false
}

func (b *Batch) Len() int {
	if b.released {
		return 0
	}
	return int(b.batch.Count())
}

// Release closes the batch once.
func (b *Batch) Release() {
	if !b.released {
		b.released = true
		b.batch.Close()
	}
}
