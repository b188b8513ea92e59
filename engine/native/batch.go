// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build (darwin || freebsd || linux) && !android

package native

import (
	"errors"
	"runtime"
)

var errBatchReleased = errors.New("native: batch released")

func newBatch(db uintptr) *Batch {
	return &Batch{db: db, batch: leveldbWritebatchCreate()}
}

// Batch wraps a leveldb_writebatch_t*.  The C API has no record count, so
// the batch counts records itself.
type Batch struct {
	db       uintptr
	batch    uintptr
	count    int
	released bool
}

// Put appends a put record.  libleveldb copies key and value.
func (b *Batch) Put(key, value []byte) {
	if b.released {
		return
	}
	leveldbWritebatchPut(b.batch, bufPtr(key), uintptr(len(key)),
		bufPtr(value), uintptr(len(value)))
	runtime.KeepAlive(key)
	runtime.KeepAlive(value)
	b.count++
}

// Delete appends a delete record.
func (b *Batch) Delete(key []byte) {
	if b.released {
		return
	}
	leveldbWritebatchDelete(b.batch, bufPtr(key), uintptr(len(key)))
	runtime.KeepAlive(key)
	b.count++
}

func (b *Batch) Clear() {
	if b.released {
		return
	}
	leveldbWritebatchClear(b.batch)
	b.count = 0
}

func (b *Batch) Len() int {
	return b.count
}

// Release destroys the C batch once.
func (b *Batch) Release() {
	if !b.released {
		b.released = true
		b.count = 0
		leveldbWritebatchDestroy(b.batch)
	}
}
