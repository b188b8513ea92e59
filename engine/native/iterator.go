// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build (darwin || freebsd || linux) && !android

package native

import (
	"runtime"
	"unsafe"
)

func newIterator(it uintptr) *Iterator {
	return &Iterator{it: it}
}

// Iterator wraps a leveldb_iterator_t*.  Key and Value return views of
// memory owned by the C iterator.
type Iterator struct {
	it       uintptr
	released bool
}

func (i *Iterator) SeekToFirst() {
	leveldbIterSeekToFirst(i.it)
}

func (i *Iterator) SeekToLast() {
	leveldbIterSeekToLast(i.it)
}

func (i *Iterator) Seek(key []byte) {
	leveldbIterSeek(i.it, bufPtr(key), uintptr(len(key)))
	runtime.KeepAlive(key)
}

// Next steps forward.  libleveldb requires a valid iterator here.
func (i *Iterator) Next() {
	if i.Valid() {
		leveldbIterNext(i.it)
	}
}

// Prev steps backward.  libleveldb requires a valid iterator here.
func (i *Iterator) Prev() {
	if i.Valid() {
		leveldbIterPrev(i.it)
	}
}

func (i *Iterator) Valid() bool {
	return leveldbIterValid(i.it) != 0
}

func (i *Iterator) Key() []byte {
	if !i.Valid() {
		return nil
	}
	var n uintptr
	p := leveldbIterKey(i.it, &n)
	return cView(p, n)
}

func (i *Iterator) Value() []byte {
	if !i.Valid() {
		return nil
	}
	var n uintptr
	p := leveldbIterValue(i.it, &n)
	return cView(p, n)
}

func (i *Iterator) Error() error {
	var errptr unsafe.Pointer
	leveldbIterGetError(i.it, &errptr)
	return takeError(errptr)
}

// Release destroys the C iterator once.
func (i *Iterator) Release() {
	if !i.released {
		i.released = true
		leveldbIterDestroy(i.it)
	}
}
