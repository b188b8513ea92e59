// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pebbledb

import (
	"github.com/cockroachdb/pebble"
)

func newIterator(iter *pebble.Iterator) *Iterator {
	return &Iterator{iter: iter}
}

// Iterator adapts a pebble iterator to the engine cursor contract.
type Iterator struct {
	iter     *pebble.Iterator
	released bool
}

func (i *Iterator) SeekToFirst() {
	i.iter.First()
}

func (i *Iterator) SeekToLast() {
	i.iter.Last()
}

// Seek moves to the first key >= key.
func (i *Iterator) Seek(key []byte) {
	i.iter.SeekGE(key)
}

// Next steps forward.  Pebble treats Next on an unpositioned iterator as
// First, so stepping is refused while invalid.
func (i *Iterator) Next() {
	if i.iter.Valid() {
		i.iter.Next()
	}
}

func (i *Iterator) Prev() {
	if i.iter.Valid() {
		i.iter.Prev()
	}
}

func (i *Iterator) Valid() bool {
	return i.iter.Valid()
}

func (i *Iterator) Key() []byte {
	if !i.iter.Valid() { // return nil if the iterator is exhausted
		return nil
	}
	return i.iter.Key()
}

func (i *Iterator) Value() []byte {
	if !i.iter.Valid() { // return nil if the iterator is exhausted
		return nil
	}
	return i.iter.Value()
}

func (i *Iterator) Error() error {
	return i.iter.Error()
}

// Release closes the iterator once.
func (i *Iterator) Release() {
	if !i.released {
		i.released = true
		i.iter.Close()
	}
}
