// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldb

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"
)

func newIterator(iter iterator.Iterator) *Iterator {
	return &Iterator{iter: iter}
}

// Iterator adapts a goleveldb iterator to the engine cursor contract.
type Iterator struct {
	iter     iterator.Iterator
	released bool
}

// SeekToFirst moves to the first pair.
func (i *Iterator) SeekToFirst() {
	i.iter.First()
}

// SeekToLast moves to the last pair.
func (i *Iterator) SeekToLast() {
	i.iter.Last()
}

// Seek moves to the first key >= key.
func (i *Iterator) Seek(key []byte) {
	i.iter.Seek(key)
}

// Next steps forward.  goleveldb would reposition an unpositioned iterator
// at the first pair, so stepping is refused while invalid.
func (i *Iterator) Next() {
	if i.iter.Valid() {
		i.iter.Next()
	}
}

// Prev steps backward under the same rule as Next.
func (i *Iterator) Prev() {
	if i.iter.Valid() {
		i.iter.Prev()
	}
}

// Valid reports whether the iterator is positioned at a pair.
func (i *Iterator) Valid() bool {
	return i.iter.Valid()
}

// Key returns the current key, owned by goleveldb.
func (i *Iterator) Key() []byte {
	return i.iter.Key()
}

// Value returns the current value, owned by goleveldb.
func (i *Iterator) Value() []byte {
	return i.iter.Value()
}

// Error returns the accumulated error.
func (i *Iterator) Error() error {
	return i.iter.Error()
}

// Release releases the iterator.
func (i *Iterator) Release() {
	if !i.released {
		i.released = true
		i.iter.Release()
	}
}
