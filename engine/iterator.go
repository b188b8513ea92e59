// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import "bytes"

// Iterator is a cursor over the key space of a DB or Snapshot.  A freshly
// created iterator is unpositioned and not valid.
//
// Next and Prev must only be called while the iterator is valid; the engines
// disagree on what stepping an invalid cursor means, so callers check Valid
// first.
type Iterator interface {
	// SeekToFirst moves the iterator to the first key/value pair.
	SeekToFirst()

	// SeekToLast moves the iterator to the last key/value pair.
	SeekToLast()

	// Seek moves the iterator to the first key/value pair whose key is
	// greater than or equal to the given key.
	//
	// It is safe to modify the contents of the argument after Seek returns.
	Seek(key []byte)

	// Next moves the iterator to the next key/value pair.
	Next()

	// Prev moves the iterator to the previous key/value pair.
	Prev()

	Valid() bool

	// Error returns any accumulated error. Exhausting all the key/value pairs
	// is not considered to be an error.
	Error() error

	// Key returns the key of the current key/value pair.  The slice is owned
	// by the engine and its contents may change on the next call to any
	// positioning method.
	Key() []byte

	// Value returns the value of the current key/value pair under the same
	// ownership rules as Key.
	Value() []byte

	Releaser
}

// Range is a key range.
type Range struct {
	// Start of the key range, include in the range.
	Start []byte

	// Limit of the key range, not include in the range.
	Limit []byte
}

// BytesPrefix returns key range that satisfy the given prefix.
// This only applicable for the standard 'bytes comparer'.
func BytesPrefix(prefix []byte) *Range {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return &Range{prefix, limit}
}

// Contains reports whether key falls inside the range.  Nil bounds are
// unbounded.
func (r *Range) Contains(key []byte) bool {
	if r == nil {
		return true
	}
	if r.Start != nil && bytes.Compare(key, r.Start) < 0 {
		return false
	}
	return r.Limit == nil || bytes.Compare(key, r.Limit) < 0
}

// emptyIterator is an iterator over nothing that carries a sticky error.
type emptyIterator struct {
	err error
}

// NewEmptyIterator returns an iterator that is never valid and whose Error
// method returns err.
func NewEmptyIterator(err error) Iterator {
	return &emptyIterator{err: err}
}

func (*emptyIterator) SeekToFirst()   {}
func (*emptyIterator) SeekToLast()    {}
func (*emptyIterator) Seek([]byte)    {}
func (*emptyIterator) Next()          {}
func (*emptyIterator) Prev()          {}
func (*emptyIterator) Valid() bool    { return false }
func (*emptyIterator) Key() []byte    { return nil }
func (*emptyIterator) Value() []byte  { return nil }
func (*emptyIterator) Release()       {}
func (i *emptyIterator) Error() error { return i.err }
