// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// foreignSnapshot is a snapshot no driver created.
type foreignSnapshot struct{}

func (foreignSnapshot) Release() {}

// collect walks it forward from its current position.
func collect(it Iterator) [][2]string {
	var kvs [][2]string
	for ; it.Valid(); it.Next() {
		kvs = append(kvs, [2]string{string(it.Key()), string(it.Value())})
	}
	return kvs
}

// TestSuiteEngine runs the conformance tests every driver must pass.
func TestSuiteEngine(t *testing.T, driver Driver) {
	open := func(t *testing.T) DB {
		path := filepath.Join(t.TempDir(), driver.Name()+"-testsuite")
		db, err := driver.Open(path, &OpenConfig{CreateIfMissing: true})
		require.NoErrorf(t, err, "failed to open %s", driver.Name())
		require.NotNil(t, db, "driver returned a nil handle without error")
		return db
	}

	t.Run("OpenMissing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "does-not-exist")
		db, err := driver.Open(path, &OpenConfig{})
		require.Error(t, err, "expected error opening a missing database without create")
		require.Nil(t, db)
	})

	t.Run("OpenErrorIfExists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "exists")
		db, err := driver.Open(path, &OpenConfig{CreateIfMissing: true})
		require.NoError(t, err)
		require.NoError(t, db.Close())

		db, err = driver.Open(path, &OpenConfig{ErrorIfExists: true})
		require.Error(t, err, "expected error opening an existing database with error_if_exists")
		require.Nil(t, db)
	})

	t.Run("PointOperations", func(t *testing.T) {
		db := open(t)
		defer db.Close()

		wc := &WriteConfig{}
		rc := &ReadConfig{}

		_, err := db.Get([]byte("missing"), rc)
		require.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, db.Put([]byte("key"), []byte("v1"), wc))
		require.NoError(t, db.Put([]byte("key"), []byte("v2"), wc))
		got, err := db.Get([]byte("key"), rc)
		require.NoError(t, err)
		require.Equal(t, []byte("v2"), got)

		require.NoError(t, db.Put([]byte("empty"), nil, wc))
		got, err = db.Get([]byte("empty"), rc)
		require.NoError(t, err)
		require.NotNil(t, got, "present key with empty value must not look absent")
		require.Len(t, got, 0)

		require.NoError(t, db.Put(nil, []byte("empty-key"), wc))
		got, err = db.Get([]byte{}, rc)
		require.NoError(t, err)
		require.Equal(t, []byte("empty-key"), got)

		require.NoError(t, db.Delete([]byte("key"), wc))
		_, err = db.Get([]byte("key"), rc)
		require.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, db.Delete([]byte("never-existed"), &WriteConfig{Sync: true}))
	})

	t.Run("GetCopiesValue", func(t *testing.T) {
		db := open(t)
		defer db.Close()

		require.NoError(t, db.Put([]byte("k"), []byte("value"), nil))
		got, err := db.Get([]byte("k"), nil)
		require.NoError(t, err)
		got[0] = 'X'

		again, err := db.Get([]byte("k"), nil)
		require.NoError(t, err)
		require.Equal(t, []byte("value"), again)
	})

	t.Run("Batch", func(t *testing.T) {
		db := open(t)
		defer db.Close()

		require.NoError(t, db.Put([]byte("gone"), []byte("x"), nil))

		batch := db.NewBatch()
		defer batch.Release()

		batch.Put([]byte("a"), []byte("1"))
		batch.Put([]byte("b"), []byte("2"))
		batch.Delete([]byte("gone"))
		require.Equal(t, 3, batch.Len())

		// Nothing is visible before the batch is written.
		_, err := db.Get([]byte("a"), nil)
		require.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, db.Write(batch, &WriteConfig{Sync: true}))

		for k, v := range map[string]string{"a": "1", "b": "2"} {
			got, err := db.Get([]byte(k), nil)
			require.NoError(t, err)
			require.Equal(t, []byte(v), got)
		}
		_, err = db.Get([]byte("gone"), nil)
		require.ErrorIs(t, err, ErrNotFound)

		batch.Clear()
		require.Equal(t, 0, batch.Len())
		batch.Put([]byte("c"), []byte("3"))
		require.NoError(t, db.Write(batch, nil))
		got, err := db.Get([]byte("c"), nil)
		require.NoError(t, err)
		require.Equal(t, []byte("3"), got)
	})

	t.Run("SnapshotIsolation", func(t *testing.T) {
		db := open(t)
		defer db.Close()

		require.NoError(t, db.Put([]byte("a"), []byte("old"), nil))

		snap, err := db.NewSnapshot()
		require.NoError(t, err)
		defer snap.Release()

		require.NoError(t, db.Put([]byte("a"), []byte("new"), nil))
		require.NoError(t, db.Put([]byte("b"), []byte("new"), nil))

		rc := &ReadConfig{Snapshot: snap}
		got, err := db.Get([]byte("a"), rc)
		require.NoError(t, err)
		require.Equal(t, []byte("old"), got)

		_, err = db.Get([]byte("b"), rc)
		require.ErrorIs(t, err, ErrNotFound)

		it := db.NewIterator(rc)
		it.SeekToFirst()
		require.Equal(t, [][2]string{{"a", "old"}}, collect(it))
		require.NoError(t, it.Error())
		it.Release()

		got, err = db.Get([]byte("a"), nil)
		require.NoError(t, err)
		require.Equal(t, []byte("new"), got)
	})

	t.Run("ForeignSnapshot", func(t *testing.T) {
		db := open(t)
		defer db.Close()

		rc := &ReadConfig{Snapshot: foreignSnapshot{}}
		_, err := db.Get([]byte("a"), rc)
		require.ErrorIs(t, err, ErrForeignSnapshot)

		it := db.NewIterator(rc)
		it.SeekToFirst()
		require.False(t, it.Valid())
		require.ErrorIs(t, it.Error(), ErrForeignSnapshot)
		it.Release()
	})

	t.Run("Iterator", func(t *testing.T) {
		db := open(t)
		defer db.Close()

		for _, k := range []string{"c", "a", "e", "b"} {
			require.NoError(t, db.Put([]byte(k), []byte("v"+k), nil))
		}

		it := db.NewIterator(nil)
		defer it.Release()

		require.False(t, it.Valid(), "fresh iterator must be unpositioned")

		it.SeekToFirst()
		require.Equal(t, [][2]string{{"a", "va"}, {"b", "vb"}, {"c", "vc"}, {"e", "ve"}}, collect(it))

		it.SeekToLast()
		var backward []string
		for ; it.Valid(); it.Prev() {
			backward = append(backward, string(it.Key()))
		}
		require.Equal(t, []string{"e", "c", "b", "a"}, backward)

		for _, test := range []struct {
			target string
			want   string
		}{
			{"", "a"},
			{"a", "a"},
			{"bb", "c"},
			{"d", "e"},
			{"e", "e"},
			{"f", ""},
		} {
			it.Seek([]byte(test.target))
			if test.want == "" {
				require.Falsef(t, it.Valid(), "seek %q", test.target)
				continue
			}
			require.Truef(t, it.Valid(), "seek %q", test.target)
			require.Equalf(t, []byte(test.want), it.Key(), "seek %q", test.target)
		}

		// Direction switch mid-traversal yields the predecessor.
		it.SeekToFirst()
		it.Next()
		it.Next()
		require.Equal(t, []byte("c"), it.Key())
		it.Prev()
		require.True(t, it.Valid())
		require.Equal(t, []byte("b"), it.Key())

		require.NoError(t, it.Error())
	})

	t.Run("EmptyIterator", func(t *testing.T) {
		db := open(t)
		defer db.Close()

		it := db.NewIterator(nil)
		defer it.Release()

		it.SeekToFirst()
		require.False(t, it.Valid())
		it.SeekToLast()
		require.False(t, it.Valid())
		it.Seek([]byte("anything"))
		require.False(t, it.Valid())
		require.NoError(t, it.Error())
	})

	t.Run("CompactRange", func(t *testing.T) {
		db := open(t)
		defer db.Close()

		for i := 0; i < 500; i++ {
			key := []byte(fmt.Sprintf("key%04d", i))
			require.NoError(t, db.Put(key, bytes.Repeat([]byte{byte(i)}, 64), nil))
		}
		for i := 0; i < 500; i += 2 {
			require.NoError(t, db.Delete([]byte(fmt.Sprintf("key%04d", i)), nil))
		}

		require.NoError(t, db.CompactRange([]byte("key0100"), []byte("key0200")))
		require.NoError(t, db.CompactRange(nil, []byte("key0300")))
		require.NoError(t, db.CompactRange([]byte("key0300"), nil))
		require.NoError(t, db.CompactRange(nil, nil))

		it := db.NewIterator(nil)
		defer it.Release()
		var n int
		for it.SeekToFirst(); it.Valid(); it.Next() {
			n++
		}
		require.NoError(t, it.Error())
		require.Equal(t, 250, n)
	})

	t.Run("Release", func(t *testing.T) {
		db := open(t)

		it := db.NewIterator(nil)
		it.Release()
		it.Release() // multiple calls to release should be safe

		snap, err := db.NewSnapshot()
		require.NoErrorf(t, err, "failed to create snapshot")
		snap.Release()
		snap.Release() // multiple calls to release should be safe

		batch := db.NewBatch()
		batch.Release()
		batch.Release() // multiple calls to release should be safe

		require.NoErrorf(t, db.Close(), "failed to close engine")
	})
}
