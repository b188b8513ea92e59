// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pebbledb

import (
	"path/filepath"
	"testing"

	"github.com/btcsuite/ldb/engine"
	"github.com/stretchr/testify/require"
)

func TestSuitePebbleDB(t *testing.T) {
	engine.TestSuiteEngine(t, Driver{Cache: 8, Handles: 64})
}

func TestRegistered(t *testing.T) {
	driver, ok := engine.Lookup(DriverName)
	require.True(t, ok, "driver not registered")
	require.Equal(t, DriverName, driver.Name())
}

func openTestDB(t *testing.T) engine.DB {
	db, err := Driver{}.Open(filepath.Join(t.TempDir(), "pebble"),
		&engine.OpenConfig{CreateIfMissing: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMetricsProperty(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Put([]byte("k"), []byte("v"), nil))

	metrics, ok := db.Property(MetricsProperty)
	require.True(t, ok)
	require.NotEmpty(t, metrics)

	_, ok = db.Property("leveldb.stats")
	require.False(t, ok)
}

func TestBatchReuse(t *testing.T) {
	db := openTestDB(t)

	batch := db.NewBatch()
	defer batch.Release()

	batch.Put([]byte("a"), []byte("1"))
	require.NoError(t, db.Write(batch, nil))
	require.ErrorIs(t, db.Write(batch, nil), errBatchApplied)

	// Records added after a write are dropped until the batch is cleared.
	batch.Put([]byte("b"), []byte("2"))
	require.Equal(t, 1, batch.Len())

	batch.Clear()
	batch.Put([]byte("b"), []byte("2"))
	require.NoError(t, db.Write(batch, nil))

	got, err := db.Get([]byte("b"), nil)
	require.NoError(t, err)
	require.Equal(t, []byte("2"), got)
}

func TestReleasedHandles(t *testing.T) {
	db := openTestDB(t)

	batch := db.NewBatch()
	batch.Put([]byte("k"), []byte("v"))
	batch.Release()
	require.Equal(t, 0, batch.Len())
	require.ErrorIs(t, db.Write(batch, nil), errBatchReleased)

	snap, err := db.NewSnapshot()
	require.NoError(t, err)
	snap.Release()

	_, err = db.Get([]byte("k"), &engine.ReadConfig{Snapshot: snap})
	require.ErrorIs(t, err, errSnapshotReleased)
}

func TestCompactEmpty(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.CompactRange(nil, nil))
	require.NoError(t, db.CompactRange([]byte("b"), []byte("a")))
}
