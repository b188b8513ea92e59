// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leveldb

import (
	"path/filepath"
	"testing"

	"github.com/btcsuite/ldb/engine"
	"github.com/stretchr/testify/require"
)

func TestSuiteLevelDB(t *testing.T) {
	engine.TestSuiteEngine(t, Driver{})
}

func TestRegistered(t *testing.T) {
	driver, ok := engine.Lookup(DriverName)
	require.True(t, ok, "driver not registered")
	require.Equal(t, DriverName, driver.Name())
}

func TestProperty(t *testing.T) {
	db, err := Driver{}.Open(filepath.Join(t.TempDir(), "props"),
		&engine.OpenConfig{CreateIfMissing: true, Compression: engine.SnappyCompression})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Put([]byte("k"), []byte("v"), nil))

	stats, ok := db.Property("leveldb.stats")
	require.True(t, ok)
	require.Contains(t, stats, "Level")

	_, ok = db.Property("leveldb.no-such-property")
	require.False(t, ok)
}

func TestReleasedBatch(t *testing.T) {
	db, err := Driver{}.Open(filepath.Join(t.TempDir(), "batch"),
		&engine.OpenConfig{CreateIfMissing: true})
	require.NoError(t, err)
	defer db.Close()

	batch := db.NewBatch()
	batch.Put([]byte("k"), []byte("v"))
	batch.Release()

	require.Equal(t, 0, batch.Len())
	require.ErrorIs(t, db.Write(batch, nil), errBatchReleased)
}
