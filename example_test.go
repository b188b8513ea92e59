// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ldb_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/ldb"
)

// This example demonstrates opening a database, storing a few keys with an
// atomic batch, and reading them back with an iterator.
func Example_basicUsage() {
	// Typically the database would live somewhere permanent, but for this
	// example a temporary directory is used.
	dir, err := os.MkdirTemp("", "ldb-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	opts := ldb.NewOptions()
	defer opts.Close()
	opts.SetCreateIfMissing(true)

	db, err := ldb.Open(filepath.Join(dir, "exampledb"), opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer db.Close()

	batch := ldb.NewWriteBatch()
	defer batch.Release()
	batch.Put([]byte("apple"), []byte("red"))
	batch.Put([]byte("banana"), []byte("yellow"))
	batch.Put([]byte("cherry"), []byte("dark red"))
	batch.Delete([]byte("banana"))
	if err := batch.Write(db, nil); err != nil {
		fmt.Println(err)
		return
	}

	value, err := db.Get([]byte("banana"), nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("banana present:", value != nil)

	it := db.NewIterator(nil)
	defer it.Release()
	for it.SeekToFirst(); it.Valid(); it.Next() {
		fmt.Printf("%s: %s\n", it.Key(), it.Value())
	}
	if err := it.Err(); err != nil {
		fmt.Println(err)
	}

	// Output:
	// banana present: false
	// apple: red
	// cherry: dark red
}

// This example demonstrates reading a fixed view of the database through a
// snapshot while the database keeps changing.
func ExampleReadOptions_SetSnapshot() {
	dir, err := os.MkdirTemp("", "ldb-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	opts := ldb.NewOptions()
	defer opts.Close()
	opts.SetCreateIfMissing(true)

	db, err := ldb.Open(filepath.Join(dir, "exampledb"), opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer db.Close()

	if err := db.Put([]byte("counter"), []byte("1"), nil); err != nil {
		fmt.Println(err)
		return
	}

	// Pin the read options to the current state of the database.
	ro := ldb.NewReadOptions()
	defer ro.Close()
	if err := ro.SetSnapshot(db); err != nil {
		fmt.Println(err)
		return
	}

	if err := db.Put([]byte("counter"), []byte("2"), nil); err != nil {
		fmt.Println(err)
		return
	}

	pinned, _ := db.Get([]byte("counter"), ro)
	latest, _ := db.Get([]byte("counter"), nil)
	fmt.Printf("pinned=%s latest=%s\n", pinned, latest)

	// Output:
	// pinned=1 latest=2
}
