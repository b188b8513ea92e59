// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/btcsuite/ldb"
	"github.com/btcsuite/ldb/engine"
)

// scanCmd defines the configuration options for the scan command.
type scanCmd struct {
	Start    string `long:"start" description:"First key of the range (inclusive)"`
	Limit    string `long:"limit" description:"End of the range (exclusive)"`
	Prefix   string `long:"prefix" description:"Only keys with this prefix; replaces --start and --limit"`
	Reverse  bool   `long:"reverse" description:"Print keys in descending order"`
	KeysOnly bool   `long:"keys-only" description:"Print keys without values"`
	Max      int    `long:"max" description:"Stop after this many entries (0 for no limit)"`
	Snapshot bool   `long:"snapshot" description:"Read from a snapshot taken before the scan starts"`
	Verify   bool   `long:"verify" description:"Verify block checksums while reading"`
}

var scanCfg = scanCmd{}

// ldbReadOptions returns read options that do not pollute the block cache,
// as a scan or a one-off read would only evict hotter blocks.
func ldbReadOptions(verify bool) *ldb.ReadOptions {
	ro := ldb.NewReadOptions()
	ro.SetFillCache(false)
	ro.SetVerifyChecksums(verify)
	return ro
}

// scanRange resolves the command's bounds.
func (cmd *scanCmd) scanRange() (*engine.Range, error) {
	if cmd.Prefix != "" {
		if cmd.Start != "" || cmd.Limit != "" {
			return nil, errors.New("--prefix can not be combined " +
				"with --start or --limit")
		}
		prefix, err := parseBytes(cmd.Prefix)
		if err != nil {
			return nil, err
		}
		return engine.BytesPrefix(prefix), nil
	}

	var r engine.Range
	var err error
	if cmd.Start != "" {
		if r.Start, err = parseBytes(cmd.Start); err != nil {
			return nil, err
		}
	}
	if cmd.Limit != "" {
		if r.Limit, err = parseBytes(cmd.Limit); err != nil {
			return nil, err
		}
	}
	if r.Start != nil && r.Limit != nil && bytes.Compare(r.Start, r.Limit) > 0 {
		return nil, errors.New("--start must not be greater than --limit")
	}
	return &r, nil
}

// scan writes the entries of it inside r to w and returns how many it
// wrote.  A maxEntries of zero means no limit.
func scan(w io.Writer, it *ldb.Iterator, r *engine.Range, reverse, keysOnly bool, maxEntries int) (int, error) {
	if reverse {
		// Position at the last key below the limit.
		if r.Limit != nil {
			it.Seek(r.Limit)
			if it.Valid() {
				it.Prev()
			} else {
				it.SeekToLast()
			}
		} else {
			it.SeekToLast()
		}
	} else if r.Start != nil {
		it.Seek(r.Start)
	} else {
		it.SeekToFirst()
	}

	var n int
	for maxEntries == 0 || n < maxEntries {
		var (
			key, value []byte
			ok         bool
		)
		if reverse {
			key, value, ok = it.PrevEntry()
		} else {
			key, value, ok = it.NextEntry()
		}
		if !ok || !r.Contains(key) {
			break
		}
		if keysOnly {
			value = nil
		}
		printEntry(w, key, value)
		n++
	}
	return n, it.Err()
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *scanCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}
	if cmd.Max < 0 {
		return errors.New("--max must not be negative")
	}
	r, err := cmd.scanRange()
	if err != nil {
		return err
	}

	db, err := loadDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ro := ldbReadOptions(cmd.Verify)
	defer ro.Close()
	if cmd.Snapshot {
		if err := ro.SetSnapshot(db); err != nil {
			return err
		}
	}

	it := db.NewIterator(ro)
	defer it.Release()

	n, err := scan(os.Stdout, it, r, cmd.Reverse, cmd.KeysOnly, cmd.Max)
	if err != nil {
		return err
	}
	log.Debugf("Scanned %d entries", n)
	return nil
}
