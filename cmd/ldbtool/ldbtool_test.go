// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/btcsuite/ldb"
	"github.com/btcsuite/ldb/engine"
	"github.com/btcsuite/ldb/engine/pebbledb"
	flags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

// withHex sets the --hex option until the test finishes.
func withHex(t *testing.T, hex bool) {
	t.Helper()
	old := cfg.Hex
	cfg.Hex = hex
	t.Cleanup(func() { cfg.Hex = old })
}

func TestParseBytes(t *testing.T) {
	withHex(t, false)
	b, err := parseBytes("00ff")
	require.NoError(t, err)
	require.Equal(t, []byte("00ff"), b)
	require.Equal(t, "00ff", formatBytes(b))

	withHex(t, true)
	b, err = parseBytes("00ff")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0xff}, b)
	require.Equal(t, "00ff", formatBytes(b))

	_, err = parseBytes("zz")
	require.Error(t, err)
}

// recorder records replayed batch operations.
type recorder struct {
	ops []string
}

func (r *recorder) Put(key, value []byte) {
	r.ops = append(r.ops, "put "+string(key)+"="+string(value))
}

func (r *recorder) Delete(key []byte) {
	r.ops = append(r.ops, "del "+string(key))
}

func TestReadBatch(t *testing.T) {
	withHex(t, false)

	input := strings.Join([]string{
		"# comment",
		"a\t1",
		"",
		"b\t",
		"-c",
		"d\tvalue\twith tab",
	}, "\n")

	batch := ldb.NewWriteBatch()
	require.NoError(t, readBatch(strings.NewReader(input), batch))

	var r recorder
	require.NoError(t, batch.Replay(&r))
	require.Equal(t, []string{"put a=1", "put b=", "del c", "put d=value\twith tab"}, r.ops)
}

func TestReadBatchErrors(t *testing.T) {
	withHex(t, true)

	input := "zz\t00\nnotab\n-0g\n0a\t0b\n"
	err := readBatch(strings.NewReader(input), ldb.NewWriteBatch())
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3, "every malformed line is reported")
	require.Contains(t, errs[0].Error(), "line 1")
	require.Contains(t, errs[1].Error(), "line 2")
	require.Contains(t, errs[2].Error(), "line 3")
}

func TestBatchPrinter(t *testing.T) {
	withHex(t, false)

	batch := ldb.NewWriteBatch()
	batch.Put([]byte("k"), []byte("v"))
	batch.Delete([]byte("gone"))

	var buf bytes.Buffer
	require.NoError(t, batch.Replay(batchPrinter{&buf}))
	require.Equal(t, "k\tv\n-gone\n", buf.String())
}

func TestScanRange(t *testing.T) {
	withHex(t, false)

	tests := []struct {
		name    string
		cmd     scanCmd
		want    *engine.Range
		wantErr bool
	}{
		{"unbounded", scanCmd{}, &engine.Range{}, false},
		{"bounds", scanCmd{Start: "a", Limit: "c"},
			&engine.Range{Start: []byte("a"), Limit: []byte("c")}, false},
		{"prefix", scanCmd{Prefix: "ab"},
			&engine.Range{Start: []byte("ab"), Limit: []byte("ac")}, false},
		{"prefix and bounds", scanCmd{Prefix: "a", Start: "b"}, nil, true},
		{"inverted", scanCmd{Start: "c", Limit: "a"}, nil, true},
	}
	for _, test := range tests {
		r, err := test.cmd.scanRange()
		if test.wantErr {
			require.Errorf(t, err, test.name)
			continue
		}
		require.NoErrorf(t, err, test.name)
		require.Equalf(t, test.want, r, test.name)
	}
}

func TestScan(t *testing.T) {
	withHex(t, false)

	opts := ldb.NewOptions()
	opts.SetCreateIfMissing(true)
	db, err := ldb.Open(filepath.Join(t.TempDir(), "scan"), opts)
	require.NoError(t, err)
	defer db.Close()

	for _, k := range []string{"a1", "a2", "b1", "b2", "c1"} {
		require.NoError(t, db.Put([]byte(k), []byte("v"+k), nil))
	}

	tests := []struct {
		name       string
		r          *engine.Range
		reverse    bool
		keysOnly   bool
		maxEntries int
		want       string
	}{
		{"all", &engine.Range{}, false, true, 0, "a1\na2\nb1\nb2\nc1\n"},
		{"all reverse", &engine.Range{}, true, true, 0, "c1\nb2\nb1\na2\na1\n"},
		{"prefix", engine.BytesPrefix([]byte("b")), false, false, 0, "b1\tvb1\nb2\tvb2\n"},
		{"prefix reverse", engine.BytesPrefix([]byte("b")), true, true, 0, "b2\nb1\n"},
		{"bounded reverse", &engine.Range{Start: []byte("a2"), Limit: []byte("b2")}, true, true, 0, "b1\na2\n"},
		{"limit past end reverse", &engine.Range{Limit: []byte("z")}, true, true, 2, "c1\nb2\n"},
		{"max", &engine.Range{Start: []byte("a2")}, false, true, 2, "a2\nb1\n"},
	}
	for _, test := range tests {
		it := db.NewIterator(nil)
		var buf bytes.Buffer
		n, err := scan(&buf, it, test.r, test.reverse, test.keysOnly, test.maxEntries)
		it.Release()
		require.NoErrorf(t, err, test.name)
		require.Equalf(t, test.want, buf.String(), test.name)
		require.Equalf(t, strings.Count(test.want, "\n"), n, test.name)
	}
}

func TestSetupGlobalConfig(t *testing.T) {
	old := *cfg
	t.Cleanup(func() { *cfg = old })

	cfg.Driver = "bogus"
	require.Error(t, setupGlobalConfig())

	cfg.Driver = ldb.DefaultDriver
	cfg.DebugLevel = "loud"
	require.Error(t, setupGlobalConfig())

	cfg.DebugLevel = "off"
	require.NoError(t, setupGlobalConfig())

	cfg.DBPath = ""
	_, err := loadDB()
	require.Error(t, err)
}

func TestCompressionOption(t *testing.T) {
	old := *cfg
	t.Cleanup(func() { *cfg = old })

	tests := []struct {
		choice   string
		driver   string
		opens    bool
		parseErr bool
	}{
		{"none", ldb.DefaultDriver, true, false},
		{"snappy", ldb.DefaultDriver, true, false},
		{"zstd", ldb.DefaultDriver, false, false},
		{"zlib", ldb.DefaultDriver, false, false},
		{"zlib-raw", ldb.DefaultDriver, false, false},
		{"zstd", pebbledb.DriverName, true, false},
		{"zlib-raw", pebbledb.DriverName, false, false},
		{"lz4", ldb.DefaultDriver, false, true},
	}
	for _, test := range tests {
		name := test.driver + "/" + test.choice

		var c config
		parser := flags.NewParser(&c, flags.None)
		_, err := parser.ParseArgs([]string{"--compression", test.choice})
		if test.parseErr {
			require.Errorf(t, err, name)
			continue
		}
		require.NoErrorf(t, err, name)
		require.Containsf(t, compressionTypes, c.Compression, name)

		*cfg = old
		cfg.DebugLevel = "off"
		cfg.Driver = test.driver
		cfg.Compression = c.Compression
		cfg.Create = true
		cfg.DBPath = filepath.Join(t.TempDir(), "db")
		require.NoErrorf(t, setupGlobalConfig(), name)

		db, err := loadDB()
		if !test.opens {
			require.ErrorIsf(t, err, ldb.ErrOpen, name)
			continue
		}
		require.NoErrorf(t, err, name)
		require.NoErrorf(t, db.Close(), name)
	}
}
