// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/ldb"
	"github.com/btcsuite/ldb/engine"
	_ "github.com/btcsuite/ldb/engine/pebbledb"
)

var (
	// Default global config.
	cfg = &config{
		Driver:      ldb.DefaultDriver,
		Compression: "none",
		DebugLevel:  "info",
	}
)

// config defines the global configuration options.
type config struct {
	ConfigFile  string `short:"C" long:"configfile" description:"Path to an INI configuration file" no-ini:"true"`
	DBPath      string `short:"b" long:"db" description:"Database directory"`
	Driver      string `long:"driver" description:"Storage engine driver {leveldb, pebble, native}"`
	Create      bool   `long:"create" description:"Create the database if it does not exist"`
	Paranoid    bool   `long:"paranoid" description:"Enable paranoid engine checks"`
	Compression string `long:"compression" description:"Block compression of new tables" choice:"none" choice:"snappy" choice:"zlib" choice:"zstd" choice:"zlib-raw"`
	Hex         bool   `long:"hex" description:"Keys and values are given and printed as hex"`
	Sync        bool   `long:"sync" description:"Sync writes to stable storage before returning"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile     string `long:"logfile" description:"Also write the log to this file, rotating it as it grows"`
}

// compressionTypes maps the --compression choices to compression types.
var compressionTypes = map[string]ldb.Compression{
	"none":     ldb.NoCompression,
	"snappy":   ldb.SnappyCompression,
	"zlib":     ldb.ZlibCompression,
	"zstd":     ldb.ZstdCompression,
	"zlib-raw": ldb.ZlibRawCompression,
}

// validDriver returns whether or not driver is a registered engine driver.
func validDriver(driver string) bool {
	_, ok := engine.Lookup(driver)
	return ok
}

// setupGlobalConfig examine the global configuration options for any conditions
// which are invalid as well as performs any addition setup necessary after the
// initial parse.
func setupGlobalConfig() error {
	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return err
	}
	if cfg.LogFile != "" && logRotator == nil {
		if err := initLogRotator(cfg.LogFile); err != nil {
			return err
		}
	}

	// Validate database type.
	if !validDriver(cfg.Driver) {
		str := "the specified driver [%v] is invalid -- " +
			"supported drivers %v"
		return fmt.Errorf(str, cfg.Driver, engine.Drivers())
	}

	if _, ok := compressionTypes[cfg.Compression]; !ok {
		return fmt.Errorf("the specified compression [%v] is invalid",
			cfg.Compression)
	}

	return nil
}

// loadDB opens the database named by the global config.
func loadDB() (*ldb.DB, error) {
	if cfg.DBPath == "" {
		return nil, errors.New("the database directory must be " +
			"specified with --db")
	}

	opts := ldb.NewOptions()
	defer opts.Close()
	opts.SetDriver(cfg.Driver)
	opts.SetCreateIfMissing(cfg.Create)
	opts.SetParanoidChecks(cfg.Paranoid)
	opts.SetCompression(compressionTypes[cfg.Compression])

	log.Debugf("Loading %s database from '%s'", cfg.Driver, cfg.DBPath)
	db, err := ldb.Open(cfg.DBPath, opts)
	if err != nil {
		return nil, err
	}
	log.Debugf("Database loaded")
	return db, nil
}

// writeOptions returns the write options named by the global config.
func writeOptions() *ldb.WriteOptions {
	wo := ldb.NewWriteOptions()
	wo.SetSync(cfg.Sync)
	return wo
}

// parseBytes converts a command line argument into a key or value.
func parseBytes(arg string) ([]byte, error) {
	if !cfg.Hex {
		return []byte(arg), nil
	}
	b, err := hex.DecodeString(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", arg, err)
	}
	return b, nil
}

// formatBytes converts a key or value for printing.
func formatBytes(b []byte) string {
	if cfg.Hex {
		return hex.EncodeToString(b)
	}
	return string(b)
}

// printEntry prints a key and, unless value is nil, its value.
func printEntry(w io.Writer, key, value []byte) {
	if value == nil {
		fmt.Fprintln(w, formatBytes(key))
		return
	}
	fmt.Fprintf(w, "%s\t%s\n", formatBytes(key), formatBytes(value))
}
