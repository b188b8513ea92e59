// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"
)

// preConfig holds the options that must be known before the full parse.
type preConfig struct {
	ConfigFile string `short:"C" long:"configfile"`
}

// newParser builds the command line parser with every command attached.
func newParser(appName string) *flags.Parser {
	parserFlags := flags.Options(flags.HelpFlag | flags.PassDoubleDash)
	parser := flags.NewNamedParser(appName, parserFlags)
	parser.AddGroup("Global Options", "", cfg)
	parser.AddCommand("get", "Print the value stored under a key", "",
		&getCfg)
	parser.AddCommand("put", "Store a value under a key", "", &putCfg)
	parser.AddCommand("delete", "Remove a key", "", &deleteCfg)
	parser.AddCommand("scan", "Print a range of keys in order",
		"Print the keys and values of a range, in key order or in "+
			"reverse.  The range is bounded by --start and --limit or "+
			"by --prefix.", &scanCfg)
	parser.AddCommand("compact", "Compact a key range",
		"Compact the range [--start, --limit).  Omitted bounds are "+
			"unbounded.", &compactCfg)
	parser.AddCommand("flush", "Compact the whole database", "", &flushCfg)
	parser.AddCommand("load", "Atomically load key/value lines from a file",
		"Read lines of the form key<TAB>value, or -key to delete a key, "+
			"and write them as one atomic batch.  Blank lines and "+
			"lines starting with # are skipped.", &loadCfg)
	parser.AddCommand("property", "Print an engine property",
		"Print an engine property such as leveldb.stats or "+
			"pebble.metrics.", &propertyCfg)
	parser.AddCommand("drivers", "List the available storage engine drivers",
		"", &driversCfg)
	return parser
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))

	// Pre-parse the command line to find an alternative config file.
	var preCfg preConfig
	preParser := flags.NewParser(&preCfg, flags.IgnoreUnknown)
	if _, err := preParser.Parse(); err != nil {
		log.Error(err)
		return err
	}

	parser := newParser(appName)

	// Load the config file first so the command line overrides it.
	if preCfg.ConfigFile != "" {
		err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
		if err != nil {
			log.Errorf("Error parsing config file: %v", err)
			return err
		}
	}

	// Parse command line and invoke the Execute function for the specified
	// command.
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		} else {
			log.Error(err)
		}

		return err
	}

	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
