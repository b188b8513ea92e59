// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/btcsuite/ldb"
	"go.uber.org/multierr"
)

// loadCmd defines the configuration options for the load command.
type loadCmd struct {
	DryRun bool `long:"dry-run" description:"Print the batch instead of writing it"`
}

var loadCfg = loadCmd{}

// readBatch parses key<TAB>value and -key lines from r into batch.  Every
// malformed line is reported, and nothing should be written when an error is
// returned.
func readBatch(r io.Reader, batch *ldb.WriteBatch) error {
	var errs error
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "-") {
			key, err := parseBytes(line[1:])
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("line %d: %w",
					lineNum, err))
				continue
			}
			batch.Delete(key)
			continue
		}

		keyStr, valueStr, ok := strings.Cut(line, "\t")
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("line %d: missing "+
				"tab between key and value", lineNum))
			continue
		}
		key, err := parseBytes(keyStr)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w",
				lineNum, err))
			continue
		}
		value, err := parseBytes(valueStr)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w",
				lineNum, err))
			continue
		}
		batch.Put(key, value)
	}
	return multierr.Append(errs, scanner.Err())
}

// batchPrinter prints replayed batch operations in the load file format.
type batchPrinter struct {
	w io.Writer
}

func (p batchPrinter) Put(key, value []byte) {
	fmt.Fprintf(p.w, "%s\t%s\n", formatBytes(key), formatBytes(value))
}

func (p batchPrinter) Delete(key []byte) {
	fmt.Fprintf(p.w, "-%s\n", formatBytes(key))
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *loadCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 1 {
		return errors.New("required file parameter not specified")
	}
	fi, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer fi.Close()

	batch := ldb.NewWriteBatch()
	defer batch.Release()
	if err := readBatch(fi, batch); err != nil {
		return err
	}
	log.Infof("Read %d operations from %s", batch.Len(), args[0])

	if cmd.DryRun {
		return batch.Replay(batchPrinter{os.Stdout})
	}

	db, err := loadDB()
	if err != nil {
		return err
	}
	defer db.Close()

	wo := writeOptions()
	defer wo.Close()
	startTime := time.Now()
	if err := batch.Write(db, wo); err != nil {
		return err
	}
	log.Infof("Wrote %d operations in %v", batch.Len(), time.Since(startTime))
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *loadCmd) Usage() string {
	return "<file>"
}
