// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"
)

// compactCmd defines the configuration options for the compact command.
type compactCmd struct {
	Start string `long:"start" description:"First key of the range (inclusive)"`
	Limit string `long:"limit" description:"End of the range (exclusive)"`
}

// flushCmd defines the configuration options for the flush command.
type flushCmd struct{}

var (
	compactCfg = compactCmd{}
	flushCfg   = flushCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *compactCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	var start, limit []byte
	var err error
	if cmd.Start != "" {
		if start, err = parseBytes(cmd.Start); err != nil {
			return err
		}
	}
	if cmd.Limit != "" {
		if limit, err = parseBytes(cmd.Limit); err != nil {
			return err
		}
	}

	db, err := loadDB()
	if err != nil {
		return err
	}
	defer db.Close()

	log.Infof("Compacting %s", db.Path())
	startTime := time.Now()
	db.CompactRange(start, limit)
	log.Infof("Compacted in %v", time.Since(startTime))
	return nil
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *flushCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	db, err := loadDB()
	if err != nil {
		return err
	}
	defer db.Close()

	log.Infof("Flushing %s", db.Path())
	startTime := time.Now()
	db.Flush()
	log.Infof("Flushed in %v", time.Since(startTime))
	return nil
}
