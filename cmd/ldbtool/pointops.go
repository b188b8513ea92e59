// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
)

// errKeyNotFound is returned by the get command for an absent key so the
// tool exits with a failure status.
var errKeyNotFound = errors.New("key not found")

// getCmd defines the configuration options for the get command.
type getCmd struct {
	VerifyChecksums bool `long:"verify" description:"Verify block checksums while reading"`
}

// putCmd defines the configuration options for the put command.
type putCmd struct{}

// deleteCmd defines the configuration options for the delete command.
type deleteCmd struct{}

var (
	getCfg    = getCmd{}
	putCfg    = putCmd{}
	deleteCfg = deleteCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *getCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 1 {
		return errors.New("required key parameter not specified")
	}
	key, err := parseBytes(args[0])
	if err != nil {
		return err
	}

	db, err := loadDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ro := ldbReadOptions(cmd.VerifyChecksums)
	defer ro.Close()

	value, err := db.Get(key, ro)
	if err != nil {
		return err
	}
	if value == nil {
		return errKeyNotFound
	}
	fmt.Fprintln(os.Stdout, formatBytes(value))
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *getCmd) Usage() string {
	return "<key>"
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *putCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 2 {
		return errors.New("required key and value parameters not " +
			"specified")
	}
	key, err := parseBytes(args[0])
	if err != nil {
		return err
	}
	value, err := parseBytes(args[1])
	if err != nil {
		return err
	}

	db, err := loadDB()
	if err != nil {
		return err
	}
	defer db.Close()

	wo := writeOptions()
	defer wo.Close()
	if err := db.Put(key, value, wo); err != nil {
		return err
	}
	log.Infof("Stored %d byte value under key %s", len(value),
		formatBytes(key))
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *putCmd) Usage() string {
	return "<key> <value>"
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *deleteCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 1 {
		return errors.New("required key parameter not specified")
	}
	key, err := parseBytes(args[0])
	if err != nil {
		return err
	}

	db, err := loadDB()
	if err != nil {
		return err
	}
	defer db.Close()

	wo := writeOptions()
	defer wo.Close()
	if err := db.Delete(key, wo); err != nil {
		return err
	}
	log.Infof("Deleted key %s", formatBytes(key))
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *deleteCmd) Usage() string {
	return "<key>"
}
