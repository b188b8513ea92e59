// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/btcsuite/ldb/engine"
	"github.com/btcsuite/ldb/engine/native"
)

// propertyCmd defines the configuration options for the property command.
type propertyCmd struct{}

// driversCmd defines the configuration options for the drivers command.
type driversCmd struct{}

var (
	propertyCfg = propertyCmd{}
	driversCfg  = driversCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *propertyCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 1 {
		return errors.New("required property name not specified")
	}

	db, err := loadDB()
	if err != nil {
		return err
	}
	defer db.Close()

	value, ok := db.Property(args[0])
	if !ok {
		return fmt.Errorf("the %s driver has no property %q",
			db.Driver(), args[0])
	}
	fmt.Fprintln(os.Stdout, value)
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *propertyCmd) Usage() string {
	return "<name>"
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *driversCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	for _, name := range engine.Drivers() {
		if name != native.DriverName {
			fmt.Fprintln(os.Stdout, name)
			continue
		}
		major, minor, err := native.Version()
		if err != nil {
			fmt.Fprintf(os.Stdout, "%s\t(unavailable: %v)\n", name, err)
			continue
		}
		fmt.Fprintf(os.Stdout, "%s\tlibleveldb %d.%d\n", name, major, minor)
	}
	return nil
}
