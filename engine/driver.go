// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
	"sort"
	"sync"
)

var (
	driversMtx sync.RWMutex
	drivers    = make(map[string]Driver)
)

// Register adds a driver to the set of available engines.  Drivers call it
// from their init function.  Registering two drivers under the same name is
// a programming error and panics.
func Register(driver Driver) {
	driversMtx.Lock()
	defer driversMtx.Unlock()

	name := driver.Name()
	if _, exists := drivers[name]; exists {
		panic(fmt.Sprintf("engine: driver %q is already registered", name))
	}
	drivers[name] = driver
}

// Lookup returns the driver registered under name.
func Lookup(name string) (Driver, bool) {
	driversMtx.RLock()
	defer driversMtx.RUnlock()

	driver, ok := drivers[name]
	return driver, ok
}

// Drivers returns the sorted names of the registered drivers.
func Drivers() []string {
	driversMtx.RLock()
	defer driversMtx.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
