// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
This test file is part of the ldb package rather than than the ldb_test
package so it can bridge access to the internals to properly test cases which
are either not possible or can't reliably be tested via the public interface.
The functions, constants, and variables are only exported while the tests are
being run.
*/

package ldb

// TstNumErrorCodes makes the internal numErrorCodes parameter available to the
// test package.
const TstNumErrorCodes = numErrorCodes

// TstLiveHandles returns the number of iterators and snapshots db tracks.
func TstLiveHandles(db *DB) (iterators, snapshots int) {
	db.trackMtx.Lock()
	defer db.trackMtx.Unlock()
	return len(db.iterators), len(db.snapshots)
}
