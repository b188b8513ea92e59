// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ldb_test

import (
	"errors"
	"testing"

	"github.com/btcsuite/ldb"
	"github.com/stretchr/testify/require"
)

// TestErrorCodeStringer tests the stringized output for the ErrorCode type.
func TestErrorCodeStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   ldb.ErrorCode
		want string
	}{
		{ldb.ErrInvalidPath, "ErrInvalidPath"},
		{ldb.ErrOpen, "ErrOpen"},
		{ldb.ErrRead, "ErrRead"},
		{ldb.ErrWrite, "ErrWrite"},
		{ldb.ErrUnknown, "ErrUnknown"},
		{ldb.ErrDBClosed, "ErrDBClosed"},
		{ldb.ErrReleased, "ErrReleased"},
		{ldb.ErrInvalidArgument, "ErrInvalidArgument"},
		{ldb.ErrIterator, "ErrIterator"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	// Detect additional error codes that don't have the stringer added.
	if len(tests)-1 != int(ldb.TstNumErrorCodes) {
		t.Errorf("It appears an error code was added without adding " +
			"an associated stringer test")
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\ngot: %s\nwant: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   ldb.Error
		want string
	}{
		{
			ldb.Error{Description: "some error"},
			"some error",
		},
		{
			ldb.Error{Description: "human-readable error"},
			"human-readable error",
		},
		{
			ldb.Error{
				ErrorCode:   ldb.ErrRead,
				Description: "failed to read key",
				Err:         errors.New("leveldb: corrupted block"),
			},
			"failed to read key: leveldb: corrupted block",
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("Error #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestErrorIs ensures errors match by code and unwrap to the engine error.
func TestErrorIs(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := error(ldb.Error{ErrorCode: ldb.ErrWrite, Description: "failed", Err: cause})

	require.ErrorIs(t, err, ldb.ErrWrite)
	require.ErrorIs(t, err, ldb.Error{ErrorCode: ldb.ErrWrite})
	require.ErrorIs(t, err, &ldb.Error{ErrorCode: ldb.ErrWrite})
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, ldb.ErrRead)

	var dbErr ldb.Error
	require.True(t, errors.As(err, &dbErr))
	require.Equal(t, ldb.ErrWrite, dbErr.ErrorCode)
}
