// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ldb

import "fmt"

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific database Error.
const (
	// ErrInvalidPath indicates the database path can not be passed to the
	// storage engine, such as a path containing a NUL byte.
	ErrInvalidPath ErrorCode = iota

	// ErrOpen indicates the storage engine failed to open or create the
	// database.
	ErrOpen

	// ErrRead indicates a point read failed inside the storage engine.
	ErrRead

	// ErrWrite indicates a put, delete, or batch write failed inside the
	// storage engine.
	ErrWrite

	// ErrUnknown indicates the storage engine signalled a failure without
	// a message.
	ErrUnknown

	// ErrDBClosed indicates an operation was attempted on a database that
	// has been closed, or through a handle that was invalidated when its
	// database closed.
	ErrDBClosed

	// ErrReleased indicates an options object, snapshot, iterator, or
	// batch was used after it was closed or released.
	ErrReleased

	// ErrInvalidArgument indicates a caller error such as an unknown
	// driver name or a snapshot that belongs to a different database.
	ErrInvalidArgument

	// ErrIterator indicates the storage engine reported an error while
	// iterating.
	ErrIterator

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidPath:     "ErrInvalidPath",
	ErrOpen:            "ErrOpen",
	ErrRead:            "ErrRead",
	ErrWrite:           "ErrWrite",
	ErrUnknown:         "ErrUnknown",
	ErrDBClosed:        "ErrDBClosed",
	ErrReleased:        "ErrReleased",
	ErrInvalidArgument: "ErrInvalidArgument",
	ErrIterator:        "ErrIterator",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error satisfies the error interface so an ErrorCode can be the target of
// errors.Is.
func (e ErrorCode) Error() string {
	return e.String()
}

// Error provides a single type for errors that can happen during database
// operation.  It is used to indicate several types of failures including
// errors reported by the storage engine and misuse of released handles.
//
// The caller can use type assertions to determine if an error is an Error
// and access the ErrorCode field to ascertain the specific reason for the
// failure, or simply test with errors.Is against an ErrorCode.
//
// The ErrUnknown, ErrOpen, ErrRead, ErrWrite, and ErrIterator codes will
// usually have the Err field set to the underlying engine error.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
	Err         error     // Underlying error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap returns the underlying engine error, if any.
func (e Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the same ErrorCode, or an Error carrying the
// same ErrorCode.
func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case ErrorCode:
		return e.ErrorCode == t
	case Error:
		return e.ErrorCode == t.ErrorCode
	case *Error:
		return t != nil && e.ErrorCode == t.ErrorCode
	}
	return false
}

// makeError creates an Error given a set of arguments.  The error code must
// be one of the error codes provided by this package.
func makeError(c ErrorCode, desc string, err error) Error {
	return Error{ErrorCode: c, Description: desc, Err: err}
}

// engineError translates an error reported by the storage engine.  An error
// without a message carries no information beyond the failure itself and
// becomes ErrUnknown.
func engineError(c ErrorCode, desc string, err error) error {
	if err.Error() == "" {
		return makeError(ErrUnknown, "unknown error", nil)
	}
	return makeError(c, desc, err)
}

// Commonly returned liveness errors.
var (
	errDBClosed = makeError(ErrDBClosed, "database is closed", nil)
	errReleased = makeError(ErrReleased, "handle has been released", nil)
)
