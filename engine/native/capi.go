// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build (darwin || freebsd || linux) && !android

package native

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"go.uber.org/multierr"
)

// C entry points of libleveldb.  Opaque handles are uintptr; buffers and
// C-allocated results are unsafe.Pointer so they are never rebuilt from an
// integer.  Go buffers are passed with an explicit length and kept alive by
// the caller across the call.  size_t maps to uintptr and unsigned char to
// uint8.
var (
	leveldbOptionsCreate             func() uintptr
	leveldbOptionsDestroy            func(opts uintptr)
	leveldbOptionsSetCreateIfMissing func(opts uintptr, v uint8)
	leveldbOptionsSetErrorIfExists   func(opts uintptr, v uint8)
	leveldbOptionsSetParanoidChecks  func(opts uintptr, v uint8)
	leveldbOptionsSetCompression     func(opts uintptr, v int32)

	leveldbReadOptionsCreate             func() uintptr
	leveldbReadOptionsDestroy            func(ro uintptr)
	leveldbReadOptionsSetVerifyChecksums func(ro uintptr, v uint8)
	leveldbReadOptionsSetFillCache       func(ro uintptr, v uint8)
	leveldbReadOptionsSetSnapshot        func(ro, snap uintptr)

	leveldbWriteOptionsCreate  func() uintptr
	leveldbWriteOptionsDestroy func(wo uintptr)
	leveldbWriteOptionsSetSync func(wo uintptr, v uint8)

	leveldbOpen            func(opts uintptr, name string, errptr *unsafe.Pointer) uintptr
	leveldbClose           func(db uintptr)
	leveldbPut             func(db, wo uintptr, key unsafe.Pointer, keylen uintptr, val unsafe.Pointer, vallen uintptr, errptr *unsafe.Pointer)
	leveldbDelete          func(db, wo uintptr, key unsafe.Pointer, keylen uintptr, errptr *unsafe.Pointer)
	leveldbWrite           func(db, wo, batch uintptr, errptr *unsafe.Pointer)
	leveldbGet             func(db, ro uintptr, key unsafe.Pointer, keylen uintptr, vallen *uintptr, errptr *unsafe.Pointer) unsafe.Pointer
	leveldbCreateIterator  func(db, ro uintptr) uintptr
	leveldbCreateSnapshot  func(db uintptr) uintptr
	leveldbReleaseSnapshot func(db, snap uintptr)
	leveldbPropertyValue   func(db uintptr, name string) unsafe.Pointer
	leveldbCompactRange    func(db uintptr, start unsafe.Pointer, startlen uintptr, limit unsafe.Pointer, limitlen uintptr)

	leveldbIterDestroy     func(it uintptr)
	leveldbIterValid       func(it uintptr) uint8
	leveldbIterSeekToFirst func(it uintptr)
	leveldbIterSeekToLast  func(it uintptr)
	leveldbIterSeek        func(it uintptr, key unsafe.Pointer, keylen uintptr)
	leveldbIterNext        func(it uintptr)
	leveldbIterPrev        func(it uintptr)
	leveldbIterKey         func(it uintptr, klen *uintptr) unsafe.Pointer
	leveldbIterValue       func(it uintptr, vlen *uintptr) unsafe.Pointer
	leveldbIterGetError    func(it uintptr, errptr *unsafe.Pointer)

	leveldbWritebatchCreate  func() uintptr
	leveldbWritebatchDestroy func(b uintptr)
	leveldbWritebatchClear   func(b uintptr)
	leveldbWritebatchPut     func(b uintptr, key unsafe.Pointer, keylen uintptr, val unsafe.Pointer, vallen uintptr)
	leveldbWritebatchDelete  func(b uintptr, key unsafe.Pointer, keylen uintptr)

	leveldbFree         func(ptr unsafe.Pointer)
	leveldbMajorVersion func() int32
	leveldbMinorVersion func() int32
)

var symbols = []struct {
	name string
	fptr interface{}
}{
	{"leveldb_options_create", &leveldbOptionsCreate},
	{"leveldb_options_destroy", &leveldbOptionsDestroy},
	{"leveldb_options_set_create_if_missing", &leveldbOptionsSetCreateIfMissing},
	{"leveldb_options_set_error_if_exists", &leveldbOptionsSetErrorIfExists},
	{"leveldb_options_set_paranoid_checks", &leveldbOptionsSetParanoidChecks},
	{"leveldb_options_set_compression", &leveldbOptionsSetCompression},
	{"leveldb_readoptions_create", &leveldbReadOptionsCreate},
	{"leveldb_readoptions_destroy", &leveldbReadOptionsDestroy},
	{"leveldb_readoptions_set_verify_checksums", &leveldbReadOptionsSetVerifyChecksums},
	{"leveldb_readoptions_set_fill_cache", &leveldbReadOptionsSetFillCache},
	{"leveldb_readoptions_set_snapshot", &leveldbReadOptionsSetSnapshot},
	{"leveldb_writeoptions_create", &leveldbWriteOptionsCreate},
	{"leveldb_writeoptions_destroy", &leveldbWriteOptionsDestroy},
	{"leveldb_writeoptions_set_sync", &leveldbWriteOptionsSetSync},
	{"leveldb_open", &leveldbOpen},
	{"leveldb_close", &leveldbClose},
	{"leveldb_put", &leveldbPut},
	{"leveldb_delete", &leveldbDelete},
	{"leveldb_write", &leveldbWrite},
	{"leveldb_get", &leveldbGet},
	{"leveldb_create_iterator", &leveldbCreateIterator},
	{"leveldb_create_snapshot", &leveldbCreateSnapshot},
	{"leveldb_release_snapshot", &leveldbReleaseSnapshot},
	{"leveldb_property_value", &leveldbPropertyValue},
	{"leveldb_compact_range", &leveldbCompactRange},
	{"leveldb_iter_destroy", &leveldbIterDestroy},
	{"leveldb_iter_valid", &leveldbIterValid},
	{"leveldb_iter_seek_to_first", &leveldbIterSeekToFirst},
	{"leveldb_iter_seek_to_last", &leveldbIterSeekToLast},
	{"leveldb_iter_seek", &leveldbIterSeek},
	{"leveldb_iter_next", &leveldbIterNext},
	{"leveldb_iter_prev", &leveldbIterPrev},
	{"leveldb_iter_key", &leveldbIterKey},
	{"leveldb_iter_value", &leveldbIterValue},
	{"leveldb_iter_get_error", &leveldbIterGetError},
	{"leveldb_writebatch_create", &leveldbWritebatchCreate},
	{"leveldb_writebatch_destroy", &leveldbWritebatchDestroy},
	{"leveldb_writebatch_clear", &leveldbWritebatchClear},
	{"leveldb_writebatch_put", &leveldbWritebatchPut},
	{"leveldb_writebatch_delete", &leveldbWritebatchDelete},
	{"leveldb_free", &leveldbFree},
	{"leveldb_major_version", &leveldbMajorVersion},
	{"leveldb_minor_version", &leveldbMinorVersion},
}

var (
	loadOnce sync.Once
	loadErr  error
)

// Load opens the shared library and binds the C API.  Only the first call
// does any work; later calls return its result.
func Load() error {
	loadOnce.Do(func() {
		loadErr = load()
	})
	return loadErr
}

func load() error {
	var errs error
	for _, name := range libraryCandidates() {
		lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if err := bind(lib); err != nil {
			_ = purego.Dlclose(lib)
			return err
		}
		return nil
	}
	return fmt.Errorf("native: unable to load libleveldb: %w", errs)
}

// bind resolves every symbol before registering any of them so that a
// library missing part of the API leaves the function table untouched.
func bind(lib uintptr) error {
	addrs := make([]uintptr, len(symbols))
	for i, sym := range symbols {
		addr, err := purego.Dlsym(lib, sym.name)
		if err != nil {
			return fmt.Errorf("native: missing symbol %s: %w", sym.name, err)
		}
		addrs[i] = addr
	}
	for i, sym := range symbols {
		purego.RegisterFunc(sym.fptr, addrs[i])
	}
	return nil
}

// Version returns the major and minor version of the loaded library.
func Version() (int, int, error) {
	if err := Load(); err != nil {
		return 0, 0, err
	}
	return int(leveldbMajorVersion()), int(leveldbMinorVersion()), nil
}

// emptyBuf backs the pointer passed for zero-length buffers; the C API
// expects a non-null pointer even when the length is zero.
var emptyBuf byte

// bufPtr returns the address of the first byte of b.
func bufPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return unsafe.Pointer(&emptyBuf)
	}
	return unsafe.Pointer(&b[0])
}

// boundPtr is bufPtr for compaction bounds, where nil means unbounded and
// is passed as NULL.
func boundPtr(b []byte) unsafe.Pointer {
	if b == nil {
		return nil
	}
	return bufPtr(b)
}

func cbool(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

// cView returns a slice over n bytes of C memory at p.  The slice is only
// valid while the C owner keeps the memory alive.
func cView(p unsafe.Pointer, n uintptr) []byte {
	if p == nil || n == 0 {
		return []byte{}
	}
	return unsafe.Slice((*byte)(p), n)
}

// cString copies the NUL-terminated string at p.
func cString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	var n uintptr
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(cView(p, n))
}

// takeError converts an error string set through errptr into a Go error and
// frees it.  An empty message yields an error with an empty message, which
// callers report as an unknown error.
func takeError(errptr unsafe.Pointer) error {
	if errptr == nil {
		return nil
	}
	msg := cString(errptr)
	leveldbFree(errptr)
	return &Error{Msg: msg}
}

// Error is an error reported by libleveldb.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}
