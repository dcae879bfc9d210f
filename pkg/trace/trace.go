// Package trace reads and writes allocation trace files.
//
// A trace file is a flat binary log of allocator operations recorded from a
// profiled process: allocations, frees and reallocations against numbered
// slots, interleaved with enter/exit markers that rebuild the recorded call
// depth. The File type memory-maps a trace read-only; the mapping is
// immutable and can be walked by any number of Cursors concurrently without
// locking. The Writer type produces the same format and is what the trace
// generator and the tests build fixtures with.
package trace

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sys/unix"
)

// Trace file errors
var (
	// ErrTooSmall is returned when a file cannot hold even the header.
	ErrTooSmall = errors.New("trace file too small")

	// ErrTruncated is returned when a record extends past the end of the file.
	ErrTruncated = errors.New("trace file truncated")

	// ErrUnknownKind is returned when a record carries an unrecognized kind tag.
	ErrUnknownKind = errors.New("unknown record kind")

	// ErrClosed is returned when operations are attempted on a closed trace.
	ErrClosed = errors.New("trace file closed")
)

// File is a read-only memory-mapped trace file.
//
// Thread Safety:
// The mapping never changes after Open, so all read paths are safe for
// concurrent use. Close must not be called while cursors are still being
// read.
type File struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	data   []byte // mmap'd region
	closed bool

	slotCount uint64

	fpOnce sync.Once
	fp     string
}

// Open memory-maps the trace file at path for reading.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat trace: %w", err)
	}

	size := info.Size()
	if size < HeaderSize {
		f.Close()
		return nil, ErrTooSmall
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap trace: %w", err)
	}

	return &File{
		path:      path,
		file:      f,
		data:      data,
		slotCount: binary.LittleEndian.Uint64(data[0:wordSize]),
	}, nil
}

// Close unmaps and closes the trace file. It is safe to call twice.
func (t *File) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	var firstErr error
	if t.data != nil {
		if err := unix.Munmap(t.data); err != nil {
			firstErr = fmt.Errorf("munmap trace: %w", err)
		}
		t.data = nil
	}
	if t.file != nil {
		if err := t.file.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close trace: %w", err)
		}
		t.file = nil
	}
	return firstErr
}

// Path returns the path the trace was opened from.
func (t *File) Path() string {
	return t.path
}

// SlotCount returns the number of slots declared by the header. Every slot
// index in the body must be below this value.
func (t *File) SlotCount() uint64 {
	return t.slotCount
}

// Size returns the total file size in bytes.
func (t *File) Size() uint64 {
	return uint64(len(t.data))
}

// BodyBytes returns the size of the record body in bytes.
func (t *File) BodyBytes() uint64 {
	return uint64(len(t.data)) - HeaderSize
}

// Cursor returns a new cursor positioned at the first record. Each caller
// gets an independent cursor; the underlying mapping is shared.
func (t *File) Cursor() *Cursor {
	return &Cursor{data: t.data, off: HeaderSize, start: HeaderSize}
}

// Fingerprint returns a short hex digest of the record body. Two traces with
// the same fingerprint replay the same operations, which makes benchmark
// reports comparable across runs and hosts.
func (t *File) Fingerprint() string {
	t.fpOnce.Do(func() {
		sum := blake2b.Sum256(t.data[HeaderSize:])
		t.fp = fmt.Sprintf("%x", sum[:8])
	})
	return t.fp
}
