// Package malloc provides the allocator that trace replay exercises.
//
// Replaying a recorded allocation workload is only meaningful against an
// allocator whose free lists, locks and fragmentation behave like a native
// malloc. The Arena implementation is that allocator: a real free-list
// allocator over one anonymous memory mapping, with per-size fast bins for
// small blocks. GoAllocator is a garbage-collected fallback for platforms
// without mmap support and for baseline comparisons.
//
// # Thread Safety
//
// All implementations are safe for concurrent use. The Arena serializes on
// a single mutex, and that contention is intentionally part of what a
// multi-worker benchmark measures.
//
// # Failure Semantics
//
// Exhaustion is not an error: Allocate and Reallocate return a nil pointer
// when no space is left, exactly as malloc returns NULL. Handing an
// implementation a pointer it never returned is heap corruption and panics
// with a *PointerError.
package malloc

import (
	"fmt"
	"unsafe"
)

// Allocator kinds selectable from configuration.
const (
	KindArena = "arena"
	KindGo    = "go"
)

// Stats is a point-in-time snapshot of an allocator's free-space counters,
// mirroring the fields a native mallinfo call reports.
type Stats struct {
	// Capacity is the total number of bytes managed by the allocator.
	// Zero for allocators without a fixed region.
	Capacity uint64

	// FreeBytes is the total number of unallocated bytes, including
	// blocks parked in fast bins.
	FreeBytes uint64

	// FastFreeBytes is the number of bytes held in fast bins.
	FastFreeBytes uint64

	// FastFreeBlocks is the number of blocks held in fast bins.
	FastFreeBlocks uint64
}

// Allocator is a malloc-style allocator.
//
// Sizes are byte counts. A zero size is a valid request and returns a
// usable, distinct pointer. Free accepts nil as a no-op. Reallocate with a
// nil pointer behaves as a fresh allocation; on failure it returns nil and
// leaves the original block intact.
type Allocator interface {
	Allocate(size uint64) unsafe.Pointer
	Free(ptr unsafe.Pointer)
	Reallocate(ptr unsafe.Pointer, size uint64) unsafe.Pointer

	// Stats returns the current free-space counters.
	Stats() Stats

	// Close releases everything the allocator holds. No pointer obtained
	// from it may be used afterwards.
	Close() error
}

// New builds an allocator of the given kind. arenaBytes is only consulted
// for KindArena.
func New(kind string, arenaBytes uint64) (Allocator, error) {
	switch kind {
	case KindArena:
		return NewArena(arenaBytes)
	case KindGo:
		return NewGoAllocator(), nil
	default:
		return nil, fmt.Errorf("unknown allocator kind %q", kind)
	}
}

// PointerError reports a pointer handed to an allocator that does not own
// it, or one whose block bookkeeping has been overwritten. It is raised via
// panic: by the time it is detected the heap state is unreliable and
// continuing would corrupt the replay.
type PointerError struct {
	Ptr    uintptr
	Reason string
}

func (e *PointerError) Error() string {
	return fmt.Sprintf("malloc: bad pointer %#x: %s", e.Ptr, e.Reason)
}
