// arena.go implements the mmap-backed free-list allocator.
//
// Block Layout:
// Every block starts with a 16-byte header followed by the payload:
//
//	Header:
//	  - Total block size in bytes: uint64 (header included, multiple of 16)
//	  - State: uint64 (allocated or free)
//
//	Free blocks reuse the first payload word as the next-block link of the
//	free list or fast bin they sit on.
//
// Blocks whose payload is at most 512 bytes recycle through per-size fast
// bins: singly-linked, exact-size, never coalesced. Larger blocks go through
// a first-fit free list with splitting. Fresh space is carved from a bump
// pointer at the tail of the mapping.

package malloc

import (
	"encoding/binary"
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	alignment   = 16
	headerBytes = 16
	minPayload  = alignment
	minBlock    = headerBytes + minPayload

	// maxFastPayload is the largest payload served from fast bins.
	maxFastPayload = 512
	numFastBins    = maxFastPayload / alignment

	// MinArenaSize is the smallest capacity NewArena accepts.
	MinArenaSize = 64 * 1024
)

// nilOffset marks the end of a free list. Offset zero is a valid block, so
// the list terminator has to live out of range.
const nilOffset = ^uint64(0)

// Block states. Fresh mapping memory is zeroed, so neither value may be
// zero: a pointer into untouched or payload memory must fail validation.
const (
	stateAllocated uint64 = 0xA
	stateFree      uint64 = 0xF
)

// Arena is a malloc-style allocator over a single anonymous memory mapping.
//
// The region is carved into blocks on demand and recycled through fast bins
// and a free list, so a replayed workload produces the fragmentation and
// reuse patterns the original process saw. Freed space is never returned to
// the OS; Close drops the whole mapping at once.
type Arena struct {
	mu       sync.Mutex
	region   []byte
	base     uintptr
	capacity uint64

	wildOff  uint64 // next unused byte of the mapping
	freeHead uint64 // first-fit free list of large blocks
	fastBins [numFastBins]uint64

	freeBytes      uint64
	fastFreeBytes  uint64
	fastFreeBlocks uint64

	closed bool
}

var _ Allocator = (*Arena)(nil)

// NewArena maps an anonymous region of the given size and prepares it for
// allocation. The usable capacity is the size rounded down to the block
// alignment.
func NewArena(size uint64) (*Arena, error) {
	if size < MinArenaSize {
		return nil, fmt.Errorf("arena size %d below minimum %d", size, MinArenaSize)
	}

	region, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mmap arena: %w", err)
	}

	a := &Arena{
		region:   region,
		base:     uintptr(unsafe.Pointer(&region[0])),
		capacity: uint64(len(region)) &^ (alignment - 1),
		freeHead: nilOffset,
	}
	a.freeBytes = a.capacity
	for i := range a.fastBins {
		a.fastBins[i] = nilOffset
	}
	return a, nil
}

// Allocate returns a pointer to at least size usable bytes, or nil when the
// arena is exhausted.
func (a *Arena) Allocate(size uint64) unsafe.Pointer {
	a.mu.Lock()
	defer a.mu.Unlock()

	off := a.allocateLocked(size)
	if off == nilOffset {
		return nil
	}
	return a.pointerAt(off)
}

// Free returns the block at ptr to the arena. A nil ptr is a no-op.
func (a *Arena) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.freeLocked(a.ownedOffset(ptr))
}

// Reallocate resizes the block at ptr to size bytes, moving it if needed.
// A nil ptr behaves as a fresh allocation. On exhaustion it returns nil and
// leaves the original block allocated, as realloc does.
func (a *Arena) Reallocate(ptr unsafe.Pointer, size uint64) unsafe.Pointer {
	if ptr == nil {
		return a.Allocate(size)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	off := a.ownedOffset(ptr)
	hdr := off - headerBytes
	oldPayload := a.blockTotal(hdr) - headerBytes

	if roundUp(size) <= oldPayload {
		// The block already has the capacity; shrink in place.
		return ptr
	}

	newOff := a.allocateLocked(size)
	if newOff == nilOffset {
		return nil
	}

	copy(a.region[newOff:newOff+oldPayload], a.region[off:off+oldPayload])
	a.freeLocked(off)
	return a.pointerAt(newOff)
}

// Stats returns the current free-space counters.
func (a *Arena) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Stats{
		Capacity:       a.capacity,
		FreeBytes:      a.freeBytes,
		FastFreeBytes:  a.fastFreeBytes,
		FastFreeBlocks: a.fastFreeBlocks,
	}
}

// Close unmaps the region. Every pointer obtained from the arena is invalid
// afterwards. It is safe to call twice.
func (a *Arena) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	region := a.region
	a.region = nil
	if err := unix.Munmap(region); err != nil {
		return fmt.Errorf("munmap arena: %w", err)
	}
	return nil
}

// ============================================================================
// Allocation internals (all require a.mu held)
// ============================================================================

func (a *Arena) allocateLocked(size uint64) uint64 {
	if size > a.capacity {
		return nilOffset
	}
	payload := roundUp(size)
	total := headerBytes + payload

	if payload <= maxFastPayload {
		if off := a.popFast(payload); off != nilOffset {
			return off
		}
	}

	// First fit through the free list.
	prev := nilOffset
	cur := a.freeHead
	for cur != nilOffset {
		curTotal := a.blockTotal(cur)
		next := a.freeLink(cur)

		if curTotal >= total {
			if prev == nilOffset {
				a.freeHead = next
			} else {
				a.setFreeLink(prev, next)
			}
			a.freeBytes -= curTotal

			if curTotal-total >= minBlock {
				// Split the tail into its own free block.
				tail := cur + total
				a.setBlock(tail, curTotal-total, stateFree)
				a.setFreeLink(tail, a.freeHead)
				a.freeHead = tail
				a.freeBytes += curTotal - total

				a.setBlock(cur, total, stateAllocated)
			} else {
				// Remainder too small to stand alone; keep the slack
				// inside the block.
				a.setBlock(cur, curTotal, stateAllocated)
			}
			return cur + headerBytes
		}

		prev, cur = cur, next
	}

	// Carve from the wilderness.
	if a.capacity-a.wildOff >= total {
		off := a.wildOff
		a.wildOff += total
		a.freeBytes -= total
		a.setBlock(off, total, stateAllocated)
		return off + headerBytes
	}

	return nilOffset
}

func (a *Arena) freeLocked(off uint64) {
	hdr := off - headerBytes
	total := a.blockTotal(hdr)
	payload := total - headerBytes

	a.setState(hdr, stateFree)

	if payload <= maxFastPayload {
		idx := payload/alignment - 1
		a.setFreeLink(hdr, a.fastBins[idx])
		a.fastBins[idx] = hdr
		a.fastFreeBytes += total
		a.fastFreeBlocks++
	} else {
		a.setFreeLink(hdr, a.freeHead)
		a.freeHead = hdr
	}
	a.freeBytes += total
}

// popFast pops an exact-size block off the fast bin for payload, which must
// already be rounded.
func (a *Arena) popFast(payload uint64) uint64 {
	idx := payload/alignment - 1
	hdr := a.fastBins[idx]
	if hdr == nilOffset {
		return nilOffset
	}

	a.fastBins[idx] = a.freeLink(hdr)
	a.setState(hdr, stateAllocated)

	total := a.blockTotal(hdr)
	a.fastFreeBytes -= total
	a.fastFreeBlocks--
	a.freeBytes -= total

	return hdr + headerBytes
}

// ownedOffset validates that ptr points at the payload of a live block and
// returns its payload offset. Anything else is heap corruption.
func (a *Arena) ownedOffset(ptr unsafe.Pointer) uint64 {
	addr := uintptr(ptr)
	if addr < a.base+headerBytes || addr >= a.base+uintptr(a.capacity) {
		panic(&PointerError{Ptr: addr, Reason: "outside arena"})
	}

	off := uint64(addr - a.base)
	if off%alignment != 0 {
		panic(&PointerError{Ptr: addr, Reason: "misaligned"})
	}

	hdr := off - headerBytes
	switch a.blockState(hdr) {
	case stateAllocated:
	case stateFree:
		panic(&PointerError{Ptr: addr, Reason: "double free"})
	default:
		panic(&PointerError{Ptr: addr, Reason: "not an allocated block"})
	}

	total := a.blockTotal(hdr)
	if total < minBlock || total%alignment != 0 || hdr+total > a.wildOff {
		panic(&PointerError{Ptr: addr, Reason: "corrupted block header"})
	}

	return off
}

// ============================================================================
// Block accessors
// ============================================================================

func (a *Arena) blockTotal(hdr uint64) uint64 {
	return binary.LittleEndian.Uint64(a.region[hdr:])
}

func (a *Arena) blockState(hdr uint64) uint64 {
	return binary.LittleEndian.Uint64(a.region[hdr+8:])
}

func (a *Arena) setBlock(hdr, total, state uint64) {
	binary.LittleEndian.PutUint64(a.region[hdr:], total)
	binary.LittleEndian.PutUint64(a.region[hdr+8:], state)
}

func (a *Arena) setState(hdr, state uint64) {
	binary.LittleEndian.PutUint64(a.region[hdr+8:], state)
}

// freeLink reads the next-block link stored in a free block's payload.
func (a *Arena) freeLink(hdr uint64) uint64 {
	return binary.LittleEndian.Uint64(a.region[hdr+headerBytes:])
}

func (a *Arena) setFreeLink(hdr, next uint64) {
	binary.LittleEndian.PutUint64(a.region[hdr+headerBytes:], next)
}

func (a *Arena) pointerAt(off uint64) unsafe.Pointer {
	return unsafe.Pointer(&a.region[off])
}

func roundUp(size uint64) uint64 {
	if size < minPayload {
		size = minPayload
	}
	return (size + alignment - 1) &^ (alignment - 1)
}
