package malloc

import (
	"sync"
	"unsafe"
)

// GoAllocator serves allocations from the Go heap. It keeps every live
// block pinned in a registry so the garbage collector cannot reclaim it
// while the replay still holds the raw pointer.
//
// It has no free lists of its own, so its Stats are always zero. Useful on
// platforms without mmap support and as a baseline to compare the arena
// against.
type GoAllocator struct {
	mu     sync.Mutex
	blocks map[uintptr][]byte
	closed bool
}

var _ Allocator = (*GoAllocator)(nil)

// NewGoAllocator returns an empty GC-backed allocator.
func NewGoAllocator() *GoAllocator {
	return &GoAllocator{blocks: make(map[uintptr][]byte)}
}

// Allocate returns a pointer to size usable bytes.
func (g *GoAllocator) Allocate(size uint64) unsafe.Pointer {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.checkOpen(0)
	return g.allocateLocked(size)
}

func (g *GoAllocator) allocateLocked(size uint64) unsafe.Pointer {
	n := size
	if n == 0 {
		// Zero-size allocations still need distinct addresses.
		n = 1
	}
	buf := make([]byte, n)
	ptr := unsafe.Pointer(&buf[0])
	g.blocks[uintptr(ptr)] = buf
	return ptr
}

// Free unpins the block at ptr. A nil ptr is a no-op.
func (g *GoAllocator) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	addr := uintptr(ptr)
	g.checkOpen(addr)
	if _, ok := g.blocks[addr]; !ok {
		panic(&PointerError{Ptr: addr, Reason: "not an allocated block"})
	}
	delete(g.blocks, addr)
}

// Reallocate moves the block at ptr to a new block of size bytes.
func (g *GoAllocator) Reallocate(ptr unsafe.Pointer, size uint64) unsafe.Pointer {
	if ptr == nil {
		return g.Allocate(size)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	addr := uintptr(ptr)
	g.checkOpen(addr)
	old, ok := g.blocks[addr]
	if !ok {
		panic(&PointerError{Ptr: addr, Reason: "not an allocated block"})
	}

	newPtr := g.allocateLocked(size)
	copy(g.blocks[uintptr(newPtr)], old)
	delete(g.blocks, addr)
	return newPtr
}

// Stats returns zero counters; the Go heap has no inspectable free lists.
func (g *GoAllocator) Stats() Stats {
	return Stats{}
}

// checkOpen panics when the allocator has been closed. Requires g.mu held.
func (g *GoAllocator) checkOpen(addr uintptr) {
	if g.closed {
		panic(&PointerError{Ptr: addr, Reason: "allocator closed"})
	}
}

// Close unpins every live block. It is safe to call twice; any other use
// after Close panics.
func (g *GoAllocator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.closed = true
	g.blocks = nil
	return nil
}
