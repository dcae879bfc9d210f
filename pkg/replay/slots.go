package replay

import (
	"fmt"
	"unsafe"

	"github.com/koute/bytehound-replay/pkg/malloc"
	"github.com/koute/bytehound-replay/pkg/trace"
)

// SlotTable maps the trace's logical allocation identifiers to the live
// pointers the allocator handed back for them.
//
// Each engine owns exactly one table; nothing else reads or writes it. The
// table is abandoned at run end without freeing still-live entries: the
// recorded process leaked them, so the replay leaks them too.
type SlotTable struct {
	alloc malloc.Allocator
	ptrs  []unsafe.Pointer
}

// NewSlotTable returns a table of slotCount nil entries backed by alloc.
func NewSlotTable(slotCount uint64, alloc malloc.Allocator) *SlotTable {
	return &SlotTable{
		alloc: alloc,
		ptrs:  make([]unsafe.Pointer, slotCount),
	}
}

// Allocate serves an Allocate record: the slot must currently be empty.
//
// An occupied slot means the trace and the replay have diverged, which is a
// fatal corruption panic. A nil result from the allocator is stored as-is;
// exhaustion is the allocator's answer, not a protocol violation.
func (s *SlotTable) Allocate(rec trace.Record) {
	idx := s.index(rec)
	if s.ptrs[idx] != nil {
		panic(&CorruptTraceError{
			Record: rec,
			Reason: "allocate into occupied slot",
		})
	}
	s.ptrs[idx] = s.alloc.Allocate(rec.Size)
}

// Free serves a Free record. An empty slot is legal: the allocator receives
// nil, which it treats as a no-op, and the slot stays empty.
func (s *SlotTable) Free(rec trace.Record) {
	idx := s.index(rec)
	s.alloc.Free(s.ptrs[idx])
	s.ptrs[idx] = nil
}

// Reallocate serves a Reallocate record. An empty slot is legal and behaves
// as a fresh allocation. The result replaces whatever the slot held,
// including a nil result on exhaustion.
func (s *SlotTable) Reallocate(rec trace.Record) {
	idx := s.index(rec)
	s.ptrs[idx] = s.alloc.Reallocate(s.ptrs[idx], rec.Size)
}

// Len returns the number of slots in the table.
func (s *SlotTable) Len() int {
	return len(s.ptrs)
}

// Ptr returns the pointer currently held by slot, nil when the slot is
// empty or out of range.
func (s *SlotTable) Ptr(slot uint64) unsafe.Pointer {
	if slot >= uint64(len(s.ptrs)) {
		return nil
	}
	return s.ptrs[slot]
}

// index validates the record's slot against the table bounds.
func (s *SlotTable) index(rec trace.Record) uint64 {
	if rec.Slot >= uint64(len(s.ptrs)) {
		panic(&CorruptTraceError{
			Record: rec,
			Reason: fmt.Sprintf("slot beyond declared slot count %d", len(s.ptrs)),
		})
	}
	return rec.Slot
}
