package malloc

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test Helper Functions
// ============================================================================

func newTestArena(t *testing.T) *Arena {
	t.Helper()

	a, err := NewArena(MinArenaSize)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// fill writes a repeating pattern into the block at ptr.
func fill(ptr unsafe.Pointer, size uint64, seed byte) {
	buf := unsafe.Slice((*byte)(ptr), size)
	for i := range buf {
		buf[i] = seed + byte(i)
	}
}

// verify checks the pattern written by fill.
func verify(t *testing.T, ptr unsafe.Pointer, size uint64, seed byte) {
	t.Helper()

	buf := unsafe.Slice((*byte)(ptr), size)
	for i := range buf {
		require.Equal(t, seed+byte(i), buf[i], "byte %d", i)
	}
}

// ============================================================================
// Arena Allocation Tests
// ============================================================================

func TestArena_Allocate(t *testing.T) {
	t.Run("ReturnsAlignedWritableBlocks", func(t *testing.T) {
		a := newTestArena(t)

		p := a.Allocate(100)
		require.NotNil(t, p)
		assert.Zero(t, uintptr(p)%16)

		fill(p, 100, 0x5A)
		verify(t, p, 100, 0x5A)
	})

	t.Run("DistinctPointers", func(t *testing.T) {
		a := newTestArena(t)

		p1 := a.Allocate(32)
		p2 := a.Allocate(32)
		require.NotNil(t, p1)
		require.NotNil(t, p2)
		assert.NotEqual(t, uintptr(p1), uintptr(p2))
	})

	t.Run("ZeroSizeGetsDistinctBlocks", func(t *testing.T) {
		a := newTestArena(t)

		p1 := a.Allocate(0)
		p2 := a.Allocate(0)
		require.NotNil(t, p1)
		require.NotNil(t, p2)
		assert.NotEqual(t, uintptr(p1), uintptr(p2))
	})

	t.Run("OversizedRequestReturnsNil", func(t *testing.T) {
		a := newTestArena(t)

		assert.Nil(t, a.Allocate(MinArenaSize*2))
	})

	t.Run("ExhaustionReturnsNilThenRecovers", func(t *testing.T) {
		a := newTestArena(t)

		var ptrs []unsafe.Pointer
		for {
			p := a.Allocate(1024)
			if p == nil {
				break
			}
			ptrs = append(ptrs, p)
		}
		require.NotEmpty(t, ptrs)

		for _, p := range ptrs {
			a.Free(p)
		}

		assert.NotNil(t, a.Allocate(1024))
	})
}

// ============================================================================
// Arena Free Tests
// ============================================================================

func TestArena_Free(t *testing.T) {
	t.Run("NilIsNoOp", func(t *testing.T) {
		a := newTestArena(t)

		require.NotPanics(t, func() { a.Free(nil) })
	})

	t.Run("SmallBlockParksInFastBin", func(t *testing.T) {
		a := newTestArena(t)

		p := a.Allocate(64)
		a.Free(p)

		stats := a.Stats()
		assert.Equal(t, uint64(1), stats.FastFreeBlocks)
		assert.Equal(t, uint64(64+16), stats.FastFreeBytes)
		assert.Equal(t, stats.Capacity, stats.FreeBytes)
	})

	t.Run("FastBinReusesSameBlock", func(t *testing.T) {
		a := newTestArena(t)

		p1 := a.Allocate(64)
		a.Free(p1)
		p2 := a.Allocate(64)

		assert.Equal(t, uintptr(p1), uintptr(p2))

		stats := a.Stats()
		assert.Zero(t, stats.FastFreeBlocks)
		assert.Zero(t, stats.FastFreeBytes)
	})

	t.Run("LargeBlockSkipsFastBins", func(t *testing.T) {
		a := newTestArena(t)

		p := a.Allocate(4096)
		a.Free(p)

		stats := a.Stats()
		assert.Zero(t, stats.FastFreeBlocks)
		assert.Equal(t, stats.Capacity, stats.FreeBytes)
	})

	t.Run("FreeListSplitsLargeBlocks", func(t *testing.T) {
		a := newTestArena(t)

		big := a.Allocate(8192)
		a.Free(big)

		// A smaller allocation should reuse the freed block's space.
		small := a.Allocate(1024)
		assert.Equal(t, uintptr(big), uintptr(small))
	})
}

// ============================================================================
// Arena Reallocate Tests
// ============================================================================

func TestArena_Reallocate(t *testing.T) {
	t.Run("NilBehavesAsAllocate", func(t *testing.T) {
		a := newTestArena(t)

		p := a.Reallocate(nil, 128)
		require.NotNil(t, p)
		fill(p, 128, 1)
		verify(t, p, 128, 1)
	})

	t.Run("GrowPreservesPayload", func(t *testing.T) {
		a := newTestArena(t)

		p := a.Allocate(100)
		fill(p, 100, 0x42)

		q := a.Reallocate(p, 4000)
		require.NotNil(t, q)
		assert.NotEqual(t, uintptr(p), uintptr(q))
		verify(t, q, 100, 0x42)
	})

	t.Run("ShrinkStaysInPlace", func(t *testing.T) {
		a := newTestArena(t)

		p := a.Allocate(256)
		q := a.Reallocate(p, 100)
		assert.Equal(t, uintptr(p), uintptr(q))
	})

	t.Run("SameRoundedSizeStaysInPlace", func(t *testing.T) {
		a := newTestArena(t)

		p := a.Allocate(100)
		q := a.Reallocate(p, 112) // both round to 112
		assert.Equal(t, uintptr(p), uintptr(q))
	})

	t.Run("FailureKeepsOldBlockAlive", func(t *testing.T) {
		a := newTestArena(t)

		p := a.Allocate(100)
		fill(p, 100, 7)

		q := a.Reallocate(p, MinArenaSize*2)
		assert.Nil(t, q)

		// The original block is untouched and still owned.
		verify(t, p, 100, 7)
		require.NotPanics(t, func() { a.Free(p) })
	})
}

// ============================================================================
// Arena Conservation Tests
// ============================================================================

func TestArena_Conservation(t *testing.T) {
	t.Run("BalancedWorkloadRestoresFreeBytes", func(t *testing.T) {
		a := newTestArena(t)

		initial := a.Stats()
		assert.Equal(t, initial.Capacity, initial.FreeBytes)

		var live []unsafe.Pointer
		sizes := []uint64{16, 64, 100, 512, 513, 1024, 4096, 0, 33}
		for round := 0; round < 4; round++ {
			for _, size := range sizes {
				if p := a.Allocate(size); p != nil {
					live = append(live, p)
				}
			}
			// Free half to churn the bins.
			for i := 0; i < len(live)/2; i++ {
				a.Free(live[i])
			}
			live = live[len(live)/2:]
		}
		for _, p := range live {
			a.Free(p)
		}

		final := a.Stats()
		assert.Equal(t, final.Capacity, final.FreeBytes)
	})

	t.Run("FreeBytesShrinkWhileAllocated", func(t *testing.T) {
		a := newTestArena(t)

		p := a.Allocate(1000)
		stats := a.Stats()
		// 1000 rounds to a 1008-byte payload plus the 16-byte header.
		assert.Equal(t, stats.Capacity-1024, stats.FreeBytes)

		a.Free(p)
		assert.Equal(t, a.Stats().Capacity, a.Stats().FreeBytes)
	})
}

// ============================================================================
// Arena Corruption Tests
// ============================================================================

func TestArena_BadPointers(t *testing.T) {
	t.Run("DoubleFree", func(t *testing.T) {
		a := newTestArena(t)

		p := a.Allocate(64)
		a.Free(p)

		defer func() {
			r := recover()
			require.NotNil(t, r)
			perr, ok := r.(*PointerError)
			require.True(t, ok)
			assert.Contains(t, perr.Error(), "double free")
		}()
		a.Free(p)
	})

	t.Run("ForeignPointer", func(t *testing.T) {
		a := newTestArena(t)

		var local [64]byte
		assert.Panics(t, func() { a.Free(unsafe.Pointer(&local[0])) })
	})

	t.Run("PointerIntoPayload", func(t *testing.T) {
		a := newTestArena(t)

		p := a.Allocate(256)
		inside := unsafe.Pointer(uintptr(p) + 16)
		assert.Panics(t, func() { a.Free(inside) })
	})

	t.Run("MisalignedPointer", func(t *testing.T) {
		a := newTestArena(t)

		p := a.Allocate(256)
		off := unsafe.Pointer(uintptr(p) + 3)
		assert.Panics(t, func() { a.Free(off) })
	})
}

// ============================================================================
// Arena Concurrency Tests
// ============================================================================

func TestArena_Concurrent(t *testing.T) {
	a, err := NewArena(4 * 1024 * 1024)
	require.NoError(t, err)
	defer a.Close()

	const workers = 8
	const rounds = 500

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(seed uint64) {
			defer wg.Done()

			var live []unsafe.Pointer
			for i := 0; i < rounds; i++ {
				size := (seed*31 + uint64(i)*17) % 2048
				if p := a.Allocate(size); p != nil {
					live = append(live, p)
				}
				if len(live) > 16 {
					a.Free(live[0])
					live = live[1:]
				}
			}
			for _, p := range live {
				a.Free(p)
			}
		}(uint64(w))
	}

	wg.Wait()

	stats := a.Stats()
	assert.Equal(t, stats.Capacity, stats.FreeBytes)
}

// ============================================================================
// GoAllocator Tests
// ============================================================================

func TestGoAllocator(t *testing.T) {
	t.Run("AllocateAndFree", func(t *testing.T) {
		g := NewGoAllocator()
		defer g.Close()

		p := g.Allocate(128)
		require.NotNil(t, p)
		fill(p, 128, 9)
		verify(t, p, 128, 9)

		g.Free(p)
	})

	t.Run("FreeNilIsNoOp", func(t *testing.T) {
		g := NewGoAllocator()
		defer g.Close()

		require.NotPanics(t, func() { g.Free(nil) })
	})

	t.Run("ZeroSizeGetsDistinctBlocks", func(t *testing.T) {
		g := NewGoAllocator()
		defer g.Close()

		p1 := g.Allocate(0)
		p2 := g.Allocate(0)
		assert.NotEqual(t, uintptr(p1), uintptr(p2))
	})

	t.Run("ReallocatePreservesPayload", func(t *testing.T) {
		g := NewGoAllocator()
		defer g.Close()

		p := g.Allocate(100)
		fill(p, 100, 3)

		q := g.Reallocate(p, 500)
		require.NotNil(t, q)
		verify(t, q, 100, 3)
	})

	t.Run("ReallocateNilBehavesAsAllocate", func(t *testing.T) {
		g := NewGoAllocator()
		defer g.Close()

		assert.NotNil(t, g.Reallocate(nil, 64))
	})

	t.Run("ForeignPointerPanics", func(t *testing.T) {
		g := NewGoAllocator()
		defer g.Close()

		var local [8]byte
		assert.Panics(t, func() { g.Free(unsafe.Pointer(&local[0])) })
	})

	t.Run("StatsAreZero", func(t *testing.T) {
		g := NewGoAllocator()
		defer g.Close()

		p := g.Allocate(100)
		g.Free(p)
		assert.Equal(t, Stats{}, g.Stats())
	})

	t.Run("CloseTwice", func(t *testing.T) {
		g := NewGoAllocator()
		require.NoError(t, g.Close())
		require.NoError(t, g.Close())
	})

	t.Run("AllocateAfterClosePanics", func(t *testing.T) {
		g := NewGoAllocator()
		require.NoError(t, g.Close())

		defer func() {
			r := recover()
			require.NotNil(t, r)
			perr, ok := r.(*PointerError)
			require.True(t, ok)
			assert.Contains(t, perr.Error(), "allocator closed")
		}()
		g.Allocate(64)
	})

	t.Run("FreeAfterClosePanics", func(t *testing.T) {
		g := NewGoAllocator()
		p := g.Allocate(64)
		require.NoError(t, g.Close())

		assert.Panics(t, func() { g.Free(p) })
		assert.Panics(t, func() { g.Reallocate(p, 128) })
	})
}

// ============================================================================
// Factory Tests
// ============================================================================

func TestNew(t *testing.T) {
	t.Run("Arena", func(t *testing.T) {
		a, err := New(KindArena, MinArenaSize)
		require.NoError(t, err)
		defer a.Close()

		assert.IsType(t, (*Arena)(nil), a)
	})

	t.Run("ArenaTooSmall", func(t *testing.T) {
		_, err := New(KindArena, 1024)
		require.Error(t, err)
	})

	t.Run("Go", func(t *testing.T) {
		a, err := New(KindGo, 0)
		require.NoError(t, err)
		defer a.Close()

		assert.IsType(t, (*GoAllocator)(nil), a)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := New("jemalloc", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jemalloc")
	})
}
