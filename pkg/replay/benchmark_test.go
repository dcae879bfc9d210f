package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koute/bytehound-replay/pkg/malloc"
	"github.com/koute/bytehound-replay/pkg/trace"
)

// benchTrace builds a balanced churn trace: every allocation is freed.
func benchTrace(t *testing.T, slots uint64, rounds int) *trace.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bench.trace")
	w, err := trace.Create(path, slots)
	require.NoError(t, err)

	ts := uint64(0)
	for round := 0; round < rounds; round++ {
		for slot := uint64(0); slot < slots; slot++ {
			ts++
			require.NoError(t, w.Allocate(slot, ts, 32+slot*16))
		}
		for slot := uint64(0); slot < slots; slot++ {
			ts++
			require.NoError(t, w.Free(slot, ts))
		}
	}
	require.NoError(t, w.Close())

	tf, err := trace.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { tf.Close() })
	return tf
}

func TestBenchmark(t *testing.T) {
	t.Run("AllWorkersJoinWithFullCounts", func(t *testing.T) {
		const rounds = 50
		tf := benchTrace(t, 8, rounds)

		alloc := malloc.NewGoAllocator()
		defer alloc.Close()

		report := Benchmark(tf, alloc, 3)

		require.Len(t, report.Workers, 3)
		for _, result := range report.Workers {
			// Each worker replays the whole trace independently.
			assert.Equal(t, uint64(8*rounds), result.Ops, "worker %d", result.Worker)
		}
		assert.NotEmpty(t, report.RunID)
		assert.Equal(t, tf.Fingerprint(), report.Fingerprint)
	})

	t.Run("WorkerIndicesAreStable", func(t *testing.T) {
		tf := benchTrace(t, 2, 3)

		alloc := malloc.NewGoAllocator()
		defer alloc.Close()

		report := Benchmark(tf, alloc, 4)
		for i, result := range report.Workers {
			assert.Equal(t, i, result.Worker)
		}
	})

	t.Run("DefaultWorkerCount", func(t *testing.T) {
		tf := benchTrace(t, 1, 1)

		alloc := malloc.NewGoAllocator()
		defer alloc.Close()

		report := Benchmark(tf, alloc, 0)
		assert.Len(t, report.Workers, DefaultBenchmarkWorkers)
	})

	t.Run("SharedArenaConservesFreeBytes", func(t *testing.T) {
		// Balanced traces return every byte; with the workers contending on
		// one arena the final free-space counters must still match the
		// pre-run snapshot.
		tf := benchTrace(t, 4, 25)

		alloc, err := malloc.NewArena(malloc.MinArenaSize * 16)
		require.NoError(t, err)
		defer alloc.Close()

		before := alloc.Stats()
		Benchmark(tf, alloc, 3)
		after := alloc.Stats()

		assert.Equal(t, before.FreeBytes, after.FreeBytes)
	})
}
