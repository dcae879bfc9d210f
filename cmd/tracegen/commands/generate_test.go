package commands

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koute/bytehound-replay/pkg/malloc"
	"github.com/koute/bytehound-replay/pkg/replay"
	"github.com/koute/bytehound-replay/pkg/trace"
)

func generateBytes(t *testing.T, opts Options) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := trace.NewWriter(&buf, opts.Slots)
	require.NoError(t, err)
	require.NoError(t, Generate(w, opts, rand.New(rand.NewSource(opts.Seed))))
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func generateFile(t *testing.T, opts Options) *trace.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gen.trace")
	require.NoError(t, os.WriteFile(path, generateBytes(t, opts), 0644))

	tf, err := trace.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { tf.Close() })
	return tf
}

func TestGenerate(t *testing.T) {
	// Slot space sized so the leaked fraction can never exhaust it.
	base := Options{Ops: 2000, Slots: 512, Seed: 7, MaxDepth: 16, Leak: 0.1}

	t.Run("SameSeedSameBytes", func(t *testing.T) {
		first := generateBytes(t, base)
		second := generateBytes(t, base)
		assert.Equal(t, first, second)
	})

	t.Run("DifferentSeedDifferentBytes", func(t *testing.T) {
		other := base
		other.Seed = 8
		assert.NotEqual(t, generateBytes(t, base), generateBytes(t, other))
	})

	t.Run("ReplaysToExactOpCount", func(t *testing.T) {
		tf := generateFile(t, base)

		alloc := malloc.NewGoAllocator()
		defer alloc.Close()

		ops := replay.NewEngine(tf, alloc, replay.NopHooks{}).Run()
		assert.Equal(t, base.Ops, ops)
	})

	t.Run("BalancedConservesArenaFreeBytes", func(t *testing.T) {
		opts := base
		opts.Balanced = true
		tf := generateFile(t, opts)

		alloc, err := malloc.NewArena(malloc.MinArenaSize * 64)
		require.NoError(t, err)
		defer alloc.Close()

		before := alloc.Stats()
		replay.NewEngine(tf, alloc, replay.NopHooks{}).Run()
		after := alloc.Stats()

		assert.Equal(t, before.FreeBytes, after.FreeBytes)
	})

	t.Run("FlatWorkloadWithZeroDepth", func(t *testing.T) {
		opts := base
		opts.MaxDepth = 0
		tf := generateFile(t, opts)

		alloc := malloc.NewGoAllocator()
		defer alloc.Close()

		ops := replay.NewEngine(tf, alloc, replay.NopHooks{}).Run()
		assert.Equal(t, opts.Ops, ops)
	})

	t.Run("TinySlotSpaceStillTerminates", func(t *testing.T) {
		opts := Options{Ops: 500, Slots: 4, Seed: 3, MaxDepth: 4}
		tf := generateFile(t, opts)

		alloc := malloc.NewGoAllocator()
		defer alloc.Close()

		ops := replay.NewEngine(tf, alloc, replay.NopHooks{}).Run()
		assert.Equal(t, opts.Ops, ops)
	})
}

func TestOptionsValidate(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		assert.NoError(t, Options{Ops: 1, Slots: 1}.validate())
	})

	t.Run("ZeroSlots", func(t *testing.T) {
		assert.Error(t, Options{Ops: 1}.validate())
	})

	t.Run("LeakOutOfRange", func(t *testing.T) {
		assert.Error(t, Options{Ops: 1, Slots: 1, Leak: 1.5}.validate())
	})

	t.Run("NegativeDepth", func(t *testing.T) {
		assert.Error(t, Options{Ops: 1, Slots: 1, MaxDepth: -1}.validate())
	})
}
