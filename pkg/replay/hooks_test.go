package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHooks(t *testing.T) {
	t.Run("EmptyPathIsNop", func(t *testing.T) {
		hooks, err := ResolveHooks("")
		require.NoError(t, err)
		assert.Equal(t, NopHooks{}, hooks)
	})

	t.Run("MissingPluginDegradesToNop", func(t *testing.T) {
		hooks, err := ResolveHooks(filepath.Join(t.TempDir(), "missing.so"))
		assert.Error(t, err, "the caller logs this as a warning")
		assert.Equal(t, NopHooks{}, hooks, "a broken plugin never blocks the replay")
	})
}

func TestPluginHooks(t *testing.T) {
	t.Run("NilFunctionsAreNops", func(t *testing.T) {
		hooks := &pluginHooks{}
		assert.NotPanics(t, func() {
			hooks.SetMarker(7)
			hooks.OverrideNextTimestamp(42)
		})
	})

	t.Run("BoundFunctionsForward", func(t *testing.T) {
		var markers []uint32
		var timestamps []uint64
		hooks := &pluginHooks{
			setMarker:             func(m uint32) { markers = append(markers, m) },
			overrideNextTimestamp: func(ts uint64) { timestamps = append(timestamps, ts) },
		}

		hooks.SetMarker(1)
		hooks.OverrideNextTimestamp(99)
		hooks.OverrideNextTimestamp(100)

		assert.Equal(t, []uint32{1}, markers)
		assert.Equal(t, []uint64{99, 100}, timestamps)
	})
}
