package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/koute/bytehound-replay/pkg/malloc"
)

func TestNilSafeHelpers(t *testing.T) {
	// Metrics disabled: every helper must be a free no-op on the nil
	// instance the constructors return.
	var m ReplayMetrics

	assert.NotPanics(t, func() {
		RecordRun(m, 100, time.Second)
		RecordWorker(m, 0, 100, time.Second)
		RecordAllocatorStats(m, malloc.Stats{FreeBytes: 1})
	})
}

func TestNewReplayMetricsDisabled(t *testing.T) {
	assert.Nil(t, NewReplayMetrics(), "no registry, no metrics")
}
