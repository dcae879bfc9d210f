package commands

import (
	"fmt"
	"math/rand"

	"github.com/koute/bytehound-replay/pkg/trace"
)

// Options shapes a generated workload.
type Options struct {
	// Ops is the approximate number of Allocate and Reallocate operations
	// to emit (the count a replay of the trace reports).
	Ops uint64

	// Slots is the size of the slot identifier space. Freed slot
	// identifiers are recycled through a stack, like the exporter that
	// writes real traces does.
	Slots uint64

	// Seed drives the workload. Identical options produce byte-identical
	// traces.
	Seed int64

	// MaxDepth bounds the synthetic backtrace's random walk.
	MaxDepth int

	// Leak is the fraction of allocations that are never freed.
	Leak float64

	// Balanced frees every live allocation before the End record, leaked
	// ones included, producing a trace whose replay restores the
	// allocator's free-space counters exactly.
	Balanced bool
}

func (o Options) validate() error {
	if o.Slots == 0 {
		return fmt.Errorf("slots must be positive")
	}
	if o.Leak < 0 || o.Leak > 1 {
		return fmt.Errorf("leak must be between 0.0 and 1.0, got %g", o.Leak)
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("max-depth must not be negative")
	}
	return nil
}

// sizeClasses weights allocation sizes toward the small-block traffic real
// programs produce, with an occasional large block.
var sizeClasses = []uint64{8, 16, 24, 32, 48, 64, 96, 128, 256, 512, 4096, 65536}

// Generate writes a synthetic workload to w. The caller owns w and closes
// it (Close emits the End record).
func Generate(w *trace.Writer, opts Options, rng *rand.Rand) error {
	g := &generator{w: w, opts: opts, rng: rng}

	for g.emittedOps < opts.Ops {
		if err := g.walkStack(); err != nil {
			return err
		}
		if err := g.step(); err != nil {
			return err
		}
	}

	if opts.Balanced {
		// Deepest-first teardown is not required by the format; it just
		// keeps the fixture realistic.
		if err := g.unwind(); err != nil {
			return err
		}
		for _, slot := range g.live {
			if err := g.free(slot); err != nil {
				return err
			}
		}
		g.live = g.live[:0]
		for _, slot := range g.leaked {
			if err := g.free(slot); err != nil {
				return err
			}
		}
		g.leaked = g.leaked[:0]
	}

	return nil
}

// generator carries the workload state across steps.
type generator struct {
	w    *trace.Writer
	opts Options
	rng  *rand.Rand

	clock      uint64 // microseconds
	emittedOps uint64

	depth int // current synthetic stack depth

	nextSlot  uint64   // lowest never-used slot identifier
	freeSlots []uint64 // recycled slot identifiers
	live      []uint64 // slots holding a freeable allocation
	leaked    []uint64 // slots holding a never-freed allocation
}

// step emits one operation chosen from the workload mix.
func (g *generator) step() error {
	switch {
	case len(g.live) == 0:
		return g.allocate()
	case g.rng.Float64() < 0.45:
		return g.allocate()
	case g.rng.Float64() < 0.25:
		return g.reallocate()
	default:
		return g.free(g.takeLive())
	}
}

func (g *generator) allocate() error {
	slot, ok := g.takeSlot()
	if !ok {
		// Slot space exhausted; drain a live allocation instead.
		if len(g.live) == 0 {
			return fmt.Errorf("slot space %d too small for workload", g.opts.Slots)
		}
		return g.free(g.takeLive())
	}

	g.clock += uint64(g.rng.Intn(50)) + 1
	if err := g.w.Allocate(slot, g.clock, g.size()); err != nil {
		return err
	}
	g.emittedOps++

	if g.rng.Float64() < g.opts.Leak {
		g.leaked = append(g.leaked, slot)
	} else {
		g.live = append(g.live, slot)
	}
	return nil
}

func (g *generator) reallocate() error {
	slot := g.live[g.rng.Intn(len(g.live))]
	g.clock += uint64(g.rng.Intn(50)) + 1
	if err := g.w.Reallocate(slot, g.clock, g.size()); err != nil {
		return err
	}
	g.emittedOps++
	return nil
}

func (g *generator) free(slot uint64) error {
	g.clock += uint64(g.rng.Intn(50)) + 1
	if err := g.w.Free(slot, g.clock); err != nil {
		return err
	}
	g.freeSlots = append(g.freeSlots, slot)
	return nil
}

// takeSlot hands out a slot identifier, preferring recycled ones.
func (g *generator) takeSlot() (uint64, bool) {
	if n := len(g.freeSlots); n > 0 {
		slot := g.freeSlots[n-1]
		g.freeSlots = g.freeSlots[:n-1]
		return slot, true
	}
	if g.nextSlot < g.opts.Slots {
		slot := g.nextSlot
		g.nextSlot++
		return slot, true
	}
	return 0, false
}

// takeLive removes and returns a random live slot.
func (g *generator) takeLive() uint64 {
	i := g.rng.Intn(len(g.live))
	slot := g.live[i]
	g.live[i] = g.live[len(g.live)-1]
	g.live = g.live[:len(g.live)-1]
	return slot
}

func (g *generator) size() uint64 {
	return sizeClasses[g.rng.Intn(len(sizeClasses))]
}

// walkStack nudges the synthetic backtrace toward a random target depth,
// emitting the delta as ExitFrame records up to the common prefix and
// EnterFrame records down to the new leaf. This is the same shape the
// exporter derives from consecutive captured backtraces.
func (g *generator) walkStack() error {
	if g.opts.MaxDepth == 0 {
		return nil
	}

	target := g.rng.Intn(g.opts.MaxDepth + 1)
	for g.depth > target {
		if err := g.w.ExitFrame(); err != nil {
			return err
		}
		g.depth--
	}
	for g.depth < target {
		if err := g.w.EnterFrame(uint64(g.rng.Intn(512))); err != nil {
			return err
		}
		g.depth++
	}
	return nil
}

// unwind exits every open synthetic frame.
func (g *generator) unwind() error {
	for g.depth > 0 {
		if err := g.w.ExitFrame(); err != nil {
			return err
		}
		g.depth--
	}
	return nil
}
