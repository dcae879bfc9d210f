package replay

import (
	"github.com/koute/bytehound-replay/pkg/frames"
	"github.com/koute/bytehound-replay/pkg/malloc"
	"github.com/koute/bytehound-replay/pkg/trace"
)

// Engine replays one trace against one allocator.
//
// The engine is single-use and single-goroutine: it owns a private slot
// table and a private cursor, so any number of engines can replay the same
// trace file concurrently as long as each has its own Engine value.
type Engine struct {
	slots  *SlotTable
	cursor *trace.Cursor
	hooks  Hooks

	// ops counts executed Allocate and Reallocate operations. It is the
	// throughput figure a run reports.
	ops uint64
}

// NewEngine prepares a replay of tf against alloc. hooks must not be nil;
// pass NopHooks when no tracer is attached.
func NewEngine(tf *trace.File, alloc malloc.Allocator, hooks Hooks) *Engine {
	return &Engine{
		slots:  NewSlotTable(tf.SlotCount(), alloc),
		cursor: tf.Cursor(),
		hooks:  hooks,
	}
}

// Run replays the whole trace and returns the number of Allocate and
// Reallocate operations executed. Corruption panics, see the package
// documentation.
func (e *Engine) Run() uint64 {
	e.dispatch()
	return e.ops
}

// Ops returns the operation count accumulated so far.
func (e *Engine) Ops() uint64 {
	return e.ops
}

// Slots exposes the engine's slot table for inspection after a run.
func (e *Engine) Slots() *SlotTable {
	return e.slots
}

// dispatch is the operation loop. One invocation corresponds to one
// synthetic stack level: EnterFrame re-enters it through the frame table,
// ExitFrame returns from it, and End returns without consuming the record
// so every enclosing invocation unwinds on the same End.
func (e *Engine) dispatch() {
	for {
		offset := e.cursor.Offset()
		rec, err := e.cursor.Next()
		if err != nil {
			panic(&CorruptTraceError{Offset: offset, Reason: "decode record", Err: err})
		}

		switch rec.Kind {
		case trace.KindEnd:
			return

		case trace.KindAllocate:
			e.ops++
			e.hooks.OverrideNextTimestamp(rec.Timestamp)
			e.slots.Allocate(rec)

		case trace.KindFree:
			e.hooks.OverrideNextTimestamp(rec.Timestamp)
			e.slots.Free(rec)

		case trace.KindReallocate:
			e.ops++
			e.hooks.OverrideNextTimestamp(rec.Timestamp)
			e.slots.Reallocate(rec)

		case trace.KindEnterFrame:
			frames.Call(rec.Frame, frameBody{e})

		case trace.KindExitFrame:
			return
		}
	}
}

// frameBody re-enters the dispatch loop one synthetic stack level deeper.
type frameBody struct {
	engine *Engine
}

func (b frameBody) Run() {
	b.engine.dispatch()
}
