// Package frames rebuilds recorded call depth with real stack frames.
//
// A trace stores backtraces as indices into a table of synthetic frames.
// Each table entry is a distinct, never-inlined top-level function, so every
// index contributes its own program counter and symbol name to any
// backtrace captured while the wrapped body runs. A profiler attached to
// the replay therefore observes stacks with the same shape the recorded
// process had, and no two frames collapse into one. Nesting and unwinding
// ride the goroutine call stack itself; the package keeps no depth state.
package frames

//go:generate go run ./gen -count 256 -out zz_generated_frames.go

// Body is the unit of work a synthetic frame wraps. Implementations
// typically re-enter a dispatch loop, so that subsequent records execute
// one stack level deeper.
type Body interface {
	Run()
}

// Count returns the number of distinct frames in the table. Indices at or
// beyond it are served by a shared fallback frame.
func Count() int {
	return frameCount
}

// Call runs body inside the synthetic frame for index. Out-of-range
// indices use the fallback frame, so recorded depth is preserved even for
// frames the table has no dedicated entry for.
func Call(index uint64, body Body) {
	if index < frameCount {
		frameTable[index](body)
	} else {
		frameDefault(body)
	}
}

// anchor embeds a distinct constant into each generated trampoline so that
// no two of them have identical bodies.
//
//go:noinline
func anchor(_ uint64) {}
