package replay

import (
	"fmt"
	"plugin"
)

// Hooks is the tracer-facing side of a replay run.
//
// A profiler attached to the replayed process can expose these entry points
// so that the replay carries the original recording's markers and
// timestamps into the fresh data stream. OverrideNextTimestamp is invoked
// before every allocation-affecting operation with the timestamp the
// operation was originally captured at; SetMarker delimits phases for
// tracer-attached runs.
type Hooks interface {
	SetMarker(marker uint32)
	OverrideNextTimestamp(timestamp uint64)
}

// NopHooks is the binding used when no tracer is attached. Benchmark runs
// always use it.
type NopHooks struct{}

var _ Hooks = NopHooks{}

func (NopHooks) SetMarker(uint32)             {}
func (NopHooks) OverrideNextTimestamp(uint64) {}

// pluginHooks forwards to functions looked up from a loaded plugin.
// A symbol the plugin does not export stays bound to a no-op.
type pluginHooks struct {
	setMarker             func(uint32)
	overrideNextTimestamp func(uint64)
}

var _ Hooks = (*pluginHooks)(nil)

func (h *pluginHooks) SetMarker(marker uint32) {
	if h.setMarker != nil {
		h.setMarker(marker)
	}
}

func (h *pluginHooks) OverrideNextTimestamp(timestamp uint64) {
	if h.overrideNextTimestamp != nil {
		h.overrideNextTimestamp(timestamp)
	}
}

// Plugin symbol names looked up by ResolveHooks.
const (
	symSetMarker             = "SetMarker"
	symOverrideNextTimestamp = "OverrideNextTimestamp"
)

// ResolveHooks binds the optional tracer hooks from a Go plugin.
//
// Resolution happens once at startup, before any replay state exists. It is
// deliberately forgiving: an empty path means no tracer is attached, and a
// plugin that cannot be loaded or that lacks a symbol degrades to the no-op
// binding for what is missing. The returned error is informational; the
// caller logs it as a warning and proceeds with the hooks it got.
func ResolveHooks(path string) (Hooks, error) {
	if path == "" {
		return NopHooks{}, nil
	}

	p, err := plugin.Open(path)
	if err != nil {
		return NopHooks{}, fmt.Errorf("open hooks plugin %q: %w", path, err)
	}

	hooks := &pluginHooks{}

	if sym, err := p.Lookup(symSetMarker); err == nil {
		fn, ok := sym.(func(uint32))
		if !ok {
			return NopHooks{}, fmt.Errorf("hooks plugin %q: %s has type %T, want func(uint32)", path, symSetMarker, sym)
		}
		hooks.setMarker = fn
	}

	if sym, err := p.Lookup(symOverrideNextTimestamp); err == nil {
		fn, ok := sym.(func(uint64))
		if !ok {
			return NopHooks{}, fmt.Errorf("hooks plugin %q: %s has type %T, want func(uint64)", path, symOverrideNextTimestamp, sym)
		}
		hooks.overrideNextTimestamp = fn
	}

	if hooks.setMarker == nil && hooks.overrideNextTimestamp == nil {
		return NopHooks{}, fmt.Errorf("hooks plugin %q exports neither %s nor %s", path, symSetMarker, symOverrideNextTimestamp)
	}

	return hooks, nil
}
