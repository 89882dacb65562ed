package observer

import "github.com/go-drift/observe/pkg/observable"

// Handler receives change notifications. Handler values are used as map
// keys to track registrations, so they must be comparable; a pointer
// receiver satisfies this naturally.
type Handler interface {
	// OnChange is called with a change the handler registered for.
	// The change is the handler's own copy and may be retained.
	OnChange(change *observable.Change)
}

// Func adapts a plain function to a Handler. Each Func has its own
// identity, so two wrappers around the same function count as distinct
// handlers.
type Func struct {
	fn func(*observable.Change)
}

// NewFunc wraps fn in a comparable Handler.
func NewFunc(fn func(*observable.Change)) *Func {
	return &Func{fn: fn}
}

// OnChange invokes the wrapped function.
func (f *Func) OnChange(change *observable.Change) {
	if f.fn != nil {
		f.fn(change)
	}
}
