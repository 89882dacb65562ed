package testing

import (
	"sync"
	"time"

	"github.com/go-drift/observe/pkg/observable"
)

// Recorder is an observer.Handler that records every change it receives.
// All methods are safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	changes []observable.Change
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnChange records a copy of the change.
func (r *Recorder) OnChange(change *observable.Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, *change)
}

// Count returns the number of recorded changes.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.changes)
}

// Changes returns a copy of the recorded changes in arrival order.
func (r *Recorder) Changes() []observable.Change {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]observable.Change(nil), r.changes...)
}

// Last returns the most recent change, if any.
func (r *Recorder) Last() (observable.Change, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.changes) == 0 {
		return observable.Change{}, false
	}
	return r.changes[len(r.changes)-1], true
}

// Names returns the property names of the recorded changes in order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.changes))
	for i, ch := range r.changes {
		names[i] = ch.Name
	}
	return names
}

// Reset discards all recorded changes.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = nil
}

// Wait blocks until at least n changes have been recorded or the timeout
// elapses, and reports whether the count was reached. Useful when
// deliveries arrive from a dispatch loop on another goroutine.
func (r *Recorder) Wait(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if r.Count() >= n {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
}
