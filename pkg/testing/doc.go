// Package testing provides helpers for testing observe-based code.
//
// Import it with an alias to avoid clashing with the standard library:
//
//	import obstest "github.com/go-drift/observe/pkg/testing"
//
// Recorder is a Handler that records every change it receives:
//
//	rec := obstest.NewRecorder()
//	obs.Observe("counter", rec, observer.Assign())
//	obs.Watch(m)
//	counter.Set(1)
//	changes := rec.Changes()
//
// ManualExecutor queues executor posts until Flush, making cross-goroutine
// delivery deterministic in tests:
//
//	exec := obstest.NewManualExecutor()
//	m := model.New(model.WithExecutor(exec))
//	counter.Set(1)   // nothing delivered yet
//	exec.Flush()     // handlers run here, on the test goroutine
package testing
