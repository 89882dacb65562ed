// Package dispatch bridges notifications across goroutines: a bounded
// queue of callbacks drained by the goroutine that owns observer
// handlers.
//
// Hosts that already have an event loop install it once with
// RegisterScheduler; code that needs to reach that loop calls Schedule.
// Hosts without a loop can run the bundled Loop, which doubles as a
// model.Executor:
//
//	loop := dispatch.NewLoop(0)
//	m := model.New(model.WithExecutor(loop))
//	go worker(m)
//	loop.Run() // observer handlers run here
package dispatch

import "sync"

var (
	schedulerMu sync.RWMutex
	scheduler   func(callback func())
)

// RegisterScheduler sets the function used to move callbacks onto the
// goroutine that runs observer handlers. A host event loop should call
// this once during initialization; Loop.Register does it for the bundled
// loop.
func RegisterScheduler(fn func(callback func())) {
	schedulerMu.Lock()
	scheduler = fn
	schedulerMu.Unlock()
}

// Schedule hands a callback to the registered scheduler. It returns true
// if the callback was accepted, false if no scheduler is registered or
// the callback is nil.
func Schedule(callback func()) bool {
	schedulerMu.RLock()
	fn := scheduler
	schedulerMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}
