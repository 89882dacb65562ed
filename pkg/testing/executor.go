package testing

import "sync"

// ManualExecutor is a model.Executor that queues posted callbacks until
// Flush is called, so tests control exactly when handlers run.
type ManualExecutor struct {
	mu    sync.Mutex
	queue []func()
}

// NewManualExecutor creates an executor with an empty queue.
func NewManualExecutor() *ManualExecutor {
	return &ManualExecutor{}
}

// Post queues fn. It never fails; a nil fn is ignored.
func (e *ManualExecutor) Post(fn func()) error {
	if fn == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queue = append(e.queue, fn)
	return nil
}

// Len returns the number of queued callbacks.
func (e *ManualExecutor) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

// Flush runs queued callbacks on the calling goroutine until the queue is
// empty, including callbacks posted while flushing. It returns the number
// of callbacks run.
func (e *ManualExecutor) Flush() int {
	total := 0
	for {
		e.mu.Lock()
		batch := e.queue
		e.queue = nil
		e.mu.Unlock()
		if len(batch) == 0 {
			return total
		}
		for _, fn := range batch {
			fn()
		}
		total += len(batch)
	}
}
