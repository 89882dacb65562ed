package dispatch

import (
	"errors"
	"sync"

	oerrors "github.com/go-drift/observe/pkg/errors"
)

// DefaultCapacity is the queue capacity NewLoop uses when given a
// non-positive capacity.
const DefaultCapacity = 64

// ErrStopped is returned by Post after the loop has been stopped.
var ErrStopped = errors.New("dispatch: loop is stopped")

// Loop is a bounded callback queue drained by a single owning goroutine.
// Post is safe from any goroutine and blocks when the queue is full,
// applying backpressure to fast producers. Loop implements model.Executor.
//
// Post and Stop are serialized: once Stop returns, every later Post fails
// with ErrStopped, and every callback Post accepted before that still runs
// during Run's final drain. Nothing is dropped.
type Loop struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond
	queue    []func()
	capacity int
	stopped  bool
}

// NewLoop creates a loop with the given queue capacity.
// A capacity <= 0 selects DefaultCapacity.
func NewLoop(capacity int) *Loop {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	l := &Loop{capacity: capacity}
	l.notFull = sync.NewCond(&l.mu)
	l.notEmpty = sync.NewCond(&l.mu)
	return l
}

// Post schedules fn on the owning goroutine. It blocks while the queue is
// full and returns ErrStopped once the loop has been stopped. A nil fn is
// ignored.
func (l *Loop) Post(fn func()) error {
	if fn == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for !l.stopped && len(l.queue) >= l.capacity {
		l.notFull.Wait()
	}
	if l.stopped {
		return ErrStopped
	}
	l.queue = append(l.queue, fn)
	l.notEmpty.Signal()
	return nil
}

// Run drains callbacks on the calling goroutine until Stop is called.
// Callbacks already queued when Stop arrives still run before Run
// returns. A panicking callback is recovered and reported through the
// errors package; the loop keeps running.
func (l *Loop) Run() {
	for {
		l.mu.Lock()
		for !l.stopped && len(l.queue) == 0 {
			l.notEmpty.Wait()
		}
		if len(l.queue) == 0 {
			// Stopped and drained.
			l.mu.Unlock()
			return
		}
		fn := l.queue[0]
		l.queue = l.queue[1:]
		if len(l.queue) == 0 {
			l.queue = nil
		}
		l.notFull.Signal()
		l.mu.Unlock()
		l.invoke(fn)
	}
}

// Stop ends the loop. It is idempotent and safe from any goroutine.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.stopped {
		l.stopped = true
		l.notEmpty.Broadcast()
		l.notFull.Broadcast()
	}
	l.mu.Unlock()
}

// Register installs this loop as the process-wide scheduler.
func (l *Loop) Register() {
	RegisterScheduler(func(callback func()) {
		// Schedule has no error path; dropped callbacks after Stop are
		// reported instead.
		if err := l.Post(callback); err != nil {
			oerrors.Report(&oerrors.ObserveError{
				Op:   "dispatch.Loop",
				Kind: oerrors.KindDispatch,
				Err:  err,
			})
		}
	})
}

func (l *Loop) invoke(fn func()) {
	defer oerrors.Recover("dispatch.Loop")
	fn()
}
