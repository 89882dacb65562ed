// Package model provides the subject side of the observe framework: a
// Model holds named observable properties and fans change notifications
// out to registered observers.
//
// Declare properties with the generic helpers, register observers, then
// mutate:
//
//	m := model.New()
//	counter := model.Value(m, "counter", 0)
//
//	obs := observer.New()
//	obs.Observe("counter", handler, observer.Assign())
//	obs.Watch(m)
//
//	counter.Set(1) // handler.OnChange runs
//
// When the model is mutated from a background goroutine and observers
// must run on a designated goroutine (a UI event loop, typically), set an
// Executor; every handler invocation is then marshaled through it. See
// the dispatch package for the bundled executor.
package model

import (
	"fmt"
	"sync"

	"github.com/go-drift/observe/pkg/errors"
	"github.com/go-drift/observe/pkg/observable"
	"github.com/go-drift/observe/pkg/observer"
)

// Executor marshals handler invocations onto another goroutine.
// dispatch.Loop implements it.
type Executor interface {
	// Post schedules fn to run on the executor's goroutine. It returns an
	// error if the executor is no longer accepting work.
	Post(fn func()) error
}

// Model is a subject holding named observable properties and an ordered
// set of observers. All methods are safe for concurrent use.
type Model struct {
	mu        sync.Mutex
	props     map[string]observable.Property
	order     []string
	observers []*observer.Observer
	exec      Executor
}

// Option configures a Model.
type Option func(*Model)

// WithExecutor marshals every handler invocation through e instead of
// running it inline on the mutating goroutine.
func WithExecutor(e Executor) Option {
	return func(m *Model) { m.exec = e }
}

// New creates a model with no properties.
func New(opts ...Option) *Model {
	m := &Model{props: make(map[string]observable.Property)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetExecutor replaces the executor. Pass nil to deliver notifications
// inline on the mutating goroutine.
func (m *Model) SetExecutor(e Executor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exec = e
}

// RegisterObserver adds o to the observer set. Registration order is
// preserved for dispatch; re-registering an observer is a no-op.
func (m *Model) RegisterObserver(o *observer.Observer) {
	if o == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.observers {
		if existing == o {
			return
		}
	}
	m.observers = append(m.observers, o)
}

// UnregisterObserver removes o from the observer set.
func (m *Model) UnregisterObserver(o *observer.Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.observers {
		if existing == o {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)
			return
		}
	}
}

// HasProperty reports whether a property was declared under name.
func (m *Model) HasProperty(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.props[name]
	return ok
}

// Property returns the property declared under name.
func (m *Model) Property(name string) (observable.Property, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.props[name]
	return p, ok
}

// PropertyNames returns the property names in declaration order.
func (m *Model) PropertyNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.order...)
}

// declare records a property on the model. Declaring a duplicate or
// wildcard-containing name is a programming error and panics, matching
// the declaration-time failure a schema validation would have caught.
func (m *Model) declare(p observable.Property) {
	name := p.Name()
	if name == "" {
		panic("model: property requires a name")
	}
	if observer.IsPattern(name) {
		panic(fmt.Sprintf("model: property name %q contains wildcard characters", name))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.props[name]; dup {
		panic(fmt.Sprintf("model: property %q already declared", name))
	}
	m.props[name] = p
	m.order = append(m.order, name)
}

// publish fans a change out to every matching handler of every registered
// observer. It is installed as the sink of each declared property.
func (m *Model) publish(ch *observable.Change) {
	ch.Model = m

	m.mu.Lock()
	observers := append([]*observer.Observer(nil), m.observers...)
	exec := m.exec
	m.mu.Unlock()

	for _, obs := range observers {
		for _, h := range obs.HandlersFor(ch.Name) {
			opts, ok := obs.OptionsFor(ch.Name, h)
			if !ok || !opts.Wants(ch.Kind) {
				continue
			}
			if ch.Kind == observable.KindAssign && ch.Spurious && !obs.AcceptsSpurious() {
				continue
			}

			// Each handler gets its own copy so registration extras and
			// executor hand-off cannot race.
			delivery := *ch
			if len(opts.Extra) > 0 {
				extra := make(map[string]any, len(opts.Extra))
				for k, v := range opts.Extra {
					extra[k] = v
				}
				delivery.Extra = extra
			}

			if exec == nil {
				invoke(h, &delivery)
				continue
			}
			handler := h
			if err := exec.Post(func() { invoke(handler, &delivery) }); err != nil {
				errors.Report(&errors.ObserveError{
					Op:   "model.Notify",
					Kind: errors.KindDispatch,
					Prop: ch.Name,
					Err:  err,
				})
			}
		}
	}
}

// invoke runs a handler, reporting rather than propagating panics so one
// broken observer cannot take down the mutating goroutine.
func invoke(h observer.Handler, ch *observable.Change) {
	defer errors.Recover("model.Notify")
	h.OnChange(ch)
}
