// Package observer implements the registration core: it maps property
// names and glob patterns to handlers and resolves which handlers a
// notification should reach.
//
// An Observer keeps exact-name and pattern registrations separate so that
// exact lookup stays a map access. Registrations obey two rules enforced
// at Observe time:
//
//   - a handler may be registered with at most one pattern;
//   - a handler registered with a pattern cannot also be registered with
//     exact names, and vice versa.
//
// Subjects query HandlersFor and OptionsFor during dispatch; see the model
// package for the subject side.
package observer

import (
	"fmt"
	"sync"
)

// Subject accepts observer registrations. model.Model is the canonical
// implementation.
type Subject interface {
	RegisterObserver(*Observer)
	UnregisterObserver(*Observer)
}

// registration keys the options table by (name or pattern, handler).
type registration struct {
	name    string
	handler Handler
}

type patternEntry struct {
	pattern  string
	handlers []Handler
}

// Observer is a per-instance registry of notification handlers.
// All methods are safe for concurrent use, so registrations may be added
// or removed while a subject is dispatching.
type Observer struct {
	mu       sync.Mutex
	spurious bool

	exact        map[string][]Handler
	patterns     []patternEntry
	patternIndex map[string]int

	namesByHandler   map[Handler]map[string]struct{}
	patternByHandler map[Handler]string
	options          map[registration]Options
}

// New creates an empty observer.
func New() *Observer {
	return &Observer{
		exact:            make(map[string][]Handler),
		patternIndex:     make(map[string]int),
		namesByHandler:   make(map[Handler]map[string]struct{}),
		patternByHandler: make(map[Handler]string),
		options:          make(map[registration]Options),
	}
}

// SetAcceptsSpurious controls whether this observer receives assign
// changes whose value compared equal to the previous one, as in:
//
//	v.Set(v.Get())
//
// The default is false: spurious changes are filtered out.
func (o *Observer) SetAcceptsSpurious(accept bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.spurious = accept
}

// AcceptsSpurious reports whether spurious value changes are delivered.
// Subjects query this when dispatching an assign change.
func (o *Observer) AcceptsSpurious() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.spurious
}

// Observe registers handler for notifications about the named property.
// The name may be a glob pattern (see Match). At least one notification
// kind option must be supplied:
//
//	obs.Observe("counter", h, observer.Assign())
//	obs.Observe("file_*", h, observer.Assign(), observer.Signal())
//
// Observe returns an error for duplicate registrations, for a second
// pattern on the same handler, for mixing pattern and exact registrations
// on one handler, and for malformed patterns.
func (o *Observer) Observe(name string, handler Handler, opts ...Option) error {
	if name == "" {
		return fmt.Errorf("observer: empty property name")
	}
	if handler == nil {
		return fmt.Errorf("observer: nil handler for %q", name)
	}
	options := buildOptions(opts)
	if !options.anyKind() {
		return fmt.Errorf("observer: registration for %q selects no notification kinds", name)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	key := registration{name, handler}
	if _, dup := o.options[key]; dup {
		return fmt.Errorf("observer: handler already registered for %q", name)
	}

	if IsPattern(name) {
		if err := validatePattern(name); err != nil {
			return err
		}
		if pat, ok := o.patternByHandler[handler]; ok {
			return fmt.Errorf("observer: handler already registered with pattern %q (only one pattern per handler)", pat)
		}
		if len(o.namesByHandler[handler]) > 0 {
			return fmt.Errorf("observer: handler has exact registrations; cannot add pattern %q", name)
		}
		o.patternByHandler[handler] = name
		idx, ok := o.patternIndex[name]
		if !ok {
			idx = len(o.patterns)
			o.patterns = append(o.patterns, patternEntry{pattern: name})
			o.patternIndex[name] = idx
		}
		o.patterns[idx].handlers = append(o.patterns[idx].handlers, handler)
	} else {
		if pat, ok := o.patternByHandler[handler]; ok {
			return fmt.Errorf("observer: handler registered with pattern %q; cannot add exact name %q", pat, name)
		}
		if o.namesByHandler[handler] == nil {
			o.namesByHandler[handler] = make(map[string]struct{})
		}
		o.namesByHandler[handler][name] = struct{}{}
		o.exact[name] = append(o.exact[name], handler)
	}

	o.options[key] = options
	return nil
}

// HandlersFor returns the handlers registered for the named property:
// exact registrations first, then pattern matches in registration order,
// deduplicated.
func (o *Observer) HandlersFor(name string) []Handler {
	o.mu.Lock()
	defer o.mu.Unlock()

	var out []Handler
	seen := make(map[Handler]struct{})
	for _, h := range o.exact[name] {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	for _, entry := range o.patterns {
		if !Match(entry.pattern, name) {
			continue
		}
		for _, h := range entry.handlers {
			if _, ok := seen[h]; ok {
				continue
			}
			seen[h] = struct{}{}
			out = append(out, h)
		}
	}
	return out
}

// OptionsFor returns the options of the registration that routes the named
// property to handler. An exact registration wins over the handler's
// pattern.
func (o *Observer) OptionsFor(name string, handler Handler) (Options, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if opts, ok := o.options[registration{name, handler}]; ok {
		return opts, true
	}
	if pat, ok := o.patternByHandler[handler]; ok && Match(pat, name) {
		if opts, ok := o.options[registration{pat, handler}]; ok {
			return opts, true
		}
	}
	return Options{}, false
}

// IsObserving reports whether handler would receive notifications for the
// named property, either through an exact registration or through its
// pattern.
func (o *Observer) IsObserving(name string, handler Handler) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.options[registration{name, handler}]; ok {
		return true
	}
	pat, ok := o.patternByHandler[handler]
	return ok && Match(pat, name)
}

// Remove drops the registrations routing the given property names to
// handler. A name routed through the handler's pattern removes the whole
// pattern registration, not just the one matching name, so use with care.
func (o *Observer) Remove(names []string, handler Handler) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, name := range names {
		if _, ok := o.namesByHandler[handler][name]; ok {
			delete(o.namesByHandler[handler], name)
			o.exact[name] = dropHandler(o.exact[name], handler)
			delete(o.options, registration{name, handler})
			continue
		}
		if pat, ok := o.patternByHandler[handler]; ok && Match(pat, name) {
			delete(o.patternByHandler, handler)
			idx := o.patternIndex[pat]
			o.patterns[idx].handlers = dropHandler(o.patterns[idx].handlers, handler)
			delete(o.options, registration{pat, handler})
		}
	}
}

// Watch starts observing the given subject.
func (o *Observer) Watch(s Subject) {
	s.RegisterObserver(o)
}

// Unwatch stops observing the given subject.
func (o *Observer) Unwatch(s Subject) {
	s.UnregisterObserver(o)
}

func dropHandler(handlers []Handler, target Handler) []Handler {
	for i, h := range handlers {
		if h == target {
			return append(handlers[:i], handlers[i+1:]...)
		}
	}
	return handlers
}
