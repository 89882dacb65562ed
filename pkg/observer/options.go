package observer

import "github.com/go-drift/observe/pkg/observable"

// Options describes a single registration: which notification kinds the
// handler wants, plus extra key/values delivered in Change.Extra.
type Options struct {
	// Assign selects scalar value changes.
	Assign bool
	// Before selects pre-mutation container changes.
	Before bool
	// After selects post-mutation container changes.
	After bool
	// Signal selects signal emissions.
	Signal bool
	// Extra is attached to every delivered change for this registration.
	Extra map[string]any
}

// Option configures a registration made with Observer.Observe.
type Option func(*Options)

// Assign requests notification of scalar value changes.
func Assign() Option {
	return func(o *Options) { o.Assign = true }
}

// Before requests notification ahead of container mutations.
func Before() Option {
	return func(o *Options) { o.Before = true }
}

// After requests notification after container mutations.
func After() Option {
	return func(o *Options) { o.After = true }
}

// Signal requests notification of signal emissions.
func Signal() Option {
	return func(o *Options) { o.Signal = true }
}

// Extra attaches a key/value pair to every change delivered through this
// registration. Handlers read it from Change.Extra.
func Extra(key string, value any) Option {
	return func(o *Options) {
		if o.Extra == nil {
			o.Extra = make(map[string]any)
		}
		o.Extra[key] = value
	}
}

// Wants reports whether the registration selected the given change kind.
func (o Options) Wants(kind observable.Kind) bool {
	switch kind {
	case observable.KindAssign:
		return o.Assign
	case observable.KindBefore:
		return o.Before
	case observable.KindAfter:
		return o.After
	case observable.KindSignal:
		return o.Signal
	}
	return false
}

func (o Options) anyKind() bool {
	return o.Assign || o.Before || o.After || o.Signal
}

func buildOptions(opts []Option) Options {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
