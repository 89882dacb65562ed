package observable

// Change describes a single notification. Receivers must treat it as
// read-only; the dispatching subject hands every handler its own copy.
//
// Model and Name are always set by the time a handler sees the change.
// The remaining fields depend on Kind:
//
//   - KindAssign: Old, New, and Spurious.
//   - KindBefore: Method and Args.
//   - KindAfter: Method, Args, and Result.
//   - KindSignal: Args.
type Change struct {
	// Kind is the kind of change.
	Kind Kind
	// Model is the subject that owns the property. Filled in by the
	// subject during dispatch.
	Model any
	// Name is the property name.
	Name string

	// Old is the previous value of a scalar property.
	Old any
	// New is the value a scalar property was assigned.
	New any
	// Spurious is true when Old and New compared equal. Observers skip
	// spurious changes unless they opted in to receiving them.
	Spurious bool

	// Method is the container operation name, such as "Append" or "Delete".
	Method string
	// Args are the arguments of the container operation or signal emission.
	Args []any
	// Result is the value returned by the container operation, if any.
	Result any

	// Extra carries key/value options attached at registration time.
	Extra map[string]any
}

// NewChange returns a change of the given kind for the named property.
// The name must be non-empty; the subject fills in Model during dispatch.
func NewChange(kind Kind, name string) *Change {
	if name == "" {
		panic("observable: change requires a property name")
	}
	return &Change{Kind: kind, Name: name}
}

// sink is the publication hook a subject installs on its properties.
type sink func(*Change)

// publisher is embedded by every property type to carry the name and the
// subject's sink.
type publisher struct {
	name string
	emit sink
}

// Name returns the property name.
func (p *publisher) Name() string { return p.name }

// Bind installs the subject's publication hook. It is called by the model
// package when the property is declared; application code has no reason to
// call it.
func (p *publisher) Bind(emit func(*Change)) { p.emit = emit }

func (p *publisher) publish(ch *Change) {
	if p.emit != nil {
		p.emit(ch)
	}
}
