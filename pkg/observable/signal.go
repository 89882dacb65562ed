package observable

// Signal is an observable property that retains no state. Emitting it
// publishes a signal change carrying the emission arguments; there is no
// old or new value and emissions are never spurious.
type Signal struct {
	publisher
}

// NewSignal creates a signal property.
func NewSignal(name string) *Signal {
	s := &Signal{}
	s.name = name
	return s
}

// PropertyKind returns SignalProperty.
func (s *Signal) PropertyKind() PropertyKind { return SignalProperty }

// Emit fires the signal. The arguments are delivered to observers in
// Change.Args.
func (s *Signal) Emit(args ...any) {
	ch := NewChange(KindSignal, s.name)
	ch.Args = args
	s.publish(ch)
}
