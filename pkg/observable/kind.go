package observable

import "fmt"

// Kind identifies what a notification describes. Every Change carries
// exactly one kind.
type Kind int

const (
	// KindAssign means a scalar value was replaced.
	KindAssign Kind = iota
	// KindBefore means a container mutation is about to happen.
	KindBefore
	// KindAfter means a container mutation has completed.
	KindAfter
	// KindSignal means a signal property was emitted.
	KindSignal
)

func (k Kind) String() string {
	switch k {
	case KindAssign:
		return "assign"
	case KindBefore:
		return "before"
	case KindAfter:
		return "after"
	case KindSignal:
		return "signal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// PropertyKind identifies the shape of an observable property.
type PropertyKind int

const (
	// ScalarProperty holds a single value.
	ScalarProperty PropertyKind = iota
	// ListProperty is a sequence with structural mutation hooks.
	ListProperty
	// MapProperty is a mapping with structural mutation hooks.
	MapProperty
	// SignalProperty retains no value and only fires events.
	SignalProperty
)

func (k PropertyKind) String() string {
	switch k {
	case ScalarProperty:
		return "scalar"
	case ListProperty:
		return "list"
	case MapProperty:
		return "map"
	case SignalProperty:
		return "signal"
	default:
		return fmt.Sprintf("PropertyKind(%d)", int(k))
	}
}

// Property is implemented by every observable property type.
type Property interface {
	// Name returns the property name the subject declared it under.
	Name() string
	// PropertyKind returns the shape of the property.
	PropertyKind() PropertyKind
}
