package observable

import "sync"

// Value is a scalar observable property. Get, Set, and Update are safe for
// concurrent use; notifications are published on the mutating goroutine
// (the owning subject may then marshal them onto an executor).
type Value[T any] struct {
	publisher
	mu    sync.Mutex
	value T
	eq    func(a, b T) bool
}

// NewValue creates a scalar property with == equality. Assignments of an
// equal value are published as spurious changes, which observers ignore
// unless they opted in.
func NewValue[T comparable](name string, initial T) *Value[T] {
	return NewValueFunc(name, initial, func(a, b T) bool { return a == b })
}

// NewValueFunc creates a scalar property with a custom equality function.
// A nil eq treats every assignment as a real change.
func NewValueFunc[T any](name string, initial T, eq func(a, b T) bool) *Value[T] {
	v := &Value[T]{value: initial, eq: eq}
	v.name = name
	return v
}

// PropertyKind returns ScalarProperty.
func (v *Value[T]) PropertyKind() PropertyKind { return ScalarProperty }

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set replaces the value and publishes an assign change. The change is
// marked spurious when the new value compares equal to the old one.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	old := v.value
	v.value = value
	spurious := v.eq != nil && v.eq(old, value)
	v.mu.Unlock()

	ch := NewChange(KindAssign, v.name)
	ch.Old = old
	ch.New = value
	ch.Spurious = spurious
	v.publish(ch)
}

// Update applies a transformation to the current value and publishes the
// resulting assign change. The transform runs under the property lock and
// must not touch the property itself.
func (v *Value[T]) Update(transform func(T) T) {
	v.mu.Lock()
	old := v.value
	v.value = transform(old)
	value := v.value
	spurious := v.eq != nil && v.eq(old, value)
	v.mu.Unlock()

	ch := NewChange(KindAssign, v.name)
	ch.Old = old
	ch.New = value
	ch.Spurious = spurious
	v.publish(ch)
}
