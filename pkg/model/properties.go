package model

import "github.com/go-drift/observe/pkg/observable"

// Bindable is satisfied by every observable property type.
type Bindable interface {
	observable.Property
	Bind(func(*observable.Change))
}

func attach(m *Model, p Bindable) {
	m.declare(p)
	p.Bind(m.publish)
}

// Attach declares a ready-made property on m. Use it when a property
// needs setup before its changes reach observers, such as seeding a
// container; the helpers below cover the common cases.
func Attach(m *Model, p Bindable) {
	attach(m, p)
}

// Value declares a scalar property on m with == equality.
// It panics if the name is empty, contains wildcards, or is already taken.
func Value[T comparable](m *Model, name string, initial T) *observable.Value[T] {
	v := observable.NewValue(name, initial)
	attach(m, v)
	return v
}

// ValueFunc declares a scalar property on m with a custom equality
// function. A nil eq treats every assignment as a real change.
func ValueFunc[T any](m *Model, name string, initial T, eq func(a, b T) bool) *observable.Value[T] {
	v := observable.NewValueFunc(name, initial, eq)
	attach(m, v)
	return v
}

// List declares a sequence property on m, seeded with the given items.
func List[T any](m *Model, name string, items ...T) *observable.List[T] {
	l := observable.NewList(name, items...)
	attach(m, l)
	return l
}

// MapOf declares a mapping property on m.
func MapOf[K comparable, V any](m *Model, name string) *observable.Map[K, V] {
	mp := observable.NewMap[K, V](name)
	attach(m, mp)
	return mp
}

// Signal declares a fire-and-forget signal property on m.
func Signal(m *Model, name string) *observable.Signal {
	s := observable.NewSignal(name)
	attach(m, s)
	return s
}
