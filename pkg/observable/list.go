package observable

import (
	"fmt"
	"sync"
)

// List is a sequence property with structural mutation hooks. Every
// mutating operation publishes a before change ahead of the mutation and
// an after change once it has completed, both carrying the operation name
// and its arguments.
//
// Reads are safe from any goroutine. Mutations must be serialized by the
// caller: the before/after bracket around a mutation cannot be made atomic,
// so two goroutines mutating the same list interleave their notifications.
type List[T any] struct {
	publisher
	mu    sync.RWMutex
	items []T
}

// NewList creates a list property seeded with the given items.
func NewList[T any](name string, items ...T) *List[T] {
	l := &List[T]{items: append([]T(nil), items...)}
	l.name = name
	return l
}

// PropertyKind returns ListProperty.
func (l *List[T]) PropertyKind() PropertyKind { return ListProperty }

// Len returns the number of items.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// At returns the item at index. It panics if index is out of range.
func (l *List[T]) At(index int) T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.check(index)
	return l.items[index]
}

// Values returns a copy of the items.
func (l *List[T]) Values() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]T(nil), l.items...)
}

// Append adds items to the end of the list.
func (l *List[T]) Append(items ...T) {
	args := make([]any, len(items))
	for i, item := range items {
		args[i] = item
	}
	l.before("Append", args)
	l.mu.Lock()
	l.items = append(l.items, items...)
	l.mu.Unlock()
	l.after("Append", args, nil)
}

// Insert places value at index, shifting later items right.
// It panics if index is out of range (index == Len appends).
func (l *List[T]) Insert(index int, value T) {
	l.mu.RLock()
	if index < 0 || index > len(l.items) {
		l.mu.RUnlock()
		panic(fmt.Sprintf("observable: list %q index %d out of range", l.name, index))
	}
	l.mu.RUnlock()

	args := []any{index, value}
	l.before("Insert", args)
	l.mu.Lock()
	l.items = append(l.items, value)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = value
	l.mu.Unlock()
	l.after("Insert", args, nil)
}

// Set replaces the item at index. It panics if index is out of range.
func (l *List[T]) Set(index int, value T) {
	l.mu.RLock()
	l.check(index)
	l.mu.RUnlock()

	args := []any{index, value}
	l.before("Set", args)
	l.mu.Lock()
	l.check(index)
	l.items[index] = value
	l.mu.Unlock()
	l.after("Set", args, nil)
}

// RemoveAt deletes and returns the item at index.
// It panics if index is out of range.
func (l *List[T]) RemoveAt(index int) T {
	l.mu.RLock()
	l.check(index)
	l.mu.RUnlock()

	args := []any{index}
	l.before("RemoveAt", args)
	l.mu.Lock()
	l.check(index)
	removed := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.mu.Unlock()
	l.after("RemoveAt", args, removed)
	return removed
}

// Clear removes all items.
func (l *List[T]) Clear() {
	l.before("Clear", nil)
	l.mu.Lock()
	l.items = nil
	l.mu.Unlock()
	l.after("Clear", nil, nil)
}

// check panics if index is out of range. Callers hold the lock.
func (l *List[T]) check(index int) {
	if index < 0 || index >= len(l.items) {
		panic(fmt.Sprintf("observable: list %q index %d out of range", l.name, index))
	}
}

func (l *List[T]) before(method string, args []any) {
	ch := NewChange(KindBefore, l.name)
	ch.Method = method
	ch.Args = args
	l.publish(ch)
}

func (l *List[T]) after(method string, args []any, result any) {
	ch := NewChange(KindAfter, l.name)
	ch.Method = method
	ch.Args = args
	ch.Result = result
	l.publish(ch)
}
