package observable

import "sync"

// Map is a mapping property with structural mutation hooks. Like List,
// every mutating operation is bracketed by a before and an after change.
//
// Reads are safe from any goroutine; mutations must be serialized by the
// caller.
type Map[K comparable, V any] struct {
	publisher
	mu    sync.RWMutex
	items map[K]V
}

// NewMap creates an empty map property.
func NewMap[K comparable, V any](name string) *Map[K, V] {
	m := &Map[K, V]{items: make(map[K]V)}
	m.name = name
	return m
}

// PropertyKind returns MapProperty.
func (m *Map[K, V]) PropertyKind() PropertyKind { return MapProperty }

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Get returns the value for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok
}

// Keys returns the keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]K, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys
}

// Values returns a copy of the entries.
func (m *Map[K, V]) Values() map[K]V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[K]V, len(m.items))
	for k, v := range m.items {
		out[k] = v
	}
	return out
}

// Set stores value under key.
func (m *Map[K, V]) Set(key K, value V) {
	args := []any{key, value}
	m.before("Set", args)
	m.mu.Lock()
	m.items[key] = value
	m.mu.Unlock()
	m.after("Set", args, nil)
}

// Delete removes key and returns the removed value, or the zero value if
// the key was absent. The after change carries the removed value as its
// result when the key existed.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	args := []any{key}
	m.before("Delete", args)
	m.mu.Lock()
	removed, ok := m.items[key]
	delete(m.items, key)
	m.mu.Unlock()
	var result any
	if ok {
		result = removed
	}
	m.after("Delete", args, result)
	return removed, ok
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.before("Clear", nil)
	m.mu.Lock()
	m.items = make(map[K]V)
	m.mu.Unlock()
	m.after("Clear", nil, nil)
}

func (m *Map[K, V]) before(method string, args []any) {
	ch := NewChange(KindBefore, m.name)
	ch.Method = method
	ch.Args = args
	m.publish(ch)
}

func (m *Map[K, V]) after(method string, args []any, result any) {
	ch := NewChange(KindAfter, m.name)
	ch.Method = method
	ch.Args = args
	ch.Result = result
	m.publish(ch)
}
