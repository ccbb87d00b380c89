package dstructs

// OrderedMap is a map that additionally remembers the order in which keys
// were first inserted. It is not safe for concurrent use.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap creates an empty map. sizeHint only pre-sizes the backing
// storage; the map grows freely beyond it.
func NewOrderedMap[K comparable, V any](sizeHint int) *OrderedMap[K, V] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &OrderedMap[K, V]{
		keys:   make([]K, 0, sizeHint),
		values: make(map[K]V, sizeHint),
	}
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set inserts or replaces the value for key. A replaced key keeps its
// original position.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is shared with
// the map; callers must not modify it.
func (m *OrderedMap[K, V]) Keys() []K {
	return m.keys
}

// Each calls f for every entry in insertion order.
func (m *OrderedMap[K, V]) Each(f func(key K, value V)) {
	for _, k := range m.keys {
		f(k, m.values[k])
	}
}
