package randutil

import "math/rand/v2"

type entry[K comparable, V any] struct {
	key   K
	value V
}

// RandomMap is a map that additionally supports choosing a uniformly random
// key, value or entry in O(1). It is not safe for concurrent use.
type RandomMap[K comparable, V any] struct {
	index   map[K]int
	entries []entry[K, V]
}

// NewRandomMap returns an empty RandomMap.
func NewRandomMap[K comparable, V any]() *RandomMap[K, V] {
	return &RandomMap[K, V]{index: make(map[K]int)}
}

// Set inserts or replaces the value for key.
func (m *RandomMap[K, V]) Set(key K, value V) {
	if i, ok := m.index[key]; ok {
		m.entries[i].value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, entry[K, V]{key: key, value: value})
}

// Get returns the value for key.
func (m *RandomMap[K, V]) Get(key K) (V, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.entries[i].value, true
}

// Delete removes key. The last entry is swapped into the freed slot so
// deletion stays O(1).
func (m *RandomMap[K, V]) Delete(key K) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	last := len(m.entries) - 1
	if i != last {
		m.entries[i] = m.entries[last]
		m.index[m.entries[i].key] = i
	}
	m.entries = m.entries[:last]
	delete(m.index, key)
	return true
}

// Len returns the number of entries.
func (m *RandomMap[K, V]) Len() int {
	return len(m.entries)
}

// Keys returns all keys in unspecified order.
func (m *RandomMap[K, V]) Keys() []K {
	keys := make([]K, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// RandomKey returns a uniformly random key.
func (m *RandomMap[K, V]) RandomKey() (K, error) {
	if len(m.entries) == 0 {
		var zero K
		return zero, ErrNoItem
	}
	return m.entries[rand.IntN(len(m.entries))].key, nil
}

// RandomValue returns the value of a uniformly random entry.
func (m *RandomMap[K, V]) RandomValue() (V, error) {
	if len(m.entries) == 0 {
		var zero V
		return zero, ErrNoItem
	}
	return m.entries[rand.IntN(len(m.entries))].value, nil
}

// RandomItem returns a uniformly random key/value pair.
func (m *RandomMap[K, V]) RandomItem() (K, V, error) {
	if len(m.entries) == 0 {
		var zk K
		var zv V
		return zk, zv, ErrNoItem
	}
	e := m.entries[rand.IntN(len(m.entries))]
	return e.key, e.value, nil
}
