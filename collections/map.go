package collections

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is a hash map that remembers the order in which keys were first
// inserted. Replacing the value of an existing key keeps its position.
//
// It is the default target of groupByUniqueKey, aggregateBy and the sumBy
// family, so results list their keys in first-seen source order.
type Map[K comparable, V any] struct {
	entries *orderedmap.OrderedMap[K, V]
}

// NewMap creates an empty Map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{entries: orderedmap.New[K, V]()}
}

// Put associates value with key and returns the previous value together
// with whether one existed.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	return m.entries.Set(key, value)
}

// Get returns the value for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.entries.Get(key)
}

// ContainsKey reports whether key has a value.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.entries.Get(key)
	return ok
}

// GetIfAbsentPut returns the value for key, first storing factory() when
// the key is absent. factory is only called for absent keys.
func (m *Map[K, V]) GetIfAbsentPut(key K, factory func() V) V {
	if v, ok := m.entries.Get(key); ok {
		return v
	}
	v := factory()
	m.entries.Set(key, v)
	return v
}

// UpdateValue replaces the value for key with fn(current), seeding current
// from factory() when the key is absent, and returns the stored result.
func (m *Map[K, V]) UpdateValue(key K, factory func() V, fn func(V) V) V {
	if pair := m.entries.GetPair(key); pair != nil {
		pair.Value = fn(pair.Value)
		return pair.Value
	}
	v := fn(factory())
	m.entries.Set(key, v)
	return v
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int { return m.entries.Len() }

// Keys returns the keys in first-insertion order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Values returns the values in key-insertion order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Value)
	}
	return values
}

// Each calls fn(key, value) in key-insertion order.
func (m *Map[K, V]) Each(fn func(K, V)) {
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// ToMap copies the entries into a plain Go map.
func (m *Map[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.entries.Len())
	m.Each(func(k K, v V) { out[k] = v })
	return out
}
