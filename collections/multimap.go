package collections

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Multimap maps each key to a list of values.
//
// Keys are kept in first-seen order and every key's values keep their
// insertion order. groupBy and groupByEach fill one in a single pass.
type Multimap[K comparable, V any] struct {
	buckets *orderedmap.OrderedMap[K, *Collection[V]]
	size    int
}

// NewMultimap creates an empty Multimap.
func NewMultimap[K comparable, V any]() *Multimap[K, V] {
	return &Multimap[K, V]{buckets: orderedmap.New[K, *Collection[V]]()}
}

// Put appends value to the bucket for key.
func (m *Multimap[K, V]) Put(key K, value V) {
	bucket, ok := m.buckets.Get(key)
	if !ok {
		bucket = Empty[V]()
		m.buckets.Set(key, bucket)
	}
	bucket.Add(value)
	m.size++
}

// Get returns the values for key, or an empty collection when the key is
// absent. The returned collection is a copy.
func (m *Multimap[K, V]) Get(key K) *Collection[V] {
	bucket, ok := m.buckets.Get(key)
	if !ok {
		return Empty[V]()
	}
	return From(bucket.items)
}

// ContainsKey reports whether key has at least one value.
func (m *Multimap[K, V]) ContainsKey(key K) bool {
	_, ok := m.buckets.Get(key)
	return ok
}

// Keys returns the distinct keys in first-seen order.
func (m *Multimap[K, V]) Keys() []K {
	keys := make([]K, 0, m.buckets.Len())
	for pair := m.buckets.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of distinct keys.
func (m *Multimap[K, V]) Len() int { return m.buckets.Len() }

// Size returns the total number of values across all keys.
func (m *Multimap[K, V]) Size() int { return m.size }

// IsEmpty reports whether no value has been put.
func (m *Multimap[K, V]) IsEmpty() bool { return m.size == 0 }

// Each calls fn(key, values) per key in first-seen order. values is the
// live bucket and must not be modified.
func (m *Multimap[K, V]) Each(fn func(K, *Collection[V])) {
	for pair := m.buckets.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}
