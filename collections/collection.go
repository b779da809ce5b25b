package collections

import (
	"encoding/json"
	"fmt"
)

// Collection is a generic, array-backed mutable list. It is the default
// result container of the engines and the reference [RandomAccess] source.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Empty[int]()
//	c := collections.WithCapacity[int](64)
//
// # Capabilities
//
// *Collection[T] satisfies [Iterable], [RandomAccess], [MutableRandomAccess]
// and [BulkAppender], so it can be both the source and the target of every
// engine operation.
//
// A Collection is not safe for concurrent mutation. Reads from several
// goroutines are fine as long as nothing writes.
type Collection[T any] struct {
	items []T
}

var (
	_ Iterable[int]            = (*Collection[int])(nil)
	_ MutableRandomAccess[int] = (*Collection[int])(nil)
	_ BulkAppender[int]        = (*Collection[int])(nil)
)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// WithCapacity creates an empty Collection pre-sized for capacity items.
// A negative capacity is treated as zero.
func WithCapacity[T any](capacity int) *Collection[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Collection[T]{items: make([]T, 0, capacity)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Size returns the number of items.
func (c *Collection[T]) Size() int { return len(c.items) }

// Count is an alias for [Collection.Size].
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index. It panics when index is out of range.
func (c *Collection[T]) Get(index int) T { return c.items[index] }

// At returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (c *Collection[T]) At(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// SubList returns a new collection holding a copy of items[from:to].
// It panics on invalid bounds, matching slice expressions.
func (c *Collection[T]) SubList(from, to int) *Collection[T] {
	return From(c.items[from:to])
}

// Iterator returns a cursor over the live collection. Appends made while
// iterating become visible to the cursor.
func (c *Collection[T]) Iterator() Iterator[T] {
	return &collectionIterator[T]{c: c}
}

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Add appends item.
func (c *Collection[T]) Add(item T) {
	c.items = append(c.items, item)
}

// AddAll appends items in order.
func (c *Collection[T]) AddAll(items ...T) {
	c.items = append(c.items, items...)
}

// Set replaces the item at index and returns the previous value.
// It panics when index is out of range.
func (c *Collection[T]) Set(index int, item T) T {
	old := c.items[index]
	c.items[index] = item
	return old
}

// RemoveAt removes the item at index, shifting later items left, and
// returns it. It panics when index is out of range.
func (c *Collection[T]) RemoveAt(index int) T {
	item := c.items[index]
	copy(c.items[index:], c.items[index+1:])
	var zero T
	c.items[len(c.items)-1] = zero
	c.items = c.items[:len(c.items)-1]
	return item
}

// Clear removes every item, keeping the allocated capacity.
func (c *Collection[T]) Clear() {
	clear(c.items)
	c.items = c.items[:0]
}

type collectionIterator[T any] struct {
	c   *Collection[T]
	pos int
}

func (it *collectionIterator[T]) Next() (T, bool) {
	if it.pos >= len(it.c.items) {
		var zero T
		return zero, false
	}
	item := it.c.items[it.pos]
	it.pos++
	return item, true
}
