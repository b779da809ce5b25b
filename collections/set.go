package collections

import (
	"github.com/hashicorp/go-set/v2"
)

// Set is an unordered collection of unique comparable elements.
//
// Iteration order is unspecified and may change between calls.
type Set[T comparable] struct {
	items *set.Set[T]
}

var _ Iterable[int] = (*Set[int])(nil)

// NewSet creates an empty Set.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{items: set.New[T](0)}
}

// SetOf creates a Set holding items.
func SetOf[T comparable](items ...T) *Set[T] {
	return &Set[T]{items: set.From(items)}
}

// Add inserts item, ignoring duplicates. It satisfies [Appender].
func (s *Set[T]) Add(item T) {
	s.items.Insert(item)
}

// Insert inserts item and reports whether it was not already present.
func (s *Set[T]) Insert(item T) bool {
	return s.items.Insert(item)
}

// Contains reports whether item is present.
func (s *Set[T]) Contains(item T) bool {
	return s.items.Contains(item)
}

// Size returns the number of elements.
func (s *Set[T]) Size() int { return s.items.Size() }

// IsEmpty reports whether the set has no elements.
func (s *Set[T]) IsEmpty() bool { return s.items.Size() == 0 }

// ToSlice returns the elements in unspecified order.
func (s *Set[T]) ToSlice() []T { return s.items.Slice() }

// Remove deletes item and reports whether it was present.
func (s *Set[T]) Remove(item T) bool {
	return s.items.Remove(item)
}

// Iterator returns a cursor over a snapshot of the elements. The cursor is
// a [RemovableIterator]: Remove deletes the last returned element from the
// set without disturbing the snapshot.
func (s *Set[T]) Iterator() Iterator[T] {
	return &setIterator[T]{owner: s, snapshot: sliceIterator[T]{items: s.items.Slice()}}
}

type setIterator[T comparable] struct {
	owner    *Set[T]
	snapshot sliceIterator[T]
	last     T
}

func (it *setIterator[T]) Next() (T, bool) {
	item, ok := it.snapshot.Next()
	if ok {
		it.last = item
	}
	return item, ok
}

func (it *setIterator[T]) Remove() {
	it.owner.items.Remove(it.last)
}
