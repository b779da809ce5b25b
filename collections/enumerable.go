package collections

//go:generate mockgen -source=enumerable.go -destination=../mocks/mock_enumerable.go -package=mocks

// Iterable is the capability every traversable source offers: a fresh
// cursor and a stable element count.
//
// Accept Iterable in your own functions so callers can pass any container
// from this package, a lazy view, or their own type. The engines in
// iterate check for [RandomAccess] at runtime and take the indexed fast
// path when it is available.
type Iterable[T any] interface {
	// Iterator returns a new cursor positioned before the first element.
	Iterator() Iterator[T]

	// Size returns the number of elements.
	Size() int
}

// Iterator is a forward-only cursor.
//
// Next returns the next element and true, or the zero value and false once
// the source is exhausted. Calling Next after exhaustion keeps returning
// false.
type Iterator[T any] interface {
	Next() (T, bool)
}

// RemovableIterator is an [Iterator] that can delete the element most
// recently returned by Next from its source. Remove must not be called
// before the first Next or twice for the same element.
type RemovableIterator[T any] interface {
	Iterator[T]
	Remove()
}

// RandomAccess is a sequence with O(1) positional reads.
//
// Get panics for an index outside [0, Size()), matching slice indexing.
type RandomAccess[T any] interface {
	Size() int
	Get(index int) T
}

// MutableRandomAccess adds positional removal to [RandomAccess]. RemoveAt
// shifts every later element one position to the left and returns the
// removed element.
type MutableRandomAccess[T any] interface {
	RandomAccess[T]
	RemoveAt(index int) T
}

// Appender is the minimal result-container contract: append one element.
type Appender[T any] interface {
	Add(item T)
}

// BulkAppender is an [Appender] that can also append many elements at once.
// Engines use it for the bulk-copy paths of drop, dropWhile and
// partitionWhile when the target supports it.
type BulkAppender[T any] interface {
	Appender[T]
	AddAll(items ...T)
}

// sliceIterator walks a snapshot slice.
type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (it *sliceIterator[T]) Next() (T, bool) {
	if it.pos >= len(it.items) {
		var zero T
		return zero, false
	}
	item := it.items[it.pos]
	it.pos++
	return item, true
}

// SliceIterator returns a cursor over items. The slice is not copied.
func SliceIterator[T any](items []T) Iterator[T] {
	return &sliceIterator[T]{items: items}
}
