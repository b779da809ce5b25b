// Package lazy provides deferred views over a source sequence.
//
// A [CollectIterable] pairs a source with a transformation and never stores
// transformed elements. Every read composes the transformation into the
// procedure, predicate or accumulator it runs and hands the result to
// [iterate] on the source, so each element is transformed at most once per
// call and only as far as the operation reads.
//
//	doubled := lazy.Collect(numbers, func(n int) int { return n * 2 })
//	labels := lazy.CollectThen(doubled, strconv.Itoa)
//	labels.AnySatisfy(func(s string) bool { return s == "4" })
//
// Chain views with [CollectThen], which composes the functions onto the same
// root source so the chain never grows extra layers. Passing a view to
// [Collect] also works but stacks one view on another, and every read then
// goes through each layer's cursor.
package lazy

import (
	"github.com/hasbyte1/go-iterate/collections"
	"github.com/hasbyte1/go-iterate/fn"
	"github.com/hasbyte1/go-iterate/iterate"
)

// CollectIterable is a live one-to-one view of source through function.
// It holds no mutable state; the zero value is not usable.
type CollectIterable[T, V any] struct {
	source   collections.Iterable[T]
	function fn.Function[T, V]
}

var _ collections.Iterable[string] = (*CollectIterable[int, string])(nil)

// Collect returns a view of source transformed by function. To extend an
// existing view use [CollectThen]; Collect over a view stacks a new layer.
func Collect[T, V any](source collections.Iterable[T], function fn.Function[T, V]) *CollectIterable[T, V] {
	return &CollectIterable[T, V]{source: source, function: function}
}

// CollectThen returns a view of c's root source transformed by c's
// function followed by next.
func CollectThen[T, V, W any](c *CollectIterable[T, V], next fn.Function[V, W]) *CollectIterable[T, W] {
	return &CollectIterable[T, W]{source: c.source, function: fn.Then(c.function, next)}
}

// Size returns the source size.
func (c *CollectIterable[T, V]) Size() int { return iterate.SizeOf(c.source) }

// IsEmpty reports whether the source is empty.
func (c *CollectIterable[T, V]) IsEmpty() bool { return iterate.IsEmpty(c.source) }

// NotEmpty reports whether the source has elements.
func (c *CollectIterable[T, V]) NotEmpty() bool { return iterate.NotEmpty(c.source) }

// Iterator returns a cursor that transforms each source element as it is
// read.
func (c *CollectIterable[T, V]) Iterator() collections.Iterator[V] {
	return &collectIterator[T, V]{delegate: c.source.Iterator(), function: c.function}
}

type collectIterator[T, V any] struct {
	delegate collections.Iterator[T]
	function fn.Function[T, V]
}

func (it *collectIterator[T, V]) Next() (V, bool) {
	each, ok := it.delegate.Next()
	if !ok {
		var zero V
		return zero, false
	}
	return it.function(each), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls procedure(function(element)) for every source element.
func (c *CollectIterable[T, V]) ForEach(procedure fn.Procedure[V]) {
	iterate.ForEach(c.source, fn.Through(procedure, c.function))
}

// ForEachWithIndex calls procedure(function(element), index).
func (c *CollectIterable[T, V]) ForEachWithIndex(procedure fn.ObjectIntProcedure[V]) {
	iterate.ForEachWithIndex(c.source, func(each T, index int) {
		procedure(c.function(each), index)
	})
}

// ForEachWith calls procedure(function(element), parameter).
func ForEachWith[T, V, P any](c *CollectIterable[T, V], procedure fn.Procedure2[V, P], parameter P) {
	c.ForEach(fn.BindProcedure(procedure, parameter))
}

// ─────────────────────────────────────────────────────────────────────────────
// Short-circuit scans
// ─────────────────────────────────────────────────────────────────────────────

// AnySatisfy reports whether some transformed element satisfies predicate.
// Source elements after the first match are neither read nor transformed.
func (c *CollectIterable[T, V]) AnySatisfy(predicate fn.Predicate[V]) bool {
	return iterate.AnySatisfy(c.source, fn.Attribute(c.function, predicate))
}

// AllSatisfy reports whether every transformed element satisfies predicate.
func (c *CollectIterable[T, V]) AllSatisfy(predicate fn.Predicate[V]) bool {
	return iterate.AllSatisfy(c.source, fn.Attribute(c.function, predicate))
}

// NoneSatisfy reports whether no transformed element satisfies predicate.
func (c *CollectIterable[T, V]) NoneSatisfy(predicate fn.Predicate[V]) bool {
	return iterate.NoneSatisfy(c.source, fn.Attribute(c.function, predicate))
}

// AnySatisfyWith is [CollectIterable.AnySatisfy] with a two-argument
// predicate.
func AnySatisfyWith[T, V, P any](c *CollectIterable[T, V], predicate fn.Predicate2[V, P], parameter P) bool {
	return c.AnySatisfy(fn.Bind(predicate, parameter))
}

// AllSatisfyWith is [CollectIterable.AllSatisfy] with a two-argument
// predicate.
func AllSatisfyWith[T, V, P any](c *CollectIterable[T, V], predicate fn.Predicate2[V, P], parameter P) bool {
	return c.AllSatisfy(fn.Bind(predicate, parameter))
}

// NoneSatisfyWith is [CollectIterable.NoneSatisfy] with a two-argument
// predicate.
func NoneSatisfyWith[T, V, P any](c *CollectIterable[T, V], predicate fn.Predicate2[V, P], parameter P) bool {
	return c.NoneSatisfy(fn.Bind(predicate, parameter))
}

// Detect returns the first transformed element satisfying predicate and
// true, or the zero value and false.
func (c *CollectIterable[T, V]) Detect(predicate fn.Predicate[V]) (V, bool) {
	var hit V
	_, found := iterate.Detect(c.source, func(each T) bool {
		value := c.function(each)
		if predicate(value) {
			hit = value
			return true
		}
		return false
	})
	return hit, found
}

// DetectWith is [CollectIterable.Detect] with a two-argument predicate.
func DetectWith[T, V, P any](c *CollectIterable[T, V], predicate fn.Predicate2[V, P], parameter P) (V, bool) {
	return c.Detect(fn.Bind(predicate, parameter))
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// InjectInto folds the transformed elements from the left.
func InjectInto[T, V, IV any](injectValue IV, c *CollectIterable[T, V], function fn.Function2[IV, V, IV]) IV {
	return iterate.InjectInto(injectValue, c.source, func(acc IV, each T) IV {
		return function(acc, c.function(each))
	})
}

// InjectIntoInt folds into an int32 accumulator.
func (c *CollectIterable[T, V]) InjectIntoInt(injectValue int32, function func(int32, V) int32) int32 {
	return InjectInto(injectValue, c, function)
}

// InjectIntoLong folds into an int64 accumulator.
func (c *CollectIterable[T, V]) InjectIntoLong(injectValue int64, function func(int64, V) int64) int64 {
	return InjectInto(injectValue, c, function)
}

// InjectIntoFloat folds into a float32 accumulator.
func (c *CollectIterable[T, V]) InjectIntoFloat(injectValue float32, function func(float32, V) float32) float32 {
	return InjectInto(injectValue, c, function)
}

// InjectIntoDouble folds into a float64 accumulator.
func (c *CollectIterable[T, V]) InjectIntoDouble(injectValue float64, function func(float64, V) float64) float64 {
	return InjectInto(injectValue, c, function)
}

// ─────────────────────────────────────────────────────────────────────────────
// Materialization
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice materializes the view. The source elements are copied out first
// and each slot is then replaced by its transformed value; when T and V
// are the same type the copy is reused in place.
func (c *CollectIterable[T, V]) ToSlice() []V {
	elements := iterate.ToSlice(c.source)
	if same, ok := any(elements).([]V); ok {
		for i, each := range elements {
			same[i] = c.function(each)
		}
		return same
	}
	out := make([]V, len(elements))
	for i, each := range elements {
		out[i] = c.function(each)
	}
	return out
}

// ToCollection materializes the view into a new collection.
func (c *CollectIterable[T, V]) ToCollection() *collections.Collection[V] {
	return iterate.CollectInto(c.source, c.function, collections.WithCapacity[V](c.Size()))
}

// AsRandomAccess returns an indexed view when the source supports
// positional reads. Get(i) transforms source element i on every call.
func (c *CollectIterable[T, V]) AsRandomAccess() (collections.RandomAccess[V], bool) {
	ra, ok := c.source.(collections.RandomAccess[T])
	if !ok {
		return nil, false
	}
	return &collectList[T, V]{CollectIterable: c, list: ra}, true
}

type collectList[T, V any] struct {
	*CollectIterable[T, V]
	list collections.RandomAccess[T]
}

func (l *collectList[T, V]) Get(index int) V { return l.function(l.list.Get(index)) }
