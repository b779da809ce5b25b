package listiterate

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/hasbyte1/go-iterate/collections"
	"github.com/hasbyte1/go-iterate/fn"
)

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls procedure for every element in order.
func ForEach[T any](list collections.RandomAccess[T], procedure fn.Procedure[T]) {
	size := list.Size()
	for i := 0; i < size; i++ {
		procedure(list.Get(i))
	}
}

// ForEachWith calls procedure(element, parameter) for every element.
func ForEachWith[T, P any](list collections.RandomAccess[T], procedure fn.Procedure2[T, P], parameter P) {
	size := list.Size()
	for i := 0; i < size; i++ {
		procedure(list.Get(i), parameter)
	}
}

// ForEachWithIndex calls procedure(element, index) for every element.
func ForEachWithIndex[T any](list collections.RandomAccess[T], procedure fn.ObjectIntProcedure[T]) {
	size := list.Size()
	for i := 0; i < size; i++ {
		procedure(list.Get(i), i)
	}
}

// ForEachInRange calls procedure for the elements between from and to, both
// inclusive. When from > to the range is walked backwards.
func ForEachInRange[T any](list collections.RandomAccess[T], from, to int, procedure fn.Procedure[T]) error {
	return ForEachWithIndexInRange(list, from, to, func(each T, _ int) { procedure(each) })
}

// ForEachWithIndexInRange is [ForEachInRange] passing each element's
// absolute index.
func ForEachWithIndexInRange[T any](list collections.RandomAccess[T], from, to int, procedure fn.ObjectIntProcedure[T]) error {
	if err := rangeCheck(from, to, list.Size()); err != nil {
		return err
	}
	if from <= to {
		for i := from; i <= to; i++ {
			procedure(list.Get(i), i)
		}
		return nil
	}
	for i := from; i >= to; i-- {
		procedure(list.Get(i), i)
	}
	return nil
}

func rangeCheck(from, to, size int) error {
	if from < 0 || to < 0 || from >= size || to >= size {
		return errors.Wrapf(collections.ErrIndexOutOfRange, "range [%d, %d] with size %d", from, to, size)
	}
	return nil
}

// ForEachInBoth calls procedure with the elements of both lists at each
// position. The lists must have equal sizes; otherwise nothing is visited
// and an error wrapping [collections.ErrSizeMismatch] names both sizes.
// A nil interface on either side is a no-op. A typed nil list such as a
// nil *collections.Collection is not treated as absent and panics.
func ForEachInBoth[T1, T2 any](list1 collections.RandomAccess[T1], list2 collections.RandomAccess[T2], procedure fn.Procedure2[T1, T2]) error {
	if list1 == nil || list2 == nil {
		return nil
	}
	size1, size2 := list1.Size(), list2.Size()
	if size1 != size2 {
		return errors.Wrapf(collections.ErrSizeMismatch, "forEachInBoth with sizes %d:%d", size1, size2)
	}
	for i := 0; i < size1; i++ {
		procedure(list1.Get(i), list2.Get(i))
	}
	return nil
}

// ToArray copies every element into target starting at startIndex.
// It panics when target is too short.
func ToArray[T any](list collections.RandomAccess[T], target []T, startIndex int) {
	size := list.Size()
	for i := 0; i < size; i++ {
		target[startIndex+i] = list.Get(i)
	}
}

// ToSlice returns the elements as a new slice.
func ToSlice[T any](list collections.RandomAccess[T]) []T {
	out := make([]T, list.Size())
	ToArray(list, out, 0)
	return out
}

// GetFirst returns the first element, or false when the list is empty.
func GetFirst[T any](list collections.RandomAccess[T]) (T, bool) {
	if list.Size() == 0 {
		var zero T
		return zero, false
	}
	return list.Get(0), true
}

// GetLast returns the last element, or false when the list is empty.
func GetLast[T any](list collections.RandomAccess[T]) (T, bool) {
	size := list.Size()
	if size == 0 {
		var zero T
		return zero, false
	}
	return list.Get(size - 1), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Select returns the elements satisfying predicate, in source order.
func Select[T any](list collections.RandomAccess[T], predicate fn.Predicate[T]) *collections.Collection[T] {
	return SelectInto(list, predicate, collections.Empty[T]())
}

// SelectInto appends the elements satisfying predicate to target.
func SelectInto[T any, R collections.Appender[T]](list collections.RandomAccess[T], predicate fn.Predicate[T], target R) R {
	size := list.Size()
	for i := 0; i < size; i++ {
		item := list.Get(i)
		if predicate(item) {
			target.Add(item)
		}
	}
	return target
}

// SelectWith is [Select] with a two-argument predicate.
func SelectWith[T, P any](list collections.RandomAccess[T], predicate fn.Predicate2[T, P], parameter P) *collections.Collection[T] {
	return SelectWithInto(list, predicate, parameter, collections.Empty[T]())
}

// SelectWithInto is [SelectInto] with a two-argument predicate.
func SelectWithInto[T, P any, R collections.Appender[T]](list collections.RandomAccess[T], predicate fn.Predicate2[T, P], parameter P, target R) R {
	size := list.Size()
	for i := 0; i < size; i++ {
		item := list.Get(i)
		if predicate(item, parameter) {
			target.Add(item)
		}
	}
	return target
}

// SelectInstancesOf returns the elements whose dynamic type is S.
//
//	names := listiterate.SelectInstancesOf[string](mixed)
func SelectInstancesOf[S, T any](list collections.RandomAccess[T]) *collections.Collection[S] {
	result := collections.Empty[S]()
	size := list.Size()
	for i := 0; i < size; i++ {
		if item, ok := any(list.Get(i)).(S); ok {
			result.Add(item)
		}
	}
	return result
}

// Reject returns the elements not satisfying predicate, in source order.
func Reject[T any](list collections.RandomAccess[T], predicate fn.Predicate[T]) *collections.Collection[T] {
	return RejectInto(list, predicate, collections.Empty[T]())
}

// RejectInto appends the elements not satisfying predicate to target.
func RejectInto[T any, R collections.Appender[T]](list collections.RandomAccess[T], predicate fn.Predicate[T], target R) R {
	size := list.Size()
	for i := 0; i < size; i++ {
		item := list.Get(i)
		if !predicate(item) {
			target.Add(item)
		}
	}
	return target
}

// RejectWith is [Reject] with a two-argument predicate.
func RejectWith[T, P any](list collections.RandomAccess[T], predicate fn.Predicate2[T, P], parameter P) *collections.Collection[T] {
	return RejectWithInto(list, predicate, parameter, collections.Empty[T]())
}

// RejectWithInto is [RejectInto] with a two-argument predicate.
func RejectWithInto[T, P any, R collections.Appender[T]](list collections.RandomAccess[T], predicate fn.Predicate2[T, P], parameter P, target R) R {
	size := list.Size()
	for i := 0; i < size; i++ {
		item := list.Get(i)
		if !predicate(item, parameter) {
			target.Add(item)
		}
	}
	return target
}

// Count returns how many elements satisfy predicate.
func Count[T any](list collections.RandomAccess[T], predicate fn.Predicate[T]) int {
	count := 0
	size := list.Size()
	for i := 0; i < size; i++ {
		if predicate(list.Get(i)) {
			count++
		}
	}
	return count
}

// CountWith is [Count] with a two-argument predicate.
func CountWith[T, P any](list collections.RandomAccess[T], predicate fn.Predicate2[T, P], parameter P) int {
	count := 0
	size := list.Size()
	for i := 0; i < size; i++ {
		if predicate(list.Get(i), parameter) {
			count++
		}
	}
	return count
}

// Distinct returns the elements in first-seen order with duplicates removed.
func Distinct[T comparable](list collections.RandomAccess[T]) *collections.Collection[T] {
	return DistinctInto(list, collections.Empty[T]())
}

// DistinctInto appends each element to target the first time it is seen.
func DistinctInto[T comparable, R collections.Appender[T]](list collections.RandomAccess[T], target R) R {
	seen := collections.NewSet[T]()
	size := list.Size()
	for i := 0; i < size; i++ {
		item := list.Get(i)
		if seen.Insert(item) {
			target.Add(item)
		}
	}
	return target
}

// RemoveIf removes, in place, every element satisfying predicate and returns
// how many were removed. The scan index steps back after each removal so the
// element shifted into the freed slot is still tested.
func RemoveIf[T any](list collections.MutableRandomAccess[T], predicate fn.Predicate[T]) int {
	return RemoveIfWithProcedure(list, predicate, nil)
}

// RemoveIfWith is [RemoveIf] with a two-argument predicate.
func RemoveIfWith[T, P any](list collections.MutableRandomAccess[T], predicate fn.Predicate2[T, P], parameter P) int {
	return RemoveIfWithProcedure(list, fn.Bind(predicate, parameter), nil)
}

// RemoveIfWithProcedure is [RemoveIf] calling procedure on each element just
// before it is removed. A nil procedure is ignored.
func RemoveIfWithProcedure[T any](list collections.MutableRandomAccess[T], predicate fn.Predicate[T], procedure fn.Procedure[T]) int {
	removed := 0
	for i := 0; i < list.Size(); i++ {
		each := list.Get(i)
		if predicate(each) {
			if procedure != nil {
				procedure(each)
			}
			list.RemoveAt(i)
			i--
			removed++
		}
	}
	return removed
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Collect returns function(element) for every element, preserving order and
// length.
func Collect[T, A any](list collections.RandomAccess[T], function fn.Function[T, A]) *collections.Collection[A] {
	return CollectInto(list, function, collections.WithCapacity[A](list.Size()))
}

// CollectInto appends function(element) for every element to target.
func CollectInto[T, A any, R collections.Appender[A]](list collections.RandomAccess[T], function fn.Function[T, A], target R) R {
	size := list.Size()
	for i := 0; i < size; i++ {
		target.Add(function(list.Get(i)))
	}
	return target
}

// CollectWith is [Collect] with a two-argument function.
func CollectWith[T, P, A any](list collections.RandomAccess[T], function fn.Function2[T, P, A], parameter P) *collections.Collection[A] {
	return CollectWithInto(list, function, parameter, collections.WithCapacity[A](list.Size()))
}

// CollectWithInto is [CollectInto] with a two-argument function.
func CollectWithInto[T, P, A any, R collections.Appender[A]](list collections.RandomAccess[T], function fn.Function2[T, P, A], parameter P, target R) R {
	size := list.Size()
	for i := 0; i < size; i++ {
		target.Add(function(list.Get(i), parameter))
	}
	return target
}

// CollectIf collects function(element) for the elements satisfying
// predicate.
func CollectIf[T, A any](list collections.RandomAccess[T], predicate fn.Predicate[T], function fn.Function[T, A]) *collections.Collection[A] {
	return CollectIfInto(list, predicate, function, collections.Empty[A]())
}

// CollectIfInto is [CollectIf] appending to target.
func CollectIfInto[T, A any, R collections.Appender[A]](list collections.RandomAccess[T], predicate fn.Predicate[T], function fn.Function[T, A], target R) R {
	size := list.Size()
	for i := 0; i < size; i++ {
		item := list.Get(i)
		if predicate(item) {
			target.Add(function(item))
		}
	}
	return target
}

// CollectPrimitiveInto appends function(element) to an unboxed numeric
// target. The typed CollectInt, CollectDouble, ... helpers are thin
// instantiations of it.
func CollectPrimitiveInto[T any, N fn.Number, R collections.Appender[N]](list collections.RandomAccess[T], function func(T) N, target R) R {
	size := list.Size()
	for i := 0; i < size; i++ {
		target.Add(function(list.Get(i)))
	}
	return target
}

// CollectBoolean collects into a bit-packed list.
func CollectBoolean[T any](list collections.RandomAccess[T], function func(T) bool) *collections.BooleanList {
	return CollectBooleanInto(list, function, collections.NewBooleanList(list.Size()))
}

// CollectBooleanInto collects into any bool target.
func CollectBooleanInto[T any, R collections.Appender[bool]](list collections.RandomAccess[T], function func(T) bool, target R) R {
	size := list.Size()
	for i := 0; i < size; i++ {
		target.Add(function(list.Get(i)))
	}
	return target
}

// CollectByte collects into an int8 list.
func CollectByte[T any](list collections.RandomAccess[T], function func(T) int8) *collections.ByteList {
	return CollectPrimitiveInto(list, function, collections.NewPrimitiveList[int8](list.Size()))
}

// CollectChar collects into a rune list.
func CollectChar[T any](list collections.RandomAccess[T], function func(T) rune) *collections.CharList {
	return CollectPrimitiveInto(list, function, collections.NewPrimitiveList[rune](list.Size()))
}

// CollectShort collects into an int16 list.
func CollectShort[T any](list collections.RandomAccess[T], function func(T) int16) *collections.ShortList {
	return CollectPrimitiveInto(list, function, collections.NewPrimitiveList[int16](list.Size()))
}

// CollectInt collects into an int32 list.
func CollectInt[T any](list collections.RandomAccess[T], function func(T) int32) *collections.IntList {
	return CollectPrimitiveInto(list, function, collections.NewPrimitiveList[int32](list.Size()))
}

// CollectLong collects into an int64 list.
func CollectLong[T any](list collections.RandomAccess[T], function func(T) int64) *collections.LongList {
	return CollectPrimitiveInto(list, function, collections.NewPrimitiveList[int64](list.Size()))
}

// CollectFloat collects into a float32 list.
func CollectFloat[T any](list collections.RandomAccess[T], function func(T) float32) *collections.FloatList {
	return CollectPrimitiveInto(list, function, collections.NewPrimitiveList[float32](list.Size()))
}

// CollectDouble collects into a float64 list.
func CollectDouble[T any](list collections.RandomAccess[T], function func(T) float64) *collections.DoubleList {
	return CollectPrimitiveInto(list, function, collections.NewPrimitiveList[float64](list.Size()))
}

// FlatCollect applies function to each element and concatenates the
// resulting sequences, flattening exactly one level.
func FlatCollect[T, A any](list collections.RandomAccess[T], function fn.Function[T, collections.Iterable[A]]) *collections.Collection[A] {
	return FlatCollectInto(list, function, collections.Empty[A]())
}

// FlatCollectInto is [FlatCollect] appending to target.
func FlatCollectInto[T, A any, R collections.Appender[A]](list collections.RandomAccess[T], function fn.Function[T, collections.Iterable[A]], target R) R {
	size := list.Size()
	for i := 0; i < size; i++ {
		appendAll(function(list.Get(i)), target)
	}
	return target
}

func appendAll[A any, R collections.Appender[A]](source collections.Iterable[A], target R) {
	if source == nil {
		return
	}
	if ra, ok := source.(collections.RandomAccess[A]); ok {
		size := ra.Size()
		for j := 0; j < size; j++ {
			target.Add(ra.Get(j))
		}
		return
	}
	it := source.Iterator()
	for each, ok := it.Next(); ok; each, ok = it.Next() {
		target.Add(each)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Short-circuit scans
// ─────────────────────────────────────────────────────────────────────────────

// ShortCircuit scans list in order and stops at the first element whose
// predicate result equals expected, returning onShortCircuit(element). When
// no element matches it returns atEnd().
func ShortCircuit[T, V any](
	list collections.RandomAccess[T],
	predicate fn.Predicate[T],
	expected bool,
	onShortCircuit fn.Function[T, V],
	atEnd fn.Function0[V],
) V {
	size := list.Size()
	for i := 0; i < size; i++ {
		each := list.Get(i)
		if predicate(each) == expected {
			return onShortCircuit(each)
		}
	}
	return atEnd()
}

// ShortCircuitWith is [ShortCircuit] with a two-argument predicate.
func ShortCircuitWith[T, P, V any](
	list collections.RandomAccess[T],
	predicate fn.Predicate2[T, P],
	parameter P,
	expected bool,
	onShortCircuit fn.Function[T, V],
	atEnd fn.Function0[V],
) V {
	size := list.Size()
	for i := 0; i < size; i++ {
		each := list.Get(i)
		if predicate(each, parameter) == expected {
			return onShortCircuit(each)
		}
	}
	return atEnd()
}

// AnySatisfy reports whether some element satisfies predicate.
func AnySatisfy[T any](list collections.RandomAccess[T], predicate fn.Predicate[T]) bool {
	return ShortCircuit(list, predicate, true, fn.Always[T](true), fn.Constant(false))
}

// AnySatisfyWith is [AnySatisfy] with a two-argument predicate.
func AnySatisfyWith[T, P any](list collections.RandomAccess[T], predicate fn.Predicate2[T, P], parameter P) bool {
	return ShortCircuitWith(list, predicate, parameter, true, fn.Always[T](true), fn.Constant(false))
}

// AllSatisfy reports whether every element satisfies predicate. It is true
// for an empty list.
func AllSatisfy[T any](list collections.RandomAccess[T], predicate fn.Predicate[T]) bool {
	return ShortCircuit(list, predicate, false, fn.Always[T](false), fn.Constant(true))
}

// AllSatisfyWith is [AllSatisfy] with a two-argument predicate.
func AllSatisfyWith[T, P any](list collections.RandomAccess[T], predicate fn.Predicate2[T, P], parameter P) bool {
	return ShortCircuitWith(list, predicate, parameter, false, fn.Always[T](false), fn.Constant(true))
}

// NoneSatisfy reports whether no element satisfies predicate.
func NoneSatisfy[T any](list collections.RandomAccess[T], predicate fn.Predicate[T]) bool {
	return ShortCircuit(list, predicate, true, fn.Always[T](false), fn.Constant(true))
}

// NoneSatisfyWith is [NoneSatisfy] with a two-argument predicate.
func NoneSatisfyWith[T, P any](list collections.RandomAccess[T], predicate fn.Predicate2[T, P], parameter P) bool {
	return ShortCircuitWith(list, predicate, parameter, true, fn.Always[T](false), fn.Constant(true))
}

type detection[T any] struct {
	value T
	found bool
}

func found[T any](each T) detection[T] {
	return detection[T]{value: each, found: true}
}

// Detect returns the first element satisfying predicate and true, or the
// zero value and false. No element after the first match is read.
func Detect[T any](list collections.RandomAccess[T], predicate fn.Predicate[T]) (T, bool) {
	d := ShortCircuit(list, predicate, true, found[T], fn.Zero[detection[T]]())
	return d.value, d.found
}

// DetectWith is [Detect] with a two-argument predicate.
func DetectWith[T, P any](list collections.RandomAccess[T], predicate fn.Predicate2[T, P], parameter P) (T, bool) {
	d := ShortCircuitWith(list, predicate, parameter, true, found[T], fn.Zero[detection[T]]())
	return d.value, d.found
}

// DetectIfNone is [Detect] returning ifNone() when nothing matches.
func DetectIfNone[T any](list collections.RandomAccess[T], predicate fn.Predicate[T], ifNone fn.Function0[T]) T {
	return ShortCircuit(list, predicate, true, fn.Identity[T](), ifNone)
}

// DetectIndex returns the position of the first element satisfying
// predicate, or -1.
func DetectIndex[T any](list collections.RandomAccess[T], predicate fn.Predicate[T]) int {
	size := list.Size()
	for i := 0; i < size; i++ {
		if predicate(list.Get(i)) {
			return i
		}
	}
	return -1
}

// DetectIndexWith is [DetectIndex] with a two-argument predicate.
func DetectIndexWith[T, P any](list collections.RandomAccess[T], predicate fn.Predicate2[T, P], parameter P) int {
	size := list.Size()
	for i := 0; i < size; i++ {
		if predicate(list.Get(i), parameter) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// InjectInto folds list from the left: the result of each call to function
// becomes the accumulator for the next element.
//
// Instantiating IV with int32, int64, float32 or float64 keeps the
// accumulator unboxed.
func InjectInto[T, IV any](injectValue IV, list collections.RandomAccess[T], function fn.Function2[IV, T, IV]) IV {
	result := injectValue
	size := list.Size()
	for i := 0; i < size; i++ {
		result = function(result, list.Get(i))
	}
	return result
}

// InjectIntoWith is [InjectInto] with a three-argument function.
func InjectIntoWith[T, IV, P any](injectValue IV, list collections.RandomAccess[T], function fn.Function3[IV, T, P, IV], parameter P) IV {
	result := injectValue
	size := list.Size()
	for i := 0; i < size; i++ {
		result = function(result, list.Get(i), parameter)
	}
	return result
}

// ─────────────────────────────────────────────────────────────────────────────
// Partitioning
// ─────────────────────────────────────────────────────────────────────────────

// Partition splits list into the elements that satisfy predicate and those
// that do not, in one pass.
func Partition[T any](list collections.RandomAccess[T], predicate fn.Predicate[T]) *collections.Partition[T] {
	result := collections.NewPartition[T]()
	size := list.Size()
	for i := 0; i < size; i++ {
		each := list.Get(i)
		result.Bucket(predicate(each)).Add(each)
	}
	return result
}

// PartitionWith is [Partition] with a two-argument predicate.
func PartitionWith[T, P any](list collections.RandomAccess[T], predicate fn.Predicate2[T, P], parameter P) *collections.Partition[T] {
	result := collections.NewPartition[T]()
	size := list.Size()
	for i := 0; i < size; i++ {
		each := list.Get(i)
		result.Bucket(predicate(each, parameter)).Add(each)
	}
	return result
}

// SelectAndRejectWith returns (selected, rejected) as a twin.
func SelectAndRejectWith[T, P any](list collections.RandomAccess[T], predicate fn.Predicate2[T, P], parameter P) collections.Twin[*collections.Collection[T]] {
	p := PartitionWith(list, predicate, parameter)
	return collections.PairOf(p.Selected(), p.Rejected())
}

// PartitionWhile puts the leading run of elements satisfying predicate in
// the selected bucket and everything from the first failure onwards in the
// rejected bucket. The predicate is not evaluated after the first failure.
func PartitionWhile[T any](list collections.RandomAccess[T], predicate fn.Predicate[T]) *collections.Partition[T] {
	result := collections.NewPartition[T]()
	size := list.Size()
	for i := 0; i < size; i++ {
		each := list.Get(i)
		if !predicate(each) {
			copyRange(list, i, size, result.Rejected())
			return result
		}
		result.Selected().Add(each)
	}
	return result
}

// TakeWhile returns the leading run of elements satisfying predicate.
func TakeWhile[T any](list collections.RandomAccess[T], predicate fn.Predicate[T]) *collections.Collection[T] {
	result := collections.Empty[T]()
	size := list.Size()
	for i := 0; i < size; i++ {
		each := list.Get(i)
		if !predicate(each) {
			return result
		}
		result.Add(each)
	}
	return result
}

// DropWhile skips the leading run of elements satisfying predicate and
// returns the rest. The predicate is not evaluated after the first failure.
func DropWhile[T any](list collections.RandomAccess[T], predicate fn.Predicate[T]) *collections.Collection[T] {
	result := collections.Empty[T]()
	size := list.Size()
	for i := 0; i < size; i++ {
		if !predicate(list.Get(i)) {
			copyRange(list, i, size, result)
			return result
		}
	}
	return result
}

// copyRange appends list[from:to] to target in one bulk call when the
// target supports it.
func copyRange[T any, R collections.Appender[T]](list collections.RandomAccess[T], from, to int, target R) {
	if bulk, ok := any(target).(collections.BulkAppender[T]); ok {
		chunk := make([]T, 0, to-from)
		for i := from; i < to; i++ {
			chunk = append(chunk, list.Get(i))
		}
		bulk.AddAll(chunk...)
		return
	}
	for i := from; i < to; i++ {
		target.Add(list.Get(i))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns the first min(count, Size()) elements.
func Take[T any](list collections.RandomAccess[T], count int) (*collections.Collection[T], error) {
	if count < 0 {
		return nil, negativeCount(count)
	}
	return TakeInto(list, count, collections.WithCapacity[T](min(list.Size(), count)))
}

// TakeInto is [Take] appending to target.
func TakeInto[T any, R collections.Appender[T]](list collections.RandomAccess[T], count int, target R) (R, error) {
	if count < 0 {
		return target, negativeCount(count)
	}
	end := min(list.Size(), count)
	for i := 0; i < end; i++ {
		target.Add(list.Get(i))
	}
	return target, nil
}

// Drop returns every element after the first count. A count at or beyond
// Size() yields an empty collection.
func Drop[T any](list collections.RandomAccess[T], count int) (*collections.Collection[T], error) {
	if count < 0 {
		return nil, negativeCount(count)
	}
	size := list.Size()
	return DropInto(list, count, collections.WithCapacity[T](size-min(size, count)))
}

// DropInto is [Drop] appending to target.
func DropInto[T any, R collections.Appender[T]](list collections.RandomAccess[T], count int, target R) (R, error) {
	if count < 0 {
		return target, negativeCount(count)
	}
	size := list.Size()
	if count >= size {
		return target, nil
	}
	copyRange(list, count, size, target)
	return target, nil
}

func negativeCount(count int) error {
	return errors.Wrapf(collections.ErrNegativeCount, "count was %d", count)
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy places every element under function(element), keeping first-seen
// key order and per-key source order.
func GroupBy[T any, K comparable](list collections.RandomAccess[T], function fn.Function[T, K]) *collections.Multimap[K, T] {
	return GroupByInto(list, function, collections.NewMultimap[K, T]())
}

// GroupByInto is [GroupBy] filling target.
func GroupByInto[T any, K comparable](list collections.RandomAccess[T], function fn.Function[T, K], target *collections.Multimap[K, T]) *collections.Multimap[K, T] {
	size := list.Size()
	for i := 0; i < size; i++ {
		item := list.Get(i)
		target.Put(function(item), item)
	}
	return target
}

// GroupByEach places every element under each key function returns for it.
func GroupByEach[T any, K comparable](list collections.RandomAccess[T], function fn.Function[T, collections.Iterable[K]]) *collections.Multimap[K, T] {
	return GroupByEachInto(list, function, collections.NewMultimap[K, T]())
}

// GroupByEachInto is [GroupByEach] filling target.
func GroupByEachInto[T any, K comparable](list collections.RandomAccess[T], function fn.Function[T, collections.Iterable[K]], target *collections.Multimap[K, T]) *collections.Multimap[K, T] {
	size := list.Size()
	for i := 0; i < size; i++ {
		item := list.Get(i)
		keys := function(item)
		if keys == nil {
			continue
		}
		it := keys.Iterator()
		for key, ok := it.Next(); ok; key, ok = it.Next() {
			target.Put(key, item)
		}
	}
	return target
}

// GroupByUniqueKey maps function(element) to element. When two elements
// share a key it stops and returns the map built so far together with a
// *collections.DuplicateKeyError naming the key; the first element stays
// in the map.
func GroupByUniqueKey[T any, K comparable](list collections.RandomAccess[T], function fn.Function[T, K]) (*collections.Map[K, T], error) {
	return GroupByUniqueKeyInto(list, function, collections.NewMap[K, T]())
}

// GroupByUniqueKeyInto is [GroupByUniqueKey] filling target. Keys already
// present in target count as collisions.
func GroupByUniqueKeyInto[T any, K comparable](list collections.RandomAccess[T], function fn.Function[T, K], target *collections.Map[K, T]) (*collections.Map[K, T], error) {
	size := list.Size()
	for i := 0; i < size; i++ {
		value := list.Get(i)
		key := function(value)
		if target.ContainsKey(key) {
			return target, errors.WithStack(&collections.DuplicateKeyError{Key: key})
		}
		target.Put(key, value)
	}
	return target, nil
}

// AggregateInPlaceBy groups elements by key and folds each group into a
// value created by zeroValueFactory on first sight of the key.
// mutatingAggregator updates that value in place, so V is normally a
// pointer type.
func AggregateInPlaceBy[T any, K comparable, V any](
	list collections.RandomAccess[T],
	groupBy fn.Function[T, K],
	zeroValueFactory fn.Function0[V],
	mutatingAggregator fn.Procedure2[V, T],
) *collections.Map[K, V] {
	result := collections.NewMap[K, V]()
	size := list.Size()
	for i := 0; i < size; i++ {
		item := list.Get(i)
		mutatingAggregator(result.GetIfAbsentPut(groupBy(item), zeroValueFactory), item)
	}
	return result
}

// AggregateBy groups elements by key and folds each group, replacing the
// stored value with nonMutatingAggregator(current, element).
func AggregateBy[T any, K comparable, V any](
	list collections.RandomAccess[T],
	groupBy fn.Function[T, K],
	zeroValueFactory fn.Function0[V],
	nonMutatingAggregator fn.Function2[V, T, V],
) *collections.Map[K, V] {
	result := collections.NewMap[K, V]()
	size := list.Size()
	for i := 0; i < size; i++ {
		item := list.Get(i)
		result.UpdateValue(groupBy(item), zeroValueFactory, func(current V) V {
			return nonMutatingAggregator(current, item)
		})
	}
	return result
}

// ─────────────────────────────────────────────────────────────────────────────
// Min / Max
// ─────────────────────────────────────────────────────────────────────────────

// MinBy returns the element with the smallest function(element). Ties keep
// the earliest element.
func MinBy[T any, V fn.Ordered](list collections.RandomAccess[T], function fn.Function[T, V]) (T, error) {
	return bestBy(list, function, func(next, best V) bool { return next < best })
}

// MaxBy returns the element with the largest function(element). Ties keep
// the earliest element.
func MaxBy[T any, V fn.Ordered](list collections.RandomAccess[T], function fn.Function[T, V]) (T, error) {
	return bestBy(list, function, func(next, best V) bool { return next > best })
}

func bestBy[T any, V fn.Ordered](list collections.RandomAccess[T], function fn.Function[T, V], better func(next, best V) bool) (T, error) {
	size := list.Size()
	if size == 0 {
		var zero T
		return zero, errors.WithStack(collections.ErrNoSuchElement)
	}
	best := list.Get(0)
	bestValue := function(best)
	for i := 1; i < size; i++ {
		next := list.Get(i)
		nextValue := function(next)
		if better(nextValue, bestValue) {
			best, bestValue = next, nextValue
		}
	}
	return best, nil
}

// Min returns the smallest element according to compare, which returns a
// negative number when a sorts before b.
func Min[T any](list collections.RandomAccess[T], compare func(a, b T) int) (T, error) {
	return best(list, func(item, current T) bool { return compare(item, current) < 0 })
}

// Max returns the largest element according to compare.
func Max[T any](list collections.RandomAccess[T], compare func(a, b T) int) (T, error) {
	return best(list, func(item, current T) bool { return compare(item, current) > 0 })
}

// MinOrdered returns the smallest element by natural ordering.
func MinOrdered[T fn.Ordered](list collections.RandomAccess[T]) (T, error) {
	return best(list, func(item, current T) bool { return item < current })
}

// MaxOrdered returns the largest element by natural ordering.
func MaxOrdered[T fn.Ordered](list collections.RandomAccess[T]) (T, error) {
	return best(list, func(item, current T) bool { return item > current })
}

func best[T any](list collections.RandomAccess[T], better func(item, current T) bool) (T, error) {
	size := list.Size()
	if size == 0 {
		var zero T
		return zero, errors.WithStack(collections.ErrNoSuchElement)
	}
	result := list.Get(0)
	for i := 1; i < size; i++ {
		if item := list.Get(i); better(item, result) {
			result = item
		}
	}
	return result, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Zipping
// ─────────────────────────────────────────────────────────────────────────────

// Zip pairs elements positionally and stops at the shorter input.
func Zip[X, Y any](list collections.RandomAccess[X], iterable collections.Iterable[Y]) *collections.Collection[collections.Pair[X, Y]] {
	return ZipInto(list, iterable, collections.Empty[collections.Pair[X, Y]]())
}

// ZipInto is [Zip] appending to target.
func ZipInto[X, Y any, R collections.Appender[collections.Pair[X, Y]]](list collections.RandomAccess[X], iterable collections.Iterable[Y], target R) R {
	yIterator := iterable.Iterator()
	size := list.Size()
	for i := 0; i < size; i++ {
		y, ok := yIterator.Next()
		if !ok {
			break
		}
		target.Add(collections.PairOf(list.Get(i), y))
	}
	return target
}

// ZipWithIndex pairs each element with its 0-based position.
func ZipWithIndex[T any](list collections.RandomAccess[T]) *collections.Collection[collections.Pair[T, int]] {
	return ZipWithIndexInto(list, collections.WithCapacity[collections.Pair[T, int]](list.Size()))
}

// ZipWithIndexInto is [ZipWithIndex] appending to target.
func ZipWithIndexInto[T any, R collections.Appender[collections.Pair[T, int]]](list collections.RandomAccess[T], target R) R {
	size := list.Size()
	for i := 0; i < size; i++ {
		target.Add(collections.PairOf(list.Get(i), i))
	}
	return target
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// AppendString writes start, the elements separated by separator, and end
// to w. Elements are formatted with fmt's %v. A write failure stops the
// output and is returned wrapped.
func AppendString[T any](list collections.RandomAccess[T], w io.Writer, start, separator, end string) error {
	if _, err := io.WriteString(w, start); err != nil {
		return errors.Wrap(err, "append string")
	}
	size := list.Size()
	for i := 0; i < size; i++ {
		if i > 0 {
			if _, err := io.WriteString(w, separator); err != nil {
				return errors.Wrap(err, "append string")
			}
		}
		if _, err := fmt.Fprint(w, list.Get(i)); err != nil {
			return errors.Wrapf(err, "append string: element %d", i)
		}
	}
	if _, err := io.WriteString(w, end); err != nil {
		return errors.Wrap(err, "append string")
	}
	return nil
}

// MakeString joins the elements with separator.
func MakeString[T any](list collections.RandomAccess[T], separator string) string {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = AppendString(list, &b, "", separator, "")
	return b.String()
}
