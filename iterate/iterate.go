// Package iterate runs the iteration protocol over any [collections.Iterable].
//
// Each entry point checks whether the source also implements
// [collections.RandomAccess]. If it does, the call is forwarded to
// [listiterate]; otherwise the source is walked once through its cursor.
// Both paths produce the same results in the same order and stop reading at
// the same element when an operation short-circuits.
//
// The positional range walks (forEachInRange and its indexed form) exist
// only in [listiterate]: they need Get.
package iterate

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/hasbyte1/go-iterate/collections"
	"github.com/hasbyte1/go-iterate/fn"
	"github.com/hasbyte1/go-iterate/listiterate"
)

func randomAccess[T any](iterable collections.Iterable[T]) (collections.RandomAccess[T], bool) {
	ra, ok := iterable.(collections.RandomAccess[T])
	return ra, ok
}

// each walks iterable's cursor until procedure returns false.
func each[T any](iterable collections.Iterable[T], procedure func(T) bool) {
	it := iterable.Iterator()
	for item, ok := it.Next(); ok; item, ok = it.Next() {
		if !procedure(item) {
			return
		}
	}
}

func negativeCount(count int) error {
	return errors.Wrapf(collections.ErrNegativeCount, "count was %d", count)
}

// ─────────────────────────────────────────────────────────────────────────────
// Size
// ─────────────────────────────────────────────────────────────────────────────

// SizeOf returns the number of elements, or 0 for a nil source.
func SizeOf[T any](iterable collections.Iterable[T]) int {
	if iterable == nil {
		return 0
	}
	return iterable.Size()
}

// IsEmpty reports whether iterable is nil or has no elements.
func IsEmpty[T any](iterable collections.Iterable[T]) bool {
	return SizeOf(iterable) == 0
}

// NotEmpty is the negation of [IsEmpty].
func NotEmpty[T any](iterable collections.Iterable[T]) bool {
	return !IsEmpty(iterable)
}

// ToSlice returns the elements in cursor order.
func ToSlice[T any](iterable collections.Iterable[T]) []T {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.ToSlice(ra)
	}
	out := make([]T, 0, iterable.Size())
	each(iterable, func(item T) bool {
		out = append(out, item)
		return true
	})
	return out
}

// ToArray copies every element into target starting at startIndex. It
// panics when target is too short.
func ToArray[T any](iterable collections.Iterable[T], target []T, startIndex int) {
	if ra, ok := randomAccess(iterable); ok {
		listiterate.ToArray(ra, target, startIndex)
		return
	}
	ForEachWithIndex(iterable, func(item T, index int) {
		target[startIndex+index] = item
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls procedure for every element.
func ForEach[T any](iterable collections.Iterable[T], procedure fn.Procedure[T]) {
	if ra, ok := randomAccess(iterable); ok {
		listiterate.ForEach(ra, procedure)
		return
	}
	each(iterable, func(item T) bool {
		procedure(item)
		return true
	})
}

// ForEachWith calls procedure(element, parameter) for every element.
func ForEachWith[T, P any](iterable collections.Iterable[T], procedure fn.Procedure2[T, P], parameter P) {
	if ra, ok := randomAccess(iterable); ok {
		listiterate.ForEachWith(ra, procedure, parameter)
		return
	}
	ForEach(iterable, fn.BindProcedure(procedure, parameter))
}

// ForEachWithIndex calls procedure(element, index) for every element.
func ForEachWithIndex[T any](iterable collections.Iterable[T], procedure fn.ObjectIntProcedure[T]) {
	if ra, ok := randomAccess(iterable); ok {
		listiterate.ForEachWithIndex(ra, procedure)
		return
	}
	index := 0
	each(iterable, func(item T) bool {
		procedure(item, index)
		index++
		return true
	})
}

// ForEachInBoth calls procedure with the elements of both sources at each
// position. The sizes must match; otherwise nothing is visited and an error
// wrapping [collections.ErrSizeMismatch] names both sizes. A nil interface
// on either side is a no-op.
func ForEachInBoth[T1, T2 any](xs collections.Iterable[T1], ys collections.Iterable[T2], procedure fn.Procedure2[T1, T2]) error {
	if xs == nil || ys == nil {
		return nil
	}
	xra, xok := randomAccess(xs)
	yra, yok := randomAccess(ys)
	if xok && yok {
		return listiterate.ForEachInBoth(xra, yra, procedure)
	}
	size1, size2 := xs.Size(), ys.Size()
	if size1 != size2 {
		return errors.Wrapf(collections.ErrSizeMismatch, "forEachInBoth with sizes %d:%d", size1, size2)
	}
	yIterator := ys.Iterator()
	each(xs, func(x T1) bool {
		y, ok := yIterator.Next()
		if !ok {
			return false
		}
		procedure(x, y)
		return true
	})
	return nil
}

// GetFirst returns the first element, or false when there is none.
func GetFirst[T any](iterable collections.Iterable[T]) (T, bool) {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.GetFirst(ra)
	}
	return iterable.Iterator().Next()
}

// GetLast returns the last element, or false when there is none. A cursor
// source is read to the end.
func GetLast[T any](iterable collections.Iterable[T]) (T, bool) {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.GetLast(ra)
	}
	var last T
	found := false
	each(iterable, func(item T) bool {
		last, found = item, true
		return true
	})
	return last, found
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Select returns the elements satisfying predicate.
func Select[T any](iterable collections.Iterable[T], predicate fn.Predicate[T]) *collections.Collection[T] {
	return SelectInto(iterable, predicate, collections.Empty[T]())
}

// SelectInto appends the elements satisfying predicate to target.
func SelectInto[T any, R collections.Appender[T]](iterable collections.Iterable[T], predicate fn.Predicate[T], target R) R {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.SelectInto(ra, predicate, target)
	}
	each(iterable, func(item T) bool {
		if predicate(item) {
			target.Add(item)
		}
		return true
	})
	return target
}

// SelectWith is [Select] with a two-argument predicate.
func SelectWith[T, P any](iterable collections.Iterable[T], predicate fn.Predicate2[T, P], parameter P) *collections.Collection[T] {
	return SelectWithInto(iterable, predicate, parameter, collections.Empty[T]())
}

// SelectWithInto is [SelectInto] with a two-argument predicate.
func SelectWithInto[T, P any, R collections.Appender[T]](iterable collections.Iterable[T], predicate fn.Predicate2[T, P], parameter P, target R) R {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.SelectWithInto(ra, predicate, parameter, target)
	}
	return SelectInto(iterable, fn.Bind(predicate, parameter), target)
}

// SelectInstancesOf returns the elements whose dynamic type is S, converted
// to S.
func SelectInstancesOf[S, T any](iterable collections.Iterable[T]) *collections.Collection[S] {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.SelectInstancesOf[S](ra)
	}
	result := collections.Empty[S]()
	each(iterable, func(item T) bool {
		if s, ok := any(item).(S); ok {
			result.Add(s)
		}
		return true
	})
	return result
}

// Reject returns the elements not satisfying predicate.
func Reject[T any](iterable collections.Iterable[T], predicate fn.Predicate[T]) *collections.Collection[T] {
	return RejectInto(iterable, predicate, collections.Empty[T]())
}

// RejectInto appends the elements not satisfying predicate to target.
func RejectInto[T any, R collections.Appender[T]](iterable collections.Iterable[T], predicate fn.Predicate[T], target R) R {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.RejectInto(ra, predicate, target)
	}
	return SelectInto(iterable, fn.Not(predicate), target)
}

// RejectWith is [Reject] with a two-argument predicate.
func RejectWith[T, P any](iterable collections.Iterable[T], predicate fn.Predicate2[T, P], parameter P) *collections.Collection[T] {
	return RejectWithInto(iterable, predicate, parameter, collections.Empty[T]())
}

// RejectWithInto is [RejectInto] with a two-argument predicate.
func RejectWithInto[T, P any, R collections.Appender[T]](iterable collections.Iterable[T], predicate fn.Predicate2[T, P], parameter P, target R) R {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.RejectWithInto(ra, predicate, parameter, target)
	}
	return RejectInto(iterable, fn.Bind(predicate, parameter), target)
}

// Count returns how many elements satisfy predicate.
func Count[T any](iterable collections.Iterable[T], predicate fn.Predicate[T]) int {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.Count(ra, predicate)
	}
	count := 0
	each(iterable, func(item T) bool {
		if predicate(item) {
			count++
		}
		return true
	})
	return count
}

// CountWith is [Count] with a two-argument predicate.
func CountWith[T, P any](iterable collections.Iterable[T], predicate fn.Predicate2[T, P], parameter P) int {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.CountWith(ra, predicate, parameter)
	}
	return Count(iterable, fn.Bind(predicate, parameter))
}

// Distinct returns the elements in first-seen order without duplicates.
func Distinct[T comparable](iterable collections.Iterable[T]) *collections.Collection[T] {
	return DistinctInto(iterable, collections.Empty[T]())
}

// DistinctInto appends the first occurrence of every element to target.
func DistinctInto[T comparable, R collections.Appender[T]](iterable collections.Iterable[T], target R) R {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.DistinctInto(ra, target)
	}
	seen := collections.NewSet[T]()
	each(iterable, func(item T) bool {
		if seen.Insert(item) {
			target.Add(item)
		}
		return true
	})
	return target
}

// ─────────────────────────────────────────────────────────────────────────────
// Removal
// ─────────────────────────────────────────────────────────────────────────────

// RemoveIf deletes every element satisfying predicate from iterable and
// returns how many were removed.
//
// A [collections.MutableRandomAccess] source is handled by
// [listiterate.RemoveIf]. Any other source must hand out a
// [collections.RemovableIterator]; otherwise nothing is read and the error
// wraps [collections.ErrNotRemovable].
func RemoveIf[T any](iterable collections.Iterable[T], predicate fn.Predicate[T]) (int, error) {
	return RemoveIfWithProcedure(iterable, predicate, nil)
}

// RemoveIfWith is [RemoveIf] with a two-argument predicate.
func RemoveIfWith[T, P any](iterable collections.Iterable[T], predicate fn.Predicate2[T, P], parameter P) (int, error) {
	if list, ok := iterable.(collections.MutableRandomAccess[T]); ok {
		return listiterate.RemoveIfWith(list, predicate, parameter), nil
	}
	return RemoveIfWithProcedure(iterable, fn.Bind(predicate, parameter), nil)
}

// RemoveIfWithProcedure is [RemoveIf] that also hands every removed element
// to procedure, in order. A nil procedure is allowed.
func RemoveIfWithProcedure[T any](iterable collections.Iterable[T], predicate fn.Predicate[T], procedure fn.Procedure[T]) (int, error) {
	if list, ok := iterable.(collections.MutableRandomAccess[T]); ok {
		return listiterate.RemoveIfWithProcedure(list, predicate, procedure), nil
	}
	it, ok := iterable.Iterator().(collections.RemovableIterator[T])
	if !ok {
		return 0, errors.Wrapf(collections.ErrNotRemovable, "removeIf on %T", iterable)
	}
	removed := 0
	for item, more := it.Next(); more; item, more = it.Next() {
		if !predicate(item) {
			continue
		}
		if procedure != nil {
			procedure(item)
		}
		it.Remove()
		removed++
	}
	return removed, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Collect returns function(element) for every element.
func Collect[T, A any](iterable collections.Iterable[T], function fn.Function[T, A]) *collections.Collection[A] {
	return CollectInto(iterable, function, collections.WithCapacity[A](SizeOf(iterable)))
}

// CollectInto appends function(element) for every element to target.
func CollectInto[T, A any, R collections.Appender[A]](iterable collections.Iterable[T], function fn.Function[T, A], target R) R {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.CollectInto(ra, function, target)
	}
	each(iterable, func(item T) bool {
		target.Add(function(item))
		return true
	})
	return target
}

// CollectWith is [Collect] with a two-argument function.
func CollectWith[T, P, A any](iterable collections.Iterable[T], function fn.Function2[T, P, A], parameter P) *collections.Collection[A] {
	return CollectWithInto(iterable, function, parameter, collections.WithCapacity[A](SizeOf(iterable)))
}

// CollectWithInto is [CollectInto] with a two-argument function.
func CollectWithInto[T, P, A any, R collections.Appender[A]](iterable collections.Iterable[T], function fn.Function2[T, P, A], parameter P, target R) R {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.CollectWithInto(ra, function, parameter, target)
	}
	each(iterable, func(item T) bool {
		target.Add(function(item, parameter))
		return true
	})
	return target
}

// CollectIf collects function(element) for the elements satisfying
// predicate.
func CollectIf[T, A any](iterable collections.Iterable[T], predicate fn.Predicate[T], function fn.Function[T, A]) *collections.Collection[A] {
	return CollectIfInto(iterable, predicate, function, collections.Empty[A]())
}

// CollectIfInto is [CollectIf] appending to target.
func CollectIfInto[T, A any, R collections.Appender[A]](iterable collections.Iterable[T], predicate fn.Predicate[T], function fn.Function[T, A], target R) R {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.CollectIfInto(ra, predicate, function, target)
	}
	each(iterable, func(item T) bool {
		if predicate(item) {
			target.Add(function(item))
		}
		return true
	})
	return target
}

// CollectPrimitiveInto appends the numeric function(element) for every
// element to target.
func CollectPrimitiveInto[T any, N fn.Number, R collections.Appender[N]](iterable collections.Iterable[T], function func(T) N, target R) R {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.CollectPrimitiveInto(ra, function, target)
	}
	return CollectInto(iterable, function, target)
}

// CollectBoolean collects function(element) into a bit-packed list.
func CollectBoolean[T any](iterable collections.Iterable[T], function func(T) bool) *collections.BooleanList {
	return CollectBooleanInto(iterable, function, collections.NewBooleanList(SizeOf(iterable)))
}

// CollectBooleanInto is [CollectBoolean] appending to target.
func CollectBooleanInto[T any, R collections.Appender[bool]](iterable collections.Iterable[T], function func(T) bool, target R) R {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.CollectBooleanInto(ra, function, target)
	}
	return CollectInto(iterable, function, target)
}

// CollectByte collects int8 attributes.
func CollectByte[T any](iterable collections.Iterable[T], function func(T) int8) *collections.ByteList {
	return CollectPrimitiveInto(iterable, function, collections.NewPrimitiveList[int8](SizeOf(iterable)))
}

// CollectChar collects rune attributes.
func CollectChar[T any](iterable collections.Iterable[T], function func(T) rune) *collections.CharList {
	return CollectPrimitiveInto(iterable, function, collections.NewPrimitiveList[rune](SizeOf(iterable)))
}

// CollectShort collects int16 attributes.
func CollectShort[T any](iterable collections.Iterable[T], function func(T) int16) *collections.ShortList {
	return CollectPrimitiveInto(iterable, function, collections.NewPrimitiveList[int16](SizeOf(iterable)))
}

// CollectInt collects int32 attributes.
func CollectInt[T any](iterable collections.Iterable[T], function func(T) int32) *collections.IntList {
	return CollectPrimitiveInto(iterable, function, collections.NewPrimitiveList[int32](SizeOf(iterable)))
}

// CollectLong collects int64 attributes.
func CollectLong[T any](iterable collections.Iterable[T], function func(T) int64) *collections.LongList {
	return CollectPrimitiveInto(iterable, function, collections.NewPrimitiveList[int64](SizeOf(iterable)))
}

// CollectFloat collects float32 attributes.
func CollectFloat[T any](iterable collections.Iterable[T], function func(T) float32) *collections.FloatList {
	return CollectPrimitiveInto(iterable, function, collections.NewPrimitiveList[float32](SizeOf(iterable)))
}

// CollectDouble collects float64 attributes.
func CollectDouble[T any](iterable collections.Iterable[T], function func(T) float64) *collections.DoubleList {
	return CollectPrimitiveInto(iterable, function, collections.NewPrimitiveList[float64](SizeOf(iterable)))
}

// FlatCollect concatenates function(element) for every element, one level
// deep.
func FlatCollect[T, A any](iterable collections.Iterable[T], function fn.Function[T, collections.Iterable[A]]) *collections.Collection[A] {
	return FlatCollectInto(iterable, function, collections.Empty[A]())
}

// FlatCollectInto is [FlatCollect] appending to target. A nil inner source
// contributes nothing.
func FlatCollectInto[T, A any, R collections.Appender[A]](iterable collections.Iterable[T], function fn.Function[T, collections.Iterable[A]], target R) R {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.FlatCollectInto(ra, function, target)
	}
	each(iterable, func(item T) bool {
		if inner := function(item); inner != nil {
			each(inner, func(a A) bool {
				target.Add(a)
				return true
			})
		}
		return true
	})
	return target
}

// ─────────────────────────────────────────────────────────────────────────────
// Short-circuit scans
// ─────────────────────────────────────────────────────────────────────────────

// ShortCircuit is the cursor form of [listiterate.ShortCircuit].
func ShortCircuit[T, V any](
	iterable collections.Iterable[T],
	predicate fn.Predicate[T],
	expected bool,
	onShortCircuit fn.Function[T, V],
	atEnd fn.Function0[V],
) V {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.ShortCircuit(ra, predicate, expected, onShortCircuit, atEnd)
	}
	it := iterable.Iterator()
	for item, ok := it.Next(); ok; item, ok = it.Next() {
		if predicate(item) == expected {
			return onShortCircuit(item)
		}
	}
	return atEnd()
}

// ShortCircuitWith is [ShortCircuit] with a two-argument predicate.
func ShortCircuitWith[T, P, V any](
	iterable collections.Iterable[T],
	predicate fn.Predicate2[T, P],
	parameter P,
	expected bool,
	onShortCircuit fn.Function[T, V],
	atEnd fn.Function0[V],
) V {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.ShortCircuitWith(ra, predicate, parameter, expected, onShortCircuit, atEnd)
	}
	return ShortCircuit(iterable, fn.Bind(predicate, parameter), expected, onShortCircuit, atEnd)
}

// AnySatisfy reports whether some element satisfies predicate.
func AnySatisfy[T any](iterable collections.Iterable[T], predicate fn.Predicate[T]) bool {
	return ShortCircuit(iterable, predicate, true, fn.Always[T](true), fn.Constant(false))
}

// AnySatisfyWith is [AnySatisfy] with a two-argument predicate.
func AnySatisfyWith[T, P any](iterable collections.Iterable[T], predicate fn.Predicate2[T, P], parameter P) bool {
	return AnySatisfy(iterable, fn.Bind(predicate, parameter))
}

// AllSatisfy reports whether every element satisfies predicate.
func AllSatisfy[T any](iterable collections.Iterable[T], predicate fn.Predicate[T]) bool {
	return ShortCircuit(iterable, predicate, false, fn.Always[T](false), fn.Constant(true))
}

// AllSatisfyWith is [AllSatisfy] with a two-argument predicate.
func AllSatisfyWith[T, P any](iterable collections.Iterable[T], predicate fn.Predicate2[T, P], parameter P) bool {
	return AllSatisfy(iterable, fn.Bind(predicate, parameter))
}

// NoneSatisfy reports whether no element satisfies predicate.
func NoneSatisfy[T any](iterable collections.Iterable[T], predicate fn.Predicate[T]) bool {
	return ShortCircuit(iterable, predicate, true, fn.Always[T](false), fn.Constant(true))
}

// NoneSatisfyWith is [NoneSatisfy] with a two-argument predicate.
func NoneSatisfyWith[T, P any](iterable collections.Iterable[T], predicate fn.Predicate2[T, P], parameter P) bool {
	return NoneSatisfy(iterable, fn.Bind(predicate, parameter))
}

// Detect returns the first element satisfying predicate and true, or the
// zero value and false.
func Detect[T any](iterable collections.Iterable[T], predicate fn.Predicate[T]) (T, bool) {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.Detect(ra, predicate)
	}
	it := iterable.Iterator()
	for item, ok := it.Next(); ok; item, ok = it.Next() {
		if predicate(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// DetectWith is [Detect] with a two-argument predicate.
func DetectWith[T, P any](iterable collections.Iterable[T], predicate fn.Predicate2[T, P], parameter P) (T, bool) {
	return Detect(iterable, fn.Bind(predicate, parameter))
}

// DetectIfNone is [Detect] returning ifNone() when nothing matches.
func DetectIfNone[T any](iterable collections.Iterable[T], predicate fn.Predicate[T], ifNone fn.Function0[T]) T {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.DetectIfNone(ra, predicate, ifNone)
	}
	return ShortCircuit(iterable, predicate, true, fn.Identity[T](), ifNone)
}

// DetectIndex returns the position of the first element satisfying
// predicate, or -1.
func DetectIndex[T any](iterable collections.Iterable[T], predicate fn.Predicate[T]) int {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.DetectIndex(ra, predicate)
	}
	index, found := 0, -1
	each(iterable, func(item T) bool {
		if predicate(item) {
			found = index
			return false
		}
		index++
		return true
	})
	return found
}

// DetectIndexWith is [DetectIndex] with a two-argument predicate.
func DetectIndexWith[T, P any](iterable collections.Iterable[T], predicate fn.Predicate2[T, P], parameter P) int {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.DetectIndexWith(ra, predicate, parameter)
	}
	return DetectIndex(iterable, fn.Bind(predicate, parameter))
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// InjectInto folds iterable from the left starting at injectValue.
func InjectInto[T, IV any](injectValue IV, iterable collections.Iterable[T], function fn.Function2[IV, T, IV]) IV {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.InjectInto(injectValue, ra, function)
	}
	result := injectValue
	each(iterable, func(item T) bool {
		result = function(result, item)
		return true
	})
	return result
}

// InjectIntoWith is [InjectInto] with a three-argument function.
func InjectIntoWith[T, IV, P any](injectValue IV, iterable collections.Iterable[T], function fn.Function3[IV, T, P, IV], parameter P) IV {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.InjectIntoWith(injectValue, ra, function, parameter)
	}
	result := injectValue
	each(iterable, func(item T) bool {
		result = function(result, item, parameter)
		return true
	})
	return result
}

// ─────────────────────────────────────────────────────────────────────────────
// Partitioning
// ─────────────────────────────────────────────────────────────────────────────

// Partition splits iterable by predicate in one pass.
func Partition[T any](iterable collections.Iterable[T], predicate fn.Predicate[T]) *collections.Partition[T] {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.Partition(ra, predicate)
	}
	result := collections.NewPartition[T]()
	each(iterable, func(item T) bool {
		result.Bucket(predicate(item)).Add(item)
		return true
	})
	return result
}

// PartitionWith is [Partition] with a two-argument predicate.
func PartitionWith[T, P any](iterable collections.Iterable[T], predicate fn.Predicate2[T, P], parameter P) *collections.Partition[T] {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.PartitionWith(ra, predicate, parameter)
	}
	return Partition(iterable, fn.Bind(predicate, parameter))
}

// SelectAndRejectWith returns (selected, rejected) as a twin.
func SelectAndRejectWith[T, P any](iterable collections.Iterable[T], predicate fn.Predicate2[T, P], parameter P) collections.Twin[*collections.Collection[T]] {
	p := PartitionWith(iterable, predicate, parameter)
	return collections.PairOf(p.Selected(), p.Rejected())
}

// PartitionWhile puts the leading run of elements satisfying predicate in
// the selected bucket and the rest in the rejected bucket. The predicate is
// not evaluated after the first failure.
func PartitionWhile[T any](iterable collections.Iterable[T], predicate fn.Predicate[T]) *collections.Partition[T] {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.PartitionWhile(ra, predicate)
	}
	result := collections.NewPartition[T]()
	selecting := true
	each(iterable, func(item T) bool {
		selecting = selecting && predicate(item)
		result.Bucket(selecting).Add(item)
		return true
	})
	return result
}

// TakeWhile returns the leading run of elements satisfying predicate. A
// cursor source is not read past the first failure.
func TakeWhile[T any](iterable collections.Iterable[T], predicate fn.Predicate[T]) *collections.Collection[T] {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.TakeWhile(ra, predicate)
	}
	result := collections.Empty[T]()
	each(iterable, func(item T) bool {
		if !predicate(item) {
			return false
		}
		result.Add(item)
		return true
	})
	return result
}

// DropWhile skips the leading run of elements satisfying predicate and
// returns the rest. The predicate is not evaluated after the first failure.
func DropWhile[T any](iterable collections.Iterable[T], predicate fn.Predicate[T]) *collections.Collection[T] {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.DropWhile(ra, predicate)
	}
	result := collections.Empty[T]()
	dropping := true
	each(iterable, func(item T) bool {
		dropping = dropping && predicate(item)
		if !dropping {
			result.Add(item)
		}
		return true
	})
	return result
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns the first min(count, size) elements.
func Take[T any](iterable collections.Iterable[T], count int) (*collections.Collection[T], error) {
	if count < 0 {
		return nil, negativeCount(count)
	}
	return TakeInto(iterable, count, collections.WithCapacity[T](min(count, SizeOf(iterable))))
}

// TakeInto is [Take] appending to target. A cursor source is not read past
// the count-th element.
func TakeInto[T any, R collections.Appender[T]](iterable collections.Iterable[T], count int, target R) (R, error) {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.TakeInto(ra, count, target)
	}
	if count < 0 {
		return target, negativeCount(count)
	}
	if count == 0 {
		return target, nil
	}
	taken := 0
	each(iterable, func(item T) bool {
		target.Add(item)
		taken++
		return taken < count
	})
	return target, nil
}

// Drop returns the elements after the first count.
func Drop[T any](iterable collections.Iterable[T], count int) (*collections.Collection[T], error) {
	if count < 0 {
		return nil, negativeCount(count)
	}
	return DropInto(iterable, count, collections.Empty[T]())
}

// DropInto is [Drop] appending to target.
func DropInto[T any, R collections.Appender[T]](iterable collections.Iterable[T], count int, target R) (R, error) {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.DropInto(ra, count, target)
	}
	if count < 0 {
		return target, negativeCount(count)
	}
	index := 0
	each(iterable, func(item T) bool {
		if index >= count {
			target.Add(item)
		}
		index++
		return true
	})
	return target, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping and aggregation
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy places every element under function(element).
func GroupBy[T any, K comparable](iterable collections.Iterable[T], function fn.Function[T, K]) *collections.Multimap[K, T] {
	return GroupByInto(iterable, function, collections.NewMultimap[K, T]())
}

// GroupByInto is [GroupBy] filling target.
func GroupByInto[T any, K comparable](iterable collections.Iterable[T], function fn.Function[T, K], target *collections.Multimap[K, T]) *collections.Multimap[K, T] {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.GroupByInto(ra, function, target)
	}
	each(iterable, func(item T) bool {
		target.Put(function(item), item)
		return true
	})
	return target
}

// GroupByEach places every element under each key function returns for it.
func GroupByEach[T any, K comparable](iterable collections.Iterable[T], function fn.Function[T, collections.Iterable[K]]) *collections.Multimap[K, T] {
	return GroupByEachInto(iterable, function, collections.NewMultimap[K, T]())
}

// GroupByEachInto is [GroupByEach] filling target. A nil key source
// contributes nothing.
func GroupByEachInto[T any, K comparable](iterable collections.Iterable[T], function fn.Function[T, collections.Iterable[K]], target *collections.Multimap[K, T]) *collections.Multimap[K, T] {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.GroupByEachInto(ra, function, target)
	}
	each(iterable, func(item T) bool {
		if keys := function(item); keys != nil {
			each(keys, func(key K) bool {
				target.Put(key, item)
				return true
			})
		}
		return true
	})
	return target
}

// GroupByUniqueKey maps function(element) to element and fails with a
// *collections.DuplicateKeyError on the first shared key.
func GroupByUniqueKey[T any, K comparable](iterable collections.Iterable[T], function fn.Function[T, K]) (*collections.Map[K, T], error) {
	return GroupByUniqueKeyInto(iterable, function, collections.NewMap[K, T]())
}

// GroupByUniqueKeyInto is [GroupByUniqueKey] filling target. Keys already
// present in target count as collisions.
func GroupByUniqueKeyInto[T any, K comparable](iterable collections.Iterable[T], function fn.Function[T, K], target *collections.Map[K, T]) (*collections.Map[K, T], error) {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.GroupByUniqueKeyInto(ra, function, target)
	}
	var err error
	each(iterable, func(item T) bool {
		key := function(item)
		if target.ContainsKey(key) {
			err = errors.WithStack(&collections.DuplicateKeyError{Key: key})
			return false
		}
		target.Put(key, item)
		return true
	})
	return target, err
}

// AggregateInPlaceBy groups elements by key and folds each group into a
// value created by zeroValueFactory on first sight of the key.
// mutatingAggregator updates that value in place.
func AggregateInPlaceBy[T any, K comparable, V any](
	iterable collections.Iterable[T],
	groupBy fn.Function[T, K],
	zeroValueFactory fn.Function0[V],
	mutatingAggregator fn.Procedure2[V, T],
) *collections.Map[K, V] {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.AggregateInPlaceBy(ra, groupBy, zeroValueFactory, mutatingAggregator)
	}
	result := collections.NewMap[K, V]()
	each(iterable, func(item T) bool {
		mutatingAggregator(result.GetIfAbsentPut(groupBy(item), zeroValueFactory), item)
		return true
	})
	return result
}

// AggregateBy groups elements by key and folds each group, replacing the
// stored value with nonMutatingAggregator(current, element).
func AggregateBy[T any, K comparable, V any](
	iterable collections.Iterable[T],
	groupBy fn.Function[T, K],
	zeroValueFactory fn.Function0[V],
	nonMutatingAggregator fn.Function2[V, T, V],
) *collections.Map[K, V] {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.AggregateBy(ra, groupBy, zeroValueFactory, nonMutatingAggregator)
	}
	result := collections.NewMap[K, V]()
	each(iterable, func(item T) bool {
		result.UpdateValue(groupBy(item), zeroValueFactory, func(current V) V {
			return nonMutatingAggregator(current, item)
		})
		return true
	})
	return result
}

// ─────────────────────────────────────────────────────────────────────────────
// Min / Max
// ─────────────────────────────────────────────────────────────────────────────

// MinBy returns the element with the smallest function(element); ties keep
// the earliest.
func MinBy[T any, V fn.Ordered](iterable collections.Iterable[T], function fn.Function[T, V]) (T, error) {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.MinBy(ra, function)
	}
	return bestBy(iterable, function, func(next, best V) bool { return next < best })
}

// MaxBy returns the element with the largest function(element); ties keep
// the earliest.
func MaxBy[T any, V fn.Ordered](iterable collections.Iterable[T], function fn.Function[T, V]) (T, error) {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.MaxBy(ra, function)
	}
	return bestBy(iterable, function, func(next, best V) bool { return next > best })
}

func bestBy[T any, V fn.Ordered](iterable collections.Iterable[T], function fn.Function[T, V], better func(next, best V) bool) (T, error) {
	it := iterable.Iterator()
	best, ok := it.Next()
	if !ok {
		return best, errors.WithStack(collections.ErrNoSuchElement)
	}
	bestValue := function(best)
	for next, ok := it.Next(); ok; next, ok = it.Next() {
		if nextValue := function(next); better(nextValue, bestValue) {
			best, bestValue = next, nextValue
		}
	}
	return best, nil
}

// Min returns the smallest element according to compare, which returns a
// negative number when a sorts before b. Ties keep the earliest.
func Min[T any](iterable collections.Iterable[T], compare func(a, b T) int) (T, error) {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.Min(ra, compare)
	}
	return best(iterable, func(item, current T) bool { return compare(item, current) < 0 })
}

// Max returns the largest element according to compare. Ties keep the
// earliest.
func Max[T any](iterable collections.Iterable[T], compare func(a, b T) int) (T, error) {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.Max(ra, compare)
	}
	return best(iterable, func(item, current T) bool { return compare(item, current) > 0 })
}

// MinOrdered returns the smallest element by natural ordering.
func MinOrdered[T fn.Ordered](iterable collections.Iterable[T]) (T, error) {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.MinOrdered(ra)
	}
	return best(iterable, func(item, current T) bool { return item < current })
}

// MaxOrdered returns the largest element by natural ordering.
func MaxOrdered[T fn.Ordered](iterable collections.Iterable[T]) (T, error) {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.MaxOrdered(ra)
	}
	return best(iterable, func(item, current T) bool { return item > current })
}

func best[T any](iterable collections.Iterable[T], better func(item, current T) bool) (T, error) {
	it := iterable.Iterator()
	result, ok := it.Next()
	if !ok {
		return result, errors.WithStack(collections.ErrNoSuchElement)
	}
	for item, ok := it.Next(); ok; item, ok = it.Next() {
		if better(item, result) {
			result = item
		}
	}
	return result, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Zipping
// ─────────────────────────────────────────────────────────────────────────────

// Zip pairs elements positionally and stops at the shorter input.
func Zip[X, Y any](xs collections.Iterable[X], ys collections.Iterable[Y]) *collections.Collection[collections.Pair[X, Y]] {
	return ZipInto(xs, ys, collections.Empty[collections.Pair[X, Y]]())
}

// ZipInto is [Zip] appending to target.
func ZipInto[X, Y any, R collections.Appender[collections.Pair[X, Y]]](xs collections.Iterable[X], ys collections.Iterable[Y], target R) R {
	if ra, ok := randomAccess(xs); ok {
		return listiterate.ZipInto(ra, ys, target)
	}
	yIterator := ys.Iterator()
	each(xs, func(x X) bool {
		y, ok := yIterator.Next()
		if !ok {
			return false
		}
		target.Add(collections.PairOf(x, y))
		return true
	})
	return target
}

// ZipWithIndex pairs each element with its 0-based position.
func ZipWithIndex[T any](iterable collections.Iterable[T]) *collections.Collection[collections.Pair[T, int]] {
	return ZipWithIndexInto(iterable, collections.WithCapacity[collections.Pair[T, int]](SizeOf(iterable)))
}

// ZipWithIndexInto is [ZipWithIndex] appending to target.
func ZipWithIndexInto[T any, R collections.Appender[collections.Pair[T, int]]](iterable collections.Iterable[T], target R) R {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.ZipWithIndexInto(ra, target)
	}
	ForEachWithIndex(iterable, func(item T, index int) {
		target.Add(collections.PairOf(item, index))
	})
	return target
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// AppendString writes start, the elements separated by separator, and end
// to w. Elements are formatted with fmt's %v. A write failure stops the
// output and is returned wrapped.
func AppendString[T any](iterable collections.Iterable[T], w io.Writer, start, separator, end string) error {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.AppendString(ra, w, start, separator, end)
	}
	if _, err := io.WriteString(w, start); err != nil {
		return errors.Wrap(err, "append string")
	}
	var err error
	index := 0
	each(iterable, func(item T) bool {
		if index > 0 {
			if _, err = io.WriteString(w, separator); err != nil {
				err = errors.Wrap(err, "append string")
				return false
			}
		}
		if _, err = fmt.Fprint(w, item); err != nil {
			err = errors.Wrapf(err, "append string: element %d", index)
			return false
		}
		index++
		return true
	})
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, end); err != nil {
		return errors.Wrap(err, "append string")
	}
	return nil
}

// MakeString joins the elements with separator.
func MakeString[T any](iterable collections.Iterable[T], separator string) string {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = AppendString(iterable, &b, "", separator, "")
	return b.String()
}
