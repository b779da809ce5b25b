package listiterate

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/hasbyte1/go-iterate/collections"
	"github.com/hasbyte1/go-iterate/fn"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sums over the whole list
// ─────────────────────────────────────────────────────────────────────────────

// SumOfInt adds function(element) for every element into an int64.
// Overflow wraps silently.
func SumOfInt[T any, N fn.Integer](list collections.RandomAccess[T], function func(T) N) int64 {
	var sum int64
	size := list.Size()
	for i := 0; i < size; i++ {
		sum += int64(function(list.Get(i)))
	}
	return sum
}

// SumOfLong is [SumOfInt] for int64 attributes.
func SumOfLong[T any](list collections.RandomAccess[T], function func(T) int64) int64 {
	return SumOfInt(list, function)
}

// SumOfFloat adds function(element) for every element using Kahan
// compensated summation in float64.
func SumOfFloat[T any, F fn.Float](list collections.RandomAccess[T], function func(T) F) float64 {
	var sum, compensation float64
	size := list.Size()
	for i := 0; i < size; i++ {
		adjusted := float64(function(list.Get(i))) - compensation
		next := sum + adjusted
		compensation = (next - sum) - adjusted
		sum = next
	}
	return sum
}

// SumOfDouble is [SumOfFloat] for float64 attributes. Compensation keeps
// small addends that plain addition would drop:
//
//	listiterate.SumOfDouble(list, identity) // [1.0, 1e-16 × 10] → 1.000000000000001
//
// It does not recover a value absorbed by a larger one:
// [1e16, 1.0, -1e16] sums to 0.
func SumOfDouble[T any](list collections.RandomAccess[T], function func(T) float64) float64 {
	return SumOfFloat(list, function)
}

// SumOfBigDecimal adds function(element) for every element exactly.
func SumOfBigDecimal[T any](list collections.RandomAccess[T], function func(T) decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	size := list.Size()
	for i := 0; i < size; i++ {
		sum = sum.Add(function(list.Get(i)))
	}
	return sum
}

// SumOfBigInteger adds function(element) for every element exactly. The
// returned value is freshly allocated; the inputs are not modified.
func SumOfBigInteger[T any](list collections.RandomAccess[T], function func(T) *big.Int) *big.Int {
	sum := new(big.Int)
	size := list.Size()
	for i := 0; i < size; i++ {
		sum.Add(sum, function(list.Get(i)))
	}
	return sum
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouped sums
// ─────────────────────────────────────────────────────────────────────────────

// SumByInt groups by groupBy and sums function(element) per key into int64.
func SumByInt[T any, K comparable, N fn.Integer](list collections.RandomAccess[T], groupBy fn.Function[T, K], function func(T) N) *collections.Map[K, int64] {
	result := collections.NewMap[K, int64]()
	size := list.Size()
	for i := 0; i < size; i++ {
		item := list.Get(i)
		value := int64(function(item))
		result.UpdateValue(groupBy(item), zeroInt64, func(current int64) int64 { return current + value })
	}
	return result
}

// SumByLong is [SumByInt] for int64 attributes.
func SumByLong[T any, K comparable](list collections.RandomAccess[T], groupBy fn.Function[T, K], function func(T) int64) *collections.Map[K, int64] {
	return SumByInt(list, groupBy, function)
}

// SumByFloat groups by groupBy and sums function(element) per key into
// float64. Grouped sums use plain addition.
func SumByFloat[T any, K comparable, F fn.Float](list collections.RandomAccess[T], groupBy fn.Function[T, K], function func(T) F) *collections.Map[K, float64] {
	result := collections.NewMap[K, float64]()
	size := list.Size()
	for i := 0; i < size; i++ {
		item := list.Get(i)
		value := float64(function(item))
		result.UpdateValue(groupBy(item), zeroFloat64, func(current float64) float64 { return current + value })
	}
	return result
}

// SumByDouble is [SumByFloat] for float64 attributes.
func SumByDouble[T any, K comparable](list collections.RandomAccess[T], groupBy fn.Function[T, K], function func(T) float64) *collections.Map[K, float64] {
	return SumByFloat(list, groupBy, function)
}

// SumByBigDecimal groups by groupBy and sums function(element) per key
// exactly.
func SumByBigDecimal[T any, K comparable](list collections.RandomAccess[T], groupBy fn.Function[T, K], function func(T) decimal.Decimal) *collections.Map[K, decimal.Decimal] {
	return AggregateBy(list, groupBy, fn.Constant(decimal.Zero), func(current decimal.Decimal, each T) decimal.Decimal {
		return current.Add(function(each))
	})
}

// SumByBigInteger groups by groupBy and sums function(element) per key
// exactly.
func SumByBigInteger[T any, K comparable](list collections.RandomAccess[T], groupBy fn.Function[T, K], function func(T) *big.Int) *collections.Map[K, *big.Int] {
	return AggregateInPlaceBy(list, groupBy, newBigInt, func(current *big.Int, each T) {
		current.Add(current, function(each))
	})
}

func zeroInt64() int64     { return 0 }
func zeroFloat64() float64 { return 0 }
func newBigInt() *big.Int  { return new(big.Int) }
