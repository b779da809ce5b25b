package iterate

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/hasbyte1/go-iterate/collections"
	"github.com/hasbyte1/go-iterate/fn"
	"github.com/hasbyte1/go-iterate/listiterate"
)

// SumOfInt adds function(element) into an int64. Overflow wraps silently.
func SumOfInt[T any, N fn.Integer](iterable collections.Iterable[T], function func(T) N) int64 {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.SumOfInt(ra, function)
	}
	var sum int64
	each(iterable, func(item T) bool {
		sum += int64(function(item))
		return true
	})
	return sum
}

// SumOfLong is [SumOfInt] for int64 attributes.
func SumOfLong[T any](iterable collections.Iterable[T], function func(T) int64) int64 {
	return SumOfInt(iterable, function)
}

// SumOfFloat adds function(element) with Kahan compensated summation.
func SumOfFloat[T any, F fn.Float](iterable collections.Iterable[T], function func(T) F) float64 {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.SumOfFloat(ra, function)
	}
	var sum, compensation float64
	each(iterable, func(item T) bool {
		adjusted := float64(function(item)) - compensation
		next := sum + adjusted
		compensation = (next - sum) - adjusted
		sum = next
		return true
	})
	return sum
}

// SumOfDouble is [SumOfFloat] for float64 attributes.
func SumOfDouble[T any](iterable collections.Iterable[T], function func(T) float64) float64 {
	return SumOfFloat(iterable, function)
}

// SumOfBigDecimal adds function(element) exactly.
func SumOfBigDecimal[T any](iterable collections.Iterable[T], function func(T) decimal.Decimal) decimal.Decimal {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.SumOfBigDecimal(ra, function)
	}
	sum := decimal.Zero
	each(iterable, func(item T) bool {
		sum = sum.Add(function(item))
		return true
	})
	return sum
}

// SumOfBigInteger adds function(element) exactly into a fresh *big.Int.
func SumOfBigInteger[T any](iterable collections.Iterable[T], function func(T) *big.Int) *big.Int {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.SumOfBigInteger(ra, function)
	}
	sum := new(big.Int)
	each(iterable, func(item T) bool {
		sum.Add(sum, function(item))
		return true
	})
	return sum
}

// SumByInt groups by groupBy and sums function(element) per key into int64.
func SumByInt[T any, K comparable, N fn.Integer](iterable collections.Iterable[T], groupBy fn.Function[T, K], function func(T) N) *collections.Map[K, int64] {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.SumByInt(ra, groupBy, function)
	}
	return AggregateBy(iterable, groupBy, fn.Zero[int64](), func(current int64, item T) int64 {
		return current + int64(function(item))
	})
}

// SumByLong is [SumByInt] for int64 attributes.
func SumByLong[T any, K comparable](iterable collections.Iterable[T], groupBy fn.Function[T, K], function func(T) int64) *collections.Map[K, int64] {
	return SumByInt(iterable, groupBy, function)
}

// SumByFloat groups by groupBy and sums function(element) per key into
// float64 with plain addition.
func SumByFloat[T any, K comparable, F fn.Float](iterable collections.Iterable[T], groupBy fn.Function[T, K], function func(T) F) *collections.Map[K, float64] {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.SumByFloat(ra, groupBy, function)
	}
	return AggregateBy(iterable, groupBy, fn.Zero[float64](), func(current float64, item T) float64 {
		return current + float64(function(item))
	})
}

// SumByDouble is [SumByFloat] for float64 attributes.
func SumByDouble[T any, K comparable](iterable collections.Iterable[T], groupBy fn.Function[T, K], function func(T) float64) *collections.Map[K, float64] {
	return SumByFloat(iterable, groupBy, function)
}

// SumByBigDecimal groups by groupBy and sums function(element) per key
// exactly.
func SumByBigDecimal[T any, K comparable](iterable collections.Iterable[T], groupBy fn.Function[T, K], function func(T) decimal.Decimal) *collections.Map[K, decimal.Decimal] {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.SumByBigDecimal(ra, groupBy, function)
	}
	return AggregateBy(iterable, groupBy, fn.Constant(decimal.Zero), func(current decimal.Decimal, item T) decimal.Decimal {
		return current.Add(function(item))
	})
}

// SumByBigInteger groups by groupBy and sums function(element) per key
// exactly.
func SumByBigInteger[T any, K comparable](iterable collections.Iterable[T], groupBy fn.Function[T, K], function func(T) *big.Int) *collections.Map[K, *big.Int] {
	if ra, ok := randomAccess(iterable); ok {
		return listiterate.SumByBigInteger(ra, groupBy, function)
	}
	return AggregateInPlaceBy(iterable, groupBy, func() *big.Int { return new(big.Int) }, func(current *big.Int, item T) {
		current.Add(current, function(item))
	})
}
