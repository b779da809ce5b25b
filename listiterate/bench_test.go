package listiterate_test

import (
	"testing"

	"github.com/hasbyte1/go-iterate/collections"
	"github.com/hasbyte1/go-iterate/iterate"
	"github.com/hasbyte1/go-iterate/lazy"
	"github.com/hasbyte1/go-iterate/listiterate"
)

// makeInts creates a Collection[int] of size n for benchmarks.
func makeInts(n int) *collections.Collection[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return collections.From(items)
}

func BenchmarkSelect(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		listiterate.Select(c, isEven)
	}
}

func BenchmarkSelectDispatched(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		iterate.Select[int](c, isEven)
	}
}

func BenchmarkCollect(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		listiterate.Collect(c, func(n int) int { return n * 2 })
	}
}

func BenchmarkLazyCollectInject(b *testing.B) {
	view := lazy.Collect[int](makeInts(10_000), func(n int) int { return n * 2 })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lazy.InjectInto(0, view, func(acc, n int) int { return acc + n })
	}
}

func BenchmarkSumOfDouble(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		listiterate.SumOfDouble(c, func(n int) float64 { return float64(n) / 3 })
	}
}

func BenchmarkGroupBy(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		listiterate.GroupBy(c, func(n int) int { return n % 10 })
	}
}

func BenchmarkDistinct(b *testing.B) {
	c := listiterate.Collect(makeInts(10_000), func(n int) int { return n % 100 })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		listiterate.Distinct(c)
	}
}

func BenchmarkRemoveIf(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		c := makeInts(1_000)
		b.StartTimer()
		listiterate.RemoveIf(c, isEven)
	}
}
