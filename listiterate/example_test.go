package listiterate_test

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-iterate/collections"
	"github.com/hasbyte1/go-iterate/listiterate"
)

func ExampleSelect() {
	numbers := collections.New(1, 2, 3, 4, 5, 6)
	evens := listiterate.Select(numbers, func(n int) bool { return n%2 == 0 })
	fmt.Println(evens.All())
	// Output: [2 4 6]
}

func ExamplePartition() {
	p := listiterate.Partition(collections.New(1, 2, 3, 4, 5), func(n int) bool { return n > 2 })
	fmt.Println(p.Selected().All(), p.Rejected().All())
	// Output: [3 4 5] [1 2]
}

func ExampleCollect() {
	labels := listiterate.Collect(collections.New(1, 2, 3), strconv.Itoa)
	fmt.Println(listiterate.MakeString(labels, "-"))
	// Output: 1-2-3
}

func ExampleForEachInRange() {
	letters := collections.New("a", "b", "c", "d")
	_ = listiterate.ForEachInRange(letters, 3, 1, func(s string) { fmt.Print(s) })
	fmt.Println()
	// Output: dcb
}

func ExampleDetectIndex() {
	fmt.Println(listiterate.DetectIndex(collections.New(5, 8, 13), func(n int) bool { return n > 6 }))
	// Output: 1
}

func ExampleGroupBy() {
	words := collections.New("apple", "avocado", "banana", "blueberry", "cherry")
	groups := listiterate.GroupBy(words, func(w string) byte { return w[0] })
	groups.Each(func(initial byte, members *collections.Collection[string]) {
		fmt.Printf("%c %v\n", initial, members.All())
	})
	// Output:
	// a [apple avocado]
	// b [banana blueberry]
	// c [cherry]
}

func ExampleTake() {
	first, _ := listiterate.Take(collections.New(1, 2, 3, 4), 2)
	rest, _ := listiterate.Drop(collections.New(1, 2, 3, 4), 2)
	_, err := listiterate.Take(collections.New(1), -1)
	fmt.Println(first.All(), rest.All(), err)
	// Output: [1 2] [3 4] count was -1: collections: count must not be negative
}

func ExampleSumOfDouble() {
	prices := collections.New(0.1, 0.2, 0.3)
	fmt.Println(listiterate.SumOfDouble(prices, func(p float64) float64 { return p }))
	// Output: 0.6
}

func ExampleZipWithIndex() {
	pairs := listiterate.ZipWithIndex(collections.New("x", "y"))
	fmt.Println(listiterate.MakeString(pairs, " "))
	// Output: (x, 0) (y, 1)
}
