package lazy_test

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-iterate/collections"
	"github.com/hasbyte1/go-iterate/lazy"
)

func ExampleCollect() {
	calls := 0
	squares := lazy.Collect[int](collections.New(1, 2, 3, 4), func(n int) int {
		calls++
		return n * n
	})
	fmt.Println(squares.AnySatisfy(func(n int) bool { return n == 4 }), calls)
	// Output: true 2
}

func ExampleCollectThen() {
	doubled := lazy.Collect[int](collections.New(1, 2, 3), func(n int) int { return n * 2 })
	labels := lazy.CollectThen(doubled, strconv.Itoa)
	fmt.Println(labels.ToSlice(), labels.Size())
	// Output: [2 4 6] 3
}

func ExampleInjectInto() {
	lengths := lazy.Collect[string](collections.New("go", "lazy"), func(s string) int { return len(s) })
	fmt.Println(lazy.InjectInto(0, lengths, func(acc, n int) int { return acc + n }))
	// Output: 6
}
