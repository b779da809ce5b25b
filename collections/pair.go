package collections

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by zip and zipWithIndex.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Twin is a Pair whose halves share one type.
type Twin[T any] = Pair[T, T]

// PairOf builds a Pair.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
