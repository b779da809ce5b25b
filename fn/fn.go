// Package fn defines the function contracts consumed by the iteration
// engines: predicates, transformations, procedures and accumulators, plus a
// handful of combinators for composing them.
//
// Every type here is a plain Go func type. Callers may pass literal funcs
// wherever one of these types is expected; the names exist so signatures in
// the engines read like the protocol they implement.
//
// The two-argument forms ([Predicate2], [Function2], [Procedure2]) take a
// caller-supplied parameter that is threaded through unchanged. They let hot
// loops reuse one func value instead of allocating a closure per call:
//
//	listiterate.SelectWith(people, olderThan, 30)
package fn

import "golang.org/x/exp/constraints"

// Predicate tests a single value.
type Predicate[T any] func(T) bool

// Predicate2 tests a value against an extra parameter.
type Predicate2[T, P any] func(T, P) bool

// Function transforms T into R.
type Function[T, R any] func(T) R

// Function0 produces a value without input. Used for zero-value factories
// and "not found" suppliers.
type Function0[R any] func() R

// Function2 combines two arguments into R. Folds use it as
// (accumulator, element) → accumulator.
type Function2[A, B, R any] func(A, B) R

// Function3 combines three arguments into R.
type Function3[A, B, C, R any] func(A, B, C) R

// Procedure consumes a value for its side effects.
type Procedure[T any] func(T)

// Procedure2 consumes a value and an extra parameter.
type Procedure2[T, P any] func(T, P)

// ObjectIntProcedure consumes a value and its position.
type ObjectIntProcedure[T any] func(T, int)

// Integer is satisfied by every built-in integer type.
type Integer = constraints.Integer

// Float is satisfied by float32 and float64.
type Float = constraints.Float

// Number is satisfied by every built-in integer and floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Ordered is satisfied by every type supporting < and >.
type Ordered = constraints.Ordered

// Bind fixes the parameter of a two-argument predicate.
func Bind[T, P any](predicate Predicate2[T, P], parameter P) Predicate[T] {
	return func(each T) bool { return predicate(each, parameter) }
}

// BindProcedure fixes the parameter of a two-argument procedure.
func BindProcedure[T, P any](procedure Procedure2[T, P], parameter P) Procedure[T] {
	return func(each T) { procedure(each, parameter) }
}

// Attribute returns a predicate that applies function first and tests the
// result: Attribute(f, p)(x) == p(f(x)).
func Attribute[T, V any](function Function[T, V], predicate Predicate[V]) Predicate[T] {
	return func(each T) bool { return predicate(function(each)) }
}

// Then composes two functions: Then(f, g)(x) == g(f(x)).
func Then[T, V, W any](first Function[T, V], second Function[V, W]) Function[T, W] {
	return func(each T) W { return second(first(each)) }
}

// Through returns a procedure that transforms each value before handing it
// to procedure.
func Through[T, V any](procedure Procedure[V], function Function[T, V]) Procedure[T] {
	return func(each T) { procedure(function(each)) }
}

// Not negates a predicate.
func Not[T any](predicate Predicate[T]) Predicate[T] {
	return func(each T) bool { return !predicate(each) }
}

// Identity returns its argument.
func Identity[T any]() Function[T, T] {
	return func(each T) T { return each }
}

// Constant returns a supplier that always yields value.
func Constant[R any](value R) Function0[R] {
	return func() R { return value }
}

// Always returns a function that ignores its argument and yields value.
func Always[T, R any](value R) Function[T, R] {
	return func(T) R { return value }
}

// Zero returns a supplier of R's zero value.
func Zero[R any]() Function0[R] {
	return func() R {
		var zero R
		return zero
	}
}
