// Package collections provides the containers and capability interfaces
// shared by the iteration engines in listiterate, iterate and lazy.
//
// # Overview
//
// The engines never depend on a concrete container. They accept small
// capability interfaces:
//
//   - [Iterable]: a fresh cursor and a size; the minimum every source offers.
//   - [RandomAccess]: Size and Get(i); enables the indexed fast path.
//   - [MutableRandomAccess]: adds RemoveAt for in-place removal.
//   - [Appender] and [BulkAppender]: what a result target must support.
//
// The central container is [Collection][T], a mutable array-backed list
// that satisfies all of them and is the default result of every
// list-producing operation:
//
//	numbers := collections.New(1, 2, 3, 4, 5)
//	evens := listiterate.Select(numbers, func(n int) bool { return n%2 == 0 })
//	evens.All() // [2 4]
//
// # Other containers
//
//   - [Set]: hash set backed by hashicorp/go-set; the distinct tracker.
//   - [Map]: insertion-ordered map backed by wk8/go-ordered-map; the target of
//     groupByUniqueKey, aggregateBy and the sumBy family.
//   - [Multimap]: key to list of values, keys in first-seen order; the
//     target of groupBy.
//   - [PrimitiveList] and its aliases ([IntList], [DoubleList], ...): unboxed
//     numeric lists filled by the collectInt/collectDouble family.
//   - [BooleanList]: bit-packed bools backed by bits-and-blooms/bitset.
//   - [Partition] and [Pair]: the two-bucket and two-value results.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type live as package-level functions
// in the engine packages rather than as methods here.
//
// # Errors
//
// The sentinel errors in errors.go are shared by every engine. Failures are
// returned wrapped with context; match them with [errors.Is].
package collections
