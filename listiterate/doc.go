// Package listiterate implements the collection-iteration protocol for
// random-access sequences.
//
// Every function walks its source with Get(i) for i in [0, Size()), which
// makes it the fast path for array-backed lists such as
// [collections.Collection]. The operations follow the Smalltalk naming
// (select, reject, collect, detect, injectInto, ...) rather than the
// map/filter/reduce vocabulary.
//
// # Result containers
//
// Operations that build a collection come in two forms. The plain form
// creates a fresh default container; the Into form appends to a caller
// supplied target and returns it:
//
//	evens := listiterate.Select(numbers, isEven)
//	listiterate.SelectInto(numbers, isEven, existing)
//
// # Short-circuiting
//
// AnySatisfy, AllSatisfy, NoneSatisfy and Detect are all configurations of
// [ShortCircuit]: the scan stops on the first element whose predicate result
// equals the expected outcome, and no later element is read.
//
// # Failure
//
// Invalid arguments (negative counts, mismatched sizes, empty sources for
// min and max) are reported as errors wrapping the sentinels in
// [collections]. Nothing is retried or logged. A failure part way through
// leaves whatever the operation already wrote in the target.
//
// The sources are never copied or locked; the caller must not mutate a
// source while an operation walks it, except through [RemoveIf].
package listiterate
