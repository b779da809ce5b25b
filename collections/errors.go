package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the iteration engines.
var (
	// ErrNoSuchElement is returned when an operation requires at least one
	// element but the source is empty (min, max, minBy, maxBy).
	ErrNoSuchElement = errors.New("collections: no such element")

	// ErrIndexOutOfRange is returned when a range bound lies outside
	// [0, Size()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrNegativeCount is returned by take and drop when the requested count
	// is below zero.
	ErrNegativeCount = errors.New("collections: count must not be negative")

	// ErrSizeMismatch is returned when two sequences that must be walked in
	// lockstep have different sizes.
	ErrSizeMismatch = errors.New("collections: sequences have different sizes")

	// ErrNotRemovable is returned by removeIf when the source offers neither
	// positional removal nor a [RemovableIterator].
	ErrNotRemovable = errors.New("collections: source does not support removal")

	// ErrDuplicateKey is matched by every [*DuplicateKeyError].
	ErrDuplicateKey = errors.New("collections: key already exists")
)

// DuplicateKeyError reports the key that collided during a unique-key
// grouping.
//
// The grouping stops at the collision and does not roll back: the map
// returned next to this error holds every element inserted before it.
type DuplicateKeyError struct {
	Key any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("collections: key %v already exists in map", e.Key)
}

// Is makes errors.Is(err, ErrDuplicateKey) succeed.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}
