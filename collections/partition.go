package collections

// Partition holds the two buckets produced by one partitioning pass.
// Both buckets preserve source order.
type Partition[T any] struct {
	selected *Collection[T]
	rejected *Collection[T]
}

// NewPartition returns a Partition with two empty buckets.
func NewPartition[T any]() *Partition[T] {
	return &Partition[T]{selected: Empty[T](), rejected: Empty[T]()}
}

// Selected returns the elements that satisfied the predicate.
func (p *Partition[T]) Selected() *Collection[T] { return p.selected }

// Rejected returns the elements that did not.
func (p *Partition[T]) Rejected() *Collection[T] { return p.rejected }

// Bucket returns Selected when accepted is true, Rejected otherwise.
func (p *Partition[T]) Bucket(accepted bool) *Collection[T] {
	if accepted {
		return p.selected
	}
	return p.rejected
}
