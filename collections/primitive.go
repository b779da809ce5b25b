package collections

import (
	"github.com/hasbyte1/go-iterate/fn"
)

// PrimitiveList is an unboxed list of numbers. The engines' collectInt,
// collectDouble and friends fill one without converting through any.
type PrimitiveList[N fn.Number] struct {
	items []N
}

// Element-specific list names.
type (
	ByteList   = PrimitiveList[int8]
	ShortList  = PrimitiveList[int16]
	IntList    = PrimitiveList[int32]
	LongList   = PrimitiveList[int64]
	FloatList  = PrimitiveList[float32]
	DoubleList = PrimitiveList[float64]
	CharList   = PrimitiveList[rune]
)

var _ RandomAccess[int32] = (*IntList)(nil)

// NewPrimitiveList creates an empty list pre-sized for capacity values.
func NewPrimitiveList[N fn.Number](capacity int) *PrimitiveList[N] {
	if capacity < 0 {
		capacity = 0
	}
	return &PrimitiveList[N]{items: make([]N, 0, capacity)}
}

// PrimitiveListOf creates a list holding values (copied).
func PrimitiveListOf[N fn.Number](values ...N) *PrimitiveList[N] {
	items := make([]N, len(values))
	copy(items, values)
	return &PrimitiveList[N]{items: items}
}

// Add appends value.
func (l *PrimitiveList[N]) Add(value N) { l.items = append(l.items, value) }

// AddAll appends values in order.
func (l *PrimitiveList[N]) AddAll(values ...N) { l.items = append(l.items, values...) }

// Get returns the value at index. It panics when index is out of range.
func (l *PrimitiveList[N]) Get(index int) N { return l.items[index] }

// Size returns the number of values.
func (l *PrimitiveList[N]) Size() int { return len(l.items) }

// IsEmpty reports whether the list holds no values.
func (l *PrimitiveList[N]) IsEmpty() bool { return len(l.items) == 0 }

// ToSlice returns a copy of the values.
func (l *PrimitiveList[N]) ToSlice() []N {
	out := make([]N, len(l.items))
	copy(out, l.items)
	return out
}

// Iterator returns a cursor over the values.
func (l *PrimitiveList[N]) Iterator() Iterator[N] {
	return SliceIterator(l.items)
}

// Sum returns the total as float64 using compensated summation.
func (l *PrimitiveList[N]) Sum() float64 {
	var sum, compensation float64
	for _, v := range l.items {
		adjusted := float64(v) - compensation
		next := sum + adjusted
		compensation = (next - sum) - adjusted
		sum = next
	}
	return sum
}
