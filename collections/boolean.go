package collections

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// BooleanList is a list of bools packed one bit per value.
type BooleanList struct {
	bits *bitset.BitSet
	size int
}

var _ RandomAccess[bool] = (*BooleanList)(nil)

// NewBooleanList creates an empty list pre-sized for capacity values.
func NewBooleanList(capacity int) *BooleanList {
	if capacity < 0 {
		capacity = 0
	}
	return &BooleanList{bits: bitset.New(uint(capacity))}
}

// BooleanListOf creates a list holding values.
func BooleanListOf(values ...bool) *BooleanList {
	l := NewBooleanList(len(values))
	for _, v := range values {
		l.Add(v)
	}
	return l
}

// Add appends value.
func (l *BooleanList) Add(value bool) {
	l.bits.SetTo(uint(l.size), value)
	l.size++
}

// Get returns the value at index. It panics when index is out of range.
func (l *BooleanList) Get(index int) bool {
	if index < 0 || index >= l.size {
		panic(ErrIndexOutOfRange)
	}
	return l.bits.Test(uint(index))
}

// Size returns the number of values.
func (l *BooleanList) Size() int { return l.size }

// CountTrue returns how many values are true.
func (l *BooleanList) CountTrue() int { return int(l.bits.Count()) }

// ToSlice returns the values as a []bool.
func (l *BooleanList) ToSlice() []bool {
	out := make([]bool, l.size)
	for i := range out {
		out[i] = l.bits.Test(uint(i))
	}
	return out
}

// Iterator returns a cursor over the values.
func (l *BooleanList) Iterator() Iterator[bool] {
	return SliceIterator(l.ToSlice())
}

// String renders the list as "[true false ...]".
func (l *BooleanList) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < l.size; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatBool(l.bits.Test(uint(i))))
	}
	b.WriteByte(']')
	return b.String()
}
