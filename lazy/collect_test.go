package lazy_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/hasbyte1/go-iterate/collections"
	"github.com/hasbyte1/go-iterate/lazy"
	"github.com/hasbyte1/go-iterate/listiterate"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// counting wraps function and reports how often it ran.
func counting[T, V any](function func(T) V) (func(T) V, *int) {
	calls := 0
	return func(each T) V {
		calls++
		return function(each)
	}, &calls
}

// cursorSource is an Iterable without positional reads that counts how
// many cursors were opened.
type cursorSource struct {
	items  []int
	passes int
}

func (s *cursorSource) Size() int { return len(s.items) }

func (s *cursorSource) Iterator() collections.Iterator[int] {
	s.passes++
	return collections.SliceIterator(s.items)
}

func double(n int) int { return n * 2 }

func TestAnySatisfyTransformsOnlyWhatItReads(t *testing.T) {
	transform, calls := counting(double)
	view := lazy.Collect[int](collections.New(1, 2, 3), transform)

	assert.True(t, view.AnySatisfy(func(v int) bool { return v == 4 }))
	assert.Equal(t, 2, *calls)
}

func TestAllAndNoneSatisfy(t *testing.T) {
	view := lazy.Collect[int](collections.New(1, 2, 3), double)
	assert.True(t, view.AllSatisfy(func(v int) bool { return v%2 == 0 }))
	assert.True(t, view.NoneSatisfy(func(v int) bool { return v == 3 }))
	assert.False(t, view.NoneSatisfy(func(v int) bool { return v == 6 }))

	gt := func(v, p int) bool { return v > p }
	assert.True(t, lazy.AnySatisfyWith(view, gt, 5))
	assert.False(t, lazy.AllSatisfyWith(view, gt, 2))
	assert.True(t, lazy.NoneSatisfyWith(view, gt, 6))
}

func TestDetectTestsTransformedValue(t *testing.T) {
	transform, calls := counting(double)
	view := lazy.Collect[int](collections.New(1, 2, 3, 4), transform)

	got, ok := view.Detect(func(v int) bool { return v > 3 })
	require.True(t, ok)
	assert.Equal(t, 4, got, "predicate sees 2*2, not the raw 2")
	assert.Equal(t, 2, *calls)

	_, ok = view.Detect(func(v int) bool { return v > 100 })
	assert.False(t, ok)

	got, ok = lazy.DetectWith(view, func(v, p int) bool { return v == p }, 6)
	require.True(t, ok)
	assert.Equal(t, 6, got)
}

func TestSizeDelegatesToSource(t *testing.T) {
	transform, calls := counting(double)
	view := lazy.Collect[int](collections.New(1, 2, 3), transform)
	assert.Equal(t, 3, view.Size())
	assert.False(t, view.IsEmpty())
	assert.True(t, view.NotEmpty())
	assert.Zero(t, *calls)

	empty := lazy.Collect[int](collections.Empty[int](), double)
	assert.True(t, empty.IsEmpty())
}

func TestForEach(t *testing.T) {
	view := lazy.Collect[int](collections.New(1, 2, 3), strconv.Itoa)

	var seen []string
	view.ForEach(func(s string) { seen = append(seen, s) })
	assert.Equal(t, []string{"1", "2", "3"}, seen)

	var indexed []string
	view.ForEachWithIndex(func(s string, i int) { indexed = append(indexed, s+"@"+strconv.Itoa(i)) })
	assert.Equal(t, []string{"1@0", "2@1", "3@2"}, indexed)

	var prefixed []string
	lazy.ForEachWith(view, func(s, prefix string) { prefixed = append(prefixed, prefix+s) }, "#")
	assert.Equal(t, []string{"#1", "#2", "#3"}, prefixed)
}

func TestInjectInto(t *testing.T) {
	view := lazy.Collect[int](collections.New(1, 2, 3), double)

	assert.Equal(t, "246", lazy.InjectInto("", view, func(acc string, v int) string { return acc + strconv.Itoa(v) }))
	assert.Equal(t, int32(12), view.InjectIntoInt(0, func(acc int32, v int) int32 { return acc + int32(v) }))
	assert.Equal(t, int64(13), view.InjectIntoLong(1, func(acc int64, v int) int64 { return acc + int64(v) }))
	assert.Equal(t, float32(12), view.InjectIntoFloat(0, func(acc float32, v int) float32 { return acc + float32(v) }))
	assert.Equal(t, 48.0, view.InjectIntoDouble(1, func(acc float64, v int) float64 { return acc * float64(v) }))
}

func TestToSlice(t *testing.T) {
	source := collections.New(1, 2, 3)
	view := lazy.Collect[int](source, double)
	assert.Equal(t, []int{2, 4, 6}, view.ToSlice())
	assert.Equal(t, []int{1, 2, 3}, source.All(), "source is never written")

	labels := lazy.Collect[int](source, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, labels.ToSlice())
	assert.Equal(t, []string{"1", "2", "3"}, labels.ToCollection().All())
}

func TestIterator(t *testing.T) {
	view := lazy.Collect[int](collections.New(5, 6), double)
	it := view.Iterator()

	v, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	v, ok = it.Next()
	assert.True(t, ok)
	assert.Equal(t, 12, v)
	_, ok = it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestCollectThenComposesOntoRootSource(t *testing.T) {
	source := &cursorSource{items: []int{1, 2, 3}}
	first, firstCalls := counting(double)
	second, secondCalls := counting(func(v int) int { return v + 1 })
	third, thirdCalls := counting(strconv.Itoa)

	chain := lazy.CollectThen(lazy.CollectThen(lazy.Collect[int](source, first), second), third)

	assert.Equal(t, []string{"3", "5", "7"}, chain.ToSlice())
	assert.Equal(t, 1, source.passes, "one traversal of the root source")
	assert.Equal(t, 3, *firstCalls)
	assert.Equal(t, 3, *secondCalls)
	assert.Equal(t, 3, *thirdCalls)

	assert.True(t, chain.AnySatisfy(func(s string) bool { return s == "3" }))
	assert.Equal(t, 2, source.passes)
	assert.Equal(t, 4, *firstCalls, "stopped at the first element")
}

func TestCollectOverViewStacksLayers(t *testing.T) {
	source := &cursorSource{items: []int{1, 2, 3}}

	stacked := lazy.Collect[int](lazy.Collect[int](source, double), strconv.Itoa)
	composed := lazy.CollectThen(lazy.Collect[int](source, double), strconv.Itoa)

	assert.Equal(t, composed.ToSlice(), stacked.ToSlice())
	assert.Equal(t, 2, source.passes)

	// A stacked view reads its inner view through the cursor even when the
	// root source supports positional reads.
	indexed := collections.New(1, 2, 3)
	stackedOnList := lazy.Collect[int](lazy.Collect[int](indexed, double), strconv.Itoa)
	_, isRandomAccess := any(lazy.Collect[int](indexed, double)).(collections.RandomAccess[int])
	assert.False(t, isRandomAccess)
	assert.Equal(t, []string{"2", "4", "6"}, stackedOnList.ToSlice())
}

func TestReentrant(t *testing.T) {
	view := lazy.Collect[int](collections.New(3, 1, 2), double)
	assert.Equal(t, view.ToSlice(), view.ToSlice())
	a, _ := view.Detect(func(v int) bool { return v < 4 })
	b, _ := view.Detect(func(v int) bool { return v < 4 })
	assert.Equal(t, a, b)
}

func TestAsRandomAccess(t *testing.T) {
	view := lazy.Collect[int](collections.New(1, 2, 3, 4), double)
	ra, ok := view.AsRandomAccess()
	require.True(t, ok)
	assert.Equal(t, 6, ra.Get(2))

	large := listiterate.Select(ra, func(v int) bool { return v > 4 })
	assert.Equal(t, []int{6, 8}, large.All())

	_, ok = lazy.Collect[int](&cursorSource{items: []int{1}}, double).AsRandomAccess()
	assert.False(t, ok)
}
