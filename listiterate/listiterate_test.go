package listiterate_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hasbyte1/go-iterate/collections"
	"github.com/hasbyte1/go-iterate/fn"
	"github.com/hasbyte1/go-iterate/listiterate"
	"github.com/hasbyte1/go-iterate/mocks"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *collections.Collection[int] { return collections.New(ns...) }

func isEven(n int) bool { return n%2 == 0 }
func isOdd(n int) bool { return n%2 != 0 }
func greaterThan(n, p int) bool { return n > p }

type person struct {
	Name string
	City string
	Age  int
}

func people() *collections.Collection[person] {
	return collections.New(
		person{Name: "Ada", City: "London", Age: 36},
		person{Name: "Grace", City: "New York", Age: 45},
		person{Name: "Alan", City: "London", Age: 41},
		person{Name: "Edsger", City: "Austin", Age: 72},
	)
}

// failingWriter fails on the n-th write.
type failingWriter struct {
	n      int
	writes int
}

var errWrite = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes >= w.n {
		return 0, errWrite
	}
	return len(p), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

func TestForEach(t *testing.T) {
	var seen []int
	listiterate.ForEach(ints(1, 2, 3), func(n int) { seen = append(seen, n) })
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestForEachWithIndex(t *testing.T) {
	var idx []int
	listiterate.ForEachWithIndex(collections.New("a", "b"), func(_ string, i int) { idx = append(idx, i) })
	assert.Equal(t, []int{0, 1}, idx)
}

func TestForEachWith(t *testing.T) {
	total := 0
	listiterate.ForEachWith(ints(1, 2, 3), func(n, factor int) { total += n * factor }, 10)
	assert.Equal(t, 60, total)
}

func TestForEachInRange(t *testing.T) {
	list := ints(10, 20, 30, 40)

	var forward []int
	require.NoError(t, listiterate.ForEachInRange(list, 1, 3, func(n int) { forward = append(forward, n) }))
	assert.Equal(t, []int{20, 30, 40}, forward)

	var backward []int
	require.NoError(t, listiterate.ForEachWithIndexInRange(list, 2, 0, func(_ int, i int) { backward = append(backward, i) }))
	assert.Equal(t, []int{2, 1, 0}, backward)

	err := listiterate.ForEachInRange(list, 0, 4, func(int) { t.Fatal("must not be called") })
	assert.ErrorIs(t, err, collections.ErrIndexOutOfRange)
}

func TestForEachInBoth(t *testing.T) {
	var pairs []string
	err := listiterate.ForEachInBoth(ints(1, 2), collections.New("a", "b"), func(n int, s string) {
		pairs = append(pairs, strconv.Itoa(n)+s)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1a", "2b"}, pairs)

	err = listiterate.ForEachInBoth(ints(1, 2, 3), collections.New("a"), func(int, string) {
		t.Fatal("must not be called")
	})
	require.ErrorIs(t, err, collections.ErrSizeMismatch)
	assert.Contains(t, err.Error(), "3:1")

	assert.NoError(t, listiterate.ForEachInBoth[int, string](nil, collections.New("a"), nil))
	assert.NoError(t, listiterate.ForEachInBoth[int, string](ints(1), nil, nil))

	var typedNil *collections.Collection[string]
	assert.Panics(t, func() {
		_ = listiterate.ForEachInBoth[int, string](ints(1), typedNil, func(int, string) {})
	})
}

func TestGetFirstAndLast(t *testing.T) {
	first, ok := listiterate.GetFirst(ints(4, 5, 6))
	assert.True(t, ok)
	assert.Equal(t, 4, first)

	last, ok := listiterate.GetLast(ints(4, 5, 6))
	assert.True(t, ok)
	assert.Equal(t, 6, last)

	_, ok = listiterate.GetFirst(ints())
	assert.False(t, ok)
	_, ok = listiterate.GetLast(ints())
	assert.False(t, ok)
}

func TestToArray(t *testing.T) {
	target := make([]int, 5)
	listiterate.ToArray(ints(7, 8, 9), target, 1)
	assert.Equal(t, []int{0, 7, 8, 9, 0}, target)
	assert.Equal(t, []int{7, 8, 9}, listiterate.ToSlice(ints(7, 8, 9)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

func TestSelectAndReject(t *testing.T) {
	list := ints(1, 2, 3, 4, 5)
	assert.Equal(t, []int{2, 4}, listiterate.Select(list, isEven).All())
	assert.Equal(t, []int{1, 3, 5}, listiterate.Reject(list, isEven).All())
	assert.Equal(t, []int{4, 5}, listiterate.SelectWith(list, greaterThan, 3).All())
	assert.Equal(t, []int{1, 2, 3}, listiterate.RejectWith(list, greaterThan, 3).All())
}

func TestSelectIntoAppendsToTarget(t *testing.T) {
	target := ints(100)
	got := listiterate.SelectInto(ints(1, 2, 3, 4), isEven, target)
	assert.Same(t, target, got)
	assert.Equal(t, []int{100, 2, 4}, target.All())

	set := listiterate.RejectInto(ints(1, 1, 2, 3, 3), isEven, collections.NewSet[int]())
	assert.ElementsMatch(t, []int{1, 3}, set.ToSlice())
}

func TestSelectEmptySource(t *testing.T) {
	assert.True(t, listiterate.Select(ints(), isEven).IsEmpty())
	assert.True(t, listiterate.Collect(ints(), strconv.Itoa).IsEmpty())
}

func TestSelectInstancesOf(t *testing.T) {
	mixed := collections.New[any](1, "a", 2.5, "b")
	assert.Equal(t, []string{"a", "b"}, listiterate.SelectInstancesOf[string](mixed).All())
}

func TestCount(t *testing.T) {
	assert.Equal(t, 2, listiterate.Count(ints(1, 2, 3, 4), isEven))
	assert.Equal(t, 1, listiterate.CountWith(ints(1, 2, 3, 4), greaterThan, 3))
}

func TestDistinct(t *testing.T) {
	got := listiterate.Distinct(ints(3, 1, 3, 2, 1))
	assert.Equal(t, []int{3, 1, 2}, got.All())
	assert.Equal(t, got.All(), listiterate.Distinct(got).All(), "distinct is idempotent")
}

func TestRemoveIf(t *testing.T) {
	list := ints(1, 2, 3, 4, 5)
	removed := listiterate.RemoveIf(list, isEven)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []int{1, 3, 5}, list.All())
}

func TestRemoveIfAdjacentMatches(t *testing.T) {
	list := ints(2, 4, 6, 1, 8)
	var gone []int
	removed := listiterate.RemoveIfWithProcedure(list, isEven, func(n int) { gone = append(gone, n) })
	assert.Equal(t, 4, removed)
	assert.Equal(t, []int{1}, list.All())
	assert.Equal(t, []int{2, 4, 6, 8}, gone)

	list = ints(1, 5, 9)
	assert.Equal(t, 2, listiterate.RemoveIfWith(list, greaterThan, 2))
	assert.Equal(t, []int{1}, list.All())
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

func TestCollect(t *testing.T) {
	got := listiterate.Collect(ints(1, 2, 3), strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got.All())

	scaled := listiterate.CollectWith(ints(1, 2), func(n, f int) int { return n * f }, 3)
	assert.Equal(t, []int{3, 6}, scaled.All())

	odds := listiterate.CollectIf(ints(1, 2, 3), isOdd, func(n int) int { return -n })
	assert.Equal(t, []int{-1, -3}, odds.All())
}

func TestCollectPrimitives(t *testing.T) {
	ages := listiterate.CollectInt(people(), func(p person) int32 { return int32(p.Age) })
	assert.Equal(t, []int32{36, 45, 41, 72}, ages.ToSlice())

	doubles := listiterate.CollectDouble(ints(1, 2), func(n int) float64 { return float64(n) / 2 })
	assert.Equal(t, []float64{0.5, 1}, doubles.ToSlice())

	bools := listiterate.CollectBoolean(ints(1, 2, 3), isEven)
	assert.Equal(t, []bool{false, true, false}, bools.ToSlice())
	assert.Equal(t, 1, bools.CountTrue())

	chars := listiterate.CollectChar(collections.New("go", "rust"), func(s string) rune { return rune(s[0]) })
	assert.Equal(t, []rune{'g', 'r'}, chars.ToSlice())

	assert.Equal(t, []int64{1, 2}, listiterate.CollectLong(ints(1, 2), func(n int) int64 { return int64(n) }).ToSlice())
	assert.Equal(t, []int16{1}, listiterate.CollectShort(ints(1), func(n int) int16 { return int16(n) }).ToSlice())
	assert.Equal(t, []int8{1}, listiterate.CollectByte(ints(1), func(n int) int8 { return int8(n) }).ToSlice())
	assert.Equal(t, []float32{1}, listiterate.CollectFloat(ints(1), func(n int) float32 { return float32(n) }).ToSlice())
}

func TestFlatCollect(t *testing.T) {
	got := listiterate.FlatCollect(ints(1, 2, 3), func(n int) collections.Iterable[int] {
		return collections.New(n, n*10)
	})
	assert.Equal(t, []int{1, 10, 2, 20, 3, 30}, got.All())

	nested := listiterate.FlatCollect(collections.New("ab", "c"), func(s string) collections.Iterable[[]string] {
		return collections.New(strings.Split(s, ""))
	})
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, nested.All(), "only one level is flattened")
}

// ─────────────────────────────────────────────────────────────────────────────
// Short-circuit scans
// ─────────────────────────────────────────────────────────────────────────────

func TestAnyAllNone(t *testing.T) {
	list := ints(1, 3, 5)
	assert.True(t, listiterate.AnySatisfy(list, isOdd))
	assert.False(t, listiterate.AnySatisfy(list, isEven))
	assert.True(t, listiterate.AllSatisfy(list, isOdd))
	assert.True(t, listiterate.NoneSatisfy(list, isEven))
	assert.True(t, listiterate.AnySatisfyWith(list, greaterThan, 4))
	assert.False(t, listiterate.AllSatisfyWith(list, greaterThan, 1))
	assert.True(t, listiterate.NoneSatisfyWith(list, greaterThan, 5))
}

func TestAnyAllNoneEmpty(t *testing.T) {
	empty := ints()
	assert.False(t, listiterate.AnySatisfy(empty, isEven))
	assert.True(t, listiterate.AllSatisfy(empty, isEven))
	assert.True(t, listiterate.NoneSatisfy(empty, isEven))
}

func TestDetect(t *testing.T) {
	got, ok := listiterate.Detect(ints(1, 2, 3, 4), isEven)
	assert.True(t, ok)
	assert.Equal(t, 2, got)

	_, ok = listiterate.Detect(ints(1, 3), isEven)
	assert.False(t, ok)

	got, ok = listiterate.DetectWith(ints(1, 5, 9), greaterThan, 4)
	assert.True(t, ok)
	assert.Equal(t, 5, got)

	assert.Equal(t, -1, listiterate.DetectIfNone(ints(1, 3), isEven, fn.Constant(-1)))
	assert.Equal(t, 1, listiterate.DetectIndex(ints(1, 2, 3), isEven))
	assert.Equal(t, -1, listiterate.DetectIndex(ints(1, 3), isEven))
	assert.Equal(t, 2, listiterate.DetectIndexWith(ints(1, 2, 3), greaterThan, 2))
}

func TestDetectStopsAtFirstHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	list := mocks.NewMockRandomAccess[int](ctrl)

	list.EXPECT().Size().Return(6).AnyTimes()
	gomock.InOrder(
		list.EXPECT().Get(0).Return(1),
		list.EXPECT().Get(1).Return(3),
		list.EXPECT().Get(2).Return(4),
	)

	got, ok := listiterate.Detect[int](list, isEven)
	assert.True(t, ok)
	assert.Equal(t, 4, got)
}

func TestDetectPredicateCallCount(t *testing.T) {
	calls := 0
	got, ok := listiterate.Detect(ints(1, 2, 3, 4), func(n int) bool {
		calls++
		return n > 2
	})
	assert.True(t, ok)
	assert.Equal(t, 3, got)
	assert.Equal(t, 3, calls)
}

func TestShortCircuit(t *testing.T) {
	label := listiterate.ShortCircuit(ints(1, 2, 3), isEven, true,
		func(n int) string { return "hit " + strconv.Itoa(n) },
		fn.Constant("miss"))
	assert.Equal(t, "hit 2", label)

	label = listiterate.ShortCircuitWith(ints(1, 2, 3), greaterThan, 5, true,
		func(n int) string { return "hit " + strconv.Itoa(n) },
		fn.Constant("miss"))
	assert.Equal(t, "miss", label)
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

func TestInjectInto(t *testing.T) {
	sum := listiterate.InjectInto(0, ints(1, 2, 3), func(acc, n int) int { return acc + n })
	assert.Equal(t, 6, sum)

	joined := listiterate.InjectInto("", ints(1, 2), func(acc string, n int) string { return acc + strconv.Itoa(n) })
	assert.Equal(t, "12", joined)

	weighted := listiterate.InjectIntoWith(int64(0), ints(1, 2), func(acc int64, n int, w int64) int64 {
		return acc + int64(n)*w
	}, int64(10))
	assert.Equal(t, int64(30), weighted)

	assert.Equal(t, 42, listiterate.InjectInto(42, ints(), func(acc, n int) int { return acc + n }))
}

// ─────────────────────────────────────────────────────────────────────────────
// Partitioning
// ─────────────────────────────────────────────────────────────────────────────

func TestPartitionMatchesSelectReject(t *testing.T) {
	list := ints(5, 2, 8, 1, 4)
	p := listiterate.Partition(list, isEven)
	assert.Equal(t, listiterate.Select(list, isEven).All(), p.Selected().All())
	assert.Equal(t, listiterate.Reject(list, isEven).All(), p.Rejected().All())

	pw := listiterate.PartitionWith(list, greaterThan, 3)
	assert.Equal(t, []int{5, 8, 4}, pw.Selected().All())
	assert.Equal(t, []int{2, 1}, pw.Rejected().All())

	twin := listiterate.SelectAndRejectWith(list, greaterThan, 3)
	assert.Equal(t, pw.Selected().All(), twin.First.All())
	assert.Equal(t, pw.Rejected().All(), twin.Second.All())
}

func TestWhileOperations(t *testing.T) {
	list := ints(2, 4, 5, 6, 7)
	assert.Equal(t, []int{2, 4}, listiterate.TakeWhile(list, isEven).All())
	assert.Equal(t, []int{5, 6, 7}, listiterate.DropWhile(list, isEven).All())

	calls := 0
	p := listiterate.PartitionWhile(list, func(n int) bool { calls++; return isEven(n) })
	assert.Equal(t, []int{2, 4}, p.Selected().All())
	assert.Equal(t, []int{5, 6, 7}, p.Rejected().All())
	assert.Equal(t, 3, calls, "predicate is not tested after the first failure")

	assert.Empty(t, listiterate.DropWhile(ints(2, 4), isEven).All())
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

func TestTakeAndDrop(t *testing.T) {
	list := ints(1, 2, 3, 4, 5)
	for n := 0; n <= 7; n++ {
		taken, err := listiterate.Take(list, n)
		require.NoError(t, err)
		dropped, err := listiterate.Drop(list, n)
		require.NoError(t, err)

		assert.Equal(t, min(n, 5), taken.Size())
		assert.Equal(t, list.All(), append(taken.All(), dropped.All()...), "take(%d)+drop(%d)", n, n)
	}
}

func TestTakeDropNegative(t *testing.T) {
	_, err := listiterate.Take(ints(1), -1)
	require.ErrorIs(t, err, collections.ErrNegativeCount)
	assert.Contains(t, err.Error(), "-1")

	target := ints(9)
	_, err = listiterate.DropInto(ints(1, 2), -3, target)
	require.ErrorIs(t, err, collections.ErrNegativeCount)
	assert.Equal(t, []int{9}, target.All(), "target untouched")
}

func TestDropIntoBulkTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mocks.NewMockBulkAppender[int](ctrl)
	target.EXPECT().AddAll(3, 4).Times(1)

	_, err := listiterate.DropInto[int](ints(1, 2, 3, 4), 2, target)
	require.NoError(t, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

func TestGroupBy(t *testing.T) {
	byCity := listiterate.GroupBy(people(), func(p person) string { return p.City })
	assert.Equal(t, []string{"London", "New York", "Austin"}, byCity.Keys())
	assert.Equal(t, 4, byCity.Size())

	names := listiterate.Collect(byCity.Get("London"), func(p person) string { return p.Name })
	assert.Equal(t, []string{"Ada", "Alan"}, names.All())
}

func TestGroupByEach(t *testing.T) {
	got := listiterate.GroupByEach(ints(6, 4), func(n int) collections.Iterable[int] {
		var divisors []int
		for d := 2; d <= 3; d++ {
			if n%d == 0 {
				divisors = append(divisors, d)
			}
		}
		return collections.From(divisors)
	})
	assert.Equal(t, []int{2, 3}, got.Keys())
	assert.Equal(t, []int{6, 4}, got.Get(2).All())
	assert.Equal(t, []int{6}, got.Get(3).All())
}

func TestGroupByUniqueKey(t *testing.T) {
	byName, err := listiterate.GroupByUniqueKey(people(), func(p person) string { return p.Name })
	require.NoError(t, err)
	assert.Equal(t, 4, byName.Len())

	m, err := listiterate.GroupByUniqueKey(collections.New("a", "b", "a"), strings.ToUpper)
	require.ErrorIs(t, err, collections.ErrDuplicateKey)

	var dup *collections.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "A", dup.Key)
	assert.Equal(t, []string{"A", "B"}, m.Keys(), "map keeps what was inserted before the collision")
}

func TestGroupByUniqueKeyKeepsFirstPair(t *testing.T) {
	pairs := collections.New(collections.PairOf("a", 1), collections.PairOf("a", 2))
	m, err := listiterate.GroupByUniqueKey(pairs, func(p collections.Pair[string, int]) string { return p.First })
	require.ErrorIs(t, err, collections.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "key a already exists")

	first, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, first.Second)
	assert.Equal(t, 1, m.Len())
}

func TestAggregateBy(t *testing.T) {
	totals := listiterate.AggregateBy(people(),
		func(p person) string { return p.City },
		fn.Constant(0),
		func(acc int, p person) int { return acc + p.Age })
	assert.Equal(t, map[string]int{"London": 77, "New York": 45, "Austin": 72}, totals.ToMap())

	factoryCalls := 0
	counts := listiterate.AggregateInPlaceBy(people(),
		func(p person) string { return p.City },
		func() *int { factoryCalls++; return new(int) },
		func(acc *int, _ person) { *acc++ })
	assert.Equal(t, 3, factoryCalls, "zero factory runs once per key")
	london, _ := counts.Get("London")
	assert.Equal(t, 2, *london)
}

// ─────────────────────────────────────────────────────────────────────────────
// Min / Max
// ─────────────────────────────────────────────────────────────────────────────

func TestMinMax(t *testing.T) {
	list := ints(3, 1, 4, 1, 5)
	lo, err := listiterate.MinOrdered(list)
	require.NoError(t, err)
	assert.Equal(t, 1, lo)

	hi, err := listiterate.MaxOrdered(list)
	require.NoError(t, err)
	assert.Equal(t, 5, hi)

	hi, err = listiterate.Max(list, func(a, b int) int { return b - a })
	require.NoError(t, err)
	assert.Equal(t, 1, hi, "reversed comparator")

	_, err = listiterate.Min(ints(), func(a, b int) int { return a - b })
	assert.ErrorIs(t, err, collections.ErrNoSuchElement)
}

func TestMinByMaxByKeepsEarliestTie(t *testing.T) {
	words := collections.New("bb", "aa", "c", "dd")
	shortest, err := listiterate.MinBy(words, func(s string) int { return len(s) })
	require.NoError(t, err)
	assert.Equal(t, "c", shortest)

	longest, err := listiterate.MaxBy(words, func(s string) int { return len(s) })
	require.NoError(t, err)
	assert.Equal(t, "bb", longest)

	_, err = listiterate.MaxBy(collections.Empty[string](), func(s string) int { return len(s) })
	assert.ErrorIs(t, err, collections.ErrNoSuchElement)
}

// ─────────────────────────────────────────────────────────────────────────────
// Zipping
// ─────────────────────────────────────────────────────────────────────────────

func TestZip(t *testing.T) {
	got := listiterate.Zip(ints(1, 2, 3), collections.New("a", "b"))
	assert.Equal(t, []collections.Pair[int, string]{{First: 1, Second: "a"}, {First: 2, Second: "b"}}, got.All())

	got = listiterate.Zip(ints(1), collections.New("a", "b", "c"))
	assert.Equal(t, 1, got.Size())
}

func TestZipWithIndex(t *testing.T) {
	got := listiterate.ZipWithIndex(collections.New("x", "y"))
	assert.Equal(t, []collections.Pair[string, int]{{First: "x", Second: 0}, {First: "y", Second: 1}}, got.All())
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

func TestAppendString(t *testing.T) {
	var b strings.Builder
	require.NoError(t, listiterate.AppendString(ints(1, 2, 3), &b, "[", ", ", "]"))
	assert.Equal(t, "[1, 2, 3]", b.String())
	assert.Equal(t, "1/2", listiterate.MakeString(ints(1, 2), "/"))
	assert.Equal(t, "", listiterate.MakeString(ints(), "/"))
}

func TestAppendStringWriterFailure(t *testing.T) {
	w := &failingWriter{n: 3}
	err := listiterate.AppendString(ints(1, 2, 3), w, "[", ",", "]")
	require.ErrorIs(t, err, errWrite)
	assert.Equal(t, 3, w.writes, "output stops at the failing write")
}
