package fn_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-iterate/fn"
)

func TestBind(t *testing.T) {
	above := fn.Bind(func(n, limit int) bool { return n > limit }, 3)
	assert.True(t, above(4))
	assert.False(t, above(3))
	assert.True(t, fn.Not(above)(3))
}

func TestBindProcedure(t *testing.T) {
	var got []string
	record := fn.BindProcedure(func(s, suffix string) { got = append(got, s+suffix) }, "!")
	record("a")
	record("b")
	assert.Equal(t, []string{"a!", "b!"}, got)
}

func TestComposition(t *testing.T) {
	double := func(n int) int { return n * 2 }

	assert.Equal(t, "8", fn.Then(double, strconv.Itoa)(4))
	assert.True(t, fn.Attribute(double, func(n int) bool { return n == 6 })(3))

	var seen []int
	fn.Through(func(n int) { seen = append(seen, n) }, double)(5)
	assert.Equal(t, []int{10}, seen)
}

func TestSuppliers(t *testing.T) {
	assert.Equal(t, 7, fn.Identity[int]()(7))
	assert.Equal(t, "x", fn.Constant("x")())
	assert.Equal(t, "x", fn.Always[int]("x")(42))
	assert.Equal(t, 0.0, fn.Zero[float64]()())
}
