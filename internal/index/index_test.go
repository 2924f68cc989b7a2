package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{4, 5, 6}

	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, []int{5, 7, 9}, Add(a, b))
		assert.Equal(t, []int{1, 2, 3}, a, "inputs must not be mutated")
	})

	t.Run("AddScalar", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2}, AddScalar(a, -1))
	})

	t.Run("Sub", func(t *testing.T) {
		assert.Equal(t, []int{3, 3, 3}, Sub(b, a))
	})

	t.Run("Scale", func(t *testing.T) {
		assert.Equal(t, []int{2, 4, 6}, Scale(a, 2))
	})

	t.Run("ZeroAndClone", func(t *testing.T) {
		assert.Equal(t, []int{0, 0}, Zero(2))
		c := Clone(a)
		c[0] = 42
		assert.Equal(t, 1, a[0])
	})

	t.Run("LengthMismatchPanics", func(t *testing.T) {
		assert.Panics(t, func() { Add([]int{1}, []int{1, 2}) })
		assert.Panics(t, func() { Sub([]int{1}, []int{1, 2}) })
	})
}

func TestComparison(t *testing.T) {
	assert.True(t, Equal([]int{1, 2}, []int{1, 2}))
	assert.False(t, Equal([]int{1, 2}, []int{1, 3}))
	assert.False(t, Equal([]int{1}, []int{1, 3}))

	assert.True(t, StrictlyLess([]int{0, 0}, []int{1, 1}))
	assert.False(t, StrictlyLess([]int{0, 1}, []int{1, 1}))
	assert.False(t, StrictlyLess([]int{2, 0}, []int{1, 1}))
}

func TestProjectAndClamp(t *testing.T) {
	assert.Equal(t, []int{0, 7, 0}, ProjectOnAxis([]int{3, 7, 9}, 1))

	dest := []int{5, 5, 5}
	got := ClampOnAxis(dest, []int{1, 9, 2}, 0)
	assert.Equal(t, []int{1, 5, 5}, got)
	assert.Equal(t, []int{1, 5, 5}, dest, "clamp is in place")

	ClampOnAxis(dest, []int{1, 9, 2}, 1)
	assert.Equal(t, []int{1, 5, 5}, dest, "larger source value keeps dest")

	ClampOnAxis(dest, []int{0, 0, 0}, -1)
	assert.Equal(t, []int{1, 5, 5}, dest, "negative axis is a no-op")
}

func TestIncrement(t *testing.T) {
	cur := []int{0, 1}
	upper := []int{2, 2}
	wrap := []int{0, 0}

	assert.True(t, Increment(cur, upper, wrap))
	assert.Equal(t, []int{1, 0}, cur)

	assert.True(t, Increment(cur, upper, wrap))
	assert.Equal(t, []int{1, 1}, cur)

	assert.False(t, Increment(cur, upper, wrap))
	assert.Equal(t, []int{0, 0}, cur)
}

func TestDecrement(t *testing.T) {
	cur := []int{1, 0}
	lower := []int{0, 0}
	wrap := []int{1, 1}

	assert.True(t, Decrement(cur, lower, wrap))
	assert.Equal(t, []int{0, 1}, cur)

	assert.True(t, Decrement(cur, lower, wrap))
	assert.Equal(t, []int{0, 0}, cur)

	assert.False(t, Decrement(cur, lower, wrap))
	assert.Equal(t, []int{1, 1}, cur)
}

func TestLayout(t *testing.T) {
	shape := []int{3, 4, 5}
	strides := Strides(shape)

	assert.Equal(t, []int{20, 5, 1}, strides)
	assert.Equal(t, 60, Product(shape))
	assert.Equal(t, 1, Product(nil))
	assert.Equal(t, 2*20+3*5+4, Offset([]int{2, 3, 4}, strides))
}
