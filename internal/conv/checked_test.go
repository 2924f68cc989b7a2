package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddInt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := AddInt(2, 3)
		assert.NoError(t, err)
		assert.Equal(t, 5, got)
	})

	t.Run("valid negative", func(t *testing.T) {
		got, err := AddInt(2, -3)
		assert.NoError(t, err)
		assert.Equal(t, -1, got)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := AddInt(math.MaxInt, 1)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("underflow", func(t *testing.T) {
		_, err := AddInt(math.MinInt, -1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestMulInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := MulInt(0, math.MaxInt)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := MulInt(12, 11)
		assert.NoError(t, err)
		assert.Equal(t, 132, got)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := MulInt(math.MaxInt/2+1, 2)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := MulInt(-1, 2)
		assert.Error(t, err)
	})
}

func TestProduct(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got, err := Product(nil)
		assert.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("valid", func(t *testing.T) {
		got, err := Product([]int{2, 3, 4})
		assert.NoError(t, err)
		assert.Equal(t, 24, got)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := Product([]int{math.MaxInt32, math.MaxInt32, math.MaxInt32})
		assert.ErrorIs(t, err, ErrOverflow)
	})
}
