package index

import "fmt"

func mustSameLen(a, b []int) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("index: length mismatch %d != %d", len(a), len(b)))
	}
}

// Zero returns a zero vector of the given rank.
func Zero(rank int) []int {
	return make([]int, rank)
}

// Clone returns a copy of a.
func Clone(a []int) []int {
	c := make([]int, len(a))
	copy(c, a)
	return c
}

// Add returns a + b componentwise.
func Add(a, b []int) []int {
	mustSameLen(a, b)
	r := make([]int, len(a))
	for i := range a {
		r[i] = a[i] + b[i]
	}
	return r
}

// AddScalar returns a with s added to every component.
func AddScalar(a []int, s int) []int {
	r := make([]int, len(a))
	for i := range a {
		r[i] = a[i] + s
	}
	return r
}

// Sub returns a - b componentwise.
func Sub(a, b []int) []int {
	mustSameLen(a, b)
	r := make([]int, len(a))
	for i := range a {
		r[i] = a[i] - b[i]
	}
	return r
}

// Scale returns a with every component multiplied by s.
func Scale(a []int, s int) []int {
	r := make([]int, len(a))
	for i := range a {
		r[i] = a[i] * s
	}
	return r
}

// Equal reports whether a and b hold the same components.
func Equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// StrictlyLess reports whether a[i] < b[i] on every axis.
// A region [a, b) is non-empty exactly when StrictlyLess(a, b) holds.
func StrictlyLess(a, b []int) bool {
	mustSameLen(a, b)
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] >= b[i] {
			return false
		}
	}
	return true
}

// ProjectOnAxis returns a zero vector except for axis, which is copied from a.
func ProjectOnAxis(a []int, axis int) []int {
	r := make([]int, len(a))
	r[axis] = a[axis]
	return r
}

// ClampOnAxis sets dest[axis] = min(dest[axis], src[axis]) in place and returns dest.
// A negative axis leaves dest untouched.
func ClampOnAxis(dest, src []int, axis int) []int {
	if axis >= 0 && dest[axis] > src[axis] {
		dest[axis] = src[axis]
	}
	return dest
}

// Increment advances cur by one step in row-major order within upper bounds (exclusive).
// Axes that overflow are reset to wrap and carry into the previous axis.
// It returns false once every axis has rolled over.
func Increment(cur, upper, wrap []int) bool {
	for d := len(cur) - 1; d >= 0; d-- {
		if cur[d] < upper[d]-1 {
			cur[d]++
			return true
		}
		cur[d] = wrap[d]
	}
	return false
}

// Decrement is the reverse of Increment. It steps cur backward while cur[d] > lower[d]
// and resets underflowing axes to wrap.
func Decrement(cur, lower, wrap []int) bool {
	for d := len(cur) - 1; d >= 0; d-- {
		if cur[d] > lower[d] {
			cur[d]--
			return true
		}
		cur[d] = wrap[d]
	}
	return false
}

// Product returns the product of all components. The product of an empty vector is 1.
// It does not check for overflow; see internal/conv for the checked variant.
func Product(a []int) int {
	p := 1
	for _, v := range a {
		p *= v
	}
	return p
}

// Strides returns row-major element strides for shape.
func Strides(shape []int) []int {
	s := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= shape[i]
	}
	return s
}

// Offset converts a coordinate to a flat offset using strides.
func Offset(idx, strides []int) int {
	off := 0
	for i, v := range idx {
		off += v * strides[i]
	}
	return off
}
