package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a checked operation exceeds the int range.
var ErrOverflow = errors.New("integer overflow")

// AddInt returns a + b, or ErrOverflow if the result does not fit in int.
func AddInt(a, b int) (int, error) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

// MulInt returns a * b for non-negative operands, or ErrOverflow if the result
// does not fit in int.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("negative operand: %d * %d", a, b)
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return a * b, nil
}

// Product returns the product of dims, or an error if any dimension is negative
// or the product overflows.
func Product(dims []int) (int, error) {
	p := 1
	for _, d := range dims {
		var err error
		if p, err = MulInt(p, d); err != nil {
			return 0, err
		}
	}
	return p, nil
}
