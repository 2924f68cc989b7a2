package index

import "fmt"

// Range walks the coordinates of the half-open box [begin, end) in row-major order,
// or backward from end-1 when reverse is set.
//
// The walk is lazy: the position sits one step before the first cell until the first
// call to Next. Once exhausted, Next keeps returning false until Reset.
type Range struct {
	begin   []int
	end     []int
	first   []int // first cell visited
	cur     []int
	reverse bool
	empty   bool
	done    bool
}

// NewRange creates a Range over [begin, end).
func NewRange(begin, end []int, reverse bool) (*Range, error) {
	if len(begin) != len(end) {
		return nil, fmt.Errorf("index: begin and end must have the same length (%d != %d)", len(begin), len(end))
	}

	r := &Range{
		begin:   Clone(begin),
		end:     Clone(end),
		reverse: reverse,
		empty:   len(begin) == 0 || !StrictlyLess(begin, end),
	}
	if reverse {
		r.first = AddScalar(r.end, -1)
	} else {
		r.first = Clone(r.begin)
	}
	r.cur = make([]int, len(begin))
	r.Reset()

	return r, nil
}

// Over returns a forward Range covering [0, shape).
func Over(shape []int) *Range {
	r, _ := NewRange(Zero(len(shape)), shape, false)
	return r
}

// Next moves to the next coordinate. It returns false when the range is exhausted.
func (r *Range) Next() bool {
	if r.done {
		return false
	}

	var ok bool
	if r.reverse {
		ok = Decrement(r.cur, r.begin, r.first)
	} else {
		ok = Increment(r.cur, r.end, r.first)
	}
	if !ok {
		r.done = true
	}
	return ok
}

// Current returns the live coordinate. Callers must not modify it and must copy it
// if it has to outlive the next call to Next.
func (r *Range) Current() []int {
	return r.cur
}

// Reset rewinds the range to its before-first position.
func (r *Range) Reset() {
	r.done = r.empty
	if r.empty {
		return
	}

	copy(r.cur, r.first)
	if r.reverse {
		r.cur[len(r.cur)-1]++
	} else {
		r.cur[len(r.cur)-1]--
	}
}

// Reverse reports whether the range walks backward.
func (r *Range) Reverse() bool {
	return r.reverse
}
