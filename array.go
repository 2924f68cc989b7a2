package dynarray

import (
	"fmt"
	"time"

	"github.com/hupe1980/dynarray/internal/conv"
	"github.com/hupe1980/dynarray/internal/index"
)

// Array is a dynamic multidimensional array.
//
// It behaves like a dense rectangular buffer whose extent along every axis
// grows or shrinks independently. The logical extent per axis is its count;
// the allocated extent is its capacity. Capacities grow by per-axis doubling
// and never shrink implicitly, so a write that needs a reallocation costs
// O(capacity) while the amortized cost of growth stays O(1) per element.
//
// Cells outside the count box always hold the zero value of T.
//
// An Array is not safe for concurrent use.
type Array[T any] struct {
	counts  []int
	caps    []int
	strides []int
	buf     []T
	version uint64

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty Array of the given rank. All counts start at zero.
func New[T any](rank int, optFns ...Option) (*Array[T], error) {
	if rank < 1 || rank > MaxRank {
		return nil, fmt.Errorf("%w: %d (must be in [1, %d])", ErrInvalidRank, rank, MaxRank)
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if len(opts.capacities) > rank {
		return nil, fmt.Errorf("%w: %d capacities given for rank %d", ErrInvalidArgument, len(opts.capacities), rank)
	}
	if opts.defaultCapacity < 0 {
		return nil, fmt.Errorf("%w: negative default capacity %d", ErrInvalidArgument, opts.defaultCapacity)
	}

	caps := make([]int, rank)
	for i := range caps {
		caps[i] = opts.defaultCapacity
		if i < len(opts.capacities) {
			caps[i] = opts.capacities[i]
		}
		if caps[i] < 0 {
			return nil, fmt.Errorf("%w: negative capacity %d on axis %d", ErrInvalidArgument, caps[i], i)
		}
	}

	total, err := conv.Product(caps)
	if err != nil {
		return nil, fmt.Errorf("%w: capacities %v: %w", ErrCapacityOverflow, caps, err)
	}

	return &Array[T]{
		counts:  index.Zero(rank),
		caps:    caps,
		strides: index.Strides(caps),
		buf:     make([]T, total),
		logger:  opts.logger.WithRank(rank),
		metrics: opts.metricsCollector,
	}, nil
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int { return len(a.counts) }

// Len returns the total number of live elements, the product of all counts.
func (a *Array[T]) Len() int { return index.Product(a.counts) }

// Counts returns a copy of the per-axis counts.
func (a *Array[T]) Counts() []int { return index.Clone(a.counts) }

// Capacities returns a copy of the per-axis capacities.
func (a *Array[T]) Capacities() []int { return index.Clone(a.caps) }

// Count returns the count of the given axis.
func (a *Array[T]) Count(axis int) (int, error) {
	if err := a.checkAxis(axis); err != nil {
		return 0, err
	}
	return a.counts[axis], nil
}

// Capacity returns the capacity of the given axis.
func (a *Array[T]) Capacity(axis int) (int, error) {
	if err := a.checkAxis(axis); err != nil {
		return 0, err
	}
	return a.caps[axis], nil
}

// Get returns the element at idx. Every coordinate must lie within [0, count).
func (a *Array[T]) Get(idx ...int) (T, error) {
	var zero T
	if err := a.checkLength(idx); err != nil {
		return zero, err
	}
	for i, v := range idx {
		if v < 0 || v >= a.counts[i] {
			return zero, fmt.Errorf("%w: %v not within counts %v", ErrIndexOutOfRange, idx, a.counts)
		}
	}
	return a.buf[index.Offset(idx, a.strides)], nil
}

// Set stores v at idx, growing counts (and capacities) as needed so that idx
// becomes a live coordinate.
func (a *Array[T]) Set(v T, idx ...int) error {
	err := a.set(v, idx)
	a.metrics.RecordSet(err)
	return err
}

func (a *Array[T]) set(v T, idx []int) error {
	if err := a.checkLength(idx); err != nil {
		return err
	}
	for _, c := range idx {
		if c < 0 {
			return fmt.Errorf("%w: negative coordinate in %v", ErrIndexOutOfRange, idx)
		}
	}
	if err := a.ensure(idx); err != nil {
		return err
	}
	a.buf[index.Offset(idx, a.strides)] = v
	a.version++
	return nil
}

// ContainsFunc reports whether some live element satisfies f. Complexity is O(n).
func (a *Array[T]) ContainsFunc(f func(T) bool) bool {
	r := index.Over(a.counts)
	for r.Next() {
		if f(a.buf[index.Offset(r.Current(), a.strides)]) {
			return true
		}
	}
	return false
}

// Contains reports whether v is a live element of a. Complexity is O(n).
func Contains[T comparable](a *Array[T], v T) bool {
	return a.ContainsFunc(func(e T) bool { return e == v })
}

// Clear resets every element to the zero value and every count to zero.
// Capacities are kept.
func (a *Array[T]) Clear() {
	clear(a.buf)
	clear(a.counts)
	a.version++
}

// ToArray copies the live elements into a new Dense whose shape equals the counts.
func (a *Array[T]) ToArray() *Dense[T] {
	shape := index.Clone(a.counts)
	d := &Dense[T]{
		shape:   shape,
		strides: index.Strides(shape),
		data:    make([]T, index.Product(shape)),
	}
	r := index.Over(shape)
	for i := 0; r.Next(); i++ {
		d.data[i] = a.buf[index.Offset(r.Current(), a.strides)]
	}
	return d
}

// CopyTo copies every live element of a into dst at offset + position.
// dst grows as needed. Copying an array into itself copies a snapshot.
func (a *Array[T]) CopyTo(dst *Array[T], offset ...int) error {
	if dst == nil {
		return fmt.Errorf("%w: nil destination", ErrInvalidArgument)
	}
	if dst.Rank() != a.Rank() {
		return fmt.Errorf("%w: destination rank %d, source rank %d", ErrRankMismatch, dst.Rank(), a.Rank())
	}
	if err := a.checkLength(offset); err != nil {
		return err
	}
	for _, c := range offset {
		if c < 0 {
			return fmt.Errorf("%w: negative offset %v", ErrIndexOutOfRange, offset)
		}
	}

	src := a
	if dst == a {
		snap, err := New[T](a.Rank(), WithCapacities(a.counts...))
		if err != nil {
			return err
		}
		if err := a.CopyTo(snap, index.Zero(a.Rank())...); err != nil {
			return err
		}
		src = snap
	}

	e := src.Enumerator()
	for {
		ok, err := e.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := dst.Set(e.Current(), index.Add(e.Indexes(), offset)...); err != nil {
			return err
		}
	}
}

// Resize sets the counts to newCounts.
//
// Growing an axis exposes zero-valued cells. Shrinking an axis discards the
// cells beyond the new count; they read as zero if the axis grows again.
// Resizing to the current counts is a no-op and does not invalidate enumerators.
func (a *Array[T]) Resize(newCounts ...int) error {
	start := time.Now()
	old := a.Counts()
	err := a.resize(newCounts)
	a.metrics.RecordResize(time.Since(start), err)
	a.logger.LogResize(old, newCounts, err)
	return err
}

func (a *Array[T]) resize(newCounts []int) error {
	if err := a.checkLength(newCounts); err != nil {
		return err
	}
	for i, n := range newCounts {
		if n < 0 {
			return fmt.Errorf("%w: negative count %d on axis %d", ErrInvalidArgument, n, i)
		}
	}
	if index.Equal(a.counts, newCounts) {
		return nil
	}

	old := index.Clone(a.counts)
	if err := a.ensure(index.AddScalar(newCounts, -1)); err != nil {
		return err
	}

	// Clear box(old) \ box(new), one slab per shrinking axis. bound holds
	// min(old, new) on the axes already swept and old on the others.
	bound := index.Clone(old)
	for d := range newCounts {
		if newCounts[d] < old[d] {
			a.fill(index.ProjectOnAxis(newCounts, d), bound)
		}
		index.ClampOnAxis(bound, newCounts, d)
	}

	copy(a.counts, newCounts)
	a.version++
	return nil
}

// ResizeDim sets the count of a single axis.
func (a *Array[T]) ResizeDim(axis, count int) error {
	if err := a.checkAxis(axis); err != nil {
		return err
	}
	newCounts := a.Counts()
	newCounts[axis] = count
	return a.Resize(newCounts...)
}

// Extend adds delta[i] to the count of every axis i.
func (a *Array[T]) Extend(delta ...int) error {
	if err := a.checkLength(delta); err != nil {
		return err
	}
	newCounts := make([]int, len(delta))
	for i, d := range delta {
		n, err := conv.AddInt(a.counts[i], d)
		if err != nil {
			return fmt.Errorf("%w: axis %d: %w", ErrCapacityOverflow, i, err)
		}
		newCounts[i] = n
	}
	return a.Resize(newCounts...)
}

// ExtendDim adds delta to the count of a single axis.
func (a *Array[T]) ExtendDim(axis, delta int) error {
	if err := a.checkAxis(axis); err != nil {
		return err
	}
	n, err := conv.AddInt(a.counts[axis], delta)
	if err != nil {
		return fmt.Errorf("%w: axis %d: %w", ErrCapacityOverflow, axis, err)
	}
	return a.ResizeDim(axis, n)
}

// Insert inserts the hyperslab src at position at, shifting existing data on
// axis to make room.
//
// src must have the same rank as a and no zero-length axis. Cells at or beyond
// at[axis] within the footprint of src on the other axes move by src.Dim(axis)
// along axis; then src is copied to [at, at+shape). Counts grow to cover both.
func (a *Array[T]) Insert(src *Dense[T], axis int, at ...int) error {
	start := time.Now()
	err := a.insert(src, axis, at)

	var shape []int
	cells := 0
	if src != nil {
		shape, cells = src.shape, src.Len()
	}
	a.metrics.RecordInsert(cells, time.Since(start), err)
	a.logger.LogInsert(axis, at, shape, err)
	return err
}

func (a *Array[T]) insert(src *Dense[T], axis int, at []int) error {
	if err := a.checkLength(at); err != nil {
		return err
	}
	if src == nil {
		return fmt.Errorf("%w: nil hyperslab", ErrInvalidArgument)
	}
	if src.Rank() != a.Rank() {
		return fmt.Errorf("%w: inserted array must have rank %d, got %d", ErrRankMismatch, a.Rank(), src.Rank())
	}
	for d, n := range src.shape {
		if n == 0 {
			return fmt.Errorf("%w: inserted array has zero length on axis %d", ErrInvalidArgument, d)
		}
	}
	if err := a.checkAxis(axis); err != nil {
		return err
	}
	for _, c := range at {
		if c < 0 {
			return fmt.Errorf("%w: negative position %v", ErrIndexOutOfRange, at)
		}
	}

	n := src.shape[axis]
	oldCount := a.counts[axis]

	last := make([]int, len(at))
	for d := range at {
		v, err := conv.AddInt(at[d], src.shape[d]-1)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCapacityOverflow, err)
		}
		last[d] = v
	}
	v, err := conv.AddInt(max(oldCount, at[axis]), n-1)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCapacityOverflow, err)
	}
	last[axis] = v

	if err := a.ensure(last); err != nil {
		return err
	}

	if at[axis] < oldCount {
		end := index.Add(at, src.shape)
		end[axis] = oldCount
		// Reverse row-major order reads every cell before the shift overwrites it.
		r, _ := index.NewRange(at, end, true)
		shift := n * a.strides[axis]
		for r.Next() {
			off := index.Offset(r.Current(), a.strides)
			a.buf[off+shift] = a.buf[off]
		}
	}

	base := index.Offset(at, a.strides)
	r := index.Over(src.shape)
	for i := 0; r.Next(); i++ {
		a.buf[base+index.Offset(r.Current(), a.strides)] = src.data[i]
	}

	a.version++
	return nil
}

// Enumerator returns a fail-fast enumerator over the live elements in row-major order.
func (a *Array[T]) Enumerator() *Enumerator[T] {
	return newEnumerator(a)
}

// String renders the live elements as nested brackets.
func (a *Array[T]) String() string {
	return a.ToArray().String()
}

// ensure grows counts, and capacities if needed, so that idx is a live coordinate.
// Coordinates below the current count leave that axis untouched. Counts are
// published only once the buffer can hold them.
func (a *Array[T]) ensure(idx []int) error {
	newCounts := index.Clone(a.counts)
	newCaps := index.Clone(a.caps)
	grow, changed := false, false

	for d, want := range idx {
		if want < a.counts[d] {
			continue
		}
		n, err := conv.AddInt(want, 1)
		if err != nil {
			return fmt.Errorf("%w: axis %d: %w", ErrCapacityOverflow, d, err)
		}
		changed = true
		newCounts[d] = n
		if n <= a.caps[d] {
			continue
		}
		doubled, err := conv.MulInt(a.caps[d], 2)
		if err != nil {
			doubled = n
		}
		newCaps[d] = max(doubled, n)
		grow = true
	}

	if !changed {
		return nil
	}
	if grow {
		if err := a.realloc(newCaps); err != nil {
			return err
		}
	}

	copy(a.counts, newCounts)
	return nil
}

// realloc moves the whole old buffer, bounded by the old capacities, into a
// freshly allocated buffer of newCaps.
func (a *Array[T]) realloc(newCaps []int) error {
	start := time.Now()

	total, err := conv.Product(newCaps)
	if err != nil {
		return fmt.Errorf("%w: capacities %v: %w", ErrCapacityOverflow, newCaps, err)
	}
	buf := make([]T, total)
	strides := index.Strides(newCaps)

	// Copy last-axis rows; the row walk covers every axis but the last.
	rank := len(a.caps)
	rowLen := a.caps[rank-1]
	rows := index.Clone(a.caps)
	rows[rank-1] = 1
	r := index.Over(rows)
	for r.Next() {
		from := index.Offset(r.Current(), a.strides)
		to := index.Offset(r.Current(), strides)
		copy(buf[to:to+rowLen], a.buf[from:from+rowLen])
	}

	oldCaps, oldCells := a.caps, len(a.buf)
	a.buf = buf
	a.caps = index.Clone(newCaps)
	a.strides = strides

	a.metrics.RecordRealloc(oldCells, total, time.Since(start))
	a.logger.LogRealloc(oldCaps, a.caps, total)
	return nil
}

// fill resets every cell in [begin, end) to the zero value.
func (a *Array[T]) fill(begin, end []int) {
	var zero T
	r, _ := index.NewRange(begin, end, false)
	for r.Next() {
		a.buf[index.Offset(r.Current(), a.strides)] = zero
	}
}

func (a *Array[T]) checkLength(idx []int) error {
	if len(idx) != len(a.counts) {
		return &ErrLengthMismatch{Expected: len(a.counts), Actual: len(idx)}
	}
	return nil
}

func (a *Array[T]) checkAxis(axis int) error {
	if axis < 0 || axis >= len(a.counts) {
		return &ErrAxisOutOfRange{Axis: axis, Rank: len(a.counts)}
	}
	return nil
}
