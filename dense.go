package dynarray

import (
	"fmt"
	"strings"

	"github.com/hupe1980/dynarray/internal/conv"
	"github.com/hupe1980/dynarray/internal/index"
)

// Dense is a fixed-shape, row-major block of elements.
//
// It is the unit of insertion (a hyperslab) and the result of Array.ToArray.
// Accessors panic on malformed coordinates, like slice indexing.
type Dense[T any] struct {
	shape   []int
	strides []int
	data    []T
}

// NewDense allocates a zero-filled Dense of the given shape.
// Zero-length axes are allowed; negative ones are not.
func NewDense[T any](shape ...int) (*Dense[T], error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: shape must have at least one axis", ErrInvalidArgument)
	}
	n, err := conv.Product(shape)
	if err != nil {
		return nil, fmt.Errorf("%w: shape %v: %w", ErrInvalidArgument, shape, err)
	}
	return &Dense[T]{
		shape:   index.Clone(shape),
		strides: index.Strides(shape),
		data:    make([]T, n),
	}, nil
}

// DenseOf wraps data, laid out row-major, as a Dense of the given shape.
// The slice is used directly, not copied.
func DenseOf[T any](data []T, shape ...int) (*Dense[T], error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: shape must have at least one axis", ErrInvalidArgument)
	}
	n, err := conv.Product(shape)
	if err != nil {
		return nil, fmt.Errorf("%w: shape %v: %w", ErrInvalidArgument, shape, err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: shape %v needs %d elements, got %d", ErrInvalidArgument, shape, n, len(data))
	}
	return &Dense[T]{
		shape:   index.Clone(shape),
		strides: index.Strides(shape),
		data:    data,
	}, nil
}

// FromSlice1D copies s into a rank-1 Dense.
func FromSlice1D[T any](s []T) *Dense[T] {
	data := make([]T, len(s))
	copy(data, s)
	return &Dense[T]{shape: []int{len(s)}, strides: []int{1}, data: data}
}

// FromSlice2D copies rows into a rank-2 Dense. All rows must have the same length.
func FromSlice2D[T any](rows [][]T) (*Dense[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	data := make([]T, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: ragged row %d: expected %d columns, got %d", ErrInvalidArgument, i, cols, len(r))
		}
		data = append(data, r...)
	}
	return DenseOf(data, len(rows), cols)
}

// FromSlice3D copies a rectangular [][][]T into a rank-3 Dense.
func FromSlice3D[T any](planes [][][]T) (*Dense[T], error) {
	rows, cols := 0, 0
	if len(planes) > 0 {
		rows = len(planes[0])
		if rows > 0 {
			cols = len(planes[0][0])
		}
	}
	data := make([]T, 0, len(planes)*rows*cols)
	for i, p := range planes {
		if len(p) != rows {
			return nil, fmt.Errorf("%w: ragged plane %d: expected %d rows, got %d", ErrInvalidArgument, i, rows, len(p))
		}
		for j, r := range p {
			if len(r) != cols {
				return nil, fmt.Errorf("%w: ragged row [%d][%d]: expected %d columns, got %d", ErrInvalidArgument, i, j, cols, len(r))
			}
			data = append(data, r...)
		}
	}
	return DenseOf(data, len(planes), rows, cols)
}

// Rank returns the number of axes.
func (d *Dense[T]) Rank() int { return len(d.shape) }

// Shape returns a copy of the per-axis lengths.
func (d *Dense[T]) Shape() []int { return index.Clone(d.shape) }

// Dim returns the length of axis. It panics if axis is out of range.
func (d *Dense[T]) Dim(axis int) int { return d.shape[axis] }

// Len returns the total number of elements.
func (d *Dense[T]) Len() int { return len(d.data) }

// Data returns the row-major backing slice. Writes through it are visible in d.
func (d *Dense[T]) Data() []T { return d.data }

// At returns the element at idx.
func (d *Dense[T]) At(idx ...int) T {
	return d.data[d.offset(idx)]
}

// Set stores v at idx.
func (d *Dense[T]) Set(v T, idx ...int) {
	d.data[d.offset(idx)] = v
}

// Fill sets every element to v and returns d.
func (d *Dense[T]) Fill(v T) *Dense[T] {
	for i := range d.data {
		d.data[i] = v
	}
	return d
}

func (d *Dense[T]) offset(idx []int) int {
	if len(idx) != len(d.shape) {
		panic(&ErrLengthMismatch{Expected: len(d.shape), Actual: len(idx)})
	}
	for i, v := range idx {
		if v < 0 || v >= d.shape[i] {
			panic(fmt.Sprintf("dynarray: index %v out of range for shape %v", idx, d.shape))
		}
	}
	return index.Offset(idx, d.strides)
}

func (d *Dense[T]) checkRank(rank int) error {
	if len(d.shape) != rank {
		return fmt.Errorf("%w: expected rank %d, got %d", ErrRankMismatch, rank, len(d.shape))
	}
	return nil
}

// ToSlice1D returns a copy of a rank-1 Dense as a slice.
func (d *Dense[T]) ToSlice1D() ([]T, error) {
	if err := d.checkRank(1); err != nil {
		return nil, err
	}
	out := make([]T, len(d.data))
	copy(out, d.data)
	return out, nil
}

// ToSlice2D returns a copy of a rank-2 Dense as rows.
func (d *Dense[T]) ToSlice2D() ([][]T, error) {
	if err := d.checkRank(2); err != nil {
		return nil, err
	}
	return split2D(d.data, d.shape[0], d.shape[1]), nil
}

// ToSlice3D returns a copy of a rank-3 Dense as nested slices.
func (d *Dense[T]) ToSlice3D() ([][][]T, error) {
	if err := d.checkRank(3); err != nil {
		return nil, err
	}
	out := make([][][]T, d.shape[0])
	for i := range out {
		out[i] = split2D(d.data[i*d.strides[0]:(i+1)*d.strides[0]], d.shape[1], d.shape[2])
	}
	return out, nil
}

// ToSlice4D returns a copy of a rank-4 Dense as nested slices.
func (d *Dense[T]) ToSlice4D() ([][][][]T, error) {
	if err := d.checkRank(4); err != nil {
		return nil, err
	}
	out := make([][][][]T, d.shape[0])
	for i := range out {
		out[i] = make([][][]T, d.shape[1])
		for j := range out[i] {
			start := i*d.strides[0] + j*d.strides[1]
			out[i][j] = split2D(d.data[start:start+d.strides[1]], d.shape[2], d.shape[3])
		}
	}
	return out, nil
}

func split2D[T any](flat []T, rows, cols int) [][]T {
	out := make([][]T, rows)
	for i := range out {
		out[i] = make([]T, cols)
		copy(out[i], flat[i*cols:(i+1)*cols])
	}
	return out
}

// String renders d as nested brackets, e.g. [[1 2] [3 4]].
func (d *Dense[T]) String() string {
	var sb strings.Builder
	d.format(&sb, 0, 0)
	return sb.String()
}

func (d *Dense[T]) format(sb *strings.Builder, axis, base int) {
	sb.WriteByte('[')
	for i := 0; i < d.shape[axis]; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		off := base + i*d.strides[axis]
		if axis == len(d.shape)-1 {
			fmt.Fprint(sb, d.data[off])
			continue
		}
		d.format(sb, axis+1, off)
	}
	sb.WriteByte(']')
}
