package dynarray

import (
	"iter"

	"github.com/hupe1980/dynarray/internal/index"
)

// Enumerator walks the live elements of an Array in row-major order.
//
// It is fail-fast: once the array is mutated, the next call to Next or Reset
// returns ErrModified and the enumerator stays broken. Current keeps returning
// the value fetched by the last successful Next, even after a mutation.
//
//	e := a.Enumerator()
//	for {
//	    ok, err := e.Next()
//	    if err != nil || !ok {
//	        break
//	    }
//	    fmt.Println(e.Indexes(), e.Current())
//	}
type Enumerator[T any] struct {
	arr     *Array[T]
	rng     *index.Range
	version uint64
	valid   bool
	current T
}

func newEnumerator[T any](a *Array[T]) *Enumerator[T] {
	return &Enumerator[T]{
		arr:     a,
		rng:     index.Over(a.Counts()),
		version: a.version,
		valid:   true,
	}
}

// Next advances to the next element. It returns false once all elements were visited.
func (e *Enumerator[T]) Next() (bool, error) {
	if err := e.check(); err != nil {
		return false, err
	}
	if !e.rng.Next() {
		return false, nil
	}
	e.current = e.arr.buf[index.Offset(e.rng.Current(), e.arr.strides)]
	return true, nil
}

// Reset rewinds the enumerator to before the first element.
func (e *Enumerator[T]) Reset() error {
	if err := e.check(); err != nil {
		return err
	}
	e.rng.Reset()
	return nil
}

// Current returns the element fetched by the last successful Next.
func (e *Enumerator[T]) Current() T {
	return e.current
}

// Indexes returns a copy of the coordinates of the current element.
func (e *Enumerator[T]) Indexes() []int {
	return index.Clone(e.rng.Current())
}

func (e *Enumerator[T]) check() error {
	if e.valid && e.version == e.arr.version {
		return nil
	}
	e.valid = false
	return ErrModified
}

// All returns an iterator over coordinates and live elements in row-major order.
// The coordinate slice is a fresh copy per element.
//
// Mutating the array while ranging over All panics with ErrModified.
func (a *Array[T]) All() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		e := a.Enumerator()
		for {
			ok, err := e.Next()
			if err != nil {
				panic(err)
			}
			if !ok || !yield(e.Indexes(), e.Current()) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in row-major order.
//
// Mutating the array while ranging over Values panics with ErrModified.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		e := a.Enumerator()
		for {
			ok, err := e.Next()
			if err != nil {
				panic(err)
			}
			if !ok || !yield(e.Current()) {
				return
			}
		}
	}
}
