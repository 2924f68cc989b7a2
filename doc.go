// Package dynarray provides a generic, resizable, multidimensional array.
//
// An Array behaves like a dense rectangular buffer whose extent along every
// axis grows or shrinks independently at run time. Dense blocks of the same
// rank (hyperslabs) can be inserted at any offset along a single axis, shifting
// existing data out of the way.
//
// # Quick Start
//
//	a, _ := dynarray.New[string](2)
//	_ = a.Set("x", 3, 1)              // grows counts to (4, 2)
//	v, _ := a.Get(3, 1)               // "x"
//	_ = a.Resize(2, 2)                // drops rows 2..3
//
// # Hyperslab Insertion
//
//	b, _ := dynarray.New[int](2)
//	_ = b.Set(9, 2, 1)                // counts (3, 2)
//	block, _ := dynarray.FromSlice2D([][]int{{1, 2}, {3, 4}})
//	_ = b.Insert(block, 0, 1, 0)      // rows >= 1 move down by 2
//
// # Counts and Capacities
//
// Each axis has a count (logical extent) and a capacity (allocated extent).
// Capacities double per axis on demand and never shrink implicitly. A write
// that needs a reallocation costs O(total capacity); callers should expect such
// spikes while the amortized cost stays constant.
//
// # Iteration
//
// Enumerator, All and Values walk the live elements in row-major order (last
// axis fastest). They are fail-fast: mutating the array invalidates them.
//
//	for idx, v := range a.All() {
//	    fmt.Println(idx, v)
//	}
//
// # Concurrency
//
// An Array is single-writer/single-reader and performs no locking. The
// enumerator version check turns mutation during iteration into an error; it
// does not make concurrent access from several goroutines safe.
package dynarray
