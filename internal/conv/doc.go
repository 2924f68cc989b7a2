// Package conv provides overflow-checked integer arithmetic for array extents.
//
// Buffer sizes are products of per-axis capacities; a handful of large axes is
// enough to overflow int. These helpers report the overflow instead of wrapping
// so that allocation can fail cleanly before any state is mutated.
//
// For arithmetic that is provably bounded (loop indices, offsets into an already
// allocated buffer), use plain operators instead.
package conv
