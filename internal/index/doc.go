// Package index provides coordinate arithmetic for rank-length index vectors.
//
// Index vectors are plain []int slices, one entry per axis. Layout is row-major:
// the last axis varies fastest and is contiguous in a flat buffer.
//
// Contents:
//   - Vector arithmetic (Add, Sub, Scale, ProjectOnAxis, ClampOnAxis, ...)
//   - Mixed-radix Increment/Decrement used to walk rectangular regions
//   - Range, a lazy and restartable walk over a half-open box [begin, end)
//
// Vector+vector functions require operands of equal length and panic otherwise.
// Callers validate user supplied vectors before reaching this package.
package index
