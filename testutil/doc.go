// Package testutil provides testing utilities for dynarray.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source and helpers for
// generating random shapes, coordinates and fill values.
//
//	rng := testutil.NewRNG(seed)
//	shape := rng.Shape(3, 5)     // e.g. [2 5 1]
//	idx := rng.Coords(shape)     // a coordinate inside shape
package testutil
