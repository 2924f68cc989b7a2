package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Shape returns a random shape of the given rank with every axis in [1, maxLen].
func (r *RNG) Shape(rank, maxLen int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	shape := make([]int, rank)
	for i := range shape {
		shape[i] = 1 + r.rand.Intn(maxLen)
	}
	return shape
}

// Coords returns a random coordinate inside shape. Every axis must be positive.
func (r *RNG) Coords(shape []int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := make([]int, len(shape))
	for i, n := range shape {
		idx[i] = r.rand.Intn(n)
	}
	return idx
}

// Ints returns n pseudo-random values in [0, maxVal).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(n, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(maxVal)
	}
	return out
}

// Perm returns a pseudo-random permutation of [0, n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}
