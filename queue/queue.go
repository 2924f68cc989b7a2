// Package queue provides a generic binary-heap priority queue and heap sort.
package queue

import "cmp"

// PriorityQueue is a binary heap ordered by a comparison function.
// The element for which cmp reports the smallest value sits on top.
type PriorityQueue[T any] struct {
	cmp   func(a, b T) int
	items []T
}

// NewFunc initializes an empty queue ordered by cmp.
func NewFunc[T any](cmp func(a, b T) int) *PriorityQueue[T] {
	return &PriorityQueue[T]{cmp: cmp}
}

// NewMin initializes an empty queue that yields the smallest element first.
func NewMin[T cmp.Ordered](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		cmp:   cmp.Compare[T],
		items: make([]T, 0, capacity),
	}
}

// NewMax initializes an empty queue that yields the largest element first.
func NewMax[T cmp.Ordered](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		cmp:   func(a, b T) int { return cmp.Compare(b, a) },
		items: make([]T, 0, capacity),
	}
}

// Heapify builds a queue from items in O(n). The slice is taken over, not copied.
func Heapify[T any](items []T, cmp func(a, b T) int) *PriorityQueue[T] {
	pq := &PriorityQueue[T]{cmp: cmp, items: items}
	for i := len(items)/2 - 1; i >= 0; i-- {
		pq.siftDown(i, len(items))
	}
	return pq
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue[T]) Len() int { return len(pq.items) }

// Reset removes all elements, keeping the allocated storage.
func (pq *PriorityQueue[T]) Reset() {
	clear(pq.items)
	pq.items = pq.items[:0]
}

// Top returns the top element without removing it.
func (pq *PriorityQueue[T]) Top() (T, bool) {
	if len(pq.items) == 0 {
		var zero T
		return zero, false
	}
	return pq.items[0], true
}

// Push inserts v while maintaining the heap invariant.
func (pq *PriorityQueue[T]) Push(v T) {
	pq.items = append(pq.items, v)
	pq.siftUp(len(pq.items) - 1)
}

// Pop removes and returns the top element while maintaining the heap invariant.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	var zero T
	n := len(pq.items)
	if n == 0 {
		return zero, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items[n-1] = zero
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0, n-1)
	}
	return root, true
}

func (pq *PriorityQueue[T]) less(i, j int) bool {
	return pq.cmp(pq.items[i], pq.items[j]) < 0
}

func (pq *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

// siftDown restores the heap below i, looking only at items[:n].
func (pq *PriorityQueue[T]) siftDown(i, n int) {
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}

// Sort sorts s in ascending order of cmp using heap sort. It is not stable.
func Sort[T any](s []T, cmp func(a, b T) int) {
	// A max-heap moves the largest remaining element to the tail on each pass.
	pq := Heapify(s, func(a, b T) int { return cmp(b, a) })
	for end := len(s) - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		pq.siftDown(0, end)
	}
}
