// Package heap provides a min-heap backed multiset of ordered values.
package heap

import (
	"cmp"
	stdheap "container/heap"
	"errors"
	"slices"
)

var ErrEmptyCollection = errors.New("collection is empty")

// values implements container/heap.Interface as a min-heap.
type values[T cmp.Ordered] []T

func (h values[T]) Len() int           { return len(h) }
func (h values[T]) Less(i, j int) bool { return h[i] < h[j] }
func (h values[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *values[T]) Push(x any) {
	*h = append(*h, x.(T))
}

func (h *values[T]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// SortedMultiset holds values with duplicates and hands them back smallest
// first. It is not safe for concurrent use.
type SortedMultiset[T cmp.Ordered] struct {
	h values[T]
}

// New creates an empty multiset.
func New[T cmp.Ordered]() *SortedMultiset[T] {
	return &SortedMultiset[T]{}
}

// Insert adds one occurrence of value.
func (s *SortedMultiset[T]) Insert(value T) {
	stdheap.Push(&s.h, value)
}

// Len returns the number of values held, counting duplicates.
func (s *SortedMultiset[T]) Len() int {
	return s.h.Len()
}

// Min returns the smallest value without removing it.
func (s *SortedMultiset[T]) Min() (T, error) {
	if s.h.Len() == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return s.h[0], nil
}

// RemoveMin removes and returns the smallest value.
func (s *SortedMultiset[T]) RemoveMin() (T, error) {
	if s.h.Len() == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return stdheap.Pop(&s.h).(T), nil
}

// Snapshot returns every value in ascending order, duplicates included.
// The multiset is left untouched; the result is a fresh copy.
func (s *SortedMultiset[T]) Snapshot() []T {
	out := make([]T, len(s.h))
	copy(out, s.h)
	slices.Sort(out)
	return out
}
