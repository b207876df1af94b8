// Package collection implements a generic ordered sequence: a growable
// container used throughout the ledger object model for "list of X"
// entities. A reference-counted object base was deliberately not
// reproduced here: Go's garbage collector and value/pointer semantics
// already give every consumer of a Sequence shared, automatically-
// reclaimed ownership, so a manual refcount would be inert bookkeeping
// rather than a real resource-management mechanism.
package collection

import "sort"

// Sequence is a generic, growable ordered container of T.
type Sequence[T any] struct {
	items []T
}

// New builds an empty sequence, optionally pre-populated with items.
func New[T any](items ...T) *Sequence[T] {
	s := &Sequence[T]{}
	s.items = append(s.items, items...)
	return s
}

// Push appends v to the end of the sequence.
func (s *Sequence[T]) Push(v T) { s.items = append(s.items, v) }

// Get returns the element at index, and whether index was in range.
func (s *Sequence[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.items) {
		return zero, false
	}
	return s.items[index], true
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int { return len(s.items) }

// RemoveAt deletes the element at index, shifting later elements down. It
// reports false if index was out of range.
func (s *Sequence[T]) RemoveAt(index int) bool {
	if index < 0 || index >= len(s.items) {
		return false
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return true
}

// Sort stably reorders the sequence in place using less.
func (s *Sequence[T]) Sort(less func(a, b T) bool) {
	sort.SliceStable(s.items, func(i, j int) bool { return less(s.items[i], s.items[j]) })
}

// Filter returns a new sequence holding the elements for which keep
// returns true, preserving order.
func (s *Sequence[T]) Filter(keep func(v T) bool) *Sequence[T] {
	out := &Sequence[T]{}
	for _, v := range s.items {
		if keep(v) {
			out.items = append(out.items, v)
		}
	}
	return out
}

// Slice returns a new sequence holding items[start:end], per Go slicing
// semantics (start inclusive, end exclusive).
func (s *Sequence[T]) Slice(start, end int) *Sequence[T] {
	out := &Sequence[T]{}
	out.items = append(out.items, s.items[start:end]...)
	return out
}

// Concat returns a new sequence holding s's elements followed by other's.
func (s *Sequence[T]) Concat(other *Sequence[T]) *Sequence[T] {
	out := &Sequence[T]{}
	out.items = append(out.items, s.items...)
	out.items = append(out.items, other.items...)
	return out
}

// Clone returns a new sequence with an independent backing array holding
// the same elements in the same order.
func (s *Sequence[T]) Clone() *Sequence[T] {
	out := &Sequence[T]{}
	out.items = append(out.items, s.items...)
	return out
}

// ToSlice returns the sequence's elements as a plain slice; mutating the
// result does not affect the sequence.
func (s *Sequence[T]) ToSlice() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
