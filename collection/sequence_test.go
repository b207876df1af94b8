package collection

import "testing"

func TestSequencePushGetLen(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	if s.Len() != 3 {
		t.Fatalf("got len %d, want 3", s.Len())
	}
	v, ok := s.Get(1)
	if !ok || v != 2 {
		t.Fatalf("got %v, %v", v, ok)
	}
	if _, ok := s.Get(10); ok {
		t.Fatal("expected out-of-range Get to report false")
	}
}

func TestSequenceRemoveAt(t *testing.T) {
	s := New(1, 2, 3)
	if !s.RemoveAt(1) {
		t.Fatal("expected RemoveAt to succeed")
	}
	if s.ToSlice()[0] != 1 || s.ToSlice()[1] != 3 {
		t.Fatalf("got %v", s.ToSlice())
	}
	if s.RemoveAt(5) {
		t.Fatal("expected out-of-range RemoveAt to report false")
	}
}

func TestSequenceSort(t *testing.T) {
	s := New(3, 1, 2)
	s.Sort(func(a, b int) bool { return a < b })
	got := s.ToSlice()
	if got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestSequenceFilter(t *testing.T) {
	s := New(1, 2, 3, 4, 5)
	evens := s.Filter(func(v int) bool { return v%2 == 0 })
	if evens.Len() != 2 {
		t.Fatalf("got %v", evens.ToSlice())
	}
	if s.Len() != 5 {
		t.Fatal("Filter should not mutate the original sequence")
	}
}

func TestSequenceSliceConcatClone(t *testing.T) {
	s := New(1, 2, 3, 4)
	sub := s.Slice(1, 3)
	if sub.ToSlice()[0] != 2 || sub.ToSlice()[1] != 3 {
		t.Fatalf("got %v", sub.ToSlice())
	}

	other := New(5, 6)
	combined := s.Concat(other)
	if combined.Len() != 6 {
		t.Fatalf("got len %d", combined.Len())
	}

	clone := s.Clone()
	clone.Push(99)
	if s.Len() != 4 {
		t.Fatal("Clone should be independent of the original")
	}
}
