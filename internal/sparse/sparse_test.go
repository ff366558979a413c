package sparse

import (
	"slices"
	"testing"
)

// TestInsertContains tests basic set operations
func TestInsertContains(t *testing.T) {
	s := NewSet(10)

	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}

	s.Insert(3)
	s.Insert(7)
	s.Insert(3) // duplicate is a no-op

	if s.Size() != 2 {
		t.Errorf("Size() = %d, want 2", s.Size())
	}
	for _, v := range []uint32{3, 7} {
		if !s.Contains(v) {
			t.Errorf("Contains(%d) = false, want true", v)
		}
	}
	for _, v := range []uint32{0, 5, 9} {
		if s.Contains(v) {
			t.Errorf("Contains(%d) = true, want false", v)
		}
	}
}

// TestContainsOutOfRange tests that out-of-capacity values are simply absent
func TestContainsOutOfRange(t *testing.T) {
	s := NewSet(4)
	if s.Contains(100) {
		t.Error("Contains(100) = true on a capacity-4 set")
	}
}

// TestClear tests O(1) reset and reuse
func TestClear(t *testing.T) {
	s := NewSet(8)
	s.Insert(1)
	s.Insert(2)
	s.Clear()

	if !s.IsEmpty() || s.Contains(1) || s.Contains(2) {
		t.Error("Clear() did not empty the set")
	}

	// Stale sparse entries must not produce false positives after reuse.
	s.Insert(5)
	if s.Contains(1) {
		t.Error("Contains(1) = true after Clear and unrelated Insert")
	}
}

// TestValuesAndSorted tests iteration order guarantees
func TestValuesAndSorted(t *testing.T) {
	s := NewSet(16)
	for _, v := range []uint32{9, 2, 11, 5} {
		s.Insert(v)
	}

	if got := s.Values(); !slices.Equal(got, []uint32{9, 2, 11, 5}) {
		t.Errorf("Values() = %v, want insertion order", got)
	}
	if got := s.Sorted(); !slices.Equal(got, []uint32{2, 5, 9, 11}) {
		t.Errorf("Sorted() = %v, want ascending order", got)
	}

	// Sorted must not disturb the underlying dense array.
	if got := s.Values(); !slices.Equal(got, []uint32{9, 2, 11, 5}) {
		t.Errorf("Values() after Sorted() = %v, want insertion order", got)
	}
}
