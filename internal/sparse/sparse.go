// Package sparse provides a sparse set data structure for efficient membership testing.
//
// A sparse set supports O(1) insertion and membership testing while keeping a
// dense list of the inserted elements. The determinizer uses it to track NFA
// states during epsilon-closure and move computations, where the universe of
// possible values (NFA state ids) is known up front.
package sparse

import "slices"

// Set is a set of uint32 values with O(1) insert and contains.
// It maintains both a sparse array (for membership testing) and a dense array
// (for iteration). The sparse array maps values to indices in the dense array.
type Set struct {
	sparse []uint32 // Maps value -> index in dense
	dense  []uint32 // Contains the actual values
	size   uint32   // Current number of elements
}

// NewSet creates a new sparse set with the given capacity.
// The capacity is the maximum value that can be stored (exclusive).
func NewSet(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a value to the set.
// If the value is already present, this is a no-op.
// Panics if value >= capacity.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}

	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains returns true if the value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear removes all elements from the set in O(1) time.
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Size returns the number of elements in the set.
func (s *Set) Size() int {
	return int(s.size)
}

// IsEmpty returns true if the set contains no elements.
func (s *Set) IsEmpty() bool {
	return s.size == 0
}

// Values returns a slice of all values in the set in insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense[:s.size]
}

// Sorted returns a freshly allocated slice of all values in ascending order.
// Sorted output gives set-valued keys a canonical form, which the
// determinizer relies on to identify identical NFA state subsets.
func (s *Set) Sorted() []uint32 {
	out := make([]uint32, s.size)
	copy(out, s.dense[:s.size])
	slices.Sort(out)
	return out
}
