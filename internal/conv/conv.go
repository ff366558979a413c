// Package conv provides safe integer conversion helpers for the automata
// packages.
//
// Automaton state ids are dense uint32 values derived from slice lengths.
// These helpers bounds-check the narrowing conversion and panic on overflow,
// since overflow indicates a programming error (an automaton grown past
// internal limits rather than bad user input).
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
