// Package dfa converts an NFA into a deterministic finite automaton via
// subset construction and provides the matching primitives over it.
//
// Each DFA state stands for the exact set of NFA states reachable under some
// input history; two subsets are the same DFA state iff they contain exactly
// the same NFA state ids. After construction the automaton is made total
// over its alphabet by an explicit non-accepting sink state, and redundant
// dead states are collapsed into that sink. The result is correct and total
// but not guaranteed minimal in state count; see Minimize.
package dfa

import "unicode/utf8"

// StateID uniquely identifies a DFA state.
// States are dense integers starting at 0.
type StateID uint32

// DFA is a deterministic finite automaton over a rune alphabet.
// Construct via Determinize; the zero value is not usable.
type DFA struct {
	// transitions[s][sym] is the single destination state, if defined.
	// After dead-state elimination every (state, symbol) pair is defined.
	transitions []map[rune]StateID

	// accept[s] and start[s] are the per-state end/start flags. Exactly one
	// state has start[s] == true.
	accept []bool
	start  []bool

	// startID is the state with the start flag set.
	startID StateID

	// sink is the canonical dead state appended by dead-state elimination.
	sink StateID

	// symbols is the sorted non-epsilon alphabet inherited from the NFA.
	symbols []rune
}

// StateCount returns the number of states.
func (d *DFA) StateCount() int {
	return len(d.transitions)
}

// Start returns the unique start state.
func (d *DFA) Start() StateID {
	return d.startID
}

// Sink returns the canonical dead state.
func (d *DFA) Sink() StateID {
	return d.sink
}

// Symbols returns the automaton's alphabet in ascending order.
// The returned slice is shared and must not be modified.
func (d *DFA) Symbols() []rune {
	return d.symbols
}

// IsAccept reports whether s is an accepting state.
func (d *DFA) IsAccept(s StateID) bool {
	return d.accept[s]
}

// IsStart reports whether s is the start state.
func (d *DFA) IsStart(s StateID) bool {
	return d.start[s]
}

// Step returns the destination of the transition from s on symbol.
// ok is false only for symbols outside the alphabet.
func (d *DFA) Step(s StateID, symbol rune) (StateID, bool) {
	next, ok := d.transitions[s][symbol]
	return next, ok
}

// Matches reports whether the DFA accepts the whole input. A symbol with no
// transition rejects immediately; otherwise acceptance is decided by the end
// flag of the state reached after the final symbol.
func (d *DFA) Matches(input string) bool {
	s := d.startID
	for _, r := range input {
		next, ok := d.transitions[s][r]
		if !ok {
			return false
		}
		s = next
	}
	return d.accept[s]
}

// LongestMatch returns the byte length of the longest prefix of input that
// the DFA accepts, or -1 if no prefix (including the empty one) is accepted.
// Reaching the sink stops the walk early: no accepting state is reachable
// from it, so longer prefixes cannot match.
func (d *DFA) LongestMatch(input string) int {
	s := d.startID
	best := -1
	if d.accept[s] {
		best = 0
	}

	for i, r := range input {
		next, ok := d.transitions[s][r]
		if !ok || next == d.sink {
			break
		}
		s = next
		if d.accept[s] {
			best = i + utf8.RuneLen(r)
		}
	}
	return best
}
