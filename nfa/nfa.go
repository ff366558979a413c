// Package nfa lowers a normalized parse tree into a nondeterministic finite
// automaton via Thompson's construction.
//
// The automaton is a transition table mapping (state, symbol) to a set of
// destination states, with the empty transition represented by the
// distinguished epsilon symbol. Every fragment the construction produces has
// state 0 as its unique start state and a single accepting end state;
// fragments compose by renumbering one side's states by a fixed offset.
package nfa

import (
	"slices"

	"github.com/coregx/redfa/internal/conv"
	"github.com/coregx/redfa/syntax"
)

// StateID uniquely identifies an NFA state.
// States are dense integers from 0 (the start state) to End (the accept state).
type StateID uint32

// Epsilon is the distinguished no-input symbol. It is the same value the
// syntax package uses for the empty literal, so an ε literal in the tree
// compiles directly to an epsilon transition.
const Epsilon = syntax.Epsilon

// NFA is a complete automaton or an intermediate fragment. The zero value is
// not usable; construct via Compile.
type NFA struct {
	// transitions[s][sym] is the set of states reachable from s on sym.
	transitions []map[rune][]StateID

	// end is the unique accepting state.
	end StateID

	// values is the union of every distinct symbol (including Epsilon) seen
	// across the automaton. Subset construction iterates it as the alphabet.
	values map[rune]struct{}
}

// StateCount returns the number of states, End()+1.
func (n *NFA) StateCount() int {
	return len(n.transitions)
}

// End returns the unique accepting state.
func (n *NFA) End() StateID {
	return n.end
}

// Next returns the set of states reachable from s on the given symbol.
// The returned slice is shared and must not be modified.
func (n *NFA) Next(s StateID, symbol rune) []StateID {
	if int(s) >= len(n.transitions) {
		return nil
	}
	return n.transitions[s][symbol]
}

// Symbols returns the automaton's non-epsilon alphabet in ascending order.
func (n *NFA) Symbols() []rune {
	out := make([]rune, 0, len(n.values))
	for sym := range n.values {
		if sym != Epsilon {
			out = append(out, sym)
		}
	}
	slices.Sort(out)
	return out
}

// HasEpsilon reports whether any epsilon transition exists.
func (n *NFA) HasEpsilon() bool {
	_, ok := n.values[Epsilon]
	return ok
}

// newNFA allocates an automaton with the given number of empty states.
func newNFA(states int) *NFA {
	return &NFA{
		transitions: make([]map[rune][]StateID, states),
		values:      make(map[rune]struct{}),
	}
}

// addTransition records from --symbol--> to, registering the symbol in the
// alphabet union.
func (n *NFA) addTransition(from StateID, symbol rune, to StateID) {
	if n.transitions[from] == nil {
		n.transitions[from] = make(map[rune][]StateID)
	}
	n.transitions[from][symbol] = append(n.transitions[from][symbol], to)
	n.values[symbol] = struct{}{}
}

// copyFrom splices every transition of src into n with all state ids shifted
// by offset.
func (n *NFA) copyFrom(src *NFA, offset StateID) {
	for from, edges := range src.transitions {
		for sym, targets := range edges {
			for _, to := range targets {
				n.addTransition(StateID(conv.IntToUint32(from))+offset, sym, to+offset)
			}
		}
	}
}
