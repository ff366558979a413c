package dfa

import (
	"strconv"

	"github.com/coregx/redfa/internal/conv"
	"github.com/coregx/redfa/internal/sparse"
	"github.com/coregx/redfa/nfa"
)

// Determinize converts an NFA into an equivalent DFA over the NFA's
// non-epsilon alphabet, with no cap on the number of constructed states.
func Determinize(n *nfa.NFA) (*DFA, error) {
	return DeterminizeLimit(n, 0)
}

// DeterminizeLimit is Determinize with a cap on constructed states.
// maxStates <= 0 means unlimited; exceeding the cap returns
// ErrTooManyStates.
//
// The construction seeds state 0 with the epsilon-closure of the NFA start
// state, then explores depth-first: for every known subset and alphabet
// symbol it computes epsilon-closure(move(subset, symbol)), interning each
// distinct subset as a fresh dense state id on first encounter. The empty
// subset is interned like any other and self-loops on every symbol, forming
// the implicit reject path that dead-state elimination later folds into the
// canonical sink. The finished DFA is total over the alphabet.
func DeterminizeLimit(n *nfa.NFA, maxStates int) (*DFA, error) {
	det := &determinizer{
		nfa:       n,
		symbols:   n.Symbols(),
		memo:      make(map[string]StateID),
		maxStates: maxStates,
		scratch:   sparse.NewSet(conv.IntToUint32(n.StateCount())),
	}

	seed := det.closure([]uint32{0})
	id, _ := det.intern(seed)
	if err := det.explore(id); err != nil {
		return nil, err
	}

	d := &DFA{
		transitions: det.transitions,
		accept:      det.accept,
		start:       det.start,
		symbols:     det.symbols,
	}
	for s, isStart := range d.start {
		if isStart {
			d.startID = StateID(conv.IntToUint32(s))
		}
	}

	d.totalize()
	d.pruneDead()
	return d, nil
}

// determinizer holds the in-progress subset construction. The subset/memo
// pair is the bidirectional state mapping: it exists only during
// construction and is discarded once the DFA is finalized.
type determinizer struct {
	nfa     *nfa.NFA
	symbols []rune

	memo    map[string]StateID // canonical subset key -> DFA state id
	subsets [][]uint32         // DFA state id -> sorted NFA state set

	transitions []map[rune]StateID
	accept      []bool
	start       []bool

	maxStates int
	scratch   *sparse.Set
}

// intern returns the DFA state id for the given sorted subset, allocating a
// new id on first encounter. existed is false for a fresh allocation.
func (det *determinizer) intern(subset []uint32) (StateID, bool) {
	key := subsetKey(subset)
	if id, ok := det.memo[key]; ok {
		return id, true
	}

	id := StateID(conv.IntToUint32(len(det.subsets)))
	det.memo[key] = id
	det.subsets = append(det.subsets, subset)
	det.transitions = append(det.transitions, make(map[rune]StateID, len(det.symbols)))
	det.accept = append(det.accept, contains(subset, uint32(det.nfa.End())))
	det.start = append(det.start, contains(subset, 0))
	return id, false
}

// explore fills in the transitions of the given DFA state, recursing
// depth-first into subsets it discovers.
func (det *determinizer) explore(id StateID) error {
	if det.maxStates > 0 && len(det.subsets) > det.maxStates {
		return ErrTooManyStates
	}

	for _, sym := range det.symbols {
		target := det.closure(det.move(det.subsets[id], sym))
		tid, existed := det.intern(target)
		det.transitions[id][sym] = tid
		if !existed {
			if err := det.explore(tid); err != nil {
				return err
			}
		}
	}
	return nil
}

// move returns the sorted set of NFA states directly reachable from the
// subset by consuming exactly one occurrence of symbol.
func (det *determinizer) move(subset []uint32, symbol rune) []uint32 {
	det.scratch.Clear()
	for _, s := range subset {
		for _, to := range det.nfa.Next(nfa.StateID(s), symbol) {
			det.scratch.Insert(uint32(to))
		}
	}
	return det.scratch.Sorted()
}

// closure expands the set with every state reachable through zero or more
// epsilon transitions. The sparse set doubles as the visited guard: a state
// already included is not re-expanded, which keeps star loops from cycling
// forever.
func (det *determinizer) closure(seed []uint32) []uint32 {
	det.scratch.Clear()
	work := make([]uint32, len(seed))
	copy(work, seed)
	for _, s := range seed {
		det.scratch.Insert(s)
	}

	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		for _, to := range det.nfa.Next(nfa.StateID(s), nfa.Epsilon) {
			if !det.scratch.Contains(uint32(to)) {
				det.scratch.Insert(uint32(to))
				work = append(work, uint32(to))
			}
		}
	}
	return det.scratch.Sorted()
}

// subsetKey builds the canonical memo key for a sorted subset.
func subsetKey(subset []uint32) string {
	buf := make([]byte, 0, len(subset)*4)
	for _, s := range subset {
		buf = strconv.AppendUint(buf, uint64(s), 10)
		buf = append(buf, ',')
	}
	return string(buf)
}

// contains reports membership in a sorted slice via linear scan; subsets are
// small enough that binary search buys nothing.
func contains(subset []uint32, value uint32) bool {
	for _, s := range subset {
		if s == value {
			return true
		}
	}
	return false
}
