package dfa

// Minimize is the extension point for DFA state minimization.
//
// The intended algorithm is Hopcroft's partition refinement over equivalence
// classes of states. It is not implemented yet: Minimize currently returns
// the receiver unchanged. The automaton produced by Determinize is correct
// and total over its alphabet, so minimization is purely a state-count
// optimization, never a correctness requirement.
//
// TODO: implement Hopcroft partition refinement and fold the sink's
// equivalence class back into the canonical sink.
func (d *DFA) Minimize() *DFA {
	return d
}
