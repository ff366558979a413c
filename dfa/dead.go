package dfa

import "github.com/coregx/redfa/internal/conv"

// totalize appends the canonical sink state and routes every previously
// missing (state, symbol) transition to it. Afterwards the DFA is total over
// its alphabet: matching can always take a step, and reaching the sink is
// the definitive reject signal.
func (d *DFA) totalize() {
	sink := StateID(conv.IntToUint32(len(d.transitions)))
	d.transitions = append(d.transitions, make(map[rune]StateID, len(d.symbols)))
	d.accept = append(d.accept, false)
	d.start = append(d.start, false)
	d.sink = sink

	for s := range d.transitions {
		for _, sym := range d.symbols {
			if _, ok := d.transitions[s][sym]; !ok {
				d.transitions[s][sym] = sink
			}
		}
	}
}

// pruneDead collapses every dead state except the canonical sink: incoming
// edges are redirected to the sink and the remaining states are renumbered
// to stay dense. A state is dead when it is non-accepting and no accepting
// state is reachable from it. The start state is never removed even when
// dead (a pattern with an empty language still needs somewhere to start);
// its transitions all lead to the sink anyway.
func (d *DFA) pruneDead() {
	n := len(d.transitions)
	alive := make([]bool, n)
	deadFinal := make([]bool, n)
	visiting := make([]bool, n)

	var reaches func(s StateID) bool
	reaches = func(s StateID) bool {
		switch {
		case alive[s]:
			return true
		case d.accept[s]:
			alive[s] = true
			return true
		case deadFinal[s]:
			return false
		case visiting[s]:
			// Cycle guard: returning to a state already on the DFS path
			// means no accepting path was found before closing the loop, so
			// this path contributes nothing.
			return false
		}

		visiting[s] = true
		for _, sym := range d.symbols {
			if reaches(d.transitions[s][sym]) {
				alive[s] = true
				visiting[s] = false
				return true
			}
		}
		visiting[s] = false
		return false
	}

	dead := make([]bool, n)
	for s := 0; s < n; s++ {
		id := StateID(conv.IntToUint32(s))
		// A top-level verdict is definitive: with no ancestors on the path,
		// every route out of s has been fully explored. Verdicts from inner
		// calls are not cached because the cycle guard may have cut them short.
		if !reaches(id) {
			dead[s] = true
			deadFinal[s] = true
		}
	}

	// Renumber, dropping removable dead states and redirecting every edge
	// into a dropped state (and every edge into the sink's old id) onto the
	// sink's new id.
	remap := make([]StateID, n)
	kept := 0
	for s := 0; s < n; s++ {
		removable := dead[s] && StateID(s) != d.sink && !d.start[s]
		if removable {
			continue
		}
		remap[s] = StateID(conv.IntToUint32(kept))
		kept++
	}
	newSink := remap[d.sink]
	for s := 0; s < n; s++ {
		if dead[s] && StateID(s) != d.sink && !d.start[s] {
			remap[s] = newSink
		}
	}

	transitions := make([]map[rune]StateID, 0, kept)
	accept := make([]bool, 0, kept)
	start := make([]bool, 0, kept)
	for s := 0; s < n; s++ {
		if dead[s] && StateID(s) != d.sink && !d.start[s] {
			continue
		}
		edges := make(map[rune]StateID, len(d.transitions[s]))
		for sym, to := range d.transitions[s] {
			edges[sym] = remap[to]
		}
		transitions = append(transitions, edges)
		accept = append(accept, d.accept[s])
		start = append(start, d.start[s])
	}

	d.transitions = transitions
	d.accept = accept
	d.start = start
	d.sink = newSink
	d.startID = remap[d.startID]
}
