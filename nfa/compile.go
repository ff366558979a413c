package nfa

import (
	"github.com/coregx/redfa/internal/conv"
	"github.com/coregx/redfa/syntax"
)

// Compile lowers a reduced parse tree into an NFA with start state 0 and a
// unique accepting state End().
//
// One fragment is built per tree node: a leaf becomes a two-state automaton
// with a single symbol transition, a 2-child composite concatenates its
// children with an epsilon splice, and a 3-child composite branches to both
// alternatives and converges them on a fresh end state. A node whose range
// is star has its finished fragment wrapped in the Kleene-star construction.
func Compile(root *syntax.Token) (*NFA, error) {
	n, err := compileToken(root)
	if err != nil {
		return nil, &CompileError{Pattern: root.String(), Err: err}
	}
	return n, nil
}

func compileToken(t *syntax.Token) (*NFA, error) {
	var frag *NFA

	switch {
	case t.Kind != syntax.KindExpression:
		frag = leaf(t.Value)
	case len(t.Children) == 2:
		a, err := compileToken(t.Children[0])
		if err != nil {
			return nil, err
		}
		b, err := compileToken(t.Children[1])
		if err != nil {
			return nil, err
		}
		frag = concatenate(a, b)
	case len(t.Children) == 3:
		a, err := compileToken(t.Children[0])
		if err != nil {
			return nil, err
		}
		b, err := compileToken(t.Children[2])
		if err != nil {
			return nil, err
		}
		frag = alternate(a, b)
	default:
		return nil, ErrMalformedTree
	}

	if t.Rng.IsStar() {
		frag = star(frag)
	}
	return frag, nil
}

// leaf builds the single-transition fragment 0 --symbol--> 1.
// An ε literal compiles to an epsilon transition, which is how the empty
// alternative of (ε|x) ends up matching zero occurrences.
func leaf(symbol rune) *NFA {
	n := newNFA(2)
	n.addTransition(0, symbol, 1)
	n.end = 1
	return n
}

// concatenate splices b's states after a's end state with an epsilon
// transition. a keeps its numbering; b's states shift by a's size.
func concatenate(a, b *NFA) *NFA {
	offset := a.end + 1
	n := newNFA(a.StateCount() + b.StateCount())
	n.copyFrom(a, 0)
	n.copyFrom(b, offset)
	n.addTransition(a.end, Epsilon, offset)
	n.end = b.end + offset
	return n
}

// alternate builds the union fragment: a new start state epsilon-branches to
// each child's start, and both children's ends epsilon-converge on a new
// shared end state.
func alternate(a, b *NFA) *NFA {
	offsetA := StateID(1)
	offsetB := offsetA + StateID(conv.IntToUint32(a.StateCount()))
	end := offsetB + StateID(conv.IntToUint32(b.StateCount()))

	n := newNFA(a.StateCount() + b.StateCount() + 2)
	n.copyFrom(a, offsetA)
	n.copyFrom(b, offsetB)
	n.addTransition(0, Epsilon, offsetA)
	n.addTransition(0, Epsilon, offsetB)
	n.addTransition(a.end+offsetA, Epsilon, end)
	n.addTransition(b.end+offsetB, Epsilon, end)
	n.end = end
	return n
}

// star wraps a finished fragment in the Kleene-star construction: the new
// start can skip the fragment entirely (zero occurrences) or enter it, and
// the fragment's end loops back to its own start as well as exiting forward.
func star(f *NFA) *NFA {
	end := StateID(conv.IntToUint32(f.StateCount())) + 1

	n := newNFA(f.StateCount() + 2)
	n.copyFrom(f, 1)
	n.addTransition(0, Epsilon, 1)
	n.addTransition(0, Epsilon, end)
	n.addTransition(f.end+1, Epsilon, 1)
	n.addTransition(f.end+1, Epsilon, end)
	n.end = end
	return n
}
