package nfa

import (
	"errors"
	"slices"
	"testing"

	"github.com/coregx/redfa/syntax"
)

func mustCompile(t *testing.T, pattern string) *NFA {
	t.Helper()
	root, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("syntax.Parse(%q) error = %v", pattern, err)
	}
	n, err := Compile(root)
	if err != nil {
		t.Fatalf("Compile(%q) error = %v", pattern, err)
	}
	return n
}

// TestCompileLeaf tests the single-transition fragment
func TestCompileLeaf(t *testing.T) {
	n := mustCompile(t, "a")

	if n.StateCount() != 2 {
		t.Errorf("StateCount() = %d, want 2", n.StateCount())
	}
	if n.End() != 1 {
		t.Errorf("End() = %d, want 1", n.End())
	}
	if got := n.Next(0, 'a'); !slices.Equal(got, []StateID{1}) {
		t.Errorf("Next(0, 'a') = %v, want [1]", got)
	}
	if n.HasEpsilon() {
		t.Error("single literal should have no epsilon transitions")
	}
}

// TestCompileConcat tests the epsilon splice between two fragments
func TestCompileConcat(t *testing.T) {
	n := mustCompile(t, "ab")

	if n.StateCount() != 4 {
		t.Errorf("StateCount() = %d, want 4", n.StateCount())
	}
	if n.End() != 3 {
		t.Errorf("End() = %d, want 3", n.End())
	}
	if got := n.Next(0, 'a'); !slices.Equal(got, []StateID{1}) {
		t.Errorf("Next(0, 'a') = %v, want [1]", got)
	}
	if got := n.Next(1, Epsilon); !slices.Equal(got, []StateID{2}) {
		t.Errorf("Next(1, epsilon) = %v, want [2]", got)
	}
	if got := n.Next(2, 'b'); !slices.Equal(got, []StateID{3}) {
		t.Errorf("Next(2, 'b') = %v, want [3]", got)
	}
}

// TestCompileAlternate tests the branch/converge union fragment
func TestCompileAlternate(t *testing.T) {
	n := mustCompile(t, "a|b")

	// new start + two 2-state fragments + new end
	if n.StateCount() != 6 {
		t.Errorf("StateCount() = %d, want 6", n.StateCount())
	}
	branches := n.Next(0, Epsilon)
	if len(branches) != 2 {
		t.Fatalf("Next(0, epsilon) = %v, want two branches", branches)
	}
	for _, start := range branches {
		reachedEnd := false
		for _, sym := range []rune{'a', 'b'} {
			for _, mid := range n.Next(start, sym) {
				if slices.Contains(n.Next(mid, Epsilon), n.End()) {
					reachedEnd = true
				}
			}
		}
		if !reachedEnd {
			t.Errorf("branch %d does not epsilon-converge on End()", start)
		}
	}
}

// TestCompileStar tests the Kleene-star wrap
func TestCompileStar(t *testing.T) {
	n := mustCompile(t, "a*")

	if n.StateCount() != 4 {
		t.Errorf("StateCount() = %d, want 4", n.StateCount())
	}
	if n.End() != 3 {
		t.Errorf("End() = %d, want 3", n.End())
	}
	// Start skips to the end (zero occurrences) and enters the fragment.
	if got := n.Next(0, Epsilon); !slices.Equal(got, []StateID{1, 3}) {
		t.Errorf("Next(0, epsilon) = %v, want [1 3]", got)
	}
	// Fragment end loops back and exits forward.
	if got := n.Next(2, Epsilon); !slices.Equal(got, []StateID{1, 3}) {
		t.Errorf("Next(2, epsilon) = %v, want [1 3]", got)
	}
}

// TestSymbols tests the symbol union accumulated across the automaton
func TestSymbols(t *testing.T) {
	tests := []struct {
		pattern string
		want    []rune
		epsilon bool
	}{
		{"a", []rune{'a'}, false},
		{"ba", []rune{'a', 'b'}, true},
		{"(a|b)*c", []rune{'a', 'b', 'c'}, true},
		{"aaa", []rune{'a'}, true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n := mustCompile(t, tt.pattern)
			if got := n.Symbols(); !slices.Equal(got, tt.want) {
				t.Errorf("Symbols() = %q, want %q", got, tt.want)
			}
			if n.HasEpsilon() != tt.epsilon {
				t.Errorf("HasEpsilon() = %v, want %v", n.HasEpsilon(), tt.epsilon)
			}
		})
	}
}

// TestCompileEmptyLiteral tests that the ε literal becomes an epsilon edge
func TestCompileEmptyLiteral(t *testing.T) {
	n := mustCompile(t, "")

	if n.StateCount() != 2 {
		t.Errorf("StateCount() = %d, want 2", n.StateCount())
	}
	if got := n.Next(0, Epsilon); !slices.Equal(got, []StateID{1}) {
		t.Errorf("Next(0, epsilon) = %v, want [1]", got)
	}
	if len(n.Symbols()) != 0 {
		t.Errorf("Symbols() = %q, want empty", n.Symbols())
	}
}

// TestCompileMalformedTree tests the structure-error path for composites
// with an invalid child count
func TestCompileMalformedTree(t *testing.T) {
	bad := &syntax.Token{
		Kind:     syntax.KindExpression,
		Children: []*syntax.Token{syntax.NewLiteral('a')},
	}

	_, err := Compile(bad)
	if err == nil {
		t.Fatal("Compile() succeeded on a 1-child composite")
	}
	if !errors.Is(err, ErrMalformedTree) {
		t.Errorf("Compile() error = %v, want ErrMalformedTree", err)
	}
	var cerr *CompileError
	if !errors.As(err, &cerr) {
		t.Errorf("Compile() error is not a *CompileError")
	}
}
