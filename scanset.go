package redfa

import (
	"strings"

	"github.com/coregx/ahocorasick"
)

// literalScanner accelerates FindAll over pattern sets whose members are all
// plain literals. An Aho-Corasick automaton over the literal set locates the
// next candidate offset in one pass instead of the scan loop advancing rune
// by rune; the DFA still decides the actual match and its length at that
// offset, so matching semantics are unchanged.
type literalScanner struct {
	auto *ahocorasick.Automaton
}

// newLiteralScanner builds the scanner, or returns nil when any pattern is
// not a plain literal or the automaton fails to build. A nil scanner just
// means FindAll falls back to the plain scan.
func newLiteralScanner(patterns []string) *literalScanner {
	builder := ahocorasick.NewBuilder()
	for _, p := range patterns {
		lit, ok := literalText(p)
		if !ok {
			return nil
		}
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &literalScanner{auto: auto}
}

// next returns the offset of the earliest literal occurrence at or after
// pos. ok is false when no occurrence remains.
func (ls *literalScanner) next(haystack []byte, pos int) (int, bool) {
	m := ls.auto.Find(haystack, pos)
	if m == nil {
		return 0, false
	}
	return m.Start, true
}

// literalText unescapes a pattern and reports whether it is a plain literal:
// no metacharacters, at least one character. Only such patterns can drive
// the candidate scan.
func literalText(pattern string) (string, bool) {
	var b strings.Builder
	escaped := false
	for _, r := range pattern {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '(', ')', '|', '*', '+', '?', '{', '}', '[', ']':
			return "", false
		default:
			b.WriteRune(r)
		}
	}
	if escaped || b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}
