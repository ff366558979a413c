// Package syntax parses the regex surface grammar into a normalized parse
// tree.
//
// Parsing runs in two stages. The lexer turns the pattern string into a flat
// token sequence, resolving escapes, quantifiers and counted repetitions as
// it goes. The tree builder then rewrites that sequence with a bounded
// expand/merge loop until a single root remains whose tree uses only binary
// concatenation, binary alternation and Kleene star over literal symbols.
// That restricted shape is what the NFA compiler consumes.
package syntax

import "strings"

// Epsilon is the distinguished symbol for the empty literal. It never
// collides with real input because pattern symbols are non-negative runes.
const Epsilon rune = -1

// Unbounded marks a repetition range with no upper limit, as in a{2,} or a*.
const Unbounded = -1

// Kind identifies the type of a token and determines which fields are valid.
type Kind uint8

const (
	// KindLiteral is a single symbol, including the empty symbol Epsilon.
	KindLiteral Kind = iota

	// KindStructural is a grouping parenthesis, '(' or ')'.
	KindStructural

	// KindAlternate is the '|' operator between two alternatives.
	KindAlternate

	// KindExpression is a composite node owning 2 children (concatenation)
	// or 3 children (alternation: left, operator, right).
	KindExpression
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindStructural:
		return "Structural"
	case KindAlternate:
		return "Alternate"
	case KindExpression:
		return "Expression"
	default:
		return "Unknown"
	}
}

// Range is a repetition range attached to a token. Min >= 0 always; Max is
// either Unbounded or >= Min. The quantifiers map onto it as *=(0,Unbounded),
// +=(1,Unbounded), ?=(0,1), {a,b}=(a,b).
type Range struct {
	Min, Max int
}

// rangeOnce is the range of a token that occurs exactly once.
var rangeOnce = Range{Min: 1, Max: 1}

// rangeStar is the Kleene-star range: zero or more occurrences.
var rangeStar = Range{Min: 0, Max: Unbounded}

// IsOnce returns true for the single-occurrence range (1,1).
func (r Range) IsOnce() bool {
	return r.Min == 1 && r.Max == 1
}

// IsStar returns true for the Kleene-star range (0,Unbounded).
func (r Range) IsStar() bool {
	return r.Min == 0 && r.Max == Unbounded
}

// Token is a node of the parse tree. During lexing tokens are flat; the tree
// builder folds them into KindExpression composites. After a successful
// Build, every token in the tree has range (1,1) or (0,Unbounded) and every
// composite has exactly 2 or 3 children.
type Token struct {
	Kind     Kind
	Value    rune // symbol for KindLiteral, '(' ')' '|' for the operator kinds
	Rng      Range
	Children []*Token // only for KindExpression
}

// NewLiteral returns a literal token for the given symbol with range (1,1).
func NewLiteral(symbol rune) *Token {
	return &Token{Kind: KindLiteral, Value: symbol, Rng: rangeOnce}
}

// NewEmpty returns the empty-symbol literal with range (1,1).
func NewEmpty() *Token {
	return NewLiteral(Epsilon)
}

// newStructural returns a '(' or ')' token with range (1,1).
func newStructural(symbol rune) *Token {
	return &Token{Kind: KindStructural, Value: symbol, Rng: rangeOnce}
}

// newAlternateOp returns a '|' operator token with range (1,1).
func newAlternateOp() *Token {
	return &Token{Kind: KindAlternate, Value: '|', Rng: rangeOnce}
}

// Alternate returns a new alternation composite over a and b with range (1,1).
// Both operands should be reduced trees.
func Alternate(a, b *Token) *Token {
	return &Token{
		Kind:     KindExpression,
		Rng:      rangeOnce,
		Children: []*Token{a, newAlternateOp(), b},
	}
}

// concat returns a new concatenation composite of a then b with range (1,1).
func concat(a, b *Token) *Token {
	return &Token{
		Kind:     KindExpression,
		Rng:      rangeOnce,
		Children: []*Token{a, b},
	}
}

// Star returns t with Kleene-star applied to the whole tree.
// If t already carries a non-trivial range, it is first wrapped in a
// composite so the star applies to the group rather than overwriting the
// existing range.
func Star(t *Token) *Token {
	switch {
	case t.Rng.IsStar():
		return t
	case t.Rng.IsOnce():
		t.Rng = rangeStar
		return t
	default:
		wrapped := concat(t, NewEmpty())
		wrapped.Rng = rangeStar
		return wrapped
	}
}

// Clone returns a deep copy of the token and its children.
// Repetition expansion splices multiple copies of the same sub-tree into the
// token sequence, so copies must not share child slices.
func (t *Token) Clone() *Token {
	c := &Token{Kind: t.Kind, Value: t.Value, Rng: t.Rng}
	if len(t.Children) > 0 {
		c.Children = make([]*Token, len(t.Children))
		for i, child := range t.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// reduced reports whether the token's own range is one of the two forms that
// survive tree building: single occurrence or star.
func (t *Token) reduced() bool {
	return t.Rng.IsOnce() || t.Rng.IsStar()
}

// operand reports whether the token can appear as a child of a composite:
// literals and expressions, but not structural or operator tokens.
func (t *Token) operand() bool {
	return t.Kind == KindLiteral || t.Kind == KindExpression
}

// String reconstructs pattern text from a reduced tree. The output contains
// only literal symbols, '|', '*', parentheses and the empty-symbol marker.
func (t *Token) String() string {
	var b strings.Builder
	t.writeTo(&b)
	return b.String()
}

func (t *Token) writeTo(b *strings.Builder) {
	star := t.Rng.IsStar()
	switch {
	case t.Kind == KindLiteral && t.Value == Epsilon:
		b.WriteString("ε")
	case t.Kind != KindExpression:
		b.WriteRune(t.Value)
	case len(t.Children) == 3:
		b.WriteByte('(')
		t.Children[0].writeTo(b)
		b.WriteByte('|')
		t.Children[2].writeTo(b)
		b.WriteByte(')')
	default:
		if star {
			b.WriteByte('(')
		}
		for _, c := range t.Children {
			c.writeTo(b)
		}
		if star {
			b.WriteByte(')')
		}
	}
	if star {
		b.WriteByte('*')
	}
}
