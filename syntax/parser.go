package syntax

// DefaultMaxPasses is the rewrite-pass budget for the tree builder. The
// expand/merge loop gives up with ErrNoConvergence if the token sequence has
// not reduced to a single root within this many passes. The budget is a
// safety valve against pattern shapes the rewrite rules cannot reduce.
const DefaultMaxPasses = 10

// Parse lexes and builds a pattern in one call, producing the single-rooted
// parse tree the NFA compiler consumes.
func Parse(pattern string) (*Token, error) {
	return ParseWithLimit(pattern, DefaultMaxPasses)
}

// ParseWithLimit is Parse with an explicit rewrite-pass budget.
func ParseWithLimit(pattern string, maxPasses int) (*Token, error) {
	tokens, err := Lex(pattern)
	if err != nil {
		return nil, err
	}
	root, err := build(tokens, maxPasses)
	if err != nil {
		return nil, &ParseError{Pattern: pattern, Pos: -1, Err: err}
	}
	return root, nil
}

// Build reduces a lexed token sequence to a single-rooted tree containing
// only binary concatenation, binary alternation and star. On success every
// token in the tree has range (1,1) or (0,Unbounded).
func Build(tokens []*Token) (*Token, error) {
	return build(tokens, DefaultMaxPasses)
}

func build(tokens []*Token, maxPasses int) (*Token, error) {
	if len(tokens) == 0 {
		// The empty pattern matches exactly the empty string.
		return NewEmpty(), nil
	}
	if err := checkParens(tokens); err != nil {
		return nil, err
	}

	for pass := 0; pass < maxPasses; pass++ {
		var err error
		tokens, err = expand(tokens, maxPasses)
		if err != nil {
			return nil, err
		}
		tokens = merge(tokens)
		if len(tokens) == 1 && tokens[0].operand() && tokens[0].reduced() {
			return tokens[0], nil
		}
	}
	return nil, ErrNoConvergence
}

// checkParens rejects sequences whose parentheses can never pair up.
func checkParens(tokens []*Token) error {
	depth := 0
	for _, t := range tokens {
		if t.Kind != KindStructural {
			continue
		}
		if t.Value == '(' {
			depth++
		} else {
			depth--
			if depth < 0 {
				return ErrUnmatchedParen
			}
		}
	}
	if depth != 0 {
		return ErrUnmatchedParen
	}
	return nil
}

// expand rewrites every operand token whose range is not yet (1,1) or star
// into an equivalent run of tokens restricted to those two ranges. Each
// replacement is reduced to a single token before being spliced back in, so
// the outer loop only ever sees one token per expansion.
func expand(tokens []*Token, maxPasses int) ([]*Token, error) {
	out := make([]*Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.operand() || t.reduced() {
			out = append(out, t)
			continue
		}
		rep, err := expandToken(t, maxPasses)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, nil
}

// expandToken rewrites one token according to its repetition range:
//
//	(0,0)          -> the empty symbol
//	(0,max)        -> max copies of (ε|t)
//	(min,min)      -> min copies of t
//	(min,max)      -> min copies of t, then max-min copies of (ε|t)
//	(min,infinity) -> min copies of t, then t*
//
// The (1,1) and (0,infinity) cases never reach here; they are already in
// their final form.
func expandToken(t *Token, maxPasses int) (*Token, error) {
	r := t.Rng
	switch {
	case r.Min < 0 || (r.Max != Unbounded && r.Max < r.Min):
		return nil, ErrInvalidRange
	case r.Min == 0 && r.Max == 0:
		return NewEmpty(), nil
	case r.Min == 0:
		return reduce(optionals(t, r.Max), maxPasses)
	case r.Max == Unbounded:
		parts := copies(t, r.Min)
		last := t.Clone()
		last.Rng = rangeStar
		return reduce(append(parts, last), maxPasses)
	case r.Max == r.Min:
		return reduce(copies(t, r.Min), maxPasses)
	default:
		parts := copies(t, r.Min)
		return reduce(append(parts, optionals(t, r.Max-r.Min)...), maxPasses)
	}
}

// copies returns n deep copies of t at range (1,1).
func copies(t *Token, n int) []*Token {
	out := make([]*Token, n)
	for i := range out {
		c := t.Clone()
		c.Rng = rangeOnce
		out[i] = c
	}
	return out
}

// optionals returns n deep copies of t, each wrapped as (ε|t).
func optionals(t *Token, n int) []*Token {
	out := make([]*Token, n)
	for i := range out {
		c := t.Clone()
		c.Rng = rangeOnce
		out[i] = Alternate(NewEmpty(), c)
	}
	return out
}

// reduce solves a replacement sub-sequence to completion with the same
// expand/merge loop before it is spliced back into the outer sequence.
func reduce(parts []*Token, maxPasses int) (*Token, error) {
	if len(parts) == 1 {
		return parts[0], nil
	}
	return build(parts, maxPasses)
}

// merge folds the token sequence left to right using three reduction rules
// over the most recent window of the stack:
//
//	( expr )    -> expr, adopting the closing token's range
//	expr | expr -> binary alternation at range (1,1)
//	expr expr   -> binary concatenation at range (1,1)
//
// Concatenation and alternation only fire when their operands are already at
// range (1,1) or star; anything else is left in place for a later pass,
// after expansion has normalized it. Alternation is additionally deferred
// until its right side can no longer grow (next '|', ')' or end of input),
// which keeps it at the lowest precedence.
func merge(tokens []*Token) []*Token {
	var st []*Token

	flushAlt := func() {
		for {
			n := len(st)
			if n < 3 || st[n-2].Kind != KindAlternate {
				return
			}
			left, right := st[n-3], st[n-1]
			if !left.operand() || !left.reduced() || !right.operand() || !right.reduced() {
				return
			}
			st = append(st[:n-3], Alternate(left, right))
		}
	}

	reduceTop := func() {
		for {
			n := len(st)

			if n >= 3 && isStructural(st[n-3], '(') && st[n-2].operand() && isStructural(st[n-1], ')') {
				if res, ok := unwrap(st[n-2], st[n-1]); ok {
					st = append(st[:n-3], res)
					continue
				}
			}

			if n >= 2 && st[n-2].operand() && st[n-2].reduced() && st[n-1].operand() && st[n-1].reduced() {
				st = append(st[:n-2], concat(st[n-2], st[n-1]))
				continue
			}

			return
		}
	}

	for _, t := range tokens {
		if t.Kind == KindAlternate || isStructural(t, ')') {
			flushAlt()
		}
		st = append(st, t)
		reduceTop()
	}
	flushAlt()
	reduceTop()
	return st
}

// unwrap resolves a ( expr ) window. The group as a whole takes the closing
// token's range: a (1,1) closing range keeps the inner token's own range,
// while a quantified group transfers its range onto the inner token, or onto
// a fresh wrapper when the inner token already carries a star of its own.
func unwrap(inner, closing *Token) (*Token, bool) {
	switch {
	case closing.Rng.IsOnce():
		return inner, true
	case inner.Rng.IsOnce():
		inner.Rng = closing.Rng
		return inner, true
	case inner.reduced():
		wrapped := concat(inner, NewEmpty())
		wrapped.Rng = closing.Rng
		return wrapped, true
	default:
		// Inner token still needs expansion; leave the group for a later pass.
		return nil, false
	}
}

func isStructural(t *Token, symbol rune) bool {
	return t.Kind == KindStructural && t.Value == symbol
}
