package syntax

import "strconv"

// scanMode is the lexer's current mode. The lexer is a small state machine
// rather than a set of shared accumulator objects: escapes, repetition
// counts and bracket expressions each switch the loop into a dedicated mode
// that owns its in-progress state.
type scanMode uint8

const (
	scanNormal scanMode = iota
	scanEscaped
	scanCount
	scanBracket
	scanBracketEscape
)

// lexer scans a pattern string into a flat token sequence.
type lexer struct {
	pattern string
	tokens  []*Token
	mode    scanMode

	// In-progress {min,max} accumulator, valid in scanCount.
	countLo, countHi string
	countComma       bool

	// In-progress bracket expression, valid in scanBracket modes.
	brItems []rune
	brDash  bool
}

// Lex scans a regex pattern into an ordered token sequence.
//
// Escapes force the next character to be a literal. Quantifiers and counted
// repetitions mutate the range of the immediately preceding token in place.
// Bracket expressions are expanded at lex time into an alternation group
// over their characters, so the rest of the pipeline never sees them.
func Lex(pattern string) ([]*Token, error) {
	l := &lexer{pattern: pattern}

	for i, r := range pattern {
		if err := l.scan(r); err != nil {
			return nil, &ParseError{Pattern: pattern, Pos: i, Err: err}
		}
	}

	if err := l.finish(); err != nil {
		return nil, &ParseError{Pattern: pattern, Pos: len(pattern), Err: err}
	}
	return l.tokens, nil
}

// scan consumes one rune in the current mode.
func (l *lexer) scan(r rune) error {
	switch l.mode {
	case scanEscaped:
		l.mode = scanNormal
		l.tokens = append(l.tokens, NewLiteral(r))
		return nil
	case scanCount:
		return l.scanCountRune(r)
	case scanBracket:
		return l.scanBracketRune(r)
	case scanBracketEscape:
		l.mode = scanBracket
		return l.bracketItem(r)
	}

	switch r {
	case '\\':
		l.mode = scanEscaped
	case '(', ')':
		l.tokens = append(l.tokens, newStructural(r))
	case '|':
		l.tokens = append(l.tokens, newAlternateOp())
	case '*':
		return l.applyRange(rangeStar)
	case '+':
		return l.applyRange(Range{Min: 1, Max: Unbounded})
	case '?':
		return l.applyRange(Range{Min: 0, Max: 1})
	case '{':
		l.mode = scanCount
		l.countLo, l.countHi = "", ""
		l.countComma = false
	case '}', ',':
		return ErrBadCount
	case '[':
		l.mode = scanBracket
		l.brItems = l.brItems[:0]
		l.brDash = false
	case ']':
		return ErrBadBracket
	default:
		l.tokens = append(l.tokens, NewLiteral(r))
	}
	return nil
}

// applyRange mutates the range of the most recent token.
func (l *lexer) applyRange(r Range) error {
	if len(l.tokens) == 0 {
		return ErrDanglingQuantifier
	}
	l.tokens[len(l.tokens)-1].Rng = r
	return nil
}

// scanCountRune consumes one rune of a {min,max} repetition count.
func (l *lexer) scanCountRune(r rune) error {
	switch {
	case r >= '0' && r <= '9':
		if l.countComma {
			l.countHi += string(r)
		} else {
			l.countLo += string(r)
		}
		return nil
	case r == ',':
		if l.countComma {
			// {a,b,c} has too many bound fields
			return ErrBadCount
		}
		l.countComma = true
		return nil
	case r == '}':
		l.mode = scanNormal
		rng, err := l.resolveCount()
		if err != nil {
			return err
		}
		return l.applyRange(rng)
	default:
		return ErrBadCount
	}
}

// resolveCount turns the accumulated bound fields into a concrete range.
//
//	{}    -> (0,0)     {a}   -> (a,a)
//	{,}   -> (0,-1)    {a,}  -> (a,-1)
//	{,b}  -> (0,b)     {a,b} -> (a,b), error if b < a
func (l *lexer) resolveCount() (Range, error) {
	lo := 0
	if l.countLo != "" {
		n, err := strconv.Atoi(l.countLo)
		if err != nil {
			return Range{}, ErrBadCount
		}
		lo = n
	}

	if !l.countComma {
		if l.countLo == "" {
			return Range{Min: 0, Max: 0}, nil
		}
		return Range{Min: lo, Max: lo}, nil
	}

	if l.countHi == "" {
		return Range{Min: lo, Max: Unbounded}, nil
	}
	hi, err := strconv.Atoi(l.countHi)
	if err != nil {
		return Range{}, ErrBadCount
	}
	if hi < lo {
		return Range{}, ErrInvalidRange
	}
	return Range{Min: lo, Max: hi}, nil
}

// scanBracketRune consumes one rune of a bracket expression.
func (l *lexer) scanBracketRune(r rune) error {
	switch r {
	case '\\':
		l.mode = scanBracketEscape
		return nil
	case ']':
		l.mode = scanNormal
		if l.brDash {
			// trailing dash is a literal
			l.brItems = append(l.brItems, '-')
		}
		return l.emitBracket()
	case '-':
		if len(l.brItems) == 0 || l.brDash {
			return l.bracketItem('-')
		}
		l.brDash = true
		return nil
	default:
		return l.bracketItem(r)
	}
}

// bracketItem adds one symbol to the bracket expression, expanding a pending
// ascending range a-d into its individual characters.
func (l *lexer) bracketItem(r rune) error {
	if !l.brDash {
		l.brItems = append(l.brItems, r)
		return nil
	}
	l.brDash = false
	lo := l.brItems[len(l.brItems)-1]
	if r < lo {
		return ErrBadBracket
	}
	for c := lo + 1; c <= r; c++ {
		l.brItems = append(l.brItems, c)
	}
	return nil
}

// emitBracket expands the collected bracket characters into an alternation
// group: [abc] becomes the token run ( a | b | c ).
func (l *lexer) emitBracket() error {
	if len(l.brItems) == 0 {
		return ErrBadBracket
	}
	l.tokens = append(l.tokens, newStructural('('))
	for i, c := range l.brItems {
		if i > 0 {
			l.tokens = append(l.tokens, newAlternateOp())
		}
		l.tokens = append(l.tokens, NewLiteral(c))
	}
	l.tokens = append(l.tokens, newStructural(')'))
	return nil
}

// finish checks that the pattern did not end mid-construct.
func (l *lexer) finish() error {
	switch l.mode {
	case scanEscaped:
		return ErrBadEscape
	case scanCount:
		return ErrBadCount
	case scanBracket, scanBracketEscape:
		return ErrBadBracket
	}
	return nil
}
