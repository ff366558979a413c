package syntax

import (
	"errors"
	"fmt"
)

// Lexing and tree-building errors. A pattern either parses completely or
// fails with one of these; there is no partial result.
var (
	// ErrBadEscape indicates a trailing '\' with no character to escape
	ErrBadEscape = errors.New("trailing backslash")

	// ErrDanglingQuantifier indicates a quantifier with no preceding token
	ErrDanglingQuantifier = errors.New("quantifier has no preceding token")

	// ErrBadBracket indicates a malformed bracket expression, or ']' outside one
	ErrBadBracket = errors.New("malformed bracket expression")

	// ErrBadCount indicates a malformed {min,max} repetition count, or a
	// stray '}' or ',' outside one
	ErrBadCount = errors.New("malformed repetition count")

	// ErrInvalidRange indicates a resolved repetition range with max < min
	ErrInvalidRange = errors.New("invalid repetition range: max < min")

	// ErrUnmatchedParen indicates parentheses that never paired up
	ErrUnmatchedParen = errors.New("unmatched parenthesis")

	// ErrNoConvergence indicates the rewrite loop exhausted its pass budget
	// without reducing the token sequence to a single root
	ErrNoConvergence = errors.New("pattern did not reduce to a single expression")
)

// ParseError wraps a parse failure with the pattern and the byte offset at
// which it was detected. Offset -1 means the failure has no single position
// (tree-building errors).
type ParseError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("parsing %q at offset %d: %v", e.Pattern, e.Pos, e.Err)
	}
	return fmt.Sprintf("parsing %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}
