package nfa

import (
	"errors"
	"fmt"
)

// ErrMalformedTree indicates a composite tree node with a child count other
// than 2 or 3. The tree builder never produces such a node, so hitting this
// signals a rewrite-phase invariant violation rather than bad user input.
var ErrMalformedTree = errors.New("malformed parse tree: composite node must have 2 or 3 children")

// CompileError wraps NFA compilation errors with the offending pattern text.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("NFA compilation failed for pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("NFA compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}
