package redfa

// Config controls compilation behavior and resource limits.
//
// Start from DefaultConfig and adjust fields rather than constructing a
// Config from scratch.
//
// Example:
//
//	config := redfa.DefaultConfig()
//	config.MaxStates = 100000 // Allow larger automata
//	re, err := redfa.CompileWithConfig("(a|b)*abb", config)
type Config struct {
	// MaxRewritePasses bounds the tree builder's expand/merge loop. A
	// pattern that has not reduced to a single root within the budget fails
	// with syntax.ErrNoConvergence.
	// Default: 10
	MaxRewritePasses int

	// MaxStates caps the number of DFA states built during subset
	// construction. Some patterns determinize into exponentially many
	// states; exceeding the cap fails compilation with dfa.ErrTooManyStates
	// instead of growing without bound.
	// Default: 10000
	MaxStates int

	// EnableLiteralScan enables the Aho-Corasick fast path for pattern sets
	// whose members are all plain literals. It only accelerates FindAll
	// scanning; match results are identical either way.
	// Default: true
	EnableLiteralScan bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxRewritePasses:  10,
		MaxStates:         10000,
		EnableLiteralScan: true,
	}
}

// normalized replaces non-positive limits with their defaults so a partially
// filled Config still compiles.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.MaxRewritePasses <= 0 {
		c.MaxRewritePasses = def.MaxRewritePasses
	}
	if c.MaxStates <= 0 {
		c.MaxStates = def.MaxStates
	}
	return c
}
