package dfa

import "errors"

// ErrTooManyStates indicates subset construction exceeded the configured
// state cap. Some NFA shapes determinize into exponentially many subsets;
// the cap turns that blowup into a compile failure instead of unbounded
// memory growth.
var ErrTooManyStates = errors.New("DFA state limit exceeded during subset construction")
