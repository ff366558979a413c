// Package redfa compiles textual regular expressions ahead of time into a
// deterministic finite automaton.
//
// The pipeline is classic: the pattern is lexed and normalized into a parse
// tree restricted to concatenation, alternation and Kleene star, lowered
// into a Thompson NFA, and determinized via subset construction with
// dead-state elimination. Matching is then a plain DFA walk with no
// backtracking and no per-match allocation.
//
// The grammar surface is literal characters, '\' escapes, grouping
// parentheses, '|', the quantifiers '*' '+' '?', counted repetition
// {min,max} with elided-bound variants, and bracket expressions like [a-d]
// (expanded to an alternation at lex time). There are no capture groups,
// backreferences or anchors.
//
// Basic usage:
//
//	re, err := redfa.Compile("a(b|c)*")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("abcbc") // true: Match tests the WHOLE input
//	re.MatchString("xabc")  // false
//
// Substring extraction:
//
//	re := redfa.MustCompile("a|ab")
//	re.FindAllString("aababb") // ["a", "ab"]
//
// A set of patterns can be compiled into a single lexer-style scanner that
// matches greedy runs of its members:
//
//	re, err := redfa.CompileSet([]string{"foo", "bar", "if"})
//	re.FindAllString("ifoobar...") // greedy token runs
package redfa

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/coregx/redfa/dfa"
	"github.com/coregx/redfa/nfa"
	"github.com/coregx/redfa/syntax"
)

// ErrEmptySet indicates CompileSet was given no patterns.
var ErrEmptySet = errors.New("redfa: empty pattern set")

// Regex is a compiled regular expression backed by a total DFA.
//
// A Regex is immutable after compilation and safe for concurrent use.
type Regex struct {
	pattern string
	dfa     *dfa.DFA
	scanner *literalScanner
}

// Compile compiles a pattern with the default configuration.
//
// Compilation is all-or-nothing: the pattern either compiles into a usable
// automaton or an error describing the first failure is returned.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
// This is useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("redfa: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom limits.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	config = config.normalized()

	tree, err := syntax.ParseWithLimit(pattern, config.MaxRewritePasses)
	if err != nil {
		return nil, err
	}
	d, err := lower(tree, config)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, dfa: d}, nil
}

// CompileSet compiles an ordered collection of patterns into a single
// scanner-style Regex with the default configuration.
//
// The patterns A, B, C are union-combined into (A|B|C)*: the result matches
// any greedy concatenation of set members, the shape a tokenizer wants.
// Each pattern is parsed individually, so a parse error names the pattern
// that caused it.
func CompileSet(patterns []string) (*Regex, error) {
	return CompileSetWithConfig(patterns, DefaultConfig())
}

// CompileSetWithConfig is CompileSet with custom limits.
func CompileSetWithConfig(patterns []string, config Config) (*Regex, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptySet
	}
	config = config.normalized()

	trees := make([]*syntax.Token, len(patterns))
	for i, p := range patterns {
		tree, err := syntax.ParseWithLimit(p, config.MaxRewritePasses)
		if err != nil {
			return nil, err
		}
		trees[i] = tree
	}

	combined := trees[0]
	for _, t := range trees[1:] {
		combined = syntax.Alternate(combined, t)
	}
	combined = syntax.Star(combined)

	d, err := lower(combined, config)
	if err != nil {
		return nil, err
	}

	re := &Regex{
		pattern: "(" + strings.Join(patterns, "|") + ")*",
		dfa:     d,
	}
	if config.EnableLiteralScan {
		re.scanner = newLiteralScanner(patterns)
	}
	return re, nil
}

// lower runs the shared back half of compilation: parse tree -> NFA -> DFA.
func lower(tree *syntax.Token, config Config) (*dfa.DFA, error) {
	n, err := nfa.Compile(tree)
	if err != nil {
		return nil, err
	}
	return dfa.DeterminizeLimit(n, config.MaxStates)
}

// String returns the source text used to compile the regular expression.
// For pattern sets this is the combined (A|B|C)* form.
func (r *Regex) String() string {
	return r.pattern
}

// Match reports whether the DFA accepts the ENTIRE input.
//
// Note this differs from stdlib regexp, whose Match is a containment test.
// Use FindAll to locate matching substrings.
func (r *Regex) Match(b []byte) bool {
	return r.dfa.Matches(string(b))
}

// MatchString reports whether the DFA accepts the entire input string.
func (r *Regex) MatchString(s string) bool {
	return r.dfa.Matches(s)
}

// FindAllString returns every maximal matching substring of s, scanning
// left to right with leftmost-longest semantics: at each offset the longest
// accepted prefix wins, and scanning resumes after it. Identical substrings
// are deduplicated, first seen wins, insertion order preserved.
func (r *Regex) FindAllString(s string) []string {
	var out []string
	seen := make(map[string]struct{})
	record := func(m string) {
		if _, dup := seen[m]; !dup {
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}

	var hay []byte
	if r.scanner != nil {
		hay = []byte(s)
	}
	matchesEmpty := r.dfa.IsAccept(r.dfa.Start())

	pos := 0
	for pos <= len(s) {
		if pos == len(s) {
			if matchesEmpty {
				record("")
			}
			break
		}

		if r.scanner != nil {
			// Jump straight to the next offset where a set literal occurs.
			// Every skipped offset could only have produced the empty match.
			next, ok := r.scanner.next(hay, pos)
			if !ok {
				if matchesEmpty {
					record("")
				}
				break
			}
			if next > pos && matchesEmpty {
				record("")
			}
			pos = next
		}

		n := r.dfa.LongestMatch(s[pos:])
		if n > 0 {
			record(s[pos : pos+n])
			pos += n
			continue
		}
		if n == 0 {
			record("")
		}
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
	}
	return out
}

// FindAll is FindAllString over a byte slice haystack.
func (r *Regex) FindAll(b []byte) [][]byte {
	matches := r.FindAllString(string(b))
	if matches == nil {
		return nil
	}
	out := make([][]byte, len(matches))
	for i, m := range matches {
		out[i] = []byte(m)
	}
	return out
}
