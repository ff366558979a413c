package redfa

import (
	"errors"
	"reflect"
	"testing"

	"github.com/coregx/redfa/dfa"
	"github.com/coregx/redfa/syntax"
)

// TestCompile tests basic compilation
func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"simple literal", "hello", false},
		{"alternation", "foo|bar", false},
		{"repetition", "a+", false},
		{"counted repetition", "a{2,4}", false},
		{"bracket", "[a-f]x", false},
		{"empty pattern", "", false},
		{"unmatched paren", "(", true},
		{"dangling quantifier", "*", true},
		{"descending count", "a{3,1}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Errorf("Compile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && re == nil {
				t.Error("Compile() returned nil")
			}
		})
	}
}

// TestMustCompile tests panic on invalid pattern
func TestMustCompile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCompile() did not panic on invalid pattern")
		}
	}()

	MustCompile("(") // Should panic
}

// TestRangeErrorBeforeCompilation tests that a{3,1} fails during parsing,
// before any automaton is built
func TestRangeErrorBeforeCompilation(t *testing.T) {
	_, err := Compile("a{3,1}")
	if err == nil {
		t.Fatal("Compile(a{3,1}) succeeded")
	}
	if !errors.Is(err, syntax.ErrInvalidRange) {
		t.Errorf("Compile(a{3,1}) error = %v, want syntax.ErrInvalidRange", err)
	}
}

// TestMatchWholeInput tests that Match is whole-input acceptance, not a
// containment test
func TestMatchWholeInput(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"exact literal", "hello", "hello", true},
		{"containment is not enough", "hello", "hello world", false},
		{"alternation left", "a|b", "a", true},
		{"alternation right", "a|b", "b", true},
		{"alternation empty", "a|b", "", false},
		{"alternation longer", "a|b", "ab", false},
		{"alternation other", "a|b", "c", false},
		{"plus one", "(a|b)+", "a", true},
		{"plus two", "(a|b)+", "ab", true},
		{"plus three", "(a|b)+", "bba", true},
		{"plus empty", "(a|b)+", "", false},
		{"plus foreign", "(a|b)+", "c", false},
		{"plus trailing foreign", "(a|b)+", "abc", false},
		{"question empty", "a?", "", true},
		{"question one", "a?", "a", true},
		{"question two", "a?", "aa", false},
		{"count low", "a{2,4}", "a", false},
		{"count min", "a{2,4}", "aa", true},
		{"count mid", "a{2,4}", "aaa", true},
		{"count max", "a{2,4}", "aaaa", true},
		{"count high", "a{2,4}", "aaaaa", false},
		{"bracket in range", "[a-d]", "c", true},
		{"bracket out of range", "[a-d]", "e", false},
		{"escaped star", `a\*`, "a*", true},
		{"escaped star no quantifier", `a\*`, "aa", false},
		{"empty pattern empty input", "", "", true},
		{"empty pattern input", "", "a", false},
		{"unicode literal", "héllo", "héllo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			if got := re.MatchString(tt.input); got != tt.want {
				t.Errorf("MatchString(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := re.Match([]byte(tt.input)); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestExactRepetition tests x{n,n} acceptance for a range of n
func TestExactRepetition(t *testing.T) {
	for n := 0; n <= 5; n++ {
		pattern := "x{" + string(rune('0'+n)) + "}"
		re := MustCompile(pattern)
		for length := 0; length <= 7; length++ {
			input := ""
			for i := 0; i < length; i++ {
				input += "x"
			}
			want := length == n
			if got := re.MatchString(input); got != want {
				t.Errorf("%s: MatchString(%d x's) = %v, want %v", pattern, length, got, want)
			}
		}
	}
}

// TestFindAll tests leftmost-longest extraction with deduplication
func TestFindAll(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    []string
	}{
		{"prefers longer at same offset", "a|ab", "aababb", []string{"a", "ab"}},
		{"single hits", "ab", "xabyab", []string{"ab"}},
		{"no match", "ab", "xyz", nil},
		{"greedy run", "a+", "aa b aaa", []string{"aa", "aaa"}},
		{"dedup keeps first", "a|b", "abab", []string{"a", "b"}},
		{"star records empty", "a*", "bab", []string{"", "a"}},
		{"empty haystack star", "a*", "", []string{""}},
		{"empty haystack literal", "a", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			if got := re.FindAllString(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindAllString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestFindAllBytes tests the byte-slice variant
func TestFindAllBytes(t *testing.T) {
	re := MustCompile("a+")
	got := re.FindAll([]byte("xaayaaa"))
	want := [][]byte{[]byte("aa"), []byte("aaa")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAll() = %q, want %q", got, want)
	}

	if re.FindAll([]byte("zzz")) != nil {
		t.Error("FindAll() on non-matching input should be nil")
	}
}

// TestCompileSet tests union combination of a pattern collection
func TestCompileSet(t *testing.T) {
	re, err := CompileSet([]string{"if", "else", "for"})
	if err != nil {
		t.Fatalf("CompileSet() error = %v", err)
	}

	// The combined automaton matches greedy runs of set members.
	for _, input := range []string{"", "if", "else", "iffor", "forforif"} {
		if !re.MatchString(input) {
			t.Errorf("MatchString(%q) = false, want true", input)
		}
	}
	for _, input := range []string{"i", "iff", "els", "x"} {
		if re.MatchString(input) {
			t.Errorf("MatchString(%q) = true, want false", input)
		}
	}

	if got, want := re.String(), "(if|else|for)*"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// TestCompileSetErrors tests set compilation failure modes
func TestCompileSetErrors(t *testing.T) {
	if _, err := CompileSet(nil); !errors.Is(err, ErrEmptySet) {
		t.Errorf("CompileSet(nil) error = %v, want ErrEmptySet", err)
	}

	_, err := CompileSet([]string{"ok", "("})
	if err == nil {
		t.Fatal("CompileSet() with an invalid member succeeded")
	}
	var perr *syntax.ParseError
	if !errors.As(err, &perr) || perr.Pattern != "(" {
		t.Errorf("CompileSet() error = %v, want ParseError naming the bad member", err)
	}
}

// TestStateLimitConfig tests that MaxStates surfaces dfa.ErrTooManyStates
func TestStateLimitConfig(t *testing.T) {
	config := DefaultConfig()
	config.MaxStates = 1

	if _, err := CompileWithConfig("(a|b)*abb", config); !errors.Is(err, dfa.ErrTooManyStates) {
		t.Errorf("CompileWithConfig() error = %v, want dfa.ErrTooManyStates", err)
	}
}

// TestZeroConfig tests that a zero Config falls back to usable limits
func TestZeroConfig(t *testing.T) {
	re, err := CompileWithConfig("a{2,4}", Config{})
	if err != nil {
		t.Fatalf("CompileWithConfig(Config{}) error = %v", err)
	}
	if !re.MatchString("aaa") {
		t.Error("MatchString(aaa) = false, want true")
	}
}

// TestString tests pattern round-trip on the public type
func TestString(t *testing.T) {
	const pattern = "a(b|c)*"
	if got := MustCompile(pattern).String(); got != pattern {
		t.Errorf("String() = %q, want %q", got, pattern)
	}
}
