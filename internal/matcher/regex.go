// Package matcher is a minimalist regular-expression engine: a single
// pattern compiler plus a recursive backtracking matcher. It supports
// literals, ".", the "^"/"$" anchors, the "\S \s \d" classes plus escaped
// metacharacters, greedy and non-greedy "? + *" quantifiers, and
// "( ... | ... )" grouping with alternation. Character classes ("[...]")
// and Unicode-aware matching are out of scope; classes operate on single
// ASCII-range bytes.
package matcher

// Capture is one parenthesised group's match: a byte offset into the
// subject and a length. Captures are positional, in pattern order (group
// numbering follows the order of the opening "(").
type Capture struct {
	Start  int
	Length int
}

// Result is the outcome of a successful match, including the captures.
type Result struct {
	Start    int
	End      int
	Captures []Capture
}

// Option configures a compiled pattern.
type Option func(*compileOptions)

type compileOptions struct {
	ignoreCase bool
}

// WithIgnoreCase makes literal-byte comparisons case-insensitive (ASCII
// only). The "\S \s \d" classes are not affected. The reference pattern
// struct carries an unused case-insensitivity flag; here it actually does
// something.
func WithIgnoreCase() Option {
	return func(o *compileOptions) { o.ignoreCase = true }
}

// Regexp is a compiled pattern. It holds no mutable state after Compile
// returns, so the same *Regexp can be used concurrently from multiple
// goroutines as long as each call supplies its own capture slice.
type Regexp struct {
	pattern string
	a       *analysis
}

// Compile analyzes pattern and returns a Regexp ready to match against
// subjects. It fails on unbalanced brackets, too many brackets/branches,
// or an empty group "()" — the same failures the Pattern Analyzer
// documents. It does not validate quantifier placement or escape
// validity; those only surface while matching (see Match).
func Compile(pattern string, opts ...Option) (*Regexp, error) {
	var o compileOptions
	for _, opt := range opts {
		opt(&o)
	}
	a, err := analyze([]byte(pattern), o.ignoreCase)
	if err != nil {
		return nil, err
	}
	return &Regexp{pattern: pattern, a: a}, nil
}

// MustCompile is like Compile but panics on error. Meant for patterns
// known valid at init time.
func MustCompile(pattern string, opts ...Option) *Regexp {
	re, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return re
}

// NewRegexMatcher is an alias for Compile, kept for callers built against
// this package's original constructor name.
func NewRegexMatcher(pattern string, opts ...Option) (*Regexp, error) {
	return Compile(pattern, opts...)
}

// String returns the pattern re was compiled from.
func (re *Regexp) String() string {
	return re.pattern
}

// NumCaptures returns the number of capturing groups in the pattern.
func (re *Regexp) NumCaptures() int {
	return re.a.numBrackets - 1
}

// Match is the low-level entry point: it tries the pattern at successive
// subject offsets 0, 1, ..., len(subject)-1 (or only offset 0 if the
// pattern is anchored with "^"), and returns a positive integer one byte
// past the matched region on success, or 0 with a non-nil error on
// failure.
//
// A return of 0 does not by itself distinguish "no match" from a
// zero-length match starting and ending at offset 0 (e.g. the pattern
// "^"): both report 0. Callers that need the distinction should use
// FindSubmatchIndex instead. captures, if non-nil, must have capacity at
// least NumCaptures(); its contents are unspecified after a failed call.
func (re *Regexp) Match(subject []byte, captures []Capture) (int, error) {
	a := re.a
	anchored := len(a.pattern) > 0 && a.pattern[0] == '^'

	result := 0
	lastErr := errNoMatch()

	for i := 0; i < len(subject); i++ {
		n, err := dispatchBranch(a, 0, subject, i, captures)
		if err != nil {
			lastErr = err
		} else {
			lastErr = nil
		}
		if n > 0 || anchored {
			result = n + i
			break
		}
		result = n
	}

	if result <= 0 {
		if lastErr == nil {
			lastErr = errNoMatch()
		}
		return 0, lastErr
	}
	return result, nil
}

// FindSubmatchIndex is the idiomatic counterpart to Match: it reports
// whether a match was found via the bool return instead of relying on
// the return value's built-in zero-length ambiguity, and it returns the
// match's start offset along with its end and captures.
func (re *Regexp) FindSubmatchIndex(subject []byte) (*Result, bool) {
	a := re.a
	anchored := len(a.pattern) > 0 && a.pattern[0] == '^'
	numCaps := re.NumCaptures()

	for i := 0; i < len(subject); i++ {
		caps := make([]Capture, numCaps)
		n, err := dispatchBranch(a, 0, subject, i, caps)
		if err == nil {
			return &Result{Start: i, End: i + n, Captures: caps}, true
		}
		if anchored {
			return nil, false
		}
	}
	return nil, false
}

// Find returns the matched substring, or nil if there is no match.
func (re *Regexp) Find(subject []byte) []byte {
	res, ok := re.FindSubmatchIndex(subject)
	if !ok {
		return nil
	}
	return subject[res.Start:res.End]
}

// FindIndex returns [start, end) of the match, or nil if there is no
// match.
func (re *Regexp) FindIndex(subject []byte) []int {
	res, ok := re.FindSubmatchIndex(subject)
	if !ok {
		return nil
	}
	return []int{res.Start, res.End}
}
