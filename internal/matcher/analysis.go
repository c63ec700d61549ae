package matcher

// Fixed capacities are part of the contract, not an implementation
// detail: a pattern that needs more brackets or branches than this must
// fail with a specific error, the same as it would against the reference
// C implementation's MAX_BRACKETS / MAX_BRANCHES arrays.
const (
	maxBrackets = 100
	maxBranches = 100
)

// bracketPair describes one "(" ... ")" span, or the implicit outermost
// pair covering the whole pattern (index 0).
type bracketPair struct {
	ptr         int // offset in pattern of the first byte after "("
	len         int // byte length between matching "(" and ")"; -1 while open
	branches    int // index into analysis.branches where this pair's alternatives begin
	numBranches int // count of "|" directly inside this pair
}

// branch describes one "|" and the bracket pair it belongs to.
type branch struct {
	bracketIndex int
	offset       int // offset in pattern of the "|"
}

// analysis is the output of scanning a pattern: bracket/branch tables plus
// the compile-time options that affect matching. It is read-only once
// built, so a *Regexp built from it is safe to use from multiple
// goroutines concurrently (see internal/batch).
type analysis struct {
	pattern []byte

	brackets    [maxBrackets]bracketPair
	numBrackets int

	branches    [maxBranches]branch
	numBranches int

	// openBracket maps the absolute pattern offset of a "(" to the
	// bracket index it was assigned. Looked up by the matcher instead of
	// threading a mutable "next bracket" cursor through recursive calls,
	// which is what the reference implementation does and which breaks
	// the moment the same group is visited more than once (e.g. under a
	// quantifier).
	openBracket map[int]int

	ignoreCase bool
}

// analyze performs the one-pass scan over pattern: records bracket-pair
// spans and alternation points, and validates bracket balance. It does
// not validate quantifier placement or escape validity — those surface
// later, when the matcher actually reaches that atom, mirroring the
// reference implementation where the equivalent checks live in the
// matching routine, not the pre-pass.
func analyze(pattern []byte, ignoreCase bool) (*analysis, error) {
	a := &analysis{
		pattern:     pattern,
		ignoreCase:  ignoreCase,
		openBracket: make(map[int]int),
	}

	a.brackets[0] = bracketPair{ptr: 0, len: len(pattern)}
	a.numBrackets = 1

	depth := 0
	var open []int // indices of brackets still waiting for their ")"
	for i := 0; i < len(pattern); {
		step := atomStep(pattern, i)

		switch pattern[i] {
		case '|':
			if a.numBranches >= maxBranches {
				return nil, errTooManyBranches()
			}
			bi := 0
			if depth > 0 {
				bi = open[depth-1]
			}
			a.branches[a.numBranches] = branch{bracketIndex: bi, offset: i}
			a.numBranches++

		case '(':
			if a.numBrackets >= maxBrackets {
				return nil, errTooManyBrackets()
			}
			depth++
			idx := a.numBrackets
			a.brackets[idx] = bracketPair{ptr: i + 1, len: -1}
			a.numBrackets++
			a.openBracket[i] = idx
			open = append(open, idx)

		case ')':
			ind := 0
			if depth > 0 {
				ind = open[depth-1]
				open = open[:depth-1]
			}
			a.brackets[ind].len = i - a.brackets[ind].ptr
			depth--
			if depth < 0 {
				return nil, errUnbalancedBrackets()
			}
			if i > 0 && pattern[i-1] == '(' {
				return nil, errNoMatch()
			}
		}

		i += step
	}

	if depth != 0 {
		return nil, errUnbalancedBrackets()
	}

	resolveBranches(a)
	return a, nil
}
