package matcher

// resolveBranches stable-sorts the alternation list by owning bracket and
// then annotates each bracket with its branch range.
//
// The reference C implementation sorts with a double loop that swaps
// branches[i] with branches[j] (j > i) whenever they're out of order —
// effectively selection sort performed via repeated swaps instead of one
// swap per pass. That is not actually stable in general (a later element
// can hop in front of an equal earlier one on its way to its final slot),
// which contradicts the bracket-resolution invariant this package relies
// on: branches within the same bracket must stay in left-to-right order.
// Since the invariant, not the C loop shape, is the part of the contract
// that matters, this sorts with genuine adjacent swaps (textbook bubble
// sort), which is stable and still the "simple O(n²) adjacent-swap sort"
// called for given the ≤100 bound.
func resolveBranches(a *analysis) {
	for i := 0; i < a.numBranches; i++ {
		for j := 0; j < a.numBranches-1-i; j++ {
			if a.branches[j].bracketIndex > a.branches[j+1].bracketIndex {
				a.branches[j], a.branches[j+1] = a.branches[j+1], a.branches[j]
			}
		}
	}

	j := 0
	for i := 0; i < a.numBrackets; i++ {
		a.brackets[i].numBranches = 0
		a.brackets[i].branches = j
		for j < a.numBranches && a.branches[j].bracketIndex == i {
			a.brackets[i].numBranches++
			j++
		}
	}
}
