package arbitrator

import "github.com/aosen/ik/lexeme"

// Mode selects how a cross-group of overlapping lexemes is resolved.
type Mode int

const (
	// Index keeps every cross-group as-is: maximum recall, overlaps intact.
	Index Mode = iota
	// Search resolves each multi-lexeme cross-group to its single best
	// non-overlapping path.
	Search
)

// Process partitions the sorted candidate list into maximal overlap
// (cross) groups and resolves each one, returning a map keyed by each
// resolved path's Begin.
func Process(candidates []lexeme.Lexeme, mode Mode) map[int]*Path {
	paths := make(map[int]*Path)
	cross := New()
	for _, l := range candidates {
		if !cross.AddCross(l) {
			resolved := resolve(cross, mode)
			paths[resolved.Begin] = resolved
			cross = New()
			cross.AddCross(l)
		}
	}
	if !cross.Empty() {
		resolved := resolve(cross, mode)
		paths[resolved.Begin] = resolved
	}
	return paths
}

func resolve(cross Path, mode Mode) *Path {
	if cross.Size() == 1 || mode == Index {
		c := cross
		return &c
	}
	return judge(cross.Lexemes)
}

// judge enumerates disambiguation options for a cross-group of overlapping
// lexemes via forward/backtrack search and returns the best one under the
// path comparator.
//
// The initial forward pass walks the group from the start, greedily taking
// every lexeme that doesn't cross what's already in option (the group is
// sorted begin-asc/length-desc, so this greedily prefers earlier, longer
// lexemes) and collecting the ones it had to skip as conflicts. Each
// conflict is then replayed, most-recently-seen first: back out of option
// whatever crosses the conflict, then walk forward again from the conflict
// point, continuing to mutate the same option in place rather than
// starting fresh — so later replays build on earlier ones. Every
// intermediate option is a candidate; ties are broken in favor of the
// first candidate found (see DESIGN.md — this mirrors BTreeSet::insert's
// discard-on-duplicate-key behavior in the original).
func judge(group []lexeme.Lexeme) *Path {
	option := New()
	conflicts := forwardAppend(group, 0, &option)
	best := option.Clone()

	for i := len(conflicts) - 1; i >= 0; i-- {
		c := conflicts[i]
		backward(group[c], &option)
		forwardAppend(group, c, &option)
		candidate := option.Clone()
		if compare(&candidate, &best) < 0 {
			best = candidate
		}
	}
	return &best
}

// forwardAppend tries to add group[startIdx:] to path via AddNotCross,
// returning the indices that failed to add (in ascending order).
func forwardAppend(group []lexeme.Lexeme, startIdx int, path *Path) []int {
	var conflicts []int
	for i := startIdx; i < len(group); i++ {
		if !path.AddNotCross(group[i]) {
			conflicts = append(conflicts, i)
		}
	}
	return conflicts
}

// backward pops path's tail while it crosses l.
func backward(l lexeme.Lexeme, path *Path) {
	for path.CheckCross(l) {
		if _, ok := path.RemoveTail(); !ok {
			break
		}
	}
}
