package dlx

import "time"

// progress tracks, for the search currently in flight, which branch of each
// level's choice point is being explored and how many branches that level
// had in total. Index i corresponds to recursion depth i (the i-th item
// chosen). It is reset at the start of every Search/SearchWith call.
type progress struct {
	choices  []int
	branches []int
	start    time.Time
}

func (n *Network) resetProgress() {
	n.prog = progress{start: time.Now()}
}

// enter records that level is branching over `branches` options, about to
// try the `choice`-th of them (1-based).
func (n *Network) enter(level, choice, branches int) {
	for len(n.prog.choices) <= level {
		n.prog.choices = append(n.prog.choices, 0)
		n.prog.branches = append(n.prog.branches, 0)
	}
	n.prog.choices[level] = choice
	n.prog.branches[level] = branches
}

// leave truncates the progress vectors back to level entries once the
// search backtracks out of it, so a later, shallower ProgressEstimate call
// doesn't see stale depth from a branch that's no longer being explored.
func (n *Network) leave(level int) {
	if len(n.prog.choices) > level {
		n.prog.choices = n.prog.choices[:level]
		n.prog.branches = n.prog.branches[:level]
	}
}

// Progress returns the current depth-indexed (choice, branch-count) vectors
// and the time the in-flight search started. It is meant to be called from
// inside the yield callback passed to Search, to report on a long-running
// search as it progresses.
func (n *Network) Progress() (choices, branches []int, start time.Time) {
	c := make([]int, len(n.prog.choices))
	b := make([]int, len(n.prog.branches))
	copy(c, n.prog.choices)
	copy(b, n.prog.branches)
	return c, b, n.prog.start
}

// ProgressEstimate returns a rough fraction in [0, 1] of the search space
// explored so far, computed from the current (choices, branches) vectors:
// starting from an even 0.5 at the deepest level and folding outward,
// p = (p + choices[i] - 1) / branches[i]. It is a monotonically increasing
// approximation, not an exact count — backtracking search doesn't know the
// total size of the tree in advance.
func (n *Network) ProgressEstimate() float64 {
	return estimateProgress(n.prog.choices, n.prog.branches)
}

func estimateProgress(choices, branches []int) float64 {
	p := 0.5
	for i := len(choices) - 1; i >= 0; i-- {
		if branches[i] == 0 {
			continue
		}
		p = (p + float64(choices[i]-1)) / float64(branches[i])
	}
	return p
}
