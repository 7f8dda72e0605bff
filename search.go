package dlx

import "iter"

// Solution is a completed exact cover: the option-row ids chosen, in the
// order Search committed to them. Pass an entry to RowOf to recover the
// matrix columns it covers.
type Solution = []int

// Search drives Algorithm X/C over n using MRV to choose the next item at
// each step, yielding one Solution per exact cover found. It is a thin
// wrapper around SearchWith(MRV).
//
// Search mutates n in place as it runs, but every level unwinds its own
// Cover/Commit before propagating a stop: stopping the range early (the
// loop body returning, or a yield returning false) still leaves n fully
// restored to its pre-search state, so the same Network can be searched
// again without rebuilding.
func (n *Network) Search() iter.Seq[Solution] {
	return n.SearchWith(MRV)
}

// SearchWith is Search with the item-choice heuristic replaced by choose.
func (n *Network) SearchWith(choose func(*Network) int) iter.Seq[Solution] {
	return func(yield func(Solution) bool) {
		n.resetProgress()
		sol := make(Solution, 0, n.width)
		n.search(choose, &sol, 0, yield)
	}
}

// search implements Knuth's Algorithm X/C recursively: choose an item,
// try each of its options in turn, and recurse on what remains. It returns
// false the instant a yield call asks for the search to stop, so every
// caller on the stack can unwind via Cover/Uncover without trying further
// options.
func (n *Network) search(choose func(*Network) int, sol *Solution, level int, yield func(Solution) bool) bool {
	if n.a.at(rootID).Right == rootID {
		out := make(Solution, len(*sol))
		copy(out, *sol)
		return yield(out)
	}

	item := choose(n)
	branches := n.a.at(item).Size
	n.Cover(item)

	choiceIdx := 0
	for row := n.a.at(item).Down; row != item; row = n.a.at(row).Down {
		choiceIdx++
		n.enter(level, choiceIdx, branches)

		*sol = append(*sol, row)
		n.commitRow(row)

		cont := n.search(choose, sol, level+1, yield)

		n.uncommitRow(row)
		*sol = (*sol)[:len(*sol)-1]

		if !cont {
			n.Uncover(item)
			return false
		}
	}

	n.leave(level)
	n.Uncover(item)
	return true
}

// commitRow commits every entry of the option row containing node other
// than node itself, left to right, mirroring the row-walk Hide uses.
func (n *Network) commitRow(node int) {
	for j := node + 1; j != node; {
		nj := n.a.at(j)
		if nj.Column <= 0 {
			j = nj.Up
			continue
		}
		n.Commit(j, nj.Column)
		j++
	}
}

// uncommitRow reverses commitRow, walking right to left so each Uncommit
// call sees the state its matching Commit call left behind.
func (n *Network) uncommitRow(node int) {
	for j := node - 1; j != node; {
		nj := n.a.at(j)
		if nj.Column <= 0 {
			j = nj.Down
			continue
		}
		n.Uncommit(j, nj.Column)
		j--
	}
}
