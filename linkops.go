package dlx

// Cover removes item header's column from horizontal circulation and hides
// every other row that has an entry in this column, so that no later choice
// can reuse this item. Uncover(item) exactly reverses it, provided nothing
// else was linked or unlinked in between.
func (n *Network) Cover(item int) {
	h := n.a.at(item)
	n.a.at(h.Left).Right = h.Right
	n.a.at(h.Right).Left = h.Left

	for row := h.Down; row != item; row = n.a.at(row).Down {
		n.Hide(row)
	}
}

// Uncover restores item and every row hidden by the matching Cover, in the
// reverse order Cover removed them.
func (n *Network) Uncover(item int) {
	h := n.a.at(item)
	for row := h.Up; row != item; row = n.a.at(row).Up {
		n.Unhide(row)
	}
	n.a.at(h.Left).Right = item
	n.a.at(h.Right).Left = item
}

// Hide walks every other entry of the option row containing node and
// unlinks each one from its column's vertical ring, decrementing the
// column's Size. node's own entry is left untouched, since it belongs to
// the column being covered and stays reachable through that column's ring.
// Entries with Color < 0 (marked consistent by an earlier Purify of their
// column) are skipped: they stay linked in their ring.
func (n *Network) Hide(node int) {
	for j := node + 1; j != node; {
		nj := n.a.at(j)
		if nj.Column <= 0 {
			j = nj.Up
			continue
		}
		if nj.Color >= 0 {
			n.unlinkVertical(j)
		}
		j++
	}
}

// Unhide reverses Hide, walking the row backwards so that each splice
// restores the exact vertical neighbors Hide saw.
func (n *Network) Unhide(node int) {
	for j := node - 1; j != node; {
		nj := n.a.at(j)
		if nj.Column <= 0 {
			j = nj.Down
			continue
		}
		if nj.Color >= 0 {
			n.relinkVertical(j)
		}
		j--
	}
}

// unlinkVertical removes node j from its column's vertical ring.
func (n *Network) unlinkVertical(j int) {
	node := n.a.at(j)
	n.a.at(node.Up).Down = node.Down
	n.a.at(node.Down).Up = node.Up
	n.a.at(node.Column).Size--
}

// relinkVertical restores node j to its column's vertical ring. j's own
// Up/Down fields were never modified by unlinkVertical, so they still point
// at the correct neighbors.
func (n *Network) relinkVertical(j int) {
	node := n.a.at(j)
	n.a.at(node.Up).Down = j
	n.a.at(node.Down).Up = j
	n.a.at(node.Column).Size++
}

// Commit records that option node p has taken item column j: if p's entry
// is uncolored (Color == 0) this is exactly Cover(j); if p's entry carries
// a specific color (Color > 0) the column is a secondary item being
// purified to that color rather than removed outright. A negative Color
// means p was already marked consistent by an earlier Purify of the same
// column reached through a different row, so there is nothing left to do.
func (n *Network) Commit(p, j int) {
	switch {
	case n.a.at(p).Color == 0:
		n.Cover(j)
	case n.a.at(p).Color > 0:
		n.Purify(p)
	}
}

// Uncommit reverses Commit(p, j).
func (n *Network) Uncommit(p, j int) {
	switch {
	case n.a.at(p).Color == 0:
		n.Uncover(j)
	case n.a.at(p).Color > 0:
		n.Unpurify(p)
	}
}

// Purify restricts column j = column[p] to p's color c. Every other entry
// q in the column is classified: if q's color also equals c, q is already
// consistent and is marked -1 so later Hide/Unhide passes leave it linked;
// if q's color is 0 it matches any color and is left untouched; otherwise
// q's entire row is hidden (via Hide, not a bare vertical unlink) since
// that row can never be chosen alongside this commitment.
func (n *Network) Purify(p int) {
	j := n.a.at(p).Column
	c := n.a.at(p).Color
	n.a.at(j).Color = c

	for q := n.a.at(j).Down; q != j; q = n.a.at(q).Down {
		switch qc := n.a.at(q).Color; {
		case qc == c:
			n.a.at(q).Color = -1
		case qc == 0:
			// matches anything; never purified
		default:
			n.Hide(q)
		}
	}
}

// Unpurify reverses Purify(p), walking the column in the opposite order:
// entries marked -1 are restored to color c, colorless entries were never
// touched, and every other row is unhidden. Finally the column's
// committed color is cleared back to uncommitted (0).
func (n *Network) Unpurify(p int) {
	j := n.a.at(p).Column
	c := n.a.at(p).Color

	for q := n.a.at(j).Up; q != j; q = n.a.at(q).Up {
		switch qc := n.a.at(q).Color; {
		case qc < 0:
			n.a.at(q).Color = c
		case qc == 0:
			// never touched by Purify
		default:
			n.Unhide(q)
		}
	}
	n.a.at(j).Color = 0
}
