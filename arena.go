// Package dlx implements Knuth's Dancing Links technique for solving Exact
// Cover problems: plain exact cover via Algorithm X, and exact cover with
// secondary items and colors via Algorithm C.
//
// The package is a sparse-matrix data structure (the "network") plus a
// backtracking search over it. Nodes live in a single contiguous arena and
// are addressed by integer id rather than by pointer, so that a row's other
// entries can be found by simple id arithmetic (the "spacer" discipline
// described on Node). The network is built once from a matrix and is not
// safe for concurrent search; see Network.Search.
package dlx

// Node is one element of the arena: a header, an option entry, or a spacer,
// distinguished by which fields are meaningful (see the package doc and
// SPEC_FULL.md §3 for the full invariant list).
//
//   - Root sentinel: id 0. Left/Right form the horizontal ring of headers.
//   - Item header: Left/Right link it into the horizontal ring (primary
//     items only); Up/Down link the vertical ring of its column; Size is the
//     ring's length; Name is its printable identity; Color (XCC only) is the
//     color this item has been purified to, or 0 if uncommitted.
//   - Option node: Up/Down link it into its column's vertical ring; Column
//     is its header's id; Color (XCC only) is this entry's color (0 matches
//     any color and is never purified).
//   - Spacer: Column is a non-positive, strictly decreasing serial unique to
//     each spacer; Up is the id of the first node of the previous row (or
//     itself, before any row has been closed); Down is the id of the last
//     node of the next row.
type Node struct {
	Left, Right int
	Up, Down    int
	Column      int
	Size        int
	Name        string
	Color       int
}

// arena is the contiguous, append-only node store. Ids are assigned in
// allocation order starting at 0, and never reused: the arena never
// deletes a node, it only unlinks and relinks them during search.
type arena struct {
	nodes []Node
}

// alloc appends a new, self-looped node and returns its id.
func (a *arena) alloc() int {
	id := len(a.nodes)
	a.nodes = append(a.nodes, Node{Left: id, Right: id, Up: id, Down: id, Column: id})
	return id
}

func (a *arena) at(id int) *Node {
	return &a.nodes[id]
}

// addBelow splices node id onto the bottom of header's vertical ring and
// bumps header's Size.
func (a *arena) addBelow(header, id int) {
	h := a.at(header)
	n := a.at(id)
	n.Column = header
	n.Up = h.Up
	n.Down = header
	a.at(h.Up).Down = id
	h.Up = id
	h.Size++
}

// addRight splices header id into the horizontal ring immediately to the
// right of left.
func (a *arena) addRight(left, id int) {
	l := a.at(left)
	n := a.at(id)
	n.Left = left
	n.Right = l.Right
	a.at(l.Right).Left = id
	l.Right = id
}
