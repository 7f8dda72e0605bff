package dlx

import (
	"sort"
	"strconv"

	"github.com/kpitt/dlx/internal/set"
)

// rootID is the fixed id of the root sentinel, the head of the horizontal
// ring of active primary items.
const rootID = 0

// Network is a built exact-cover matrix: a Node arena plus the metadata
// needed to build, print, and decode solutions against it. A Network is
// built once from a matrix and is mutated in place by Cover/Uncover/
// Hide/Unhide/Commit/Uncommit/Purify/Unpurify and by Search; it is not
// safe for concurrent use, and at most one Search should be driven against
// it at a time (see Search's doc comment).
type Network struct {
	a arena

	primary int // items [0, primary) are primary; [primary, width) secondary
	width   int

	colored    bool
	colorToken map[int]int // dense color id -> original matrix value
	colorID    map[int]int // original matrix value -> dense color id

	prog progress
}

// Primary reports the number of primary items.
func (n *Network) Primary() int { return n.primary }

// Width reports the total number of items (primary + secondary).
func (n *Network) Width() int { return n.width }

// Colored reports whether this network was built from a matrix containing
// color tokens (any value >= 2 in a secondary column).
func (n *Network) Colored() bool { return n.colored }

// Node returns a copy of the arena node for id. Ids are stable for the
// lifetime of the Network: 0 is the root, 1..Width() are the item headers
// in matrix column order, and everything after that is option nodes and
// spacers in the order they were built.
func (n *Network) Node(id int) Node { return *n.a.at(id) }

// Item returns the header id of item index i (0-based column index).
func (n *Network) Item(i int) int { return i + 1 }

// ColorToken translates a dense color id (as stored in Node.Color) back to
// the original matrix value it was assigned from.
func (n *Network) ColorToken(colorID int) (int, bool) {
	v, ok := n.colorToken[colorID]
	return v, ok
}

// RowOf returns every node id belonging to the same option row as node,
// in column order, by walking ids forward until the closing spacer and
// then continuing from the spacer's Up link (the first node of the row),
// exactly as described for the solution format in SPEC_FULL.md §6.
func (n *Network) RowOf(node int) []int {
	end := node
	for n.a.at(end).Column > 0 {
		end++
	}
	start := n.a.at(end).Up
	row := []int{start}
	for id := start + 1; n.a.at(id).Column > 0; id++ {
		row = append(row, id)
	}
	return row
}

// BuildNetwork constructs a Network from matrix. names supplies header
// labels; a missing or empty name at index i is replaced with strconv.Itoa(i).
// primary is the number of leading columns that are primary items; it must
// satisfy 0 <= primary <= width, where width = len(matrix[0]).
//
// Column values are interpreted per SPEC_FULL.md §6: 0 means absent, 1 means
// present (uncolored), and a secondary-column value >= 2 is a color token.
func BuildNetwork(matrix [][]int, names []string, primary int) (*Network, error) {
	if len(matrix) == 0 {
		return nil, buildErrorf("empty matrix")
	}
	width := len(matrix[0])
	if width == 0 {
		return nil, buildErrorf("empty rows")
	}
	for r, row := range matrix {
		if len(row) != width {
			return nil, buildErrorf("ragged row %d: want %d columns, got %d", r, width, len(row))
		}
	}
	if primary < 0 || primary > width {
		return nil, buildErrorf("primary %d out of range [0, %d]", primary, width)
	}

	n := &Network{primary: primary, width: width}
	n.buildColorTable(matrix)

	n.a.alloc() // root, id 0

	headers := make([]int, width)
	left := rootID
	for i := 0; i < width; i++ {
		h := n.a.alloc()
		node := n.a.at(h)
		node.Name = headerName(names, i)
		headers[i] = h
		if i < primary {
			n.a.addRight(left, h)
			left = h
		}
	}

	serial := 0
	first := -1 // first option node of the previous row; -1 means "no previous row"
	for _, row := range matrix {
		spacer := n.a.alloc()
		spNode := n.a.at(spacer)
		spNode.Column = serial
		serial--
		if first == -1 {
			spNode.Up = spacer
		} else {
			spNode.Up = first
		}

		first = -1
		last := spacer
		for c, v := range row {
			if v == 0 {
				continue
			}
			id := n.a.alloc()
			n.a.addBelow(headers[c], id)
			node := n.a.at(id)
			if c >= n.primary && v >= 2 {
				node.Color = n.colorIDFor(v)
			}
			if first == -1 {
				first = id
			}
			last = id
		}
		// Re-fetch: the allocs above may have moved the arena's backing array.
		n.a.at(spacer).Down = last
	}

	closing := n.a.alloc()
	clNode := n.a.at(closing)
	clNode.Column = serial
	if first == -1 {
		clNode.Up = closing
	} else {
		clNode.Up = first
	}

	return n, nil
}

// NewExactCover is a convenience for BuildNetwork(matrix, names, width) —
// a matrix with no secondary items at all.
func NewExactCover(matrix [][]int, names []string) (*Network, error) {
	width := 0
	if len(matrix) > 0 {
		width = len(matrix[0])
	}
	return BuildNetwork(matrix, names, width)
}

func headerName(names []string, i int) string {
	if i < len(names) && names[i] != "" {
		return names[i]
	}
	return strconv.Itoa(i)
}

// buildColorTable scans matrix for secondary-column values >= 2 and
// assigns each distinct value a dense positive color id, in sorted order
// so that ids are deterministic across builds of the same matrix. The
// distinct-value collection reuses the teacher's generic internal/set.Set.
func (n *Network) buildColorTable(matrix [][]int) {
	values := set.NewSet[int]()
	for _, row := range matrix {
		for c := n.primary; c < len(row) && c < n.width; c++ {
			if row[c] >= 2 {
				values.Add(row[c])
			}
		}
	}

	distinct := values.Values()
	sort.Ints(distinct)

	n.colored = len(distinct) > 0
	n.colorToken = make(map[int]int, len(distinct))
	n.colorID = make(map[int]int, len(distinct))
	for i, v := range distinct {
		n.colorToken[i+1] = v
		n.colorID[v] = i + 1
	}
}

// colorIDFor returns the dense color id assigned to raw matrix value v.
func (n *Network) colorIDFor(v int) int {
	return n.colorID[v]
}
