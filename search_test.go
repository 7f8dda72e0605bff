package dlx

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// itemsCoveredBy returns the sorted set of item names covered by a
// solution, used to check exact-cover validity without depending on
// internal node ids.
func itemsCoveredBy(n *Network, sol Solution) []string {
	var names []string
	for _, entry := range sol {
		for _, id := range n.RowOf(entry) {
			names = append(names, n.Node(n.Node(id).Column).Name)
		}
	}
	sort.Strings(names)
	return names
}

func TestSearchFindsAllExactCovers(t *testing.T) {
	// R2 covers every column alone; the columns can also be split two
	// ways (R0+R1 and R3+R4).
	names := []string{"1", "2", "3", "4"}
	matrix := [][]int{
		{1, 1, 0, 0}, // R0
		{0, 0, 1, 1}, // R1
		{1, 1, 1, 1}, // R2 (covers everything alone)
		{1, 0, 0, 0}, // R3
		{0, 1, 1, 1}, // R4
	}
	n, err := NewExactCover(matrix, names)
	require.NoError(t, err)

	var solutions [][]string
	for sol := range n.Search() {
		solutions = append(solutions, itemsCoveredBy(n, sol))
	}

	require.Len(t, solutions, 3)
	for _, covered := range solutions {
		require.Equal(t, []string{"1", "2", "3", "4"}, covered)
	}
}

func TestSearchStopsWhenYieldReturnsFalse(t *testing.T) {
	matrix := [][]int{
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{1, 1, 1, 1},
		{1, 0, 0, 0},
		{0, 1, 1, 1},
	}
	n, err := NewExactCover(matrix, nil)
	require.NoError(t, err)

	count := 0
	for range n.Search() {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestSearchEarlyTerminationRestoresNetwork(t *testing.T) {
	matrix := [][]int{
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{1, 1, 1, 1},
		{1, 0, 0, 0},
		{0, 1, 1, 1},
	}
	n, err := NewExactCover(matrix, nil)
	require.NoError(t, err)
	before := snapshot(n)

	for range n.Search() {
		break // stop after the first solution, well before exhaustion
	}
	require.Equal(t, before, snapshot(n))

	// The network must be searchable again, not just structurally intact.
	var solutions [][]string
	for sol := range n.Search() {
		solutions = append(solutions, itemsCoveredBy(n, sol))
	}
	require.Len(t, solutions, 3)
}

func TestSearchNoSolutionYieldsNothing(t *testing.T) {
	// Column 0 is never covered by anything.
	matrix := [][]int{
		{0, 1},
		{0, 1},
	}
	n, err := NewExactCover(matrix, nil)
	require.NoError(t, err)

	count := 0
	for range n.Search() {
		count++
	}
	require.Equal(t, 0, count)
}

func TestSearchXCCRespectsColorConsistency(t *testing.T) {
	// Two primary items A, B; one secondary, colored item X.
	// Row 0: A=1,      X=2
	// Row 1:      B=1, X=2   -- agrees with row 0's color
	// Row 2:      B=1, X=3   -- conflicts with row 0's color
	// Row 3: A=1, B=1         -- doesn't touch X at all
	//
	// Valid exact covers over {A, B}: {row0, row1} (consistent color 2),
	// and {row3} alone. {row0, row2} must NOT appear: conflicting colors.
	matrix := [][]int{
		{1, 0, 2},
		{0, 1, 2},
		{0, 1, 3},
		{1, 1, 0},
	}
	n, err := BuildNetwork(matrix, []string{"A", "B", "X"}, 2)
	require.NoError(t, err)

	var solutions [][]string
	for sol := range n.Search() {
		solutions = append(solutions, itemsCoveredBy(n, sol))
	}

	require.Len(t, solutions, 2)
	for _, covered := range solutions {
		require.Subset(t, []string{"A", "B", "X"}, covered)
		require.Contains(t, covered, "A")
		require.Contains(t, covered, "B")
	}
}
