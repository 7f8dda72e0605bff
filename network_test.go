package dlx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildNetworkRejectsEmptyMatrix(t *testing.T) {
	_, err := BuildNetwork(nil, nil, 0)
	require.Error(t, err)

	var be *BuildError
	require.ErrorAs(t, err, &be)
}

func TestBuildNetworkRejectsRaggedRows(t *testing.T) {
	_, err := BuildNetwork([][]int{{1, 1, 0}, {1, 0}}, nil, 3)
	require.Error(t, err)
}

func TestBuildNetworkRejectsPrimaryOutOfRange(t *testing.T) {
	_, err := BuildNetwork([][]int{{1, 1}}, nil, 3)
	require.Error(t, err)

	_, err = BuildNetwork([][]int{{1, 1}}, nil, -1)
	require.Error(t, err)
}

func TestBuildNetworkHeaderNamesDefaultToIndex(t *testing.T) {
	n, err := NewExactCover([][]int{{1, 0}}, []string{"A"})
	require.NoError(t, err)

	require.Equal(t, "A", n.Node(n.Item(0)).Name)
	require.Equal(t, "1", n.Node(n.Item(1)).Name)
}

func TestBuildNetworkCountsColumnSizes(t *testing.T) {
	matrix := [][]int{
		{1, 0, 0, 1, 0, 0, 1},
		{1, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 1},
		{0, 0, 1, 0, 1, 1, 0},
		{0, 1, 1, 0, 0, 1, 1},
		{0, 1, 0, 0, 0, 0, 1},
	}
	n, err := NewExactCover(matrix, nil)
	require.NoError(t, err)
	require.Equal(t, 7, n.Width())
	require.Equal(t, 7, n.Primary())

	// Column sizes: count of 1s in each column.
	want := []int{2, 2, 2, 3, 2, 2, 4}
	for c := 0; c < 7; c++ {
		require.Equal(t, want[c], n.Node(n.Item(c)).Size, "column %d", c)
	}
}
