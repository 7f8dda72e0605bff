package set

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSetDeduplicatesInitialItems(t *testing.T) {
	s := NewSet(1, 2, 2, 3, 1)
	values := s.Values()
	sort.Ints(values)
	require.Equal(t, []int{1, 2, 3}, values)
}

func TestAddAccumulatesAcrossCalls(t *testing.T) {
	s := NewSet[int]()
	s.Add(1, 2)
	s.Add(2, 3)
	values := s.Values()
	sort.Ints(values)
	require.Equal(t, []int{1, 2, 3}, values)
}

func TestValuesOnEmptySetIsEmptyNotNil(t *testing.T) {
	s := NewSet[int]()
	require.NotNil(t, s.Values())
	require.Empty(t, s.Values())
}
