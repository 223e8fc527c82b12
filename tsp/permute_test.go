package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplan/tsp"
)

func TestNextPermutation_LexicographicOrder(t *testing.T) {
	p := []int{1, 2, 3}
	got := [][]int{append([]int(nil), p...)}
	for tsp.NextPermutation(p) {
		got = append(got, append([]int(nil), p...))
	}

	require.Equal(t, [][]int{
		{1, 2, 3}, {1, 3, 2},
		{2, 1, 3}, {2, 3, 1},
		{3, 1, 2}, {3, 2, 1},
	}, got)
	// Exhausted permutation stays in its last arrangement.
	require.Equal(t, []int{3, 2, 1}, p)
}

func TestNextPermutation_Degenerate(t *testing.T) {
	require.False(t, tsp.NextPermutation(nil))
	require.False(t, tsp.NextPermutation([]int{4}))

	p := []int{0, 1}
	require.True(t, tsp.NextPermutation(p))
	require.Equal(t, []int{1, 0}, p)
	require.False(t, tsp.NextPermutation(p))
}

func TestNextPermutation_Count(t *testing.T) {
	p := []int{0, 1, 2, 3, 4, 5}
	count := 1
	for tsp.NextPermutation(p) {
		count++
	}
	require.Equal(t, 720, count)
}

func TestSearchSpace(t *testing.T) {
	cases := []struct {
		n    int
		want int64
		ok   bool
	}{
		{0, 0, false},
		{1, 0, false},
		{2, 1, true},
		{3, 2, true},
		{4, 6, true},
		{10, 362880, true},
		{21, 2432902008176640000, true},
		{22, 0, false},
	}
	for _, tc := range cases {
		got, ok := tsp.SearchSpace(tc.n)
		require.Equal(t, tc.ok, ok, "n=%d", tc.n)
		require.Equal(t, tc.want, got, "n=%d", tc.n)
	}
}
