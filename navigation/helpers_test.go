package navigation_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/autonav/navigation"
	"github.com/stretchr/testify/require"
)

var inf = math.Inf(1)

// yardIDs and yardDistances describe the five-waypoint yard
// (row = y, col = x, -1 = no direct edge).
var (
	yardIDs = []navigation.NodeID{"dock", "gate", "shed", "pond", "barn"}

	yardDistances = [][]float64{
		{-1, 3, -1, 12, 2},
		{3, -1, 2, 5, 12},
		{-1, 2, -1, -1, -1},
		{12, 5, -1, -1, 0.5},
		{2, 12, -1, 0.5, -1},
	}
)

// newNav registers ids in order and fails the test on any error.
func newNav(t *testing.T, ids []navigation.NodeID, opts ...navigation.Option) *navigation.Navigation {
	t.Helper()

	nav, err := navigation.New(opts...)
	require.NoError(t, err)
	for i, id := range ids {
		idx, err := nav.AddNode(navigation.Node{ID: id})
		require.NoError(t, err)
		require.Equal(t, i, idx)
	}

	return nav
}

// newYard returns the yard with edges set up and matrices current.
func newYard(t *testing.T, opts ...navigation.Option) *navigation.Navigation {
	t.Helper()

	nav := newNav(t, yardIDs, opts...)
	require.NoError(t, nav.SetupEdges(yardDistances))
	require.NoError(t, nav.Recompute())

	return nav
}

// randomDistances builds a symmetric "-1 = no edge" matrix of order n with
// dyadic weights, so every path sum is exact.
func randomDistances(rng *rand.Rand, n int, p float64) [][]float64 {
	out := make([][]float64, n)
	for y := range out {
		out[y] = make([]float64, n)
		for x := range out[y] {
			out[y][x] = -1
		}
	}
	for y := 0; y < n; y++ {
		for x := y + 1; x < n; x++ {
			if rng.Float64() >= p {
				continue
			}
			w := float64(rng.Intn(40)) / 4
			out[y][x], out[x][y] = w, w
		}
	}

	return out
}

func seqIDs(n int) []navigation.NodeID {
	ids := make([]navigation.NodeID, n)
	for i := range ids {
		ids[i] = navigation.NodeID(fmt.Sprintf("wp%02d", i))
	}

	return ids
}

// pathWeight sums edge weights along path using the Navigation's own edge set.
func pathWeight(t *testing.T, nav *navigation.Navigation, path []int) float64 {
	t.Helper()

	weights := make(map[[2]int]float64)
	for _, e := range nav.Edges() {
		weights[[2]int{e.X, e.Y}] = e.Weight
	}

	var sum float64
	for i := 0; i+1 < len(path); i++ {
		x, y := path[i], path[i+1]
		if x > y {
			x, y = y, x
		}
		w, ok := weights[[2]int{x, y}]
		require.True(t, ok, "no edge %d-%d on path %v", x, y, path)
		sum += w
	}

	return sum
}
