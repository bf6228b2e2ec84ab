package navigation_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/autonav/core"
	"github.com/katalvlaran/autonav/matrix"
	"github.com/katalvlaran/autonav/navigation"
	"github.com/stretchr/testify/require"
)

func TestSetupEdges_Yard(t *testing.T) {
	t.Parallel()

	nav := newNav(t, yardIDs)
	require.NoError(t, nav.SetupEdges(yardDistances))

	require.Equal(t, []core.Edge{
		{X: 0, Y: 1, Weight: 3},
		{X: 0, Y: 3, Weight: 12},
		{X: 0, Y: 4, Weight: 2},
		{X: 1, Y: 2, Weight: 2},
		{X: 1, Y: 3, Weight: 5},
		{X: 1, Y: 4, Weight: 12},
		{X: 3, Y: 4, Weight: 0.5},
	}, nav.Edges())
	require.Equal(t, navigation.StateStale, nav.State())

	// idempotent
	require.NoError(t, nav.SetupEdges(yardDistances))
	require.Len(t, nav.Edges(), 7)
}

func TestSetupEdges_Asymmetric_ReportsEveryPair(t *testing.T) {
	t.Parallel()

	nav := newNav(t, []navigation.NodeID{"a", "b", "c"})
	err := nav.SetupEdges([][]float64{
		{-1, 1, 4},
		{2, -1, 1},
		{5, 1, -1},
	})
	require.ErrorIs(t, err, navigation.ErrAsymmetricInput)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
	require.Contains(t, err.Error(), "[0,1]")
	require.Contains(t, err.Error(), "[0,2]")
	require.NotContains(t, err.Error(), "[1,2]")

	// nothing was applied
	require.Empty(t, nav.Edges())
}

// Negative cells are normalized before the symmetry check: -1 and -5 both
// mean "no edge".
func TestSetupEdges_NegativeCellsAgree(t *testing.T) {
	t.Parallel()

	nav := newNav(t, []navigation.NodeID{"a", "b"})
	require.NoError(t, nav.SetupEdges([][]float64{{-1, -1}, {-5, -1}}))
	require.Empty(t, nav.Edges())
}

func TestSetupEdges_SymmetryTolerance(t *testing.T) {
	t.Parallel()

	in := [][]float64{{-1, 1}, {1.0005, -1}}

	strict := newNav(t, []navigation.NodeID{"a", "b"})
	require.ErrorIs(t, strict.SetupEdges(in), navigation.ErrAsymmetricInput)

	loose := newNav(t, []navigation.NodeID{"a", "b"}, navigation.WithSymmetryTolerance(1e-3))
	require.NoError(t, loose.SetupEdges(in))
	// the lower triangle is authoritative
	require.Equal(t, []core.Edge{{X: 0, Y: 1, Weight: 1.0005}}, loose.Edges())
}

func TestCheckEdges_DoesNotMutate(t *testing.T) {
	t.Parallel()

	empty, err := navigation.New(navigation.WithSymmetryTolerance(1e-3))
	require.NoError(t, err)
	require.NoError(t, empty.CheckEdges([][]float64{{-1, 1}, {1.0005, -1}}), "sized by the matrix, not the registry")
	require.ErrorIs(t, empty.CheckEdges([][]float64{{-1, 1}, {2, -1}}), navigation.ErrAsymmetricInput)
	require.ErrorIs(t, empty.CheckEdges([][]float64{{-1, 1}, {1}}), navigation.ErrDimensionMismatch)
	require.ErrorIs(t, empty.CheckEdges([][]float64{{math.NaN()}}), navigation.ErrBadDistance)
	require.Zero(t, empty.Len())

	nav := newYard(t)
	require.ErrorIs(t, nav.CheckEdges([][]float64{{-1, 1}, {2, -1}}), navigation.ErrAsymmetricInput)
	require.NoError(t, nav.CheckEdges([][]float64{{-1, 4}, {4, -1}}))
	require.Len(t, nav.Edges(), 7)
	require.Equal(t, navigation.StateCurrent, nav.State())
}

func TestSetupEdges_ShapeAndValueErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   [][]float64
		want error
	}{
		{"too few rows", [][]float64{{-1, 1}}, navigation.ErrDimensionMismatch},
		{"ragged row", [][]float64{{-1, 1}, {1}}, navigation.ErrDimensionMismatch},
		{"NaN", [][]float64{{-1, math.NaN()}, {1, -1}}, navigation.ErrBadDistance},
		{"+Inf", [][]float64{{-1, math.Inf(1)}, {math.Inf(1), -1}}, navigation.ErrBadDistance},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			nav := newNav(t, []navigation.NodeID{"a", "b"})
			require.NoError(t, nav.Recompute())
			require.ErrorIs(t, nav.SetupEdges(tc.in), tc.want)
			require.Empty(t, nav.Edges())
			// a rejected matrix does not invalidate
			require.Equal(t, navigation.StateCurrent, nav.State())
		})
	}
}

// SetupEdges adds or replaces; a negative cell never removes an earlier edge.
func TestSetupEdges_Additive(t *testing.T) {
	t.Parallel()

	nav := newNav(t, []navigation.NodeID{"a", "b", "c"})
	require.NoError(t, nav.SetupEdges([][]float64{
		{-1, 1, -1},
		{1, -1, -1},
		{-1, -1, -1},
	}))
	require.NoError(t, nav.SetupEdges([][]float64{
		{-1, -1, -1},
		{-1, -1, 4},
		{-1, 4, -1},
	}))
	require.Equal(t, []core.Edge{
		{X: 0, Y: 1, Weight: 1},
		{X: 1, Y: 2, Weight: 4},
	}, nav.Edges())
}

func TestEdgeEdits(t *testing.T) {
	t.Parallel()

	nav := newYard(t)

	// shortcut shed-pond
	require.NoError(t, nav.SetEdge(2, 3, 1))
	require.Equal(t, navigation.StateStale, nav.State())
	require.NoError(t, nav.Recompute())
	path, err := nav.ShortestPath(2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, path)

	require.NoError(t, nav.RemoveEdge(3, 2))
	require.NoError(t, nav.Recompute())
	path, err = nav.ShortestPath(2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 3}, path)

	require.ErrorIs(t, nav.RemoveEdge(2, 3), core.ErrEdgeNotFound)
	require.ErrorIs(t, nav.SetEdge(0, 9, 1), navigation.ErrIndexOutOfRange)
	require.ErrorIs(t, nav.SetEdge(1, 1, 1), core.ErrLoopNotAllowed)
	require.ErrorIs(t, nav.SetEdge(0, 1, -2), core.ErrBadWeight)
	require.ErrorIs(t, nav.RemoveEdge(-1, 0), navigation.ErrIndexOutOfRange)

	require.NoError(t, nav.ClearEdges())
	require.Empty(t, nav.Edges())
	require.Equal(t, len(yardIDs), nav.Len())
	require.NoError(t, nav.Recompute())
	_, err = nav.ShortestPath(0, 1)
	require.ErrorIs(t, err, navigation.ErrUnreachable)
}
