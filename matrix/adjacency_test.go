package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/autonav/core"
	"github.com/katalvlaran/autonav/matrix"
	"github.com/stretchr/testify/require"
)

func TestBuildAdjacency(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	require.NoError(t, g.SetEdge(0, 2, 1.5))

	adj, err := matrix.BuildAdjacency(g)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{inf, inf, 1.5},
		{inf, inf, inf},
		{1.5, inf, inf},
	}, adj.ToRows())

	_, err = matrix.BuildAdjacency(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestBuildAdjacency_FeedsFloydWarshall(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	require.NoError(t, g.SetEdge(0, 1, 1))
	require.NoError(t, g.SetEdge(1, 2, 1))

	adj, err := matrix.BuildAdjacency(g)
	require.NoError(t, err)
	dist, _, err := matrix.FloydWarshall(adj)
	require.NoError(t, err)
	require.Equal(t, 2.0, MustAt(t, dist, 0, 2))
	require.True(t, math.IsInf(MustAt(t, dist, 1, 1), 1))
}
