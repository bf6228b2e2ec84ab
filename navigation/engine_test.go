package navigation_test

import (
	"math"
	"math/rand"
	"slices"
	"sync"
	"testing"

	"github.com/katalvlaran/autonav/navigation"
	"github.com/stretchr/testify/require"
)

func TestRecompute_Yard(t *testing.T) {
	t.Parallel()

	nav := newYard(t)
	require.Equal(t, navigation.StateCurrent, nav.State())

	d, err := nav.Distances()
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{inf, 3, 5, 2.5, 2},
		{3, inf, 2, 5, 5},
		{5, 2, inf, 7, 7},
		{2.5, 5, 7, inf, 0.5},
		{2, 5, 7, 0.5, inf},
	}, d)

	r, err := nav.Routes()
	require.NoError(t, err)
	require.Equal(t, [][]int{
		{0, 1, 1, 4, 4},
		{0, 1, 2, 3, 0},
		{1, 1, 2, 1, 1},
		{4, 1, 1, 3, 4},
		{0, 0, 1, 3, 4},
	}, r)

	// copies: editing them does not reach the engine
	d[0][1] = -7
	r[0][1] = 99
	got, err := nav.Distance(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, got)
	r2, _ := nav.Routes()
	require.Equal(t, 1, r2[0][1])
}

func TestShortestPath_Yard(t *testing.T) {
	t.Parallel()

	nav := newYard(t)

	tests := []struct {
		name   string
		a, b   int
		want   []int
		weight float64
	}{
		{"self", 3, 3, []int{3}, 0},
		{"direct", 0, 1, []int{0, 1}, 3},
		{"via gate", 0, 2, []int{0, 1, 2}, 5},
		{"via barn", 0, 3, []int{0, 4, 3}, 2.5},
		{"shed to pond", 2, 3, []int{2, 1, 3}, 7},
		{"pond to shed", 3, 2, []int{3, 1, 2}, 7},
		{"barn to shed", 4, 2, []int{4, 0, 1, 2}, 7},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path, err := nav.ShortestPath(tc.a, tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.want, path)
			require.Equal(t, tc.weight, pathWeight(t, nav, path))
		})
	}
}

func TestShortestPath_Errors(t *testing.T) {
	t.Parallel()

	nav := newNav(t, []navigation.NodeID{"a", "b", "c", "d"})
	_, err := nav.ShortestPath(0, 1)
	require.ErrorIs(t, err, navigation.ErrStaleQuery)
	_, err = nav.Distance(0, 1)
	require.ErrorIs(t, err, navigation.ErrStaleQuery)
	_, err = nav.Distances()
	require.ErrorIs(t, err, navigation.ErrStaleQuery)
	_, err = nav.Routes()
	require.ErrorIs(t, err, navigation.ErrStaleQuery)

	// {a,b} and {c,d} are disjoint
	require.NoError(t, nav.SetupEdges([][]float64{
		{-1, 1, -1, -1},
		{1, -1, -1, -1},
		{-1, -1, -1, 2},
		{-1, -1, 2, -1},
	}))
	require.NoError(t, nav.Recompute())

	_, err = nav.ShortestPath(0, 3)
	require.ErrorIs(t, err, navigation.ErrUnreachable)
	_, err = nav.ShortestPath(3, 1)
	require.ErrorIs(t, err, navigation.ErrUnreachable)
	d, err := nav.Distance(1, 2)
	require.NoError(t, err)
	require.True(t, math.IsInf(d, 1))

	_, err = nav.ShortestPath(-1, 0)
	require.ErrorIs(t, err, navigation.ErrIndexOutOfRange)
	_, err = nav.ShortestPath(0, 4)
	require.ErrorIs(t, err, navigation.ErrIndexOutOfRange)
	_, err = nav.Distance(4, 0)
	require.ErrorIs(t, err, navigation.ErrIndexOutOfRange)

	// a == b is answered even for an isolated pair member
	path, err := nav.ShortestPath(2, 2)
	require.NoError(t, err)
	require.Equal(t, []int{2}, path)
}

// Every mutation kind moves a current engine back to stale.
func TestStaleness_AfterEveryMutation(t *testing.T) {
	t.Parallel()

	mutations := map[string]func(*navigation.Navigation) error{
		"AddNode": func(n *navigation.Navigation) error {
			_, err := n.AddNode(navigation.Node{ID: "silo"})
			return err
		},
		"SetupEdges": func(n *navigation.Navigation) error { return n.SetupEdges(yardDistances) },
		"SetEdge":    func(n *navigation.Navigation) error { return n.SetEdge(2, 4, 1) },
		"RemoveEdge": func(n *navigation.Navigation) error { return n.RemoveEdge(0, 1) },
		"ClearEdges": func(n *navigation.Navigation) error { return n.ClearEdges() },
	}
	for name, mutate := range mutations {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			nav := newYard(t)
			require.NoError(t, mutate(nav))
			require.Equal(t, navigation.StateStale, nav.State())
			_, err := nav.ShortestPath(0, 1)
			require.ErrorIs(t, err, navigation.ErrStaleQuery)
		})
	}
}

func TestEagerRecompute_NeverStale(t *testing.T) {
	t.Parallel()

	nav := newNav(t, yardIDs, navigation.WithEagerRecompute())
	require.Equal(t, navigation.StateCurrent, nav.State())

	require.NoError(t, nav.SetupEdges(yardDistances))
	require.Equal(t, navigation.StateCurrent, nav.State())
	path, err := nav.ShortestPath(2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 3}, path)

	require.NoError(t, nav.SetEdge(2, 3, 1))
	path, err = nav.ShortestPath(2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, path)
}

func TestRecompute_Idempotent(t *testing.T) {
	t.Parallel()

	nav := newYard(t)
	d1, _ := nav.Distances()
	r1, _ := nav.Routes()

	require.NoError(t, nav.Recompute())
	d2, _ := nav.Distances()
	r2, _ := nav.Routes()

	require.Equal(t, d1, d2)
	require.Equal(t, r1, r2)
}

func TestRoute_ByID(t *testing.T) {
	t.Parallel()

	nav := newYard(t)

	r, err := nav.Route("shed", "pond")
	require.NoError(t, err)
	require.Equal(t, []navigation.NodeID{"shed", "gate", "pond"}, r.IDs())
	require.Equal(t, []int{2, 1, 3}, r.Indices)
	require.Equal(t, 7.0, r.Distance)

	r, err = nav.Route("barn", "barn")
	require.NoError(t, err)
	require.Equal(t, []navigation.NodeID{"barn"}, r.IDs())
	require.Zero(t, r.Distance)

	_, err = nav.Route("barn", "mill")
	require.ErrorIs(t, err, navigation.ErrNodeNotFound)
	_, err = nav.Route("mill", "barn")
	require.ErrorIs(t, err, navigation.ErrNodeNotFound)
}

// Random graphs: D is symmetric with +Inf diagonal, every reconstructed
// path is simple, starts and ends where asked, weighs exactly D[a][b], and
// the reversed query weighs the same.
func TestShortestPath_RandomProperties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(14)
		nav := newNav(t, seqIDs(n))
		require.NoError(t, nav.SetupEdges(randomDistances(rng, n, 0.35)))
		require.NoError(t, nav.Recompute())

		d, err := nav.Distances()
		require.NoError(t, err)

		for a := 0; a < n; a++ {
			require.True(t, math.IsInf(d[a][a], 1))
			for b := 0; b < n; b++ {
				require.Equal(t, d[a][b], d[b][a])
				if a == b {
					continue
				}

				path, err := nav.ShortestPath(a, b)
				if math.IsInf(d[a][b], 1) {
					require.ErrorIs(t, err, navigation.ErrUnreachable)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, a, path[0])
				require.Equal(t, b, path[len(path)-1])
				require.LessOrEqual(t, len(path), n)

				seen := slices.Clone(path)
				slices.Sort(seen)
				require.Len(t, slices.Compact(seen), len(path), "path %v revisits a node", path)

				require.Equal(t, d[a][b], pathWeight(t, nav, path))

				back, err := nav.ShortestPath(b, a)
				require.NoError(t, err)
				require.Equal(t, d[a][b], pathWeight(t, nav, back))
			}
		}

		// no direct edge beats the computed distance
		for _, e := range nav.Edges() {
			require.LessOrEqual(t, d[e.X][e.Y], e.Weight)
		}
	}
}

func TestNavigation_ConcurrentQueriesAndEdits(t *testing.T) {
	t.Parallel()

	nav := newYard(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				path, err := nav.ShortestPath(i%5, (i+j)%5)
				if err == nil {
					require.NotEmpty(t, path)
				}
				_ = nav.State()
			}
		}(i)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			_ = nav.SetEdge(2, 4, float64(j%7+1))
			_ = nav.Recompute()
		}
	}()
	wg.Wait()

	require.NoError(t, nav.Recompute())
	require.Equal(t, navigation.StateCurrent, nav.State())
}
