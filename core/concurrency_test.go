// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/autonav/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentSetEdge ensures that concurrent SetEdge calls from a hub
// are safe and all spokes appear.
func TestConcurrentSetEdge(t *testing.T) {
	const num = 200
	g := core.NewGraph(core.WithCapacity(num + 1))
	hub := g.AddVertex()
	spokes := make([]int, num)
	for i := range spokes {
		spokes[i] = g.AddVertex()
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(y int) {
			defer wg.Done()
			require.NoError(t, g.SetEdge(hub, y, float64(y)))
		}(spokes[i])
	}
	wg.Wait()

	nbrs, err := g.Neighbors(hub)
	require.NoError(t, err)
	require.Len(t, nbrs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadWrite mixes writers and readers to surface races under -race.
func TestConcurrentReadWrite(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 10; i++ {
		g.AddVertex()
	}

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(i int) {
			defer wg.Done()
			_ = g.SetEdge(i%10, (i+1)%10, float64(i))
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_ = g.Revision()
		}()
	}
	wg.Wait()

	require.Equal(t, 10, g.EdgeCount())
}
