// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/autonav/core"
)

// BuildAdjacency exports a core.Graph into an n×n distance-ready adjacency:
// edge weight where an edge exists, +Inf elsewhere (diagonal included).
//
// Errors:
//   - ErrNilMatrix if g is nil.
//
// Determinism:
//   - Edges are read in sorted (X, Y) order; the output is independent of map order.
//
// Complexity: O(V² + E log E).
func BuildAdjacency(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("BuildAdjacency: %w", ErrNilMatrix)
	}
	n, edges, _ := g.Snapshot()
	adj, err := NewFilledDense(n, n, math.Inf(1))
	if err != nil {
		return nil, fmt.Errorf("BuildAdjacency: %w", err)
	}
	for _, e := range edges {
		adj.data[e.X*n+e.Y] = e.Weight
		adj.data[e.Y*n+e.X] = e.Weight
	}

	return adj, nil
}
