package navigation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/autonav/bfs"
	"github.com/katalvlaran/autonav/dijkstra"
	"github.com/katalvlaran/autonav/matrix"
	"go.uber.org/multierr"
)

// verifyTolerance is the relative slack allowed between Floyd–Warshall and
// Dijkstra sums, which add the same weights in different orders.
const verifyTolerance = 1e-9

// Components groups registered nodes by connectivity. Each group lists
// nodes in index order; groups are ordered by their first node. A fully
// connected mission yields exactly one group.
//
// Unlike route queries this reads the graph store directly and works in
// either state.
func (n *Navigation) Components() ([][]NodeID, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	comps, err := bfs.Components(n.graph)
	if err != nil {
		return nil, fmt.Errorf("Components: %w", err)
	}
	out := make([][]NodeID, len(comps))
	for i, comp := range comps {
		out[i] = make([]NodeID, len(comp))
		for j, idx := range comp {
			out[i][j] = n.nodes[idx].ID
		}
	}

	return out, nil
}

// Verify cross-checks the current matrices against the graph store:
//   - D[a][b] must match a single-source Dijkstra from a, for every pair;
//   - every reachable pair must unfold from R into a path of weight D[a][b].
//
// Every disagreement is reported, each wrapping ErrInconsistent.
//
// Errors: ErrStaleQuery, ErrInconsistent.
//
// Complexity: O(n·(V+E) log V + n³).
func (n *Navigation) Verify() error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.requireCurrentLocked("Verify"); err != nil {
		return err
	}
	adj, err := matrix.BuildAdjacency(n.graph)
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}

	var errs error
	size := len(n.nodes)
	for a := 0; a < size; a++ {
		ref, _, err := dijkstra.Dijkstra(n.graph, dijkstra.Source(a))
		if err != nil {
			return fmt.Errorf("Verify: %w", err)
		}
		for b := 0; b < size; b++ {
			if a == b {
				continue
			}
			d, _ := n.dist.At(a, b)
			if !closeEnough(d, ref[b]) {
				errs = multierr.Append(errs, fmt.Errorf("Verify: D[%d][%d]=%g, single-source %g: %w", a, b, d, ref[b], ErrInconsistent))
				continue
			}
			if math.IsInf(d, 1) {
				continue
			}
			path, err := matrix.UnfoldPath(n.dist, n.routes, a, b)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("Verify: path %d->%d: %w: %w", a, b, ErrInconsistent, err))
				continue
			}
			w, err := matrix.PathWeight(adj, path)
			if err != nil || !closeEnough(w, d) {
				errs = multierr.Append(errs, fmt.Errorf("Verify: path %d->%d %v weighs %g, D=%g: %w", a, b, path, w, d, ErrInconsistent))
			}
		}
	}
	if errs == nil {
		n.log.V(1).Info("verified shortest paths", "nodes", size)
	}

	return errs
}

func closeEnough(x, y float64) bool {
	if x == y {
		return true
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}

	return math.Abs(x-y) <= verifyTolerance*math.Max(1, math.Max(math.Abs(x), math.Abs(y)))
}
