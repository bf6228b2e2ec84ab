package navigation

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/autonav/matrix"
)

// Recompute runs Floyd–Warshall over the current edge set and moves the
// engine to StateCurrent. It is deterministic: with no intervening
// mutation, repeated calls produce bitwise-identical matrices.
//
// Complexity: O(n³) time, O(n²) memory.
func (n *Navigation) Recompute() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.recomputeLocked()
}

func (n *Navigation) recomputeLocked() error {
	start := time.Now()

	adj, err := matrix.BuildAdjacency(n.graph)
	if err != nil {
		return fmt.Errorf("Recompute: %w", err)
	}
	dist, routes, err := matrix.FloydWarshall(adj)
	if err != nil {
		return fmt.Errorf("Recompute: %w", err)
	}

	n.dist, n.routes = dist, routes
	n.revision = n.graph.Revision()
	n.state = StateCurrent

	elapsed := time.Since(start)
	n.metrics.observeRecompute(elapsed)
	n.log.V(1).Info("recomputed shortest paths",
		"nodes", len(n.nodes), "edges", n.graph.EdgeCount(), "revision", n.revision, "took", elapsed)

	return nil
}

// State reports whether the matrices reflect the current edge set.
func (n *Navigation) State() State {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.stateLocked()
}

// stateLocked double-checks the flag against the graph revision, so an
// edit that bypassed mutatedLocked can never be served as current.
func (n *Navigation) stateLocked() State {
	if n.state == StateCurrent && n.revision == n.graph.Revision() {
		return StateCurrent
	}

	return StateStale
}

func (n *Navigation) requireCurrentLocked(op string) error {
	if n.stateLocked() != StateCurrent {
		return fmt.Errorf("%s: %w", op, ErrStaleQuery)
	}

	return nil
}

// Distance returns D[a][b]: the shortest known distance between indices a
// and b, +Inf when unreachable and for a == b.
//
// Errors: ErrStaleQuery, ErrIndexOutOfRange.
func (n *Navigation) Distance(a, b int) (float64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.requireCurrentLocked("Distance"); err != nil {
		return 0, err
	}
	if err := n.checkIndexLocked(a); err != nil {
		return 0, fmt.Errorf("Distance: %w", err)
	}
	if err := n.checkIndexLocked(b); err != nil {
		return 0, fmt.Errorf("Distance: %w", err)
	}
	d, _ := n.dist.At(a, b) // in range after index checks

	return d, nil
}

// Distances returns a copy of the distance matrix D.
//
// Errors: ErrStaleQuery.
func (n *Navigation) Distances() ([][]float64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.requireCurrentLocked("Distances"); err != nil {
		return nil, err
	}

	return n.dist.ToRows(), nil
}

// Routes returns a copy of the route matrix R.
//
// Errors: ErrStaleQuery.
func (n *Navigation) Routes() ([][]int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.requireCurrentLocked("Routes"); err != nil {
		return nil, err
	}

	return n.routes.ToRows(), nil
}

// ShortestPath returns the indices of the shortest a→b path, both
// endpoints inclusive. a == b yields [a].
//
// Errors:
//   - ErrStaleQuery: matrices predate the current edge set.
//   - ErrIndexOutOfRange: a or b is not a registered index.
//   - ErrUnreachable: D[a][b] is +Inf.
//
// Complexity: O(n).
func (n *Navigation) ShortestPath(a, b int) ([]int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	path, err := n.shortestPathLocked(a, b)
	n.metrics.observeQuery(err)

	return path, err
}

func (n *Navigation) shortestPathLocked(a, b int) ([]int, error) {
	const op = "ShortestPath"
	if err := n.requireCurrentLocked(op); err != nil {
		return nil, err
	}
	if err := n.checkIndexLocked(a); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := n.checkIndexLocked(b); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if a == b {
		return []int{a}, nil
	}
	if d, _ := n.dist.At(a, b); math.IsInf(d, 1) {
		return nil, fmt.Errorf("%s(%d,%d): %w", op, a, b, ErrUnreachable)
	}

	path, err := matrix.UnfoldPath(n.dist, n.routes, a, b)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", op, a, b, err)
	}

	return path, nil
}

// Route resolves the shortest route between two node IDs and translates
// the index path back into registered nodes.
//
// Errors: ErrNodeNotFound plus everything ShortestPath returns.
func (n *Navigation) Route(from, to NodeID) (Route, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	r, err := n.routeLocked(from, to)
	n.metrics.observeQuery(err)

	return r, err
}

func (n *Navigation) routeLocked(from, to NodeID) (Route, error) {
	a, err := n.indexLocked(from)
	if err != nil {
		return Route{}, fmt.Errorf("Route: %w", err)
	}
	b, err := n.indexLocked(to)
	if err != nil {
		return Route{}, fmt.Errorf("Route: %w", err)
	}
	path, err := n.shortestPathLocked(a, b)
	if err != nil {
		return Route{}, err
	}

	r := Route{Nodes: make([]Node, len(path)), Indices: path}
	for i, idx := range path {
		r.Nodes[i] = n.nodes[idx]
	}
	if a != b {
		r.Distance, _ = n.dist.At(a, b)
	}

	return r, nil
}
