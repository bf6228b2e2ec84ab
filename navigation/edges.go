package navigation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/autonav/core"
	"github.com/katalvlaran/autonav/matrix"
)

// SetupEdges builds edges from a dense n×n distance matrix, n = Len().
//
// Implementation:
//   - Stage 1: validate shape (ErrDimensionMismatch) and finiteness (ErrBadDistance).
//   - Stage 2: normalize negative cells to +Inf and verify symmetry; every
//     offending pair is reported under ErrAsymmetricInput.
//   - Stage 3: for every pair x < y read distances[y][x]; a negative value
//     creates no edge, anything else adds or replaces edge {x,y}.
//   - Stage 4: invalidate the matrices (or recompute in eager mode).
//
// Behavior highlights:
//   - Validation completes before any mutation: a rejected matrix leaves the
//     graph and the engine state untouched.
//   - Negative cells do not remove edges set earlier; use RemoveEdge or
//     ClearEdges for that.
//   - Idempotent: the same matrix twice yields the same edge set.
//
// Complexity: O(n²).
func (n *Navigation) SetupEdges(distances [][]float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.checkEdgesLocked(distances, len(n.nodes)); err != nil {
		return fmt.Errorf("SetupEdges: %w", err)
	}

	size := len(n.nodes)
	var (
		x, y, created int
		err           error
	)
	for x = 0; x < size; x++ {
		for y = x + 1; y < size; y++ {
			w := distances[y][x]
			if w < 0 {
				continue
			}
			if err = n.graph.SetEdge(x, y, w); err != nil {
				return fmt.Errorf("SetupEdges: %w", err)
			}
			created++
		}
	}
	n.log.V(2).Info("edges set up", "nodes", size, "edges", created)

	return n.mutatedLocked()
}

// CheckEdges runs the validation of SetupEdges on a square matrix without
// touching the graph. The matrix is sized by its own row count, so it can
// be checked before its nodes are registered.
//
// Errors: ErrDimensionMismatch, ErrBadDistance, ErrAsymmetricInput.
func (n *Navigation) CheckEdges(distances [][]float64) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.checkEdgesLocked(distances, len(distances)); err != nil {
		return fmt.Errorf("CheckEdges: %w", err)
	}

	return nil
}

func (n *Navigation) checkEdgesLocked(distances [][]float64, size int) error {
	norm, err := normalize(distances, size)
	if err != nil {
		return err
	}
	if err = matrix.ValidateSymmetric(norm, n.symmetryTol); err != nil {
		return fmt.Errorf("%w: %w", ErrAsymmetricInput, err)
	}

	return nil
}

// normalize copies distances into a size×size Dense with +Inf for "no edge".
func normalize(distances [][]float64, size int) (*matrix.Dense, error) {
	if len(distances) != size {
		return nil, fmt.Errorf("%d rows for %d nodes: %w", len(distances), size, ErrDimensionMismatch)
	}
	norm, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, err
	}

	inf := math.Inf(1)
	for y, row := range distances {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has %d cols for %d nodes: %w", y, len(row), size, ErrDimensionMismatch)
		}
		for x, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("[%d][%d]=%g: %w", y, x, v, ErrBadDistance)
			}
			if v < 0 {
				v = inf
			}
			_ = norm.Set(y, x, v) // in range by construction
		}
	}

	return norm, nil
}

// SetEdge adds or replaces the edge between indices x and y.
//
// Errors: ErrIndexOutOfRange, core.ErrBadWeight, core.ErrLoopNotAllowed.
func (n *Navigation) SetEdge(x, y int, w float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.checkIndexLocked(x); err != nil {
		return fmt.Errorf("SetEdge: %w", err)
	}
	if err := n.checkIndexLocked(y); err != nil {
		return fmt.Errorf("SetEdge: %w", err)
	}
	if err := n.graph.SetEdge(x, y, w); err != nil {
		return fmt.Errorf("SetEdge: %w", err)
	}
	n.log.V(2).Info("edge set", "x", x, "y", y, "weight", w)

	return n.mutatedLocked()
}

// RemoveEdge deletes the edge between indices x and y.
//
// Errors: ErrIndexOutOfRange, core.ErrEdgeNotFound.
func (n *Navigation) RemoveEdge(x, y int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.checkIndexLocked(x); err != nil {
		return fmt.Errorf("RemoveEdge: %w", err)
	}
	if err := n.checkIndexLocked(y); err != nil {
		return fmt.Errorf("RemoveEdge: %w", err)
	}
	if err := n.graph.RemoveEdge(x, y); err != nil {
		return fmt.Errorf("RemoveEdge: %w", err)
	}
	n.log.V(2).Info("edge removed", "x", x, "y", y)

	return n.mutatedLocked()
}

// ClearEdges removes every edge and keeps the registry.
func (n *Navigation) ClearEdges() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.graph.ClearEdges()
	n.log.V(2).Info("edges cleared")

	return n.mutatedLocked()
}

// Edges returns the current edge set sorted by (X, Y).
func (n *Navigation) Edges() []core.Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.graph.Edges()
}
