// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) for undirected weighted graphs,
//     producing both the distance matrix and the pivot route matrix.
//   - Deterministic loop order (pivot → row → column over the upper triangle).
//
// Contract:
//   - Square, symmetric adjacency; +Inf means "no edge"; weights >= 0.
//   - The diagonal of the input is ignored and forced to +Inf in the output.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opFloydWarshall = "FloydWarshall"
	opUnfoldPath    = "UnfoldPath"
)

// matrixErrorf wraps err with the operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// PivotHook observes the distance matrix after each completed pivot pass.
// The matrix is the live working buffer: hooks MUST NOT mutate it.
type PivotHook func(pivot int, dist *Dense)

// initDistances copies adj into a fresh distance matrix, forcing the diagonal
// to +Inf and rejecting negative off-diagonal weights.
// Complexity: O(n²).
func initDistances(adj Matrix) (*Dense, error) {
	n := adj.Rows()
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
		inf  = math.Inf(1)
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				d.data[i*n+j] = inf // no self-loops
				continue
			}
			v, _ = adj.At(i, j) // safe after shape validation
			if v < 0 {
				return nil, fmt.Errorf("[%d,%d]=%g: %w", i, j, v, ErrNegativeWeight)
			}
			d.data[i*n+j] = v
		}
	}

	return d, nil
}

// floydWarshallInPlace relaxes d and records pivots in r.
//
// Policy (assumed by callers):
//   - d is n×n, symmetric, diagonal +Inf; r is the identity route matrix of order n.
//
// For each pivot a, only unordered pairs y < x with y≠a and x≠a are visited;
// an improvement is written to both halves so symmetry is preserved.
// Only strict improvements are taken, so ties keep the earlier-found route.
// Time: O(n³); no allocations inside the hot loops.
func floydWarshallInPlace(d *Dense, r *Routes, hooks []PivotHook) {
	n := d.r
	data := d.data
	via := r.data

	var (
		a, y, x      int
		baseA, baseY int
		ya, ax, d1   float64
	)
	for a = 0; a < n; a++ { // outer: pivot vertex
		baseA = a * n
		for y = 0; y < n; y++ {
			if y == a {
				continue
			}
			ya = data[y*n+a]
			if math.IsInf(ya, 1) { // y cannot reach the pivot
				continue
			}
			baseY = y * n
			for x = y + 1; x < n; x++ {
				if x == a {
					continue
				}
				ax = data[baseA+x]
				if math.IsInf(ax, 1) {
					continue
				}
				d1 = ya + ax
				if d1 < data[baseY+x] {
					data[baseY+x] = d1
					data[x*n+y] = d1
					via[baseY+x] = a
					via[x*n+y] = a
				}
			}
		}
		for _, h := range hooks {
			h(a, d)
		}
	}
}

// FloydWarshall computes all-pairs shortest distances and the route matrix
// of an undirected weighted graph given as an adjacency matrix.
//
// Implementation:
//   - Stage 1: validate square shape, absence of NaN/−Inf, and symmetry.
//   - Stage 2: copy adjacency into D (diagonal +Inf) and init R[y][x] = x.
//   - Stage 3: n pivot passes over the upper triangle, mirroring updates.
//
// Returns:
//   - *Dense: D, symmetric, D[i][i] = +Inf, +Inf for unreachable pairs.
//   - *Routes: R, the pivot recorded for every improved pair.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrAsymmetry, ErrNegativeWeight.
//
// Determinism:
//   - Fixed loop order and strict-improvement tie rule: identical input
//     yields bitwise-identical D and R.
//
// Complexity: Time O(n³), Space O(n²) for the two outputs. The input is not modified.
func FloydWarshall(adj Matrix, hooks ...PivotHook) (*Dense, *Routes, error) {
	if err := ValidateSquare(adj); err != nil {
		return nil, nil, matrixErrorf(opFloydWarshall, err)
	}
	if err := ValidateNoNaN(adj); err != nil {
		return nil, nil, matrixErrorf(opFloydWarshall, err)
	}
	if err := ValidateSymmetric(adj, 0); err != nil {
		return nil, nil, matrixErrorf(opFloydWarshall, err)
	}

	dist, err := initDistances(adj)
	if err != nil {
		return nil, nil, matrixErrorf(opFloydWarshall, err)
	}
	routes, err := NewRoutes(adj.Rows())
	if err != nil {
		return nil, nil, matrixErrorf(opFloydWarshall, err)
	}

	floydWarshallInPlace(dist, routes, hooks)

	return dist, routes, nil
}
