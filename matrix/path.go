// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// segment is a pending y→x stretch of a path still to be unfolded.
type segment struct{ y, x int }

// UnfoldPath reconstructs the shortest a→b vertex sequence from the
// distance and route matrices produced by FloydWarshall.
//
// Implementation:
//   - Stage 1: validate shapes and indices; a == b returns [a].
//   - Stage 2: D[a][b] == +Inf → ErrUnreachable (the identity route of a
//     disconnected pair must never be unfolded).
//   - Stage 3: explicit LIFO stack of segments. For segment (y, x) with
//     k = R[y][x]: k == x (or k == y) means a direct edge and x is emitted;
//     otherwise the segment splits into (y, k) then (k, x).
//
// Behavior highlights:
//   - No recursion: every split emits exactly one extra vertex, so at most
//     n−2 splits occur for a valid matrix. The budget is n; running past it
//     returns ErrCorruptRoutes instead of looping.
//
// Returns:
//   - []int: vertices from a to b, both inclusive.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOutOfRange, ErrUnreachable, ErrCorruptRoutes.
//
// Complexity: O(n) time and space.
func UnfoldPath(dist *Dense, routes *Routes, a, b int) ([]int, error) {
	if dist == nil || routes == nil {
		return nil, matrixErrorf(opUnfoldPath, ErrNilMatrix)
	}
	n := routes.n
	if dist.r != n || dist.c != n {
		return nil, matrixErrorf(opUnfoldPath, ErrDimensionMismatch)
	}
	if a < 0 || a >= n || b < 0 || b >= n {
		return nil, matrixErrorf(opUnfoldPath, fmt.Errorf("(%d,%d) with n=%d: %w", a, b, n, ErrOutOfRange))
	}
	if a == b {
		return []int{a}, nil
	}
	if math.IsInf(dist.data[a*n+b], 1) {
		return nil, matrixErrorf(opUnfoldPath, fmt.Errorf("%d→%d: %w", a, b, ErrUnreachable))
	}

	path := make([]int, 1, n)
	path[0] = a
	stack := []segment{{y: a, x: b}}
	budget := n

	var (
		s segment
		k int
	)
	for len(stack) > 0 {
		s = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		k = routes.data[s.y*n+s.x]
		if k == s.x || k == s.y {
			path = append(path, s.x)
			continue
		}
		if k < 0 || k >= n {
			return nil, matrixErrorf(opUnfoldPath, fmt.Errorf("R[%d][%d]=%d: %w", s.y, s.x, k, ErrCorruptRoutes))
		}
		budget--
		if budget < 0 {
			return nil, matrixErrorf(opUnfoldPath, fmt.Errorf("%d→%d: %w", a, b, ErrCorruptRoutes))
		}
		// (k, x) is handled after (y, k): push it first.
		stack = append(stack, segment{y: k, x: s.x}, segment{y: s.y, x: k})
	}

	return path, nil
}

// PathWeight sums adj[p[i]][p[i+1]] over consecutive vertices of p.
// Any +Inf leg makes the result +Inf.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(len(p)).
func PathWeight(adj Matrix, p []int) (float64, error) {
	if err := ValidateNotNil(adj); err != nil {
		return 0, err
	}
	var total float64
	for i := 0; i+1 < len(p); i++ {
		w, err := adj.At(p[i], p[i+1])
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}
