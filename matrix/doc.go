// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric containers and the all-pairs
// shortest-path kernel used by the navigation engine.
//
// The package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set.
//   - Routes: a row-major int matrix holding the pivot recorded for every
//     vertex pair during Floyd–Warshall.
//   - FloydWarshall: an undirected APSP kernel that returns a distance matrix
//     and a route matrix, with a fixed pivot→row→column loop order.
//   - UnfoldPath: a bounded, stack-based route reconstruction.
//   - Validators (ValidateSquare, ValidateSymmetric, ValidateFinite) that
//     return wrapped sentinels for errors.Is matching.
//
// Distance policy:
//
//	+Inf means "no path". The diagonal is +Inf as well: a waypoint has no
//	self-loop, so D[i][i] never takes part in a relaxation.
//
// Determinism:
//
//	Given identical input, FloydWarshall produces bitwise-identical Dense
//	and Routes on every run. Ties keep the earlier-found route.
//
// Complexity:
//
//	FloydWarshall is O(n³) time and O(n²) memory; UnfoldPath is O(n).
package matrix
