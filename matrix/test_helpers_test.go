// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the APSP kernel and path unfolding.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/autonav/matrix"
)

var inf = math.Inf(1)

// yardRows is the five-waypoint yard used across the navigation tests
// (row = y, col = x, -1 = no edge).
var yardRows = [][]float64{
	{-1, 3, -1, 12, 2},
	{3, -1, 2, 5, 12},
	{-1, 2, -1, -1, -1},
	{12, 5, -1, -1, 0.5},
	{2, 12, -1, 0.5, -1},
}

// hide WRAPS any Matrix to hide its concrete type from type assertions.
type hide struct{ matrix.Matrix }

// adjacencyFromRows converts a "-1 = no edge" table into a +Inf adjacency.
func adjacencyFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()

	out := make([][]float64, len(rows))
	for y, row := range rows {
		out[y] = make([]float64, len(row))
		for x, v := range row {
			if v < 0 {
				out[y][x] = inf
			} else {
				out[y][x] = v
			}
		}
	}
	d, err := matrix.NewDenseFromRows(out)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return d
}

// randomAdjacency builds a symmetric adjacency of order n where each pair is
// connected with probability p, with dyadic weights so sums are exact.
func randomAdjacency(t *testing.T, rng *rand.Rand, n int, p float64) *matrix.Dense {
	t.Helper()

	d, err := matrix.NewFilledDense(n, n, inf)
	if err != nil {
		t.Fatalf("NewFilledDense: %v", err)
	}
	for y := 0; y < n; y++ {
		for x := y + 1; x < n; x++ {
			if rng.Float64() >= p {
				continue
			}
			w := float64(rng.Intn(40)) / 4
			MustSet(t, d, y, x, w)
			MustSet(t, d, x, y, w)
		}
	}

	return d
}

// MustSet assigns m[i,j] = v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected errors.Is(%v, %v) to be true", err, target)
	}
}
