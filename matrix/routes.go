// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Routes is an n×n row-major matrix of vertex indices.
//
// Routes.At(y, x) holds the pivot through which the currently shortest y↔x
// path passes. A freshly initialized Routes stores x at (y, x), meaning
// "no intermediate known; the pair is joined directly".
type Routes struct {
	n    int   // order of the matrix
	data []int // flat backing storage, length == n*n
}

// NewRoutes allocates an n×n route matrix in its identity state: R[y][x] = x.
//
// Errors:
//   - ErrBadShape for n < 0.
//
// Complexity: O(n²).
func NewRoutes(n int) (*Routes, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewRoutes(%d): %w", n, ErrBadShape)
	}
	r := &Routes{n: n, data: make([]int, n*n)}
	var y, x int
	for y = 0; y < n; y++ {
		for x = 0; x < n; x++ {
			r.data[y*n+x] = x
		}
	}

	return r, nil
}

// Order returns n for an n×n route matrix.
func (r *Routes) Order() int { return r.n }

// At returns the pivot recorded for the ordered pair (y, x).
func (r *Routes) At(y, x int) (int, error) {
	if y < 0 || y >= r.n || x < 0 || x >= r.n {
		return 0, fmt.Errorf("Routes.At(%d,%d): %w", y, x, ErrOutOfRange)
	}

	return r.data[y*r.n+x], nil
}

// Clone returns a deep copy of r.
func (r *Routes) Clone() *Routes {
	data := make([]int, len(r.data))
	copy(data, r.data)

	return &Routes{n: r.n, data: data}
}

// ToRows exports the matrix as a freshly allocated [][]int.
func (r *Routes) ToRows() [][]int {
	out := make([][]int, r.n)
	for y := 0; y < r.n; y++ {
		row := make([]int, r.n)
		copy(row, r.data[y*r.n:(y+1)*r.n])
		out[y] = row
	}

	return out
}

// Equal reports whether r and o have the same order and identical cells.
func (r *Routes) Equal(o *Routes) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.n != o.n {
		return false
	}
	for i := range r.data {
		if r.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

func (r *Routes) String() string {
	var sb strings.Builder
	for y := 0; y < r.n; y++ {
		fmt.Fprint(&sb, r.data[y*r.n:(y+1)*r.n])
		sb.WriteByte('\n')
	}

	return sb.String()
}
