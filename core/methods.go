// Package core: Graph method implementations
//
// This file provides thread-safe, O(1) (amortized) operations for vertex
// and edge management on the Graph type defined in types.go. Every mutation
// takes the write lock and bumps the revision counter; queries take the read lock.
package core

import (
	"fmt"
	"math"
	"sort"
)

// AddVertex appends a new isolated vertex and returns its index,
// which equals the previous VertexCount().
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency = append(g.adjacency, make(map[int]float64))
	g.revision++

	return len(g.adjacency) - 1
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Revision returns the mutation counter. Two equal revisions observed on the
// same Graph bracket a period with no topology change.
func (g *Graph) Revision() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.revision
}

// checkVertex reports ErrVertexNotFound for an index outside the table.
// Caller must hold g.mu.
func (g *Graph) checkVertex(x int) error {
	if x < 0 || x >= len(g.adjacency) {
		return fmt.Errorf("vertex %d of %d: %w", x, len(g.adjacency), ErrVertexNotFound)
	}

	return nil
}

// checkWeight reports ErrBadWeight for negative or non-finite weights.
func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return fmt.Errorf("weight %g: %w", w, ErrBadWeight)
	}

	return nil
}

// SetEdge adds the undirected edge {x,y} with weight w, or replaces the
// weight of an existing one.
//
// Implementation:
//   - Stage 1: validate weight and loop policy (no lock needed).
//   - Stage 2: under the write lock, validate both indices, write both
//     directions, bump the edge count for new edges and the revision.
//
// Errors:
//   - ErrBadWeight, ErrLoopNotAllowed, ErrVertexNotFound.
//
// Complexity: O(1) amortized.
func (g *Graph) SetEdge(x, y int, w float64) error {
	if err := checkWeight(w); err != nil {
		return err
	}
	if x == y {
		return fmt.Errorf("edge {%d,%d}: %w", x, y, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex(x); err != nil {
		return err
	}
	if err := g.checkVertex(y); err != nil {
		return err
	}
	if _, exists := g.adjacency[x][y]; !exists {
		g.edgeCount++
	}
	g.adjacency[x][y] = w
	g.adjacency[y][x] = w
	g.revision++

	return nil
}

// RemoveEdge deletes the undirected edge {x,y}.
//
// Errors:
//   - ErrVertexNotFound, ErrEdgeNotFound.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(x, y int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex(x); err != nil {
		return err
	}
	if err := g.checkVertex(y); err != nil {
		return err
	}
	if _, exists := g.adjacency[x][y]; !exists {
		return fmt.Errorf("edge {%d,%d}: %w", x, y, ErrEdgeNotFound)
	}
	delete(g.adjacency[x], y)
	delete(g.adjacency[y], x)
	g.edgeCount--
	g.revision++

	return nil
}

// ClearEdges removes every edge while keeping all vertices.
// Complexity: O(V).
func (g *Graph) ClearEdges() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for x := range g.adjacency {
		g.adjacency[x] = make(map[int]float64)
	}
	g.edgeCount = 0
	g.revision++
}

// HasEdge reports whether {x,y} exists. Invalid indices yield false.
func (g *Graph) HasEdge(x, y int) bool {
	_, ok := g.Weight(x, y)

	return ok
}

// Weight returns the weight of {x,y} and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(x, y int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if x < 0 || x >= len(g.adjacency) || y < 0 || y >= len(g.adjacency) {
		return 0, false
	}
	w, ok := g.adjacency[x][y]

	return w, ok
}

// Neighbors returns the neighbor indices of x sorted ascending.
//
// Errors: ErrVertexNotFound.
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(x int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(x); err != nil {
		return nil, err
	}
	out := make([]int, 0, len(g.adjacency[x]))
	for y := range g.adjacency[x] {
		out = append(out, y)
	}
	sort.Ints(out)

	return out, nil
}

// Edges returns every edge once, normalized X < Y, sorted by (X, Y).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

// Snapshot returns the vertex count and the sorted edge list observed under
// a single read lock, so both describe the same revision.
func (g *Graph) Snapshot() (vertices int, edges []Edge, revision uint64) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency), g.edgesLocked(), g.revision
}

// edgesLocked collects and sorts edges. Caller must hold g.mu.
func (g *Graph) edgesLocked() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for x, nbrs := range g.adjacency {
		for y, w := range nbrs {
			if x < y {
				out = append(out, Edge{X: x, Y: y, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})

	return out
}

// Clone returns a deep copy of g, including its revision.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		adjacency: make([]map[int]float64, len(g.adjacency)),
		edgeCount: g.edgeCount,
		revision:  g.revision,
	}
	for x, nbrs := range g.adjacency {
		m := make(map[int]float64, len(nbrs))
		for y, w := range nbrs {
			m[y] = w
		}
		c.adjacency[x] = m
	}

	return c
}
