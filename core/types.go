// Package core defines the waypoint Graph store and its Edge type,
// and provides thread-safe primitives for building, querying, and cloning
// undirected weighted graphs over dense vertex indices.
//
// Vertices carry no identity of their own: a vertex IS its index, assigned
// densely in insertion order (0, 1, 2, …). Mapping caller identifiers onto
// indices is the job of the navigation registry.
//
// Errors:
//
//	ErrVertexNotFound  - an index is outside [0, VertexCount()).
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrBadWeight       - weight is negative, NaN, or ±Inf.
//	ErrLoopNotAllowed  - self-loop (x == y); waypoints never connect to themselves.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex index.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative or non-finite edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected, weighted connection between two vertex indices.
// Edges returned by the Graph are normalized so that X < Y.
type Edge struct {
	// X is the smaller endpoint index.
	X int

	// Y is the larger endpoint index.
	Y int

	// Weight is the non-negative traversal cost of the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex table for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make([]map[int]float64, 0, n)
		}
	}
}

// Graph is the in-memory undirected weighted graph.
//
// mu protects every field. adjacency[x][y] == adjacency[y][x] holds the weight
// of edge {x,y}; an absent key means "no edge". revision is incremented by
// every successful mutation so observers can detect topology changes.
type Graph struct {
	mu sync.RWMutex

	adjacency []map[int]float64 // vertex index → neighbor index → weight
	edgeCount int               // number of undirected edges
	revision  uint64            // monotonic mutation counter
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (O(n) with WithCapacity).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.adjacency == nil {
		g.adjacency = make([]map[int]float64, 0)
	}

	return g
}
