// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph.
//
// It processes vertices in order of increasing distance using a min-heap
// priority queue with lazy decrease-key: improved distances are pushed as
// new entries and stale entries are skipped when popped.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/autonav/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance from the source; +Inf if
//     unreachable; dist[source] == 0.
//   - prev: nil unless WithReturnPath; prev[v] is the predecessor of v on a
//     shortest path, -1 for the source and unreachable vertices.
//
// core.Graph rejects negative weights on insertion, so no pre-scan is needed.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) ([]float64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if math.IsNaN(cfg.MaxDistance) || cfg.MaxDistance < 0 {
		return nil, nil, fmt.Errorf("%w: %g", ErrBadMaxDistance, cfg.MaxDistance)
	}
	n := g.VertexCount()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: %d of %d", ErrVertexNotFound, cfg.Source, n)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []float64
	prev    []int
	visited []bool
	pq      nodePQ
}

// init sets every distance to +Inf, the source to 0, and seeds the heap.
func (r *runner) init() {
	inf := math.Inf(1)
	for v := range r.dist {
		r.dist[v] = inf
		r.prev[v] = -1
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unvisited vertex and relaxes its edges until the
// heap is empty or the closest entry is beyond MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distance of every neighbor of u reachable through u.
// Only strict improvements are recorded.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	for _, v := range neighbors {
		if v >= len(r.dist) {
			continue // vertex added after the run started
		}
		w, ok := r.g.Weight(u, v)
		if !ok {
			continue // edge removed concurrently
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// PathTo rebuilds the source→dest path from a predecessor slice. It returns
// nil when dest is unreachable (or out of range).
func PathTo(prev []int, source, dest int) []int {
	if dest < 0 || dest >= len(prev) {
		return nil
	}
	var rev []int
	for v := dest; v != -1; v = prev[v] {
		rev = append(rev, v)
		if len(rev) > len(prev) {
			return nil
		}
	}
	if rev[len(rev)-1] != source {
		return nil
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// nodeItem is a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties by id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
