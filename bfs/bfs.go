// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, and the connected
// components of the graph.
//
// Edge weights are ignored: BFS answers "is there a way" and "how many
// hops", not "how far".
package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/autonav/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g from start. Neighbors are visited in
// ascending index order, so the result is deterministic.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ctx.Err(), or an OnVisit error.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d of %d", ErrStartVertexNotFound, start, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i], w.res.Parent[i] = -1, -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func (w *walker) enqueue(v, depth, parent int) {
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[v]
		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}

		if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		neighbors, err := w.graph.Neighbors(v)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %d: %w", v, err)
		}
		for _, nbr := range neighbors {
			if nbr < len(w.res.Depth) && w.res.Depth[nbr] < 0 {
				w.enqueue(nbr, depth+1, v)
			}
		}
	}

	return nil
}

// Components partitions the vertices of g into connected components.
// Each component is sorted ascending; components are ordered by their
// smallest vertex. One visited set and one queue serve every component.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	var out [][]int
	for v := 0; v < n; v++ {
		if seen[v] {
			continue
		}
		seen[v] = true
		queue = append(queue[:0], v)
		for head := 0; head < len(queue); head++ {
			neighbors, err := g.Neighbors(queue[head])
			if err != nil {
				return nil, fmt.Errorf("bfs: neighbors of %d: %w", queue[head], err)
			}
			for _, nbr := range neighbors {
				if nbr < n && !seen[nbr] {
					seen[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
		comp := append([]int(nil), queue...)
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out, nil
}
