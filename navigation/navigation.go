package navigation

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/autonav/core"
	"github.com/katalvlaran/autonav/matrix"
	"github.com/prometheus/client_golang/prometheus"
)

// Navigation is the waypoint registry, graph store and shortest-path engine
// of one mission. The zero value is not usable; construct with New.
type Navigation struct {
	mu sync.RWMutex

	// registry
	nodes []Node
	index map[NodeID]int

	// graph store
	graph *core.Graph

	// engine
	state    State
	dist     *matrix.Dense  // nil unless state == StateCurrent
	routes   *matrix.Routes // nil unless state == StateCurrent
	revision uint64         // graph revision the matrices were computed against

	// configuration
	log         logr.Logger
	registerer  prometheus.Registerer
	name        string
	maxNodes    int
	eager       bool
	symmetryTol float64
	newID       func() NodeID
	metrics     *metrics
}

// New creates an empty Navigation in StateStale.
//
// Errors:
//   - a prometheus registration error when WithRegisterer is given a registry
//     that already holds collectors with the same name and labels.
func New(opts ...Option) (*Navigation, error) {
	n := &Navigation{
		index:    make(map[NodeID]int),
		graph:    core.NewGraph(),
		state:    StateStale,
		log:      logr.Discard(),
		maxNodes: DefaultMaxNodes,
		newID:    newUUID,
	}
	for _, opt := range opts {
		opt(n)
	}

	n.metrics = newMetrics(n.name)
	if n.registerer != nil {
		if err := n.metrics.register(n.registerer); err != nil {
			return nil, fmt.Errorf("navigation: register metrics: %w", err)
		}
	}

	return n, nil
}

// AddNode registers node and adds a matching vertex to the graph store.
// The returned index equals the number of nodes registered before the call.
// An empty node.ID is replaced by a generated one.
//
// Errors:
//   - ErrDuplicateNode, ErrTooManyNodes.
func (n *Navigation) AddNode(node Node) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if node.ID == "" {
		node.ID = n.newID()
	}
	if _, exists := n.index[node.ID]; exists {
		return 0, fmt.Errorf("AddNode(%q): %w", node.ID, ErrDuplicateNode)
	}
	if n.maxNodes > 0 && len(n.nodes) >= n.maxNodes {
		return 0, fmt.Errorf("AddNode(%q): %d nodes: %w", node.ID, n.maxNodes, ErrTooManyNodes)
	}

	node.Index = n.graph.AddVertex()
	n.nodes = append(n.nodes, node)
	n.index[node.ID] = node.Index
	n.metrics.nodes.Set(float64(len(n.nodes)))
	n.log.V(2).Info("node added", "id", node.ID, "index", node.Index)

	if err := n.mutatedLocked(); err != nil {
		return node.Index, err
	}

	return node.Index, nil
}

// Len returns the number of registered nodes.
func (n *Navigation) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.nodes)
}

// Node returns the node registered at index i.
//
// Errors: ErrIndexOutOfRange.
func (n *Navigation) Node(i int) (Node, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.checkIndexLocked(i); err != nil {
		return Node{}, err
	}

	return n.nodes[i], nil
}

// Index returns the index registered for id.
//
// Errors: ErrNodeNotFound.
func (n *Navigation) Index(id NodeID) (int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.indexLocked(id)
}

// Nodes returns a copy of the registry in index order.
func (n *Navigation) Nodes() []Node {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Node, len(n.nodes))
	copy(out, n.nodes)

	return out
}

func (n *Navigation) indexLocked(id NodeID) (int, error) {
	i, ok := n.index[id]
	if !ok {
		return 0, fmt.Errorf("%q: %w", id, ErrNodeNotFound)
	}

	return i, nil
}

func (n *Navigation) checkIndexLocked(i int) error {
	if i < 0 || i >= len(n.nodes) {
		return fmt.Errorf("index %d of %d: %w", i, len(n.nodes), ErrIndexOutOfRange)
	}

	return nil
}

// mutatedLocked moves the engine to StateStale after a successful mutation,
// or recomputes right away in eager mode. Caller must hold n.mu for writing.
func (n *Navigation) mutatedLocked() error {
	n.state = StateStale
	n.dist = nil
	n.routes = nil
	n.metrics.edges.Set(float64(n.graph.EdgeCount()))

	if n.eager {
		return n.recomputeLocked()
	}

	return nil
}
