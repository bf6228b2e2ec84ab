package navigation

import (
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultMaxNodes bounds the registry size. Recompute is O(n³): at 512
// waypoints that is ~1.3e8 relaxations, still well under a second.
const DefaultMaxNodes = 512

// NodeID is the caller-facing identity of a waypoint.
type NodeID string

// Node is a waypoint. ID is unique within a Navigation; Index is assigned by
// AddNode (insertion order) and ignored on input.
type Node struct {
	ID    NodeID
	Index int
}

// Route is a resolved shortest route between two registered nodes.
type Route struct {
	// Nodes lists the waypoints from origin to destination, both inclusive.
	Nodes []Node

	// Indices is the same route as registry indices.
	Indices []int

	// Distance is the total weight of the route (D[from][to]); 0 for from == to.
	Distance float64
}

// IDs returns the waypoint identifiers of r in travel order.
func (r Route) IDs() []NodeID {
	out := make([]NodeID, len(r.Nodes))
	for i, n := range r.Nodes {
		out[i] = n.ID
	}

	return out
}

// State is the freshness of the distance/route matrices.
type State uint8

const (
	// StateStale means the matrices do not reflect the current edge set.
	StateStale State = iota

	// StateCurrent means the last Recompute saw the current edge set.
	StateCurrent
)

func (s State) String() string {
	switch s {
	case StateStale:
		return "stale"
	case StateCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// Option configures a Navigation at construction time.
type Option func(*Navigation)

// WithLogger sets the logger. Recomputes are logged at V(1), registry and
// topology edits at V(2).
func WithLogger(log logr.Logger) Option {
	return func(n *Navigation) { n.log = log }
}

// WithRegisterer registers the Navigation's Prometheus collectors on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(n *Navigation) { n.registerer = reg }
}

// WithName labels this instance's metrics with graph=name, so several
// Navigations can share one registry.
func WithName(name string) Option {
	return func(n *Navigation) { n.name = name }
}

// WithMaxNodes bounds the number of registered nodes; n <= 0 removes the bound.
func WithMaxNodes(max int) Option {
	return func(n *Navigation) { n.maxNodes = max }
}

// WithEagerRecompute recomputes inside every successful mutation.
func WithEagerRecompute() Option {
	return func(n *Navigation) { n.eager = true }
}

// WithSymmetryTolerance accepts |D[y][x] − D[x][y]| <= eps as symmetric.
func WithSymmetryTolerance(eps float64) Option {
	return func(n *Navigation) { n.symmetryTol = eps }
}

// WithIDGenerator sets the generator used for nodes added with an empty ID.
func WithIDGenerator(gen func() NodeID) Option {
	return func(n *Navigation) { n.newID = gen }
}

func newUUID() NodeID { return NodeID(uuid.NewString()) }
