// Package navigation tracks mission waypoints as an undirected weighted
// graph and answers shortest-route queries between them.
//
// A Navigation owns three things:
//
//   - a node registry mapping caller-facing NodeIDs to dense indices
//     (the index is the insertion position and never changes);
//   - a core.Graph holding the edges between those indices;
//   - the distance and route matrices computed by Floyd–Warshall, guarded
//     by an explicit two-state machine (StateStale / StateCurrent).
//
// Lifecycle:
//
//	nav, _ := navigation.New()
//	nav.AddNode(navigation.Node{ID: "dock"})   // index 0
//	nav.AddNode(navigation.Node{ID: "gate"})   // index 1
//	nav.SetupEdges([][]float64{{-1, 3}, {3, -1}})
//	nav.Recompute()
//	path, _ := nav.ShortestPath(0, 1)          // [0 1]
//
// Staleness:
//
//	Every mutation (AddNode, SetupEdges, SetEdge, RemoveEdge, ClearEdges)
//	moves the engine to StateStale and drops the matrices. Reads of D/R and
//	route queries in StateStale fail with ErrStaleQuery until Recompute runs.
//	WithEagerRecompute() recomputes inside every mutation instead, so the
//	engine is never observed stale.
//
// Distance matrix input:
//
//	SetupEdges takes a dense n×n matrix (n = registered nodes). A negative
//	cell means "no direct edge". The matrix must be symmetric; every
//	offending pair is reported under ErrAsymmetricInput and the graph is left
//	untouched.
//
// Cost:
//
//	Recompute is O(n³). WithMaxNodes bounds n (DefaultMaxNodes by default)
//	so the cubic cost is an explicit admission limit rather than a surprise.
//
// Checks:
//
//	Components groups waypoints by connectivity. Verify cross-checks the
//	current matrices against single-source Dijkstra runs.
//
// Concurrency:
//
//	All methods are safe for concurrent use; a single RWMutex serializes
//	mutation, recompute and queries on one instance.
package navigation
