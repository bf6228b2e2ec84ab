// Package autonav is the controller library of a small autonomous vehicle:
// it learns a mission's waypoints, computes every shortest route between
// them, and plays a chosen route on the wheels.
//
// What is in the module?
//
//	matrix/       dense float and route matrices, validators,
//	              Floyd–Warshall and route unfolding
//	core/         thread-safe undirected weighted graph over dense indices
//	navigation/   node registry, graph store and shortest-path engine with
//	              explicit staleness (StateStale / StateCurrent)
//	bfs/          hop search and connected components
//	dijkstra/     single-source shortest paths, used to cross-check routes
//	motion/       Driver capability, differential mixing, EduKit, Recorder
//	mission/      YAML mission files applied to a Navigation
//	cmd/autonav   CLI: route, table, drive, check
//
// Quick start:
//
//	nav, _ := navigation.New()
//	nav.AddNode(navigation.Node{ID: "dock"})
//	nav.AddNode(navigation.Node{ID: "gate"})
//	nav.SetupEdges([][]float64{{-1, 3}, {3, -1}})
//	nav.Recompute()
//	r, _ := nav.Route("dock", "gate") // [dock gate], 3
//
// Routes are recomputed only on request (or on every edit with
// navigation.WithEagerRecompute); queries against outdated tables fail with
// navigation.ErrStaleQuery instead of answering from old data.
package autonav
