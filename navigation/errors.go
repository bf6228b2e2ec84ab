package navigation

import "errors"

// Sentinel errors for navigation operations. All are local, synchronous and
// recoverable; none is worth retrying.
var (
	// ErrAsymmetricInput indicates SetupEdges received a matrix whose
	// [y][x] and [x][y] cells disagree.
	ErrAsymmetricInput = errors.New("navigation: asymmetric distance matrix")

	// ErrStaleQuery indicates a read of distances, routes or paths while the
	// matrices predate the current edge set.
	ErrStaleQuery = errors.New("navigation: stale query, recompute required")

	// ErrIndexOutOfRange indicates a node index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("navigation: node index out of range")

	// ErrUnreachable indicates there is no path between two nodes.
	ErrUnreachable = errors.New("navigation: nodes are not connected")

	// ErrDuplicateNode indicates AddNode was given an ID already registered.
	ErrDuplicateNode = errors.New("navigation: duplicate node id")

	// ErrNodeNotFound indicates an unknown NodeID.
	ErrNodeNotFound = errors.New("navigation: node not found")

	// ErrTooManyNodes indicates AddNode would exceed the WithMaxNodes bound.
	ErrTooManyNodes = errors.New("navigation: node limit reached")

	// ErrDimensionMismatch indicates a distance matrix that is not n×n for
	// n registered nodes.
	ErrDimensionMismatch = errors.New("navigation: distance matrix dimension mismatch")

	// ErrInconsistent indicates Verify found the matrices disagreeing with
	// the graph store.
	ErrInconsistent = errors.New("navigation: matrices inconsistent with graph")

	// ErrBadDistance indicates a NaN or infinite distance cell.
	ErrBadDistance = errors.New("navigation: distance must be finite")
)
