package problem

import "errors"

// Sentinel errors returned by the problem model.
var (
	// ErrNoCities indicates that the edge list names fewer than two cities;
	// a closed tour needs at least two distinct vertices.
	ErrNoCities = errors.New("problem: fewer than two cities")

	// ErrUnknownStart indicates that the designated start city does not
	// appear anywhere in the edge list.
	ErrUnknownStart = errors.New("problem: start city not in city set")

	// ErrUnknownCity indicates that a queried city name is empty or not
	// part of the city set.
	ErrUnknownCity = errors.New("problem: city not in city set")

	// ErrSelfLoop indicates an edge whose endpoints are the same city.
	// Self-loops are meaningless in a Hamiltonian cycle and are rejected.
	ErrSelfLoop = errors.New("problem: self-loop edge")

	// ErrNegativeWeight indicates a negative distance in the input.
	ErrNegativeWeight = errors.New("problem: negative distance")

	// ErrBadWeight indicates a NaN or infinite distance in the input.
	// Missing edges are expressed by omission, never by explicit +Inf.
	ErrBadWeight = errors.New("problem: distance is NaN or infinite")

	// ErrNoEdge indicates that a distance was queried for a pair of cities
	// that are not directly connected.
	ErrNoEdge = errors.New("problem: cities are not connected")

	// ErrInvalidTour indicates a malformed tour: not a permutation of the
	// full city set, or traversing an edge absent from the distance matrix
	// (the implicit closing edge included).
	ErrInvalidTour = errors.New("problem: invalid tour")
)

// Edge is a single undirected distance record between two named cities.
// Both directions are stored; a later record for the same pair overwrites
// the earlier one.
type Edge struct {
	From string  // first endpoint
	To   string  // second endpoint
	Dist float64 // non-negative finite distance
}
