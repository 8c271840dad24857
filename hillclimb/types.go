// Package hillclimb implements single-tour local search for the TSP:
// start from a random feasible tour, perturb it once per iteration, and
// accept the candidate only on strict improvement (first-improvement).
//
// Perturbation moves (chosen uniformly per iteration):
//   - swap of two non-start positions,
//   - reversal of a sub-segment excluding the start position.
//
// Candidates that would traverse a missing edge are rejected outright, so
// the current tour stays feasible on incomplete graphs at all times.
//
// Options:
//
//	– MaxIterations: perturbation budget; the solver never stops early.
//	– Seed:          RNG seed; 0 selects the deterministic default stream.
//
// Errors (sentinel, from the solver package):
//
//	– solver.ErrNilProblem    if the problem is nil.
//	– solver.ErrInvalidConfig if MaxIterations ≤ 0.
//	– solver.ErrNoFeasibleTour if no valid initial tour can be built.
package hillclimb

// Options configures the hill-climbing solver.
type Options struct {
	MaxIterations int   // number of perturbation iterations; must be > 0
	Seed          int64 // RNG seed; 0 ⇒ deterministic default stream
}

// DefaultOptions returns the reference configuration: 1000 iterations,
// deterministic default seed.
func DefaultOptions() Options {
	return Options{MaxIterations: 1000}
}
