// Package genetic implements an evolutionary TSP solver: a population of
// feasible tours evolved through tournament selection, order crossover,
// swap/reversal mutation, and single-individual elitism.
//
// Policy choices (one conventional variant per operator):
//   - Selection: tournament of TournamentSize uniform picks with
//     replacement; the fittest pick wins, ties resolved by sampling order
//     (uniform among equals).
//   - Crossover: order crossover (OX) over the interior positions; the
//     start city stays pinned at position 0.
//   - Repair: offspring traversing missing edges get a bounded pass of
//     random interior swaps accepted when they reduce the number of
//     missing edges; still-infeasible offspring are replaced by a mutated
//     copy of the first parent.
//   - Mutation: with probability MutationRate, one random swap or segment
//     reversal; only feasible mutants are kept.
//   - Elitism: the best individual survives each generation unmodified,
//     so the traced best cost never increases.
//
// Fitness is 1/(1+distance): lower distance ⇒ higher fitness, no division
// by zero.
//
// Errors (sentinel, from the solver package):
//
//	– solver.ErrNilProblem     if the problem is nil.
//	– solver.ErrInvalidConfig  if a count is non-positive or a rate is out of [0,1].
//	– solver.ErrNoFeasibleTour if the initial population cannot be built.
package genetic

// Options configures the genetic solver.
type Options struct {
	PopulationSize int     // individuals per generation; must be > 0
	Generations    int     // generation budget; must be > 0
	MutationRate   float64 // per-offspring mutation probability in [0,1]
	TournamentSize int     // picks per tournament; must be > 0
	Seed           int64   // RNG seed; 0 ⇒ deterministic default stream
}

// DefaultOptions returns the reference configuration: population 50,
// 100 generations, 5% mutation, tournament of 3.
func DefaultOptions() Options {
	return Options{
		PopulationSize: 50,
		Generations:    100,
		MutationRate:   0.05,
		TournamentSize: 3,
	}
}
