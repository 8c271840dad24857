// Package antcolony implements an ant colony TSP solver: every iteration
// a colony of ants constructs tours edge-by-edge, guided by per-arc
// pheromone (raised to Alpha) and inverse distance (raised to Beta), then
// pheromone evaporates by (1-Rho) and each successful ant deposits
// Q/length on the arcs it used — shorter tours reinforce harder.
//
// Feasibility on incomplete graphs: ants only ever step onto existing
// edges; an ant that dead-ends (no unvisited connected city, or a missing
// closing edge) fails its construction and is excluded from that
// iteration's pheromone update. The run fails with
// solver.ErrNoFeasibleTour only when zero ants succeed across all
// iterations.
//
// Options:
//
//	– NumAnts:          ants per iteration; must be > 0.
//	– Iterations:       iteration budget; must be > 0.
//	– Alpha:            pheromone weight; must be ≥ 0.
//	– Beta:             heuristic (inverse-distance) weight; must be ≥ 0.
//	– Rho:              evaporation rate in (0,1).
//	– Q:                deposit numerator; must be > 0.
//	– InitialPheromone: uniform τ₀; must be > 0.
//	– Seed:             RNG seed; 0 ⇒ deterministic default stream.
package antcolony

// Options configures the ant colony solver.
type Options struct {
	NumAnts          int     // ants per iteration
	Iterations       int     // colony iterations
	Alpha            float64 // pheromone importance
	Beta             float64 // heuristic importance
	Rho              float64 // evaporation rate in (0,1)
	Q                float64 // pheromone deposit factor
	InitialPheromone float64 // uniform initial arc pheromone
	Seed             int64   // RNG seed; 0 ⇒ deterministic default stream
}

// DefaultOptions returns the reference configuration: 10 ants, 50
// iterations, α=1, β=2, ρ=0.5, Q=100, τ₀=0.1.
func DefaultOptions() Options {
	return Options{
		NumAnts:          10,
		Iterations:       50,
		Alpha:            1,
		Beta:             2,
		Rho:              0.5,
		Q:                100,
		InitialPheromone: 0.1,
	}
}
