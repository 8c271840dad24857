// Package solver defines the contract shared by the three TSP heuristics
// (hillclimb, genetic, antcolony) and the glue around them:
//
//   - Solver / Result / Trace — the uniform Solve() surface: every solver
//     returns its best tour, the stabilized total distance, the elapsed
//     wall-clock time, and a non-increasing convergence trace.
//   - Deterministic RNG helpers — the seed==0 ⇒ fixed-default policy and
//     SplitMix64 stream derivation, so identical seeds give identical runs.
//   - RandomTour — randomized feasible-tour construction with backtracking
//     on incomplete graphs, shared by solver initialization.
//   - Run — the sequential comparison harness: one solver's failure is
//     recorded and never aborts the remaining solvers.
//   - Benchmark — multi-seed re-runs with mean/σ summaries.
//
// The package carries no solver state of its own; each solver is
// constructed per configuration, runs exactly one Solve call, and is
// discarded after its Result is extracted.
package solver
