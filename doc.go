// Package heurtsp is a small laboratory for comparing Travelling Salesman
// heuristics on graphs of named cities — complete or not.
//
// 🚀 What is heurtsp?
//
//	A deterministic, library-only toolkit that brings together:
//		• problem/   — immutable city/distance model with +Inf “no edge” semantics
//		• hillclimb/ — first-improvement local search (swap + segment reversal)
//		• genetic/   — tournament selection, order crossover, elitism
//		• antcolony/ — pheromone-guided tour construction with evaporation
//		• solver/    — shared Solve contract, convergence traces, comparison harness
//		• distfile/  — loaders for text and YAML distance files
//
// ✨ Why choose heurtsp?
//
//   - Reproducible – every solver takes a seed; same seed, same tour
//   - Honest on sparse graphs – solvers never traverse a missing edge
//   - Rock-solid error contracts – sentinel errors, no logging, no panics
//   - Uniform results – tour, distance, elapsed time, convergence trace
//
// The three solvers share nothing beyond the Solve contract: construct one
// per configuration, call Solve exactly once, and hand the Result to your
// reporting layer. The solver package's Run helper executes a slate of
// solvers sequentially and records per-solver failures without aborting
// the comparison.
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╲ │
//	    C───D
//
//	four cities, five edges: a tour must respect the missing B–C edge.
//
// Dive into the per-package docs for contracts, complexity notes and the
// exact acceptance/selection/update rules each solver implements.
//
//	go get github.com/katalvlaran/heurtsp
package heurtsp
