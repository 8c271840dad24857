// Package genetic_test exercises the evolutionary solver via the public
// API. Focus: configuration contracts, the elitism invariant, offspring
// feasibility on incomplete graphs, and degenerate population sizes.
package genetic_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/heurtsp/genetic"
	"github.com/katalvlaran/heurtsp/problem"
	"github.com/katalvlaran/heurtsp/solver"
)

// mustProblem builds a problem or aborts the test.
func mustProblem(t *testing.T, start string, edges []problem.Edge) *problem.Problem {
	t.Helper()
	p, err := problem.New(start, edges)
	if err != nil {
		t.Fatalf("problem.New failed: %v", err)
	}
	return p
}

// completeFive is a complete 5-city graph with assorted weights.
func completeFive(t *testing.T) *problem.Problem {
	return mustProblem(t, "A", []problem.Edge{
		{From: "A", To: "B", Dist: 2}, {From: "A", To: "C", Dist: 9},
		{From: "A", To: "D", Dist: 3}, {From: "A", To: "E", Dist: 6},
		{From: "B", To: "C", Dist: 4}, {From: "B", To: "D", Dist: 8},
		{From: "B", To: "E", Dist: 3}, {From: "C", To: "D", Dist: 5},
		{From: "C", To: "E", Dist: 2}, {From: "D", To: "E", Dist: 7},
	})
}

// -----------------------------------------------------------------------------
// 1) Validation - constructor contracts.
// -----------------------------------------------------------------------------

func TestNew_InvalidConfiguration(t *testing.T) {
	p := completeFive(t)

	bad := []genetic.Options{
		{PopulationSize: 0, Generations: 10, MutationRate: 0.1, TournamentSize: 3},
		{PopulationSize: 10, Generations: 0, MutationRate: 0.1, TournamentSize: 3},
		{PopulationSize: 10, Generations: 10, MutationRate: -0.1, TournamentSize: 3},
		{PopulationSize: 10, Generations: 10, MutationRate: 1.5, TournamentSize: 3},
		{PopulationSize: 10, Generations: 10, MutationRate: 0.1, TournamentSize: 0},
	}
	for i, opts := range bad {
		if _, err := genetic.New(p, opts); !errors.Is(err, solver.ErrInvalidConfig) {
			t.Fatalf("case %d: want ErrInvalidConfig, got %v", i, err)
		}
	}
	if _, err := genetic.New(nil, genetic.DefaultOptions()); !errors.Is(err, solver.ErrNilProblem) {
		t.Fatalf("want ErrNilProblem for nil problem, got %v", err)
	}
}

// -----------------------------------------------------------------------------
// 2) Validation - elitism: best population cost never increases.
// -----------------------------------------------------------------------------

func TestSolve_ElitismInvariant(t *testing.T) {
	p := completeFive(t)

	ga, err := genetic.New(p, genetic.Options{
		PopulationSize: 12, Generations: 30,
		MutationRate: 0.2, TournamentSize: 3, Seed: 9,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	res, err := ga.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if len(res.Trace) != 30 {
		t.Fatalf("want one trace point per generation (30), got %d", len(res.Trace))
	}
	for i := 1; i < len(res.Trace); i++ {
		if res.Trace[i].BestCost > res.Trace[i-1].BestCost {
			t.Fatalf("elitism violated at generation %d: %.6f -> %.6f",
				i, res.Trace[i-1].BestCost, res.Trace[i].BestCost)
		}
	}
	if res.Trace[len(res.Trace)-1].BestCost != res.Distance {
		t.Fatalf("final trace cost %.6f != result distance %.6f",
			res.Trace[len(res.Trace)-1].BestCost, res.Distance)
	}
}

// -----------------------------------------------------------------------------
// 3) Validation - every returned tour is a feasible permutation.
// -----------------------------------------------------------------------------

func TestSolve_ReturnsFeasibleTour(t *testing.T) {
	// 5-ring: offspring and mutants must never pick up a missing chord.
	p := mustProblem(t, "A", []problem.Edge{
		{From: "A", To: "B", Dist: 1},
		{From: "B", To: "C", Dist: 1},
		{From: "C", To: "D", Dist: 1},
		{From: "D", To: "E", Dist: 1},
		{From: "E", To: "A", Dist: 1},
	})

	ga, err := genetic.New(p, genetic.Options{
		PopulationSize: 8, Generations: 15,
		MutationRate: 0.3, TournamentSize: 2, Seed: 4,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	res, err := ga.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if res.Tour[0] != "A" {
		t.Fatalf("tour must begin at the start city, got %v", res.Tour)
	}
	d, err := p.PathDistance(res.Tour)
	if err != nil {
		t.Fatalf("returned tour invalid: %v (tour %v)", err, res.Tour)
	}
	if d != res.Distance || d != 5 {
		t.Fatalf("want ring cost 5, got distance=%.2f pathDistance=%.2f", res.Distance, d)
	}
}

// -----------------------------------------------------------------------------
// 4) Special - PopulationSize=1 degrades to repeated mutation, no error.
// -----------------------------------------------------------------------------

func TestSolve_SingleIndividual(t *testing.T) {
	p := completeFive(t)

	ga, err := genetic.New(p, genetic.Options{
		PopulationSize: 1, Generations: 5,
		MutationRate: 0.5, TournamentSize: 3, Seed: 2,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	res, err := ga.Solve()
	if err != nil {
		t.Fatalf("Solve must not fail with a population of one: %v", err)
	}

	if len(res.Trace) != 5 {
		t.Fatalf("want 5 trace points, got %d", len(res.Trace))
	}
	if _, err = p.PathDistance(res.Tour); err != nil {
		t.Fatalf("returned tour invalid: %v", err)
	}
}

// -----------------------------------------------------------------------------
// 5) Validation - infeasible instance surfaces ErrNoFeasibleTour.
// -----------------------------------------------------------------------------

func TestSolve_NoFeasibleTour(t *testing.T) {
	p := mustProblem(t, "Hub", []problem.Edge{
		{From: "Hub", To: "A", Dist: 1},
		{From: "Hub", To: "B", Dist: 1},
		{From: "Hub", To: "C", Dist: 1},
	})

	ga, err := genetic.New(p, genetic.DefaultOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err = ga.Solve(); !errors.Is(err, solver.ErrNoFeasibleTour) {
		t.Fatalf("want ErrNoFeasibleTour, got %v", err)
	}
}

// -----------------------------------------------------------------------------
// 6) Special - determinism: identical seeds give identical results.
// -----------------------------------------------------------------------------

func TestSolve_Deterministic(t *testing.T) {
	p := completeFive(t)
	opts := genetic.Options{
		PopulationSize: 10, Generations: 10,
		MutationRate: 0.1, TournamentSize: 3, Seed: 21,
	}

	a, _ := genetic.New(p, opts)
	b, _ := genetic.New(p, opts)
	resA, err := a.Solve()
	if err != nil {
		t.Fatalf("first Solve failed: %v", err)
	}
	resB, err := b.Solve()
	if err != nil {
		t.Fatalf("second Solve failed: %v", err)
	}

	if resA.Distance != resB.Distance {
		t.Fatalf("nondeterministic distance: %.6f vs %.6f", resA.Distance, resB.Distance)
	}
	for i := range resA.Tour {
		if resA.Tour[i] != resB.Tour[i] {
			t.Fatalf("nondeterministic tour:\n first: %v\nsecond: %v", resA.Tour, resB.Tour)
		}
	}
}

func TestFitness(t *testing.T) {
	if genetic.Fitness(0) != 1 {
		t.Fatalf("Fitness(0) must be 1, got %v", genetic.Fitness(0))
	}
	if genetic.Fitness(4) != 0.2 {
		t.Fatalf("Fitness(4) must be 0.2, got %v", genetic.Fitness(4))
	}
	if genetic.Fitness(1) >= genetic.Fitness(0.5) {
		t.Fatalf("shorter tours must have higher fitness")
	}
}
