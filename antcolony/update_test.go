// Whitebox coverage of the pheromone arithmetic: every arc evaporates by
// (1-Rho), both arcs of every used edge then receive Q/length, and the
// two phases happen as one atomic pass.
package antcolony

import (
	"testing"

	"github.com/katalvlaran/heurtsp/problem"
)

// newColony builds a complete 4-city colony with Rho=0.5 and Q=12, so
// the expected values below stay exact in float64.
func newColony(t *testing.T) *AntColony {
	t.Helper()
	p, err := problem.New("A", []problem.Edge{
		{From: "A", To: "B", Dist: 1},
		{From: "A", To: "C", Dist: 1},
		{From: "A", To: "D", Dist: 1},
		{From: "B", To: "C", Dist: 1},
		{From: "B", To: "D", Dist: 1},
		{From: "C", To: "D", Dist: 1},
	})
	if err != nil {
		t.Fatalf("problem.New failed: %v", err)
	}

	opts := DefaultOptions()
	opts.Rho = 0.5
	opts.Q = 12
	ac, err := New(p, opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return ac
}

// uniformTau returns an n×n pheromone matrix holding v everywhere.
func uniformTau(n int, v float64) []float64 {
	tau := make([]float64, n*n)
	for i := range tau {
		tau[i] = v
	}
	return tau
}

// -----------------------------------------------------------------------------
// 1) Arithmetic - evaporation on every arc, deposit on used arcs only.
// -----------------------------------------------------------------------------

func TestUpdate_EvaporateThenDeposit(t *testing.T) {
	ac := newColony(t)
	n := ac.p.Order()
	tau := uniformTau(n, 2)

	// One successful tour A-B-C-D of length 4: deposit = Q/length = 3.
	ac.update(tau, [][]int{{0, 1, 2, 3}}, []float64{4})

	// Used edges (closing edge D-A included): 2·(1-ρ) + 3 = 4, both arcs.
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		if got := tau[e[0]*n+e[1]]; got != 4 {
			t.Fatalf("used arc %d->%d: want 2·(1-ρ)+Q/len = 4, got %v", e[0], e[1], got)
		}
		if got := tau[e[1]*n+e[0]]; got != 4 {
			t.Fatalf("reverse arc %d->%d: want symmetric deposit 4, got %v", e[1], e[0], got)
		}
	}

	// The unused chords A-C and B-D strictly evaporate: 2·(1-ρ) = 1.
	for _, e := range [][2]int{{0, 2}, {2, 0}, {1, 3}, {3, 1}} {
		if got := tau[e[0]*n+e[1]]; got != 1 {
			t.Fatalf("untouched arc %d->%d: want 2·(1-ρ) = 1, got %v", e[0], e[1], got)
		}
	}
}

// -----------------------------------------------------------------------------
// 2) Arithmetic - deposits from multiple tours accumulate per arc.
// -----------------------------------------------------------------------------

func TestUpdate_DepositsAccumulate(t *testing.T) {
	ac := newColony(t)
	n := ac.p.Order()
	tau := uniformTau(n, 2)

	// A-B-C-D (deposit 3) and A-B-D-C (deposit 3) both use the A-B edge.
	ac.update(tau,
		[][]int{{0, 1, 2, 3}, {0, 1, 3, 2}},
		[]float64{4, 4},
	)

	if got := tau[0*n+1]; got != 7 {
		t.Fatalf("shared arc A->B: want 2·(1-ρ)+3+3 = 7, got %v", got)
	}
	// B-C is used only by the first tour.
	if got := tau[1*n+2]; got != 4 {
		t.Fatalf("arc B->C: want 2·(1-ρ)+3 = 4, got %v", got)
	}
}

// -----------------------------------------------------------------------------
// 3) Special - no successful ants: the pass is pure evaporation.
// -----------------------------------------------------------------------------

func TestUpdate_NoToursPureEvaporation(t *testing.T) {
	ac := newColony(t)
	n := ac.p.Order()
	tau := uniformTau(n, 2)

	ac.update(tau, nil, nil)

	for i := range tau {
		if tau[i] != 1 {
			t.Fatalf("arc %d: want pure evaporation 2·(1-ρ) = 1, got %v", i, tau[i])
		}
	}
}

// -----------------------------------------------------------------------------
// 4) Special - near-zero tour length: the deposit is capped at Q/floor.
// -----------------------------------------------------------------------------

func TestUpdate_ZeroLengthDepositCapped(t *testing.T) {
	ac := newColony(t)
	n := ac.p.Order()
	tau := uniformTau(n, 2)

	ac.update(tau, [][]int{{0, 1, 2, 3}}, []float64{0})

	want := 2*(1-ac.opts.Rho) + ac.opts.Q/distFloor
	if got := tau[0*n+1]; got != want {
		t.Fatalf("arc A->B: want capped deposit %v, got %v", want, got)
	}
}
