package genetic

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/heurtsp/problem"
	"github.com/katalvlaran/heurtsp/solver"
)

// Bounded internal retry budgets. Repairs and mutations never loop
// unbounded; exhausting a budget falls back to a known-feasible tour.
const (
	repairFactor     = 4 // repair swap attempts per city
	mutationAttempts = 8 // feasible-mutant attempts per mutation
)

// Genetic is a single-use evolutionary solver bound to one problem and
// one configuration. Construct via New, call Solve exactly once.
type Genetic struct {
	p    *problem.Problem
	opts Options
}

// New validates the configuration and binds the solver to the problem.
//
// Errors: solver.ErrNilProblem, solver.ErrInvalidConfig.
func New(p *problem.Problem, opts Options) (*Genetic, error) {
	if p == nil {
		return nil, solver.ErrNilProblem
	}
	if opts.PopulationSize <= 0 || opts.Generations <= 0 || opts.TournamentSize <= 0 {
		return nil, solver.ErrInvalidConfig
	}
	if opts.MutationRate < 0 || opts.MutationRate > 1 || math.IsNaN(opts.MutationRate) {
		return nil, solver.ErrInvalidConfig
	}
	return &Genetic{p: p, opts: opts}, nil
}

// Name implements solver.Solver.
func (g *Genetic) Name() string { return "Genetic Algorithm" }

// Fitness maps a tour distance to selection fitness: 1/(1+d). Exported
// for reporting layers that want to display fitness instead of cost.
func Fitness(distance float64) float64 { return 1 / (1 + distance) }

// Solve evolves the population for exactly Generations generations and
// returns the best individual of the final population (which, by the
// elitism invariant, is the best individual ever seen).
//
// The trace records the best population cost after each generation, one
// point per generation, non-increasing by elitism. A population of one
// degrades to repeated mutation of the single individual, keeping the
// better of parent and mutant.
//
// Errors: solver.ErrNoFeasibleTour when the initial population cannot be
// constructed within the bounded budget.
//
// Complexity: O(Generations·PopulationSize·n) time plus construction;
// O(PopulationSize·n) space.
func (g *Genetic) Solve() (solver.Result, error) {
	started := time.Now()
	rng := solver.NewRand(g.opts.Seed)

	// Initial population: every individual is feasible by construction.
	var (
		size  = g.opts.PopulationSize
		pop   = make([][]int, size)
		costs = make([]float64, size)
		err   error
		i     int
	)
	for i = 0; i < size; i++ {
		if pop[i], err = solver.RandomTour(g.p, rng); err != nil {
			return solver.Result{}, err
		}
		if costs[i], err = g.p.TourDistance(pop[i]); err != nil {
			return solver.Result{}, err
		}
	}

	var (
		trace = make(solver.Trace, 0, g.opts.Generations)
		gen   int // generation counter
		best  int // index of the fittest individual
	)
	for gen = 0; gen < g.opts.Generations; gen++ {
		if size == 1 {
			g.evolveSingle(pop, costs, rng)
		} else {
			pop, costs = g.evolve(pop, costs, rng)
		}
		best = fittest(costs)
		trace = append(trace, solver.TracePoint{Iteration: gen, BestCost: costs[best]})
	}

	best = fittest(costs)
	names, err := g.p.TourNames(pop[best])
	if err != nil {
		return solver.Result{}, err
	}
	return solver.Result{
		Tour:     names,
		Distance: costs[best],
		Elapsed:  time.Since(started),
		Trace:    trace,
	}, nil
}

// evolve produces the next generation: the elite survives unmodified,
// every other slot is filled by a crossover child of two tournament
// winners, repaired or replaced if infeasible, then possibly mutated.
func (g *Genetic) evolve(pop [][]int, costs []float64, rng *rand.Rand) ([][]int, []float64) {
	var (
		size      = len(pop)
		next      = make([][]int, 0, size)
		nextCosts = make([]float64, 0, size)
		elite     = fittest(costs)
	)
	next = append(next, copyTour(pop[elite]))
	nextCosts = append(nextCosts, costs[elite])

	var (
		pa, pb []int   // selected parents
		child  []int   // offspring under construction
		c      float64 // offspring cost
		err    error
	)
	for len(next) < size {
		pa = pop[g.tournament(costs, rng)]
		pb = pop[g.tournament(costs, rng)]
		child = crossoverOX(pa, pb, rng)

		c, err = g.p.TourDistance(child)
		if err != nil {
			// Offspring uses a missing edge: bounded repair, then fallback
			// to a mutated copy of the first parent (always feasible).
			if g.repair(child, rng) {
				c, err = g.p.TourDistance(child)
			}
			if err != nil {
				child = copyTour(pa)
				g.mutateFeasible(child, rng)
				c, _ = g.p.TourDistance(child)
			}
		}

		if rng.Float64() < g.opts.MutationRate {
			if g.mutateFeasible(child, rng) {
				c, _ = g.p.TourDistance(child)
			}
		}

		next = append(next, child)
		nextCosts = append(nextCosts, c)
	}
	return next, nextCosts
}

// evolveSingle is the degenerate PopulationSize==1 path: mutate the lone
// individual and keep the better of parent and mutant.
func (g *Genetic) evolveSingle(pop [][]int, costs []float64, rng *rand.Rand) {
	mutant := copyTour(pop[0])
	if !g.mutateFeasible(mutant, rng) {
		return
	}
	c, err := g.p.TourDistance(mutant)
	if err == nil && c < costs[0] {
		copy(pop[0], mutant)
		costs[0] = c
	}
}

// tournament returns the index of the fittest among TournamentSize
// uniform picks with replacement. Ties keep the earliest pick, which is
// itself uniform random, so tie-breaking is uniform.
func (g *Genetic) tournament(costs []float64, rng *rand.Rand) int {
	var (
		best = rng.Intn(len(costs))
		t    int // pick counter
		c    int // candidate index
	)
	for t = 1; t < g.opts.TournamentSize; t++ {
		c = rng.Intn(len(costs))
		if costs[c] < costs[best] {
			best = c
		}
	}
	return best
}

// repair tries up to repairFactor·n random interior swaps, keeping only
// swaps that reduce the number of missing edges. Returns whether the
// tour ended feasible.
func (g *Genetic) repair(tour []int, rng *rand.Rand) bool {
	n := len(tour)
	if n < 3 {
		return g.missingEdges(tour) == 0
	}

	var (
		missing = g.missingEdges(tour)
		i, k    int // swap positions
		m       int // missing count after the swap
		t       int // attempt counter
	)
	for t = 0; t < repairFactor*n && missing > 0; t++ {
		i = 1 + rng.Intn(n-1)
		k = 1 + rng.Intn(n-1)
		if i == k {
			continue
		}
		tour[i], tour[k] = tour[k], tour[i]
		m = g.missingEdges(tour)
		if m < missing {
			missing = m
		} else {
			tour[i], tour[k] = tour[k], tour[i] // revert
		}
	}
	return missing == 0
}

// missingEdges counts cycle edges (closing edge included) absent from the
// distance matrix.
func (g *Genetic) missingEdges(tour []int) int {
	var (
		n   = len(tour)
		cnt int
		i   int
	)
	for i = 0; i < n; i++ {
		if math.IsInf(g.p.Weight(tour[i], tour[(i+1)%n]), 1) {
			cnt++
		}
	}
	return cnt
}

// mutateFeasible applies one random swap or segment reversal, retrying up
// to mutationAttempts times until the mutant is feasible. The tour is
// modified in place only on success; returns whether a mutation landed.
func (g *Genetic) mutateFeasible(tour []int, rng *rand.Rand) bool {
	n := len(tour)
	if n < 3 {
		return false
	}

	var (
		buf  = make([]int, n)
		t    int // attempt counter
		i, k int // move positions
		err  error
	)
	for t = 0; t < mutationAttempts; t++ {
		copy(buf, tour)
		i = 1 + rng.Intn(n-1)
		k = 1 + rng.Intn(n-1)
		if i == k {
			continue
		}
		if i > k {
			i, k = k, i
		}
		if rng.Intn(2) == 0 {
			buf[i], buf[k] = buf[k], buf[i]
		} else {
			solver.ReverseSegment(buf, i, k)
		}
		if _, err = g.p.TourDistance(buf); err == nil {
			copy(tour, buf)
			return true
		}
	}
	return false
}

// crossoverOX performs order crossover over the interior positions
// [1..n-1], keeping the start city pinned at position 0: a contiguous
// segment of pa is inherited verbatim, the remaining positions are filled
// in pb's relative order starting just after the segment.
func crossoverOX(pa, pb []int, rng *rand.Rand) []int {
	n := len(pa)
	child := make([]int, n)
	if n <= 3 {
		// One or two interior positions: OX degenerates to a parent copy.
		copy(child, pa)
		return child
	}

	// Segment bounds over interior positions, inclusive.
	a := 1 + rng.Intn(n-1)
	b := 1 + rng.Intn(n-1)
	if a > b {
		a, b = b, a
	}

	var (
		used = make([]bool, n)
		i    int // loop index
		pos  int // next child position to fill
		q    int // pb scan position
		v    int // candidate vertex from pb
	)
	child[0] = pa[0]
	used[pa[0]] = true
	for i = a; i <= b; i++ {
		child[i] = pa[i]
		used[pa[i]] = true
	}

	// nextInterior steps through 1..n-1 cyclically.
	nextInterior := func(p int) int { return 1 + p%(n-1) }

	pos = nextInterior(b)
	q = nextInterior(b)
	for i = 0; i < n-1; i++ {
		v = pb[q]
		q = nextInterior(q)
		if used[v] {
			continue
		}
		child[pos] = v
		used[v] = true
		pos = nextInterior(pos)
	}
	return child
}

// fittest returns the index of the minimum cost (first on ties).
func fittest(costs []float64) int {
	var (
		best = 0
		i    int
	)
	for i = 1; i < len(costs); i++ {
		if costs[i] < costs[best] {
			best = i
		}
	}
	return best
}

// copyTour returns an independent copy of the tour slice.
func copyTour(tour []int) []int {
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}
