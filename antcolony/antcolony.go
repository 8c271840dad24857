package antcolony

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/heurtsp/problem"
	"github.com/katalvlaran/heurtsp/solver"
)

// distFloor shields the heuristic term 1/d against zero-length edges.
const distFloor = 1e-9

// AntColony is a single-use colony solver bound to one problem and one
// configuration. Construct via New, call Solve exactly once.
type AntColony struct {
	p    *problem.Problem
	opts Options
}

// New validates the configuration and binds the solver to the problem.
//
// Errors: solver.ErrNilProblem, solver.ErrInvalidConfig.
func New(p *problem.Problem, opts Options) (*AntColony, error) {
	if p == nil {
		return nil, solver.ErrNilProblem
	}
	if opts.NumAnts <= 0 || opts.Iterations <= 0 {
		return nil, solver.ErrInvalidConfig
	}
	if opts.Alpha < 0 || opts.Beta < 0 || math.IsNaN(opts.Alpha) || math.IsNaN(opts.Beta) {
		return nil, solver.ErrInvalidConfig
	}
	if !(opts.Rho > 0 && opts.Rho < 1) {
		return nil, solver.ErrInvalidConfig
	}
	if opts.Q <= 0 || opts.InitialPheromone <= 0 {
		return nil, solver.ErrInvalidConfig
	}
	return &AntColony{p: p, opts: opts}, nil
}

// Name implements solver.Solver.
func (a *AntColony) Name() string { return "Ant Colony" }

// Solve runs the colony for exactly Iterations iterations and returns the
// best tour constructed by any ant.
//
// Iteration semantics: all ant constructions of an iteration complete
// first, then the pheromone update applies as a single pass (full
// evaporation, then all deposits), so a run is deterministic under a
// fixed seed. The trace records (iteration, bestSoFar) for every
// iteration from the first successful construction onward; the series is
// non-increasing because the best is only replaced by strictly shorter
// tours.
//
// Errors: solver.ErrNoFeasibleTour when zero ants succeed across the run.
//
// Complexity: O(Iterations·NumAnts·n·deg + Iterations·n²) time,
// O(n²) space for the pheromone matrix.
func (a *AntColony) Solve() (solver.Result, error) {
	started := time.Now()
	rng := solver.NewRand(a.opts.Seed)

	var (
		n   = a.p.Order()
		tau = make([]float64, n*n) // per-arc pheromone, linearized
		i   int
	)
	for i = 0; i < n*n; i++ {
		tau[i] = a.opts.InitialPheromone
	}

	var (
		bestCost = math.Inf(1)
		bestTour []int
		trace    = make(solver.Trace, 0, a.opts.Iterations)
		tours    = make([][]int, 0, a.opts.NumAnts)  // successful tours this iteration
		lengths  = make([]float64, 0, a.opts.NumAnts)
		it       int     // iteration counter
		ant      int     // ant counter
		tour     []int   // current construction
		cost     float64 // its length
		ok       bool    // construction success flag
	)
	for it = 0; it < a.opts.Iterations; it++ {
		tours = tours[:0]
		lengths = lengths[:0]

		// Phase 1: all constructions complete before any pheromone changes.
		for ant = 0; ant < a.opts.NumAnts; ant++ {
			tour, cost, ok = a.construct(rng, tau)
			if !ok {
				continue // dead end: excluded from this iteration's update
			}
			tours = append(tours, tour)
			lengths = append(lengths, cost)
			if cost < bestCost {
				bestCost = cost
				bestTour = append([]int(nil), tour...)
			}
		}

		// Phase 2: atomic update — evaporate everything, then deposit.
		a.update(tau, tours, lengths)

		// Iterations before the first feasible tour leave no trace point.
		if bestTour != nil {
			trace = append(trace, solver.TracePoint{Iteration: it, BestCost: bestCost})
		}
	}

	if bestTour == nil {
		return solver.Result{}, solver.ErrNoFeasibleTour
	}
	names, err := a.p.TourNames(bestTour)
	if err != nil {
		return solver.Result{}, err
	}
	return solver.Result{
		Tour:     names,
		Distance: bestCost,
		Elapsed:  time.Since(started),
		Trace:    trace,
	}, nil
}

// construct builds one ant's tour from the start city. At every step the
// next city is drawn among the unvisited, edge-connected candidates with
// probability proportional to τ(edge)^Alpha · (1/d)^Beta. Returns ok=false
// on a dead end or a missing closing edge.
func (a *AntColony) construct(rng *rand.Rand, tau []float64) ([]int, float64, bool) {
	var (
		n       = a.p.Order()
		start   = a.p.Start()
		tour    = make([]int, 1, n)
		visited = make([]bool, n)
		weights = make([]float64, 0, n) // candidate selection weights
		cands   = make([]int, 0, n)    // candidate city indices
		cur     = start
		step    int
	)
	tour[0] = start
	visited[start] = true

	for step = 1; step < n; step++ {
		cands = cands[:0]
		weights = weights[:0]

		var (
			adj   = a.p.NeighborIndices(cur)
			total float64 // normalization mass
			i     int     // neighbor index
			d     float64 // edge distance
			w     float64 // selection weight
		)
		for i = 0; i < len(adj); i++ {
			if visited[adj[i]] {
				continue
			}
			d = a.p.Weight(cur, adj[i])
			if d < distFloor {
				d = distFloor
			}
			w = math.Pow(tau[cur*n+adj[i]], a.opts.Alpha) * math.Pow(1/d, a.opts.Beta)
			cands = append(cands, adj[i])
			weights = append(weights, w)
			total += w
		}
		if len(cands) == 0 || total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
			return nil, 0, false // dead end (or degenerate weights)
		}

		// Roulette draw over the candidate mass.
		var (
			r    = rng.Float64() * total
			pick = len(cands) - 1 // fall through to the last candidate on FP residue
		)
		for i = 0; i < len(cands); i++ {
			r -= weights[i]
			if r <= 0 {
				pick = i
				break
			}
		}

		cur = cands[pick]
		tour = append(tour, cur)
		visited[cur] = true
	}

	// The closing edge back to the start must exist.
	if math.IsInf(a.p.Weight(cur, start), 1) {
		return nil, 0, false
	}
	cost, err := a.p.TourDistance(tour)
	if err != nil {
		return nil, 0, false
	}
	return tour, cost, true
}

// update applies one atomic pheromone pass: every arc evaporates by
// (1-Rho), then each successful tour deposits Q/length on both arcs of
// every edge it used (symmetric deposit; the model's distances are
// symmetric).
func (a *AntColony) update(tau []float64, tours [][]int, lengths []float64) {
	var (
		n = a.p.Order()
		i int
	)
	for i = 0; i < n*n; i++ {
		tau[i] *= 1 - a.opts.Rho
	}

	var (
		t       int     // tour index
		pos     int     // position within a tour
		u, v    int     // arc endpoints
		deposit float64 // Q / tour length
	)
	for t = 0; t < len(tours); t++ {
		if lengths[t] < distFloor {
			// All-zero-distance tours exist on degenerate inputs; cap the deposit.
			deposit = a.opts.Q / distFloor
		} else {
			deposit = a.opts.Q / lengths[t]
		}
		for pos = 0; pos < len(tours[t]); pos++ {
			u = tours[t][pos]
			v = tours[t][(pos+1)%len(tours[t])]
			tau[u*n+v] += deposit
			tau[v*n+u] += deposit
		}
	}
}
