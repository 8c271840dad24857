package hillclimb

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/heurtsp/problem"
	"github.com/katalvlaran/heurtsp/solver"
)

// HillClimb is a single-use hill-climbing solver bound to one problem and
// one configuration. Construct via New, call Solve exactly once.
type HillClimb struct {
	p    *problem.Problem
	opts Options
}

// New validates the configuration and binds the solver to the problem.
//
// Errors: solver.ErrNilProblem, solver.ErrInvalidConfig.
func New(p *problem.Problem, opts Options) (*HillClimb, error) {
	if p == nil {
		return nil, solver.ErrNilProblem
	}
	if opts.MaxIterations <= 0 {
		return nil, solver.ErrInvalidConfig
	}
	return &HillClimb{p: p, opts: opts}, nil
}

// Name implements solver.Solver.
func (h *HillClimb) Name() string { return "Hill Climbing" }

// Solve runs first-improvement local search for exactly MaxIterations
// iterations and returns the best tour found.
//
// Each iteration perturbs the current tour once, evaluates the candidate,
// and accepts it iff its cost is strictly lower; the trace records
// (iteration, currentCost) every iteration, accepted or not, so the
// series is non-increasing by construction.
//
// Errors: solver.ErrNoFeasibleTour when initial construction fails.
//
// Complexity: O(MaxIterations·n) time, O(n) extra space.
func (h *HillClimb) Solve() (solver.Result, error) {
	started := time.Now()
	rng := solver.NewRand(h.opts.Seed)

	cur, err := solver.RandomTour(h.p, rng)
	if err != nil {
		return solver.Result{}, err
	}
	cost, err := h.p.TourDistance(cur)
	if err != nil {
		// RandomTour guarantees feasibility; any failure here is a defect
		// in the problem model and is surfaced, not swallowed.
		return solver.Result{}, err
	}

	var (
		n     = h.p.Order()
		cand  = make([]int, n)                                  // candidate buffer, reused
		trace = make(solver.Trace, 0, h.opts.MaxIterations)     // one point per iteration
		it    int                                               // iteration counter
		c     float64                                           // candidate cost
	)
	for it = 0; it < h.opts.MaxIterations; it++ {
		copy(cand, cur)
		perturb(cand, rng)

		// TourDistance rejects candidates that traverse a missing edge.
		c, err = h.p.TourDistance(cand)
		if err == nil && c < cost {
			copy(cur, cand)
			cost = c
		}
		trace = append(trace, solver.TracePoint{Iteration: it, BestCost: cost})
	}

	names, err := h.p.TourNames(cur)
	if err != nil {
		return solver.Result{}, err
	}
	return solver.Result{
		Tour:     names,
		Distance: cost,
		Elapsed:  time.Since(started),
		Trace:    trace,
	}, nil
}

// perturb applies one random move to the open tour in place, leaving the
// start city pinned at position 0. Tours with fewer than three cities
// have no non-trivial move and are left unchanged.
//
// Complexity: O(n) worst case (segment reversal), O(1) for a swap.
func perturb(tour []int, rng *rand.Rand) {
	n := len(tour)
	if n < 3 {
		return
	}

	// Two random distinct interior positions i < k.
	i := 1 + rng.Intn(n-1)
	k := 1 + rng.Intn(n-1)
	if i == k {
		k = 1 + (k % (n - 1)) // shift to the next interior position, wrapping
		if i == k {
			return
		}
	}
	if i > k {
		i, k = k, i
	}

	if rng.Intn(2) == 0 {
		tour[i], tour[k] = tour[k], tour[i]
	} else {
		solver.ReverseSegment(tour, i, k)
	}
}
