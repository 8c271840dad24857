package solver

import (
	"errors"
	"time"
)

// Sentinel errors shared by all solver constructors and runs.
var (
	// ErrNilProblem indicates that a nil *problem.Problem was passed to a
	// solver constructor.
	ErrNilProblem = errors.New("solver: problem is nil")

	// ErrNilSolver indicates that a nil Solver was handed to the
	// comparison harness.
	ErrNilSolver = errors.New("solver: solver is nil")

	// ErrInvalidConfig indicates a non-positive iteration/population/ant
	// count or an out-of-range rate in a solver's Options.
	ErrInvalidConfig = errors.New("solver: invalid configuration")

	// ErrNoFeasibleTour indicates that no valid tour could be constructed
	// within the bounded retry budget (the graph may not admit a
	// Hamiltonian cycle from the start city).
	ErrNoFeasibleTour = errors.New("solver: no feasible tour within retry budget")
)

// TracePoint is one sample of a convergence trace: the best cost known
// after the given iteration (or generation) completed.
type TracePoint struct {
	Iteration int     // zero-based iteration/generation index
	BestCost  float64 // best tour cost found so far
}

// Trace is an ordered convergence series. BestCost is monotonically
// non-increasing; the trace is read-only once Solve returns.
type Trace []TracePoint

// Result is the outcome of a single Solve call. It is a value object: no
// field is mutated after creation.
type Result struct {
	// Tour is the open city sequence, beginning at the problem's start
	// city; the closing edge back to the start is implicit.
	Tour []string

	// Distance is the total closed-tour cost, stabilized to 1e-9.
	Distance float64

	// Elapsed is the wall-clock duration of the Solve call.
	Elapsed time.Duration

	// Trace is the convergence series, or nil when the solver does not
	// produce one.
	Trace Trace
}

// Solver is the capability interface shared by the three heuristics.
// Implementations are single-use: construct, call Solve once, discard.
type Solver interface {
	// Name identifies the algorithm in comparison output.
	Name() string

	// Solve runs the algorithm to completion and returns its Result.
	Solve() (Result, error)
}
