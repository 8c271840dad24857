package solver

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Factory builds a fresh solver instance for one benchmark run. The seed
// is derived per run; the factory is expected to thread it into the
// solver's Options.
type Factory func(seed int64) (Solver, error)

// Summary aggregates repeated runs of one solver configuration across
// derived seeds.
type Summary struct {
	Name           string        // solver name, from the first constructed instance
	Runs           int           // total runs attempted
	Failures       int           // runs that returned an error
	MeanDistance   float64       // mean best distance over successful runs
	StdDevDistance float64       // sample standard deviation of best distance
	MeanElapsed    time.Duration // mean wall-clock time over successful runs
	Best           Result        // best (lowest-distance) successful result
}

// Benchmark runs a solver configuration `runs` times, deriving one RNG
// seed per run from baseSeed via DeriveSeed, and summarizes distance and
// elapsed-time statistics with gonum. Per-run failures are counted, not
// fatal; the call fails only when the configuration itself is invalid or
// every single run fails (the last run error is returned then).
//
// Contracts:
//   - runs must be positive (ErrInvalidConfig).
//   - factory must be non-nil (ErrInvalidConfig).
//
// Complexity: runs × the solver's Solve cost; O(runs) extra space.
func Benchmark(factory Factory, runs int, baseSeed int64) (Summary, error) {
	if runs <= 0 || factory == nil {
		return Summary{}, ErrInvalidConfig
	}

	var (
		sum     = Summary{Runs: runs}
		dists   = make([]float64, 0, runs) // successful distances
		elapsed = make([]float64, 0, runs) // successful durations, seconds
		lastErr error                      // most recent run failure
		s       Solver
		res     Result
		err     error
		i       int
	)
	for i = 0; i < runs; i++ {
		s, err = factory(DeriveSeed(baseSeed, uint64(i)))
		if err != nil {
			// A factory error is a configuration error: fail fast.
			return Summary{}, err
		}
		if s == nil {
			return Summary{}, ErrNilSolver
		}
		if sum.Name == "" {
			sum.Name = s.Name()
		}

		res, err = s.Solve()
		if err != nil {
			sum.Failures++
			lastErr = err
			continue
		}
		dists = append(dists, res.Distance)
		elapsed = append(elapsed, res.Elapsed.Seconds())
		if len(dists) == 1 || res.Distance < sum.Best.Distance {
			sum.Best = res
		}
	}

	if len(dists) == 0 {
		return sum, lastErr
	}

	sum.MeanDistance = stat.Mean(dists, nil)
	if len(dists) > 1 {
		sum.StdDevDistance = stat.StdDev(dists, nil)
	}
	sum.MeanElapsed = time.Duration(stat.Mean(elapsed, nil) * float64(time.Second))
	return sum, nil
}
