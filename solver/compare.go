package solver

// RunRecord is the outcome of one solver within a comparison run: either
// a Result or the error that aborted that solver.
type RunRecord struct {
	Name   string // solver name, as reported by Solver.Name
	Result Result // zero value when Err != nil
	Err    error  // nil on success
}

// Run executes the given solvers sequentially, in argument order, and
// collects one RunRecord per solver. A solver failure (for example
// ErrNoFeasibleTour during initial construction) is recorded in its
// RunRecord and does not abort the remaining solvers.
//
// Complexity: the sum of the solvers' Solve costs; O(len(solvers)) space.
func Run(solvers ...Solver) []RunRecord {
	records := make([]RunRecord, 0, len(solvers))

	var (
		s   Solver // current solver
		res Result // its result on success
		err error  // its failure otherwise
		i   int    // slate index
	)
	for i = 0; i < len(solvers); i++ {
		s = solvers[i]
		if s == nil {
			records = append(records, RunRecord{Name: "", Err: ErrNilSolver})
			continue
		}
		res, err = s.Solve()
		if err != nil {
			records = append(records, RunRecord{Name: s.Name(), Err: err})
			continue
		}
		records = append(records, RunRecord{Name: s.Name(), Result: res})
	}
	return records
}
