package problem

import "math"

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting tour ranking.
const roundScale = 1e9

// Round1e9 returns x rounded to 1e-9 absolute precision. All costs
// returned by this package and by the solvers are stabilized this way.
//
// Complexity: O(1).
func Round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// ValidatePermutation checks that tour is a permutation of {0..n-1} of
// length n. Returns ErrInvalidTour otherwise.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour []int, n int) error {
	if n <= 0 || len(tour) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int // loop index
		v int // current vertex
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrInvalidTour
		}
		if seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}
	return nil
}

// TourDistance sums the cost of the closed cycle induced by an open index
// tour: consecutive edges plus the implicit closing edge tour[n-1]→tour[0].
// The tour may start at any rotation of the cycle.
//
// Errors: ErrInvalidTour when tour is not a permutation of all cities or
// traverses a missing edge (closing edge included).
//
// Complexity: O(n) time, O(n) space (permutation check).
func (p *Problem) TourDistance(tour []int) (float64, error) {
	n := len(p.cities)
	if err := ValidatePermutation(tour, n); err != nil {
		return 0, err
	}

	var (
		sum float64 // accumulated cycle cost
		i   int     // position in the tour
		d   float64 // current edge weight
	)
	for i = 0; i < n; i++ {
		d = p.w[tour[i]*n+tour[(i+1)%n]]
		if math.IsInf(d, 1) {
			// The proposed cycle uses an edge absent from the matrix.
			return 0, ErrInvalidTour
		}
		sum += d
	}
	return Round1e9(sum), nil
}

// PathDistance is the named-city counterpart of TourDistance: it resolves
// each name, validates the permutation, and sums the closed-cycle cost.
//
// Errors: ErrInvalidTour when a name is unknown, duplicated, missing, or
// when any traversed edge is absent.
//
// Complexity: O(n) time, O(n) space.
func (p *Problem) PathDistance(tour []string) (float64, error) {
	n := len(p.cities)
	if len(tour) != n {
		return 0, ErrInvalidTour
	}
	idx := make([]int, n)

	var (
		i  int  // position in the tour
		v  int  // resolved index
		ok bool // name lookup flag
	)
	for i = 0; i < n; i++ {
		v, ok = p.index[tour[i]]
		if !ok {
			return 0, ErrInvalidTour
		}
		idx[i] = v
	}
	return p.TourDistance(idx)
}
