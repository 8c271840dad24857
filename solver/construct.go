package solver

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/heurtsp/problem"
)

// expansionFactor scales the backtracking budget with the squared problem
// order; the additive floor keeps tiny instances from starving.
const (
	expansionFactor  = 64
	expansionMinimum = 1024
)

// RandomTour constructs a random feasible tour: an open index permutation
// of all cities, starting at the problem's start city, whose consecutive
// edges and closing edge all exist in the distance matrix.
//
// Algorithm: depth-first walk from the start city over shuffled neighbor
// lists, backtracking out of dead ends. The walk is bounded by a node
// expansion budget of expansionFactor·n² + expansionMinimum; exhausting it
// (or exhausting the search space) yields ErrNoFeasibleTour.
//
// Contracts:
//   - p must be non-nil (ErrNilProblem).
//   - rng may be nil; the deterministic default stream is used then.
//
// Complexity: O(budget·deg) worst case; O(n·deg) typical on graphs that
// admit many Hamiltonian cycles. O(n + deg) extra space per depth level.
func RandomTour(p *problem.Problem, rng *rand.Rand) ([]int, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	r := rng
	if r == nil {
		r = NewRand(0)
	}

	var (
		n          = p.Order()
		start      = p.Start()
		budget     = expansionFactor*n*n + expansionMinimum
		expansions = 0               // nodes expanded so far
		tour       = make([]int, 0, n)
		visited    = make([]bool, n)
	)

	// walk extends the tour with cur and recurses over a shuffled copy of
	// cur's unvisited neighbors. Returns true once a full closed tour is
	// reachable from the current prefix.
	var walk func(cur int) bool
	walk = func(cur int) bool {
		tour = append(tour, cur)
		visited[cur] = true

		if len(tour) == n {
			// All cities placed; the tour closes iff the wrap edge exists.
			if !math.IsInf(p.Weight(cur, start), 1) {
				return true
			}
		} else {
			var (
				adj   = p.NeighborIndices(cur)
				cands = make([]int, 0, len(adj))
				i     int // candidate index
			)
			for i = 0; i < len(adj); i++ {
				if !visited[adj[i]] {
					cands = append(cands, adj[i])
				}
			}
			r.Shuffle(len(cands), func(a, b int) { cands[a], cands[b] = cands[b], cands[a] })

			for i = 0; i < len(cands); i++ {
				expansions++
				if expansions > budget {
					break // budget exhausted; unwind as a failure
				}
				if walk(cands[i]) {
					return true
				}
			}
		}

		// Dead end (or budget hit): undo cur and let the caller try another branch.
		tour = tour[:len(tour)-1]
		visited[cur] = false
		return false
	}

	if walk(start) {
		return tour, nil
	}
	return nil, ErrNoFeasibleTour
}

// ReverseSegment reverses the inclusive segment tour[i..k] in place.
// This is the segment-reversal primitive shared by the perturbation and
// mutation moves; the fixed start position 0 must stay outside [i..k].
//
// Contracts: 1 ≤ i ≤ k ≤ len(tour)-1. Out-of-contract calls are no-ops.
//
// Complexity: O(k-i) time, O(1) space.
func ReverseSegment(tour []int, i, k int) {
	if i < 1 || k >= len(tour) || i > k {
		return
	}
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
