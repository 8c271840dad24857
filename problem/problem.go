package problem

import "math"

// Problem is an immutable TSP instance: the city set in enumeration order,
// the start city, and a dense symmetric distance matrix where +Inf encodes
// a missing edge.
//
// Construct via New; the zero value is not usable.
type Problem struct {
	cities []string       // enumeration order (first appearance in the edge list)
	index  map[string]int // city name -> index in cities
	start  int            // index of the start city
	w      []float64      // linearized n×n weights; +Inf = no edge
	adj    [][]int        // adj[i] = neighbor indices of i, ascending
}

// New builds a Problem from an undirected edge list. City enumeration
// order is first-appearance order (From before To within each edge).
//
// Contracts:
//   - edges must name at least two distinct cities (ErrNoCities),
//   - start must appear in the edge list (ErrUnknownStart),
//   - every distance must be finite and non-negative
//     (ErrBadWeight / ErrNegativeWeight),
//   - self-loops are rejected (ErrSelfLoop),
//   - empty city names are rejected (ErrUnknownCity).
//
// Complexity: O(E + V²) time, O(V²) space for the dense matrix.
func New(start string, edges []Edge) (*Problem, error) {
	if start == "" {
		return nil, ErrUnknownStart
	}

	// Pass 1: discover cities in insertion order and validate edge shape.
	var (
		cities []string       // enumeration order under construction
		index  = make(map[string]int)
		e      Edge // current edge under validation
		i      int  // loop index
		ok     bool // map presence flag
	)
	intern := func(name string) error {
		if name == "" {
			return ErrUnknownCity
		}
		if _, ok = index[name]; !ok {
			index[name] = len(cities)
			cities = append(cities, name)
		}
		return nil
	}
	for i = 0; i < len(edges); i++ {
		e = edges[i]
		if e.From == e.To {
			return nil, ErrSelfLoop
		}
		if math.IsNaN(e.Dist) || math.IsInf(e.Dist, 0) {
			return nil, ErrBadWeight
		}
		if e.Dist < 0 {
			return nil, ErrNegativeWeight
		}
		if err := intern(e.From); err != nil {
			return nil, err
		}
		if err := intern(e.To); err != nil {
			return nil, err
		}
	}

	n := len(cities)
	if n < 2 {
		return nil, ErrNoCities
	}
	si, ok := index[start]
	if !ok {
		return nil, ErrUnknownStart
	}

	// Pass 2: fill the dense matrix; +Inf everywhere except recorded pairs.
	w := make([]float64, n*n)
	for i = 0; i < n*n; i++ {
		w[i] = math.Inf(1)
	}
	var u, v int // endpoint indices of the current edge
	for i = 0; i < len(edges); i++ {
		e = edges[i]
		u = index[e.From]
		v = index[e.To]
		// Symmetric storage; a later duplicate record overwrites.
		w[u*n+v] = e.Dist
		w[v*n+u] = e.Dist
	}
	for i = 0; i < n; i++ {
		w[i*n+i] = 0 // cost of staying put; never traversed by a valid tour
	}

	// Pass 3: neighbor lists in ascending index order.
	adj := make([][]int, n)
	var j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j && !math.IsInf(w[i*n+j], 1) {
				adj[i] = append(adj[i], j)
			}
		}
	}

	return &Problem{cities: cities, index: index, start: si, w: w, adj: adj}, nil
}

// Order returns the number of cities n.
func (p *Problem) Order() int { return len(p.cities) }

// Start returns the index of the start city.
func (p *Problem) Start() int { return p.start }

// StartCity returns the name of the start city.
func (p *Problem) StartCity() string { return p.cities[p.start] }

// Cities returns the city names in enumeration order (fresh copy).
func (p *Problem) Cities() []string {
	out := make([]string, len(p.cities))
	copy(out, p.cities)
	return out
}

// CityAt returns the name of the city at index i, or "" when i is out of
// range.
func (p *Problem) CityAt(i int) string {
	if i < 0 || i >= len(p.cities) {
		return ""
	}
	return p.cities[i]
}

// Index returns the index of the named city and whether it exists.
func (p *Problem) Index(name string) (int, bool) {
	i, ok := p.index[name]
	return i, ok
}

// Weight returns the distance between city indices i and j, +Inf when the
// pair is not connected or either index is out of range. This is the
// allocation-free fast path for solver hot loops.
//
// Complexity: O(1).
func (p *Problem) Weight(i, j int) float64 {
	n := len(p.cities)
	if i < 0 || i >= n || j < 0 || j >= n {
		return math.Inf(1)
	}
	return p.w[i*n+j]
}

// NeighborIndices returns the indices of cities directly connected to i,
// in ascending order. The returned slice is shared internal state and
// must be treated as read-only; it stays valid for the Problem lifetime.
//
// Complexity: O(1).
func (p *Problem) NeighborIndices(i int) []int {
	if i < 0 || i >= len(p.adj) {
		return nil
	}
	return p.adj[i]
}

// Distance returns the distance between two named cities.
//
// Errors: ErrUnknownCity when either name is not in the city set,
// ErrNoEdge when the pair is not directly connected.
//
// Complexity: O(1).
func (p *Problem) Distance(a, b string) (float64, error) {
	ia, ok := p.index[a]
	if !ok {
		return 0, ErrUnknownCity
	}
	ib, ok := p.index[b]
	if !ok {
		return 0, ErrUnknownCity
	}
	d := p.w[ia*len(p.cities)+ib]
	if ia != ib && math.IsInf(d, 1) {
		return 0, ErrNoEdge
	}
	return d, nil
}

// Neighbors returns the names of cities directly connected to the named
// city, in enumeration order (fresh copy).
//
// Errors: ErrUnknownCity when the name is not in the city set.
//
// Complexity: O(deg) time and space.
func (p *Problem) Neighbors(city string) ([]string, error) {
	i, ok := p.index[city]
	if !ok {
		return nil, ErrUnknownCity
	}
	out := make([]string, len(p.adj[i]))
	var k int
	for k = 0; k < len(p.adj[i]); k++ {
		out[k] = p.cities[p.adj[i][k]]
	}
	return out, nil
}

// TourNames converts an index tour into the corresponding city names.
// Out-of-range indices yield ErrInvalidTour.
//
// Complexity: O(n) time and space.
func (p *Problem) TourNames(tour []int) ([]string, error) {
	out := make([]string, len(tour))
	var i int
	for i = 0; i < len(tour); i++ {
		if tour[i] < 0 || tour[i] >= len(p.cities) {
			return nil, ErrInvalidTour
		}
		out[i] = p.cities[tour[i]]
	}
	return out, nil
}
