// File: dijkstra.go
// Role: ShortestPaths entry point and the runner state machine
//       (init → process → relax → result).
// Determinism:
//   - Equal keys are extracted in heap-shape order (left child first).
// Concurrency:
//   - A run owns its tables and heap; the graph is only read.

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/travelplanner/core"
	"github.com/katalvlaran/travelplanner/minheap"
)

// ShortestPaths computes shortest distances from Options.Source to every
// city of g.
//
// Preconditions and validation (in order):
//  1. Source must be supplied (ErrSourceNotSet).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must lie in [0, N) (ErrInvalidSource).
//
// Weights are non-negative by construction (core.Graph rejects negative
// roads), which is the precondition Dijkstra relies on. A path whose
// length would exceed math.MaxInt64 aborts the run with ErrDistanceOverflow.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func ShortestPaths(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if !cfg.sourceSet {
		return nil, ErrSourceNotSet
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasCity(cfg.Source) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidSource, cfg.Source, g.NumCities())
	}

	// 3) Allocate per-run tables and the frontier.
	n := g.NumCities()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		reached: make([]bool, n),
		parent:  make([]core.City, n),
		pq:      minheap.New[uint64](n),
	}

	// 4) Run the state machine.
	if err := r.init(); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// runner holds the mutable state of a single execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []int64     // best known distance; meaningful only where reached
	reached []bool      // a finite distance has been found
	parent  []core.City // predecessor on the best known path, or core.NoCity
	pq      *minheap.Heap[uint64]
}

// init puts every city in the heap as unreached, then promotes the source to 0.
func (r *runner) init() error {
	// 1) Every city starts unreached, without a parent, inside the heap.
	for c := range r.dist {
		r.parent[c] = core.NoCity
		if err := r.pq.Push(c, unreachedKey); err != nil {
			return fmt.Errorf("dijkstra: load frontier: %w", err)
		}
	}

	// 2) The source is reached at distance 0 and sifted to the root.
	src := int(r.options.Source)
	r.dist[src] = 0
	r.reached[src] = true
	r.pq.DecreaseKey(src, 0)

	return nil
}

// process settles cities in increasing distance order until the heap is
// empty, only unreached cities remain, or the closest remaining city lies
// beyond MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Extract the closest city; this settles it.
		item, _ := r.pq.ExtractMin()
		u := core.City(item.ID)

		// 2) Unreached keys sort last, so nothing reachable is left.
		if !r.reached[u] {
			break
		}

		// 3) Stop at the distance cap; u and the rest stay unsettled.
		if r.dist[u] > r.options.MaxDistance {
			break
		}

		// 4) Relax the roads leaving u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbour of the freshly settled city u.
// A neighbour is only updated while it is still in the heap; settled
// cities cannot improve under non-negative weights.
func (r *runner) relax(u core.City) error {
	roads, err := r.g.Roads(u)
	if err != nil {
		return fmt.Errorf("dijkstra: roads of %d: %w", u, err)
	}

	du := r.dist[u]
	for _, road := range roads {
		v, w := road.To, road.Distance

		// 1) Skip closed roads and settled neighbours.
		if r.options.InfEdgeThreshold > 0 && w >= r.options.InfEdgeThreshold {
			continue
		}
		if !r.pq.Contains(int(v)) {
			continue
		}

		// 2) Candidate distance through u; both terms are non-negative.
		if w > math.MaxInt64-du {
			return fmt.Errorf("%w: %d + %d via road %d—%d", ErrDistanceOverflow, du, w, u, v)
		}
		nd := du + w

		// 3) Keep only strict improvements.
		if r.reached[v] && nd >= r.dist[v] {
			continue
		}

		// 4) Record the new best path and lower v's key in place.
		r.dist[v] = nd
		r.reached[v] = true
		r.parent[v] = u
		r.pq.DecreaseKey(int(v), uint64(nd))
	}

	return nil
}

// result freezes the run into a Result. Unreached cities, and cities
// beyond MaxDistance, become unreachable with no parent.
func (r *runner) result() *Result {
	res := &Result{
		source: r.options.Source,
		dist:   make([]Distance, len(r.dist)),
		parent: r.parent,
	}
	for c, d := range r.dist {
		if !r.reached[c] || d > r.options.MaxDistance {
			res.parent[c] = core.NoCity
			continue
		}
		res.dist[c] = Distance{Value: d, Reachable: true}
	}

	return res
}
