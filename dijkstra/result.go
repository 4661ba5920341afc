// File: result.go
// Role: Result accessors, path reconstruction and the Route shorthand.
// Determinism:
//   - PathTo follows the parent table, so it returns the one path the run recorded.

package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/travelplanner/core"
)

// Result holds the settled distances and predecessor table of one run.
type Result struct {
	source core.City
	dist   []Distance
	parent []core.City
}

// Source returns the city the run started from.
func (r *Result) Source() core.City { return r.source }

// Distance returns the shortest distance to c. Out-of-range cities are
// reported unreachable.
func (r *Result) Distance(c core.City) Distance {
	if c < 0 || int(c) >= len(r.dist) {
		return Distance{}
	}

	return r.dist[c]
}

// Parent returns the predecessor of c on its shortest path, or
// core.NoCity for the source, unreachable cities and out-of-range ids.
func (r *Result) Parent(c core.City) core.City {
	if c < 0 || int(c) >= len(r.parent) {
		return core.NoCity
	}

	return r.parent[c]
}

// PathTo reconstructs the shortest path from the source to dest by
// walking the parent table backward and reversing it.
//
// Errors:
//   - ErrInvalidDestination if dest is outside the graph.
//   - ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest core.City) (Path, error) {
	if dest < 0 || int(dest) >= len(r.dist) {
		return Path{}, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidDestination, dest, len(r.dist))
	}
	d := r.dist[dest]
	if !d.Reachable {
		return Path{}, fmt.Errorf("%w: from %d to %d", ErrNoPath, r.source, dest)
	}

	var cities []core.City
	for c := dest; c != core.NoCity; c = r.parent[c] {
		cities = append(cities, c)
	}
	slices.Reverse(cities)

	return Path{Cities: cities, Distance: d.Value}, nil
}

// Route runs ShortestPaths from `from` and returns the path to `to`.
// Source(from) overrides any Source option in opts.
func Route(g *core.Graph, from, to core.City, opts ...Option) (Path, error) {
	res, err := ShortestPaths(g, append(slices.Clip(opts), Source(from))...)
	if err != nil {
		return Path{}, err
	}

	return res.PathTo(to)
}
