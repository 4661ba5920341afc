// File: graph.go
// Role: Graph construction, road insertion and adjacency queries.
// Determinism:
//   - Roads(c) returns entries in reverse insertion order (newest first).
// Concurrency:
//   - AddRoad takes the write lock; queries take the read lock.

package core

import "fmt"

// NewGraph creates a graph with numCities cities and no roads.
//
// Steps:
//  1. Apply options over the defaults.
//  2. Validate 1 ≤ numCities ≤ maxCities.
//  3. Allocate one empty adjacency list per city.
//
// Complexity: O(N).
func NewGraph(numCities int, opts ...GraphOption) (*Graph, error) {
	cfg := graphOptions{maxCities: DefaultMaxCities}
	for _, opt := range opts {
		opt(&cfg)
	}

	if numCities < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCityCount, numCities)
	}
	if numCities > cfg.maxCities {
		return nil, fmt.Errorf("%w: %d cities requested, at most %d supported",
			ErrCapacityExceeded, numCities, cfg.maxCities)
	}

	return &Graph{
		numCities: numCities,
		adjacency: make([][]Road, numCities),
	}, nil
}

// NumCities returns N, the number of cities fixed at construction.
func (g *Graph) NumCities() int {
	return g.numCities
}

// NumRoads returns the number of undirected roads added so far.
func (g *Graph) NumRoads() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.roads
}

// HasCity reports whether c lies in [0, N).
func (g *Graph) HasCity(c City) bool {
	return c >= 0 && int(c) < g.numCities
}

// AddRoad inserts an undirected road between a and b of the given distance.
//
// Both adjacency entries a→b and b→a are prepended to their lists, so the
// graph stays symmetric. A self-loop (a == b) stores two entries on a,
// which can never shorten a path.
//
// Errors:
//   - ErrInvalidCity if a or b is outside [0, N).
//   - ErrInvalidWeight if distance < 0.
//
// Complexity: O(deg) for the prepend copy; graphs here are small.
func (g *Graph) AddRoad(a, b City, distance int64) error {
	if !g.HasCity(a) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidCity, a, g.numCities)
	}
	if !g.HasCity(b) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidCity, b, g.numCities)
	}
	if distance < 0 {
		return fmt.Errorf("%w: road %d—%d distance=%d", ErrInvalidWeight, a, b, distance)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.prepend(a, Road{To: b, Distance: distance})
	g.prepend(b, Road{To: a, Distance: distance})
	g.roads++

	return nil
}

// prepend puts r at the head of c's adjacency list. Caller holds g.mu.
func (g *Graph) prepend(c City, r Road) {
	list := g.adjacency[c]
	list = append(list, Road{})
	copy(list[1:], list)
	list[0] = r
	g.adjacency[c] = list
}

// Roads returns a copy of the adjacency list of c, newest road first.
//
// Errors:
//   - ErrInvalidCity if c is outside [0, N).
func (g *Graph) Roads(c City) ([]Road, error) {
	if !g.HasCity(c) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidCity, c, g.numCities)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Road, len(g.adjacency[c]))
	copy(out, g.adjacency[c])

	return out, nil
}
