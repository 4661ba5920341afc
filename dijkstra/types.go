// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.Graph using an indexed min-heap with decrease-key.
//
// Every city enters the heap up front with an "unreached" key; the source
// is then decreased to zero. Each extraction settles one city, and each
// improving relaxation lowers the neighbour's key in place, so the heap
// never holds more than N entries.
//
// Options:
//
//	– Source:           starting city (required, must lie in [0, N)).
//	– MaxDistance:      optional cap; cities farther than this stay unreachable.
//	– InfEdgeThreshold: roads with distance >= this threshold are treated as closed.
//
// Errors (sentinel):
//
//	– ErrNilGraph           if the provided graph pointer is nil.
//	– ErrSourceNotSet       if no Source option was given.
//	– ErrInvalidSource      if the source city is outside [0, N).
//	– ErrInvalidDestination if a destination city is outside [0, N).
//	– ErrNoPath             if the destination is not reachable from the source.
//	– ErrDistanceOverflow   if a path length does not fit in int64.
//	– ErrBadMaxDistance     if MaxDistance < 0 (raised via panic).
//	– ErrBadInfThreshold    if InfEdgeThreshold <= 0 (raised via panic).
package dijkstra

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/travelplanner/core"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotSet indicates that the Source option was not supplied.
	ErrSourceNotSet = errors.New("dijkstra: source city not set")

	// ErrInvalidSource indicates a source city outside the graph.
	ErrInvalidSource = errors.New("dijkstra: invalid source city")

	// ErrInvalidDestination indicates a destination city outside the graph.
	ErrInvalidDestination = errors.New("dijkstra: invalid destination city")

	// ErrNoPath indicates that the destination cannot be reached from the source.
	ErrNoPath = errors.New("dijkstra: no path exists")

	// ErrDistanceOverflow indicates that extending a path by a road would
	// exceed math.MaxInt64.
	ErrDistanceOverflow = errors.New("dijkstra: path length overflows int64")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would close every road.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// unreachedKey is the heap key of a city that has not been reached yet.
// Heap keys are uint64 so that every real distance, math.MaxInt64
// included, orders strictly before it. It never leaves the engine;
// callers see Distance.Reachable == false.
const unreachedKey = math.MaxUint64

// Options configures the behavior of ShortestPaths.
//
// Source           – starting city; only honoured when set through Source().
// MaxDistance      – cities whose shortest distance exceeds this value are
//
//	reported unreachable. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – roads with distance ≥ this threshold are skipped.
//
//	Default is 0, meaning no road is closed.
type Options struct {
	Source           core.City
	MaxDistance      int64
	InfEdgeThreshold int64

	sourceSet bool
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// Source sets the starting city. Must be supplied.
func Source(c core.City) Option {
	return func(o *Options) {
		o.Source = c
		o.sourceSet = true
	}
}

// WithMaxDistance stops the search once the closest unsettled city is
// farther than max. Panics with ErrBadMaxDistance if max < 0.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks roads with distance ≥ threshold as closed.
// Panics with ErrBadInfThreshold if threshold <= 0.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no source set, no distance cap and
// no closed roads.
func DefaultOptions() Options {
	return Options{
		Source:           core.NoCity,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: 0,
	}
}

// Distance is an optional shortest distance: Value is meaningful only
// when Reachable is true.
type Distance struct {
	Value     int64
	Reachable bool
}

// String renders the distance, or "unreachable".
func (d Distance) String() string {
	if !d.Reachable {
		return "unreachable"
	}

	return strconv.FormatInt(d.Value, 10)
}

// Path is one shortest route from a source to a destination.
type Path struct {
	// Cities lists the route in travel order, source first.
	Cities []core.City

	// Distance is the total length of the route.
	Distance int64
}

// String joins the cities with " -> ", e.g. "0 -> 2 -> 1 -> 3".
func (p Path) String() string {
	var sb strings.Builder
	for i, c := range p.Cities {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(strconv.Itoa(int(c)))
	}

	return sb.String()
}
