package core

import (
	"errors"
	"sync"
)

// DefaultMaxCities is the city capacity used when WithMaxCities is not given.
const DefaultMaxCities = 10

// NoCity marks the absence of a city (e.g. the parent of a source or an
// unreached city).
const NoCity City = -1

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidCityCount indicates NewGraph was asked for fewer than one city.
	ErrInvalidCityCount = errors.New("core: city count must be positive")

	// ErrCapacityExceeded indicates the city count is above the configured maximum.
	ErrCapacityExceeded = errors.New("core: city capacity exceeded")

	// ErrInvalidCity indicates a city identifier outside [0, N).
	ErrInvalidCity = errors.New("core: invalid city")

	// ErrInvalidWeight indicates a negative road distance.
	ErrInvalidWeight = errors.New("core: road distance must be non-negative")
)

// City identifies a node of the road map. Valid values are [0, NumCities()).
type City int

// Road is one directed adjacency entry: the neighbouring city and the
// distance to it. Every undirected road is stored as two Road values.
type Road struct {
	// To is the city at the far end of the road.
	To City

	// Distance is the non-negative length of the road.
	Distance int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	maxCities int
}

// WithMaxCities overrides DefaultMaxCities. Values < 1 are ignored.
func WithMaxCities(n int) GraphOption {
	return func(o *graphOptions) {
		if n > 0 {
			o.maxCities = n
		}
	}
}

// Graph is an undirected weighted road map over a fixed set of cities.
//
// adjacency[c] lists the roads leaving c, most recently added first.
type Graph struct {
	mu sync.RWMutex // guards adjacency and roads

	numCities int
	roads     int // undirected road count
	adjacency [][]Road
}
