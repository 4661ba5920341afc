// Package core provides the road map used by the planner: a small,
// undirected, weighted graph over densely numbered cities.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Cities are integers in [0, N), fixed when the graph is created.
//   - Every road is bidirectional: AddRoad(a, b, w) stores a→b and b→a,
//     both with weight w. A one-way road cannot be represented.
//   - Weights are non-negative integers (ErrInvalidWeight otherwise).
//   - Each city owns an ordered adjacency list; the most recently added
//     road comes first.
//   - There is no removal and no lookup by pair; traversal is strictly
//     adjacency-list iteration via Roads.
//
// Configuration Options (GraphOption):
//
//	– WithMaxCities(n int)
//	    Upper bound on the city count accepted by NewGraph.
//	    Default is DefaultMaxCities (10).
//
// Core Methods:
//
//	NewGraph(numCities, opts...) (*Graph, error) // O(N)
//	AddRoad(a, b City, distance int64) error     // O(1) amortized
//	Roads(c City) ([]Road, error)                // O(deg(c))
//	NumCities() int, NumRoads() int, HasCity(c)  // O(1)
//
// Errors:
//
//	ErrInvalidCityCount - requested city count is < 1.
//	ErrCapacityExceeded - requested city count is above the configured maximum.
//	ErrInvalidCity      - city identifier outside [0, N).
//	ErrInvalidWeight    - negative road distance.
//
// Concurrency:
//
//	Graph guards its adjacency lists with a sync.RWMutex, so a built graph
//	may be read from several goroutines.
package core
