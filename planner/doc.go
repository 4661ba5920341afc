// Package planner drives one interactive travel query over a line-based
// protocol: it prompts for a road map, reads it, runs the shortest-path
// engine once and prints the distance and route.
//
// Protocol (whitespace-separated integers, line breaks not significant):
//
//	Enter number of cities: N
//	Enter number of routes: R
//	Enter routes (City1 City2 Distance):
//	a b w      (R times)
//	Enter source city: S
//	Enter destination city: D
//
// Output on success:
//
//	Shortest Distance from City S to City D: X km
//	Path: S -> ... -> D
//
// When D cannot be reached the session prints "No path exists from City S
// to City D" and still succeeds. Malformed or out-of-range input aborts
// the session with an error wrapping ErrMalformedInput, ErrNegativeRoutes
// or a core/dijkstra sentinel.
package planner
