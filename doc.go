// Package travelplanner answers one question about a small road map:
// what is the shortest route between two cities?
//
// Everything is organized under four subpackages:
//
//	core/     — the road map: cities, bidirectional weighted roads, adjacency lists
//	minheap/  — generic indexed binary min-heap with decrease-key
//	dijkstra/ — shortest-path engine, optional distances and path reconstruction
//	planner/  — the interactive prompt/read/report session
//
// and one command:
//
//	cmd/travelplanner — reads the map and the query from standard input
//
// Quick example:
//
//	g, _ := core.NewGraph(4)
//	_ = g.AddRoad(0, 1, 4)
//	_ = g.AddRoad(0, 2, 1)
//	_ = g.AddRoad(2, 1, 2)
//	_ = g.AddRoad(1, 3, 1)
//	p, _ := dijkstra.Route(g, 0, 3) // 4 km: 0 -> 2 -> 1 -> 3
package travelplanner
