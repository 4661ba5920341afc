package core_test

import (
	"fmt"

	"github.com/katalvlaran/travelplanner/core"
)

// ExampleGraph_AddRoad builds a three-city map and lists the roads of city 0.
func ExampleGraph_AddRoad() {
	g, err := core.NewGraph(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = g.AddRoad(0, 1, 4)
	_ = g.AddRoad(0, 2, 1)

	roads, _ := g.Roads(0)
	for _, r := range roads {
		fmt.Printf("0 -> %d (%d km)\n", r.To, r.Distance)
	}
	// Output:
	// 0 -> 2 (1 km)
	// 0 -> 1 (4 km)
}
