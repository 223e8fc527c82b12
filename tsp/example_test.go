package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/tourplan/tsp"
)

// ExampleSolve plans a loop through four towns from a symmetric road-distance
// table. Two routes tie at 775 km (one is the reverse of the other); the one
// enumerated first in the supplied order is returned.
func ExampleSolve() {
	km := map[tsp.Location]map[tsp.Location]float64{
		"Nairobi": {"Nakuru": 160, "Eldoret": 310, "Kisumu": 350},
		"Nakuru":  {"Nairobi": 160, "Eldoret": 155, "Kisumu": 185},
		"Eldoret": {"Nairobi": 310, "Nakuru": 155, "Kisumu": 120},
		"Kisumu":  {"Nairobi": 350, "Nakuru": 185, "Eldoret": 120},
	}
	lookup := tsp.LookupFunc(func(from, to tsp.Location) (float64, bool) {
		d, ok := km[from][to]
		return d, ok
	})

	towns := []tsp.Location{"Nairobi", "Nakuru", "Eldoret", "Kisumu"}
	sol, err := tsp.Solve("Nairobi", towns, lookup)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sol.Route)
	fmt.Printf("%.0f km over %d routes\n", sol.Total, sol.Evaluated)
	// Output:
	// Nairobi -> Nakuru -> Kisumu -> Eldoret -> Nairobi
	// 775 km over 6 routes
}

// ExampleSolve_missingPair shows fail-fast reporting of an incomplete table.
func ExampleSolve_missingPair() {
	lookup := tsp.LookupFunc(func(from, to tsp.Location) (float64, bool) {
		if from == "B" && to == "C" {
			return 0, false
		}
		return 1, true
	})

	_, err := tsp.Solve("A", []tsp.Location{"A", "B", "C"}, lookup)
	fmt.Println(err)
	// Output:
	// tsp: incomplete distance data: no distance "B" -> "C"
}
