package scenario_test

import (
	"fmt"

	"github.com/katalvlaran/mrta/planner"
	"github.com/katalvlaran/mrta/scenario"
)

// ExampleGenerate draws a reproducible instance and builds a Problem from it.
func ExampleGenerate() {
	inst, err := scenario.Generate(
		scenario.WithRobots(3),
		scenario.WithTasks(6),
		scenario.WithSites(5),
		scenario.WithMeasurements(2),
		scenario.WithSeed(7),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, err := planner.NewProblem(inst)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.NumRobots(), p.NumSites(), p.NumMeasurements(), p.NumTasks())
	// Output: 3 5 2 6
}
