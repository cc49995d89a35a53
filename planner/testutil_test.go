package planner_test

import (
	"testing"

	"github.com/katalvlaran/mrta/planner"
	"github.com/stretchr/testify/require"
)

// lineCosts returns the metric |i-j| over n sites.
func lineCosts(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			d := i - j
			if d < 0 {
				d = -d
			}
			out[i][j] = float64(d)
		}
	}

	return out
}

// twoRobotInstance has four sites on a line, one measurement required at
// sites 1..3 and two robots able to perform it.
func twoRobotInstance() planner.Instance {
	return planner.Instance{
		Requirements: [][]bool{{false, true, true, true}},
		Capabilities: [][]bool{{true, true}},
		Costs:        lineCosts(4),
	}
}

// mixedInstance has two measurements; robot 0 does both, robot 1 only m0,
// robot 2 only m1.
func mixedInstance() planner.Instance {
	return planner.Instance{
		Requirements: [][]bool{
			{false, true, true, false, true},
			{false, false, true, true, true},
		},
		Capabilities: [][]bool{
			{true, true, false},
			{true, false, true},
		},
		Costs: lineCosts(5),
	}
}

func mustProblem(t *testing.T, inst planner.Instance, opts ...planner.Option) *planner.Problem {
	t.Helper()
	p, err := planner.NewProblem(inst, opts...)
	require.NoError(t, err)

	return p
}
