package gossip_test

import (
	"testing"

	"github.com/katalvlaran/mrta/gossip"
	"github.com/katalvlaran/mrta/planner"
	"github.com/stretchr/testify/require"
)

// starCosts places three sites at distance 1 from the depot and 2 from each other.
var starCosts = [][]float64{
	{0, 1, 1, 1},
	{1, 0, 2, 2},
	{1, 2, 0, 2},
	{1, 2, 2, 0},
}

// lineCosts returns the metric |i-j| over n sites.
func lineCosts(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			if i > j {
				out[i][j] = float64(i - j)
			} else {
				out[i][j] = float64(j - i)
			}
		}
	}

	return out
}

// twoRobots requires one measurement at every non-depot site; both robots
// can perform it.
func twoRobots(t testing.TB, costs [][]float64) *planner.Problem {
	t.Helper()
	req := make([]bool, len(costs))
	for s := 1; s < len(req); s++ {
		req[s] = true
	}
	p, err := planner.NewProblem(planner.Instance{
		Requirements: [][]bool{req},
		Capabilities: [][]bool{{true, true}},
		Costs:        costs,
	})
	require.NoError(t, err)

	return p
}

// fleetProblem is a 4-robot, 3-measurement instance over 8 sites on a line.
// Robot 3 shares nothing with robot 1.
func fleetProblem(t testing.TB) *planner.Problem {
	t.Helper()
	p, err := planner.NewProblem(planner.Instance{
		Requirements: [][]bool{
			{false, true, true, false, true, true, false, true},
			{false, false, true, true, false, true, true, false},
			{false, true, false, true, true, false, true, true},
		},
		Capabilities: [][]bool{
			{true, true, false, false},
			{true, false, true, true},
			{false, false, true, true},
		},
		Costs: lineCosts(8),
	})
	require.NoError(t, err)

	return p
}

// allOnFirst puts every task of p on robot 0 in (site, measurement) order.
func allOnFirst(p *planner.Problem) planner.Solution {
	sol := planner.Solution{Routes: make([]planner.Route, p.NumRobots())}
	sol.Routes[0] = planner.NewRoute(p.Tasks()...)
	for i := 1; i < len(sol.Routes); i++ {
		sol.Routes[i] = planner.EmptyRoute()
	}

	return sol
}

// recorder is an Observer that keeps every event.
type recorder struct {
	attempts []gossip.AttemptEvent
	finished []*gossip.Result
}

func (r *recorder) OnAttempt(ev gossip.AttemptEvent) { r.attempts = append(r.attempts, ev) }
func (r *recorder) OnFinish(res *gossip.Result)      { r.finished = append(r.finished, res) }
