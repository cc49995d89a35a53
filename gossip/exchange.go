package gossip

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/mrta/planner"
	"github.com/katalvlaran/mrta/rng"
	"github.com/katalvlaran/mrta/tsp"
)

// Exchange performs one task-exchange step between the robots of pair and
// mutates sol in place. It returns the number of relocated tasks.
//
// The robot with the strictly higher route cost is the source; on equal
// costs robot pair.B is the source. Eligible tasks are the source's tasks
// whose measurement both robots can perform. Each eligible task is drawn
// uniformly without replacement, appended before the receiver's final depot
// and the receiver route is re-optimised with tsp.TwoOpt. The move is kept
// iff the new receiver cost is strictly below the source's current cost; the
// source route shrinks in place as tasks leave.
//
// A nil rng uses the rng.DefaultSeed stream.
//
// Errors: ErrInvalidPair.
// Complexity: O(E·k²) per pass of 2-opt for E eligible tasks and k receiver stops.
func Exchange(p *planner.Problem, sol *planner.Solution, pair planner.RobotPair, r *rand.Rand) (int, error) {
	if pair.A == pair.B || pair.A < 0 || pair.B < 0 || pair.A >= len(sol.Routes) || pair.B >= len(sol.Routes) {
		return 0, fmt.Errorf("%w: %s for %d routes", ErrInvalidPair, pair, len(sol.Routes))
	}
	r = rng.OrDefault(r)

	src, dst := pair.B, pair.A
	if p.RouteCost(sol.Routes[pair.A]) > p.RouteCost(sol.Routes[pair.B]) {
		src, dst = pair.A, pair.B
	}

	eligible := eligibleTasks(p, sol.Routes[src], p.CommonMeasurements(pair.A, pair.B))
	moved := 0

	var (
		k    int
		t    planner.Task
		cand planner.Route
	)
	for len(eligible) > 0 {
		k = rng.Pick(len(eligible), r)
		t = eligible[k]
		eligible = slices.Delete(eligible, k, k+1)

		cand = tsp.TwoOpt(p, sol.Routes[dst].InsertBeforeEnd(t))
		if p.RouteCost(cand) < p.RouteCost(sol.Routes[src]) {
			sol.Routes[dst] = cand
			sol.Routes[src].Remove(t)
			moved++
		}
	}

	return moved, nil
}

// eligibleTasks lists the tasks of route whose measurement is in common,
// in visiting order.
func eligibleTasks(p *planner.Problem, route planner.Route, common []int) []planner.Task {
	if len(common) == 0 {
		return nil
	}
	shared := make([]bool, p.NumMeasurements())
	for _, m := range common {
		shared[m] = true
	}

	var out []planner.Task
	for _, t := range route.Tasks() {
		if shared[t.Measurement] {
			out = append(out, t)
		}
	}

	return out
}
