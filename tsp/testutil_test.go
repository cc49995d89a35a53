package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mrta/planner"
	"github.com/katalvlaran/mrta/rng"
	"github.com/stretchr/testify/require"
)

// euclid returns the Euclidean distance matrix of pts.
func euclid(pts [][2]float64) [][]float64 {
	n := len(pts)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			dx, dy := pts[i][0]-pts[j][0], pts[i][1]-pts[j][1]
			out[i][j] = math.Hypot(dx, dy)
		}
	}

	return out
}

// randomPoints draws n points in the unit square from a seeded stream.
func randomPoints(n int, seed int64) [][2]float64 {
	r := rng.FromSeed(seed)
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{r.Float64() * 100, r.Float64() * 100}
	}

	return pts
}

// singleRobot builds a one-robot, one-measurement problem requiring every
// non-depot site of costs.
func singleRobot(t testing.TB, costs [][]float64) *planner.Problem {
	t.Helper()
	req := make([]bool, len(costs))
	for s := 1; s < len(req); s++ {
		req[s] = true
	}
	p, err := planner.NewProblem(planner.Instance{
		Requirements: [][]bool{req},
		Capabilities: [][]bool{{true}},
		Costs:        costs,
	})
	require.NoError(t, err)

	return p
}

// siteRoute builds a route visiting the given sites with measurement 0.
func siteRoute(sites ...int) planner.Route {
	tasks := make([]planner.Task, len(sites))
	for i, s := range sites {
		tasks[i] = planner.Task{Site: s}
	}

	return planner.NewRoute(tasks...)
}

// bruteForce returns the optimal cost over every ordering of r's interior stops.
func bruteForce(p *planner.Problem, r planner.Route) float64 {
	in := append([]planner.Stop(nil), r.Interior()...)
	best := math.Inf(1)

	var permute func(k int)
	permute = func(k int) {
		if k == len(in) {
			cand := make(planner.Route, 0, len(in)+2)
			cand = append(cand, planner.Depot())
			cand = append(cand, in...)
			cand = append(cand, planner.Depot())
			if c := p.RouteCost(cand); c < best {
				best = c
			}
			return
		}
		for i := k; i < len(in); i++ {
			in[k], in[i] = in[i], in[k]
			permute(k + 1)
			in[k], in[i] = in[i], in[k]
		}
	}
	permute(0)

	return best
}

// sameTasks reports whether a and b serve the same multiset of tasks.
func sameTasks(a, b planner.Route) bool {
	count := map[planner.Task]int{}
	for _, t := range a.Tasks() {
		count[t]++
	}
	for _, t := range b.Tasks() {
		count[t]--
	}
	for _, c := range count {
		if c != 0 {
			return false
		}
	}

	return len(a) == len(b)
}
