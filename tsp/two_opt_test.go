package tsp_test

import (
	"testing"

	"github.com/katalvlaran/mrta/planner"
	"github.com/katalvlaran/mrta/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineCosts is the metric |i-j| over four sites.
var lineCosts = [][]float64{{0, 1, 2, 3}, {1, 0, 1, 2}, {2, 1, 0, 1}, {3, 2, 1, 0}}

func TestTwoOpt_UntanglesLine(t *testing.T) {
	p := singleRobot(t, lineCosts)
	in := siteRoute(2, 1, 3)
	require.Equal(t, 8.0, p.RouteCost(in))

	out := tsp.TwoOpt(p, in)
	assert.Equal(t, 6.0, p.RouteCost(out))
	assert.True(t, sameTasks(in, out))
	assert.Equal(t, "[D 2:0 1:0 3:0 D]", in.String(), "input must not be modified")
}

func TestTwoOpt_ShortRoutesUnchanged(t *testing.T) {
	p := singleRobot(t, [][]float64{{0, 5}, {5, 0}})

	for _, r := range []planner.Route{planner.EmptyRoute(), siteRoute(1)} {
		out := tsp.TwoOpt(p, r)
		assert.True(t, r.Equal(out))
	}
	assert.Equal(t, 10.0, p.RouteCost(tsp.TwoOpt(p, siteRoute(1))))
}

func TestTwoOpt_DepotsStayInPlace(t *testing.T) {
	p := singleRobot(t, euclid(randomPoints(9, 3)))
	out := tsp.TwoOpt(p, siteRoute(8, 1, 7, 2, 6, 3, 5, 4))

	assert.True(t, out[0].IsDepot())
	assert.True(t, out[len(out)-1].IsDepot())
	for _, s := range out.Interior() {
		assert.False(t, s.IsDepot())
	}
}

func TestTwoOpt_LocalMinimality(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		p := singleRobot(t, euclid(randomPoints(10, seed)))
		in := siteRoute(9, 4, 1, 7, 3, 8, 2, 6, 5)
		out := tsp.TwoOpt(p, in)
		cost := p.RouteCost(out)

		require.LessOrEqual(t, cost, p.RouteCost(in))
		require.True(t, sameTasks(in, out))

		// No single reversal of the result is strictly cheaper.
		for i := 1; i < len(out)-2; i++ {
			for j := i + 2; j < len(out); j++ {
				cand := out.Clone()
				for a, b := i, j-1; a < b; a, b = a+1, b-1 {
					cand[a], cand[b] = cand[b], cand[a]
				}
				assert.GreaterOrEqual(t, p.RouteCost(cand), cost-1e-9, "seed %d reversal (%d,%d)", seed, i, j)
			}
		}
	}
}

func TestTwoOpt_Idempotent(t *testing.T) {
	p := singleRobot(t, euclid(randomPoints(12, 42)))
	once := tsp.TwoOpt(p, siteRoute(11, 1, 10, 2, 9, 3, 8, 4, 7, 5, 6))
	twice := tsp.TwoOpt(p, once)

	assert.True(t, once.Equal(twice))
}

func TestTwoOpt_Deterministic(t *testing.T) {
	p := singleRobot(t, euclid(randomPoints(10, 5)))
	in := siteRoute(5, 9, 1, 8, 2, 7, 3, 6, 4)

	assert.True(t, tsp.TwoOpt(p, in).Equal(tsp.TwoOpt(p, in)))
}
