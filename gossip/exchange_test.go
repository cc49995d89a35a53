package gossip_test

import (
	"testing"

	"github.com/katalvlaran/mrta/gossip"
	"github.com/katalvlaran/mrta/planner"
	"github.com/katalvlaran/mrta/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchange_LoadedRobotSheds(t *testing.T) {
	p := twoRobots(t, starCosts)

	for seed := int64(1); seed <= 10; seed++ {
		sol := allOnFirst(p)
		require.Equal(t, 6.0, p.SolutionCost(&sol))

		moved, err := gossip.Exchange(p, &sol, planner.RobotPair{A: 0, B: 1}, rng.FromSeed(seed))
		require.NoError(t, err)

		assert.Equal(t, 1, moved, "seed %d", seed)
		assert.Len(t, sol.Routes[1].Tasks(), 1)
		assert.Equal(t, 4.0, p.SolutionCost(&sol))
		require.NoError(t, p.ValidateSolution(&sol))
	}
}

func TestExchange_LineScenarioMovesTasksWithoutRaisingMakespan(t *testing.T) {
	// Every route through site 3 costs at least 6 on this line, so the
	// makespan cannot drop below 6; the exchange must still rebalance.
	p := twoRobots(t, lineCosts(4))

	for seed := int64(1); seed <= 10; seed++ {
		sol := allOnFirst(p)
		require.Equal(t, []int{0, 1, 2, 3, 0}, sol.Routes[0].Sites())
		require.Equal(t, 6.0, p.RouteCost(sol.Routes[0]))

		moved, err := gossip.Exchange(p, &sol, planner.RobotPair{A: 0, B: 1}, rng.FromSeed(seed))
		require.NoError(t, err)

		assert.Positive(t, moved, "seed %d", seed)
		assert.NotEmpty(t, sol.Routes[1].Tasks())
		assert.LessOrEqual(t, p.SolutionCost(&sol), 6.0)
		assert.LessOrEqual(t, p.RouteCost(sol.Routes[1]), 6.0)
		require.NoError(t, p.ValidateSolution(&sol))
	}
}

func TestExchange_AcceptsAgainstGiverCost(t *testing.T) {
	// The receiver gets more expensive (0 -> 2); the move is still kept
	// because 2 is below the giver's cost.
	p := twoRobots(t, starCosts)
	sol := allOnFirst(p)

	_, err := gossip.Exchange(p, &sol, planner.RobotPair{A: 0, B: 1}, rng.FromSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.RouteCost(sol.Routes[1]))
	assert.Equal(t, 4.0, p.RouteCost(sol.Routes[0]))
}

func TestExchange_EqualCostsMakeSecondRobotTheSource(t *testing.T) {
	costs := [][]float64{
		{0, 2, 1, 1},
		{2, 0, 3, 3},
		{1, 3, 0, 2},
		{1, 3, 2, 0},
	}
	p := twoRobots(t, costs)
	sol := planner.Solution{Routes: []planner.Route{
		planner.NewRoute(planner.Task{Site: 1}),
		planner.NewRoute(planner.Task{Site: 2}, planner.Task{Site: 3}),
	}}
	require.Equal(t, p.RouteCost(sol.Routes[0]), p.RouteCost(sol.Routes[1]))
	before := sol.Clone()

	const seed = 17
	r := rng.FromSeed(seed)
	moved, err := gossip.Exchange(p, &sol, planner.RobotPair{A: 0, B: 1}, r)
	require.NoError(t, err)
	assert.Zero(t, moved)
	assert.Equal(t, before, sol)

	// Robot 1 was the source: two eligible tasks consumed two draws.
	want := rng.FromSeed(seed)
	want.Intn(2)
	want.Intn(1)
	assert.Equal(t, want.Int63(), r.Int63())
}

func TestExchange_OnlySharedMeasurementsMove(t *testing.T) {
	p, err := planner.NewProblem(planner.Instance{
		Requirements: [][]bool{{false, true, false}, {false, false, true}},
		Capabilities: [][]bool{{true, true}, {true, false}},
		Costs:        lineCosts(3),
	})
	require.NoError(t, err)

	sol := allOnFirst(p)
	_, err = gossip.Exchange(p, &sol, planner.RobotPair{A: 0, B: 1}, rng.FromSeed(1))
	require.NoError(t, err)

	for _, task := range sol.Routes[1].Tasks() {
		assert.Equal(t, 0, task.Measurement)
	}
	require.NoError(t, p.ValidateSolution(&sol))
}

func TestExchange_NoEligibleTask(t *testing.T) {
	p := twoRobots(t, starCosts)
	sol := planner.Solution{Routes: []planner.Route{planner.EmptyRoute(), planner.EmptyRoute()}}

	moved, err := gossip.Exchange(p, &sol, planner.RobotPair{A: 0, B: 1}, nil)
	require.NoError(t, err)
	assert.Zero(t, moved)
}

func TestExchange_InvalidPair(t *testing.T) {
	p := twoRobots(t, starCosts)
	sol := allOnFirst(p)

	for _, pair := range []planner.RobotPair{{A: 0, B: 0}, {A: 0, B: 2}, {A: -1, B: 1}} {
		_, err := gossip.Exchange(p, &sol, pair, nil)
		assert.ErrorIs(t, err, gossip.ErrInvalidPair, "pair %s", pair)
	}
}
