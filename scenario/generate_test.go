package scenario_test

import (
	"testing"

	"github.com/katalvlaran/mrta/planner"
	"github.com/katalvlaran/mrta/rng"
	"github.com/katalvlaran/mrta/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Shape(t *testing.T) {
	inst, err := scenario.Generate(
		scenario.WithRobots(5),
		scenario.WithTasks(12),
		scenario.WithSites(7),
		scenario.WithMeasurements(3),
		scenario.WithSeed(42),
	)
	require.NoError(t, err)

	require.Len(t, inst.Requirements, 3)
	require.Len(t, inst.Capabilities, 3)
	require.Len(t, inst.Costs, 7)
	tasks := 0
	for m := range inst.Requirements {
		require.Len(t, inst.Requirements[m], 7)
		require.Len(t, inst.Capabilities[m], 5)
		assert.False(t, inst.Requirements[m][planner.DepotSite])
		for _, v := range inst.Requirements[m] {
			if v {
				tasks++
			}
		}
	}
	assert.Equal(t, 12, tasks)
}

func TestGenerate_ProducesValidProblems(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		inst, err := scenario.Generate(scenario.WithSeed(seed))
		require.NoError(t, err)

		p, err := planner.NewProblem(inst)
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, scenario.DefaultTasks, p.NumTasks())

		for m := 0; m < p.NumMeasurements(); m++ {
			capable := false
			for r := 0; r < p.NumRobots(); r++ {
				capable = capable || p.Capable(r, m)
			}
			assert.True(t, capable, "seed %d measurement %d", seed, m)
		}
	}
}

func TestGenerate_CostRange(t *testing.T) {
	inst, err := scenario.Generate(scenario.WithCostRange(10, 20), scenario.WithSites(6), scenario.WithTasks(3), scenario.WithSeed(3))
	require.NoError(t, err)

	for i, row := range inst.Costs {
		for j, c := range row {
			if i == j {
				assert.Zero(t, c)
				continue
			}
			assert.GreaterOrEqual(t, c, 10.0)
			assert.LessOrEqual(t, c, 20.0)
			assert.Equal(t, c, float64(int(c)), "integral costs")
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := scenario.Generate(scenario.WithSeed(9))
	require.NoError(t, err)
	b, err := scenario.Generate(scenario.WithRand(rng.FromSeed(9)))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := scenario.Generate(scenario.WithSeed(10))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerate_AllSlotsFilled(t *testing.T) {
	inst, err := scenario.Generate(scenario.WithSites(4), scenario.WithMeasurements(2), scenario.WithTasks(6))
	require.NoError(t, err)
	for _, row := range inst.Requirements {
		assert.Equal(t, []bool{false, true, true, true}, row)
	}
}

func TestGenerate_TooManyTasks(t *testing.T) {
	_, err := scenario.Generate(scenario.WithSites(3), scenario.WithMeasurements(2), scenario.WithTasks(5))
	assert.ErrorIs(t, err, scenario.ErrTooManyTasks)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { scenario.WithRobots(0) })
	assert.Panics(t, func() { scenario.WithTasks(-1) })
	assert.Panics(t, func() { scenario.WithSites(1) })
	assert.Panics(t, func() { scenario.WithMeasurements(0) })
	assert.Panics(t, func() { scenario.WithCostRange(5, 4) })
	assert.Panics(t, func() { scenario.WithCostRange(-1, 4) })
	assert.Panics(t, func() { scenario.WithRand(nil) })
}
