package planner_test

import (
	"testing"

	"github.com/katalvlaran/mrta/planner"
	"github.com/katalvlaran/mrta/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteCost(t *testing.T) {
	p := mustProblem(t, twoRobotInstance())

	assert.Equal(t, 0.0, p.RouteCost(planner.EmptyRoute()))
	assert.Equal(t, 0.0, p.RouteCost(planner.Route{planner.Depot()}))
	assert.Equal(t, 6.0, p.RouteCost(planner.NewRoute(
		planner.Task{Site: 1}, planner.Task{Site: 2}, planner.Task{Site: 3})))
	assert.Equal(t, 10.0, p.RouteCost(planner.NewRoute(
		planner.Task{Site: 3}, planner.Task{Site: 1}, planner.Task{Site: 2})))
}

func TestRouteCost_RoundsFloatNoise(t *testing.T) {
	p := mustProblem(t, planner.Instance{
		Requirements: [][]bool{{false, true, true}},
		Capabilities: [][]bool{{true}},
		Costs:        [][]float64{{0, 0.1, 0.3}, {0.1, 0, 0.2}, {0.3, 0.2, 0}},
	})
	r := planner.NewRoute(planner.Task{Site: 1}, planner.Task{Site: 2})
	assert.Equal(t, 0.6, p.RouteCost(r))
}

func TestSolutionCost_IsMakespan(t *testing.T) {
	p := mustProblem(t, twoRobotInstance())
	s := planner.Solution{Routes: []planner.Route{
		planner.NewRoute(planner.Task{Site: 1}, planner.Task{Site: 2}),
		planner.NewRoute(planner.Task{Site: 3}),
	}}

	assert.Equal(t, []float64{4, 6}, p.RouteCosts(&s))
	assert.Equal(t, 6.0, p.SolutionCost(&s))
	assert.Equal(t, 10.0, p.TotalCost(&s))
	assert.Equal(t, 0.0, p.SolutionCost(&planner.Solution{}))
}

func TestPlan_SingleRobotSingleTask(t *testing.T) {
	p := mustProblem(t, planner.Instance{
		Requirements: [][]bool{{false, true}},
		Capabilities: [][]bool{{true}},
		Costs:        [][]float64{{0, 5}, {5, 0}},
	})

	sol, err := planner.Plan(p, rng.FromSeed(7))
	require.NoError(t, err)
	require.Len(t, sol.Routes, 1)
	assert.Equal(t, []int{0, 1, 0}, sol.Routes[0].Sites())
	assert.Equal(t, 10.0, p.SolutionCost(&sol))
}

func TestGenerateRandomSolution_Invariants(t *testing.T) {
	p := mustProblem(t, mixedInstance())

	for seed := int64(1); seed <= 25; seed++ {
		sol, err := p.GenerateRandomSolution(rng.FromSeed(seed))
		require.NoError(t, err)
		require.NoError(t, p.ValidateSolution(&sol), "seed %d", seed)
		assert.Equal(t, p.NumTasks(), sol.TaskCount())

		// Robot 1 never gets m1, robot 2 never gets m0.
		for _, task := range sol.Routes[1].Tasks() {
			assert.Equal(t, 0, task.Measurement)
		}
		for _, task := range sol.Routes[2].Tasks() {
			assert.Equal(t, 1, task.Measurement)
		}
	}
}

func TestGenerateRandomSolution_Deterministic(t *testing.T) {
	p := mustProblem(t, mixedInstance())

	a, err := p.GenerateRandomSolution(rng.FromSeed(99))
	require.NoError(t, err)
	b, err := p.GenerateRandomSolution(rng.FromSeed(99))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateRandomSolution_RobotWithoutTasksGetsEmptyRoute(t *testing.T) {
	p := mustProblem(t, planner.Instance{
		Requirements: [][]bool{{false, true}, {false, false}},
		Capabilities: [][]bool{{true, false}, {false, true}},
		Costs:        [][]float64{{0, 5}, {5, 0}},
	})

	sol, err := planner.Plan(p, nil)
	require.NoError(t, err)
	assert.True(t, sol.Routes[1].Equal(planner.EmptyRoute()))
}

func TestValidateSolution_Errors(t *testing.T) {
	p := mustProblem(t, mixedInstance())
	valid := func() planner.Solution {
		return planner.Solution{Routes: []planner.Route{
			planner.NewRoute(planner.Task{Site: 4, Measurement: 1}, planner.Task{Site: 4, Measurement: 0}),
			planner.NewRoute(planner.Task{Site: 1, Measurement: 0}, planner.Task{Site: 2, Measurement: 0}),
			planner.NewRoute(planner.Task{Site: 2, Measurement: 1}, planner.Task{Site: 3, Measurement: 1}),
		}}
	}
	base := valid()
	require.NoError(t, p.ValidateSolution(&base))

	tests := []struct {
		name   string
		mutate func(*planner.Solution)
		want   error
	}{
		{
			name:   "route count",
			mutate: func(s *planner.Solution) { s.Routes = s.Routes[:2] },
			want:   planner.ErrRobotCount,
		},
		{
			name:   "degenerate route",
			mutate: func(s *planner.Solution) { s.Routes[0] = planner.Route{planner.Depot()} },
			want:   planner.ErrDegenerateRoute,
		},
		{
			name:   "missing start depot",
			mutate: func(s *planner.Solution) { s.Routes[1] = s.Routes[1][1:] },
			want:   planner.ErrDepotPlacement,
		},
		{
			name: "interior depot",
			mutate: func(s *planner.Solution) {
				s.Routes[1] = planner.Route{planner.Depot(), planner.Visit(planner.Task{Site: 1}),
					planner.Depot(), planner.Visit(planner.Task{Site: 2}), planner.Depot()}
			},
			want: planner.ErrDepotPlacement,
		},
		{
			name:   "zero stop kind",
			mutate: func(s *planner.Solution) { s.Routes[1][1] = planner.Stop{} },
			want:   planner.ErrInvalidStop,
		},
		{
			name:   "site out of range",
			mutate: func(s *planner.Solution) { s.Routes[1][1] = planner.Visit(planner.Task{Site: 9}) },
			want:   planner.ErrInvalidStop,
		},
		{
			name:   "task not required",
			mutate: func(s *planner.Solution) { s.Routes[1][1] = planner.Visit(planner.Task{Site: 3}) },
			want:   planner.ErrUnknownTask,
		},
		{
			name: "incapable robot",
			mutate: func(s *planner.Solution) {
				s.Routes[1] = s.Routes[1].InsertBeforeEnd(planner.Task{Site: 3, Measurement: 1})
				s.Routes[2].Remove(planner.Task{Site: 3, Measurement: 1})
			},
			want: planner.ErrIncapableRobot,
		},
		{
			name: "duplicate task",
			mutate: func(s *planner.Solution) {
				s.Routes[0] = s.Routes[0].InsertBeforeEnd(planner.Task{Site: 1, Measurement: 0})
			},
			want: planner.ErrDuplicateTask,
		},
		{
			name:   "missing task",
			mutate: func(s *planner.Solution) { s.Routes[2].Remove(planner.Task{Site: 2, Measurement: 1}) },
			want:   planner.ErrMissingTask,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(&s)
			err := p.ValidateSolution(&s)
			require.Error(t, err)
			assert.ErrorIs(t, err, planner.ErrInvalidSolution)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.ErrorIs(t, p.ValidateSolution(nil), planner.ErrRobotCount)
}
