// SPDX-License-Identifier: MIT
// Package: mrta/scenario
//
// generate.go - random instance construction.

package scenario

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mrta/matrix"
	"github.com/katalvlaran/mrta/planner"
	"github.com/katalvlaran/mrta/rng"
)

// ErrTooManyTasks is returned when Tasks exceeds (Sites-1)·Measurements.
var ErrTooManyTasks = errors.New("scenario: more tasks than (site, measurement) slots")

// Generate draws a random instance. See the package doc for the guarantees.
//
// Errors: ErrTooManyTasks; matrix errors from the metric closure (unreachable
// for the generated inputs).
// Complexity: O(S³ + M·S + M·R) expected.
func Generate(opts ...Option) (planner.Instance, error) {
	c := newConfig(opts...)
	if slots := (c.sites - 1) * c.measurements; c.tasks > slots {
		return planner.Instance{}, fmt.Errorf("%w: %d tasks for %d slots", ErrTooManyTasks, c.tasks, slots)
	}

	costs, err := c.costs()
	if err != nil {
		return planner.Instance{}, err
	}

	return planner.Instance{
		Requirements: c.requirements(),
		Capabilities: c.capabilities(),
		Costs:        costs,
	}, nil
}

// requirements places c.tasks distinct marks outside the depot column by
// sampling slots without replacement.
func (c config) requirements() [][]bool {
	req := make([][]bool, c.measurements)
	for m := range req {
		req[m] = make([]bool, c.sites)
	}

	width := c.sites - 1
	slots := make([]int, width*c.measurements)
	for i := range slots {
		slots[i] = i
	}
	rng.Shuffle(slots, c.rng)
	for _, k := range slots[:c.tasks] {
		req[k/width][1+k%width] = true
	}

	return req
}

// capabilities draws a uniform {0,1} matrix until every measurement row has a
// capable robot.
func (c config) capabilities() [][]bool {
	capab := make([][]bool, c.measurements)
	for m := range capab {
		capab[m] = make([]bool, c.robots)
	}

	for {
		covered := true
		for m := range capab {
			ok := false
			for r := range capab[m] {
				capab[m][r] = c.rng.Intn(2) == 1
				ok = ok || capab[m][r]
			}
			covered = covered && ok
		}
		if covered {
			return capab
		}
	}
}

// costs draws a symmetric integer matrix and closes it under shortest paths.
func (c config) costs() ([][]float64, error) {
	d, err := matrix.NewDense(c.sites, c.sites)
	if err != nil {
		return nil, fmt.Errorf("scenario: costs: %w", err)
	}

	var i, j int
	var w float64
	span := c.maxCost - c.minCost + 1
	for i = 0; i < c.sites; i++ {
		for j = i + 1; j < c.sites; j++ {
			w = float64(c.minCost + c.rng.Intn(span))
			_ = d.Set(i, j, w)
			_ = d.Set(j, i, w)
		}
	}
	if err = matrix.FloydWarshall(d); err != nil {
		return nil, fmt.Errorf("scenario: metric closure: %w", err)
	}

	return d.ToRows(), nil
}
