package planner

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mrta/rng"
)

// GenerateRandomSolution assigns every required task to a uniformly chosen
// capable robot and visits each robot's tasks in a random order.
//
// Sites are scanned in ascending order (depot skipped) and, per site, required
// measurements in ascending order; each task goes to a robot drawn uniformly
// from the capable set. Afterwards every robot's pending list is shuffled
// independently and wrapped with depot stops.
//
// A nil rng uses the rng.DefaultSeed stream.
//
// Errors: ErrNoCapableRobot (unreachable for Problems built by NewProblem).
// Complexity: O(M·S + T).
func (p *Problem) GenerateRandomSolution(r *rand.Rand) (Solution, error) {
	r = rng.OrDefault(r)
	pending := make([][]Task, p.numRobots)

	var s, m int
	for s = 1; s < p.numSites; s++ {
		for m = 0; m < p.numMeasurements; m++ {
			if !p.req[m][s] {
				continue
			}
			robots := p.capable[m]
			if len(robots) == 0 {
				return Solution{}, fmt.Errorf("site %d measurement %d: %w", s, m, ErrNoCapableRobot)
			}
			owner := robots[rng.Pick(len(robots), r)]
			pending[owner] = append(pending[owner], Task{Site: s, Measurement: m})
		}
	}

	sol := Solution{Routes: make([]Route, p.numRobots)}
	for i := range pending {
		rng.Shuffle(pending[i], r)
		sol.Routes[i] = NewRoute(pending[i]...)
	}

	return sol, nil
}

// Plan builds a validated random initial Solution for p.
// It is the construction entry point used by negotiation and by callers that
// only need a feasible assignment.
func Plan(p *Problem, r *rand.Rand) (Solution, error) {
	sol, err := p.GenerateRandomSolution(r)
	if err != nil {
		return Solution{}, err
	}
	if err = p.ValidateSolution(&sol); err != nil {
		return Solution{}, err
	}

	return sol, nil
}
