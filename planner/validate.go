package planner

import "fmt"

// ValidateRoute checks the structural and capability invariants of a single
// route for robot r:
//   - at least two stops, depot first and last, no interior depot;
//   - every interior stop is a required task the robot can perform.
//
// Duplicates and conservation are solution-level and checked by ValidateSolution.
//
// Complexity: O(len(route)).
func (p *Problem) ValidateRoute(r int, route Route) error {
	if len(route) < 2 {
		return fmt.Errorf("robot %d has %d stops: %w", r, len(route), ErrDegenerateRoute)
	}
	if !route[0].IsDepot() || !route[len(route)-1].IsDepot() {
		return fmt.Errorf("robot %d route %s: %w", r, route, ErrDepotPlacement)
	}

	for i, s := range route.Interior() {
		switch s.Kind {
		case KindDepot:
			return fmt.Errorf("robot %d stop %d: %w", r, i+1, ErrDepotPlacement)
		case KindTask:
		default:
			return fmt.Errorf("robot %d stop %d kind %d: %w", r, i+1, s.Kind, ErrInvalidStop)
		}
		t := s.Task
		if t.Site <= DepotSite || t.Site >= p.numSites || t.Measurement < 0 || t.Measurement >= p.numMeasurements {
			return fmt.Errorf("robot %d stop %d %s: %w", r, i+1, t, ErrInvalidStop)
		}
		if !p.req[t.Measurement][t.Site] {
			return fmt.Errorf("robot %d stop %d %s: %w", r, i+1, t, ErrUnknownTask)
		}
		if !p.capab[t.Measurement][r] {
			return fmt.Errorf("robot %d stop %d %s: %w", r, i+1, t, ErrIncapableRobot)
		}
	}

	return nil
}

// ValidateSolution checks every Solution invariant:
//   - one route per robot;
//   - each route passes ValidateRoute;
//   - each required task is served exactly once across all routes.
//
// Every failure wraps ErrInvalidSolution together with the specific sentinel,
// so both errors.Is(err, ErrInvalidSolution) and errors.Is(err, ErrDuplicateTask)
// (for example) hold.
//
// Complexity: O(T + M·S).
func (p *Problem) ValidateSolution(s *Solution) error {
	if s == nil || len(s.Routes) != p.numRobots {
		n := 0
		if s != nil {
			n = len(s.Routes)
		}
		return fmt.Errorf("%w: %d routes for %d robots: %w", ErrInvalidSolution, n, p.numRobots, ErrRobotCount)
	}

	seen := make([]bool, p.numMeasurements*p.numSites)
	served := 0
	for r, route := range s.Routes {
		if err := p.ValidateRoute(r, route); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSolution, err)
		}
		for _, t := range route.Tasks() {
			k := t.Measurement*p.numSites + t.Site
			if seen[k] {
				return fmt.Errorf("%w: task %s: %w", ErrInvalidSolution, t, ErrDuplicateTask)
			}
			seen[k] = true
			served++
		}
	}

	if served != p.numTasks {
		for _, t := range p.Tasks() {
			if !seen[t.Measurement*p.numSites+t.Site] {
				return fmt.Errorf("%w: task %s: %w", ErrInvalidSolution, t, ErrMissingTask)
			}
		}
	}

	return nil
}
