package planner

import "math"

// roundScale controls cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision, so that sums taken
// in different orders compare equal.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// RouteCost sums the travel cost over consecutive stops of r.
// A depot-only route costs 0; a route with fewer than two stops has no legs
// and also costs 0 (ValidateSolution reports it as ErrDegenerateRoute).
//
// Complexity: O(len(r)).
func (p *Problem) RouteCost(r Route) float64 {
	var sum float64
	for i := 0; i+1 < len(r); i++ {
		sum += p.w[r[i].Site()*p.numSites+r[i+1].Site()]
	}

	return round1e9(sum)
}

// RouteCosts returns the cost of every route of s, indexed by robot.
func (p *Problem) RouteCosts(s *Solution) []float64 {
	out := make([]float64, len(s.Routes))
	for i, r := range s.Routes {
		out[i] = p.RouteCost(r)
	}

	return out
}

// SolutionCost returns the makespan: the maximum route cost over all robots.
// This is the single objective minimised by negotiation.
//
// Complexity: O(total stops).
func (p *Problem) SolutionCost(s *Solution) float64 {
	var best float64
	for _, r := range s.Routes {
		if c := p.RouteCost(r); c > best {
			best = c
		}
	}

	return best
}

// TotalCost returns the sum of route costs (reported alongside the makespan).
func (p *Problem) TotalCost(s *Solution) float64 {
	var sum float64
	for _, r := range s.Routes {
		sum += p.RouteCost(r)
	}

	return round1e9(sum)
}
