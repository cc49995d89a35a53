package tsp

import (
	"math"

	"github.com/katalvlaran/mrta/planner"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// stopSites returns the site of every stop of r, depots included.
func stopSites(r planner.Route) []int {
	return r.Sites()
}

// checkRoute verifies that r is depot-bookended with only task stops inside
// and that every site is a valid index for p.
//
// Complexity: O(len(r)).
func checkRoute(p *planner.Problem, r planner.Route) error {
	if len(r) < 2 {
		return planner.ErrDegenerateRoute
	}
	if !r[0].IsDepot() || !r[len(r)-1].IsDepot() {
		return planner.ErrDepotPlacement
	}
	for _, s := range r.Interior() {
		if s.Kind != planner.KindTask {
			return planner.ErrDepotPlacement
		}
		if s.Task.Site <= planner.DepotSite || s.Task.Site >= p.NumSites() {
			return planner.ErrInvalidStop
		}
	}

	return nil
}
