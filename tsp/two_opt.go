package tsp

import "github.com/katalvlaran/mrta/planner"

// improveEps is the smallest delta treated as an improvement. It keeps
// floating-point noise on zero-gain moves from cycling the search.
const improveEps = 1e-12

// TwoOpt improves the visiting order of r by best-improvement 2-opt and
// returns a new route; r is not modified.
//
// Each pass considers every cut pair (i, j) with 1 ≤ i < len(r)-2,
// i+2 ≤ j < len(r), where the candidate reverses stops [i, j-1] of the
// pass-start route. A candidate is kept when it is strictly cheaper than the
// best seen so far in the pass; the next pass starts from the kept route.
// The loop ends after a pass that keeps nothing, so the result is 2-opt
// locally minimal and its cost never exceeds the cost of r. The depot stops
// are never moved.
//
// Candidates are evaluated by the symmetric delta
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d),  a=r[i-1], b=r[i], c=r[j-1], d=r[j]
//
// Cost ordering is by Δ, so the kept candidate is the cheapest one of the
// pass; the route is materialised only once per pass.
//
// r must be a valid route for p (see planner.ValidateRoute); routes with fewer
// than two interior stops are returned as a copy.
//
// Complexity: O(k²) per pass for k interior stops, O(k) extra space.
func TwoOpt(p *planner.Problem, r planner.Route) planner.Route {
	cur := r.Clone()
	if len(cur) < 4 {
		return cur
	}

	sites := stopSites(cur)
	n := len(cur)
	for {
		best := -improveEps
		bestI, bestJ := -1, -1

		var (
			i, j       int
			a, b, c, d int
			delta      float64
		)
		for i = 1; i < n-2; i++ {
			for j = i + 2; j < n; j++ {
				a, b, c, d = sites[i-1], sites[i], sites[j-1], sites[j]
				delta = (p.Cost(a, c) + p.Cost(b, d)) - (p.Cost(a, b) + p.Cost(c, d))
				if delta < best {
					best, bestI, bestJ = delta, i, j
				}
			}
		}
		if bestI < 0 {
			return cur
		}

		reverse(cur, bestI, bestJ-1)
		reverseInts(sites, bestI, bestJ-1)
	}
}

// reverse reverses r[i..k] in place.
func reverse(r planner.Route, i, k int) {
	for i < k {
		r[i], r[k] = r[k], r[i]
		i++
		k--
	}
}

// reverseInts reverses a[i..k] in place.
func reverseInts(a []int, i, k int) {
	for i < k {
		a[i], a[k] = a[k], a[i]
		i++
		k--
	}
}
