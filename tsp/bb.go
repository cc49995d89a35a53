package tsp

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/mrta/planner"
)

// bbEngine holds the search data of one BranchAndBound call.
type bbEngine struct {
	// stops[0] is the depot, stops[1..k] the interior stops of the warm start.
	stops []planner.Stop
	k     int
	dim   int

	// d is the stop-distance buffer: d[u*dim+v], +Inf on the diagonal.
	d       []float64
	scratch []float64

	front frontier
	seq   int

	bestPath []int
	bestCost float64

	nodeLimit        int
	expanded, pruned int
	truncated        bool
}

// BranchAndBound reorders the interior stops of warm to minimise route cost
// with a best-first branch-and-bound search.
//
// The warm start is the initial incumbent; only strictly cheaper complete
// routes replace it, so Result.Cost ≤ cost(warm) always holds. The search
// pops the node with the smallest lower bound; once that bound reaches the
// incumbent cost every remaining node is dominated and the search ends.
// Children are generated over the unplaced stops in warm-start order and
// admitted only when their bound is strictly below the incumbent.
//
// Stops are indexed by position in warm, not by site, so several tasks at the
// same site are handled as distinct stops joined by zero-cost legs.
//
// A route with no interior stop is returned unchanged.
//
// Errors: ErrWarmStart (wrapping a planner sentinel), ErrOptions.
// Complexity: exponential in the number of interior stops k in the worst
// case; O(k²) time and space per generated node.
func BranchAndBound(p *planner.Problem, warm planner.Route, opts Options) (Result, error) {
	if opts.NodeLimit < 0 {
		return Result{}, fmt.Errorf("%w: NodeLimit %d", ErrOptions, opts.NodeLimit)
	}
	if err := checkRoute(p, warm); err != nil {
		return Result{}, fmt.Errorf("%w: %s: %w", ErrWarmStart, warm, err)
	}

	warmCost := p.RouteCost(warm)
	k := len(warm) - 2
	if k == 0 {
		return Result{Route: warm.Clone(), Cost: warmCost}, nil
	}

	e := newBBEngine(p, warm, opts)
	e.bestCost = warmCost
	e.run()

	out := Result{
		Route:     e.route(),
		Expanded:  e.expanded,
		Pruned:    e.pruned,
		Truncated: e.truncated,
	}
	out.Cost = p.RouteCost(out.Route)
	out.Improved = out.Cost < warmCost
	if !out.Improved {
		out.Route, out.Cost = warm.Clone(), warmCost
	}

	return out, nil
}

// newBBEngine prefetches the stop-distance buffer of warm.
func newBBEngine(p *planner.Problem, warm planner.Route, opts Options) *bbEngine {
	k := len(warm) - 2
	dim := k + 1
	e := &bbEngine{
		stops:     make([]planner.Stop, dim),
		k:         k,
		dim:       dim,
		d:         make([]float64, dim*dim),
		scratch:   make([]float64, dim*dim),
		nodeLimit: opts.NodeLimit,
	}
	e.stops[0] = planner.Depot()
	copy(e.stops[1:], warm.Interior())

	e.bestPath = make([]int, dim)
	var u, v int
	for u = 0; u < dim; u++ {
		e.bestPath[u] = u
		for v = 0; v < dim; v++ {
			if u == v {
				e.d[u*dim+v] = math.Inf(1)
				continue
			}
			e.d[u*dim+v] = p.Cost(e.stops[u].Site(), e.stops[v].Site())
		}
	}

	return e
}

// at returns the travel cost between stop indices u and v (u != v).
func (e *bbEngine) at(u, v int) float64 { return e.d[u*e.dim+v] }

// push adds a node to the frontier.
func (e *bbEngine) push(path []int, cost, bound float64) {
	e.seq++
	heap.Push(&e.front, &node{bound: bound, cost: cost, depth: len(path) - 1, path: path, seq: e.seq})
}

// run drives the best-first search until the frontier is exhausted, the
// minimum bound reaches the incumbent, or the node limit is hit.
func (e *bbEngine) run() {
	root := []int{0}
	e.push(root, 0, reducedBound(e.d, e.dim, root, e.scratch))

	placed := make([]bool, e.dim)
	var (
		nd          *node
		v           int
		last        int
		total, cost float64
		bound       float64
	)
	for e.front.Len() > 0 {
		nd = heap.Pop(&e.front).(*node)
		if nd.bound >= e.bestCost {
			return
		}
		last = nd.path[len(nd.path)-1]

		if nd.depth == e.k {
			total = round1e9(nd.cost + e.at(last, 0))
			if total < e.bestCost {
				e.bestCost = total
				copy(e.bestPath, nd.path)
			}
			continue
		}

		if e.nodeLimit > 0 && e.expanded >= e.nodeLimit {
			e.truncated = true
			return
		}
		e.expanded++

		clear(placed)
		for _, s := range nd.path {
			placed[s] = true
		}
		for v = 1; v < e.dim; v++ {
			if placed[v] {
				continue
			}
			cost = nd.cost + e.at(last, v)
			child := make([]int, len(nd.path)+1)
			copy(child, nd.path)
			child[len(nd.path)] = v

			if len(child)-1 == e.k {
				bound = round1e9(cost + e.at(v, 0))
			} else {
				bound = cost + reducedBound(e.d, e.dim, child, e.scratch)
			}
			if bound < e.bestCost {
				e.push(child, cost, bound)
			} else {
				e.pruned++
			}
		}
	}
}

// route materialises the incumbent path as a planner.Route.
func (e *bbEngine) route() planner.Route {
	out := make(planner.Route, 0, e.dim+1)
	for _, s := range e.bestPath {
		out = append(out, e.stops[s])
	}

	return append(out, planner.Depot())
}
