// Package tsp - single-robot route improvement for the task-allocation planner.
//
// A route is a depot-bookended sequence of stops (planner.Route). Both solvers
// here reorder the interior stops of one route and never move the depots or
// change which tasks the route serves.
//
// What's inside:
//
//   - TwoOpt: best-improvement 2-opt. Every pass evaluates all segment
//     reversals of the pass-start route, keeps the strictly cheapest one and
//     starts the next pass from it; it stops after a pass without improvement.
//     The result is 2-opt locally minimal.
//
//   - BranchAndBound: best-first exact search warm-started from a route. The
//     frontier is a binary min-heap keyed by a reduced-matrix lower bound
//     (Little et al.) over the route's own stop set. The warm start is the
//     incumbent and is never discarded, so the result never costs more than
//     the input. Options.NodeLimit caps the number of expanded nodes.
//
// Costs:
//
//   - Travel costs come from *planner.Problem, which guarantees a finite,
//     symmetric metric. All reported costs are rounded to 1e-9.
//
// Errors:
//
//   - BranchAndBound rejects malformed warm starts with ErrWarmStart wrapping
//     the planner sentinel (planner.ErrDegenerateRoute, planner.ErrDepotPlacement,
//     planner.ErrInvalidStop), and negative node limits with ErrOptions.
//   - An exhausted frontier without improvement is not an error
//     (Result.Improved == false).
//
// Determinism:
//
//   - Neither solver uses randomness. Equal inputs give equal outputs.
//
// Complexity:
//
//   - TwoOpt: O(k²) per pass for k interior stops, O(k) per accepted move.
//   - BranchAndBound: exponential in k in the worst case; O(k²) per bound.
package tsp
