// Package planner holds the problem model of capability-constrained multi-robot
// task allocation with routing, and the route/solution cost evaluator.
//
// Model:
//
//   - Sites 0..S-1; site 0 is the depot and never hosts a task.
//   - Measurements 0..M-1; Requirements[m][s] marks that site s needs measurement m
//     exactly once. Capabilities[m][r] marks that robot r can perform m.
//   - Costs is an S×S metric (non-negative, symmetric, zero diagonal,
//     triangle inequality), validated once by NewProblem.
//   - A Task is a (site, measurement) pair. A Route is the ordered list of Stops
//     of one robot, bookended by the depot. A Solution holds one Route per robot.
//   - The objective is the makespan: the maximum route cost over all robots.
//
// A *Problem is immutable after NewProblem and safe for concurrent readers.
// A Solution is a plain mutable value owned by a single caller; copies are
// always explicit (Route.Clone, Solution.Clone).
//
// Errors:
//
//   - NewProblem wraps every instance defect in ErrInvalidInstance together with a
//     specific sentinel (ErrShape, ErrDepotTask, ErrNoCapableRobot) or a matrix
//     sentinel (matrix.ErrNegative, matrix.ErrAsymmetry, matrix.ErrTriangle, ...).
//   - ValidateSolution wraps every invariant breach in ErrInvalidSolution.
//
// Complexity:
//   - NewProblem: O(M·(S+R) + S³) with the triangle check, O(M·(S+R) + S²) without.
//   - RouteCost: O(len(route)); SolutionCost: O(total stops).
//   - GenerateRandomSolution: O(M·S + T); CompatiblePairs: O(1) (precomputed in O(R²·M)).
package planner
