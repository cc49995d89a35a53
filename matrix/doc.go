// SPDX-License-Identifier: MIT

// Package matrix provides the dense site-to-site cost matrix used by the
// planner, the route optimisers and the scenario generator.
//
// What is inside:
//
//   - Dense: row-major float64 storage with bounds-checked At/Set, deep Clone
//     and Induced (copying principal submatrix extraction).
//   - Validators: square shape, non-negativity, zero diagonal, symmetry and
//     the triangle inequality; ValidateMetric composes them in a fixed order.
//   - FloydWarshall: in-place all-pairs shortest path closure, used to turn a
//     random symmetric matrix into a metric one.
//
// Numeric policy:
//   - NaN is rejected everywhere.
//   - +Inf is accepted by Set and means "no direct edge"; FloydWarshall
//     replaces it with the shortest finite detour when one exists.
//   - Metric checks use an absolute tolerance (DefaultTolerance unless overridden).
//
// Errors are package sentinels (errors.go) wrapped with the operation name;
// match them with errors.Is.
//
// Complexity quicksheet:
//   - NewDense/FromRows/Clone: O(r·c); At/Set: O(1); Induced: O(k²).
//   - ValidateTriangle and FloydWarshall: O(n³).
package matrix
