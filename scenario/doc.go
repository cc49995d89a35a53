// SPDX-License-Identifier: MIT
// Package: mrta/scenario
//
// Package scenario generates random task-allocation instances.
//
// Generate produces a planner.Instance with:
//   - exactly Tasks required (site, measurement) pairs, never at the depot;
//   - a random capability matrix in which every measurement has at least one
//     capable robot (redrawn until it does);
//   - a symmetric integer cost matrix with entries in [MinCost, MaxCost] and a
//     zero diagonal, closed under shortest paths (Floyd–Warshall) so that it
//     satisfies the triangle inequality.
//
// Options follow the functional-option style: constructors panic on
// meaningless input, Generate returns sentinel errors for inconsistent
// combinations. With the same seed Generate is fully deterministic.
package scenario
