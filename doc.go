// Package mrta allocates inspection tasks to a heterogeneous robot fleet and
// improves the allocation by decentralised, gossip-style negotiation.
//
// 🚀 What is mrta?
//
//	A task is a (site, measurement) pair. Every robot carries a subset of
//	sensors and drives a closed route from the depot. The goal is to
//	minimise the makespan, the cost of the most expensive route.
//
//		• Construction: a random feasible allocation, 2-opt ordered routes
//		• Negotiation: compatible robot pairs trade tasks while the makespan drops
//		• Re-optimisation: 2-opt always, exact branch-and-bound on request
//		• Experiments: many seeded runs in parallel, variant comparison
//
// Under the hood, everything is organized into small packages:
//
//	matrix/     dense cost matrices, metric validation, Floyd–Warshall closure
//	planner/    instance, problem, routes, solutions, costs, feasibility
//	tsp/        single-route 2-opt and branch-and-bound over task stops
//	gossip/     pairwise exchange and the negotiation loop
//	scenario/   seeded random instance generator
//	experiment/ parallel batches of negotiations and their statistics
//	rng/        deterministic seeds and derived streams
//	cmd/mrta    the command line (generate, negotiate, experiment, runs)
//
// Quick ASCII example (star metric, two robots):
//
//	        1
//	        │
//	   2 ── D ── 3      robot 0: D 1 2 3 D  cost 6
//	                    robot 1: D D        cost 0
//
//	after one exchange: robot 0: D 1 2 D  cost 4
//	                    robot 1: D 3 D    cost 2   makespan 6 → 4
//
//	go install github.com/katalvlaran/mrta/cmd/mrta@latest
package mrta
