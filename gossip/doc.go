// Package gossip implements decentralised task reallocation between robots by
// repeated pairwise exchanges ("gossip" negotiation).
//
// One exchange (Exchange) looks at a pair of robots that share a capability.
// The robot with the costlier route gives away tasks: each eligible task is
// tried once, in random order, by appending it to the receiver's route and
// re-optimising that route with tsp.TwoOpt. The move is kept when the
// receiver's new cost is strictly below the giver's current cost.
//
// Negotiation (Negotiate, Improve) repeats exchanges over a freshly shuffled
// list of compatible pairs until a stall counter of consecutive non-improving
// attempts reaches Options.MaxIterations. The branch-and-bound variant
// additionally re-optimises both touched routes with tsp.BranchAndBound after
// every improving exchange.
//
// The solution objective is the makespan (planner.Problem.SolutionCost). It
// never increases during negotiation: the giver's route only loses stops and
// the receiver's new cost stays below the giver's old cost.
//
// All randomness comes from the injected *rand.Rand, so equal seeds give
// equal trajectories. The package does not log; progress is reported through
// the Observer hook.
package gossip
