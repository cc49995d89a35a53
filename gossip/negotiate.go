package gossip

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/mrta/planner"
	"github.com/katalvlaran/mrta/rng"
	"github.com/katalvlaran/mrta/tsp"
)

// Negotiate builds a random initial allocation with planner.Plan and improves
// it with Improve. It is the end-to-end entry point for one run.
//
// A nil rng uses the rng.DefaultSeed stream. The same rng drives construction
// and negotiation, so a fixed seed reproduces the whole trajectory.
func Negotiate(ctx context.Context, p *planner.Problem, r *rand.Rand, opts Options) (Result, error) {
	if err := checkOptions(opts); err != nil {
		return Result{}, err
	}
	r = rng.OrDefault(r)

	sol, err := planner.Plan(p, r)
	if err != nil {
		return Result{}, fmt.Errorf("gossip: initial solution: %w", err)
	}

	return Improve(ctx, p, sol, r, opts)
}

// Improve runs gossip negotiation starting from initial, which is cloned and
// never modified.
//
// Loop:
//   - The stall counter starts at 1 and the attempt index at 1.
//   - Every round shuffles the compatible pairs; every pair gets one Exchange.
//   - An attempt that lowers the makespan resets the stall counter to 1 and
//     records the attempt as the convergence point; in the branch-and-bound
//     variant both routes of the pair are then re-optimised. Any other
//     attempt increments the stall counter.
//   - The loop stops as soon as the stall counter reaches MaxIterations,
//     possibly in the middle of a round, or when there is no compatible pair.
//
// The context is checked before every attempt. When it is done, the current
// (valid) allocation is returned with an error wrapping ErrInterrupted and the
// context error.
//
// Errors: ErrOptions; planner.ErrInvalidSolution (initial or final allocation
// violates an invariant); tsp errors from re-optimisation; ErrInterrupted.
func Improve(ctx context.Context, p *planner.Problem, initial planner.Solution, r *rand.Rand, opts Options) (Result, error) {
	if err := checkOptions(opts); err != nil {
		return Result{}, err
	}
	if err := p.ValidateSolution(&initial); err != nil {
		return Result{}, fmt.Errorf("gossip: initial solution: %w", err)
	}
	r = rng.OrDefault(r)

	n := &negotiation{
		p:     p,
		r:     r,
		opts:  opts,
		sol:   initial.Clone(),
		pairs: p.CompatiblePairs(),
		stall: 1,
	}
	n.cost = p.SolutionCost(&n.sol)
	n.res = Result{
		InitialCost:      n.cost,
		ImprovementTrace: []float64{n.cost},
		ExchangeTrace:    []float64{n.cost},
		Variant:          opts.Variant(),
	}

	start := time.Now()
	loopErr := n.run(ctx)
	n.res.Elapsed = time.Since(start)
	n.res.Solution = n.sol
	n.res.FinalCost = p.SolutionCost(&n.sol)

	if opts.Observer != nil {
		opts.Observer.OnFinish(&n.res)
	}
	if loopErr != nil {
		return n.res, loopErr
	}
	if err := p.ValidateSolution(&n.sol); err != nil {
		return Result{}, fmt.Errorf("gossip: final solution: %w", err)
	}

	return n.res, nil
}

// checkOptions validates the loop knobs.
func checkOptions(opts Options) error {
	if opts.MaxIterations < 1 {
		return fmt.Errorf("%w: MaxIterations %d", ErrOptions, opts.MaxIterations)
	}
	if opts.BranchAndBound.NodeLimit < 0 {
		return fmt.Errorf("%w: NodeLimit %d", ErrOptions, opts.BranchAndBound.NodeLimit)
	}

	return nil
}

// negotiation is the mutable state of one Improve call.
type negotiation struct {
	p     *planner.Problem
	r     *rand.Rand
	opts  Options
	sol   planner.Solution
	pairs []planner.RobotPair

	cost    float64
	stall   int
	attempt int
	res     Result
}

// run executes rounds until the stall limit, an empty pair set or ctx ends it.
func (n *negotiation) run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w before the first attempt: %w", ErrInterrupted, err)
	}
	if len(n.pairs) == 0 {
		return nil
	}

	for n.stall < n.opts.MaxIterations {
		rng.Shuffle(n.pairs, n.r)
		n.res.Rounds++

		for _, pair := range n.pairs {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%w after %d attempts: %w", ErrInterrupted, n.res.Attempts, err)
			}
			if err := n.step(pair); err != nil {
				return err
			}
			if n.stall >= n.opts.MaxIterations {
				return nil
			}
		}
	}

	return nil
}

// step performs one attempt on pair and updates counters and traces.
func (n *negotiation) step(pair planner.RobotPair) error {
	n.attempt++
	n.res.Attempts++

	moved, err := Exchange(n.p, &n.sol, pair, n.r)
	if err != nil {
		return err
	}
	n.res.Moved += moved

	cost := n.p.SolutionCost(&n.sol)
	n.res.ExchangeTrace = append(n.res.ExchangeTrace, cost)

	accepted := cost < n.cost
	if accepted {
		if n.opts.UseBranchAndBound {
			if err = n.reoptimize(pair); err != nil {
				return err
			}
			cost = n.p.SolutionCost(&n.sol)
		}
		n.cost = cost
		n.stall = 1
		n.res.ConvergenceAttempt = n.attempt
		n.res.ImprovementTrace = append(n.res.ImprovementTrace, cost)
	} else {
		n.stall++
	}

	if n.opts.Observer != nil {
		n.opts.Observer.OnAttempt(AttemptEvent{
			Attempt:  n.attempt,
			Pair:     pair,
			Moved:    moved,
			Cost:     cost,
			Accepted: accepted,
			Stall:    n.stall,
		})
	}

	return nil
}

// reoptimize replaces both routes of pair by their branch-and-bound optimum.
func (n *negotiation) reoptimize(pair planner.RobotPair) error {
	for _, robot := range [2]int{pair.A, pair.B} {
		res, err := tsp.BranchAndBound(n.p, n.sol.Routes[robot], n.opts.BranchAndBound)
		if err != nil {
			return fmt.Errorf("gossip: robot %d: %w", robot, err)
		}
		n.sol.Routes[robot] = res.Route
	}

	return nil
}
