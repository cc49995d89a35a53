package gossip

import (
	"errors"
	"time"

	"github.com/katalvlaran/mrta/planner"
	"github.com/katalvlaran/mrta/tsp"
)

// DefaultMaxIterations is the stall limit used by DefaultOptions.
const DefaultMaxIterations = 50

var (
	// ErrOptions indicates an invalid Options value.
	ErrOptions = errors.New("gossip: invalid options")

	// ErrInvalidPair indicates a robot pair outside the fleet or with A == B.
	ErrInvalidPair = errors.New("gossip: invalid robot pair")

	// ErrInterrupted is returned together with the context error when the
	// context is done before the stall limit is reached.
	ErrInterrupted = errors.New("gossip: negotiation interrupted")
)

// Variant names the negotiation flavour.
type Variant string

const (
	// Plain re-optimises receivers with 2-opt only.
	Plain Variant = "plain"
	// WithBranchAndBound also runs branch-and-bound on both routes of every
	// improving exchange.
	WithBranchAndBound Variant = "bnb"
)

// Options configures negotiation.
type Options struct {
	// MaxIterations is the stall limit: negotiation stops once this many
	// consecutive attempts (counting from 1) failed to lower the makespan.
	// Must be ≥ 1; a value of 1 performs no attempt.
	MaxIterations int

	// UseBranchAndBound selects the branch-and-bound variant.
	UseBranchAndBound bool

	// BranchAndBound configures the branch-and-bound re-optimisation.
	BranchAndBound tsp.Options

	// Observer receives per-attempt and final events. Nil disables reporting.
	Observer Observer
}

// DefaultOptions returns the plain variant with DefaultMaxIterations.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}

// Variant returns the variant selected by o.
func (o Options) Variant() Variant {
	if o.UseBranchAndBound {
		return WithBranchAndBound
	}

	return Plain
}

// Result is the outcome of one negotiation.
type Result struct {
	// Solution is the final task allocation.
	Solution planner.Solution

	// InitialCost and FinalCost are the makespans before and after negotiation.
	InitialCost, FinalCost float64

	// ImprovementTrace starts with InitialCost and records the makespan after
	// every accepted attempt. It is non-increasing.
	ImprovementTrace []float64

	// ExchangeTrace starts with InitialCost and records the makespan measured
	// right after every attempt.
	ExchangeTrace []float64

	// ConvergenceAttempt is the 1-based index of the last improving attempt,
	// 0 when no attempt improved.
	ConvergenceAttempt int

	// Attempts counts pairwise exchange attempts; Rounds counts pair-list shuffles.
	Attempts, Rounds int

	// Moved counts relocated tasks over all attempts.
	Moved int

	// Variant is the negotiation flavour that produced the result.
	Variant Variant

	// Elapsed is the wall-clock duration of the negotiation loop.
	Elapsed time.Duration
}

// AttemptEvent describes one pairwise exchange attempt.
type AttemptEvent struct {
	Attempt  int
	Pair     planner.RobotPair
	Moved    int
	Cost     float64
	Accepted bool
	Stall    int
}

// Observer receives negotiation progress. Implementations must be cheap;
// they run inline with the loop.
type Observer interface {
	// OnAttempt is called after every exchange attempt.
	OnAttempt(ev AttemptEvent)
	// OnFinish is called once with the final result, also when interrupted.
	OnFinish(res *Result)
}
