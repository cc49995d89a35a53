package tsp

import (
	"errors"

	"github.com/katalvlaran/mrta/planner"
)

var (
	// ErrWarmStart indicates a warm-start route that is not a valid depot-bookended route.
	ErrWarmStart = errors.New("tsp: invalid warm-start route")

	// ErrOptions indicates an invalid Options value.
	ErrOptions = errors.New("tsp: invalid options")
)

// Options configures BranchAndBound.
type Options struct {
	// NodeLimit caps the number of expanded frontier nodes. 0 means unlimited.
	// On truncation the incumbent is returned and Result.Truncated is set.
	NodeLimit int
}

// DefaultOptions returns an unlimited search.
func DefaultOptions() Options { return Options{} }

// Result holds the outcome of BranchAndBound.
type Result struct {
	// Route is the best route found. It serves the same stops as the warm start.
	Route planner.Route

	// Cost is the rounded travel cost of Route.
	Cost float64

	// Improved reports whether Route is strictly cheaper than the warm start.
	Improved bool

	// Expanded counts popped-and-branched frontier nodes; Pruned counts
	// children discarded because their bound reached the incumbent.
	Expanded, Pruned int

	// Truncated reports that NodeLimit stopped the search early.
	Truncated bool
}
