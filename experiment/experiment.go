package experiment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mrta/gossip"
	"github.com/katalvlaran/mrta/planner"
	"github.com/katalvlaran/mrta/rng"
)

// ErrConfig indicates an invalid Config.
var ErrConfig = errors.New("experiment: invalid config")

// Config controls a batch of runs.
type Config struct {
	// Runs is the number of independent negotiations (≥ 1).
	Runs int
	// Workers bounds parallelism; 0 means runtime.GOMAXPROCS(0).
	Workers int
	// Seed is the parent seed of all run streams (0 ⇒ rng.DefaultSeed).
	Seed int64
	// Baseline is an externally computed optimal makespan. When positive,
	// every record reports its relative gap to it.
	Baseline float64
	// Options configures each negotiation. Options.Observer, when set, is
	// shared by concurrent runs and must be safe for concurrent use.
	Options gossip.Options
}

// Record is the outcome of one run.
type Record struct {
	Run                int
	Seed               int64
	InitialCost        float64
	FinalCost          float64
	ConvergenceAttempt int
	Attempts           int
	Moved              int
	Gap                float64 // (FinalCost-Baseline)/Baseline, 0 without baseline
	Elapsed            time.Duration
}

// Summary aggregates a batch of runs.
type Summary struct {
	ID      uuid.UUID
	Variant gossip.Variant
	Records []Record

	MeanInitialCost float64
	MeanCost        float64
	MinCost         float64
	MaxCost         float64
	MeanConvergence float64
	MeanAttempts    float64
	MeanGap         float64
	Baseline        float64

	// Best is the final solution of the cheapest run (lowest index on ties).
	Best planner.Solution

	Elapsed time.Duration
}

// Run executes cfg.Runs negotiations on p and aggregates them.
//
// Errors: ErrConfig; the first run error (other runs are cancelled through
// the errgroup context).
func Run(ctx context.Context, p *planner.Problem, cfg Config) (Summary, error) {
	if cfg.Runs < 1 {
		return Summary{}, fmt.Errorf("%w: Runs %d", ErrConfig, cfg.Runs)
	}
	if cfg.Workers < 0 {
		return Summary{}, fmt.Errorf("%w: Workers %d", ErrConfig, cfg.Workers)
	}
	if cfg.Baseline < 0 || math.IsNaN(cfg.Baseline) {
		return Summary{}, fmt.Errorf("%w: Baseline %v", ErrConfig, cfg.Baseline)
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rng.DefaultSeed
	}

	start := time.Now()
	records := make([]Record, cfg.Runs)
	solutions := make([]planner.Solution, cfg.Runs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.Runs; i++ {
		g.Go(func() error {
			runSeed := rng.DeriveSeed(seed, uint64(i))
			res, err := gossip.Negotiate(gctx, p, rng.FromSeed(runSeed), cfg.Options)
			if err != nil {
				return fmt.Errorf("experiment: run %d: %w", i, err)
			}
			records[i] = Record{
				Run:                i,
				Seed:               runSeed,
				InitialCost:        res.InitialCost,
				FinalCost:          res.FinalCost,
				ConvergenceAttempt: res.ConvergenceAttempt,
				Attempts:           res.Attempts,
				Moved:              res.Moved,
				Gap:                gap(res.FinalCost, cfg.Baseline),
				Elapsed:            res.Elapsed,
			}
			solutions[i] = res.Solution

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	s := summarize(records, solutions, cfg.Baseline)
	s.ID = uuid.New()
	s.Variant = cfg.Options.Variant()
	s.Elapsed = time.Since(start)

	return s, nil
}

// Comparison holds both variants evaluated on the same run seeds.
type Comparison struct {
	Plain          Summary
	BranchAndBound Summary
}

// Compare runs cfg once with the plain variant and once with branch-and-bound.
// All other options are taken from cfg.Options.
func Compare(ctx context.Context, p *planner.Problem, cfg Config) (Comparison, error) {
	var out Comparison
	var err error

	plain := cfg
	plain.Options.UseBranchAndBound = false
	if out.Plain, err = Run(ctx, p, plain); err != nil {
		return Comparison{}, err
	}

	bnb := cfg
	bnb.Options.UseBranchAndBound = true
	if out.BranchAndBound, err = Run(ctx, p, bnb); err != nil {
		return Comparison{}, err
	}

	return out, nil
}

// gap returns the relative optimality gap, 0 without a baseline.
func gap(cost, baseline float64) float64 {
	if baseline <= 0 {
		return 0
	}

	return (cost - baseline) / baseline
}

// summarize computes the aggregate statistics in run order.
func summarize(records []Record, solutions []planner.Solution, baseline float64) Summary {
	s := Summary{
		Records:  records,
		MinCost:  math.Inf(1),
		MaxCost:  math.Inf(-1),
		Baseline: baseline,
	}
	best := 0
	n := float64(len(records))
	for i, r := range records {
		s.MeanInitialCost += r.InitialCost / n
		s.MeanCost += r.FinalCost / n
		s.MeanConvergence += float64(r.ConvergenceAttempt) / n
		s.MeanAttempts += float64(r.Attempts) / n
		s.MeanGap += r.Gap / n
		if r.FinalCost < s.MinCost {
			s.MinCost = r.FinalCost
			best = i
		}
		if r.FinalCost > s.MaxCost {
			s.MaxCost = r.FinalCost
		}
	}
	s.Best = solutions[best]

	return s
}
