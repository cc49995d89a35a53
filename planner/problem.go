package planner

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/mrta/matrix"
)

// Options configures instance validation in NewProblem.
//
// Tolerance     – absolute tolerance for metric checks (≥ 0).
// CheckTriangle – run the O(S³) triangle-inequality scan.
type Options struct {
	Tolerance     float64
	CheckTriangle bool
}

// Option is a functional option for NewProblem.
type Option func(*Options)

// DefaultOptions returns the strict validation policy.
func DefaultOptions() Options {
	return Options{Tolerance: matrix.DefaultTolerance, CheckTriangle: true}
}

// WithTolerance sets the metric tolerance. Panics on negative or NaN input.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) {
		panic("planner: WithTolerance(negative)")
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithoutTriangleCheck skips the triangle-inequality scan for large instances
// whose generator already guarantees it.
func WithoutTriangleCheck() Option {
	return func(o *Options) { o.CheckTriangle = false }
}

// Problem is the immutable, validated description of one instance.
type Problem struct {
	req   [][]bool // M × S
	capab [][]bool // M × R
	cost  *matrix.Dense

	// w is the row-major cost buffer: w[i*numSites+j].
	w []float64

	numSites, numMeasurements, numRobots, numTasks int

	// capable[m] lists robots able to perform m, ascending.
	capable [][]int
	// pairs is the compatible-pair set, i<j in lexicographic order.
	pairs []RobotPair
}

// NewProblem validates inst and builds a Problem. Input slices are copied.
//
// Validation order (first failure wins, always wrapped in ErrInvalidInstance):
//  1. Shapes: non-empty, rectangular, M rows in both boolean matrices, S×S costs.
//  2. Depot column of Requirements is all false.
//  3. Every required measurement has at least one capable robot.
//  4. Costs form a metric (matrix.ValidateMetric).
func NewProblem(inst Instance, opts ...Option) (*Problem, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Problem{}
	if err := p.loadShapes(inst); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}
	if err := p.loadRequirements(inst); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}

	cost, err := matrix.FromRows(inst.Costs)
	if err != nil {
		return nil, fmt.Errorf("%w: costs: %w", ErrInvalidInstance, err)
	}
	if err = matrix.ValidateMetric(cost, cfg.Tolerance, cfg.CheckTriangle); err != nil {
		return nil, fmt.Errorf("%w: costs: %w", ErrInvalidInstance, err)
	}
	p.cost = cost
	p.w = cost.RowMajor()
	p.pairs = p.computePairs()

	return p, nil
}

// loadShapes checks and records M, S, R.
func (p *Problem) loadShapes(inst Instance) error {
	m := len(inst.Requirements)
	if m == 0 || len(inst.Requirements[0]) == 0 {
		return fmt.Errorf("requirements are empty: %w", ErrShape)
	}
	s := len(inst.Requirements[0])
	if len(inst.Capabilities) != m {
		return fmt.Errorf("capabilities have %d rows, requirements %d: %w", len(inst.Capabilities), m, ErrShape)
	}
	if len(inst.Capabilities[0]) == 0 {
		return fmt.Errorf("capabilities have no robots: %w", ErrShape)
	}
	r := len(inst.Capabilities[0])

	var i int
	for i = 0; i < m; i++ {
		if len(inst.Requirements[i]) != s {
			return fmt.Errorf("requirements row %d has %d sites, want %d: %w", i, len(inst.Requirements[i]), s, ErrShape)
		}
		if len(inst.Capabilities[i]) != r {
			return fmt.Errorf("capabilities row %d has %d robots, want %d: %w", i, len(inst.Capabilities[i]), r, ErrShape)
		}
	}
	if len(inst.Costs) != s {
		return fmt.Errorf("costs have %d rows, want %d sites: %w", len(inst.Costs), s, ErrShape)
	}

	p.numMeasurements, p.numSites, p.numRobots = m, s, r

	return nil
}

// loadRequirements copies both boolean matrices, counts tasks and checks
// the depot column and per-measurement coverage.
func (p *Problem) loadRequirements(inst Instance) error {
	p.req = make([][]bool, p.numMeasurements)
	p.capab = make([][]bool, p.numMeasurements)
	p.capable = make([][]int, p.numMeasurements)

	var m, s, r int
	for m = 0; m < p.numMeasurements; m++ {
		p.req[m] = slices.Clone(inst.Requirements[m])
		p.capab[m] = slices.Clone(inst.Capabilities[m])

		if p.req[m][DepotSite] {
			return fmt.Errorf("measurement %d at site %d: %w", m, DepotSite, ErrDepotTask)
		}
		for r = 0; r < p.numRobots; r++ {
			if p.capab[m][r] {
				p.capable[m] = append(p.capable[m], r)
			}
		}

		required := false
		for s = 1; s < p.numSites; s++ {
			if p.req[m][s] {
				p.numTasks++
				required = true
			}
		}
		if required && len(p.capable[m]) == 0 {
			return fmt.Errorf("measurement %d: %w", m, ErrNoCapableRobot)
		}
	}

	return nil
}

// NumSites returns S (depot included).
func (p *Problem) NumSites() int { return p.numSites }

// NumMeasurements returns M.
func (p *Problem) NumMeasurements() int { return p.numMeasurements }

// NumRobots returns R.
func (p *Problem) NumRobots() int { return p.numRobots }

// NumTasks returns the number of required (site, measurement) pairs.
func (p *Problem) NumTasks() int { return p.numTasks }

// Requires reports whether site s requires measurement m. Out-of-range is false.
func (p *Problem) Requires(m, s int) bool {
	if m < 0 || m >= p.numMeasurements || s < 0 || s >= p.numSites {
		return false
	}

	return p.req[m][s]
}

// Capable reports whether robot r can perform measurement m. Out-of-range is false.
func (p *Problem) Capable(r, m int) bool {
	if m < 0 || m >= p.numMeasurements || r < 0 || r >= p.numRobots {
		return false
	}

	return p.capab[m][r]
}

// Cost returns the travel cost between two sites. Indices must be in range.
func (p *Problem) Cost(from, to int) float64 { return p.w[from*p.numSites+to] }

// CostMatrix returns a copy of the validated cost matrix.
func (p *Problem) CostMatrix() *matrix.Dense { return p.cost.Clone() }

// Tasks lists every required task in (site, measurement) ascending order.
func (p *Problem) Tasks() []Task {
	out := make([]Task, 0, p.numTasks)
	var s, m int
	for s = 1; s < p.numSites; s++ {
		for m = 0; m < p.numMeasurements; m++ {
			if p.req[m][s] {
				out = append(out, Task{Site: s, Measurement: m})
			}
		}
	}

	return out
}

// Instance returns a deep copy of the instance the Problem was built from.
func (p *Problem) Instance() Instance {
	inst := Instance{
		Requirements: make([][]bool, p.numMeasurements),
		Capabilities: make([][]bool, p.numMeasurements),
		Costs:        p.cost.ToRows(),
	}
	for m := 0; m < p.numMeasurements; m++ {
		inst.Requirements[m] = slices.Clone(p.req[m])
		inst.Capabilities[m] = slices.Clone(p.capab[m])
	}

	return inst
}
