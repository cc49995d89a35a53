// SPDX-License-Identifier: MIT
// Package: mrta/scenario
//
// options.go - functional options for Generate.

package scenario

import (
	"math/rand"

	"github.com/katalvlaran/mrta/rng"
)

// Deterministic defaults (named, no magic numbers).
const (
	DefaultRobots       = 4
	DefaultTasks        = 10
	DefaultSites        = 8
	DefaultMeasurements = 3
	DefaultMinCost      = 1
	DefaultMaxCost      = 99
)

// config aggregates all generator knobs.
type config struct {
	robots, tasks, sites, measurements int
	minCost, maxCost                   int
	rng                                *rand.Rand
}

// Option customizes Generate.
type Option func(*config)

// newConfig applies options in order (later overrides earlier).
func newConfig(opts ...Option) config {
	c := config{
		robots:       DefaultRobots,
		tasks:        DefaultTasks,
		sites:        DefaultSites,
		measurements: DefaultMeasurements,
		minCost:      DefaultMinCost,
		maxCost:      DefaultMaxCost,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rng.FromSeed(0)
	}

	return c
}

// WithRobots sets the fleet size. Panics if n < 1.
func WithRobots(n int) Option {
	if n < 1 {
		panic("scenario: WithRobots(<1)")
	}

	return func(c *config) { c.robots = n }
}

// WithTasks sets the number of required (site, measurement) pairs. Panics if n < 0.
func WithTasks(n int) Option {
	if n < 0 {
		panic("scenario: WithTasks(negative)")
	}

	return func(c *config) { c.tasks = n }
}

// WithSites sets the number of sites including the depot. Panics if n < 2.
func WithSites(n int) Option {
	if n < 2 {
		panic("scenario: WithSites(<2)")
	}

	return func(c *config) { c.sites = n }
}

// WithMeasurements sets the number of measurement types. Panics if n < 1.
func WithMeasurements(n int) Option {
	if n < 1 {
		panic("scenario: WithMeasurements(<1)")
	}

	return func(c *config) { c.measurements = n }
}

// WithCostRange sets the inclusive range of raw edge costs before metric
// closure. Panics unless 0 ≤ lo ≤ hi.
func WithCostRange(lo, hi int) Option {
	if lo < 0 || hi < lo {
		panic("scenario: WithCostRange(invalid)")
	}

	return func(c *config) { c.minCost, c.maxCost = lo, hi }
}

// WithSeed uses a deterministic stream for all draws (seed 0 ⇒ rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rng.FromSeed(seed) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("scenario: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}
