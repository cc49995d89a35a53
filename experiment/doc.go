// Package experiment runs repeated independent negotiations on one instance
// and aggregates their outcomes.
//
// Every run gets its own RNG stream derived from Config.Seed and the run
// index (rng.Derive), so a summary is reproducible regardless of Workers and
// scheduling order. Runs execute with bounded parallelism on an errgroup.
//
// Compare evaluates the plain and branch-and-bound variants on the same
// seeds, which is the standard side-by-side report of the CLI.
package experiment
