package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // config field path, e.g. "scenario.sites"
	Value   any
	Message string
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}

	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config and returns every validation error found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, c.validateNegotiation()...)
	errs = append(errs, c.validateScenario()...)
	errs = append(errs, c.validateExperiment()...)
	errs = append(errs, c.validateLogging()...)

	return errs
}

func (c *Config) validateNegotiation() []ValidationError {
	var errs []ValidationError
	if c.Negotiation.MaxIterations < 1 {
		errs = append(errs, ValidationError{"negotiation.max_iterations", c.Negotiation.MaxIterations, "must be at least 1"})
	}
	if c.Negotiation.NodeLimit < 0 {
		errs = append(errs, ValidationError{"negotiation.node_limit", c.Negotiation.NodeLimit, "must be non-negative"})
	}

	return errs
}

func (c *Config) validateScenario() []ValidationError {
	var errs []ValidationError
	s := c.Scenario
	if s.Robots < 1 {
		errs = append(errs, ValidationError{"scenario.robots", s.Robots, "must be at least 1"})
	}
	if s.Sites < 2 {
		errs = append(errs, ValidationError{"scenario.sites", s.Sites, "must be at least 2 (depot plus one site)"})
	}
	if s.Measurements < 1 {
		errs = append(errs, ValidationError{"scenario.measurements", s.Measurements, "must be at least 1"})
	}
	if s.Tasks < 0 {
		errs = append(errs, ValidationError{"scenario.tasks", s.Tasks, "must be non-negative"})
	} else if s.Sites >= 2 && s.Measurements >= 1 && s.Tasks > (s.Sites-1)*s.Measurements {
		errs = append(errs, ValidationError{"scenario.tasks", s.Tasks,
			fmt.Sprintf("exceeds the %d available (site, measurement) slots", (s.Sites-1)*s.Measurements)})
	}
	if s.MinCost < 0 || s.MaxCost < s.MinCost {
		errs = append(errs, ValidationError{"scenario.max_cost", s.MaxCost,
			fmt.Sprintf("cost range must satisfy 0 <= min_cost (%d) <= max_cost", s.MinCost)})
	}

	return errs
}

func (c *Config) validateExperiment() []ValidationError {
	var errs []ValidationError
	if c.Experiment.Runs < 1 {
		errs = append(errs, ValidationError{"experiment.runs", c.Experiment.Runs, "must be at least 1"})
	}
	if c.Experiment.Workers < 0 {
		errs = append(errs, ValidationError{"experiment.workers", c.Experiment.Workers, "must be non-negative"})
	}
	if c.Experiment.Baseline < 0 {
		errs = append(errs, ValidationError{"experiment.baseline", c.Experiment.Baseline, "must be non-negative"})
	}

	return errs
}

func (c *Config) validateLogging() []ValidationError {
	if c.Logging.Level == "" || slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		return nil
	}

	return []ValidationError{{
		Field:   "logging.level",
		Value:   c.Logging.Level,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
	}}
}
