// Package config holds the mrta command configuration. Values come from
// defaults, an optional YAML file, MRTA_* environment variables and command
// flags, merged by viper.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/mrta/gossip"
	"github.com/katalvlaran/mrta/scenario"
	"github.com/katalvlaran/mrta/tsp"
)

// EnvKeyReplacer maps nested keys to MRTA_* variable names
// (negotiation.max_iterations -> MRTA_NEGOTIATION_MAX_ITERATIONS).
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Config represents the complete mrta configuration
type Config struct {
	Negotiation NegotiationConfig `mapstructure:"negotiation"`
	Scenario    ScenarioConfig    `mapstructure:"scenario"`
	Experiment  ExperimentConfig  `mapstructure:"experiment"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
	Store       StoreConfig       `mapstructure:"store"`
}

// NegotiationConfig controls the gossip loop
type NegotiationConfig struct {
	// MaxIterations is the stall limit (consecutive non-improving attempts)
	MaxIterations int `mapstructure:"max_iterations"`
	// BranchAndBound selects the branch-and-bound variant
	BranchAndBound bool `mapstructure:"branch_and_bound"`
	// NodeLimit caps branch-and-bound expansions per route (0 = unlimited)
	NodeLimit int `mapstructure:"node_limit"`
	// Seed drives construction and negotiation (0 = default seed)
	Seed int64 `mapstructure:"seed"`
}

// ScenarioConfig controls random instance generation
type ScenarioConfig struct {
	Robots       int   `mapstructure:"robots"`
	Tasks        int   `mapstructure:"tasks"`
	Sites        int   `mapstructure:"sites"`
	Measurements int   `mapstructure:"measurements"`
	MinCost      int   `mapstructure:"min_cost"`
	MaxCost      int   `mapstructure:"max_cost"`
	Seed         int64 `mapstructure:"seed"`
}

// ExperimentConfig controls repeated runs
type ExperimentConfig struct {
	Runs    int   `mapstructure:"runs"`
	Workers int   `mapstructure:"workers"`
	Seed    int64 `mapstructure:"seed"`
	// Baseline is an externally known optimal makespan (0 = none)
	Baseline float64 `mapstructure:"baseline"`
}

// LoggingConfig controls structured logging
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Dir receives mrta.log; empty means stderr
	Dir string `mapstructure:"dir"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	// Addr is the listen address of /metrics; empty disables the endpoint
	Addr string `mapstructure:"addr"`
}

// StoreConfig controls the run history database
type StoreConfig struct {
	// Path is the SQLite database file
	Path string `mapstructure:"path"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Negotiation: NegotiationConfig{
			MaxIterations: gossip.DefaultMaxIterations,
		},
		Scenario: ScenarioConfig{
			Robots:       scenario.DefaultRobots,
			Tasks:        scenario.DefaultTasks,
			Sites:        scenario.DefaultSites,
			Measurements: scenario.DefaultMeasurements,
			MinCost:      scenario.DefaultMinCost,
			MaxCost:      scenario.DefaultMaxCost,
		},
		Experiment: ExperimentConfig{
			Runs: 20,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Store: StoreConfig{
			Path: filepath.Join(ConfigDir(), "runs.db"),
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("negotiation.max_iterations", defaults.Negotiation.MaxIterations)
	viper.SetDefault("negotiation.branch_and_bound", defaults.Negotiation.BranchAndBound)
	viper.SetDefault("negotiation.node_limit", defaults.Negotiation.NodeLimit)
	viper.SetDefault("negotiation.seed", defaults.Negotiation.Seed)

	viper.SetDefault("scenario.robots", defaults.Scenario.Robots)
	viper.SetDefault("scenario.tasks", defaults.Scenario.Tasks)
	viper.SetDefault("scenario.sites", defaults.Scenario.Sites)
	viper.SetDefault("scenario.measurements", defaults.Scenario.Measurements)
	viper.SetDefault("scenario.min_cost", defaults.Scenario.MinCost)
	viper.SetDefault("scenario.max_cost", defaults.Scenario.MaxCost)
	viper.SetDefault("scenario.seed", defaults.Scenario.Seed)

	viper.SetDefault("experiment.runs", defaults.Experiment.Runs)
	viper.SetDefault("experiment.workers", defaults.Experiment.Workers)
	viper.SetDefault("experiment.seed", defaults.Experiment.Seed)
	viper.SetDefault("experiment.baseline", defaults.Experiment.Baseline)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)

	viper.SetDefault("metrics.addr", defaults.Metrics.Addr)

	viper.SetDefault("store.path", defaults.Store.Path)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// NegotiationOptions converts the negotiation section into gossip options.
func (c *Config) NegotiationOptions() gossip.Options {
	return gossip.Options{
		MaxIterations:     c.Negotiation.MaxIterations,
		UseBranchAndBound: c.Negotiation.BranchAndBound,
		BranchAndBound:    tsp.Options{NodeLimit: c.Negotiation.NodeLimit},
	}
}

// ScenarioOptions converts the scenario section into generator options.
func (c *Config) ScenarioOptions() []scenario.Option {
	return []scenario.Option{
		scenario.WithRobots(c.Scenario.Robots),
		scenario.WithTasks(c.Scenario.Tasks),
		scenario.WithSites(c.Scenario.Sites),
		scenario.WithMeasurements(c.Scenario.Measurements),
		scenario.WithCostRange(c.Scenario.MinCost, c.Scenario.MaxCost),
		scenario.WithSeed(c.Scenario.Seed),
	}
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mrta")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mrta"
	}

	return filepath.Join(home, ".config", "mrta")
}

// ConfigFile returns the path to the default config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
