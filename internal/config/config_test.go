package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mrta/gossip"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, gossip.DefaultMaxIterations, cfg.Negotiation.MaxIterations)
	assert.False(t, cfg.Negotiation.BranchAndBound)
	assert.Equal(t, 20, cfg.Experiment.Runs)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "runs.db", filepath.Base(cfg.Store.Path))
	assert.Empty(t, cfg.Validate())
}

func TestLoad_DefaultsFileAndEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
negotiation:
  max_iterations: 12
  branch_and_bound: true
scenario:
  robots: 6
`), 0o644))

	SetDefaults()
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())
	t.Setenv("MRTA_EXPERIMENT_RUNS", "7")
	viper.SetEnvPrefix("MRTA")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(EnvKeyReplacer)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Negotiation.MaxIterations)
	assert.True(t, cfg.Negotiation.BranchAndBound)
	assert.Equal(t, 6, cfg.Scenario.Robots)
	assert.Equal(t, 7, cfg.Experiment.Runs)
	assert.Equal(t, Default().Scenario.Sites, cfg.Scenario.Sites)

	opts := cfg.NegotiationOptions()
	assert.Equal(t, 12, opts.MaxIterations)
	assert.Equal(t, gossip.WithBranchAndBound, opts.Variant())
	assert.Len(t, cfg.ScenarioOptions(), 6)
}

func TestLoad_ValidationErrors(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set("negotiation.max_iterations", 0)
	viper.Set("scenario.tasks", 1000)
	viper.Set("logging.level", "loud")

	_, err := Load()
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
	assert.Contains(t, err.Error(), "3 validation errors")
	assert.Contains(t, err.Error(), "scenario.tasks")
}

func TestValidate_Table(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"node limit", func(c *Config) { c.Negotiation.NodeLimit = -1 }, "negotiation.node_limit"},
		{"robots", func(c *Config) { c.Scenario.Robots = 0 }, "scenario.robots"},
		{"sites", func(c *Config) { c.Scenario.Sites = 1 }, "scenario.sites"},
		{"measurements", func(c *Config) { c.Scenario.Measurements = 0 }, "scenario.measurements"},
		{"negative tasks", func(c *Config) { c.Scenario.Tasks = -1 }, "scenario.tasks"},
		{"cost range", func(c *Config) { c.Scenario.MinCost, c.Scenario.MaxCost = 5, 1 }, "scenario.max_cost"},
		{"runs", func(c *Config) { c.Experiment.Runs = 0 }, "experiment.runs"},
		{"workers", func(c *Config) { c.Experiment.Workers = -2 }, "experiment.workers"},
		{"baseline", func(c *Config) { c.Experiment.Baseline = -1 }, "experiment.baseline"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			errs := cfg.Validate()
			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
		})
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/mrta", ConfigDir())
	assert.Equal(t, "/tmp/xdg/mrta/config.yaml", ConfigFile())
}
