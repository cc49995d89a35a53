// Package cmd implements the mrta command line.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mrta/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "mrta",
	Short: "Multi-robot task allocation by gossip negotiation",
	Long: `mrta allocates inspection tasks (site, measurement) to a fleet of robots
with heterogeneous sensors. An initial random allocation is improved by
pairwise task exchanges between compatible robots until the makespan
(the most expensive robot route) stops improving.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// persistentKeys maps global flags to config keys
var persistentKeys = map[string]string{
	"config":       "config",
	"log-level":    "logging.level",
	"log-dir":      "logging.dir",
	"metrics-addr": "metrics.addr",
	"store":        "store.path",
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/mrta/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-dir", "", "directory for mrta.log (default stderr)")
	rootCmd.PersistentFlags().String("metrics-addr", "", "serve Prometheus metrics on this address while running")
	rootCmd.PersistentFlags().String("store", "", "SQLite run history (default $HOME/.config/mrta/runs.db)")
}

func initConfig() {
	// Defaults first so they're available even without a config file
	config.SetDefaults()
	bindFlags(rootCmd.PersistentFlags(), persistentKeys)

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/mrta")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("MRTA")
	// MRTA_NEGOTIATION_MAX_ITERATIONS for negotiation.max_iterations
	viper.SetEnvKeyReplacer(config.EnvKeyReplacer)

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
