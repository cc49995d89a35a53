package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mrta/planner"
	"github.com/katalvlaran/mrta/scenario"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random problem instance",
	Long: `Generate a random instance (requirements, capabilities and a metric
cost matrix) and write it as YAML.

Examples:
  # Write a default instance to stdout
  mrta generate

  # Six robots, twenty tasks over twelve sites
  mrta generate --robots 6 --tasks 20 --sites 12 -o fleet.yaml`,
	RunE: runGenerate,
}

var generateKeys = map[string]string{
	"robots":       "scenario.robots",
	"tasks":        "scenario.tasks",
	"sites":        "scenario.sites",
	"measurements": "scenario.measurements",
	"min-cost":     "scenario.min_cost",
	"max-cost":     "scenario.max_cost",
	"seed":         "scenario.seed",
}

var generateOutput string

func init() {
	generateCmd.Flags().Int("robots", 0, "number of robots")
	generateCmd.Flags().Int("tasks", 0, "number of (site, measurement) tasks")
	generateCmd.Flags().Int("sites", 0, "number of sites including the depot")
	generateCmd.Flags().Int("measurements", 0, "number of measurement types")
	generateCmd.Flags().Int("min-cost", 0, "minimum raw edge cost")
	generateCmd.Flags().Int("max-cost", 0, "maximum raw edge cost")
	generateCmd.Flags().Int64("seed", 0, "random seed (0 uses the default seed)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, generateKeys)
	if err != nil {
		return err
	}
	defer e.close()

	inst, err := scenario.Generate(e.cfg.ScenarioOptions()...)
	if err != nil {
		return fmt.Errorf("failed to generate instance: %w", err)
	}
	e.log.Info("instance generated",
		"robots", e.cfg.Scenario.Robots,
		"sites", e.cfg.Scenario.Sites,
		"tasks", e.cfg.Scenario.Tasks,
		"seed", e.cfg.Scenario.Seed,
	)

	if generateOutput == "" {
		return planner.EncodeInstance(cmd.OutOrStdout(), inst)
	}
	if err := planner.SaveInstance(generateOutput, inst); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", generateOutput)

	return nil
}
