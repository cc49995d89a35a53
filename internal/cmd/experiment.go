package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mrta/experiment"
	"github.com/katalvlaran/mrta/gossip"
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Run repeated negotiations and compare variants",
	Long: `Run many independent negotiations on one instance, each from its own
derived seed, and report makespan and convergence statistics.

By default both variants run on identical seeds so their results are
directly comparable.

Examples:
  mrta experiment -i fleet.yaml --runs 50
  mrta experiment -i fleet.yaml --variant bnb --baseline 42 --record`,
	RunE: runExperiment,
}

var experimentKeys = map[string]string{
	"runs":           "experiment.runs",
	"workers":        "experiment.workers",
	"seed":           "experiment.seed",
	"baseline":       "experiment.baseline",
	"max-iterations": "negotiation.max_iterations",
	"node-limit":     "negotiation.node_limit",
}

var (
	experimentInstance string
	experimentVariant  string
	experimentRecord   bool
	experimentLabel    string
)

func init() {
	experimentCmd.Flags().StringVarP(&experimentInstance, "instance", "i", "", "instance YAML file")
	experimentCmd.Flags().Int("runs", 0, "number of runs per variant")
	experimentCmd.Flags().Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
	experimentCmd.Flags().Int64("seed", 0, "parent seed of the run streams")
	experimentCmd.Flags().Float64("baseline", 0, "known optimal makespan for gap reporting")
	experimentCmd.Flags().Int("max-iterations", 0, "stall limit (consecutive non-improving attempts)")
	experimentCmd.Flags().Int("node-limit", 0, "branch-and-bound node limit per route (0 = unlimited)")
	experimentCmd.Flags().StringVar(&experimentVariant, "variant", "both", "variant to run: plain, bnb or both")
	experimentCmd.Flags().BoolVar(&experimentRecord, "record", false, "save the summaries to the run history")
	experimentCmd.Flags().StringVar(&experimentLabel, "label", "", "label stored with recorded summaries")
	rootCmd.AddCommand(experimentCmd)
}

func runExperiment(cmd *cobra.Command, args []string) error {
	switch experimentVariant {
	case "plain", "bnb", "both":
	default:
		return fmt.Errorf("invalid --variant %q: must be plain, bnb or both", experimentVariant)
	}

	e, err := setup(cmd, experimentKeys)
	if err != nil {
		return err
	}
	defer e.close()

	p, err := e.problem(experimentInstance)
	if err != nil {
		return err
	}

	cfg := experiment.Config{
		Runs:     e.cfg.Experiment.Runs,
		Workers:  e.cfg.Experiment.Workers,
		Seed:     e.cfg.Experiment.Seed,
		Baseline: e.cfg.Experiment.Baseline,
		Options:  e.cfg.NegotiationOptions(),
	}

	var summaries []experiment.Summary
	for _, v := range variants(experimentVariant) {
		cfg.Options.UseBranchAndBound = v == gossip.WithBranchAndBound
		cfg.Options.Observer = e.observer(v)

		e.log.Info("experiment started", "variant", string(v), "runs", cfg.Runs)
		sum, err := experiment.Run(cmd.Context(), p, cfg)
		if err != nil {
			return fmt.Errorf("experiment failed: %w", err)
		}
		e.log.Info("experiment finished",
			"variant", string(v),
			"batch_id", sum.ID.String(),
			"mean_makespan", sum.MeanCost,
			"elapsed", sum.Elapsed.String(),
		)
		summaries = append(summaries, sum)
	}

	printSummaries(cmd.OutOrStdout(), summaries)

	if !experimentRecord {
		return nil
	}
	st, err := e.openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()
	for _, sum := range summaries {
		if err := st.SaveSummary(cmd.Context(), experimentLabel, sum); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "recorded %d batch(es) in %s\n", len(summaries), e.cfg.Store.Path)

	return nil
}

func variants(name string) []gossip.Variant {
	switch name {
	case "plain":
		return []gossip.Variant{gossip.Plain}
	case "bnb":
		return []gossip.Variant{gossip.WithBranchAndBound}
	default:
		return []gossip.Variant{gossip.Plain, gossip.WithBranchAndBound}
	}
}

func printSummaries(w io.Writer, summaries []experiment.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "EXPERIMENT SUMMARY")
	fmt.Fprintln(w, strings.Repeat("─", 78))
	fmt.Fprintf(w, "%-8s %6s %10s %10s %8s %8s %12s %8s\n",
		"variant", "runs", "initial", "mean", "min", "max", "convergence", "gap")
	for _, s := range summaries {
		fmt.Fprintf(w, "%-8s %6d %10.2f %10.2f %8g %8g %12.1f %7.1f%%\n",
			s.Variant, len(s.Records), s.MeanInitialCost, s.MeanCost, s.MinCost, s.MaxCost,
			s.MeanConvergence, 100*s.MeanGap)
	}
	fmt.Fprintln(w)
	for _, s := range summaries {
		fmt.Fprintf(w, "%s batch %s, best makespan %g\n", s.Variant, s.ID, s.MinCost)
	}
}
