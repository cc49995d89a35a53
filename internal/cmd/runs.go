package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs [batch-id]",
	Short: "List recorded experiment batches",
	Long: `List experiment batches saved with "mrta experiment --record".

With a batch id, show the per-run records of that batch.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

var runsLimit int

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "maximum batches to list (0 = all)")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, nil)
	if err != nil {
		return err
	}
	defer e.close()

	st, err := e.openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	w := cmd.OutOrStdout()
	if len(args) == 1 {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid batch id %q: %w", args[0], err)
		}
		b, err := st.GetBatch(cmd.Context(), id)
		if err != nil {
			return err
		}
		records, err := st.ListRuns(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "Batch %s (%s) %s\n", b.ID, b.Variant, b.Label)
		fmt.Fprintln(w, strings.Repeat("─", 70))
		fmt.Fprintf(w, "%4s %20s %9s %9s %12s %9s %6s\n", "run", "seed", "initial", "final", "convergence", "attempts", "moved")
		for _, r := range records {
			fmt.Fprintf(w, "%4d %20d %9g %9g %12d %9d %6d\n",
				r.Run, r.Seed, r.InitialCost, r.FinalCost, r.ConvergenceAttempt, r.Attempts, r.Moved)
		}
		fmt.Fprintf(w, "best routes: %v\n", b.Best.Routes)

		return nil
	}

	batches, err := st.ListBatches(cmd.Context(), runsLimit)
	if err != nil {
		return err
	}
	if len(batches) == 0 {
		fmt.Fprintln(w, "No recorded runs")
		return nil
	}

	fmt.Fprintf(w, "%-36s %-8s %5s %10s %8s %-20s %s\n", "id", "variant", "runs", "mean", "min", "created", "label")
	for _, b := range batches {
		fmt.Fprintf(w, "%-36s %-8s %5d %10.2f %8g %-20s %s\n",
			b.ID, b.Variant, b.Runs, b.MeanCost, b.MinCost, b.CreatedAt.Format("2006-01-02 15:04:05"), b.Label)
	}

	return nil
}
