package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mrta/gossip"
	"github.com/katalvlaran/mrta/planner"
	"github.com/katalvlaran/mrta/rng"
)

var negotiateCmd = &cobra.Command{
	Use:   "negotiate",
	Short: "Allocate tasks and improve the allocation by negotiation",
	Long: `Build a random feasible allocation and let compatible robot pairs
exchange tasks until the makespan stops improving.

Without --instance a random instance is generated from the scenario
configuration.

Examples:
  mrta negotiate -i fleet.yaml
  mrta negotiate -i fleet.yaml --bnb --max-iterations 100 --trace`,
	RunE: runNegotiate,
}

var negotiateKeys = map[string]string{
	"max-iterations": "negotiation.max_iterations",
	"bnb":            "negotiation.branch_and_bound",
	"node-limit":     "negotiation.node_limit",
	"seed":           "negotiation.seed",
}

var (
	negotiateInstance string
	negotiateJSON     bool
	negotiateTrace    bool
)

func init() {
	negotiateCmd.Flags().StringVarP(&negotiateInstance, "instance", "i", "", "instance YAML file")
	negotiateCmd.Flags().Int("max-iterations", 0, "stall limit (consecutive non-improving attempts)")
	negotiateCmd.Flags().Bool("bnb", false, "re-optimise routes with branch-and-bound")
	negotiateCmd.Flags().Int("node-limit", 0, "branch-and-bound node limit per route (0 = unlimited)")
	negotiateCmd.Flags().Int64("seed", 0, "random seed (0 uses the default seed)")
	negotiateCmd.Flags().BoolVar(&negotiateJSON, "json", false, "output the result as JSON")
	negotiateCmd.Flags().BoolVar(&negotiateTrace, "trace", false, "print the improvement and exchange traces")
	rootCmd.AddCommand(negotiateCmd)
}

func runNegotiate(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, negotiateKeys)
	if err != nil {
		return err
	}
	defer e.close()

	p, err := e.problem(negotiateInstance)
	if err != nil {
		return err
	}

	opts := e.cfg.NegotiationOptions()
	opts.Observer = e.observer(opts.Variant())
	res, err := gossip.Negotiate(cmd.Context(), p, rng.FromSeed(e.cfg.Negotiation.Seed), opts)
	if err != nil {
		return fmt.Errorf("negotiation failed: %w", err)
	}

	if negotiateJSON {
		return printResultJSON(cmd.OutOrStdout(), p, &res)
	}

	return printResultText(cmd.OutOrStdout(), p, &res, negotiateTrace)
}

type routeJSON struct {
	Robot int            `json:"robot"`
	Cost  float64        `json:"cost"`
	Tasks []planner.Task `json:"tasks"`
}

type resultJSON struct {
	Variant            gossip.Variant `json:"variant"`
	InitialMakespan    float64        `json:"initial_makespan"`
	FinalMakespan      float64        `json:"final_makespan"`
	Attempts           int            `json:"attempts"`
	Rounds             int            `json:"rounds"`
	ConvergenceAttempt int            `json:"convergence_attempt"`
	Moved              int            `json:"moved"`
	ImprovementTrace   []float64      `json:"improvement_trace"`
	ExchangeTrace      []float64      `json:"exchange_trace"`
	Routes             []routeJSON    `json:"routes"`
}

func printResultJSON(w io.Writer, p *planner.Problem, res *gossip.Result) error {
	costs := p.RouteCosts(&res.Solution)
	out := resultJSON{
		Variant:            res.Variant,
		InitialMakespan:    res.InitialCost,
		FinalMakespan:      res.FinalCost,
		Attempts:           res.Attempts,
		Rounds:             res.Rounds,
		ConvergenceAttempt: res.ConvergenceAttempt,
		Moved:              res.Moved,
		ImprovementTrace:   res.ImprovementTrace,
		ExchangeTrace:      res.ExchangeTrace,
		Routes:             make([]routeJSON, len(res.Solution.Routes)),
	}
	for i, r := range res.Solution.Routes {
		tasks := r.Tasks()
		if tasks == nil {
			tasks = []planner.Task{}
		}
		out.Routes[i] = routeJSON{Robot: i, Cost: costs[i], Tasks: tasks}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

func printResultText(w io.Writer, p *planner.Problem, res *gossip.Result, trace bool) error {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "NEGOTIATION (%s)\n", res.Variant)
	fmt.Fprintln(w, strings.Repeat("─", 50))
	fmt.Fprintf(w, "Initial makespan: %g\n", res.InitialCost)
	fmt.Fprintf(w, "Final makespan:   %g\n", res.FinalCost)
	fmt.Fprintf(w, "Attempts: %d in %d rounds, last improvement at %d\n", res.Attempts, res.Rounds, res.ConvergenceAttempt)
	fmt.Fprintf(w, "Tasks moved: %d\n", res.Moved)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ROUTES")
	fmt.Fprintln(w, strings.Repeat("─", 50))
	for i, c := range p.RouteCosts(&res.Solution) {
		fmt.Fprintf(w, "robot %-3d cost %-8g %s\n", i, c, res.Solution.Routes[i])
	}

	if trace {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Improvement trace: %v\n", res.ImprovementTrace)
		fmt.Fprintf(w, "Exchange trace:    %v\n", res.ExchangeTrace)
	}

	return nil
}
