package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mrta/gossip"
	"github.com/katalvlaran/mrta/internal/config"
	"github.com/katalvlaran/mrta/internal/logging"
	"github.com/katalvlaran/mrta/internal/metrics"
	"github.com/katalvlaran/mrta/internal/store"
	"github.com/katalvlaran/mrta/planner"
	"github.com/katalvlaran/mrta/scenario"
)

// bindFlags binds each named flag of fs to its config key. Binding happens
// per invocation so commands sharing a key do not shadow each other.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		if f := fs.Lookup(name); f != nil {
			_ = viper.BindPFlag(key, f)
		}
	}
}

// env carries everything a command needs once configuration is resolved.
type env struct {
	cfg     *config.Config
	log     *logging.Logger
	metrics *metrics.Collector

	stopMetrics context.CancelFunc
	metricsErr  chan error
}

// setup binds cmd's flags, loads the configuration and opens the logger.
// When metrics.addr is set the Prometheus endpoint is served until close.
func setup(cmd *cobra.Command, keys map[string]string) (*env, error) {
	bindFlags(cmd.Flags(), keys)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var log *logging.Logger
	if cfg.Logging.Dir != "" {
		if log, err = logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level); err != nil {
			return nil, err
		}
	} else {
		log = logging.New(cmd.ErrOrStderr(), cfg.Logging.Level)
	}

	e := &env{cfg: cfg, log: log.WithPhase(cmd.Name()), metrics: metrics.NewCollector()}
	if cfg.Metrics.Addr != "" {
		ctx, cancel := context.WithCancel(cmd.Context())
		e.stopMetrics = cancel
		e.metricsErr = make(chan error, 1)
		go func() { e.metricsErr <- e.metrics.Serve(ctx, cfg.Metrics.Addr) }()
		e.log.Info("serving metrics", "addr", cfg.Metrics.Addr)
	}

	return e, nil
}

func (e *env) close() error {
	var errs []error
	if e.stopMetrics != nil {
		e.stopMetrics()
		errs = append(errs, <-e.metricsErr)
	}
	errs = append(errs, e.log.Close())

	return errors.Join(errs...)
}

// problem loads the instance at path, or generates one from the scenario
// section when path is empty.
func (e *env) problem(path string) (*planner.Problem, error) {
	var (
		inst planner.Instance
		err  error
	)
	if path != "" {
		inst, err = planner.LoadInstance(path)
		e.log.Debug("loaded instance", "path", path)
	} else {
		inst, err = scenario.Generate(e.cfg.ScenarioOptions()...)
		e.log.Debug("generated instance", "seed", e.cfg.Scenario.Seed)
	}
	if err != nil {
		return nil, err
	}

	p, err := planner.NewProblem(inst)
	if err != nil {
		return nil, err
	}
	e.log.Info("problem ready",
		"robots", p.NumRobots(),
		"sites", p.NumSites(),
		"measurements", p.NumMeasurements(),
		"tasks", p.NumTasks(),
		"compatible_pairs", len(p.CompatiblePairs()),
	)

	return p, nil
}

// openStore opens and migrates the run history database.
func (e *env) openStore(ctx context.Context) (*store.Store, error) {
	path := e.cfg.Store.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}

	return st, nil
}

// observer fans negotiation events out to the log and the metrics collector.
func (e *env) observer(v gossip.Variant) gossip.Observer {
	return observers{
		&logObserver{log: e.log.WithVariant(string(v))},
		e.metrics.Observer(v),
	}
}

type observers []gossip.Observer

func (o observers) OnAttempt(ev gossip.AttemptEvent) {
	for _, obs := range o {
		obs.OnAttempt(ev)
	}
}

func (o observers) OnFinish(res *gossip.Result) {
	for _, obs := range o {
		obs.OnFinish(res)
	}
}

type logObserver struct {
	log *logging.Logger
}

func (l *logObserver) OnAttempt(ev gossip.AttemptEvent) {
	if !l.log.Enabled(logging.LevelDebug) {
		return
	}
	l.log.Debug("exchange attempt",
		"attempt", ev.Attempt,
		"pair", ev.Pair.String(),
		"moved", ev.Moved,
		"makespan", ev.Cost,
		"accepted", ev.Accepted,
		"stall", ev.Stall,
	)
}

func (l *logObserver) OnFinish(res *gossip.Result) {
	l.log.Info("negotiation finished",
		"initial_makespan", res.InitialCost,
		"final_makespan", res.FinalCost,
		"attempts", res.Attempts,
		"convergence_attempt", res.ConvergenceAttempt,
		"moved", res.Moved,
		"elapsed", res.Elapsed.String(),
	)
}
