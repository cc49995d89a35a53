// Package metrics exports negotiation progress as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/mrta/gossip"
)

// Collector owns a dedicated registry and the negotiation metrics.
type Collector struct {
	// Registry is the registry served by Handler
	Registry *prometheus.Registry

	// Attempts counts exchange attempts by variant and outcome
	Attempts *prometheus.CounterVec
	// Moved counts relocated tasks by variant
	Moved *prometheus.CounterVec
	// Negotiations counts finished negotiations by variant
	Negotiations *prometheus.CounterVec
	// FinalMakespan records the makespan at the end of each negotiation
	FinalMakespan *prometheus.HistogramVec
	// Convergence records the attempt index of the last improvement
	Convergence *prometheus.HistogramVec
	// Duration records negotiation wall time in seconds
	Duration *prometheus.HistogramVec
}

// NewCollector builds a Collector with Go and process collectors on its registry.
func NewCollector() *Collector {
	c := &Collector{
		Registry: prometheus.NewRegistry(),
		Attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "mrta_exchange_attempts_total", Help: "Pairwise exchange attempts by variant and outcome."},
			[]string{"variant", "accepted"},
		),
		Moved: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "mrta_tasks_moved_total", Help: "Tasks relocated between robots."},
			[]string{"variant"},
		),
		Negotiations: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "mrta_negotiations_total", Help: "Finished negotiations."},
			[]string{"variant"},
		),
		FinalMakespan: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "mrta_final_makespan", Help: "Makespan after negotiation.", Buckets: prometheus.ExponentialBuckets(1, 2, 12)},
			[]string{"variant"},
		),
		Convergence: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "mrta_convergence_attempt", Help: "Attempt index of the last improvement.", Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000}},
			[]string{"variant"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "mrta_negotiation_duration_seconds", Help: "Negotiation wall time in seconds.", Buckets: prometheus.DefBuckets},
			[]string{"variant"},
		),
	}

	c.Registry.MustRegister(c.Attempts, c.Moved, c.Negotiations, c.FinalMakespan, c.Convergence, c.Duration)
	c.Registry.MustRegister(collectors.NewGoCollector())
	c.Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return c
}

// Observer returns a gossip.Observer that records into c under variant v.
// It is safe for concurrent negotiations.
func (c *Collector) Observer(v gossip.Variant) gossip.Observer {
	return &observer{c: c, variant: string(v)}
}

type observer struct {
	c       *Collector
	variant string
}

func (o *observer) OnAttempt(ev gossip.AttemptEvent) {
	o.c.Attempts.WithLabelValues(o.variant, strconv.FormatBool(ev.Accepted)).Inc()
	if ev.Moved > 0 {
		o.c.Moved.WithLabelValues(o.variant).Add(float64(ev.Moved))
	}
}

func (o *observer) OnFinish(res *gossip.Result) {
	o.c.Negotiations.WithLabelValues(o.variant).Inc()
	o.c.FinalMakespan.WithLabelValues(o.variant).Observe(res.FinalCost)
	o.c.Convergence.WithLabelValues(o.variant).Observe(float64(res.ConvergenceAttempt))
	o.c.Duration.WithLabelValues(o.variant).Observe(res.Elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{Registry: c.Registry})
}

// Serve exposes /metrics on addr until ctx is done.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}
