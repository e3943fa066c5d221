// internal/metrics/prom.go
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tamzrod/hoist-loadtester/internal/measure"
	"github.com/tamzrod/hoist-loadtester/internal/status"
)

// Prom implements sampler.Observer on Prometheus collectors.
type Prom struct {
	runs       *prometheus.CounterVec
	reads      *prometheus.CounterVec
	readLat    prometheus.Histogram
	inProgress prometheus.Gauge
	channelMax *prometheus.GaugeVec
}

// New registers the load tester collectors on reg.
func New(reg prometheus.Registerer) (*Prom, error) {
	p := &Prom{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loadtester_runs_total",
			Help: "Load test runs by terminal outcome.",
		}, []string{"outcome"}),
		reads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loadtester_register_reads_total",
			Help: "Input register block reads by result.",
		}, []string{"result"}),
		readLat: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "loadtester_register_read_seconds",
			Help:    "Latency of one input register block read.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		inProgress: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "loadtester_run_in_progress",
			Help: "1 while a load test run is active.",
		}),
		channelMax: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "loadtester_channel_max",
			Help: "Per-channel maximum of the last completed run.",
		}, []string{"channel"}),
	}

	for _, c := range []prometheus.Collector{p.runs, p.reads, p.readLat, p.inProgress, p.channelMax} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *Prom) RunStarted(string) {
	p.inProgress.Set(1)
}

func (p *Prom) ReadObserved(latency time.Duration, err error) {
	p.readLat.Observe(latency.Seconds())
	if err != nil {
		p.reads.WithLabelValues("error").Inc()
		return
	}
	p.reads.WithLabelValues("ok").Inc()
}

func (p *Prom) RunFinished(_ string, outcome status.Outcome, summary *measure.Summary) {
	p.inProgress.Set(0)
	p.runs.WithLabelValues(outcome.String()).Inc()

	if summary == nil {
		return
	}
	for _, ch := range measure.Channels {
		p.channelMax.WithLabelValues(string(ch)).Set(float64(summary.Get(ch)))
	}
}

// Serve exposes g on addr at /metrics until the listener fails.
// http.ErrServerClosed is not reported.
func Serve(addr string, g prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
