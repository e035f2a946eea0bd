package metrics

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/partner-agent/invitecheck/pkg/domain/types"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records invitation check outcomes
type Metrics struct {
	checks        *prometheus.CounterVec
	blockLookups  *prometheus.CounterVec
	checkDuration prometheus.Histogram
}

// New creates the collectors and registers them on registerer. A nil
// registerer falls back to prometheus.DefaultRegisterer.
func New(registerer prometheus.Registerer) (*Metrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "invitecheck_checks_total",
			Help: "Invitation checks by outcome stage.",
		}, []string{"stage"}),
		blockLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "invitecheck_block_lookups_total",
			Help: "Invitation block lookups by where the block was found.",
		}, []string{"source"}),
		checkDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "invitecheck_check_duration_seconds",
			Help:    "Invitation check latency including the redirect probe.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}

	for _, c := range []prometheus.Collector{m.checks, m.blockLookups, m.checkDuration} {
		if err := registerer.Register(c); err != nil {
			return nil, goerr.Wrap(err, "failed to register invitation metrics")
		}
	}

	// Every stage is exported from startup
	for _, stage := range types.AllCheckStages() {
		m.checks.WithLabelValues(stage.String())
	}

	return m, nil
}

// ObserveCheck counts one finished check
func (m *Metrics) ObserveCheck(stage types.CheckStage, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.checks.WithLabelValues(stage.String()).Inc()
	m.checkDuration.Observe(elapsed.Seconds())
}

// ObserveBlockLookup counts where an invitation block was found
func (m *Metrics) ObserveBlockLookup(source string) {
	if m == nil {
		return
	}
	m.blockLookups.WithLabelValues(source).Inc()
}
