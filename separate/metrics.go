package separate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Phase names used as span suffixes and as the "phase" metric label.
const (
	PhaseGenerate = "generate"
	PhaseCommit   = "commit"
	PhaseOptimize = "optimize"
)

// Metrics holds the solver's Prometheus collectors. A nil *Metrics records
// nothing.
type Metrics struct {
	Instances     prometheus.Counter
	Candidates    prometheus.Counter
	Committed     prometheus.Counter
	Removed       prometheus.Counter
	PhaseDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// leaves them unregistered. It panics if reg already holds collectors with the
// same names.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Instances: f.NewCounter(prometheus.CounterOpts{
			Name: "sepline_instances_total",
			Help: "Total instances solved",
		}),
		Candidates: f.NewCounter(prometheus.CounterOpts{
			Name: "sepline_candidate_lines_total",
			Help: "Total candidate lines generated over both axes",
		}),
		Committed: f.NewCounter(prometheus.CounterOpts{
			Name: "sepline_committed_lines_total",
			Help: "Total lines committed before optimization",
		}),
		Removed: f.NewCounter(prometheus.CounterOpts{
			Name: "sepline_removed_lines_total",
			Help: "Total committed lines removed by the optimizer",
		}),
		PhaseDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sepline_phase_duration_seconds",
			Help:    "Solver phase duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"phase"}),
	}
}

func (m *Metrics) observePhase(phase string, d time.Duration) {
	if m == nil {
		return
	}
	m.PhaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

func (m *Metrics) observeResult(r *Result) {
	if m == nil {
		return
	}
	m.Instances.Inc()
	m.Candidates.Add(float64(r.Candidates))
	m.Committed.Add(float64(r.Committed))
	m.Removed.Add(float64(r.Removed))
}
