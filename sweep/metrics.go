package sweep

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the Prometheus collectors updated by a Runner.
type Metrics struct {
	Runs       *prometheus.CounterVec
	Mismatches *prometheus.CounterVec
	Iterations *prometheus.HistogramVec
	Duration   *prometheus.HistogramVec
}

// NewMetrics creates unregistered collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "lvcluster",
				Subsystem: "sweep",
				Name:      "runs_total",
				Help:      "Clustering runs by algorithm and termination status.",
			}, []string{"algorithm", "status"}),
		Mismatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "lvcluster",
				Subsystem: "sweep",
				Name:      "cardinality_mismatch_total",
				Help:      "Runs that produced fewer non-empty clusters than requested.",
			}, []string{"algorithm"}),
		Iterations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "lvcluster",
				Subsystem: "sweep",
				Name:      "iterations",
				Help:      "Assign/update rounds per partitional run.",
				Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 200},
			}, []string{"algorithm"}),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "lvcluster",
				Subsystem: "sweep",
				Name:      "duration_seconds",
				Help:      "Wall time per cluster count.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
			}, []string{"algorithm"}),
	}
}

// Register adds every collector to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Runs, m.Mismatches, m.Iterations, m.Duration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}
