package circuit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "qlab"
	subsystem        = "circuit"
)

var (
	sessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "sessions_active",
			Help:      "Number of circuit sessions currently held in memory",
		},
	)

	sessionsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "sessions_created_total",
			Help:      "Total number of circuit sessions created",
		},
	)

	mutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "mutations_total",
			Help:      "Total number of circuit mutations by operation and whether they changed the circuit",
		},
		[]string{"op", "applied"}, // applied: "true", "false"
	)

	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Total number of circuit runs by measurement mode",
		},
		[]string{"mode"}, // mode: "no_measurement", "probabilistic", "deterministic"
	)

	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "run_duration_seconds",
			Help:      "Time taken to sample and aggregate a circuit run",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
	)
)
